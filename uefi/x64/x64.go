// Copyright (c) The efi-kexec authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build amd64

// Package x64 bridges foreign PE/EFI images, compiled for the Microsoft x64
// calling convention, with the Go service handlers of the uefi package.
//
// Emulated service pointers are backed by small machine code stubs which
// tag the invocation with its dispatch slot and enter a common call gate,
// the gate captures the caller arguments and routes them to
// uefi.Session.Dispatch.
package x64

import (
	"encoding/binary"
	"errors"

	"github.com/usbarmory/tamago/dma"

	"github.com/usbarmory/efi-kexec/uefi"
)

// defined in gate.s
func gateAddress() uint64
func callImage(entry uint64, imageHandle uint64, systemTable uint64) uint64

// session receives all gate invocations, a single emulated firmware instance
// can be active at any given time.
var session *uefi.Session

// savedG holds the Go g register across the foreign image call, the gate
// restores it on entry as the image is free to clobber R14.
var savedG uintptr

// dispatch is called by the gate with the dispatch slot and captured integer
// arguments of an emulated service invocation.
//
//go:nosplit
func dispatch(slot uint64, args *[8]uint64) uint64 {
	if session == nil {
		return uint64(uefi.EFI_UNSUPPORTED)
	}

	return session.Dispatch(int(slot), args[:])
}

// stub layout:
//
//	49 bb <slot>	movabs r11, slot
//	48 b8 <gate>	movabs rax, gate
//	ff e0		jmp rax
const stubSize = 32

// stubs are carved out of a single executable page
const maxStubs = uefi.PageSize / stubSize

// Thunks emits executable service stubs for an emulated firmware session,
// implementing the uefi.Thunks interface.
type Thunks struct {
	// Memory is the executable memory region receiving the stubs.
	Memory *dma.Region

	base  uint64
	mem   []byte
	count int
}

func (t *Thunks) init() error {
	if t.Memory == nil {
		return errors.New("invalid memory region")
	}

	addr, mem := t.Memory.Reserve(uefi.PageSize, uefi.PageSize)

	t.base = uint64(addr)
	t.mem = mem

	return nil
}

// Address emits the service stub for the argument dispatch slot and returns
// its entry point.
func (t *Thunks) Address(slot int) (addr uint64, err error) {
	if t.mem == nil {
		if err = t.init(); err != nil {
			return
		}
	}

	if t.count >= maxStubs {
		return 0, errors.New("out of stub memory")
	}

	stub := t.mem[t.count*stubSize:]

	stub[0] = 0x49
	stub[1] = 0xbb
	binary.LittleEndian.PutUint64(stub[2:], uint64(slot))

	stub[10] = 0x48
	stub[11] = 0xb8
	binary.LittleEndian.PutUint64(stub[12:], gateAddress())

	stub[20] = 0xff
	stub[21] = 0xe0

	addr = t.base + uint64(t.count*stubSize)
	t.count += 1

	return
}
