// Copyright (c) The efi-kexec authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

import (
	"fmt"
)

// Table identifies the emulated EFI table a service belongs to.
type Table int

// Emulated EFI tables
const (
	BootTable Table = iota
	RuntimeTable
	ConOutTable
	ConInTable
)

func (t Table) String() string {
	switch t {
	case BootTable:
		return "boot"
	case RuntimeTable:
		return "runtime"
	case ConOutTable:
		return "conout"
	case ConInTable:
		return "conin"
	default:
		return "unknown"
	}
}

// maxArgs is the number of integer arguments captured at the service call
// boundary, no emulated service takes more.
const maxArgs = 8

// Thunks generates callable entry points for emulated services, each entry
// point must route the foreign caller back to Session.Dispatch with its slot
// identifier and captured arguments.
//
// A nil Thunks instance yields synthetic addresses which are not callable but
// remain unique, allowing table inspection and testing off target.
type Thunks interface {
	Address(slot int) (uint64, error)
}

// Handler implements an emulated EFI service, receiving the integer
// arguments captured at the call boundary.
type Handler func(args []uint64) Status

type service struct {
	name string
	fn   Handler
}

// slot packs a table identifier and service ordinal in a dispatch slot
// identifier.
func slot(table Table, ordinal int) int {
	return int(table)<<8 | ordinal
}

// synthetic thunk addresses issued when no Thunks generator is available
const stubBase = 0xefca11ed00000000

// bind associates a dispatch slot with a named service, services bound with a
// nil handler log their invocation and fail with EFI_UNSUPPORTED.
func (s *Session) bind(table Table, ordinal int, name string, fn Handler) (addr uint64, err error) {
	id := slot(table, ordinal)

	s.services[id] = &service{
		name: name,
		fn:   fn,
	}

	if s.Thunks == nil {
		return stubBase + uint64(id)*8, nil
	}

	return s.Thunks.Address(id)
}

// Dispatch routes an emulated service invocation, identified by its dispatch
// slot, to the bound service handler. It is the single entry point used by
// the machine level call gate.
//
// Unbound slots and services without a handler return EFI_UNSUPPORTED.
func (s *Session) Dispatch(id int, args []uint64) uint64 {
	svc, ok := s.services[id]

	if !ok {
		s.Log.Printf("uefi: call to unbound slot %#x", id)
		return uint64(EFI_UNSUPPORTED)
	}

	switch {
	case len(args) > maxArgs:
		args = args[:maxArgs]
	case len(args) < maxArgs:
		padded := make([]uint64, maxArgs)
		copy(padded, args)
		args = padded
	}

	if svc.fn == nil {
		s.Log.Printf("uefi: %s service %s called (unsupported)", Table(id>>8), svc.name)
		return uint64(EFI_UNSUPPORTED)
	}

	status := svc.fn(args)

	s.Log.Printf("uefi: %s service %s returned %s", Table(id>>8), svc.name, status)

	return uint64(status)
}

// Call invokes an emulated service by table and name, it is meant for
// instrumentation and testing as foreign images enter through Dispatch.
func (s *Session) Call(table Table, name string, args []uint64) (Status, error) {
	for id, svc := range s.services {
		if Table(id>>8) != table || svc.name != name {
			continue
		}

		return Status(s.Dispatch(id, args)), nil
	}

	return EFI_UNSUPPORTED, fmt.Errorf("unknown %s service %s", table, name)
}
