// Copyright (c) The efi-kexec authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package uefi emulates the Unified Extensible Firmware Interface (UEFI)
// boot environment expected by EFI OS loaders, following the specifications
// at:
//
//	https://uefi.org/specs/UEFI/2.10/
//
// A Session serializes an EFI System Table, with its boot and runtime
// service tables and console protocols, into an emulated memory region and
// routes service invocations from a foreign image back to Go handlers.
//
// The emulation is the minimum a Windows OS loader requires to proceed
// booting: a queryable memory map with page allocation, protocol lookup for
// the LoadedImage, DevicePath and extended text input protocols, console
// output, a fixed clock and an EFI variable sink.
package uefi

import (
	"errors"

	"github.com/u-root/uio/ulog"
	"github.com/usbarmory/tamago/dma"
)

// EFI Table Header Signature
const signature = 0x5453595320494249 // TSYS IBI

// specRevision is the advertised UEFI specification revision (2.60).
const specRevision = 2<<16 | 60

// headerSize is the EFI_TABLE_HEADER wire size.
const headerSize = 24

// Fixed emulated handles and pointers, chosen to be recognizable in foreign
// image crash dumps and debug output.
const (
	// ImageHandle is passed to the foreign image entry point.
	ImageHandle = 0xdeadbeef

	// BootDeviceHandle serves the Device Path protocol.
	BootDeviceHandle = 0xdeadbeef

	// ConsoleInHandle serves the extended text input protocol.
	ConsoleInHandle = 0xdeadbeefcafebab1

	// ConsoleOutHandle identifies the text output protocol.
	ConsoleOutHandle = 0xdeadbeefcafebabe

	// StdErrHandle identifies the standard error device.
	StdErrHandle = 0xdeadbeefcafe0003

	// ParentImageHandle is claimed as the LoadedImage parent.
	ParentImageHandle = 0x420000

	// UnloadAddress is placed in the LoadedImage Unload slot.
	UnloadAddress = 0x430000

	conInAddress  = 0xdeadbeefcafe0001
	stdErrAddress = 0xdeadbeefcafe0004
)

// markerBase seeds the poison pattern filled in System Table slots left
// unset, a foreign image dereferencing one faults on a recognizable,
// incrementing value.
const markerBase = 0xdeadbeefcafeba00

// TableHeader represents the data structure that precedes all of the standard
// EFI table types.
type TableHeader struct {
	Signature  uint64
	Revision   uint32
	HeaderSize uint32
	CRC32      uint32
	Reserved   uint32
}

// SystemTable represents the EFI System Table, containing pointers to the
// runtime and boot services tables.
type SystemTable struct {
	Header               TableHeader
	FirmwareVendor       uint64
	FirmwareRevision     uint32
	_                    uint32
	ConsoleInHandle      uint64
	ConIn                uint64
	ConsoleOutHandle     uint64
	ConOut               uint64
	StandardErrorHandle  uint64
	StdErr               uint64
	RuntimeServices      uint64
	BootServices         uint64
	NumberOfTableEntries uint64
	ConfigurationTable   uint64
}

// Session represents an emulated UEFI firmware instance serving a single
// foreign image.
type Session struct {
	// Memory is the emulated memory pool backing table serialization and
	// page allocation.
	Memory *dma.Region

	// Log receives the emulation trace (ulog.Null when nil).
	Log ulog.Logger

	// Thunks generates machine level entry points for emulated services,
	// a nil value yields synthetic addresses for off target use.
	Thunks Thunks

	// ImageBase is advertised through the LoadedImage protocol.
	ImageBase uint64

	// ImageSize is advertised through the LoadedImage protocol.
	ImageSize uint64

	services    map[int]*service
	allocations []*MemoryDescriptor
	epoch       uint64
	reserved    int

	systab          uint64
	bootServices    uint64
	runtimeServices uint64
	conOut          uint64
	conIn           uint64
	loadedImage     uint64
	devicePath      uint64

	installed bool
}

// arena reserves table storage from the emulated memory pool, such storage
// is not tracked in the emulated memory map.
func (s *Session) arena(size int) (addr uint64, err error) {
	addr, status := s.reserve(size)
	return addr, status.Error()
}

// Install serializes the emulated EFI System Table, its service tables,
// console protocols and LoadedImage protocol into the session memory pool.
//
// Table slots without an emulated counterpart are filled with an
// incrementing poison pattern rather than left zero, to aid postmortem
// analysis of foreign image crashes.
func (s *Session) Install() (err error) {
	if s.installed {
		return errors.New("session already installed")
	}

	if s.Memory == nil {
		return errors.New("invalid memory region")
	}

	if s.Log == nil {
		s.Log = ulog.Null
	}

	s.services = make(map[int]*service)

	if s.bootServices, err = s.installBootServices(); err != nil {
		return
	}

	if s.runtimeServices, err = s.installRuntimeServices(); err != nil {
		return
	}

	if s.conOut, err = s.installConOut(); err != nil {
		return
	}

	if s.conIn, err = s.installConIn(); err != nil {
		return
	}

	if err = s.installSystemTable(); err != nil {
		return
	}

	if err = s.installLoadedImage(); err != nil {
		return
	}

	s.installed = true

	s.Log.Printf("uefi: system table installed @ %#x", s.systab)

	return
}

func (s *Session) installSystemTable() (err error) {
	st := &SystemTable{}

	buf, err := marshalBinary(st)

	if err != nil {
		return
	}

	if s.systab, err = s.arena(len(buf)); err != nil {
		return
	}

	// Poison every slot first, fields without an emulated value keep
	// their marker.
	marker := uint64(markerBase)

	for i := 0; i < len(buf); i += 8 {
		if err = writeUint64(s.systab+uint64(i), marker); err != nil {
			return
		}

		marker += 1
	}

	if err = decode(st, s.systab); err != nil {
		return
	}

	st.Header.Signature = signature
	st.Header.Revision = specRevision
	st.Header.HeaderSize = uint32(len(buf))
	st.ConsoleInHandle = ConsoleInHandle
	st.ConIn = conInAddress
	st.ConsoleOutHandle = ConsoleOutHandle
	st.ConOut = s.conOut
	st.StandardErrorHandle = StdErrHandle
	st.StdErr = stdErrAddress
	st.RuntimeServices = s.runtimeServices
	st.BootServices = s.bootServices

	return encode(st, s.systab)
}

// Address returns the emulated EFI System Table pointer, to be passed to the
// foreign image entry point.
func (s *Session) Address() uint64 {
	return s.systab
}

// SystemTable decodes the serialized emulated EFI System Table.
func (s *Session) SystemTable() (st *SystemTable, err error) {
	if !s.installed {
		return nil, errors.New("session not installed")
	}

	st = &SystemTable{}

	if err = decode(st, s.systab); err != nil {
		return
	}

	if st.Header.Signature != signature {
		return nil, errors.New("EFI System Table signature mismatch")
	}

	return
}

// LoadedImageAddress returns the emulated LoadedImage protocol pointer.
func (s *Session) LoadedImageAddress() uint64 {
	return s.loadedImage
}
