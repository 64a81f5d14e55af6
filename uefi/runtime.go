// Copyright (c) The efi-kexec authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

// EFI Runtime Services Table Signature
const runtimeServicesSignature = 0x56524553544e5552 // RUNTSERV

// runtimeServiceNames lists the EFI_RUNTIME_SERVICES function pointers in
// table order.
//
// https://uefi.org/specs/UEFI/2.10/08_Services_Runtime_Services.html
var runtimeServiceNames = [13]string{
	"GetTime",
	"SetTime",
	"GetWakeupTime",
	"SetWakeupTime",
	"SetVirtualAddressMap",
	"ConvertPointer",
	"GetVariable",
	"GetNextVariableName",
	"SetVariable",
	"GetNextHighMonotonicCount",
	"ResetSystem",
	"UpdateCapsule",
	"QueryCapsuleCapabilities",
}

// Time represents an EFI_TIME instance.
type Time struct {
	Year       uint16
	Month      uint8
	Day        uint8
	Hour       uint8
	Minute     uint8
	Second     uint8
	_          uint8
	Nanosecond uint32
	TimeZone   int16
	Daylight   uint8
	_          uint8
}

// bootTime is returned by every GetTime invocation, emulated firmware has no
// real-time clock and foreign loaders only require a plausible timestamp.
var bootTime = Time{
	Year:   2019,
	Month:  1,
	Day:    1,
	Hour:   10,
	Minute: 0,
	Second: 0,
}

func (s *Session) runtimeServiceHandlers() map[string]Handler {
	return map[string]Handler{
		"GetTime":     s.getTime,
		"SetVariable": s.setVariable,
	}
}

// installRuntimeServices serializes the emulated EFI Runtime Services table
// and returns its emulated memory address.
func (s *Session) installRuntimeServices() (addr uint64, err error) {
	handlers := s.runtimeServiceHandlers()
	fns := make([]uint64, len(runtimeServiceNames))

	for i, name := range runtimeServiceNames {
		if fns[i], err = s.bind(RuntimeTable, i, name, handlers[name]); err != nil {
			return
		}
	}

	table := struct {
		Header    TableHeader
		Functions [13]uint64
	}{
		Header: TableHeader{
			Signature:  runtimeServicesSignature,
			Revision:   specRevision,
			HeaderSize: uint32(headerSize + 8*len(fns)),
		},
	}

	copy(table.Functions[:], fns)

	buf, err := marshalBinary(&table)

	if err != nil {
		return
	}

	if addr, err = s.arena(len(buf)); err != nil {
		return
	}

	return addr, encode(&table, addr)
}

// getTime reports the fixed emulated timestamp.
func (s *Session) getTime(args []uint64) Status {
	if err := encode(&bootTime, args[0]); err != nil {
		return EFI_INVALID_PARAMETER
	}

	return EFI_SUCCESS
}

// setVariable logs and acknowledges the request, no variable store backs the
// emulated firmware but loaders expect their writes to succeed.
func (s *Session) setVariable(args []uint64) Status {
	name, err := readUTF16(args[0])

	if err != nil {
		return EFI_INVALID_PARAMETER
	}

	guid := GUID{}

	if err := decode(&guid, args[1]); err != nil {
		return EFI_INVALID_PARAMETER
	}

	s.Log.Printf("uefi: SetVariable %s vendor %s (%s) attr %#x size %d",
		name, guid.Name(), guid, args[2], args[3])

	return EFI_SUCCESS
}
