// Copyright (c) The efi-kexec authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

import (
	"time"

	"github.com/hako/durafmt"
)

// EFI Boot Services Table Signature
const bootServicesSignature = 0x56524553544f4f42 // BOOTSERV

// bootServiceNames lists the EFI_BOOT_SERVICES function pointers in table
// order.
//
// https://uefi.org/specs/UEFI/2.10/07_Services_Boot_Services.html
var bootServiceNames = [44]string{
	"RaiseTPL",
	"RestoreTPL",
	"AllocatePages",
	"FreePages",
	"GetMemoryMap",
	"AllocatePool",
	"FreePool",
	"CreateEvent",
	"SetTimer",
	"WaitForEvent",
	"SignalEvent",
	"CloseEvent",
	"CheckEvent",
	"InstallProtocolInterface",
	"ReinstallProtocolInterface",
	"UninstallProtocolInterface",
	"HandleProtocol",
	"Reserved",
	"RegisterProtocolNotify",
	"LocateHandle",
	"LocateDevicePath",
	"InstallConfigurationTable",
	"LoadImage",
	"StartImage",
	"Exit",
	"UnloadImage",
	"ExitBootServices",
	"GetNextMonotonicCount",
	"Stall",
	"SetWatchdogTimer",
	"ConnectController",
	"DisconnectController",
	"OpenProtocol",
	"CloseProtocol",
	"OpenProtocolInformation",
	"ProtocolsPerHandle",
	"LocateHandleBuffer",
	"LocateProtocol",
	"InstallMultipleProtocolInterfaces",
	"UninstallMultipleProtocolInterfaces",
	"CalculateCrc32",
	"CopyMem",
	"SetMem",
	"CreateEventEx",
}

// bootServiceHandlers returns the working subset of emulated boot services,
// any service not in the map is bound without a handler.
func (s *Session) bootServiceHandlers() map[string]Handler {
	return map[string]Handler{
		"AllocatePages":    s.allocatePages,
		"FreePages":        s.freePages,
		"GetMemoryMap":     s.getMemoryMap,
		"AllocatePool":     s.allocatePool,
		"FreePool":         s.freePool,
		"HandleProtocol":   s.handleProtocol,
		"LocateHandle":     s.locateHandle,
		"Stall":            s.stall,
		"SetWatchdogTimer": s.setWatchdogTimer,
		"OpenProtocol":     s.openProtocol,
	}
}

// installBootServices serializes the emulated EFI Boot Services table and
// returns its emulated memory address.
func (s *Session) installBootServices() (addr uint64, err error) {
	handlers := s.bootServiceHandlers()
	fns := make([]uint64, len(bootServiceNames))

	for i, name := range bootServiceNames {
		if fns[i], err = s.bind(BootTable, i, name, handlers[name]); err != nil {
			return
		}
	}

	hdr := &TableHeader{
		Signature:  bootServicesSignature,
		Revision:   specRevision,
		HeaderSize: uint32(headerSize + 8*len(fns)),
	}

	table := struct {
		Header    TableHeader
		Functions [44]uint64
	}{
		Header: *hdr,
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

// locateHandle rejects all handle searches, foreign loaders treat the
// emulated handle database as empty.
func (s *Session) locateHandle(args []uint64) Status {
	guid := GUID{}

	if err := decode(&guid, args[1]); err == nil {
		s.Log.Printf("uefi: LocateHandle type %d protocol %s (%s)", args[0], guid.Name(), guid)
	}

	return EFI_NOT_FOUND
}

// stall acknowledges the delay request without sleeping, emulated firmware
// has no hardware to settle.
func (s *Session) stall(args []uint64) Status {
	d := time.Duration(args[0]) * time.Microsecond
	s.Log.Printf("uefi: ignoring stall of %s", durafmt.Parse(d))

	return EFI_SUCCESS
}

// setWatchdogTimer acknowledges the request without arming anything, the
// specification permits platforms without watchdog support.
func (s *Session) setWatchdogTimer(args []uint64) Status {
	d := time.Duration(args[0]) * time.Second
	s.Log.Printf("uefi: ignoring %s watchdog (code %#x)", durafmt.Parse(d), args[1])

	return EFI_SUCCESS
}
