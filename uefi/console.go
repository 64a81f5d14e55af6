// Copyright (c) The efi-kexec authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

import (
	"strings"
	"unicode/utf16"
)

// WaitForKeyEvent is the fixed event identifier placed in the emulated input
// protocol, no event machinery backs it.
const WaitForKeyEvent = 0xabcdefabcdef2345

// maxString bounds UTF-16 strings read out of emulated memory.
const maxString = 1024

// toUTF16 converts an ASCII string to its NUL terminated UTF-16LE
// representation.
func toUTF16(s string) []byte {
	var buf []byte

	for _, r := range utf16.Encode([]rune(s)) {
		buf = append(buf, byte(r), byte(r>>8))
	}

	return append(buf, 0x00, 0x00)
}

// readUTF16 reads a NUL terminated UTF-16LE string from emulated memory.
func readUTF16(addr uint64) (string, error) {
	var s []uint16

	for i := 0; i < maxString; i++ {
		r, err := readUint16(addr + uint64(i)*2)

		if err != nil {
			return "", err
		}

		if r == 0 {
			break
		}

		s = append(s, r)
	}

	return string(utf16.Decode(s)), nil
}

func readUint16(addr uint64) (val uint16, err error) {
	err = decode(&val, addr)
	return
}

// simpleTextOutput represents the EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL function
// pointer layout.
type simpleTextOutput struct {
	Reset             uint64
	OutputString      uint64
	TestString        uint64
	QueryMode         uint64
	SetMode           uint64
	SetAttribute      uint64
	ClearScreen       uint64
	SetCursorPosition uint64
	EnableCursor      uint64
	Mode              uint64
}

// simpleTextInputEx represents the EFI_SIMPLE_TEXT_INPUT_EX_PROTOCOL function
// pointer layout, WaitForKeyEx holds an event rather than a function.
type simpleTextInputEx struct {
	Reset               uint64
	ReadKeyStrokeEx     uint64
	WaitForKeyEx        uint64
	SetState            uint64
	RegisterKeyNotify   uint64
	UnregisterKeyNotify uint64
}

var conOutServiceNames = [9]string{
	"Reset",
	"OutputString",
	"TestString",
	"QueryMode",
	"SetMode",
	"SetAttribute",
	"ClearScreen",
	"SetCursorPosition",
	"EnableCursor",
}

// installConOut serializes the emulated text output protocol and returns its
// emulated memory address.
func (s *Session) installConOut() (addr uint64, err error) {
	handlers := map[string]Handler{
		"OutputString": s.outputString,
	}

	fns := make([]uint64, len(conOutServiceNames))

	for i, name := range conOutServiceNames {
		if fns[i], err = s.bind(ConOutTable, i, name, handlers[name]); err != nil {
			return
		}
	}

	out := &simpleTextOutput{
		Reset:             fns[0],
		OutputString:      fns[1],
		TestString:        fns[2],
		QueryMode:         fns[3],
		SetMode:           fns[4],
		SetAttribute:      fns[5],
		ClearScreen:       fns[6],
		SetCursorPosition: fns[7],
		EnableCursor:      fns[8],
	}

	buf, err := marshalBinary(out)

	if err != nil {
		return
	}

	if addr, err = s.arena(len(buf)); err != nil {
		return
	}

	return addr, encode(out, addr)
}

var conInServiceNames = [5]string{
	"Reset",
	"ReadKeyStrokeEx",
	"SetState",
	"RegisterKeyNotify",
	"UnregisterKeyNotify",
}

// installConIn serializes the emulated extended text input protocol, served
// through OpenProtocol, and returns its emulated memory address.
func (s *Session) installConIn() (addr uint64, err error) {
	handlers := map[string]Handler{
		"SetState": s.setState,
	}

	fns := make([]uint64, len(conInServiceNames))

	for i, name := range conInServiceNames {
		if fns[i], err = s.bind(ConInTable, i, name, handlers[name]); err != nil {
			return
		}
	}

	in := &simpleTextInputEx{
		Reset:               fns[0],
		ReadKeyStrokeEx:     fns[1],
		WaitForKeyEx:        WaitForKeyEvent,
		SetState:            fns[2],
		RegisterKeyNotify:   fns[3],
		UnregisterKeyNotify: fns[4],
	}

	buf, err := marshalBinary(in)

	if err != nil {
		return
	}

	if addr, err = s.arena(len(buf)); err != nil {
		return
	}

	return addr, encode(in, addr)
}

// outputString logs the UTF-16 text a foreign image writes to the emulated
// console.
func (s *Session) outputString(args []uint64) Status {
	str, err := readUTF16(args[1])

	if err != nil {
		return EFI_INVALID_PARAMETER
	}

	s.Log.Printf("uefi: console: %s", strings.TrimRight(str, "\r\n"))

	return EFI_SUCCESS
}

// setState acknowledges toggle state changes, there is no input device to
// configure.
func (s *Session) setState(args []uint64) Status {
	s.Log.Printf("uefi: ignoring input state change")
	return EFI_SUCCESS
}
