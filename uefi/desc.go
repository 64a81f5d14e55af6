// Copyright (c) The efi-kexec authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

import (
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/usbarmory/tamago/dma"
)

const align = 8

func marshalBinary(data any) (buf []byte, err error) {
	b := new(bytes.Buffer)
	err = binary.Write(b, binary.LittleEndian, data)
	return b.Bytes(), err
}

func unmarshalBinary(buf []byte, data any) (err error) {
	_, err = binary.Decode(buf, binary.LittleEndian, data)
	return
}

// view maps size bytes at the argument emulated memory address for direct
// access.
func view(addr uint64, size int) (buf []byte, err error) {
	if addr == 0 {
		return nil, errors.New("invalid address")
	}

	// reservations are rounded up to the region alignment
	n := size

	if r := size % align; r != 0 {
		n += align - r
	}

	r, err := dma.NewRegion(uint(addr), n, true)

	if err != nil {
		return
	}

	ptr, buf := r.Reserve(size, 0)
	defer r.Release(ptr)

	return buf, nil
}

// decode reads the binary representation of the data structure from the
// argument emulated memory address.
func decode(data any, addr uint64) (err error) {
	t, _ := marshalBinary(data)

	buf, err := view(addr, len(t))

	if err != nil {
		return
	}

	return unmarshalBinary(buf, data)
}

// encode writes the binary representation of the data structure at the
// argument emulated memory address.
func encode(data any, addr uint64) (err error) {
	t, err := marshalBinary(data)

	if err != nil {
		return
	}

	buf, err := view(addr, len(t))

	if err != nil {
		return
	}

	copy(buf, t)

	return
}

func readUint64(addr uint64) (val uint64, err error) {
	err = decode(&val, addr)
	return
}

func writeUint64(addr uint64, val uint64) error {
	return encode(&val, addr)
}

func readUint32(addr uint64) (val uint32, err error) {
	err = decode(&val, addr)
	return
}

func writeUint32(addr uint64, val uint32) error {
	return encode(&val, addr)
}
