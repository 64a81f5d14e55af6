// Copyright (c) The efi-kexec authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package pe implements loading and base relocation of Windows Portable
// Executable (PE) images supplied as kexec-style memory segments, following
// the specifications at:
//
//	https://learn.microsoft.com/en-us/windows/win32/debug/pe-format
//
// The caller provides an ordered segment list with the explicit convention
// that the last segment holds the image `.reloc` table; segments are copied
// into a single executable allocation and DIR64 base relocations are applied
// for the new load address.
package pe

import (
	"errors"

	"github.com/usbarmory/tamago/dma"
)

// PageSize represents the page size in bytes used for chunked segment copies
// and allocation rounding.
const PageSize = 4096 // 4 KiB

const (
	// DefaultLoaderOffset is the offset the segment producer adds to PE
	// section addresses when building the segment list (see u-root
	// pkg/boot/efi).
	DefaultLoaderOffset = 0x1000000

	// DefaultImageBase is the PE link-time image base, as found in the
	// image optional header.
	DefaultImageBase = 0x10000000
)

// PE base relocation types
// https://learn.microsoft.com/en-us/windows/win32/debug/pe-format#base-relocation-types
const (
	// IMAGE_REL_BASED_ABSOLUTE entries pad relocation blocks and are
	// skipped.
	IMAGE_REL_BASED_ABSOLUTE = 0

	// IMAGE_REL_BASED_DIR64 entries are 64-bit absolute addresses and the
	// only relocation type applied by this package.
	IMAGE_REL_BASED_DIR64 = 10
)

// ErrCorruptImage is wrapped by all errors caused by malformed relocation
// data, as opposed to invalid load parameters.
var ErrCorruptImage = errors.New("corrupt PE image")

// Segment represents a single kexec-style memory segment: a source buffer
// and its destination address range as authored in the image.
//
// Size is the in-memory size of the segment (memsz), the source buffer can
// be smaller (bufsz), in which case the remainder is zero filled.
type Segment struct {
	// Buf is the segment source buffer.
	Buf []byte

	// Addr is the segment destination memory address.
	Addr uint64

	// Size is the segment destination memory size.
	Size int
}

// Image represents a PE image to be loaded from its segment list into a
// contiguous executable allocation.
//
// The last entry in Segments is treated, unconditionally, as the image
// `.reloc` table.
type Image struct {
	// Region is the executable memory pool backing the image allocation.
	Region *dma.Region

	// Segments is the ordered image segment list.
	Segments []Segment

	// Start is the declared image entry address.
	Start uint64

	// LoaderOffset is the offset applied by the segment producer to all
	// destination addresses (DefaultLoaderOffset when zero).
	LoaderOffset uint64

	// ImageBase is the PE link-time image base (DefaultImageBase when
	// zero).
	ImageBase uint64

	base     uint64
	size     int
	mem      []byte
	linkBase uint64
	blocks   int
	fixups   int
	loaded   bool
}

// Base returns the image allocation address.
func (image *Image) Base() uint64 {
	return image.base
}

// Size returns the image allocation size.
func (image *Image) Size() int {
	return image.size
}

// Bytes returns the loaded image memory.
func (image *Image) Bytes() []byte {
	return image.mem
}

// LinkBase returns the as-authored address of the first image segment, which
// is taken as the image load address at link time.
func (image *Image) LinkBase() uint64 {
	return image.linkBase
}

// Entry returns the runtime entry point address of a loaded image.
func (image *Image) Entry() uint {
	return uint(image.base + (image.Start - image.linkBase))
}

// Relocations returns the number of parsed relocation blocks and applied
// DIR64 fixups of a loaded image.
func (image *Image) Relocations() (blocks int, fixups int) {
	return image.blocks, image.fixups
}
