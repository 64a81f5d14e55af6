// Copyright (c) The efi-kexec authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package pe

import (
	"encoding/binary"
	"fmt"
)

// relocation block header: Page RVA followed by Block Size, the latter
// inclusive of the header itself.
const blockHeaderSize = 8

// relocate walks the `.reloc` table held by the argument segment and patches
// every DIR64 entry for the image runtime load address.
//
// The walk stops at a zero sized block or at the end of the segment buffer.
// All block and entry bounds are validated before use, malformed relocation
// data aborts the load with an error wrapping ErrCorruptImage rather than
// corrupting adjacent memory.
func (image *Image) relocate(seg Segment) error {
	buf := seg.Buf

	// Runtime address of the image entry point and its link-time
	// counterpart before the producer offset was applied; their
	// difference is the bias between link-time and runtime addresses.
	entry := image.base + (image.Start - image.linkBase)
	bias := entry - (image.Start - image.LoaderOffset)

	for off := 0; off < len(buf); {
		// Producers pad the section raw size past its virtual size, an
		// all-zero tail too short for a block header terminates the
		// table like a zero block size does.
		if off+blockHeaderSize > len(buf) {
			for _, b := range buf[off:] {
				if b != 0 {
					return fmt.Errorf("%w: truncated relocation block header at %#x", ErrCorruptImage, off)
				}
			}

			break
		}

		vaOffset := binary.LittleEndian.Uint32(buf[off:])
		totalSize := binary.LittleEndian.Uint32(buf[off+4:])

		// The producer pads the `.reloc` section past its virtual
		// size, a zero block size marks the end of the table.
		if totalSize == 0 {
			break
		}

		if totalSize < blockHeaderSize || totalSize%2 != 0 || off+int(totalSize) > len(buf) {
			return fmt.Errorf("%w: invalid relocation block size %#x at %#x", ErrCorruptImage, totalSize, off)
		}

		for p := off + blockHeaderSize; p < off+int(totalSize); p += 2 {
			if err := image.fixup(binary.LittleEndian.Uint16(buf[p:]), vaOffset, bias); err != nil {
				return err
			}
		}

		image.blocks += 1
		off += int(totalSize)
	}

	return nil
}

// fixup applies a single relocation entry, a 12-bit page offset tagged with
// a 4-bit relocation type. Only 64-bit absolute address entries
// (IMAGE_REL_BASED_DIR64) are rewritten, any other type is left untouched.
func (image *Image) fixup(entry uint16, vaOffset uint32, bias uint64) error {
	if entry>>12 != IMAGE_REL_BASED_DIR64 {
		return nil
	}

	addr := bias + uint64(vaOffset) + uint64(entry&0xfff)

	if addr < image.base || addr+8 > image.base+uint64(image.size) {
		return fmt.Errorf("%w: relocation target %#x outside image", ErrCorruptImage, addr)
	}

	off := addr - image.base
	val := binary.LittleEndian.Uint64(image.mem[off:])

	binary.LittleEndian.PutUint64(image.mem[off:], val-image.ImageBase+bias)
	image.fixups += 1

	return nil
}
