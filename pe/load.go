// Copyright (c) The efi-kexec authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package pe

import (
	"errors"
	"fmt"
)

// Load copies the image segments into a single executable allocation
// reserved from the image Region and applies the base relocations found in
// the last segment.
//
// The allocation size is the sum of all segment sizes, each segment is
// copied at its destination address offset relative to the first segment.
// Partial copies are not rolled back on error, the caller is expected to
// discard the whole image.
//
// Exactly one load is performed per Image instance.
func (image *Image) Load() (err error) {
	if image.loaded {
		return errors.New("image already loaded")
	}

	if image.Region == nil {
		return errors.New("invalid memory region")
	}

	if len(image.Segments) == 0 {
		return errors.New("empty segment list")
	}

	if image.LoaderOffset == 0 {
		image.LoaderOffset = DefaultLoaderOffset
	}

	if image.ImageBase == 0 {
		image.ImageBase = DefaultImageBase
	}

	for i, seg := range image.Segments {
		if seg.Size <= 0 || len(seg.Buf) > seg.Size {
			return fmt.Errorf("invalid segment %d size (bufsz:%d memsz:%d)", i, len(seg.Buf), seg.Size)
		}

		image.size += seg.Size
	}

	image.linkBase = image.Segments[0].Addr

	if image.Start < image.linkBase {
		return fmt.Errorf("entry address %#x precedes image base %#x", image.Start, image.linkBase)
	}

	if image.size > int(image.Region.Size()) {
		return fmt.Errorf("image size %#x exceeds region size %#x", image.size, image.Region.Size())
	}

	addr, mem := image.Region.Reserve(image.size, PageSize)

	image.base = uint64(addr)
	image.mem = mem

	// The region might recycle previously released memory.
	clear(image.mem)

	for i, seg := range image.Segments {
		if err = image.copy(seg); err != nil {
			return fmt.Errorf("could not copy segment %d, %v", i, err)
		}
	}

	if err = image.relocate(image.Segments[len(image.Segments)-1]); err != nil {
		return
	}

	image.loaded = true

	return
}

// copy transfers a single segment in page-sized chunks, zero filling the
// destination range left uncovered by the source buffer.
func (image *Image) copy(seg Segment) error {
	var off int

	maddr := seg.Addr
	mbytes := seg.Size
	buf := seg.Buf

	if seg.Addr < image.linkBase {
		return fmt.Errorf("address %#x precedes image base %#x", seg.Addr, image.linkBase)
	}

	if off = int(seg.Addr - image.linkBase); off+seg.Size > image.size {
		return fmt.Errorf("address %#x exceeds allocation", seg.Addr)
	}

	for mbytes > 0 {
		mchunk := PageSize - int(maddr&(PageSize-1))

		if mchunk > mbytes {
			mchunk = mbytes
		}

		uchunk := min(len(buf), mchunk)

		copy(image.mem[off:off+uchunk], buf[:uchunk])

		buf = buf[uchunk:]
		off += mchunk
		maddr += uint64(mchunk)
		mbytes -= mchunk
	}

	return nil
}
