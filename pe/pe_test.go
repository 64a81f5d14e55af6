// Copyright (c) The efi-kexec authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package pe

import (
	"bytes"
	"encoding/binary"
	"errors"
	"runtime"
	"testing"
	"unsafe"

	"github.com/usbarmory/tamago/dma"
)

const testSlot = 0x100

func testRegion(t *testing.T, buf []byte) *dma.Region {
	t.Helper()

	r, err := dma.NewRegion(uint(uintptr(unsafe.Pointer(&buf[0]))), len(buf), false)

	if err != nil {
		t.Fatalf("could not create test region, %v", err)
	}

	return r
}

// testSegments returns a two-segment image: one code page holding a DIR64
// slot at testSlot initialized to ImageBase+0x40, followed by a single-block
// `.reloc` segment with one DIR64 entry pointing at that slot.
func testSegments(reloc []byte) []Segment {
	code := make([]byte, PageSize)
	binary.LittleEndian.PutUint64(code[testSlot:], DefaultImageBase+0x40)

	if reloc == nil {
		reloc = make([]byte, 16)
		binary.LittleEndian.PutUint32(reloc[0:], 0)  // Page RVA
		binary.LittleEndian.PutUint32(reloc[4:], 10) // Block Size
		binary.LittleEndian.PutUint16(reloc[8:], IMAGE_REL_BASED_DIR64<<12|testSlot)
	}

	return []Segment{
		{Buf: code, Addr: DefaultLoaderOffset, Size: PageSize},
		{Buf: reloc, Addr: DefaultLoaderOffset + PageSize, Size: PageSize},
	}
}

func TestLoadAndRelocate(t *testing.T) {
	buf := make([]byte, 4*PageSize)
	defer runtime.KeepAlive(buf)

	image := &Image{
		Region:   testRegion(t, buf),
		Segments: testSegments(nil),
		Start:    DefaultLoaderOffset + 0x50,
	}

	if err := image.Load(); err != nil {
		t.Fatalf("load failed, %v", err)
	}

	if image.Size() != 2*PageSize {
		t.Errorf("allocation size %#x, expected %#x", image.Size(), 2*PageSize)
	}

	if image.LinkBase() != DefaultLoaderOffset {
		t.Errorf("link base %#x, expected %#x", image.LinkBase(), DefaultLoaderOffset)
	}

	if entry := image.Entry(); entry != uint(image.Base())+0x50 {
		t.Errorf("entry %#x, expected %#x", entry, uint(image.Base())+0x50)
	}

	if blocks, fixups := image.Relocations(); blocks != 1 || fixups != 1 {
		t.Errorf("relocations %d/%d, expected 1/1", blocks, fixups)
	}

	// IMAGE_BASE+0x40 must have been rewritten to the runtime address
	// corresponding to offset 0x40.
	val := binary.LittleEndian.Uint64(image.Bytes()[testSlot:])

	if expected := image.Base() + 0x40; val != expected {
		t.Errorf("relocated slot %#x, expected %#x", val, expected)
	}
}

func TestLoadDeterminism(t *testing.T) {
	buf := make([]byte, 4*PageSize)
	defer runtime.KeepAlive(buf)

	load := func() []byte {
		image := &Image{
			Region:   testRegion(t, buf),
			Segments: testSegments(nil),
			Start:    DefaultLoaderOffset + 0x50,
		}

		if err := image.Load(); err != nil {
			t.Fatalf("load failed, %v", err)
		}

		return bytes.Clone(image.Bytes())
	}

	if !bytes.Equal(load(), load()) {
		t.Error("identical inputs at an identical address produced different images")
	}
}

func TestLoadZeroFill(t *testing.T) {
	buf := make([]byte, 4*PageSize)
	defer runtime.KeepAlive(buf)

	segments := testSegments(nil)

	// shrink the code source buffer, the segment memory size is unchanged
	segments[0].Buf = segments[0].Buf[0 : testSlot+8]

	image := &Image{
		Region:   testRegion(t, buf),
		Segments: segments,
		Start:    DefaultLoaderOffset + 0x50,
	}

	if err := image.Load(); err != nil {
		t.Fatalf("load failed, %v", err)
	}

	for i, b := range image.Bytes()[testSlot+8 : PageSize] {
		if b != 0 {
			t.Fatalf("expected zero fill at %#x, got %#x", testSlot+8+i, b)
		}
	}
}

func TestRelocateIgnoresOtherTypes(t *testing.T) {
	buf := make([]byte, 4*PageSize)
	defer runtime.KeepAlive(buf)

	reloc := make([]byte, 16)
	binary.LittleEndian.PutUint32(reloc[0:], 0)
	binary.LittleEndian.PutUint32(reloc[4:], 12)
	binary.LittleEndian.PutUint16(reloc[8:], IMAGE_REL_BASED_ABSOLUTE<<12|testSlot)
	binary.LittleEndian.PutUint16(reloc[10:], 3<<12|testSlot) // IMAGE_REL_BASED_HIGHLOW

	image := &Image{
		Region:   testRegion(t, buf),
		Segments: testSegments(reloc),
		Start:    DefaultLoaderOffset + 0x50,
	}

	if err := image.Load(); err != nil {
		t.Fatalf("load failed, %v", err)
	}

	if _, fixups := image.Relocations(); fixups != 0 {
		t.Errorf("applied %d fixups, expected none", fixups)
	}

	if val := binary.LittleEndian.Uint64(image.Bytes()[testSlot:]); val != DefaultImageBase+0x40 {
		t.Errorf("slot %#x was altered to %#x", testSlot, val)
	}
}

func TestRelocateCorruptBlocks(t *testing.T) {
	overflow := make([]byte, 16)
	binary.LittleEndian.PutUint32(overflow[4:], PageSize*2) // runs past the segment

	undersized := make([]byte, 16)
	binary.LittleEndian.PutUint32(undersized[4:], 4) // smaller than its own header

	odd := make([]byte, 16)
	binary.LittleEndian.PutUint32(odd[4:], 11)

	target := make([]byte, 16)
	binary.LittleEndian.PutUint32(target[0:], 3*PageSize) // Page RVA outside the image
	binary.LittleEndian.PutUint32(target[4:], 10)
	binary.LittleEndian.PutUint16(target[8:], IMAGE_REL_BASED_DIR64<<12)

	truncated := make([]byte, 4) // not even a full block header
	binary.LittleEndian.PutUint32(truncated[0:], 1)

	for _, tt := range []struct {
		name  string
		reloc []byte
	}{
		{"overflow", overflow},
		{"undersized", undersized},
		{"odd", odd},
		{"target", target},
		{"truncated", truncated},
	} {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 4*PageSize)
			defer runtime.KeepAlive(buf)

			segments := testSegments(tt.reloc)
			segments[1].Buf = tt.reloc

			image := &Image{
				Region:   testRegion(t, buf),
				Segments: segments,
				Start:    DefaultLoaderOffset + 0x50,
			}

			if err := image.Load(); !errors.Is(err, ErrCorruptImage) {
				t.Errorf("expected corrupt image error, got %v", err)
			}
		})
	}
}

func TestLoadInvalidSegments(t *testing.T) {
	buf := make([]byte, 4*PageSize)
	defer runtime.KeepAlive(buf)

	small := make([]byte, PageSize)
	defer runtime.KeepAlive(small)

	for _, tt := range []struct {
		name  string
		image *Image
	}{
		{"empty", &Image{Region: testRegion(t, buf)}},
		{"exhausted region", &Image{
			Region:   testRegion(t, small),
			Segments: testSegments(nil),
			Start:    DefaultLoaderOffset + 0x50,
		}},
		{"entry", &Image{
			Region:   testRegion(t, buf),
			Segments: testSegments(nil),
			Start:    DefaultLoaderOffset - PageSize,
		}},
		{"oversized buffer", &Image{
			Region: testRegion(t, buf),
			Segments: []Segment{
				{Buf: make([]byte, 2*PageSize), Addr: DefaultLoaderOffset, Size: PageSize},
			},
			Start: DefaultLoaderOffset,
		}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.image.Load(); err == nil {
				t.Error("expected error")
			}
		})
	}
}
