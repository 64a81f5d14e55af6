// Copyright (c) The efi-kexec authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Command pekexec loads a PE/EFI executable the way the kexec facility
// would: it builds the image segment list, copies and relocates it in a
// contiguous allocation and installs the emulated firmware tables, then
// prints the resulting geometry for inspection.
//
// The firmware tables are serialized with synthetic service pointers, no
// image code is executed.
package main

import (
	coff "debug/pe"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"unsafe"

	"github.com/u-root/uio/ulog"
	"github.com/u-root/uio/uio"
	"github.com/usbarmory/tamago/dma"

	"github.com/usbarmory/efi-kexec/pe"
	"github.com/usbarmory/efi-kexec/uefi"
)

var (
	poolSize = flag.Int("p", 16*1024*1024, "emulated memory pool size in bytes")
	verbose  = flag.Bool("v", false, "log the emulation trace")
)

func init() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <image.efi>\n", os.Args[0])
		flag.PrintDefaults()
	}
}

// newRegion backs an emulated memory region with a host allocation.
func newRegion(size int) (r *dma.Region, buf []byte, err error) {
	buf = make([]byte, size)
	r, err = dma.NewRegion(uint(uintptr(unsafe.Pointer(&buf[0]))), size, false)

	return
}

func roundPage(n int) int {
	return (n + pe.PageSize - 1) &^ (pe.PageSize - 1)
}

// segments builds a kexec-style segment list off a PE file, with the image
// header as first segment and the `.reloc` table as last, the layout a
// loading facility expects to receive.
func segments(path string) (img *pe.Image, err error) {
	f, err := os.Open(path)

	if err != nil {
		return
	}
	defer f.Close()

	p, err := coff.NewFile(f)

	if err != nil {
		return nil, fmt.Errorf("could not parse PE file, %v", err)
	}
	defer p.Close()

	buf, err := uio.ReadAll(f)

	if err != nil {
		return
	}

	img = &pe.Image{}

	// The loader expects to find the image header, everything before the
	// first section goes in the first segment.
	first := p.Sections[0]

	img.Segments = append(img.Segments, pe.Segment{
		Buf:  buf[0:first.Offset],
		Addr: pe.DefaultLoaderOffset,
		Size: roundPage(int(first.VirtualAddress)),
	})

	var reloc *pe.Segment

	for _, section := range p.Sections {
		s := pe.Segment{
			Buf:  buf[section.Offset : section.Offset+section.Size],
			Addr: pe.DefaultLoaderOffset + uint64(section.VirtualAddress),
			Size: roundPage(int(section.VirtualSize)),
		}

		// the last segment must hold the relocation table
		if section.Name == ".reloc" {
			reloc = &s
			continue
		}

		img.Segments = append(img.Segments, s)
	}

	if reloc == nil {
		return nil, fmt.Errorf("image has no .reloc section")
	}

	img.Segments = append(img.Segments, *reloc)

	switch oh := p.OptionalHeader.(type) {
	case *coff.OptionalHeader64:
		img.Start = pe.DefaultLoaderOffset + uint64(oh.AddressOfEntryPoint)
		img.ImageBase = oh.ImageBase
	default:
		return nil, fmt.Errorf("not a PE32+ image")
	}

	return
}

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	img, err := segments(flag.Arg(0))

	if err != nil {
		log.Fatalf("could not build segments, %v", err)
	}

	size := 0

	for _, s := range img.Segments {
		size += s.Size
	}

	exec, execBuf, err := newRegion(size + pe.PageSize)

	if err != nil {
		log.Fatalf("could not back image memory, %v", err)
	}
	defer runtime.KeepAlive(execBuf)

	img.Region = exec

	if err = img.Load(); err != nil {
		log.Fatalf("could not load image, %v", err)
	}

	blocks, fixups := img.Relocations()

	log.Printf("loaded %s", flag.Arg(0))
	log.Printf("  segments:    %d", len(img.Segments))
	log.Printf("  base:        %#x (linked at %#x)", img.Base(), img.LinkBase())
	log.Printf("  size:        %#x", img.Size())
	log.Printf("  entry:       %#x", img.Entry())
	log.Printf("  relocations: %d blocks, %d DIR64 fixups", blocks, fixups)

	pool, poolBuf, err := newRegion(*poolSize)

	if err != nil {
		log.Fatalf("could not back emulated memory pool, %v", err)
	}
	defer runtime.KeepAlive(poolBuf)

	session := &uefi.Session{
		Memory:    pool,
		Log:       ulog.Null,
		ImageBase: img.Base(),
		ImageSize: uint64(img.Size()),
	}

	if *verbose {
		session.Log = ulog.Log
	}

	if err = session.Install(); err != nil {
		log.Fatalf("could not install firmware tables, %v", err)
	}

	if err = session.Preallocate(200); err != nil {
		log.Fatalf("could not preallocate memory, %v", err)
	}

	st, err := session.SystemTable()

	if err != nil {
		log.Fatalf("could not decode system table, %v", err)
	}

	log.Printf("system table @ %#x", session.Address())
	log.Printf("  boot services:    %#x", st.BootServices)
	log.Printf("  runtime services: %#x", st.RuntimeServices)
	log.Printf("  conout:           %#x (handle %#x)", st.ConOut, st.ConsoleOutHandle)
	log.Printf("  conin handle:     %#x", st.ConsoleInHandle)
	log.Printf("  loaded image:     %#x", session.LoadedImageAddress())

	m, mapKey := session.MemoryMap()

	log.Printf("memory map (key %#x)", mapKey)

	for i, d := range m {
		log.Printf("  %3d: type %2d, %#016x - %#016x, %5d pages, attr %#x",
			i, d.Type, d.PhysicalStart, d.PhysicalEnd(), d.NumberOfPages, d.Attribute)
	}

	e820, err := session.E820()

	if err != nil {
		log.Fatalf("could not convert memory map, %v", err)
	}

	log.Printf("e820 map")

	for i, e := range e820 {
		log.Printf("  %3d: type %2d, %#016x - %#016x", i, e.MemType, e.Addr, e.Addr+e.Size)
	}
}
