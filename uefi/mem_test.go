// Copyright (c) The efi-kexec authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

import (
	"runtime"
	"testing"

	"github.com/u-root/u-root/pkg/boot/bzimage"
)

func TestAllocatePages(t *testing.T) {
	s, buf := installedSession(t)
	defer runtime.KeepAlive(buf)

	_, mapKey := s.MemoryMap()

	addr, status := s.AllocatePages(AllocateAnyPages, EfiLoaderData, 4, 0)

	if status != EFI_SUCCESS || addr == 0 {
		t.Fatalf("allocation failed with %s", status)
	}

	m, newKey := s.MemoryMap()

	if newKey == mapKey {
		t.Error("map key did not change after allocation")
	}

	d := m[len(m)-1]

	if d.Type != EfiLoaderData || d.PhysicalStart != addr || d.NumberOfPages != 4 {
		t.Errorf("unexpected descriptor %+v", d)
	}

	if d.Attribute != defaultMemoryAttributes {
		t.Errorf("unexpected attributes %#x", d.Attribute)
	}

	if d.PhysicalEnd() != addr+4*PageSize {
		t.Errorf("unexpected end address %#x", d.PhysicalEnd())
	}

	// free requests must exactly match the allocation
	if status = s.FreePages(addr, 2); status != EFI_INVALID_PARAMETER {
		t.Errorf("partial free returned %s", status)
	}

	if status = s.FreePages(addr+PageSize, 4); status != EFI_INVALID_PARAMETER {
		t.Errorf("offset free returned %s", status)
	}

	if status = s.FreePages(addr, 4); status != EFI_SUCCESS {
		t.Fatalf("free returned %s", status)
	}

	m, _ = s.MemoryMap()

	if d = m[len(m)-1]; d.Type != EfiConventionalMemory {
		t.Errorf("freed descriptor type %d, expected conventional memory", d.Type)
	}

	if status = s.FreePages(0x123456000, 1); status != EFI_INVALID_PARAMETER {
		t.Errorf("untracked free returned %s", status)
	}
}

func TestAllocatePagesUnsupported(t *testing.T) {
	s, buf := installedSession(t)
	defer runtime.KeepAlive(buf)

	if _, status := s.AllocatePages(AllocateMaxAddress, EfiLoaderData, 1, 0); status != EFI_UNSUPPORTED {
		t.Errorf("AllocateMaxAddress returned %s", status)
	}

	if _, status := s.AllocatePages(AllocateAnyPages, EfiRuntimeServicesData, 1, 0); status != EFI_UNSUPPORTED {
		t.Errorf("runtime services memory type returned %s", status)
	}

	if _, status := s.AllocatePages(AllocateAnyPages, EfiLoaderData, 0, 0); status != EFI_INVALID_PARAMETER {
		t.Errorf("zero page allocation returned %s", status)
	}
}

func TestAllocateAddress(t *testing.T) {
	s, buf := installedSession(t)
	defer runtime.KeepAlive(buf)

	reserved := s.Reserved()

	// fixed address allocations register caller-owned memory without
	// drawing from the pool
	addr, status := s.AllocatePages(AllocateAddress, EfiLoaderCode, 16, 0x80000000)

	if status != EFI_SUCCESS || addr != 0x80000000 {
		t.Fatalf("allocation failed with %s @ %#x", status, addr)
	}

	if s.Reserved() != reserved {
		t.Error("fixed address allocation drew from the pool")
	}

	m, _ := s.MemoryMap()
	d := m[len(m)-1]

	if d.Type != EfiLoaderCode || d.PhysicalStart != 0x80000000 || d.NumberOfPages != 16 {
		t.Errorf("unexpected descriptor %+v", d)
	}

	// in-use ranges cannot be claimed again
	if _, status = s.AllocatePages(AllocateAddress, EfiLoaderData, 1, 0x80000000+8*PageSize); status != EFI_NOT_FOUND {
		t.Errorf("overlapping allocation returned %s", status)
	}

	if status = s.FreePages(0x80000000, 16); status != EFI_SUCCESS {
		t.Fatalf("free returned %s", status)
	}

	// freed ranges can
	if _, status = s.AllocatePages(AllocateAddress, EfiLoaderData, 1, 0x80000000+8*PageSize); status != EFI_SUCCESS {
		t.Errorf("allocation over freed range returned %s", status)
	}
}

func TestAllocatePool(t *testing.T) {
	s, buf := installedSession(t)
	defer runtime.KeepAlive(buf)

	addr, status := s.AllocatePool(EfiLoaderData, 100)

	if status != EFI_SUCCESS || addr == 0 {
		t.Fatalf("allocation failed with %s", status)
	}

	// pool allocations are tracked page rounded
	m, _ := s.MemoryMap()
	d := m[len(m)-1]

	if d.PhysicalStart != addr || d.NumberOfPages != 1 {
		t.Errorf("unexpected descriptor %+v", d)
	}
}

func TestOutOfResources(t *testing.T) {
	s, buf := installedSession(t)
	defer runtime.KeepAlive(buf)

	if _, status := s.AllocatePool(EfiLoaderData, testPoolSize); status != EFI_OUT_OF_RESOURCES {
		t.Errorf("oversized allocation returned %s", status)
	}
}

func TestAllocatePoolAccounting(t *testing.T) {
	pages := 16

	s, buf := testSession(t, pages*PageSize)
	defer runtime.KeepAlive(buf)

	var status Status

	// sub page allocations each consume a full page, exhaustion must
	// surface as a status rather than a fault
	n := 0

	for ; n < 2*pages; n++ {
		if _, status = s.AllocatePool(EfiLoaderData, 8); status != EFI_SUCCESS {
			break
		}
	}

	if status != EFI_OUT_OF_RESOURCES {
		t.Fatalf("pool exhaustion returned %s", status)
	}

	// one page stays as alignment headroom
	if n != pages-1 {
		t.Errorf("%d sub page allocations in a %d page pool", n, pages)
	}

	if s.Reserved() != (pages-1)*PageSize {
		t.Errorf("reserved %d bytes, expected %d", s.Reserved(), (pages-1)*PageSize)
	}
}

func TestAllocatePoolZeroed(t *testing.T) {
	s, buf := testSession(t, testPoolSize)
	defer runtime.KeepAlive(buf)

	// the pool might hand out recycled memory
	for i := range buf {
		buf[i] = 0xff
	}

	addr, status := s.AllocatePool(EfiLoaderData, 512)

	if status != EFI_SUCCESS {
		t.Fatalf("allocation failed with %s", status)
	}

	mem, err := view(addr, 512)

	if err != nil {
		t.Fatalf("could not map allocation, %v", err)
	}

	for i, b := range mem {
		if b != 0 {
			t.Fatalf("expected zeroed allocation at %#x, got %#x", i, b)
		}
	}
}

func TestGetMemoryMap(t *testing.T) {
	s, buf := installedSession(t)
	defer runtime.KeepAlive(buf)

	if err := s.Preallocate(200); err != nil {
		t.Fatalf("preallocation failed, %v", err)
	}

	var (
		memoryMapSize = testArena(t, s, 8)
		mapKey        = testArena(t, s, 8)
		descSize      = testArena(t, s, 8)
		descVersion   = testArena(t, s, 8)
	)

	args := make([]uint64, maxArgs)
	args[0] = memoryMapSize
	args[2] = mapKey
	args[3] = descSize
	args[4] = descVersion

	// undersized buffer reports the exact required size
	if err := writeUint64(memoryMapSize, 0); err != nil {
		t.Fatal(err)
	}

	status, err := s.Call(BootTable, "GetMemoryMap", args)

	if err != nil {
		t.Fatalf("call failed, %v", err)
	}

	if status != EFI_BUFFER_TOO_SMALL {
		t.Fatalf("status %s, expected EFI_BUFFER_TOO_SMALL", status)
	}

	required, _ := readUint64(memoryMapSize)
	expected := uint64(len(s.allocations) * descriptorSize)

	if required != expected {
		t.Fatalf("required size %d, expected %d", required, expected)
	}

	memoryMap := testArena(t, s, int(required))
	args[1] = memoryMap

	if status, _ = s.Call(BootTable, "GetMemoryMap", args); status != EFI_SUCCESS {
		t.Fatalf("status %s, expected EFI_SUCCESS", status)
	}

	if size, _ := readUint64(memoryMapSize); size != required {
		t.Errorf("map size %d, expected %d", size, required)
	}

	if ds, _ := readUint64(descSize); ds != descriptorSize {
		t.Errorf("descriptor size %d, expected %d", ds, descriptorSize)
	}

	if dv, _ := readUint32(descVersion); dv != 1 {
		t.Errorf("descriptor version %d, expected 1", dv)
	}

	if key, _ := readUint64(mapKey); key != s.epoch {
		t.Errorf("map key %#x, expected %#x", key, s.epoch)
	}

	// the serialized map matches the tracked descriptors
	mbuf, err := view(memoryMap, int(required))

	if err != nil {
		t.Fatalf("could not map buffer, %v", err)
	}

	for i, d := range s.allocations {
		desc := &MemoryDescriptor{}

		if err = unmarshalBinary(mbuf[i*descriptorSize:], desc); err != nil {
			t.Fatalf("could not decode descriptor %d, %v", i, err)
		}

		if *desc != *d {
			t.Errorf("descriptor %d mismatch, %+v != %+v", i, desc, d)
		}
	}
}

func TestE820(t *testing.T) {
	s, buf := installedSession(t)
	defer runtime.KeepAlive(buf)

	if _, status := s.AllocatePages(AllocateAnyPages, EfiConventionalMemory, 8, 0); status != EFI_SUCCESS {
		t.Fatalf("allocation failed with %s", status)
	}

	m, err := s.E820()

	if err != nil {
		t.Fatalf("conversion failed, %v", err)
	}

	if len(m) != len(s.allocations) {
		t.Fatalf("%d E820 entries for %d descriptors", len(m), len(s.allocations))
	}

	if e := m[len(m)-1]; e.MemType != bzimage.RAM || e.Size != 8*PageSize {
		t.Errorf("unexpected E820 entry %+v", e)
	}
}
