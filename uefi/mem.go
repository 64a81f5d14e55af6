// Copyright (c) The efi-kexec authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

import (
	"github.com/u-root/u-root/pkg/boot/bzimage"
)

// Advanced Configuration and Power Interface Specification (ACPI)
// Version 6.0 - Table 15-312 Address Range Types12
const AddressRangePersistentMemory = 7

// PageSize represents the EFI page size in bytes
const PageSize = 4096 // 4 KiB

// EFI memory cacheability attributes
const (
	EFI_MEMORY_UC = 1 << iota
	EFI_MEMORY_WC
	EFI_MEMORY_WT
	EFI_MEMORY_WB
)

// defaultMemoryAttributes is advertised on every tracked allocation.
const defaultMemoryAttributes = EFI_MEMORY_UC | EFI_MEMORY_WC | EFI_MEMORY_WT | EFI_MEMORY_WB

// MemoryDescriptor represents an EFI Memory Descriptor
type MemoryDescriptor struct {
	Type          uint32
	_             uint32
	PhysicalStart uint64
	VirtualStart  uint64
	NumberOfPages uint64
	Attribute     uint64
	_             uint64
}

// descriptorSize is the EFI_MEMORY_DESCRIPTOR wire size reported through
// GetMemoryMap.
const descriptorSize = 48

// End returns the descriptor physical end address.
func (d *MemoryDescriptor) PhysicalEnd() uint64 {
	return d.PhysicalStart + d.NumberOfPages*PageSize
}

// Size returns the descriptor size.
func (d *MemoryDescriptor) Size() int {
	return int(d.NumberOfPages * PageSize)
}

// E820 converts an EFI Memory Map entry to an x86 E820 one suitable for use
// after exiting EFI Boot Services.
func (d *MemoryDescriptor) E820() (bzimage.E820Entry, error) {
	e := bzimage.E820Entry{
		Addr: d.PhysicalStart,
		Size: d.NumberOfPages * PageSize,
	}

	// Unified Extensible Firmware Interface (UEFI) Specification
	// Version 2.10 - Table 7.10: Memory Type Usage after ExitBootServices()
	switch d.Type {
	case EfiLoaderCode, EfiLoaderData, EfiBootServicesCode, EfiBootServicesData, EfiConventionalMemory:
		e.MemType = bzimage.RAM
	case EfiPersistentMemory:
		e.MemType = AddressRangePersistentMemory
	case EfiACPIReclaimMemory:
		e.MemType = bzimage.ACPI
	case EfiACPIMemoryNVS:
		e.MemType = bzimage.NVS
	default:
		e.MemType = bzimage.Reserved
	}

	return e, nil
}

// track appends an allocation descriptor to the emulated memory map.
func (s *Session) track(memoryType int, addr uint64, pages uint64) *MemoryDescriptor {
	d := &MemoryDescriptor{
		Type:          uint32(memoryType),
		PhysicalStart: addr,
		VirtualStart:  0,
		NumberOfPages: pages,
		Attribute:     defaultMemoryAttributes,
	}

	s.allocations = append(s.allocations, d)
	s.epoch += 1

	s.Log.Printf("uefi: tracking %d pages of type %d @ %#x", pages, memoryType, addr)

	return d
}

// reserve carves size bytes out of the emulated memory pool, zero filled.
//
// Consumption is accounted in page rounded blocks, matching what the
// allocation draws from the region, so that exhaustion is always reported as
// EFI_OUT_OF_RESOURCES rather than faulting within the region allocator.
func (s *Session) reserve(size int) (addr uint64, status Status) {
	if size <= 0 {
		return 0, EFI_INVALID_PARAMETER
	}

	rounded := ((size-1)/PageSize + 1) * PageSize

	// One page of headroom covers the alignment slack of regions whose
	// base address is not page aligned.
	if s.reserved+rounded+PageSize > int(s.Memory.Size()) {
		s.Log.Printf("uefi: out of pool memory (%d of %d bytes in use)", s.reserved, s.Memory.Size())
		return 0, EFI_OUT_OF_RESOURCES
	}

	ptr, buf := s.Memory.Reserve(size, PageSize)
	s.reserved += rounded

	// The region might recycle previously released memory.
	clear(buf)

	return uint64(ptr), EFI_SUCCESS
}

// overlaps returns whether the argument range intersects a tracked
// allocation still in use.
func (s *Session) overlaps(addr uint64, pages uint64) bool {
	end := addr + pages*PageSize

	for _, d := range s.allocations {
		if d.Type == EfiConventionalMemory {
			continue
		}

		if addr < d.PhysicalEnd() && end > d.PhysicalStart {
			return true
		}
	}

	return false
}

func validMemoryType(memoryType int) bool {
	switch memoryType {
	case EfiLoaderCode, EfiLoaderData, EfiConventionalMemory:
		return true
	default:
		return false
	}
}

// AllocatePool implements EFI_BOOT_SERVICES.AllocatePool() over the emulated
// memory pool, the allocation is tracked in the emulated memory map rounded
// up to full pages.
func (s *Session) AllocatePool(memoryType int, size int) (addr uint64, status Status) {
	if addr, status = s.reserve(size); status != EFI_SUCCESS {
		return
	}

	pages := uint64((size-1)/PageSize + 1)
	s.track(memoryType, addr, pages)

	return
}

// AllocatePages implements EFI_BOOT_SERVICES.AllocatePages() over the
// emulated memory pool.
//
// AllocateAnyPages draws from the pool, AllocateAddress registers the
// caller-owned physical range in the emulated memory map without drawing from
// the pool, failing with EFI_NOT_FOUND when the range overlaps an allocation
// still in use, any other allocation type is unsupported.
func (s *Session) AllocatePages(allocateType int, memoryType int, pages uint64, addr uint64) (uint64, Status) {
	if !validMemoryType(memoryType) {
		s.Log.Printf("uefi: unsupported memory type %#x", memoryType)
		return addr, EFI_UNSUPPORTED
	}

	if pages == 0 {
		return addr, EFI_INVALID_PARAMETER
	}

	switch allocateType {
	case AllocateAddress:
		if s.overlaps(addr, pages) {
			s.Log.Printf("uefi: fixed allocation %#x (%d pages) overlaps tracked memory", addr, pages)
			return addr, EFI_NOT_FOUND
		}

		s.track(memoryType, addr, pages)
		return addr, EFI_SUCCESS
	case AllocateAnyPages:
		addr, status := s.AllocatePool(memoryType, int(pages)*PageSize)
		return addr, status
	default:
		s.Log.Printf("uefi: unsupported allocation type %d", allocateType)
		return addr, EFI_UNSUPPORTED
	}
}

// FreePages implements EFI_BOOT_SERVICES.FreePages() over the emulated memory
// map.
//
// A free request must exactly match a tracked allocation in both start
// address and page count, the matching descriptor is then flipped to
// EfiConventionalMemory in place. Pool memory is never returned.
func (s *Session) FreePages(addr uint64, pages uint64) Status {
	for _, d := range s.allocations {
		if addr < d.PhysicalStart || addr >= d.PhysicalEnd() {
			continue
		}

		if addr != d.PhysicalStart || pages != d.NumberOfPages {
			s.Log.Printf("uefi: free request %#x (%d pages) does not match allocation", addr, pages)
			return EFI_INVALID_PARAMETER
		}

		d.Type = EfiConventionalMemory
		s.epoch += 1

		return EFI_SUCCESS
	}

	s.Log.Printf("uefi: free request %#x (%d pages) not tracked", addr, pages)

	return EFI_INVALID_PARAMETER
}

// Preallocate places a large EfiConventionalMemory allocation in the emulated
// memory map, OS loaders check for its presence before attempting any
// allocation of their own.
func (s *Session) Preallocate(pages int) (err error) {
	addr, status := s.AllocatePages(AllocateAnyPages, EfiConventionalMemory, uint64(pages), 0)

	if status != EFI_SUCCESS {
		return status.Error()
	}

	s.Log.Printf("uefi: preallocated %d conventional memory pages @ %#x", pages, addr)

	return
}

// MemoryMap returns a copy of the emulated memory map descriptors along with
// the map key matching its current state.
func (s *Session) MemoryMap() (m []*MemoryDescriptor, mapKey uint64) {
	for _, d := range s.allocations {
		desc := *d
		m = append(m, &desc)
	}

	return m, s.epoch
}

// E820 converts the emulated memory map to an x86 E820 one.
func (s *Session) E820() (m []bzimage.E820Entry, err error) {
	for _, d := range s.allocations {
		e, err := d.E820()

		if err != nil {
			return nil, err
		}

		m = append(m, e)
	}

	return
}

// getMemoryMap implements the EFI_BOOT_SERVICES.GetMemoryMap() call boundary.
//
// The required size is reported through the MemoryMapSize pointer with
// EFI_BUFFER_TOO_SMALL when the caller buffer cannot hold the current map.
// The map key is an epoch counter incremented on every memory map mutation.
func (s *Session) getMemoryMap(args []uint64) Status {
	var (
		memoryMapSize     = args[0]
		memoryMap         = args[1]
		mapKey            = args[2]
		descSize          = args[3]
		descriptorVersion = args[4]
	)

	size := len(s.allocations) * descriptorSize

	if err := writeUint64(descSize, descriptorSize); err != nil {
		return EFI_INVALID_PARAMETER
	}

	if err := writeUint32(descriptorVersion, 1); err != nil {
		return EFI_INVALID_PARAMETER
	}

	bufSize, err := readUint64(memoryMapSize)

	if err != nil {
		return EFI_INVALID_PARAMETER
	}

	if bufSize < uint64(size) {
		s.Log.Printf("uefi: memory map buffer too small (%d bytes, need %d)", bufSize, size)
		_ = writeUint64(memoryMapSize, uint64(size))
		return EFI_BUFFER_TOO_SMALL
	}

	buf, err := view(memoryMap, size)

	if err != nil {
		return EFI_INVALID_PARAMETER
	}

	for i, d := range s.allocations {
		t, err := marshalBinary(d)

		if err != nil {
			return EFI_DEVICE_ERROR
		}

		copy(buf[i*descriptorSize:], t)

		s.Log.Printf("uefi: %3d: type %2d, %#016x -> %#016x, %5d, %#016x",
			i, d.Type, d.PhysicalStart, d.VirtualStart, d.NumberOfPages, d.Attribute)
	}

	if err = writeUint64(memoryMapSize, uint64(size)); err != nil {
		return EFI_INVALID_PARAMETER
	}

	if err = writeUint64(mapKey, s.epoch); err != nil {
		return EFI_INVALID_PARAMETER
	}

	return EFI_SUCCESS
}

func (s *Session) allocatePages(args []uint64) Status {
	memPtr := args[3]

	addr, err := readUint64(memPtr)

	if err != nil {
		return EFI_INVALID_PARAMETER
	}

	addr, status := s.AllocatePages(int(args[0]), int(args[1]), args[2], addr)

	if status != EFI_SUCCESS {
		return status
	}

	if err = writeUint64(memPtr, addr); err != nil {
		return EFI_INVALID_PARAMETER
	}

	return EFI_SUCCESS
}

func (s *Session) freePages(args []uint64) Status {
	return s.FreePages(args[0], args[1])
}

func (s *Session) allocatePool(args []uint64) Status {
	addr, status := s.AllocatePool(int(args[0]), int(args[1]))

	if status != EFI_SUCCESS {
		return status
	}

	if err := writeUint64(args[2], addr); err != nil {
		return EFI_INVALID_PARAMETER
	}

	return EFI_SUCCESS
}

// freePool ignores the request, pool memory is never reclaimed as foreign
// images might retain pointers into it past the call.
func (s *Session) freePool(args []uint64) Status {
	s.Log.Printf("uefi: leaking pool buffer @ %#x", args[0])
	return EFI_SUCCESS
}

// Reserved returns the amount of emulated pool memory currently in use.
func (s *Session) Reserved() int {
	return s.reserved
}
