// Copyright (c) The efi-kexec authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

import (
	"unicode/utf16"
)

// LoadedImage represents the EFI_LOADED_IMAGE_PROTOCOL structure layout.
type LoadedImage struct {
	Revision        uint32
	_               uint32
	ParentHandle    uint64
	SystemTable     uint64
	DeviceHandle    uint64
	FilePath        uint64
	Reserved        uint64
	LoadOptionsSize uint32
	_               uint32
	LoadOptions     uint64
	ImageBase       uint64
	ImageSize       uint64
	ImageCodeType   uint32
	ImageDataType   uint32
	Unload          uint64
}

// bcdOption selects the OS loader boot entry, the GUID matches the default
// Windows Boot Manager object of a standard BCD store.
const bcdOption = "BCDOBJECT={9dea862c-5cdd-4e70-acc1-f32b344d4795}"

// loadOptions mirrors the LoadOptions blob a Windows OS loader receives from
// its boot manager, as captured during an ordinary EFI boot.
type loadOptions struct {
	Header [8]byte
	Val1   uint32
	Size   uint32
	Val3   uint32
	Option [49]uint16
	Val4   uint16
	Val5   uint32
	Val6   uint32
	Val7   uint32
	Val8   uint32
}

const loadOptionsSize = 136

func windowsLoadOptions() *loadOptions {
	opts := &loadOptions{
		Header: [8]byte{'W', 'I', 'N', 'D', 'O', 'W', 'S', 0},
		Val1:   0x1,
		Size:   loadOptionsSize,
		Val3:   loadOptionsSize - 16,
		Val4:   0x73,
		Val5:   0x1,
		Val6:   0x10,
		Val7:   0x4,
		Val8:   0x4ff7f,
	}

	copy(opts.Option[:], utf16.Encode([]rune(bcdOption)))

	return opts
}

// installLoadedImage serializes the emulated LoadedImage protocol along with
// its LoadOptions blob, loader file path and boot device path.
func (s *Session) installLoadedImage() (err error) {
	opts := windowsLoadOptions()
	optsBuf, err := marshalBinary(opts)

	if err != nil {
		return
	}

	optsAddr, err := s.arena(len(optsBuf))

	if err != nil {
		return
	}

	if err = encode(opts, optsAddr); err != nil {
		return
	}

	filePath := loaderFilePath()
	filePathAddr, err := s.arena(len(filePath))

	if err != nil {
		return
	}

	if err = encode(filePath, filePathAddr); err != nil {
		return
	}

	if s.devicePath, err = s.arena(len(bootDevicePath)); err != nil {
		return
	}

	if err = encode(&bootDevicePath, s.devicePath); err != nil {
		return
	}

	img := &LoadedImage{
		Revision:        0x1000,
		ParentHandle:    ParentImageHandle,
		SystemTable:     s.systab,
		DeviceHandle:    BootDeviceHandle,
		FilePath:        filePathAddr,
		LoadOptionsSize: loadOptionsSize,
		LoadOptions:     optsAddr,
		ImageBase:       s.ImageBase,
		ImageSize:       s.ImageSize,
		ImageCodeType:   EfiLoaderCode,
		ImageDataType:   EfiLoaderData,
		Unload:          UnloadAddress,
	}

	imgBuf, err := marshalBinary(img)

	if err != nil {
		return
	}

	if s.loadedImage, err = s.arena(len(imgBuf)); err != nil {
		return
	}

	return encode(img, s.loadedImage)
}
