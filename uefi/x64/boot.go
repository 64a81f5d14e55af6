// Copyright (c) The efi-kexec authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build amd64

package x64

import (
	"errors"
	"fmt"

	"github.com/usbarmory/armory-boot/exec"

	"github.com/usbarmory/efi-kexec/pe"
	"github.com/usbarmory/efi-kexec/uefi"
)

// conventionalPages is the size of the conventional memory allocation placed
// in the emulated memory map before image execution, OS loaders bail out
// early when the map shows no usable memory.
const conventionalPages = 200

// BootImage represents a PE/EFI image to be executed against an emulated
// firmware session.
type BootImage struct {
	// Image is the PE image to load and execute.
	Image *pe.Image

	// UEFI is the emulated firmware session serving the image.
	UEFI *uefi.Session

	loaded bool
}

// Load copies and relocates the image through its segment list and installs
// the emulated firmware tables, with executable service stubs, in the session
// memory pool.
func (image *BootImage) Load() (err error) {
	if image.loaded {
		return errors.New("image already loaded")
	}

	if image.Image == nil || image.UEFI == nil {
		return errors.New("invalid boot image")
	}

	if err = image.Image.Load(); err != nil {
		return fmt.Errorf("could not load image, %v", err)
	}

	s := image.UEFI
	s.ImageBase = image.Image.Base()
	s.ImageSize = uint64(image.Image.Size())

	if s.Thunks == nil {
		s.Thunks = &Thunks{
			Memory: image.Image.Region,
		}
	}

	session = s

	if err = s.Install(); err != nil {
		return fmt.Errorf("could not install firmware tables, %v", err)
	}

	if err = s.Preallocate(conventionalPages); err != nil {
		return fmt.Errorf("could not preallocate memory, %v", err)
	}

	image.loaded = true

	return
}

// Entry returns the image entry point address.
func (image *BootImage) Entry() uint {
	return image.Image.Entry()
}

// Boot calls the image entry point with the emulated image handle and EFI
// System Table pointer, returning the foreign image exit status.
//
// The argument cleanup function is invoked before the entry call.
func (image *BootImage) Boot(cleanup func()) (err error) {
	if !image.loaded {
		return errors.New("image not loaded")
	}

	if cleanup != nil {
		cleanup()
	}

	status := callImage(
		uint64(image.Entry()),
		uefi.ImageHandle,
		image.UEFI.Address(),
	)

	return uefi.Status(status).Error()
}

var _ exec.BootImage = &BootImage{}
