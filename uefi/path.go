// Copyright (c) The efi-kexec authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

import (
	"bytes"
	"encoding/binary"
)

// DevicePathNode represents an EFI Generic Device Path Node structure.
type DevicePathNode struct {
	Type    uint8
	SubType uint8
	Length  uint16
}

// Bytes converts the descriptor structure to byte array format.
func (d *DevicePathNode) Bytes() []byte {
	buf := new(bytes.Buffer)

	binary.Write(buf, binary.LittleEndian, d.Type)
	binary.Write(buf, binary.LittleEndian, d.SubType)
	binary.Write(buf, binary.LittleEndian, d.Length)

	return buf.Bytes()
}

// endDevicePathNode terminates every device path (see UEFI specification
// ch. 10.3.1, End of Hardware Device Path).
var endDevicePathNode = DevicePathNode{
	Type:    0x7f,
	SubType: 0xff,
	Length:  4,
}

// FilePath represents an EFI File Path Media Device Path instance.
type FilePath struct {
	DevicePathNode
	PathName []byte
}

// Bytes converts the descriptor structure to byte array format.
func (d *FilePath) Bytes() []byte {
	return append(d.DevicePathNode.Bytes(), d.PathName...)
}

// loaderPath is the canonical ESP location of the Windows OS loader, the
// emulated LoadedImage protocol claims it as the running image path.
const loaderPath = `\EFI\Microsoft\Boot\bootmgfw.efi`

// loaderFilePath returns a terminated File Path Media device path for the
// emulated OS loader image.
func loaderFilePath() []byte {
	pathName := toUTF16(loaderPath)

	filePath := &FilePath{
		PathName: pathName,
	}

	filePath.Type = 0x04    // Media Device Path
	filePath.SubType = 0x04 // File Path
	filePath.Length = uint16(4 + len(pathName))

	return append(filePath.Bytes(), endDevicePathNode.Bytes()...)
}

// bootDevicePath is a fixed boot disk device path, captured from an ordinary
// EFI boot, advertised through the Device Path protocol on the emulated boot
// device handle.
var bootDevicePath = [72]byte{
	// ACPI PciRoot(0x0)
	0x02, 0x01, 0x0c, 0x00, 0xd0, 0x41, 0x03, 0x0a,
	0x00, 0x00, 0x00, 0x00,

	// Pci(0x4,0x0)
	0x01, 0x01, 0x06, 0x00,
	0x00, 0x04,

	// Scsi(0x1,0x0)
	0x03, 0x02, 0x08, 0x00, 0x01, 0x00,
	0x00, 0x00,

	// HD(2,GPT,F6B5FF3C-2E8F-470D-98A8-D1110EDD1E1E,0x8000,0x32000)
	0x04, 0x01, 0x2a, 0x00, 0x02, 0x00,
	0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x20, 0x03, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x3c, 0xff, 0xb5, 0xf6, 0x8f, 0x2e,
	0x0d, 0x47, 0x98, 0xa8, 0xd1, 0x11, 0x0e, 0xdd,
	0x1e, 0x1e, 0x02, 0x02,

	// End Node
	0x7f, 0xff, 0x04, 0x00,
}
