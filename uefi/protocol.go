// Copyright (c) The efi-kexec authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

// GUIDs of the protocols served by the emulated handle database.
var (
	// EFI_LOADED_IMAGE_PROTOCOL_GUID
	LoadedImageProtocolGUID = MustParseGUID("5B1B31A1-9562-11D2-8E3F-00A0C969723B")

	// EFI_DEVICE_PATH_PROTOCOL_GUID
	DevicePathProtocolGUID = MustParseGUID("09576E91-6D3F-11D2-8E39-00A0C969723B")

	// EFI_SIMPLE_TEXT_INPUT_EX_PROTOCOL_GUID
	SimpleTextInputExProtocolGUID = MustParseGUID("DD9E7534-7762-4698-8C14-F58517A625AA")
)

// handleProtocol implements EFI_BOOT_SERVICES.HandleProtocol() over the
// emulated handle database, protocols are matched by GUID value.
func (s *Session) handleProtocol(args []uint64) Status {
	var (
		handle = args[0]
		iface  = args[2]
	)

	guid := GUID{}

	if err := decode(&guid, args[1]); err != nil {
		return EFI_INVALID_PARAMETER
	}

	s.Log.Printf("uefi: HandleProtocol handle %#x guid %s (%s)", handle, guid.Name(), guid)

	switch guid {
	case LoadedImageProtocolGUID:
		if err := writeUint64(iface, s.loadedImage); err != nil {
			return EFI_INVALID_PARAMETER
		}

		return EFI_SUCCESS
	case DevicePathProtocolGUID:
		if handle != BootDeviceHandle {
			s.Log.Printf("uefi: no device path on handle %#x", handle)
			return EFI_UNSUPPORTED
		}

		if err := writeUint64(iface, s.devicePath); err != nil {
			return EFI_INVALID_PARAMETER
		}

		return EFI_SUCCESS
	default:
		return EFI_UNSUPPORTED
	}
}

// openProtocol implements EFI_BOOT_SERVICES.OpenProtocol() over the emulated
// handle database, only the extended text input protocol is served.
func (s *Session) openProtocol(args []uint64) Status {
	var (
		handle = args[0]
		iface  = args[2]
	)

	guid := GUID{}

	if err := decode(&guid, args[1]); err != nil {
		return EFI_INVALID_PARAMETER
	}

	s.Log.Printf("uefi: OpenProtocol handle %#x guid %s (%s)", handle, guid.Name(), guid)

	switch guid {
	case SimpleTextInputExProtocolGUID:
		if handle != ConsoleInHandle {
			s.Log.Printf("uefi: no input protocol on handle %#x", handle)
			return EFI_UNSUPPORTED
		}

		if err := writeUint64(iface, s.conIn); err != nil {
			return EFI_INVALID_PARAMETER
		}

		return EFI_SUCCESS
	default:
		return EFI_UNSUPPORTED
	}
}
