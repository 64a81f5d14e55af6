// Copyright (c) The efi-kexec authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

import (
	"fmt"
)

// Status represents an EFI Status Code
//
// https://uefi.org/specs/UEFI/2.10/Apx_D_Status_Codes.html
type Status uint64

const errBit = 1 << 63

// EFI Status Codes
const (
	EFI_SUCCESS           Status = 0
	EFI_LOAD_ERROR        Status = errBit | 1
	EFI_INVALID_PARAMETER Status = errBit | 2
	EFI_UNSUPPORTED       Status = errBit | 3
	EFI_BAD_BUFFER_SIZE   Status = errBit | 4
	EFI_BUFFER_TOO_SMALL  Status = errBit | 5
	EFI_NOT_READY         Status = errBit | 6
	EFI_DEVICE_ERROR      Status = errBit | 7
	EFI_OUT_OF_RESOURCES  Status = errBit | 9
	EFI_NOT_FOUND         Status = errBit | 14
)

// String returns the specification name of well-known status codes.
func (s Status) String() string {
	switch s {
	case EFI_SUCCESS:
		return "EFI_SUCCESS"
	case EFI_LOAD_ERROR:
		return "EFI_LOAD_ERROR"
	case EFI_INVALID_PARAMETER:
		return "EFI_INVALID_PARAMETER"
	case EFI_UNSUPPORTED:
		return "EFI_UNSUPPORTED"
	case EFI_BAD_BUFFER_SIZE:
		return "EFI_BAD_BUFFER_SIZE"
	case EFI_BUFFER_TOO_SMALL:
		return "EFI_BUFFER_TOO_SMALL"
	case EFI_NOT_READY:
		return "EFI_NOT_READY"
	case EFI_DEVICE_ERROR:
		return "EFI_DEVICE_ERROR"
	case EFI_OUT_OF_RESOURCES:
		return "EFI_OUT_OF_RESOURCES"
	case EFI_NOT_FOUND:
		return "EFI_NOT_FOUND"
	default:
		return fmt.Sprintf("%#x", uint64(s))
	}
}

// Error converts an EFI Status Code in its Go error representation, nil is
// returned for EFI_SUCCESS.
func (s Status) Error() error {
	if s == EFI_SUCCESS {
		return nil
	}

	return fmt.Errorf("EFI status %s", s)
}
