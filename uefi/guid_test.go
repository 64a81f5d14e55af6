// Copyright (c) The efi-kexec authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

import (
	"testing"
)

func TestParseGUID(t *testing.T) {
	s := "5B1B31A1-9562-11D2-8E3F-00A0C969723B"

	g, err := ParseGUID(s)

	if err != nil {
		t.Fatalf("parse failed, %v", err)
	}

	// native EFI layout stores the first three fields little-endian
	expected := GUID{0xa1, 0x31, 0x1b, 0x5b, 0x62, 0x95, 0xd2, 0x11, 0x8e, 0x3f, 0x00, 0xa0, 0xc9, 0x69, 0x72, 0x3b}

	if g != expected {
		t.Errorf("parsed %x, expected %x", g, expected)
	}

	if got := g.String(); got != "5b1b31a1-9562-11d2-8e3f-00a0c969723b" {
		t.Errorf("unexpected string representation %s", got)
	}

	if _, err = ParseGUID("not-a-guid"); err == nil {
		t.Error("expected parse error")
	}
}

func TestGuidName(t *testing.T) {
	if name := LoadedImageProtocolGUID.Name(); name != "gEfiLoadedImageProtocolGuid" {
		t.Errorf("unexpected name %s", name)
	}

	g := MustParseGUID("01234567-89AB-CDEF-0123-456789ABCDEF")

	if name := g.Name(); name != UnknownGuid {
		t.Errorf("unexpected name %s for unregistered GUID", name)
	}

	// multiple registry rows carry the all-zero GUID, the first one wins
	if name := (GUID{}).Name(); name != "gZeroGuid" {
		t.Errorf("unexpected name %s for zero GUID", name)
	}
}

func TestGuidRegistry(t *testing.T) {
	for i, r := range guidNames {
		if len(r.name) == 0 {
			t.Errorf("registry row %d has no name", i)
		}
	}
}

func TestIsZero(t *testing.T) {
	if !(GUID{}).IsZero() {
		t.Error("zero GUID not detected")
	}

	if LoadedImageProtocolGUID.IsZero() {
		t.Error("non-zero GUID detected as zero")
	}
}
