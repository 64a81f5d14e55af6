// Copyright (c) The efi-kexec authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

import (
	"bytes"
	"runtime"
	"testing"
	"unsafe"

	"github.com/u-root/uio/ulog/ulogtest"
	"github.com/usbarmory/tamago/dma"
)

const testPoolSize = 1 << 20

func testSession(t *testing.T, size int) (s *Session, buf []byte) {
	t.Helper()

	buf = make([]byte, size)

	r, err := dma.NewRegion(uint(uintptr(unsafe.Pointer(&buf[0]))), size, false)

	if err != nil {
		t.Fatalf("could not create test region, %v", err)
	}

	s = &Session{
		Memory: r,
		Log:    ulogtest.Logger{TB: t},
	}

	return
}

func installedSession(t *testing.T) (s *Session, buf []byte) {
	t.Helper()

	s, buf = testSession(t, testPoolSize)

	if err := s.Install(); err != nil {
		t.Fatalf("install failed, %v", err)
	}

	return
}

func testArena(t *testing.T, s *Session, size int) uint64 {
	t.Helper()

	addr, err := s.arena(size)

	if err != nil {
		t.Fatalf("could not reserve scratch memory, %v", err)
	}

	return addr
}

func TestInstall(t *testing.T) {
	s, buf := installedSession(t)
	defer runtime.KeepAlive(buf)

	st, err := s.SystemTable()

	if err != nil {
		t.Fatalf("could not decode system table, %v", err)
	}

	if st.Header.Signature != signature {
		t.Errorf("signature %#x, expected %#x", st.Header.Signature, uint64(signature))
	}

	// slots without an emulated value keep their poison marker
	if st.FirmwareVendor != markerBase+3 {
		t.Errorf("firmware vendor %#x, expected marker %#x", st.FirmwareVendor, uint64(markerBase+3))
	}

	if st.NumberOfTableEntries != markerBase+13 {
		t.Errorf("table entries %#x, expected marker %#x", st.NumberOfTableEntries, uint64(markerBase+13))
	}

	if st.ConsoleInHandle != ConsoleInHandle || st.ConsoleOutHandle != ConsoleOutHandle {
		t.Error("unexpected console handles")
	}

	if st.ConIn != conInAddress || st.StdErr != stdErrAddress {
		t.Error("unexpected console pointers")
	}

	if st.BootServices == 0 || st.RuntimeServices == 0 || st.ConOut == 0 {
		t.Error("missing service table pointers")
	}

	if err := s.Install(); err == nil {
		t.Error("expected error on second install")
	}
}

func TestServiceTables(t *testing.T) {
	s, buf := installedSession(t)
	defer runtime.KeepAlive(buf)

	st, err := s.SystemTable()

	if err != nil {
		t.Fatalf("could not decode system table, %v", err)
	}

	boot := struct {
		Header    TableHeader
		Functions [44]uint64
	}{}

	if err = decode(&boot, st.BootServices); err != nil {
		t.Fatalf("could not decode boot services, %v", err)
	}

	if boot.Header.Signature != bootServicesSignature {
		t.Errorf("boot services signature %#x", boot.Header.Signature)
	}

	seen := make(map[uint64]bool)

	for i, fn := range boot.Functions {
		if fn == 0 {
			t.Errorf("boot service %s has no entry point", bootServiceNames[i])
		}

		if seen[fn] {
			t.Errorf("boot service %s shares an entry point", bootServiceNames[i])
		}

		seen[fn] = true
	}

	rt := struct {
		Header    TableHeader
		Functions [13]uint64
	}{}

	if err = decode(&rt, st.RuntimeServices); err != nil {
		t.Fatalf("could not decode runtime services, %v", err)
	}

	if rt.Header.Signature != runtimeServicesSignature {
		t.Errorf("runtime services signature %#x", rt.Header.Signature)
	}

	for i, fn := range rt.Functions {
		if fn == 0 || seen[fn] {
			t.Errorf("runtime service %s entry point invalid or shared", runtimeServiceNames[i])
		}

		seen[fn] = true
	}

	out := &simpleTextOutput{}

	if err = decode(out, st.ConOut); err != nil {
		t.Fatalf("could not decode text output protocol, %v", err)
	}

	if out.OutputString == 0 {
		t.Error("text output protocol has no OutputString entry point")
	}

	if out.Mode != 0 {
		t.Errorf("unexpected text output mode pointer %#x", out.Mode)
	}
}

func TestDispatchUnsupported(t *testing.T) {
	s, buf := installedSession(t)
	defer runtime.KeepAlive(buf)

	status, err := s.Call(BootTable, "CreateEvent", make([]uint64, maxArgs))

	if err != nil {
		t.Fatalf("call failed, %v", err)
	}

	if status != EFI_UNSUPPORTED {
		t.Errorf("status %s, expected EFI_UNSUPPORTED", status)
	}

	if _, err = s.Call(BootTable, "NoSuchService", nil); err == nil {
		t.Error("expected error for unknown service")
	}

	if status := Status(s.Dispatch(slot(BootTable, 255), nil)); status != EFI_UNSUPPORTED {
		t.Errorf("status %s for unbound slot, expected EFI_UNSUPPORTED", status)
	}
}

func TestStallAndWatchdog(t *testing.T) {
	s, buf := installedSession(t)
	defer runtime.KeepAlive(buf)

	args := make([]uint64, maxArgs)
	args[0] = 1000000

	if status, _ := s.Call(BootTable, "Stall", args); status != EFI_SUCCESS {
		t.Errorf("Stall returned %s", status)
	}

	if status, _ := s.Call(BootTable, "SetWatchdogTimer", args); status != EFI_SUCCESS {
		t.Errorf("SetWatchdogTimer returned %s", status)
	}
}

func TestGetTime(t *testing.T) {
	s, buf := installedSession(t)
	defer runtime.KeepAlive(buf)

	args := make([]uint64, maxArgs)
	args[0] = testArena(t, s, 16)

	status, err := s.Call(RuntimeTable, "GetTime", args)

	if err != nil || status != EFI_SUCCESS {
		t.Fatalf("GetTime returned %s, %v", status, err)
	}

	tm := Time{}

	if err := decode(&tm, args[0]); err != nil {
		t.Fatalf("could not decode time, %v", err)
	}

	if tm != bootTime {
		t.Errorf("unexpected time %+v", tm)
	}
}

func TestSetVariable(t *testing.T) {
	s, buf := installedSession(t)
	defer runtime.KeepAlive(buf)

	name := toUTF16("BootCurrent")
	nameAddr := testArena(t, s, len(name))

	if err := encode(name, nameAddr); err != nil {
		t.Fatalf("could not write variable name, %v", err)
	}

	guidAddr := testArena(t, s, 16)

	if err := encode(&LoadedImageProtocolGUID, guidAddr); err != nil {
		t.Fatalf("could not write vendor GUID, %v", err)
	}

	args := make([]uint64, maxArgs)
	args[0] = nameAddr
	args[1] = guidAddr
	args[3] = 2

	if status, _ := s.Call(RuntimeTable, "SetVariable", args); status != EFI_SUCCESS {
		t.Errorf("SetVariable returned %s", status)
	}

	// the remaining runtime services stay unsupported
	if status, _ := s.Call(RuntimeTable, "GetVariable", args); status != EFI_UNSUPPORTED {
		t.Errorf("GetVariable returned %s, expected EFI_UNSUPPORTED", status)
	}
}

func TestOutputString(t *testing.T) {
	s, buf := installedSession(t)
	defer runtime.KeepAlive(buf)

	str := toUTF16("hello from the other side\r\n")
	strAddr := testArena(t, s, len(str))

	if err := encode(str, strAddr); err != nil {
		t.Fatalf("could not write string, %v", err)
	}

	args := make([]uint64, maxArgs)
	args[1] = strAddr

	if status, _ := s.Call(ConOutTable, "OutputString", args); status != EFI_SUCCESS {
		t.Errorf("OutputString returned %s", status)
	}

	// UTF-16 reads land on addresses with no particular alignment
	if str, err := readUTF16(strAddr + 2); err != nil || str != "ello from the other side\r\n" {
		t.Errorf("unaligned read returned %q, %v", str, err)
	}
}

func TestHandleProtocol(t *testing.T) {
	s, buf := installedSession(t)
	defer runtime.KeepAlive(buf)

	guidAddr := testArena(t, s, 16)
	ifaceAddr := testArena(t, s, 8)

	call := func(handle uint64, guid GUID) (Status, uint64) {
		if err := encode(&guid, guidAddr); err != nil {
			t.Fatalf("could not write GUID, %v", err)
		}

		args := make([]uint64, maxArgs)
		args[0] = handle
		args[1] = guidAddr
		args[2] = ifaceAddr

		status, err := s.Call(BootTable, "HandleProtocol", args)

		if err != nil {
			t.Fatalf("call failed, %v", err)
		}

		iface, _ := readUint64(ifaceAddr)

		return status, iface
	}

	status, iface := call(ImageHandle, LoadedImageProtocolGUID)

	if status != EFI_SUCCESS || iface != s.loadedImage {
		t.Fatalf("LoadedImage lookup returned %s @ %#x", status, iface)
	}

	img := &LoadedImage{}

	if err := decode(img, iface); err != nil {
		t.Fatalf("could not decode LoadedImage, %v", err)
	}

	if img.Revision != 0x1000 || img.DeviceHandle != BootDeviceHandle || img.ParentHandle != ParentImageHandle {
		t.Errorf("unexpected LoadedImage %+v", img)
	}

	if img.LoadOptionsSize != loadOptionsSize || img.LoadOptions == 0 {
		t.Errorf("unexpected load options geometry %+v", img)
	}

	if img.SystemTable != s.Address() {
		t.Errorf("LoadedImage system table %#x, expected %#x", img.SystemTable, s.Address())
	}

	opts := &loadOptions{}

	if err := decode(opts, img.LoadOptions); err != nil {
		t.Fatalf("could not decode load options, %v", err)
	}

	if string(opts.Header[:7]) != "WINDOWS" || opts.Size != loadOptionsSize {
		t.Errorf("unexpected load options %+v", opts)
	}

	// boot device path served only on the boot device handle
	if status, _ := call(0x1234, DevicePathProtocolGUID); status != EFI_UNSUPPORTED {
		t.Errorf("DevicePath on foreign handle returned %s", status)
	}

	status, iface = call(BootDeviceHandle, DevicePathProtocolGUID)

	if status != EFI_SUCCESS {
		t.Fatalf("DevicePath lookup returned %s", status)
	}

	path, err := view(iface, len(bootDevicePath))

	if err != nil {
		t.Fatalf("could not map device path, %v", err)
	}

	if !bytes.Equal(path, bootDevicePath[:]) {
		t.Error("unexpected boot device path")
	}

	if status, _ = call(ImageHandle, MustParseGUID("964E5B22-6459-11D2-8E39-00A0C969723B")); status != EFI_UNSUPPORTED {
		t.Errorf("unknown protocol returned %s", status)
	}

	// a zero GUID is just another protocol the emulated database does not
	// serve
	if status, _ = call(ImageHandle, GUID{}); status != EFI_UNSUPPORTED {
		t.Errorf("zero GUID returned %s", status)
	}
}

func TestOpenProtocol(t *testing.T) {
	s, buf := installedSession(t)
	defer runtime.KeepAlive(buf)

	guidAddr := testArena(t, s, 16)
	ifaceAddr := testArena(t, s, 8)

	if err := encode(&SimpleTextInputExProtocolGUID, guidAddr); err != nil {
		t.Fatalf("could not write GUID, %v", err)
	}

	args := make([]uint64, maxArgs)
	args[0] = ConsoleInHandle
	args[1] = guidAddr
	args[2] = ifaceAddr

	status, err := s.Call(BootTable, "OpenProtocol", args)

	if err != nil || status != EFI_SUCCESS {
		t.Fatalf("OpenProtocol returned %s, %v", status, err)
	}

	iface, _ := readUint64(ifaceAddr)

	in := &simpleTextInputEx{}

	if err := decode(in, iface); err != nil {
		t.Fatalf("could not decode input protocol, %v", err)
	}

	if in.WaitForKeyEx != WaitForKeyEvent {
		t.Errorf("WaitForKeyEx %#x, expected %#x", in.WaitForKeyEx, uint64(WaitForKeyEvent))
	}

	args[0] = 0x1234

	if status, _ = s.Call(BootTable, "OpenProtocol", args); status != EFI_UNSUPPORTED {
		t.Errorf("OpenProtocol on foreign handle returned %s", status)
	}
}

func TestLocateHandle(t *testing.T) {
	s, buf := installedSession(t)
	defer runtime.KeepAlive(buf)

	guidAddr := testArena(t, s, 16)

	if err := encode(&DevicePathProtocolGUID, guidAddr); err != nil {
		t.Fatalf("could not write GUID, %v", err)
	}

	args := make([]uint64, maxArgs)
	args[1] = guidAddr

	if status, _ := s.Call(BootTable, "LocateHandle", args); status != EFI_NOT_FOUND {
		t.Errorf("LocateHandle returned %s, expected EFI_NOT_FOUND", status)
	}
}
