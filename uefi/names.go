// Copyright (c) The efi-kexec authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

// UnknownGuid is returned by Name for GUIDs absent from the registry.
const UnknownGuid = "<Unknown>"

type guidName struct {
	guid GUID
	name string
}

// Name returns the registry name associated with the GUID, UnknownGuid when
// no association is known. The registry may hold multiple rows for the same
// GUID value, the first match wins.
func (g GUID) Name() string {
	for _, r := range guidNames {
		if r.guid == g {
			return r.name
		}
	}

	return UnknownGuid
}

// guidNames associates well-known EFI GUIDs, as found in EDK-II and vendor
// firmware declarations, with their declaration names.
var guidNames = []guidName{
	{MustParseGUID("1BA0062E-C779-4582-8566-336AE8F78F09"), "ResetVector"},
	{MustParseGUID("DF1CCEF6-F301-4A63-9661-FC6030DCC880"), "SecMain"},
	{MustParseGUID("52C05B14-0B98-496C-BC3B-04B50211D680"), "PeiCore"},
	{MustParseGUID("9B3ADA4F-AE56-4C24-8DEA-F03B7558AE50"), "PcdPeim"},
	{MustParseGUID("A3610442-E69F-4DF3-82CA-2360C4031A23"), "ReportStatusCodeRouterPei"},
	{MustParseGUID("9D225237-FA01-464C-A949-BAABC02D31D0"), "StatusCodeHandlerPei"},
	{MustParseGUID("86D70125-BAA3-4296-A62F-602BEBBB9081"), "DxeIpl"},
	{MustParseGUID("222C386D-5ABC-4FB4-B124-FBB82488ACF4"), "PlatformPei"},
	{MustParseGUID("89E549B0-7CFE-449D-9BA3-10D8B2312D71"), "S3Resume2Pei"},
	{MustParseGUID("EDADEB9D-DDBA-48BD-9D22-C1C169C8C5C6"), "CpuMpPei"},
	{MustParseGUID("B1517C78-F518-42E5-B270-F4B1F402E53C"), "PvUefiPei"},
	{MustParseGUID("7D9FE32E-A6A9-4CDF-ABFF-10CC7F22E1C9"), "TpmCommLib"},
	{MustParseGUID("EBC43A46-34AC-4F07-A7F5-A5394619361C"), "DxeTcgPhysicalPresenceLib"},
	{MustParseGUID("C595047C-70B3-4731-99CC-A014E956D7A7"), "Tpm12CommandLib"},
	{MustParseGUID("BC2B7672-A48B-4D58-B39E-AEE3707B5A23"), "Tpm12DeviceLibDTpm"},
	{MustParseGUID("4D8B77D9-E923-48F8-B070-4053D78B7E56"), "Tpm12DeviceLibTcg"},
	{MustParseGUID("778CE4F4-36BD-4AE7-B8F0-10B420B0D174"), "DxeTpm2MeasureBootLib"},
	{MustParseGUID("601ECB06-7874-489E-A280-805780F6C861"), "DxeTrEEPhysicalPresenceLib"},
	{MustParseGUID("158DC712-F15A-44DC-93BB-1675045BE066"), "HashLibBaseCryptoRouterDxe"},
	{MustParseGUID("DDCBCFBA-8EEB-488A-96D6-097831A6E50B"), "HashLibBaseCryptoRouterPei"},
	{MustParseGUID("2F572F32-8BE5-4868-BD1D-7438AD97DC27"), "Tpm2CommandLib"},
	{MustParseGUID("BBCB6F85-303C-4EB9-8182-AF98D4B3020C"), "Tpm2DeviceLibTrEE"},
	{MustParseGUID("E54A3327-A345-4068-8842-70AC0D519855"), "Tpm2DeviceLibDTpm"},
	{MustParseGUID("286BF25A-C2C3-408C-B3B4-25E6758B7317"), "Tpm2InstanceLibDTpm"},
	{MustParseGUID("C3D69D87-5200-4AAB-A6DB-2569BA1A92FC"), "Tpm2DeviceLibRouterDxe"},
	{MustParseGUID("97CDCF04-4C8E-42FE-8015-11CC8A6E9D81"), "Tpm2DeviceLibRouterPei"},
	{MustParseGUID("1317F0D5-7842-475C-B1CA-6EDC20DCBE7D"), "HashLibTpm2"},
	{MustParseGUID("0AD6C423-4732-4CF3-9CE3-0A5416D634A5"), "DxeRsa2048Sha256GuidedSectionExtractLib"},
	{MustParseGUID("FD5F2C91-4878-4007-BBA1-1B91DD325438"), "PeiRsa2048Sha256GuidedSectionExtractLib"},
	{MustParseGUID("9A7A6AB4-9DA6-4AA4-90CB-6D4B79EDA7B9"), "HashInstanceLibSha1"},
	{MustParseGUID("5810798A-ED30-4080-8DD7-B9667A748C02"), "HashInstanceLibSha256"},
	{MustParseGUID("A5C1EF72-9379-4370-B4C7-0F5126CAC38E"), "TrEEConfigPei"},
	{MustParseGUID("CA5A1928-6523-409D-A9FE-5DCC87387222"), "TrEEPei"},
	{MustParseGUID("2A7946E3-1AB2-49A9-ACCB-C6275139C1A5"), "TrEEDxe"},
	{MustParseGUID("3141FD4D-EA02-4A70-9BCE-97EE837319AC"), "TrEEConfigDxe"},
	{MustParseGUID("162E53E0-6597-40D9-96D1-8D13F0F656E4"), "TrEEAcpi"},
	{MustParseGUID("D6A2CB7F-6A18-4E2F-B43B-9920A733700A"), "DxeCore"},
	{MustParseGUID("D93CE3D8-A7EB-4730-8C8E-CC466A9ECC3C"), "ReportStatusCodeRouterRuntimeDxe"},
	{MustParseGUID("6C2004EF-4E0E-4BE4-B14C-340EB4AA5891"), "StatusCodeHandlerRuntimeDxe"},
	{MustParseGUID("80CF7257-87AB-47F9-A3FE-D50B76D89541"), "PcdDxe"},
	{MustParseGUID("B601F8C4-43B7-4784-95B1-F4226CB40CEE"), "RuntimeDxe"},
	{MustParseGUID("F80697E9-7FD6-4665-8646-88E33EF71DFC"), "SecurityStubDxe"},
	{MustParseGUID("13AC6DD0-73D0-11D4-B06B-00AA00BD6DE7"), "EbcDxe"},
	{MustParseGUID("79CA4208-BBA1-4A9A-8456-E1E66A81484E"), "Legacy8259"},
	{MustParseGUID("A19B1FE7-C1BC-49F8-875F-54A5D542443F"), "CpuIo2Dxe"},
	{MustParseGUID("1A1E4886-9517-440E-9FDE-3BE44CEE2136"), "CpuDxe"},
	{MustParseGUID("F2765DEC-6B41-11D5-8E71-00902707B35E"), "Timer"},
	{MustParseGUID("F6697AC4-A776-4EE1-B643-1FEFF2B615BB"), "IncompatiblePciDeviceSupportDxe"},
	{MustParseGUID("11A6EDF6-A9BE-426D-A6CC-B22FE51D9224"), "PciHotPlugInitDxe"},
	{MustParseGUID("128FB770-5E79-4176-9E51-9BB268A17DD1"), "PciHostBridgeDxe"},
	{MustParseGUID("93B80004-9FB3-11D4-9A3A-0090273FC14D"), "PciBusDxe"},
	{MustParseGUID("4B28E4C7-FF36-4E10-93CF-A82159E777C5"), "ResetSystemRuntimeDxe"},
	{MustParseGUID("C8339973-A563-4561-B858-D8476F9DEFC4"), "Metronome"},
	{MustParseGUID("378D7B65-8DA9-4773-B6E4-A47826A833E1"), "PcRtc"},
	{MustParseGUID("EBF8ED7C-0DD1-4787-84F1-F48D537DCACF"), "DriverHealthManagerDxe"},
	{MustParseGUID("6D33944A-EC75-4855-A54D-809C75241F6C"), "BdsDxe"},
	{MustParseGUID("F74D20EE-37E7-48FC-97F7-9B1047749C69"), "LogoDxe"},
	{MustParseGUID("462CAA21-7614-4503-836E-8AB6F4662331"), "UiApp"},
	{MustParseGUID("33CB97AF-6C33-4C42-986B-07581FA366D4"), "BlockMmioToBlockIoDxe"},
	{MustParseGUID("83DD3B39-7CAF-4FAC-A542-E050B767E3A7"), "VirtioPciDeviceDxe"},
	{MustParseGUID("0170F60C-1D40-4651-956D-F0BD9879D527"), "Virtio10"},
	{MustParseGUID("11D92DFB-3CA9-4F93-BA2E-4780ED3E03B5"), "VirtioBlkDxe"},
	{MustParseGUID("FAB5D4F4-83C0-4AAF-8480-442D11DF6CEA"), "VirtioScsiDxe"},
	{MustParseGUID("58E26F0D-CBAC-4BBA-B70F-18221415665A"), "VirtioRngDxe"},
	{MustParseGUID("CF569F50-DE44-4F54-B4D7-F4AE25CDA599"), "XenIoPciDxe"},
	{MustParseGUID("565EC8BA-A484-11E3-802B-B8AC6F7D65E6"), "XenBusDxe"},
	{MustParseGUID("8C2487EA-9AF3-11E3-B966-B8AC6F7D65E6"), "XenPvBlkDxe"},
	{MustParseGUID("F099D67F-71AE-4C36-B2A3-DCEB0EB2B7D8"), "WatchdogTimer"},
	{MustParseGUID("AD608272-D07F-4964-801E-7BD3B7888652"), "MonotonicCounterRuntimeDxe"},
	{MustParseGUID("42857F0A-13F2-4B21-8A23-53D3F714B840"), "CapsuleRuntimeDxe"},
	{MustParseGUID("51CCF399-4FDF-4E55-A45B-E123F84D456A"), "ConPlatformDxe"},
	{MustParseGUID("408EDCEC-CF6D-477C-A5A8-B4844E3DE281"), "ConSplitterDxe"},
	{MustParseGUID("CCCB0C28-4B24-11D5-9A5A-0090273FC14D"), "GraphicsConsoleDxe"},
	{MustParseGUID("9E863906-A40F-4875-977F-5B93FF237FC6"), "TerminalDxe"},
	{MustParseGUID("9B680FCE-AD6B-4F3A-B60B-F59899003443"), "DevicePathDxe"},
	{MustParseGUID("79E4A61C-ED73-4312-94FE-E3E7563362A9"), "PrintDxe"},
	{MustParseGUID("6B38F7B4-AD98-40E9-9093-ACA2B5A253C4"), "DiskIoDxe"},
	{MustParseGUID("1FA1F39E-FEFF-4AAE-BD7B-38A070A3B609"), "PartitionDxe"},
	{MustParseGUID("28A03FF4-12B3-4305-A417-BB1A4F94081E"), "RamDiskDxe"},
	{MustParseGUID("CD3BAFB6-50FB-4FE8-8E4E-AB74D2C1A600"), "EnglishDxe"},
	{MustParseGUID("961578FE-B6B7-44C3-AF35-6BC705CD2B1F"), "Fat"},
	{MustParseGUID("0167CCC4-D0F7-4F21-A3EF-9E64B7CDCE8B"), "ScsiBus"},
	{MustParseGUID("0A66E322-3740-4CCE-AD62-BD172CECCA35"), "ScsiDisk"},
	{MustParseGUID("021722D8-522B-4079-852A-FE44C2C13F49"), "SataController"},
	{MustParseGUID("5E523CB4-D397-4986-87BD-A6DD8B22F455"), "AtaAtapiPassThruDxe"},
	{MustParseGUID("19DF145A-B1D4-453F-8507-38816676D7F6"), "AtaBusDxe"},
	{MustParseGUID("5BE3BDF4-53CF-46A3-A6A9-73C34A6E5EE3"), "NvmExpressDxe"},
	{MustParseGUID("348C4D62-BFBD-4882-9ECE-C80BB1C4783B"), "HiiDatabase"},
	{MustParseGUID("EBF342FE-B1D3-4EF8-957C-8048606FF671"), "SetupBrowser"},
	{MustParseGUID("E660EA85-058E-4B55-A54B-F02F83A24707"), "DisplayEngine"},
	{MustParseGUID("96B5C032-DF4C-4B6E-8232-438DCF448D0E"), "NullMemoryTestDxe"},
	{MustParseGUID("E3752948-B9A1-4770-90C4-DF41C38986BE"), "QemuVideoDxe"},
	{MustParseGUID("D6099B94-CD97-4CC5-8714-7F6312701A8A"), "VirtioGpuDxe"},
	{MustParseGUID("4CF92BEA-7BC3-4537-AF26-16C5D6AC71BB"), "PvUefiRuntimeDxe"},
	{MustParseGUID("38A0EC22-FBE7-4911-8BC1-176E0D6C1DBD"), "IsaAcpi"},
	{MustParseGUID("240612B5-A063-11D4-9A3A-0090273FC14D"), "IsaBusDxe"},
	{MustParseGUID("93B80003-9FB3-11D4-9A3A-0090273FC14D"), "IsaSerialDxe"},
	{MustParseGUID("3DC82376-637B-40A6-A8FC-A565417F2C38"), "Ps2KeyboardDxe"},
	{MustParseGUID("0ABD8284-6DA3-4616-971A-83A5148067BA"), "IsaFloppyDxe"},
	{MustParseGUID("F9D88642-0737-49BC-81B5-6889CD57D9EA"), "SmbiosDxe"},
	{MustParseGUID("4110465D-5FF3-4F4B-B580-24ED0D06747A"), "SmbiosPlatformDxe"},
	{MustParseGUID("9622E42C-8E38-4A08-9E8F-54F784652F6B"), "AcpiTableDxe"},
	{MustParseGUID("49970331-E3FA-4637-9ABC-3B7868676970"), "AcpiPlatform"},
	{MustParseGUID("7E374E25-8E01-4FEE-87F2-390C23C606CD"), "PlatformAcpiTables"},
	{MustParseGUID("BDCE85BB-FBAA-4F4E-9264-501A2C249581"), "S3SaveStateDxe"},
	{MustParseGUID("FA20568B-548B-4B2B-81EF-1BA08D4A3CEC"), "BootScriptExecutorDxe"},
	{MustParseGUID("B8E62775-BB0A-43F0-A843-5BE8B14F8CCD"), "BootGraphicsResourceTableDxe"},
	{MustParseGUID("A2F436EA-A127-4EF8-957C-8048606FF670"), "SnpDxe"},
	{MustParseGUID("A210F973-229D-4F4D-AA37-9895E6C9EABA"), "DpcDxe"},
	{MustParseGUID("025BBFC7-E6A9-4B8B-82AD-6815A1AEAF4A"), "MnpDxe"},
	{MustParseGUID("E4F61863-FE2C-4B56-A8F4-08519BC439DF"), "VlanConfigDxe"},
	{MustParseGUID("529D3F93-E8E9-4E73-B1E1-BDF6A9D50113"), "ArpDxe"},
	{MustParseGUID("94734718-0BBC-47FB-96A5-EE7A5AE6A2AD"), "Dhcp4Dxe"},
	{MustParseGUID("9FB1A1F3-3B71-4324-B39A-745CBB015FFF"), "Ip4Dxe"},
	{MustParseGUID("DC3641B8-2FA8-4ED3-BC1F-F9962A03454B"), "Mtftp4Dxe"},
	{MustParseGUID("6D6963AB-906D-4A65-A7CA-BD40E5D6AF2B"), "Udp4Dxe"},
	{MustParseGUID("6D6963AB-906D-4A65-A7CA-BD40E5D6AF4D"), "Tcp4Dxe"},
	{MustParseGUID("3B1DEAB5-C75D-442E-9238-8E2FFB62B0BB"), "UefiPxe4BcDxe"},
	{MustParseGUID("4579B72D-7EC4-4DD4-8486-083C86B182A7"), "IScsi4Dxe"},
	{MustParseGUID("A92CDB4B-82F1-4E0B-A516-8A655D371524"), "VirtioNetDxe"},
	{MustParseGUID("2FB92EFA-2EE0-4BAE-9EB6-7464125E1EF7"), "UhciDxe"},
	{MustParseGUID("BDFE430E-8F2A-4DB0-9991-6F856594777E"), "EhciDxe"},
	{MustParseGUID("B7F50E91-A759-412C-ADE4-DCD03E7F7C28"), "XhciDxe"},
	{MustParseGUID("240612B7-A063-11D4-9A3A-0090273FC14D"), "UsbBusDxe"},
	{MustParseGUID("2D2E62CF-9ECF-43B7-8219-94E7FC713DFE"), "UsbKbDxe"},
	{MustParseGUID("9FB4B4A7-42C0-4BCD-8540-9BCC6711F83E"), "UsbMassStorageDxe"},
	{MustParseGUID("0B04B2ED-861C-42CD-A22F-C3AAFACCB896"), "BiosVideoDxe"},
	{MustParseGUID("F122A15C-C10B-4D54-8F48-60F4F06DD1AD"), "LegacyBiosDxe"},
	{MustParseGUID("1547B4F3-3E8A-4FEF-81C8-328ED647AB1A"), "Csm16"},
	{MustParseGUID("7C04A583-9E3E-4F1C-AD65-E05268D0B4D1"), "Shell"},
	{MustParseGUID("D9DCC5DF-4007-435E-9098-8970935504B2"), "PlatformDxe"},
	{MustParseGUID("733CBAC2-B23F-4B92-BC8E-FB01CE5907B7"), "FvbServicesRuntimeDxe"},
	{MustParseGUID("22DC2B60-FE40-42AC-B01F-3AB1FAD9AAD8"), "EmuVariableFvbRuntimeDxe"},
	{MustParseGUID("FE5CEA76-4F72-49E8-986F-2CD899DFFE5D"), "FaultTolerantWriteDxe"},
	{MustParseGUID("40A7A3BE-1E67-4B86-92C4-72E3D32A207A"), "GSetup"},
	{MustParseGUID("D3B46F3B-D441-1244-9A12-0012273FC14D"), "gEfiXenInfoGuid"},
	{MustParseGUID("3E745226-9818-45B6-A2AC-D7CD0E8BA2BC"), "gEfiUsb2HcProtocolGuid"},
	{MustParseGUID("EA7CA24B-DED5-4DAD-A389-BF827E8F9B38"), "gEfiPeiFirmwareVolumeInfo2PpiGuid"},
	{MustParseGUID("0AE8CE5D-E448-4437-A8D7-EBF5F194F731"), "gEfiDxeIplPpiGuid"},
	{MustParseGUID("0C0F3B43-44DE-4907-B478-225F6F6289DC"), "gUsbKeyboardLayoutPackageGuid"},
	{MustParseGUID("1B45CC0A-156A-428A-AF62-49864DA0E6E6"), "gPeiAprioriFileNameGuid"},
	{MustParseGUID("783658A3-4172-4421-A299-E009079C0CB4"), "gEfiLegacyBiosPlatformProtocolGuid"},
	{MustParseGUID("DBE23AA9-A345-4B97-85B6-B226F1617389"), "gEfiTemporaryRamSupportPpiGuid"},
	{MustParseGUID("0379BE4E-D706-437D-B037-EDB82FB772A4"), "gEfiDevicePathUtilitiesProtocolGuid"},
	{MustParseGUID("93039971-8545-4B04-B45E-32EB8326040E"), "gEfiHiiPlatformSetupFormsetGuid"},
	{MustParseGUID("964E5B21-6459-11D2-8E39-00A0C969723B"), "gEfiBlockIoProtocolGuid"},
	{MustParseGUID("EF398D58-9DFD-4103-BF94-78C6F4FE712F"), "gEfiPeiResetPpiGuid"},
	{MustParseGUID("309DE7F1-7F5E-4ACE-B49C-531BE5AA95EF"), "gEfiGenericMemTestProtocolGuid"},
	{MustParseGUID("09576E93-6D3F-11D2-8E39-00A0C969723B"), "gEfiFileSystemInfoGuid"},
	{MustParseGUID("AD61F191-AE5F-4C0E-B9FA-E869D288C64F"), "gEfiCpuIo2ProtocolGuid"},
	{MustParseGUID("F36FF770-A7E1-42CF-9ED2-56F0F271F44C"), "gEfiManagedNetworkServiceBindingProtocolGuid"},
	{MustParseGUID("F894643D-C449-42D1-8EA8-85BDD8C65BDE"), "gEfiPeiMemoryDiscoveredPpiGuid"},
	{MustParseGUID("8A219718-4EF5-4761-91C8-C0F04BDA9E56"), "gEfiDhcp4ProtocolGuid"},
	{MustParseGUID("5B1B31A1-9562-11D2-8E3F-00A0C969723B"), "gEfiLoadedImageProtocolGuid"},
	{MustParseGUID("03C4E603-AC28-11D3-9A2D-0090273FC14D"), "gEfiPxeBaseCodeProtocolGuid"},
	{MustParseGUID("F2FD1544-9794-4A2C-992E-E5BBCF20E394"), "gEfiSmbios3TableGuid"},
	{MustParseGUID("DB9A1E3D-45CB-4ABB-853B-E5387FDB2E2D"), "gEfiLegacyBiosProtocolGuid"},
	{MustParseGUID("5B446ED1-E30B-4FAA-871A-3654ECA36080"), "gEfiIp4Config2ProtocolGuid"},
	{MustParseGUID("8F644FA9-E850-4DB1-9CE2-0B44698E8DA4"), "gEfiFirmwareVolumeBlock2ProtocolGuid"},
	{MustParseGUID("B7DFB4E1-052F-449F-87BE-9818FC91B733"), "gEfiRuntimeArchProtocolGuid"},
	{MustParseGUID("A59E8FCF-BDA0-43BB-90B1-D3732ECAA877"), "gEfiScsiPassThruProtocolGuid"},
	{MustParseGUID("C54B425F-AA79-48B4-981F-998B3C4B641C"), "gTrEEConfigFormSetGuid"},
	{MustParseGUID("FA920010-6785-4941-B6EC-498C579F160A"), "gVirtioDeviceProtocolGuid"},
	{MustParseGUID("9BBE29E9-FDA1-41EC-AD52-452213742D2E"), "gEdkiiFormDisplayEngineProtocolGuid"},
	{MustParseGUID("7235C51C-0C80-4CAB-87AC-3B084A6304B1"), "gOvmfPlatformConfigGuid"},
	{MustParseGUID("2B2F68D6-0CD2-44CF-8E8B-BBA20B1B5B75"), "gEfiUsbIoProtocolGuid"},
	{MustParseGUID("8868E871-E4F1-11D3-BC22-0080C73C8881"), "gEfiAcpiTableGuid"},
	{MustParseGUID("158DEF5A-F656-419C-B027-7A3192C079D2"), "gShellVariableGuid"},
	{MustParseGUID("EB9D2D30-2D88-11D3-9A16-0090273FC14D"), "gEfiAcpi10TableGuid"},
	{MustParseGUID("49EDB1C1-BF21-4761-BB12-EB0031AABB39"), "gEfiPeiFirmwareVolumeInfoPpiGuid"},
	{MustParseGUID("6CC45765-CCE4-42FD-BC56-011AAAC6C9A8"), "gEfiPeiReset2PpiGuid"},
	{MustParseGUID("0053D9D6-2659-4599-A26B-EF4536E631A9"), "gShellAliasGuid"},
	{MustParseGUID("7081E22F-CAC6-4053-9468-675782CF88E5"), "gEfiEventDxeDispatchGuid"},
	{MustParseGUID("24A2D66F-EEDD-4086-9042-F26E4797EE69"), "gRootBridgesConnectedEventGroupGuid"},
	{MustParseGUID("3BD2F4EC-E524-46E4-A9D8-510117425562"), "gEfiHiiStandardFormGuid"},
	{MustParseGUID("02CE967A-DD7E-4FFC-9EE7-810CF0470880"), "gEfiEndOfDxeEventGroupGuid"},
	{MustParseGUID("CF8034BE-6768-4D8B-B739-7CCE683A9FBE"), "gEfiPciHostBridgeResourceAllocationProtocolGuid"},
	{MustParseGUID("107A772C-D5E1-11D4-9A46-0090273FC14D"), "gEfiComponentNameProtocolGuid"},
	{MustParseGUID("A77B2472-E282-4E9F-A245-C2C0E27BBCC1"), "gEfiBlockIo2ProtocolGuid"},
	{MustParseGUID("5C198761-16A8-4E69-972C-89D67954F81D"), "gEfiDriverSupportedEfiVersionProtocolGuid"},
	{MustParseGUID("2FE800BE-8F01-4AA6-946B-D71388E1833F"), "gEfiMtftp4ServiceBindingProtocolGuid"},
	{MustParseGUID("8B01E5B6-4F19-46E8-AB93-1C53671B90CC"), "gEfiTpmDeviceInstanceTpm12Guid"},
	{MustParseGUID("CEAB683C-EC56-4A2D-A906-4053FA4E9C16"), "gEfiTemporaryRamDonePpiGuid"},
	{MustParseGUID("286BF25A-C2C3-408C-B3B4-25E6758B7317"), "gEfiTpmDeviceInstanceTpm20DtpmGuid"},
	{MustParseGUID("D432A67F-14DC-484B-B3BB-3F0291849327"), "gEfiDiskInfoProtocolGuid"},
	{MustParseGUID("1A1241E6-8F19-41A9-BC0E-E8EF39E06546"), "gEfiHiiImageExProtocolGuid"},
	{MustParseGUID("6DCBD5ED-E82D-4C44-BDA1-7194199AD92A"), "gEfiFmpCapsuleGuid"},
	{MustParseGUID("1E5668E2-8481-11D4-BCF1-0080C73C8881"), "gEfiVariableArchProtocolGuid"},
	{MustParseGUID("0EF98D3A-3E33-497A-A401-77BE3EB74F38"), "gEfiAcpiS3ContextGuid"},
	{MustParseGUID("6441F818-6362-4E44-B570-7DBA31DD2453"), "gEfiVariableWriteArchProtocolGuid"},
	{MustParseGUID("B9D4C360-BCFB-4F9B-9298-53C136982258"), "gEfiFormBrowser2ProtocolGuid"},
	{MustParseGUID("7AB33A91-ACE5-4326-B572-E7EE33D39F16"), "gEfiManagedNetworkProtocolGuid"},
	{MustParseGUID("2CA88B53-D296-4080-A4A5-CAD9BAE24B09"), "gLoadFixedAddressConfigurationTableGuid"},
	{MustParseGUID("78BEE926-692F-48FD-9EDB-01422EF0D7AB"), "gEfiEventMemoryMapChangeGuid"},
	{MustParseGUID("0FD96974-23AA-4CDC-B9CB-98D17750322A"), "gEfiHiiStringProtocolGuid"},
	{MustParseGUID("7EE2BD44-3DA0-11D4-9A38-0090273FC14D"), "gEfiIsaIoProtocolGuid"},
	{MustParseGUID("605EA650-C65C-42E1-BA80-91A52AB618C6"), "gEfiEndOfPeiSignalPpiGuid"},
	{MustParseGUID("5CB5C776-60D5-45EE-883C-452708CD743F"), "gEfiLoadPeImageProtocolGuid"},
	{MustParseGUID("F541796D-A62E-4954-A775-9584F61B9CDD"), "gEfiTcgProtocolGuid"},
	{MustParseGUID("C88B0B6D-0DFC-49A7-9CB4-49074B4C3A78"), "gEfiStorageSecurityCommandProtocolGuid"},
	{MustParseGUID("3C7D193C-682C-4C14-A68F-552DEA4F437E"), "gPcdDataBaseSignatureGuid"},
	{MustParseGUID("59324945-EC44-4C0D-B1CD-9DB139DF070C"), "gEfiIScsiInitiatorNameProtocolGuid"},
	{MustParseGUID("78E4D245-CD4D-4A05-A2BA-4743E86CFCAB"), "gEfiSecurityPolicyProtocolGuid"},
	{MustParseGUID("00720665-67EB-4A99-BAF7-D3C33A1C7CC9"), "gEfiTcp4ServiceBindingProtocolGuid"},
	{MustParseGUID("A60C6B59-E459-425D-9C69-0BCC9CB27D81"), "gEfiGetPcdInfoPpiGuid"},
	{MustParseGUID("1F73B18D-4630-43C1-A1DE-6F80855D7DA4"), "gEdkiiFormBrowserExProtocolGuid"},
	{MustParseGUID("AAEACCFD-F27B-4C17-B610-75CA1F2DFB52"), "gEfiEbcVmTestProtocolGuid"},
	{MustParseGUID("D719B2CB-3D3A-4596-A3BC-DAD00E67656F"), "gEfiImageSecurityDatabaseGuid"},
	{MustParseGUID("BC62157E-3E33-4FEC-9920-2D3B36D750DF"), "gEfiLoadedImageDevicePathProtocolGuid"},
	{MustParseGUID("151C8EAE-7F2C-472C-9E54-9828194F6A88"), "gEfiDiskIo2ProtocolGuid"},
	{MustParseGUID("6EFAC84F-0AB0-4747-81BE-855562590449"), "gXenIoProtocolGuid"},
	{MustParseGUID("0A8BADD5-03B8-4D19-B128-7B8F0EDAA596"), "gEfiConfigKeywordHandlerProtocolGuid"},
	{MustParseGUID("65530BC7-A359-410F-B010-5AADC7EC2B62"), "gEfiTcp4ProtocolGuid"},
	{MustParseGUID("914AEBE7-4635-459B-AA1C-11E219B03A10"), "gEfiMdePkgTokenSpaceGuid"},
	{MustParseGUID("9042A9DE-23DC-4A38-96FB-7ADED080516A"), "gEfiGraphicsOutputProtocolGuid"},
	{MustParseGUID("05AD34BA-6F02-4214-952E-4DA0398E2BB9"), "gEfiDxeServicesTableGuid"},
	{MustParseGUID("26BACCB3-6F42-11D4-BCE7-0080C73C8881"), "gEfiTimerArchProtocolGuid"},
	{MustParseGUID("6E056FF9-C695-4364-9E2C-6126F5CEEAAE"), "gEfiPeiFirmwareVolumeInfoMeasurementExcludedPpiGuid"},
	{MustParseGUID("3152BCA5-EADE-433D-862E-C01CDC291F44"), "gEfiRngProtocolGuid"},
	{MustParseGUID("03583FF6-CB36-4940-947E-B9B39F4AFAF7"), "gEfiSmbiosProtocolGuid"},
	{MustParseGUID("88C9D306-0900-4EB5-8260-3E2DBEDA1F89"), "gPeiPostScriptTablePpiGuid"},
	{MustParseGUID("EE16160A-E8BE-47A6-820A-C6900DB0250A"), "gEfiPeiMpServicesPpiGuid"},
	{MustParseGUID("E701458C-4900-4CA5-B772-3D37949F7927"), "gStatusCodeCallbackGuid"},
	{MustParseGUID("BD445D79-B7AD-4F04-9AD8-29BD2040EB3C"), "gEfiLockBoxProtocolGuid"},
	{MustParseGUID("13AC6DD1-73D0-11D4-B06B-00AA00BD6DE7"), "gEfiEbcProtocolGuid"},
	{MustParseGUID("143B7632-B81B-4CB7-ABD3-B625A5B9BFFE"), "gEfiExtScsiPassThruProtocolGuid"},
	{MustParseGUID("786EC0AC-65AE-4D1B-B137-0D110A483797"), "gIScsiCHAPAuthInfoGuid"},
	{MustParseGUID("9B942747-154E-4D29-A436-BF7100C8B53B"), "gIp4Config2NvDataGuid"},
	{MustParseGUID("15853D7C-3DDF-43E0-A1CB-EBF85B8F872C"), "gEfiDeferredImageLoadProtocolGuid"},
	{MustParseGUID("79CB58C4-AC51-442F-AFD7-98E47D2E9908"), "gEfiBootScriptExecutorContextGuid"},
	{MustParseGUID("31A6406A-6BDF-4E46-B2A2-EBAA89C40920"), "gEfiHiiImageProtocolGuid"},
	{MustParseGUID("8BE4DF61-93CA-11D2-AA0D-00E098032B8C"), "gEfiGlobalVariableGuid"},
	{MustParseGUID("5BE40F57-FA68-4610-BBBF-E9C5FCDAD365"), "gGetPcdInfoProtocolGuid"},
	{MustParseGUID("9D9A39D8-BD42-4A73-A4D5-8EE94BE11380"), "gEfiDhcp4ServiceBindingProtocolGuid"},
	{MustParseGUID("FB6D9542-612D-4F45-872F-5CFF52E93DCF"), "gEfiPeiRecoveryModulePpiGuid"},
	{MustParseGUID("13FA7698-C831-49C7-87EA-8F43FCC25196"), "gEfiEventVirtualAddressChangeGuid"},
	{MustParseGUID("EA296D92-0B69-423C-8C28-33B4E0A91268"), "gPcdDataBaseHobGuid"},
	{MustParseGUID("B9E0ABFE-5979-4914-977F-6DEE78C278A6"), "gEfiPeiLoadFilePpiGuid"},
	{MustParseGUID("9E9F374B-8F16-4230-9824-5846EE766A97"), "gEfiSecPlatformInformation2PpiGuid"},
	{MustParseGUID("4C19049F-4137-4DD3-9C10-8B97A83FFDFA"), "gEfiMemoryTypeInformationGuid"},
	{MustParseGUID("83F01464-99BD-45E5-B383-AF6305D8E9E6"), "gEfiUdp4ServiceBindingProtocolGuid"},
	{MustParseGUID("B5B35764-460C-4A06-99FC-77A17C1B5CEB"), "gEfiPciOverrideProtocolGuid"},
	{MustParseGUID("A030D115-54DD-447B-9064-F206883D7CCC"), "gPeiTpmInitializationDonePpiGuid"},
	{MustParseGUID("60FF8964-E906-41D0-AFED-F241E974E08E"), "gEfiDxeSmmReadyToLockProtocolGuid"},
	{MustParseGUID("1DA97072-BDDC-4B30-99F1-72A0B56FFF2A"), "gEfiMonotonicCounterArchProtocolGuid"},
	{MustParseGUID("D79DF6B0-EF44-43BD-9797-43E93BCF5FA8"), "gVlanConfigFormSetGuid"},
	{MustParseGUID("F4CCBFB7-F6E0-47FD-9DD4-10A8F150C191"), "gEfiSmmBase2ProtocolGuid"},
	{MustParseGUID("6F8C2B35-FEF4-448D-8256-E11B19D61077"), "gEfiSecPlatformInformationPpiGuid"},
	{MustParseGUID("9E66F251-727C-418C-BFD6-C2B4252818EA"), "gEfiHiiImageDecoderProtocolGuid"},
	{MustParseGUID("3FDDA605-A76E-4F46-AD29-12F4531B3D08"), "gEfiMpServiceProtocolGuid"},
	{MustParseGUID("01F34D25-4DE2-23AD-3FF3-36353FF323F1"), "gEfiPeiPcdPpiGuid"},
	{MustParseGUID("711C703F-C285-4B10-A3B0-36ECBD3C8BE2"), "gEfiCapsuleVendorGuid"},
	{MustParseGUID("171E9188-31D3-40F5-B10C-539B2DB940CD"), "gEfiShellPkgTokenSpaceGuid"},
	{MustParseGUID("1D85CD7F-F43D-11D2-9A0C-0090273FC14D"), "gEfiUnicodeCollationProtocolGuid"},
	{MustParseGUID("3AD9DF29-4501-478D-B1F8-7F7FE70E50F3"), "gEfiUdp4ProtocolGuid"},
	{MustParseGUID("B3F79D9A-436C-DC11-B052-CD85DF524CE6"), "gEfiRegularExpressionProtocolGuid"},
	{MustParseGUID("2F707EBB-4A1A-11D4-9A38-0090273FC14D"), "gEfiPciRootBridgeIoProtocolGuid"},
	{MustParseGUID("607F766C-7455-42BE-930B-E4D76DB2720F"), "gEfiTrEEProtocolGuid"},
	{MustParseGUID("F6EE6DBB-D67F-4EA0-8B96-6A71B19D84AD"), "gEdkiiStatusCodeDataTypeVariableGuid"},
	{MustParseGUID("00000000-0000-0000-0000-000000000000"), "gZeroGuid"},
	{MustParseGUID("268F33A9-CCCD-48BE-8817-86053AC32ED6"), "gPeiSmmAccessPpiGuid"},
	{MustParseGUID("D8117CFE-94A6-11D4-9A3A-0090273FC14D"), "gEfiDecompressProtocolGuid"},
	{MustParseGUID("387477C1-69C7-11D2-8E39-00A0C969723B"), "gEfiSimpleTextInProtocolGuid"},
	{MustParseGUID("7BAEC70B-57E0-4C76-8E87-2F9E28088343"), "gEfiVT100PlusGuid"},
	{MustParseGUID("E9CA4775-8657-47FC-97E7-7ED65A084324"), "gEfiHiiFontProtocolGuid"},
	{MustParseGUID("215FDD18-BD50-4FEB-890B-58CA0B4739E9"), "gEfiSioProtocolGuid"},
	{MustParseGUID("0065D394-9951-4144-82A3-0AFC8579C251"), "gEfiPeiRscHandlerPpiGuid"},
	{MustParseGUID("DCD0BE23-9586-40F4-B643-06522CED4EDE"), "gEfiPeiSecurity2PpiGuid"},
	{MustParseGUID("56EC3091-954C-11D2-8E3F-00A0C969723B"), "gEfiLoadFileProtocolGuid"},
	{MustParseGUID("E20939BE-32D4-41BE-A150-897F85D49829"), "gEfiMemoryOverwriteControlDataGuid"},
	{MustParseGUID("F24643C2-C622-494E-8A0D-4632579C2D5B"), "gEfiTrEEPhysicalPresenceGuid"},
	{MustParseGUID("5E948FE3-26D3-42B5-AF17-610287188DEC"), "gEfiDiskInfoIdeInterfaceGuid"},
	{MustParseGUID("F22FC20C-8CF4-45EB-8E06-AD4E50B95DD3"), "gEfiHiiDriverHealthFormsetGuid"},
	{MustParseGUID("607F766C-7455-42BE-930B-E4D76DB2720F"), "gEfiTcg2ProtocolGuid"},
	{MustParseGUID("8868E871-E4F1-11D3-BC22-0080C73C8881"), "gEfiAcpi20TableGuid"},
	{MustParseGUID("326AE723-AE32-4589-98B8-CAC23CDCC1B1"), "gPcAtChipsetPkgTokenSpaceGuid"},
	{MustParseGUID("6FD5B00C-D426-4283-9887-6CF5CF1CB1FE"), "gEfiUserManagerProtocolGuid"},
	{MustParseGUID("2A72D11E-7376-40F6-9C68-23FA2FE363F1"), "gEfiEbcSimpleDebuggerProtocolGuid"},
	{MustParseGUID("A4C751FC-23AE-4C3E-92E9-4964CF63F349"), "gEfiUnicodeCollation2ProtocolGuid"},
	{MustParseGUID("78247C57-63DB-4708-99C2-A8B4A9A61F6B"), "gEfiMtftp4ProtocolGuid"},
	{MustParseGUID("48ECB431-FB72-45C0-A922-F458FE040BD5"), "gEfiEdidOverrideProtocolGuid"},
	{MustParseGUID("EF598499-B25E-473A-BFAF-E7E57DCE82C4"), "gTpmErrorHobGuid"},
	{MustParseGUID("E58809F8-FBC1-48E2-883A-A30FDC4B441E"), "gEfiIfrFrontPageGuid"},
	{MustParseGUID("A3979E64-ACE8-4DDC-BC07-4D66B8FD0977"), "gEfiIpSec2ProtocolGuid"},
	{MustParseGUID("26BACCB2-6F42-11D4-BCE7-0080C73C8881"), "gEfiMetronomeArchProtocolGuid"},
	{MustParseGUID("F44C00EE-1F2C-4A00-AA09-1C9F3E0800A3"), "gEfiArpServiceBindingProtocolGuid"},
	{MustParseGUID("C12A7328-F81F-11D2-BA4B-00A0C93EC93B"), "gEfiPartTypeSystemPartGuid"},
	{MustParseGUID("7F4158D3-074D-456D-8CB2-01F9C8F79DAA"), "gEfiTpmDeviceSelectedGuid"},
	{MustParseGUID("05C99A21-C70F-4AD2-8A5F-35DF3343F51E"), "gEfiDevicePathFromTextProtocolGuid"},
	{MustParseGUID("AD15A0D6-8BEC-4ACF-A073-D01DE77E2D88"), "gEfiVTUTF8Guid"},
	{MustParseGUID("86212936-0E76-41C8-A03A-2AF2FC1C39E2"), "gEfiRscHandlerProtocolGuid"},
	{MustParseGUID("26BACCB1-6F42-11D4-BCE7-0080C73C8881"), "gEfiCpuArchProtocolGuid"},
	{MustParseGUID("A7717414-C616-4977-9420-844712A735BF"), "gEfiCertTypeRsa2048Sha256Guid"},
	{MustParseGUID("4B3029CC-6B98-47FB-BC96-76DCB80441F0"), "gEfiDiskInfoUfsInterfaceGuid"},
	{MustParseGUID("587E72D7-CC50-4F79-8209-CA291FC1A10F"), "gEfiHiiConfigRoutingProtocolGuid"},
	{MustParseGUID("665E3FF5-46CC-11D4-9A38-0090273FC14D"), "gEfiWatchdogTimerArchProtocolGuid"},
	{MustParseGUID("27CFAC87-46CC-11D4-9A38-0090273FC14D"), "gEfiRealTimeClockArchProtocolGuid"},
	{MustParseGUID("06E81C58-4AD7-44BC-8390-F10265F72480"), "gPcdPpiGuid"},
	{MustParseGUID("EB23F55A-7863-4AC2-8D3D-956535DE0375"), "gEfiIncompatiblePciDeviceSupportProtocolGuid"},
	{MustParseGUID("DD9E7534-7762-4698-8C14-F58517A625AA"), "gEfiSimpleTextInputExProtocolGuid"},
	{MustParseGUID("D3B36F2C-D551-11D4-9A46-0090273FC14D"), "gEfiConsoleOutDeviceGuid"},
	{MustParseGUID("CD3D0A05-9E24-437C-A891-1EE053DB7638"), "gEdkiiVariableLockProtocolGuid"},
	{MustParseGUID("1259F60D-B754-468E-A789-4DB85D55E87E"), "gEfiSwapAddressRangeProtocolGuid"},
	{MustParseGUID("880AACA3-4ADC-4A04-9079-B747340825E5"), "gEfiPropertiesTableGuid"},
	{MustParseGUID("F8E21975-0899-4F58-A4BE-5525A9C6D77A"), "gEfiHobMemoryAllocModuleGuid"},
	{MustParseGUID("6456ED61-3579-41C9-8A26-0A0BD62B78FC"), "gIp4IScsiConfigGuid"},
	{MustParseGUID("09576E92-6D3F-11D2-8E39-00A0C969723B"), "gEfiFileInfoGuid"},
	{MustParseGUID("4D8B155B-C059-4C8F-8926-06FD4331DB8A"), "gGetPcdInfoPpiGuid"},
	{MustParseGUID("FC510EE7-FFDC-11D4-BD41-0080C73C8881"), "gAprioriGuid"},
	{MustParseGUID("4006C0C1-FCB3-403E-996D-4A6C8724E06D"), "gEfiLoadFile2ProtocolGuid"},
	{MustParseGUID("AF060190-5E3A-4025-AFBD-E1F905BFAA4C"), "gEfiHiiImageDecoderNamePngGuid"},
	{MustParseGUID("AC05BF33-995A-4ED4-AAB8-EF7AE80F5CB0"), "gUefiCpuPkgTokenSpaceGuid"},
	{MustParseGUID("4DF19259-DC71-4D46-BEF1-357BB578C418"), "gEfiPs2PolicyProtocolGuid"},
	{MustParseGUID("E0C14753-F9BE-11D2-9A0C-0090273FC14D"), "gEfiPcAnsiGuid"},
	{MustParseGUID("76B6BDFA-2ACD-4462-9E3F-CB58C969D937"), "gPerformanceProtocolGuid"},
	{MustParseGUID("CE345171-BA0B-11D2-8E4F-00A0C969723B"), "gEfiDiskIoProtocolGuid"},
	{MustParseGUID("2755590C-6F3C-42FA-9EA4-A3BA543CDA25"), "gEfiDebugSupportProtocolGuid"},
	{MustParseGUID("752F3136-4E16-4FDC-A22A-E5F46812F4CA"), "gEfiShellParametersProtocolGuid"},
	{MustParseGUID("D2B2B828-0826-48A7-B3DF-983C006024F0"), "gEfiStatusCodeRuntimeProtocolGuid"},
	{MustParseGUID("996EC11C-5397-4E73-B58F-827E52906DEF"), "gEfiVectorHandoffTableGuid"},
	{MustParseGUID("7CE88FB3-4BD7-4679-87A8-A8D8DEE50D2B"), "gEfiEventReadyToBootGuid"},
	{MustParseGUID("0F0B1735-87A0-4193-B266-538C38AF48CE"), "gEfiIfrTianoGuid"},
	{MustParseGUID("AB38A0DF-6873-44A9-87E6-D4EB56148449"), "gEfiRamDiskProtocolGuid"},
	{MustParseGUID("7D916D80-5BB1-458C-A48F-E25FDD51EF94"), "gEfiTtyTermGuid"},
	{MustParseGUID("51AA59DE-FDF2-4EA3-BC63-875FB7842EE9"), "gEfiHashAlgorithmSha256Guid"},
	{MustParseGUID("EF9FC172-A1B2-4693-B327-6D32FC416042"), "gEfiHiiDatabaseProtocolGuid"},
	{MustParseGUID("31878C87-0B75-11D5-9A4F-0090273FC14D"), "gEfiSimplePointerProtocolGuid"},
	{MustParseGUID("19CB87AB-2CB9-4665-8360-DDCF6054F79D"), "gEfiPciHotPlugRequestProtocolGuid"},
	{MustParseGUID("49152E77-1ADA-4764-B7A2-7AFEFED95E8B"), "gEfiDebugImageInfoTableGuid"},
	{MustParseGUID("7408D748-FC8C-4EE6-9288-C4BEC092A410"), "gEfiPeiMasterBootModePpiGuid"},
	{MustParseGUID("3A4D7A7C-018A-4B42-81B3-DC10E3B591BD"), "gUsbKeyboardLayoutKeyGuid"},
	{MustParseGUID("DFA66065-B419-11D3-9A2D-0090273FC14D"), "gEfiVT100Guid"},
	{MustParseGUID("2B9FFB52-1B13-416F-A87B-BC930DEF92A8"), "gTcgEventEntryHobGuid"},
	{MustParseGUID("C51711E7-B4BF-404A-BFB8-0A048EF1FFE4"), "gEfiIp4ServiceBindingProtocolGuid"},
	{MustParseGUID("37499A9D-542F-4C89-A026-35DA142094E4"), "gEfiUartDevicePathGuid"},
	{MustParseGUID("387477C2-69C7-11D2-8E39-00A0C969723B"), "gEfiSimpleTextOutProtocolGuid"},
	{MustParseGUID("27CFAC88-46CC-11D4-9A38-0090273FC14D"), "gEfiResetArchProtocolGuid"},
	{MustParseGUID("964E5B22-6459-11D2-8E39-00A0C969723B"), "gEfiSimpleFileSystemProtocolGuid"},
	{MustParseGUID("982C298B-F4FA-41CB-B838-77AA688FB839"), "gEfiUgaDrawProtocolGuid"},
	{MustParseGUID("229832D3-7A30-4B36-B827-F40CB7D45436"), "gEfiPeiStatusCodePpiGuid"},
	{MustParseGUID("52C78312-8EDC-4233-98F2-1A1AA5E388A5"), "gEfiNvmExpressPassThruProtocolGuid"},
	{MustParseGUID("3EBD9E82-2C78-4DE6-9786-8D4BFCB7C881"), "gEfiFaultTolerantWriteProtocolGuid"},
	{MustParseGUID("821C9A09-541A-40F6-9F43-0AD193A12CFE"), "gEdkiiMemoryProfileGuid"},
	{MustParseGUID("665E3FF6-46CC-11D4-9A38-0090273FC14D"), "gEfiBdsArchProtocolGuid"},
	{MustParseGUID("8F644FA9-E850-4DB1-9CE2-0B44698E8DA4"), "gEfiFirmwareVolumeBlockProtocolGuid"},
	{MustParseGUID("CDEA2BD3-FC25-4C1C-B97C-B31186064990"), "gEfiBootLogoProtocolGuid"},
	{MustParseGUID("0D3FB176-9569-4D51-A3EF-7D61C64FEABA"), "gEfiSecurityPkgTokenSpaceGuid"},
	{MustParseGUID("A1E37052-80D9-4E65-A317-3E9A55C43EC9"), "gEfiIdeControllerInitProtocolGuid"},
	{MustParseGUID("31CA5D1A-D511-4931-B782-AE6B2B178CD7"), "gEfiIfrFrameworkGuid"},
	{MustParseGUID("2A46715F-3581-4A55-8E73-2B769AAA30C5"), "gRamDiskFormSetGuid"},
	{MustParseGUID("77AB535A-45FC-624B-5560-F7B281D1F96E"), "gEfiVirtualDiskGuid"},
	{MustParseGUID("B2360B42-7173-420A-8696-46CA6BAB1060"), "gMeasuredFvHobGuid"},
	{MustParseGUID("6A7A5CFF-E8D9-4F70-BADA-75AB3025CE14"), "gEfiComponentName2ProtocolGuid"},
	{MustParseGUID("E9DB0D58-D48D-47F6-9C6E-6F40E86C7B41"), "gPeiTpmInitializedPpiGuid"},
	{MustParseGUID("EFEFD093-0D9B-46EB-A856-48350700C908"), "gEfiHiiImageDecoderNameJpegGuid"},
	{MustParseGUID("245DCA21-FB7B-11D3-8F01-00A0C969723B"), "gEfiPxeBaseCodeCallbackProtocolGuid"},
	{MustParseGUID("3C8D294C-5FC3-4451-BB31-C4C032295E6C"), "gIdleLoopEventGuid"},
	{MustParseGUID("00000000-0000-0000-0000-000000000000"), "gEfiTpmDeviceInstanceNoneGuid"},
	{MustParseGUID("220E73B6-6BDB-4413-8405-B974B108619A"), "gEfiFirmwareVolume2ProtocolGuid"},
	{MustParseGUID("480F8AE9-0C46-4AA9-BC89-DB9FBA619806"), "gEfiDpcProtocolGuid"},
	{MustParseGUID("EB97088E-CFDF-49C6-BE4B-D906A5B20E86"), "gEfiAcpiSdtProtocolGuid"},
	{MustParseGUID("DB47D7D3-FE81-11D3-9A35-0090273FC14D"), "gEfiFileSystemVolumeLabelInfoIdGuid"},
	{MustParseGUID("DCFA911D-26EB-469F-A220-38B7DC461220"), "gEfiMemoryAttributesTableGuid"},
	{MustParseGUID("14982A4F-B0ED-45B8-A811-5A7A9BC232DF"), "gEfiHiiKeyBoardLayoutGuid"},
	{MustParseGUID("09576E91-6D3F-11D2-8E39-00A0C969723B"), "gEfiDevicePathProtocolGuid"},
	{MustParseGUID("3BC1B285-8A15-4A82-AABF-4D7D13FB3265"), "gEfiBusSpecificDriverOverrideProtocolGuid"},
	{MustParseGUID("060CC026-4C0D-4DDA-8F41-595FEF00A502"), "gMemoryStatusCodeRecordGuid"},
	{MustParseGUID("1D3DE7F0-0807-424F-AA69-11A54E19A46F"), "gEfiAtaPassThruProtocolGuid"},
	{MustParseGUID("27ABF055-B1B8-4C26-8048-748F37BAA2DF"), "gEfiEventExitBootServicesGuid"},
	{MustParseGUID("FFE06BDD-6107-46A6-7BB2-5A9C7EC5275C"), "gEfiAcpiTableProtocolGuid"},
	{MustParseGUID("41D94CD2-35B6-455A-8258-D4E51334AADD"), "gEfiIp4ProtocolGuid"},
	{MustParseGUID("93BB96AF-B9F2-4EB8-9462-E0BA74564236"), "gUefiOvmfPkgTokenSpaceGuid"},
	{MustParseGUID("0CC252D2-C106-4661-B5BD-3147A4F81F92"), "gEfiPrint2SProtocolGuid"},
	{MustParseGUID("2AB86EF5-ECB5-4134-B556-3854CA1FE1B4"), "gEfiPeiReadOnlyVariable2PpiGuid"},
	{MustParseGUID("0F6499B1-E9AD-493D-B9C2-2F90815C6CBC"), "gEfiPhysicalPresenceGuid"},
	{MustParseGUID("9E23D768-D2F3-4366-9FC3-3A7ABA864374"), "gEfiVlanConfigProtocolGuid"},
	{MustParseGUID("38321DBA-4FE0-4E17-8AEC-413055EAEDC1"), "gEfiLegacy8259ProtocolGuid"},
	{MustParseGUID("6B558CE3-69E5-4C67-A634-F7FE72ADBE84"), "gBlockMmioProtocolGuid"},
	{MustParseGUID("6D582DBC-DB85-4514-8FCC-5ADF6227B147"), "gEfiPeiS3Resume2PpiGuid"},
	{MustParseGUID("6A1EE763-D47A-43B4-AABE-EF1DE2AB56FC"), "gEfiHiiPackageListProtocolGuid"},
	{MustParseGUID("2E3044AC-879F-490F-9760-BBDFAF695F50"), "gEfiLegacyBiosGuid"},
	{MustParseGUID("30CFE3E7-3DE1-4586-BE20-DEABA1B3B793"), "gEfiPciEnumerationCompleteProtocolGuid"},
	{MustParseGUID("3D3CA290-B9A5-11E3-B75D-B8AC6F7D65E6"), "gXenBusProtocolGuid"},
	{MustParseGUID("8D59D32B-C655-4AE9-9B15-F25904992A43"), "gEfiAbsolutePointerProtocolGuid"},
	{MustParseGUID("1A36E4E7-FAB6-476A-8E75-695A0576FDD7"), "gEfiPeiDecompressPpiGuid"},
	{MustParseGUID("F5089266-1AA0-4953-97D8-562F8A73B519"), "gEfiUsbHcProtocolGuid"},
	{MustParseGUID("11B34006-D85B-4D0A-A290-D5A571310EF7"), "gPcdProtocolGuid"},
	{MustParseGUID("1ACED566-76ED-4218-BC81-767F1F977A89"), "gEfiNetworkInterfaceIdentifierProtocolGuid_31"},
	{MustParseGUID("8B843E20-8132-4852-90CC-551A4E4A7F1C"), "gEfiDevicePathToTextProtocolGuid"},
	{MustParseGUID("4F6C5507-232F-4787-B95E-72F862490CB1"), "gEventExitBootServicesFailedGuid"},
	{MustParseGUID("BD8C1056-9F36-44EC-92A8-A6337F817986"), "gEfiEdidActiveProtocolGuid"},
	{MustParseGUID("00000000-0000-0000-0000-000000000000"), "gEfiPartTypeUnusedGuid"},
	{MustParseGUID("D3B36F2D-D551-11D4-9A46-0090273FC14D"), "gEfiStandardErrorDeviceGuid"},
	{MustParseGUID("9E498932-4ABC-45AF-A34D-0247787BE7C6"), "gEfiDiskInfoAhciInterfaceGuid"},
	{MustParseGUID("92D11080-496F-4D95-BE7E-037488382B0A"), "gEfiStatusCodeDataTypeStringGuid"},
	{MustParseGUID("1C0C34F6-D380-41FA-A049-8AD06C1A66AA"), "gEfiEdidDiscoveredProtocolGuid"},
	{MustParseGUID("9E58292B-7C68-497D-A0CE-6500FD9F1B95"), "gEdkiiWorkingBlockSignatureGuid"},
	{MustParseGUID("A19832B9-AC25-11D3-9A2D-0090273FC14D"), "gEfiSimpleNetworkProtocolGuid"},
	{MustParseGUID("53CD299F-2BC1-40C0-8C07-23F64FDB30E0"), "gEdkiiPlatformLogoProtocolGuid"},
	{MustParseGUID("AF9FFD67-EC10-488A-9DFC-6CBF5EE22C2E"), "gEfiAcpiVariableGuid"},
	{MustParseGUID("1E43298F-3478-41A7-B577-86064635C728"), "gOptionRomPkgTokenSpaceGuid"},
	{MustParseGUID("07D75280-27D4-4D69-90D0-5643E238B341"), "gEfiPciPlatformProtocolGuid"},
	{MustParseGUID("DB4E8151-57ED-4BED-8833-6751B5D1A8D7"), "gConnectConInEventGuid"},
	{MustParseGUID("E43176D7-B6E8-4827-B784-7FFDC4B68561"), "gEfiRngAlgorithmRaw"},
	{MustParseGUID("95A9A93E-A86E-4926-AAEF-9918E772D987"), "gEfiEraseBlockProtocolGuid"},
	{MustParseGUID("8C8CE578-8A3D-4F1C-9935-896185C32DD3"), "gEfiFirmwareFileSystem2Guid"},
	{MustParseGUID("F4B427BB-BA21-4F16-BC4E-43E416AB619C"), "gEfiArpProtocolGuid"},
	{MustParseGUID("4CF5B200-68B8-4CA5-9EEC-B23E3F50029A"), "gEfiPciIoProtocolGuid"},
	{MustParseGUID("5473C07A-3DCB-4DCA-BD6F-1E9689E7349A"), "gEfiFirmwareFileSystem3Guid"},
	{MustParseGUID("6302D008-7F9B-4F30-87AC-60C9FEF5DA4E"), "gEfiShellProtocolGuid"},
	{MustParseGUID("3CD652B4-6D33-4DCE-89DB-83DF9766FCCA"), "gEfiVectorHandoffInfoPpiGuid"},
	{MustParseGUID("7739F24C-93D7-11D4-9A3A-0090273FC14D"), "gEfiHobListGuid"},
	{MustParseGUID("932F47E6-2362-4002-803E-3CD54B138F85"), "gEfiScsiIoProtocolGuid"},
	{MustParseGUID("08F74BAA-EA36-41D9-9521-21A70F8780BC"), "gEfiDiskInfoScsiInterfaceGuid"},
	{MustParseGUID("64A892DC-5561-4536-92C7-799BFC183355"), "gEfiIsaAcpiProtocolGuid"},
	{MustParseGUID("EB9D2D31-2D88-11D3-9A16-0090273FC14D"), "gEfiSmbiosTableGuid"},
	{MustParseGUID("BB25CF6F-F1D4-11D2-9A0C-0090273FC1FD"), "gEfiSerialIoProtocolGuid"},
	{MustParseGUID("AA0E8BC1-DABC-46B0-A844-37B8169B2BEA"), "gEfiPciHotPlugInitProtocolGuid"},
	{MustParseGUID("D3B36F2B-D551-11D4-9A46-0090273FC14D"), "gEfiConsoleInDeviceGuid"},
	{MustParseGUID("A770C357-B693-4E6D-A6CF-D21C728E550B"), "gEdkiiFormBrowserEx2ProtocolGuid"},
	{MustParseGUID("3079818C-46D4-4A73-AEF3-E3E46CF1EEDB"), "gEfiBootScriptExecutorVariableGuid"},
	{MustParseGUID("6B30C738-A391-11D4-9A3B-0090273FC14D"), "gEfiPlatformDriverOverrideProtocolGuid"},
	{MustParseGUID("FD0F4478-0EFD-461D-BA2D-E58C45FD5F5E"), "gEfiGetPcdInfoProtocolGuid"},
	{MustParseGUID("31CE593D-108A-485D-ADB2-78F21F2966BE"), "gEfiLegacyInterruptProtocolGuid"},
	{MustParseGUID("EB704011-1402-11D3-8E77-00A0C969723B"), "gMtcVendorGuid"},
	{MustParseGUID("18A031AB-B443-4D1A-A5C0-0C09261E9F71"), "gEfiDriverBindingProtocolGuid"},
	{MustParseGUID("A1AFF049-FDEB-442A-B320-13AB4CB72BBC"), "gEfiMdeModulePkgTokenSpaceGuid"},
	{MustParseGUID("13A3F0F6-264A-3EF0-F2E0-DEC512342F34"), "gEfiPcdProtocolGuid"},
	{MustParseGUID("F05976EF-83F1-4F3D-8619-F7595D41E538"), "gEfiPrint2ProtocolGuid"},
	{MustParseGUID("94AB2F58-1438-4EF1-9152-18941A3A0E68"), "gEfiSecurity2ArchProtocolGuid"},
	{MustParseGUID("D3705011-BC19-4AF7-BE16-F68030378C15"), "gEfiIntelFrameworkModulePkgTokenSpaceGuid"},
	{MustParseGUID("E857CAF6-C046-45DC-BE3F-EE0765FBA887"), "gEfiS3SaveStateProtocolGuid"},
	{MustParseGUID("70101EAF-0085-440C-B356-8EE36FEF24F0"), "gEfiLegacyRegion2ProtocolGuid"},
	{MustParseGUID("C7735A2F-88F5-4882-AE63-FAAC8C8B86B3"), "gEfiVgaMiniPortProtocolGuid"},
	{MustParseGUID("5053697E-2CBC-4819-90D9-0580DEEE5754"), "gEfiCapsuleArchProtocolGuid"},
	{MustParseGUID("B1EE129E-DA36-4181-91F8-04A4923766A7"), "gEfiDriverFamilyOverrideProtocolGuid"},
	{MustParseGUID("A46423E3-4617-49F1-B9FF-D1BFA9115839"), "gEfiSecurityArchProtocolGuid"},
	{MustParseGUID("330D4706-F2A0-4E4F-A369-B66FA8D54385"), "gEfiHiiConfigAccessProtocolGuid"},
	{MustParseGUID("FC1BCDB0-7D31-49AA-936A-A4600D9DD083"), "CRC32"},
	{MustParseGUID("A31280AD-481E-41B6-95E8-127F4C984779"), "TIANO_COMPRESS"},
	{MustParseGUID("EE4E5898-3914-4259-9D6E-DC7BD79403CF"), "LZMA_COMPRESS"},
}
