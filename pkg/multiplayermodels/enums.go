// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package multiplayermodels

import "playfab-models-go/pkg/jsonutil"

type AzureRegion int32

const (
	AzureRegionAustraliaEast AzureRegion = iota + 1
	AzureRegionAustraliaSoutheast
	AzureRegionBrazilSouth
	AzureRegionCentralUs
	AzureRegionEastAsia
	AzureRegionEastUs
	AzureRegionEastUs2
	AzureRegionJapanEast
	AzureRegionJapanWest
	AzureRegionNorthCentralUs
	AzureRegionNorthEurope
	AzureRegionSouthCentralUs
	AzureRegionSoutheastAsia
	AzureRegionWestEurope
	AzureRegionWestUs
	AzureRegionSouthAfricaNorth
	AzureRegionWestCentralUs
	AzureRegionKoreaCentral
	AzureRegionFranceCentral
	AzureRegionWestUs2
	AzureRegionCentralIndia
	AzureRegionUaeNorth
	AzureRegionUkSouth
)

var azureRegionNames = jsonutil.NewEnumNames[AzureRegion](
	"AustraliaEast", "AustraliaSoutheast", "BrazilSouth", "CentralUs", "EastAsia", "EastUs",
	"EastUs2", "JapanEast", "JapanWest", "NorthCentralUs", "NorthEurope", "SouthCentralUs",
	"SoutheastAsia", "WestEurope", "WestUs", "SouthAfricaNorth", "WestCentralUs", "KoreaCentral",
	"FranceCentral", "WestUs2", "CentralIndia", "UaeNorth", "UkSouth",
)

func (v AzureRegion) String() string { return azureRegionNames.String(v) }
func (v AzureRegion) IsValid() bool { return azureRegionNames.IsValid(v) }
func (v AzureRegion) MarshalJSON() ([]byte, error) { return azureRegionNames.MarshalJSON(v) }

func (v *AzureRegion) UnmarshalJSON(data []byte) error { return azureRegionNames.UnmarshalJSON(data, v) }

func ParseAzureRegion(s string) (AzureRegion, bool) { return azureRegionNames.Parse(s) }

type AzureVMFamily int32

const (
	AzureVMFamilyA AzureVMFamily = iota + 1
	AzureVMFamilyAv2
	AzureVMFamilyDv2
	AzureVMFamilyDv3
	AzureVMFamilyF
	AzureVMFamilyFsv2
	AzureVMFamilyDasv4
	AzureVMFamilyDav4
	AzureVMFamilyEav4
	AzureVMFamilyEasv4
	AzureVMFamilyEv4
	AzureVMFamilyEsv4
	AzureVMFamilyDsv3
	AzureVMFamilyDsv2
	AzureVMFamilyNCasT4V3
	AzureVMFamilyDdv4
	AzureVMFamilyDdsv4
	AzureVMFamilyHBv3
)

var azureVMFamilyNames = jsonutil.NewEnumNames[AzureVMFamily](
	"A", "Av2", "Dv2", "Dv3", "F", "Fsv2", "Dasv4", "Dav4", "Eav4", "Easv4", "Ev4", "Esv4", "Dsv3",
	"Dsv2", "NCasT4_v3", "Ddv4", "Ddsv4", "HBv3",
)

func (v AzureVMFamily) String() string { return azureVMFamilyNames.String(v) }
func (v AzureVMFamily) IsValid() bool { return azureVMFamilyNames.IsValid(v) }
func (v AzureVMFamily) MarshalJSON() ([]byte, error) { return azureVMFamilyNames.MarshalJSON(v) }

func (v *AzureVMFamily) UnmarshalJSON(data []byte) error { return azureVMFamilyNames.UnmarshalJSON(data, v) }

func ParseAzureVMFamily(s string) (AzureVMFamily, bool) { return azureVMFamilyNames.Parse(s) }

// AzureVmSize is a virtual machine size available for server builds.
type AzureVMSize int32

const (
	AzureVMSizeStandardA1 AzureVMSize = iota + 1
	AzureVMSizeStandardA2
	AzureVMSizeStandardA3
	AzureVMSizeStandardA4
	AzureVMSizeStandardA1V2
	AzureVMSizeStandardA2V2
	AzureVMSizeStandardA4V2
	AzureVMSizeStandardA8V2
	AzureVMSizeStandardD1V2
	AzureVMSizeStandardD2V2
	AzureVMSizeStandardD3V2
	AzureVMSizeStandardD4V2
	AzureVMSizeStandardD5V2
	AzureVMSizeStandardD2V3
	AzureVMSizeStandardD4V3
	AzureVMSizeStandardD8V3
	AzureVMSizeStandardD16V3
	AzureVMSizeStandardF1
	AzureVMSizeStandardF2
	AzureVMSizeStandardF4
	AzureVMSizeStandardF8
	AzureVMSizeStandardF16
	AzureVMSizeStandardF2sV2
	AzureVMSizeStandardF4sV2
	AzureVMSizeStandardF8sV2
	AzureVMSizeStandardF16sV2
	AzureVMSizeStandardD2asV4
	AzureVMSizeStandardD4asV4
	AzureVMSizeStandardD8asV4
	AzureVMSizeStandardD16asV4
	AzureVMSizeStandardD2aV4
	AzureVMSizeStandardD4aV4
	AzureVMSizeStandardD8aV4
	AzureVMSizeStandardD16aV4
	AzureVMSizeStandardE2aV4
	AzureVMSizeStandardE4aV4
	AzureVMSizeStandardE8aV4
	AzureVMSizeStandardE16aV4
	AzureVMSizeStandardE2asV4
	AzureVMSizeStandardE4asV4
	AzureVMSizeStandardE8asV4
	AzureVMSizeStandardE16asV4
	AzureVMSizeStandardD2sV3
	AzureVMSizeStandardD4sV3
	AzureVMSizeStandardD8sV3
	AzureVMSizeStandardD16sV3
	AzureVMSizeStandardDS1V2
	AzureVMSizeStandardDS2V2
	AzureVMSizeStandardDS3V2
	AzureVMSizeStandardDS4V2
	AzureVMSizeStandardDS5V2
	AzureVMSizeStandardNC4asT4V3
	AzureVMSizeStandardD2dV4
	AzureVMSizeStandardD4dV4
	AzureVMSizeStandardD8dV4
	AzureVMSizeStandardD16dV4
	AzureVMSizeStandardD2dsV4
	AzureVMSizeStandardD4dsV4
	AzureVMSizeStandardD8dsV4
	AzureVMSizeStandardD16dsV4
	AzureVMSizeStandardHB12016rsV3
	AzureVMSizeStandardHB12032rsV3
	AzureVMSizeStandardHB12064rsV3
	AzureVMSizeStandardHB12096rsV3
	AzureVMSizeStandardHB120rsV3
)

var azureVMSizeNames = jsonutil.NewEnumNames[AzureVMSize](
	"Standard_A1", "Standard_A2", "Standard_A3", "Standard_A4", "Standard_A1_v2", "Standard_A2_v2",
	"Standard_A4_v2", "Standard_A8_v2", "Standard_D1_v2", "Standard_D2_v2", "Standard_D3_v2",
	"Standard_D4_v2", "Standard_D5_v2", "Standard_D2_v3", "Standard_D4_v3", "Standard_D8_v3",
	"Standard_D16_v3", "Standard_F1", "Standard_F2", "Standard_F4", "Standard_F8", "Standard_F16",
	"Standard_F2s_v2", "Standard_F4s_v2", "Standard_F8s_v2", "Standard_F16s_v2", "Standard_D2as_v4",
	"Standard_D4as_v4", "Standard_D8as_v4", "Standard_D16as_v4", "Standard_D2a_v4", "Standard_D4a_v4",
	"Standard_D8a_v4", "Standard_D16a_v4", "Standard_E2a_v4", "Standard_E4a_v4", "Standard_E8a_v4",
	"Standard_E16a_v4", "Standard_E2as_v4", "Standard_E4as_v4", "Standard_E8as_v4",
	"Standard_E16as_v4", "Standard_D2s_v3", "Standard_D4s_v3", "Standard_D8s_v3", "Standard_D16s_v3",
	"Standard_DS1_v2", "Standard_DS2_v2", "Standard_DS3_v2", "Standard_DS4_v2", "Standard_DS5_v2",
	"Standard_NC4as_T4_v3", "Standard_D2d_v4", "Standard_D4d_v4", "Standard_D8d_v4",
	"Standard_D16d_v4", "Standard_D2ds_v4", "Standard_D4ds_v4", "Standard_D8ds_v4",
	"Standard_D16ds_v4", "Standard_HB120_16rs_v3", "Standard_HB120_32rs_v3", "Standard_HB120_64rs_v3",
	"Standard_HB120_96rs_v3", "Standard_HB120rs_v3",
)

func (v AzureVMSize) String() string { return azureVMSizeNames.String(v) }
func (v AzureVMSize) IsValid() bool { return azureVMSizeNames.IsValid(v) }
func (v AzureVMSize) MarshalJSON() ([]byte, error) { return azureVMSizeNames.MarshalJSON(v) }

func (v *AzureVMSize) UnmarshalJSON(data []byte) error { return azureVMSizeNames.UnmarshalJSON(data, v) }

func ParseAzureVMSize(s string) (AzureVMSize, bool) { return azureVMSizeNames.Parse(s) }

type CancellationReason int32

const (
	CancellationReasonRequested CancellationReason = iota + 1
	CancellationReasonInternal
	CancellationReasonTimeout
)

var cancellationReasonNames = jsonutil.NewEnumNames[CancellationReason]("Requested", "Internal", "Timeout")

func (v CancellationReason) String() string { return cancellationReasonNames.String(v) }
func (v CancellationReason) IsValid() bool { return cancellationReasonNames.IsValid(v) }
func (v CancellationReason) MarshalJSON() ([]byte, error) { return cancellationReasonNames.MarshalJSON(v) }

func (v *CancellationReason) UnmarshalJSON(data []byte) error { return cancellationReasonNames.UnmarshalJSON(data, v) }

func ParseCancellationReason(s string) (CancellationReason, bool) { return cancellationReasonNames.Parse(s) }

type ContainerFlavor int32

const (
	ContainerFlavorManagedWindowsServerCore ContainerFlavor = iota + 1
	ContainerFlavorCustomLinux
	ContainerFlavorManagedWindowsServerCorePreview
	ContainerFlavorInvalid
)

var containerFlavorNames = jsonutil.NewEnumNames[ContainerFlavor](
	"ManagedWindowsServerCore", "CustomLinux", "ManagedWindowsServerCorePreview", "Invalid",
)

func (v ContainerFlavor) String() string { return containerFlavorNames.String(v) }
func (v ContainerFlavor) IsValid() bool { return containerFlavorNames.IsValid(v) }
func (v ContainerFlavor) MarshalJSON() ([]byte, error) { return containerFlavorNames.MarshalJSON(v) }

func (v *ContainerFlavor) UnmarshalJSON(data []byte) error { return containerFlavorNames.UnmarshalJSON(data, v) }

func ParseContainerFlavor(s string) (ContainerFlavor, bool) { return containerFlavorNames.Parse(s) }

type OsPlatform int32

const (
	OsPlatformWindows OsPlatform = iota + 1
	OsPlatformLinux
)

var osPlatformNames = jsonutil.NewEnumNames[OsPlatform]("Windows", "Linux")

func (v OsPlatform) String() string { return osPlatformNames.String(v) }
func (v OsPlatform) IsValid() bool { return osPlatformNames.IsValid(v) }
func (v OsPlatform) MarshalJSON() ([]byte, error) { return osPlatformNames.MarshalJSON(v) }

func (v *OsPlatform) UnmarshalJSON(data []byte) error { return osPlatformNames.UnmarshalJSON(data, v) }

func ParseOsPlatform(s string) (OsPlatform, bool) { return osPlatformNames.Parse(s) }

type ProtocolType int32

const (
	ProtocolTypeTCP ProtocolType = iota + 1
	ProtocolTypeUDP
)

var protocolTypeNames = jsonutil.NewEnumNames[ProtocolType]("TCP", "UDP")

func (v ProtocolType) String() string { return protocolTypeNames.String(v) }
func (v ProtocolType) IsValid() bool { return protocolTypeNames.IsValid(v) }
func (v ProtocolType) MarshalJSON() ([]byte, error) { return protocolTypeNames.MarshalJSON(v) }

func (v *ProtocolType) UnmarshalJSON(data []byte) error { return protocolTypeNames.UnmarshalJSON(data, v) }

func ParseProtocolType(s string) (ProtocolType, bool) { return protocolTypeNames.Parse(s) }

type ServerType int32

const (
	ServerTypeContainer ServerType = iota + 1
	ServerTypeProcess
)

var serverTypeNames = jsonutil.NewEnumNames[ServerType]("Container", "Process")

func (v ServerType) String() string { return serverTypeNames.String(v) }
func (v ServerType) IsValid() bool { return serverTypeNames.IsValid(v) }
func (v ServerType) MarshalJSON() ([]byte, error) { return serverTypeNames.MarshalJSON(v) }

func (v *ServerType) UnmarshalJSON(data []byte) error { return serverTypeNames.UnmarshalJSON(data, v) }

func ParseServerType(s string) (ServerType, bool) { return serverTypeNames.Parse(s) }

type TitleMultiplayerServerEnabledStatus int32

const (
	TitleMultiplayerServerEnabledStatusInitializing TitleMultiplayerServerEnabledStatus = iota + 1
	TitleMultiplayerServerEnabledStatusEnabled
	TitleMultiplayerServerEnabledStatusDisabled
)

var titleMultiplayerServerEnabledStatusNames = jsonutil.NewEnumNames[TitleMultiplayerServerEnabledStatus](
	"Initializing", "Enabled", "Disabled",
)

func (v TitleMultiplayerServerEnabledStatus) String() string { return titleMultiplayerServerEnabledStatusNames.String(v) }
func (v TitleMultiplayerServerEnabledStatus) IsValid() bool { return titleMultiplayerServerEnabledStatusNames.IsValid(v) }
func (v TitleMultiplayerServerEnabledStatus) MarshalJSON() ([]byte, error) { return titleMultiplayerServerEnabledStatusNames.MarshalJSON(v) }

func (v *TitleMultiplayerServerEnabledStatus) UnmarshalJSON(data []byte) error { return titleMultiplayerServerEnabledStatusNames.UnmarshalJSON(data, v) }

func ParseTitleMultiplayerServerEnabledStatus(s string) (TitleMultiplayerServerEnabledStatus, bool) { return titleMultiplayerServerEnabledStatusNames.Parse(s) }
