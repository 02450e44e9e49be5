// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package authenticationmodels

import "playfab-models-go/pkg/jsonutil"

type IdentifiedDeviceType int32

const (
	IdentifiedDeviceTypeUnknown IdentifiedDeviceType = iota + 1
	IdentifiedDeviceTypeXboxOne
	IdentifiedDeviceTypeScarlett
)

var identifiedDeviceTypeNames = jsonutil.NewEnumNames[IdentifiedDeviceType]("Unknown", "XboxOne", "Scarlett")

func (v IdentifiedDeviceType) String() string { return identifiedDeviceTypeNames.String(v) }
func (v IdentifiedDeviceType) IsValid() bool { return identifiedDeviceTypeNames.IsValid(v) }
func (v IdentifiedDeviceType) MarshalJSON() ([]byte, error) { return identifiedDeviceTypeNames.MarshalJSON(v) }

func (v *IdentifiedDeviceType) UnmarshalJSON(data []byte) error { return identifiedDeviceTypeNames.UnmarshalJSON(data, v) }

func ParseIdentifiedDeviceType(s string) (IdentifiedDeviceType, bool) { return identifiedDeviceTypeNames.Parse(s) }

type LoginIdentityProvider int32

const (
	LoginIdentityProviderUnknown LoginIdentityProvider = iota + 1
	LoginIdentityProviderPlayFab
	LoginIdentityProviderCustom
	LoginIdentityProviderGameCenter
	LoginIdentityProviderGooglePlay
	LoginIdentityProviderSteam
	LoginIdentityProviderXBoxLive
	LoginIdentityProviderPSN
	LoginIdentityProviderKongregate
	LoginIdentityProviderFacebook
	LoginIdentityProviderIOSDevice
	LoginIdentityProviderAndroidDevice
	LoginIdentityProviderTwitch
	LoginIdentityProviderWindowsHello
	LoginIdentityProviderGameServer
	LoginIdentityProviderCustomServer
	LoginIdentityProviderNintendoSwitch
	LoginIdentityProviderFacebookInstantGames
	LoginIdentityProviderOpenIDConnect
	LoginIdentityProviderApple
	LoginIdentityProviderNintendoSwitchAccount
)

var loginIdentityProviderNames = jsonutil.NewEnumNames[LoginIdentityProvider](
	"Unknown", "PlayFab", "Custom", "GameCenter", "GooglePlay", "Steam", "XBoxLive", "PSN",
	"Kongregate", "Facebook", "IOSDevice", "AndroidDevice", "Twitch", "WindowsHello", "GameServer",
	"CustomServer", "NintendoSwitch", "FacebookInstantGames", "OpenIdConnect", "Apple",
	"NintendoSwitchAccount",
)

func (v LoginIdentityProvider) String() string { return loginIdentityProviderNames.String(v) }
func (v LoginIdentityProvider) IsValid() bool { return loginIdentityProviderNames.IsValid(v) }
func (v LoginIdentityProvider) MarshalJSON() ([]byte, error) { return loginIdentityProviderNames.MarshalJSON(v) }

func (v *LoginIdentityProvider) UnmarshalJSON(data []byte) error { return loginIdentityProviderNames.UnmarshalJSON(data, v) }

func ParseLoginIdentityProvider(s string) (LoginIdentityProvider, bool) { return loginIdentityProviderNames.Parse(s) }
