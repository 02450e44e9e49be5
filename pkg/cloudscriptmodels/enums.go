// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package cloudscriptmodels

import "playfab-models-go/pkg/jsonutil"

type CloudScriptRevisionOption int32

const (
	CloudScriptRevisionOptionLive CloudScriptRevisionOption = iota + 1
	CloudScriptRevisionOptionLatest
	CloudScriptRevisionOptionSpecific
)

var cloudScriptRevisionOptionNames = jsonutil.NewEnumNames[CloudScriptRevisionOption](
	"Live", "Latest", "Specific",
)

func (v CloudScriptRevisionOption) String() string { return cloudScriptRevisionOptionNames.String(v) }
func (v CloudScriptRevisionOption) IsValid() bool { return cloudScriptRevisionOptionNames.IsValid(v) }
func (v CloudScriptRevisionOption) MarshalJSON() ([]byte, error) { return cloudScriptRevisionOptionNames.MarshalJSON(v) }

func (v *CloudScriptRevisionOption) UnmarshalJSON(data []byte) error { return cloudScriptRevisionOptionNames.UnmarshalJSON(data, v) }

func ParseCloudScriptRevisionOption(s string) (CloudScriptRevisionOption, bool) { return cloudScriptRevisionOptionNames.Parse(s) }

type ContinentCode int32

const (
	ContinentCodeAF ContinentCode = iota + 1
	ContinentCodeAN
	ContinentCodeAS
	ContinentCodeEU
	ContinentCodeNA
	ContinentCodeOC
	ContinentCodeSA
)

var continentCodeNames = jsonutil.NewEnumNames[ContinentCode]("AF", "AN", "AS", "EU", "NA", "OC", "SA")

func (v ContinentCode) String() string { return continentCodeNames.String(v) }
func (v ContinentCode) IsValid() bool { return continentCodeNames.IsValid(v) }
func (v ContinentCode) MarshalJSON() ([]byte, error) { return continentCodeNames.MarshalJSON(v) }

func (v *ContinentCode) UnmarshalJSON(data []byte) error { return continentCodeNames.UnmarshalJSON(data, v) }

func ParseContinentCode(s string) (ContinentCode, bool) { return continentCodeNames.Parse(s) }

type CountryCode int32

const (
	CountryCodeAF CountryCode = iota + 1
	CountryCodeAX
	CountryCodeAL
	CountryCodeDZ
	CountryCodeAS
	CountryCodeAD
	CountryCodeAO
	CountryCodeAI
	CountryCodeAQ
	CountryCodeAG
	CountryCodeAR
	CountryCodeAM
	CountryCodeAW
	CountryCodeAU
	CountryCodeAT
	CountryCodeAZ
	CountryCodeBS
	CountryCodeBH
	CountryCodeBD
	CountryCodeBB
	CountryCodeBY
	CountryCodeBE
	CountryCodeBZ
	CountryCodeBJ
	CountryCodeBM
	CountryCodeBT
	CountryCodeBO
	CountryCodeBQ
	CountryCodeBA
	CountryCodeBW
	CountryCodeBV
	CountryCodeBR
	CountryCodeIO
	CountryCodeBN
	CountryCodeBG
	CountryCodeBF
	CountryCodeBI
	CountryCodeKH
	CountryCodeCM
	CountryCodeCA
	CountryCodeCV
	CountryCodeKY
	CountryCodeCF
	CountryCodeTD
	CountryCodeCL
	CountryCodeCN
	CountryCodeCX
	CountryCodeCC
	CountryCodeCO
	CountryCodeKM
	CountryCodeCG
	CountryCodeCD
	CountryCodeCK
	CountryCodeCR
	CountryCodeCI
	CountryCodeHR
	CountryCodeCU
	CountryCodeCW
	CountryCodeCY
	CountryCodeCZ
	CountryCodeDK
	CountryCodeDJ
	CountryCodeDM
	CountryCodeDO
	CountryCodeEC
	CountryCodeEG
	CountryCodeSV
	CountryCodeGQ
	CountryCodeER
	CountryCodeEE
	CountryCodeET
	CountryCodeFK
	CountryCodeFO
	CountryCodeFJ
	CountryCodeFI
	CountryCodeFR
	CountryCodeGF
	CountryCodePF
	CountryCodeTF
	CountryCodeGA
	CountryCodeGM
	CountryCodeGE
	CountryCodeDE
	CountryCodeGH
	CountryCodeGI
	CountryCodeGR
	CountryCodeGL
	CountryCodeGD
	CountryCodeGP
	CountryCodeGU
	CountryCodeGT
	CountryCodeGG
	CountryCodeGN
	CountryCodeGW
	CountryCodeGY
	CountryCodeHT
	CountryCodeHM
	CountryCodeVA
	CountryCodeHN
	CountryCodeHK
	CountryCodeHU
	CountryCodeIS
	CountryCodeIN
	CountryCodeID
	CountryCodeIR
	CountryCodeIQ
	CountryCodeIE
	CountryCodeIM
	CountryCodeIL
	CountryCodeIT
	CountryCodeJM
	CountryCodeJP
	CountryCodeJE
	CountryCodeJO
	CountryCodeKZ
	CountryCodeKE
	CountryCodeKI
	CountryCodeKP
	CountryCodeKR
	CountryCodeKW
	CountryCodeKG
	CountryCodeLA
	CountryCodeLV
	CountryCodeLB
	CountryCodeLS
	CountryCodeLR
	CountryCodeLY
	CountryCodeLI
	CountryCodeLT
	CountryCodeLU
	CountryCodeMO
	CountryCodeMK
	CountryCodeMG
	CountryCodeMW
	CountryCodeMY
	CountryCodeMV
	CountryCodeML
	CountryCodeMT
	CountryCodeMH
	CountryCodeMQ
	CountryCodeMR
	CountryCodeMU
	CountryCodeYT
	CountryCodeMX
	CountryCodeFM
	CountryCodeMD
	CountryCodeMC
	CountryCodeMN
	CountryCodeME
	CountryCodeMS
	CountryCodeMA
	CountryCodeMZ
	CountryCodeMM
	CountryCodeNA
	CountryCodeNR
	CountryCodeNP
	CountryCodeNL
	CountryCodeNC
	CountryCodeNZ
	CountryCodeNI
	CountryCodeNE
	CountryCodeNG
	CountryCodeNU
	CountryCodeNF
	CountryCodeMP
	CountryCodeNO
	CountryCodeOM
	CountryCodePK
	CountryCodePW
	CountryCodePS
	CountryCodePA
	CountryCodePG
	CountryCodePY
	CountryCodePE
	CountryCodePH
	CountryCodePN
	CountryCodePL
	CountryCodePT
	CountryCodePR
	CountryCodeQA
	CountryCodeRE
	CountryCodeRO
	CountryCodeRU
	CountryCodeRW
	CountryCodeBL
	CountryCodeSH
	CountryCodeKN
	CountryCodeLC
	CountryCodeMF
	CountryCodePM
	CountryCodeVC
	CountryCodeWS
	CountryCodeSM
	CountryCodeST
	CountryCodeSA
	CountryCodeSN
	CountryCodeRS
	CountryCodeSC
	CountryCodeSL
	CountryCodeSG
	CountryCodeSX
	CountryCodeSK
	CountryCodeSI
	CountryCodeSB
	CountryCodeSO
	CountryCodeZA
	CountryCodeGS
	CountryCodeSS
	CountryCodeES
	CountryCodeLK
	CountryCodeSD
	CountryCodeSR
	CountryCodeSJ
	CountryCodeSZ
	CountryCodeSE
	CountryCodeCH
	CountryCodeSY
	CountryCodeTW
	CountryCodeTJ
	CountryCodeTZ
	CountryCodeTH
	CountryCodeTL
	CountryCodeTG
	CountryCodeTK
	CountryCodeTO
	CountryCodeTT
	CountryCodeTN
	CountryCodeTR
	CountryCodeTM
	CountryCodeTC
	CountryCodeTV
	CountryCodeUG
	CountryCodeUA
	CountryCodeAE
	CountryCodeGB
	CountryCodeUS
	CountryCodeUM
	CountryCodeUY
	CountryCodeUZ
	CountryCodeVU
	CountryCodeVE
	CountryCodeVN
	CountryCodeVG
	CountryCodeVI
	CountryCodeWF
	CountryCodeEH
	CountryCodeYE
	CountryCodeZM
	CountryCodeZW
)

var countryCodeNames = jsonutil.NewEnumNames[CountryCode](
	"AF", "AX", "AL", "DZ", "AS", "AD", "AO", "AI", "AQ", "AG", "AR", "AM", "AW", "AU", "AT", "AZ",
	"BS", "BH", "BD", "BB", "BY", "BE", "BZ", "BJ", "BM", "BT", "BO", "BQ", "BA", "BW", "BV", "BR",
	"IO", "BN", "BG", "BF", "BI", "KH", "CM", "CA", "CV", "KY", "CF", "TD", "CL", "CN", "CX", "CC",
	"CO", "KM", "CG", "CD", "CK", "CR", "CI", "HR", "CU", "CW", "CY", "CZ", "DK", "DJ", "DM", "DO",
	"EC", "EG", "SV", "GQ", "ER", "EE", "ET", "FK", "FO", "FJ", "FI", "FR", "GF", "PF", "TF", "GA",
	"GM", "GE", "DE", "GH", "GI", "GR", "GL", "GD", "GP", "GU", "GT", "GG", "GN", "GW", "GY", "HT",
	"HM", "VA", "HN", "HK", "HU", "IS", "IN", "ID", "IR", "IQ", "IE", "IM", "IL", "IT", "JM", "JP",
	"JE", "JO", "KZ", "KE", "KI", "KP", "KR", "KW", "KG", "LA", "LV", "LB", "LS", "LR", "LY", "LI",
	"LT", "LU", "MO", "MK", "MG", "MW", "MY", "MV", "ML", "MT", "MH", "MQ", "MR", "MU", "YT", "MX",
	"FM", "MD", "MC", "MN", "ME", "MS", "MA", "MZ", "MM", "NA", "NR", "NP", "NL", "NC", "NZ", "NI",
	"NE", "NG", "NU", "NF", "MP", "NO", "OM", "PK", "PW", "PS", "PA", "PG", "PY", "PE", "PH", "PN",
	"PL", "PT", "PR", "QA", "RE", "RO", "RU", "RW", "BL", "SH", "KN", "LC", "MF", "PM", "VC", "WS",
	"SM", "ST", "SA", "SN", "RS", "SC", "SL", "SG", "SX", "SK", "SI", "SB", "SO", "ZA", "GS", "SS",
	"ES", "LK", "SD", "SR", "SJ", "SZ", "SE", "CH", "SY", "TW", "TJ", "TZ", "TH", "TL", "TG", "TK",
	"TO", "TT", "TN", "TR", "TM", "TC", "TV", "UG", "UA", "AE", "GB", "US", "UM", "UY", "UZ", "VU",
	"VE", "VN", "VG", "VI", "WF", "EH", "YE", "ZM", "ZW",
)

func (v CountryCode) String() string { return countryCodeNames.String(v) }
func (v CountryCode) IsValid() bool { return countryCodeNames.IsValid(v) }
func (v CountryCode) MarshalJSON() ([]byte, error) { return countryCodeNames.MarshalJSON(v) }

func (v *CountryCode) UnmarshalJSON(data []byte) error { return countryCodeNames.UnmarshalJSON(data, v) }

func ParseCountryCode(s string) (CountryCode, bool) { return countryCodeNames.Parse(s) }

type EmailVerificationStatus int32

const (
	EmailVerificationStatusUnverified EmailVerificationStatus = iota + 1
	EmailVerificationStatusPending
	EmailVerificationStatusConfirmed
)

var emailVerificationStatusNames = jsonutil.NewEnumNames[EmailVerificationStatus](
	"Unverified", "Pending", "Confirmed",
)

func (v EmailVerificationStatus) String() string { return emailVerificationStatusNames.String(v) }
func (v EmailVerificationStatus) IsValid() bool { return emailVerificationStatusNames.IsValid(v) }
func (v EmailVerificationStatus) MarshalJSON() ([]byte, error) { return emailVerificationStatusNames.MarshalJSON(v) }

func (v *EmailVerificationStatus) UnmarshalJSON(data []byte) error { return emailVerificationStatusNames.UnmarshalJSON(data, v) }

func ParseEmailVerificationStatus(s string) (EmailVerificationStatus, bool) { return emailVerificationStatusNames.Parse(s) }

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

type PushNotificationPlatform int32

const (
	PushNotificationPlatformApplePushNotificationService PushNotificationPlatform = iota + 1
	PushNotificationPlatformGoogleCloudMessaging
)

var pushNotificationPlatformNames = jsonutil.NewEnumNames[PushNotificationPlatform](
	"ApplePushNotificationService", "GoogleCloudMessaging",
)

func (v PushNotificationPlatform) String() string { return pushNotificationPlatformNames.String(v) }
func (v PushNotificationPlatform) IsValid() bool { return pushNotificationPlatformNames.IsValid(v) }
func (v PushNotificationPlatform) MarshalJSON() ([]byte, error) { return pushNotificationPlatformNames.MarshalJSON(v) }

func (v *PushNotificationPlatform) UnmarshalJSON(data []byte) error { return pushNotificationPlatformNames.UnmarshalJSON(data, v) }

func ParsePushNotificationPlatform(s string) (PushNotificationPlatform, bool) { return pushNotificationPlatformNames.Parse(s) }

type SubscriptionProviderStatus int32

const (
	SubscriptionProviderStatusNoError SubscriptionProviderStatus = iota + 1
	SubscriptionProviderStatusCancelled
	SubscriptionProviderStatusUnknownError
	SubscriptionProviderStatusBillingError
	SubscriptionProviderStatusProductUnavailable
	SubscriptionProviderStatusCustomerDidNotAcceptPriceChange
	SubscriptionProviderStatusFreeTrial
	SubscriptionProviderStatusPaymentPending
)

var subscriptionProviderStatusNames = jsonutil.NewEnumNames[SubscriptionProviderStatus](
	"NoError", "Cancelled", "UnknownError", "BillingError", "ProductUnavailable",
	"CustomerDidNotAcceptPriceChange", "FreeTrial", "PaymentPending",
)

func (v SubscriptionProviderStatus) String() string { return subscriptionProviderStatusNames.String(v) }
func (v SubscriptionProviderStatus) IsValid() bool { return subscriptionProviderStatusNames.IsValid(v) }
func (v SubscriptionProviderStatus) MarshalJSON() ([]byte, error) { return subscriptionProviderStatusNames.MarshalJSON(v) }

func (v *SubscriptionProviderStatus) UnmarshalJSON(data []byte) error { return subscriptionProviderStatusNames.UnmarshalJSON(data, v) }

func ParseSubscriptionProviderStatus(s string) (SubscriptionProviderStatus, bool) { return subscriptionProviderStatusNames.Parse(s) }

type TriggerType int32

const (
	TriggerTypeHTTP TriggerType = iota + 1
	TriggerTypeQueue
)

var triggerTypeNames = jsonutil.NewEnumNames[TriggerType]("HTTP", "Queue")

func (v TriggerType) String() string { return triggerTypeNames.String(v) }
func (v TriggerType) IsValid() bool { return triggerTypeNames.IsValid(v) }
func (v TriggerType) MarshalJSON() ([]byte, error) { return triggerTypeNames.MarshalJSON(v) }

func (v *TriggerType) UnmarshalJSON(data []byte) error { return triggerTypeNames.UnmarshalJSON(data, v) }

func ParseTriggerType(s string) (TriggerType, bool) { return triggerTypeNames.Parse(s) }
