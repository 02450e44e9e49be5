// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package clientmodels

import "playfab-models-go/pkg/jsonutil"

type AdActivity int32

const (
	AdActivityOpened AdActivity = iota + 1
	AdActivityClosed
	AdActivityStart
	AdActivityEnd
)

var adActivityNames = jsonutil.NewEnumNames[AdActivity]("Opened", "Closed", "Start", "End")

func (v AdActivity) String() string { return adActivityNames.String(v) }
func (v AdActivity) IsValid() bool { return adActivityNames.IsValid(v) }
func (v AdActivity) MarshalJSON() ([]byte, error) { return adActivityNames.MarshalJSON(v) }

func (v *AdActivity) UnmarshalJSON(data []byte) error { return adActivityNames.UnmarshalJSON(data, v) }

func ParseAdActivity(s string) (AdActivity, bool) { return adActivityNames.Parse(s) }

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

// Currency is an ISO 4217 currency code.
type Currency int32

const (
	CurrencyAED Currency = iota + 1
	CurrencyAFN
	CurrencyALL
	CurrencyAMD
	CurrencyANG
	CurrencyAOA
	CurrencyARS
	CurrencyAUD
	CurrencyAWG
	CurrencyAZN
	CurrencyBAM
	CurrencyBBD
	CurrencyBDT
	CurrencyBGN
	CurrencyBHD
	CurrencyBIF
	CurrencyBMD
	CurrencyBND
	CurrencyBOB
	CurrencyBRL
	CurrencyBSD
	CurrencyBTN
	CurrencyBWP
	CurrencyBYR
	CurrencyBZD
	CurrencyCAD
	CurrencyCDF
	CurrencyCHF
	CurrencyCLP
	CurrencyCNY
	CurrencyCOP
	CurrencyCRC
	CurrencyCUC
	CurrencyCUP
	CurrencyCVE
	CurrencyCZK
	CurrencyDJF
	CurrencyDKK
	CurrencyDOP
	CurrencyDZD
	CurrencyEGP
	CurrencyERN
	CurrencyETB
	CurrencyEUR
	CurrencyFJD
	CurrencyFKP
	CurrencyGBP
	CurrencyGEL
	CurrencyGGP
	CurrencyGHS
	CurrencyGIP
	CurrencyGMD
	CurrencyGNF
	CurrencyGTQ
	CurrencyGYD
	CurrencyHKD
	CurrencyHNL
	CurrencyHRK
	CurrencyHTG
	CurrencyHUF
	CurrencyIDR
	CurrencyILS
	CurrencyIMP
	CurrencyINR
	CurrencyIQD
	CurrencyIRR
	CurrencyISK
	CurrencyJEP
	CurrencyJMD
	CurrencyJOD
	CurrencyJPY
	CurrencyKES
	CurrencyKGS
	CurrencyKHR
	CurrencyKMF
	CurrencyKPW
	CurrencyKRW
	CurrencyKWD
	CurrencyKYD
	CurrencyKZT
	CurrencyLAK
	CurrencyLBP
	CurrencyLKR
	CurrencyLRD
	CurrencyLSL
	CurrencyLYD
	CurrencyMAD
	CurrencyMDL
	CurrencyMGA
	CurrencyMKD
	CurrencyMMK
	CurrencyMNT
	CurrencyMOP
	CurrencyMRO
	CurrencyMUR
	CurrencyMVR
	CurrencyMWK
	CurrencyMXN
	CurrencyMYR
	CurrencyMZN
	CurrencyNAD
	CurrencyNGN
	CurrencyNIO
	CurrencyNOK
	CurrencyNPR
	CurrencyNZD
	CurrencyOMR
	CurrencyPAB
	CurrencyPEN
	CurrencyPGK
	CurrencyPHP
	CurrencyPKR
	CurrencyPLN
	CurrencyPYG
	CurrencyQAR
	CurrencyRON
	CurrencyRSD
	CurrencyRUB
	CurrencyRWF
	CurrencySAR
	CurrencySBD
	CurrencySCR
	CurrencySDG
	CurrencySEK
	CurrencySGD
	CurrencySHP
	CurrencySLL
	CurrencySOS
	CurrencySPL
	CurrencySRD
	CurrencySTD
	CurrencySVC
	CurrencySYP
	CurrencySZL
	CurrencyTHB
	CurrencyTJS
	CurrencyTMT
	CurrencyTND
	CurrencyTOP
	CurrencyTRY
	CurrencyTTD
	CurrencyTVD
	CurrencyTWD
	CurrencyTZS
	CurrencyUAH
	CurrencyUGX
	CurrencyUSD
	CurrencyUYU
	CurrencyUZS
	CurrencyVEF
	CurrencyVND
	CurrencyVUV
	CurrencyWST
	CurrencyXAF
	CurrencyXCD
	CurrencyXDR
	CurrencyXOF
	CurrencyXPF
	CurrencyYER
	CurrencyZAR
	CurrencyZMW
	CurrencyZWD
)

var currencyNames = jsonutil.NewEnumNames[Currency](
	"AED", "AFN", "ALL", "AMD", "ANG", "AOA", "ARS", "AUD", "AWG", "AZN", "BAM", "BBD", "BDT", "BGN",
	"BHD", "BIF", "BMD", "BND", "BOB", "BRL", "BSD", "BTN", "BWP", "BYR", "BZD", "CAD", "CDF", "CHF",
	"CLP", "CNY", "COP", "CRC", "CUC", "CUP", "CVE", "CZK", "DJF", "DKK", "DOP", "DZD", "EGP", "ERN",
	"ETB", "EUR", "FJD", "FKP", "GBP", "GEL", "GGP", "GHS", "GIP", "GMD", "GNF", "GTQ", "GYD", "HKD",
	"HNL", "HRK", "HTG", "HUF", "IDR", "ILS", "IMP", "INR", "IQD", "IRR", "ISK", "JEP", "JMD", "JOD",
	"JPY", "KES", "KGS", "KHR", "KMF", "KPW", "KRW", "KWD", "KYD", "KZT", "LAK", "LBP", "LKR", "LRD",
	"LSL", "LYD", "MAD", "MDL", "MGA", "MKD", "MMK", "MNT", "MOP", "MRO", "MUR", "MVR", "MWK", "MXN",
	"MYR", "MZN", "NAD", "NGN", "NIO", "NOK", "NPR", "NZD", "OMR", "PAB", "PEN", "PGK", "PHP", "PKR",
	"PLN", "PYG", "QAR", "RON", "RSD", "RUB", "RWF", "SAR", "SBD", "SCR", "SDG", "SEK", "SGD", "SHP",
	"SLL", "SOS", "SPL", "SRD", "STD", "SVC", "SYP", "SZL", "THB", "TJS", "TMT", "TND", "TOP", "TRY",
	"TTD", "TVD", "TWD", "TZS", "UAH", "UGX", "USD", "UYU", "UZS", "VEF", "VND", "VUV", "WST", "XAF",
	"XCD", "XDR", "XOF", "XPF", "YER", "ZAR", "ZMW", "ZWD",
)

func (v Currency) String() string { return currencyNames.String(v) }
func (v Currency) IsValid() bool { return currencyNames.IsValid(v) }
func (v Currency) MarshalJSON() ([]byte, error) { return currencyNames.MarshalJSON(v) }

func (v *Currency) UnmarshalJSON(data []byte) error { return currencyNames.UnmarshalJSON(data, v) }

func ParseCurrency(s string) (Currency, bool) { return currencyNames.Parse(s) }

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

// GameInstanceState tells whether a hosted game instance accepts players.
type GameInstanceState int32

const (
	GameInstanceStateOpen GameInstanceState = iota + 1
	GameInstanceStateClosed
)

var gameInstanceStateNames = jsonutil.NewEnumNames[GameInstanceState]("Open", "Closed")

func (v GameInstanceState) String() string { return gameInstanceStateNames.String(v) }
func (v GameInstanceState) IsValid() bool { return gameInstanceStateNames.IsValid(v) }
func (v GameInstanceState) MarshalJSON() ([]byte, error) { return gameInstanceStateNames.MarshalJSON(v) }

func (v *GameInstanceState) UnmarshalJSON(data []byte) error { return gameInstanceStateNames.UnmarshalJSON(data, v) }

func ParseGameInstanceState(s string) (GameInstanceState, bool) { return gameInstanceStateNames.Parse(s) }

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

type MatchmakeStatus int32

const (
	MatchmakeStatusComplete MatchmakeStatus = iota + 1
	MatchmakeStatusWaiting
	MatchmakeStatusGameNotFound
	MatchmakeStatusNoAvailableSlots
	MatchmakeStatusSessionClosed
)

var matchmakeStatusNames = jsonutil.NewEnumNames[MatchmakeStatus](
	"Complete", "Waiting", "GameNotFound", "NoAvailableSlots", "SessionClosed",
)

func (v MatchmakeStatus) String() string { return matchmakeStatusNames.String(v) }
func (v MatchmakeStatus) IsValid() bool { return matchmakeStatusNames.IsValid(v) }
func (v MatchmakeStatus) MarshalJSON() ([]byte, error) { return matchmakeStatusNames.MarshalJSON(v) }

func (v *MatchmakeStatus) UnmarshalJSON(data []byte) error { return matchmakeStatusNames.UnmarshalJSON(data, v) }

func ParseMatchmakeStatus(s string) (MatchmakeStatus, bool) { return matchmakeStatusNames.Parse(s) }

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

// Region is a legacy game server hosting region.
type Region int32

const (
	RegionUSCentral Region = iota + 1
	RegionUSEast
	RegionEUWest
	RegionSingapore
	RegionJapan
	RegionBrazil
	RegionAustralia
)

var regionNames = jsonutil.NewEnumNames[Region](
	"USCentral", "USEast", "EUWest", "Singapore", "Japan", "Brazil", "Australia",
)

func (v Region) String() string { return regionNames.String(v) }
func (v Region) IsValid() bool { return regionNames.IsValid(v) }
func (v Region) MarshalJSON() ([]byte, error) { return regionNames.MarshalJSON(v) }

func (v *Region) UnmarshalJSON(data []byte) error { return regionNames.UnmarshalJSON(data, v) }

func ParseRegion(s string) (Region, bool) { return regionNames.Parse(s) }

type SourceType int32

const (
	SourceTypeAdmin SourceType = iota + 1
	SourceTypeBackEnd
	SourceTypeGameClient
	SourceTypeGameServer
	SourceTypePartner
	SourceTypeCustom
	SourceTypeAPI
)

var sourceTypeNames = jsonutil.NewEnumNames[SourceType](
	"Admin", "BackEnd", "GameClient", "GameServer", "Partner", "Custom", "API",
)

func (v SourceType) String() string { return sourceTypeNames.String(v) }
func (v SourceType) IsValid() bool { return sourceTypeNames.IsValid(v) }
func (v SourceType) MarshalJSON() ([]byte, error) { return sourceTypeNames.MarshalJSON(v) }

func (v *SourceType) UnmarshalJSON(data []byte) error { return sourceTypeNames.UnmarshalJSON(data, v) }

func ParseSourceType(s string) (SourceType, bool) { return sourceTypeNames.Parse(s) }

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

type TitleActivationStatus int32

const (
	TitleActivationStatusNone TitleActivationStatus = iota + 1
	TitleActivationStatusActivatedTitleKey
	TitleActivationStatusPendingSteam
	TitleActivationStatusActivatedSteam
	TitleActivationStatusRevokedSteam
)

var titleActivationStatusNames = jsonutil.NewEnumNames[TitleActivationStatus](
	"None", "ActivatedTitleKey", "PendingSteam", "ActivatedSteam", "RevokedSteam",
)

func (v TitleActivationStatus) String() string { return titleActivationStatusNames.String(v) }
func (v TitleActivationStatus) IsValid() bool { return titleActivationStatusNames.IsValid(v) }
func (v TitleActivationStatus) MarshalJSON() ([]byte, error) { return titleActivationStatusNames.MarshalJSON(v) }

func (v *TitleActivationStatus) UnmarshalJSON(data []byte) error { return titleActivationStatusNames.UnmarshalJSON(data, v) }

func ParseTitleActivationStatus(s string) (TitleActivationStatus, bool) { return titleActivationStatusNames.Parse(s) }

// TradeStatus is the lifecycle state of a trade between players.
type TradeStatus int32

const (
	TradeStatusInvalid TradeStatus = iota + 1
	TradeStatusOpening
	TradeStatusOpen
	TradeStatusAccepting
	TradeStatusAccepted
	TradeStatusFilled
	TradeStatusCancelled
)

var tradeStatusNames = jsonutil.NewEnumNames[TradeStatus](
	"Invalid", "Opening", "Open", "Accepting", "Accepted", "Filled", "Cancelled",
)

func (v TradeStatus) String() string { return tradeStatusNames.String(v) }
func (v TradeStatus) IsValid() bool { return tradeStatusNames.IsValid(v) }
func (v TradeStatus) MarshalJSON() ([]byte, error) { return tradeStatusNames.MarshalJSON(v) }

func (v *TradeStatus) UnmarshalJSON(data []byte) error { return tradeStatusNames.UnmarshalJSON(data, v) }

func ParseTradeStatus(s string) (TradeStatus, bool) { return tradeStatusNames.Parse(s) }

// TransactionStatus is the state of a purchase going through a payment provider.
type TransactionStatus int32

const (
	TransactionStatusCreateCart TransactionStatus = iota + 1
	TransactionStatusInit
	TransactionStatusApproved
	TransactionStatusSucceeded
	TransactionStatusFailedByProvider
	TransactionStatusDisputePending
	TransactionStatusRefundPending
	TransactionStatusRefunded
	TransactionStatusRefundFailed
	TransactionStatusChargedBack
	TransactionStatusFailedByUber
	TransactionStatusFailedByPlayFab
	TransactionStatusRevoked
	TransactionStatusTradePending
	TransactionStatusTraded
	TransactionStatusUpgraded
	TransactionStatusStackPending
	TransactionStatusRejected
	TransactionStatusExpired
	TransactionStatusCancelled
)

var transactionStatusNames = jsonutil.NewEnumNames[TransactionStatus](
	"CreateCart", "Init", "Approved", "Succeeded", "FailedByProvider", "DisputePending",
	"RefundPending", "Refunded", "RefundFailed", "ChargedBack", "FailedByUber", "FailedByPlayFab",
	"Revoked", "TradePending", "Traded", "Upgraded", "StackPending", "Rejected", "Expired",
	"Cancelled",
)

func (v TransactionStatus) String() string { return transactionStatusNames.String(v) }
func (v TransactionStatus) IsValid() bool { return transactionStatusNames.IsValid(v) }
func (v TransactionStatus) MarshalJSON() ([]byte, error) { return transactionStatusNames.MarshalJSON(v) }

func (v *TransactionStatus) UnmarshalJSON(data []byte) error { return transactionStatusNames.UnmarshalJSON(data, v) }

func ParseTransactionStatus(s string) (TransactionStatus, bool) { return transactionStatusNames.Parse(s) }

type UserDataPermission int32

const (
	UserDataPermissionPrivate UserDataPermission = iota + 1
	UserDataPermissionPublic
)

var userDataPermissionNames = jsonutil.NewEnumNames[UserDataPermission]("Private", "Public")

func (v UserDataPermission) String() string { return userDataPermissionNames.String(v) }
func (v UserDataPermission) IsValid() bool { return userDataPermissionNames.IsValid(v) }
func (v UserDataPermission) MarshalJSON() ([]byte, error) { return userDataPermissionNames.MarshalJSON(v) }

func (v *UserDataPermission) UnmarshalJSON(data []byte) error { return userDataPermissionNames.UnmarshalJSON(data, v) }

func ParseUserDataPermission(s string) (UserDataPermission, bool) { return userDataPermissionNames.Parse(s) }

type UserOrigination int32

const (
	UserOriginationOrganic UserOrigination = iota + 1
	UserOriginationSteam
	UserOriginationGoogle
	UserOriginationAmazon
	UserOriginationFacebook
	UserOriginationKongregate
	UserOriginationGamersFirst
	UserOriginationUnknown
	UserOriginationIOS
	UserOriginationLoadTest
	UserOriginationAndroid
	UserOriginationPSN
	UserOriginationGameCenter
	UserOriginationCustomID
	UserOriginationXboxLive
	UserOriginationParse
	UserOriginationTwitch
	UserOriginationServerCustomID
	UserOriginationNintendoSwitchDeviceID
	UserOriginationFacebookInstantGamesID
	UserOriginationOpenIDConnect
	UserOriginationApple
	UserOriginationNintendoSwitchAccount
)

var userOriginationNames = jsonutil.NewEnumNames[UserOrigination](
	"Organic", "Steam", "Google", "Amazon", "Facebook", "Kongregate", "GamersFirst", "Unknown", "IOS",
	"LoadTest", "Android", "PSN", "GameCenter", "CustomId", "XboxLive", "Parse", "Twitch",
	"ServerCustomId", "NintendoSwitchDeviceId", "FacebookInstantGamesId", "OpenIdConnect", "Apple",
	"NintendoSwitchAccount",
)

func (v UserOrigination) String() string { return userOriginationNames.String(v) }
func (v UserOrigination) IsValid() bool { return userOriginationNames.IsValid(v) }
func (v UserOrigination) MarshalJSON() ([]byte, error) { return userOriginationNames.MarshalJSON(v) }

func (v *UserOrigination) UnmarshalJSON(data []byte) error { return userOriginationNames.UnmarshalJSON(data, v) }

func ParseUserOrigination(s string) (UserOrigination, bool) { return userOriginationNames.Parse(s) }
