// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package matchmakermodels

import "playfab-models-go/pkg/jsonutil"

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
