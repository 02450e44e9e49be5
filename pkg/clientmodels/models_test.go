// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package clientmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playfab-models-go/pkg/jsonutil"
)

func TestGetTitleDataRequestEncoding(t *testing.T) {
	req := GetTitleDataRequest{Keys: []string{"a", "b"}, OverrideLabel: "beta"}

	data, err := jsonutil.Encode(req)

	require.NoError(t, err)
	assert.JSONEq(t, `{"Keys":["a","b"],"OverrideLabel":"beta"}`, string(data))
}

func TestBoxedGameInstanceState(t *testing.T) {
	type gameStatus struct {
		Status *GameInstanceState `json:"Status,omitempty"`
	}
	testCases := []struct {
		name  string
		input string
		want  *GameInstanceState
	}{
		{name: "known", input: `{"Status":"Open"}`, want: jsonutil.Ptr(GameInstanceStateOpen)},
		{name: "unknown", input: `{"Status":"Bogus"}`, want: nil},
		{name: "number", input: `{"Status":1}`, want: nil},
		{name: "missing", input: `{}`, want: nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got gameStatus

			err := jsonutil.Decode([]byte(tc.input), &got)

			assert.NoError(t, err)
			assert.Equal(t, tc.want, got.Status)
		})
	}
}

func TestCatalogItemWithoutBundle(t *testing.T) {
	// Arrange
	item := CatalogItem{
		ItemID:                "sword",
		CatalogVersion:        "main",
		IsStackable:           true,
		VirtualCurrencyPrices: map[string]uint32{"GO": 25},
	}

	// Act
	tree, err := jsonutil.EncodeValue(item)
	require.NoError(t, err)
	var back CatalogItem
	err = jsonutil.DecodeValue(tree, &back)

	// Assert
	require.NoError(t, err)
	assert.NotContains(t, tree, "Bundle")
	assert.Nil(t, back.Bundle)
	assert.Equal(t, item, back)
}

func TestUserDataRecordRoundTrip(t *testing.T) {
	rec := UserDataRecord{
		LastUpdated: jsonutil.NewTime(time.Date(2024, 2, 29, 23, 59, 58, 250000000, time.UTC)),
		Permission:  jsonutil.Ptr(UserDataPermissionPublic),
		Value:       `{"level":3}`,
	}

	data, err := jsonutil.Encode(rec)
	require.NoError(t, err)
	var back UserDataRecord
	require.NoError(t, jsonutil.Decode(data, &back))

	assert.JSONEq(t, `{"LastUpdated":"2024-02-29T23:59:58.250Z","Permission":"Public","Value":"{\"level\":3}"}`, string(data))
	assert.True(t, rec.LastUpdated.Equal(back.LastUpdated.Time))
	assert.Equal(t, rec.Permission, back.Permission)
	assert.Equal(t, rec.Value, back.Value)
}

func TestLoginResultPartialInput(t *testing.T) {
	var res LoginResult

	err := jsonutil.Decode([]byte(`{"PlayFabId":"7A1B","SessionTicket":"ticket","Extra":[1,2]}`), &res)

	require.NoError(t, err)
	assert.Equal(t, "7A1B", res.PlayFabID)
	assert.Equal(t, "ticket", res.SessionTicket)
	assert.False(t, res.NewlyCreated)
	assert.Nil(t, res.EntityToken)
	assert.Nil(t, res.LastLoginTime)
	assert.Nil(t, res.InfoResultPayload)
}

func TestLoginResultMalformedLastLoginTime(t *testing.T) {
	for _, value := range []string{`"yesterday"`, `5`} {
		t.Run(value, func(t *testing.T) {
			var res LoginResult

			err := jsonutil.Decode([]byte(`{"PlayFabId":"7A1B","LastLoginTime":`+value+`}`), &res)
			require.NoError(t, err)
			data, err := jsonutil.Encode(res)

			require.NoError(t, err)
			assert.Equal(t, "7A1B", res.PlayFabID)
			assert.Nil(t, res.LastLoginTime)
			assert.NotContains(t, string(data), "LastLoginTime")
		})
	}
}

func TestUnknownEnumLeavesSentinel(t *testing.T) {
	// prepare
	req := ReportAdActivityRequest{Activity: AdActivityStart, PlacementID: "p1"}
	trade := TradeInfo{Status: jsonutil.Ptr(TradeStatusOpen)}

	// act
	errReq := jsonutil.Decode([]byte(`{"Activity":"Dance","PlacementId":"p2"}`), &req)
	errTrade := jsonutil.Decode([]byte(`{"Status":"Haggling"}`), &trade)

	// assert
	assert.NoError(t, errReq)
	assert.NoError(t, errTrade)
	assert.Equal(t, AdActivityStart, req.Activity)
	assert.Equal(t, "p2", req.PlacementID)
	require.NotNil(t, trade.Status)
	assert.Equal(t, TradeStatusOpen, *trade.Status)
}

func TestRenamedFieldsUseServiceKeys(t *testing.T) {
	var info GameInfo
	err := jsonutil.Decode([]byte(`{"Region":"EUWest","GameServerStateEnum":"Closed","RunTime":90}`), &info)
	require.NoError(t, err)

	loc := LocationModel{CountryCode: jsonutil.Ptr(CountryCodeNZ), ContinentCode: jsonutil.Ptr(ContinentCodeOC)}
	data, errEnc := jsonutil.Encode(loc)
	require.NoError(t, errEnc)

	require.NotNil(t, info.Region)
	assert.Equal(t, RegionEUWest, *info.Region)
	require.NotNil(t, info.GameServerStateEnum)
	assert.Equal(t, GameInstanceStateClosed, *info.GameServerStateEnum)
	assert.Equal(t, uint32(90), info.RunTime)
	assert.JSONEq(t, `{"CountryCode":"NZ","ContinentCode":"OC"}`, string(data))
}

func TestRequiredFieldsAlwaysEncoded(t *testing.T) {
	data, err := jsonutil.Encode(StartGameRequest{GameMode: "ctf", Region: RegionJapan})
	require.NoError(t, err)
	empty, errEmpty := jsonutil.Encode(ConsumeItemRequest{})
	require.NoError(t, errEmpty)

	assert.JSONEq(t, `{"GameMode":"ctf","Region":"Japan"}`, string(data))
	assert.JSONEq(t, `{"ConsumeCount":0}`, string(empty))
}

func TestCurrencyNamesRoundTrip(t *testing.T) {
	names := currencyNames.Names()
	require.NotEmpty(t, names)

	for _, name := range names {
		v, ok := ParseCurrency(name)
		require.True(t, ok, name)
		assert.Equal(t, name, v.String())
	}
	_, ok := ParseCurrency("usd")
	assert.False(t, ok)
	assert.Equal(t, "USD", CurrencyUSD.String())
}

func TestCloneCatalogItem(t *testing.T) {
	src := CatalogItem{
		ItemID: "crate",
		Bundle: &CatalogItemBundleInfo{BundledItems: []string{"gem"}},
		Tags:   []string{"loot"},
	}

	dst, err := jsonutil.Clone(src)
	require.NoError(t, err)
	dst.Bundle.BundledItems[0] = "rock"
	dst.Tags[0] = "junk"

	assert.Equal(t, "crate", dst.ItemID)
	assert.Equal(t, []string{"gem"}, src.Bundle.BundledItems)
	assert.Equal(t, []string{"loot"}, src.Tags)
	assert.Equal(t, []string{"junk"}, dst.Tags)
}

func TestIndex(t *testing.T) {
	idx := Index()

	factory, ok := idx.Types["GetTitleDataRequest"]
	require.True(t, ok)
	_, isReq := factory().(*GetTitleDataRequest)

	assert.Equal(t, "client", idx.Service)
	assert.True(t, isReq)
	assert.True(t, idx.Enums["Currency"].Contains("EUR"))
	assert.True(t, idx.Enums["GameInstanceState"].Contains("Open"))
	assert.Contains(t, idx.Types, "Container_Dictionary_String_String")
}
