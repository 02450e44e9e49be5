// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package modelregistry

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playfab-models-go/pkg/clientmodels"
	"playfab-models-go/pkg/multiplayermodels"
)

func TestServices(t *testing.T) {
	services := Services()

	assert.Equal(t, []string{
		"authentication", "client", "cloudscript", "data", "experimentation",
		"groups", "insights", "matchmaker", "multiplayer", "profiles",
	}, services)
}

func TestNew(t *testing.T) {
	testCases := []struct {
		name    string
		service string
		record  string
		want    any
	}{
		{name: "exact", service: "client", record: "LoginResult", want: &clientmodels.LoginResult{}},
		{name: "case folded", service: "Client", record: "getplayfabidsfromsteamidsrequest", want: &clientmodels.GetPlayFabIDsFromSteamIDsRequest{}},
		{name: "other service", service: "multiplayer", record: "BuildRegionParams", want: &multiplayermodels.BuildRegionParams{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := New(tc.service, tc.record)

			require.NoError(t, err)
			assert.IsType(t, tc.want, got)
		})
	}
}

func TestNewReturnsFreshValues(t *testing.T) {
	first, err := New("client", "GetTitleDataRequest")
	require.NoError(t, err)
	second, err := New("client", "GetTitleDataRequest")
	require.NoError(t, err)

	first.(*clientmodels.GetTitleDataRequest).OverrideLabel = "beta"

	assert.Equal(t, "", second.(*clientmodels.GetTitleDataRequest).OverrideLabel)
}

func TestUnknownNames(t *testing.T) {
	_, errService := New("admin", "LoginResult")
	_, errType := New("client", "NoSuchRequest")
	_, errEnum := Enum("client", "NoSuchEnum")

	assert.True(t, errors.Is(errService, ErrUnknownService))
	assert.True(t, errors.Is(errType, ErrUnknownType))
	assert.True(t, errors.Is(errEnum, ErrUnknownEnum))
}

func TestEnum(t *testing.T) {
	table, err := Enum("client", "TradeStatus")

	require.NoError(t, err)
	assert.Equal(t, []string{"Invalid", "Opening", "Open", "Accepting", "Accepted", "Filled", "Cancelled"}, table.Names())
}

func TestTypesAndFind(t *testing.T) {
	types, err := Types("matchmaker")
	require.NoError(t, err)

	assert.Len(t, types, 12)
	assert.Equal(t, "AuthUserRequest", types[0])
	assert.Equal(t, []string{"client", "matchmaker"}, Default().Find("StartGameRequest"))
}
