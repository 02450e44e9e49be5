// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package multiplayermodels

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playfab-models-go/pkg/jsonutil"
)

func TestAzureVMSizeWireNames(t *testing.T) {
	testCases := map[string]AzureVMSize{
		"Standard_A1":    AzureVMSizeStandardA1,
		"Standard_A1_v2": AzureVMSizeStandardA1V2,
	}
	for wire, want := range testCases {
		got, ok := ParseAzureVMSize(wire)

		assert.True(t, ok, wire)
		assert.Equal(t, want, got)
		assert.Equal(t, wire, want.String())
	}
}

func TestBuildRegionParamsEncoding(t *testing.T) {
	params := BuildRegionParams{
		MaxServers:     10,
		Region:         "EastUs",
		StandbyServers: 2,
		VMSize:         jsonutil.Ptr(AzureVMSizeStandardA1V2),
		DynamicStandbySettings: &DynamicStandbySettings{
			IsEnabled: true,
		},
	}

	data, err := jsonutil.Encode(params)

	require.NoError(t, err)
	assert.JSONEq(t, `{
		"MaxServers": 10,
		"Region": "EastUs",
		"StandbyServers": 2,
		"VmSize": "Standard_A1_v2",
		"DynamicStandbySettings": {"IsEnabled": true}
	}`, string(data))
}

func TestGetMatchmakingTicketResultDecode(t *testing.T) {
	// Arrange
	input := `{
		"TicketId": "t-1",
		"QueueName": "ranked",
		"Created": "2024-05-01T08:00:00.000Z",
		"GiveUpAfterSeconds": "sixty",
		"Creator": {"Id": "A1", "Type": "title_player_account"},
		"Members": [
			{"Entity": {"Id": "A1", "Type": "title_player_account"}, "Attributes": {"DataObject": {"skill": 12}}},
			"garbage"
		]
	}`
	var res GetMatchmakingTicketResult

	// Act
	err := jsonutil.Decode([]byte(input), &res)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "t-1", res.TicketID)
	assert.Equal(t, "ranked", res.QueueName)
	assert.True(t, time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC).Equal(res.Created.Time))
	assert.Equal(t, int32(0), res.GiveUpAfterSeconds)
	assert.Equal(t, EntityKey{ID: "A1", Type: "title_player_account"}, res.Creator)
	require.Len(t, res.Members, 1)
	require.NotNil(t, res.Members[0].Attributes)
	assert.Equal(t, map[string]any{"skill": json.Number("12")}, res.Members[0].Attributes.DataObject)
}

func TestPortProtocolUnknown(t *testing.T) {
	port := Port{Name: "game", Num: 7777, Protocol: ProtocolTypeUDP}

	err := jsonutil.Decode([]byte(`{"Num":7778,"Protocol":"QUIC"}`), &port)

	require.NoError(t, err)
	assert.Equal(t, Port{Name: "game", Num: 7778, Protocol: ProtocolTypeUDP}, port)
}
