// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package matchmakermodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playfab-models-go/pkg/jsonutil"
)

func TestStartGameRequestRegionKey(t *testing.T) {
	// prepare
	req := StartGameRequest{Build: "1.0.3", GameMode: "duel", Region: RegionSingapore}

	// act
	data, err := jsonutil.Encode(req)
	require.NoError(t, err)
	var back StartGameRequest
	errDecode := jsonutil.Decode(data, &back)

	// assert
	assert.NoError(t, errDecode)
	assert.JSONEq(t, `{"Build":"1.0.3","GameMode":"duel","Region":"Singapore"}`, string(data))
	assert.Equal(t, req, back)
}

func TestIndexListsRecords(t *testing.T) {
	idx := Index()

	assert.Equal(t, "matchmaker", idx.Service)
	assert.Len(t, idx.Types, 12)
	assert.Equal(t, []string{"USCentral", "USEast", "EUWest", "Singapore", "Japan", "Brazil", "Australia"},
		idx.Enums["Region"].Names())
}
