// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package cloudscriptmodels

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playfab-models-go/pkg/jsonutil"
)

func TestExecuteFunctionResultOpaqueResult(t *testing.T) {
	input := `{
		"FunctionName": "grantReward",
		"ExecutionTimeMilliseconds": 42,
		"FunctionResult": {"granted": ["gem", "coin"], "count": 2},
		"FunctionResultTooLarge": false
	}`
	var res ExecuteFunctionResult

	err := jsonutil.Decode([]byte(input), &res)

	require.NoError(t, err)
	assert.Equal(t, "grantReward", res.FunctionName)
	assert.Equal(t, int32(42), res.ExecutionTimeMilliseconds)
	assert.Equal(t, map[string]any{"granted": []any{"gem", "coin"}, "count": json.Number("2")}, res.FunctionResult)
	require.NotNil(t, res.FunctionResultTooLarge)
	assert.False(t, *res.FunctionResultTooLarge)
	assert.Nil(t, res.Error)
}

func TestLocationModelDropsUnknownCountry(t *testing.T) {
	var loc LocationModel

	err := jsonutil.Decode([]byte(`{"City":"Oslo","CountryCode":"XX","ContinentCode":"EU","Latitude":"north"}`), &loc)

	require.NoError(t, err)
	assert.Equal(t, "Oslo", loc.City)
	assert.Nil(t, loc.CountryCode)
	require.NotNil(t, loc.ContinentCode)
	assert.Equal(t, ContinentCodeEU, *loc.ContinentCode)
	assert.Nil(t, loc.Latitude)
}
