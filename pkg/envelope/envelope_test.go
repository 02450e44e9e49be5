// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package envelope

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playfab-models-go/pkg/clientmodels"
)

func TestDecodeSuccess(t *testing.T) {
	// Arrange
	body := []byte(`{"code":200,"status":"OK","data":{"Data":{"motd":"hello"},"Unknown":1}}`)

	// Act
	resp, err := Decode[clientmodels.GetTitleDataResult](body)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Code)
	assert.Equal(t, "OK", resp.Status)
	require.NotNil(t, resp.Data)
	assert.Equal(t, map[string]string{"motd": "hello"}, resp.Data.Data)
}

func TestDecodeWithoutData(t *testing.T) {
	resp, err := Decode[clientmodels.EmptyResponse]([]byte(`{"code":200,"status":"OK","data":null}`))

	require.NoError(t, err)
	assert.Nil(t, resp.Data)
}

func TestDecodeErrorBody(t *testing.T) {
	// Arrange
	body := []byte(`{
		"code": 400,
		"status": "BadRequest",
		"error": "InvalidParams",
		"errorCode": 1000,
		"errorMessage": "Invalid input parameters",
		"errorDetails": {"TitleId": ["The TitleId field is required."]}
	}`)

	// Act
	resp, err := Decode[clientmodels.LoginResult](body)

	// Assert
	assert.Nil(t, resp)
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 1000, apiErr.ErrorCode)
	assert.Equal(t, "InvalidParams", apiErr.Name)
	assert.Equal(t, []string{"The TitleId field is required."}, apiErr.ErrorDetails["TitleId"])
	assert.Equal(t, "playfab InvalidParams (1000): Invalid input parameters", apiErr.Error())
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode[clientmodels.LoginResult]([]byte(`{"code":200,`))

	assert.ErrorIs(t, err, ErrMalformed)
}

func TestData(t *testing.T) {
	data, err := Data([]byte(`{"code":200,"status":"OK","data":{"PlayFabId":"AB12"}}`))
	require.NoError(t, err)
	_, errMissing := Data([]byte(`{"code":200}`))

	assert.JSONEq(t, `{"PlayFabId":"AB12"}`, string(data))
	assert.ErrorIs(t, errMissing, ErrNoData)
}

func TestGet(t *testing.T) {
	body := []byte(`{"data":{"Catalog":[{"ItemId":"a"},{"ItemId":"b"}]}}`)

	second, err := Get(body, "data.Catalog.1")
	require.NoError(t, err)
	_, errMissing := Get(body, "data.Store")

	assert.JSONEq(t, `{"ItemId":"b"}`, string(second))
	assert.True(t, errors.Is(errMissing, ErrNoMatch))
}
