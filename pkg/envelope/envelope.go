// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package envelope reads the wrapper PlayFab puts around every API response.
package envelope

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"playfab-models-go/pkg/jsonutil"
)

var (
	ErrMalformed = errors.New("malformed response body")
	ErrNoData    = errors.New("response has no data member")
	ErrNoMatch   = errors.New("path matches nothing")
)

// Response is a successful API response carrying a result record.
type Response[T any] struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   *T     `json:"data,omitempty"`
}

// Error is the body of a failed API call.
type Error struct {
	Code              int                 `json:"code"`
	Status            string              `json:"status"`
	Name              string              `json:"error"`
	ErrorCode         int                 `json:"errorCode"`
	ErrorMessage      string              `json:"errorMessage"`
	ErrorDetails      map[string][]string `json:"errorDetails,omitempty"`
	RetryAfterSeconds *uint32             `json:"retryAfterSeconds,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("playfab %s (%d): %s", e.Name, e.ErrorCode, e.ErrorMessage)
}

// IsError reports whether body is the envelope of a failed call.
func IsError(body []byte) bool {
	res := gjson.ParseBytes(body)

	return res.Get("errorCode").Exists() || res.Get("code").Int() >= 400
}

// Decode reads a response body. A failed call comes back as an *Error; the
// data member, when present, is decoded with jsonutil.Decode.
func Decode[T any](body []byte) (*Response[T], error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrMalformed
	}
	if IsError(body) {
		apiErr := &Error{}
		if err := jsonutil.Decode(body, apiErr); err != nil {
			return nil, errors.Wrap(err, "decode error body")
		}

		return nil, apiErr
	}

	res := gjson.ParseBytes(body)
	resp := &Response[T]{
		Code:   int(res.Get("code").Int()),
		Status: res.Get("status").String(),
	}
	if data := res.Get("data"); data.Exists() && data.Type != gjson.Null {
		resp.Data = new(T)
		if err := jsonutil.Decode([]byte(data.Raw), resp.Data); err != nil {
			return nil, errors.Wrap(err, "decode data")
		}
	}

	return resp, nil
}

// Data returns the raw data member of a response body.
func Data(body []byte) ([]byte, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrMalformed
	}
	data := gjson.GetBytes(body, "data")
	if !data.Exists() {
		return nil, ErrNoData
	}

	return []byte(data.Raw), nil
}

// Get returns the sub-document of body selected by a gjson path.
func Get(body []byte, path string) ([]byte, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrMalformed
	}
	value := gjson.GetBytes(body, path)
	if !value.Exists() {
		return nil, errors.Wrap(ErrNoMatch, path)
	}

	return []byte(value.Raw), nil
}
