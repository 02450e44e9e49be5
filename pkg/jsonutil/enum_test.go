// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package jsonutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testColor int32

const (
	testColorRed testColor = iota + 1
	testColorGreen
	testColorBlue
)

var testColorNames = NewEnumNames[testColor]("Red", "Green", "Blue")

func (v testColor) String() string { return testColorNames.String(v) }
func (v testColor) IsValid() bool { return testColorNames.IsValid(v) }
func (v testColor) MarshalJSON() ([]byte, error) { return testColorNames.MarshalJSON(v) }

func (v *testColor) UnmarshalJSON(data []byte) error { return testColorNames.UnmarshalJSON(data, v) }

func TestEnumNamesRoundTrip(t *testing.T) {
	for _, name := range testColorNames.Names() {
		v, ok := testColorNames.Parse(name)
		require.True(t, ok, name)
		assert.Equal(t, name, v.String())

		data, err := json.Marshal(v)
		require.NoError(t, err)
		assert.Equal(t, `"`+name+`"`, string(data))
	}
}

func TestEnumNamesParse(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  testColor
		ok    bool
	}{
		{name: "exact", input: "Green", want: testColorGreen, ok: true},
		{name: "case differs", input: "green", ok: false},
		{name: "ordinal", input: "2", ok: false},
		{name: "empty", input: "", ok: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := testColorNames.Parse(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEnumUnmarshalLeavesUnknownUntouched(t *testing.T) {
	for _, input := range []string{`"Purple"`, `"red"`, `2`, `null`, `{"a":1}`, `["Red"]`} {
		// Arrange
		v := testColorBlue

		// Act
		err := json.Unmarshal([]byte(input), &v)

		// Assert
		assert.NoError(t, err, input)
		assert.Equal(t, testColorBlue, v, input)
	}
}

func TestEnumUnsetValue(t *testing.T) {
	var v testColor

	data, err := json.Marshal(v)

	assert.NoError(t, err)
	assert.Equal(t, "null", string(data))
	assert.False(t, v.IsValid())
	assert.Equal(t, "", v.String())
	assert.False(t, testColor(4).IsValid())
}

func TestEnumNamesAreCopied(t *testing.T) {
	names := testColorNames.Names()
	names[0] = "Changed"

	assert.Equal(t, "Red", testColorRed.String())
	assert.True(t, testColorNames.Contains("Red"))
	assert.False(t, testColorNames.Contains("Changed"))
}
