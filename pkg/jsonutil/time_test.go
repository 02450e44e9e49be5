// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package jsonutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeMarshalUsesMillisecondUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	ts := NewTime(time.Date(2024, 3, 5, 12, 20, 30, 123456789, loc))

	data, err := json.Marshal(ts)

	require.NoError(t, err)
	assert.Equal(t, `"2024-03-05T10:20:30.123Z"`, string(data))
}

func TestTimeUnmarshalLayouts(t *testing.T) {
	want := time.Date(2024, 3, 5, 10, 20, 30, 0, time.UTC)
	testCases := []string{
		`"2024-03-05T10:20:30Z"`,
		`"2024-03-05T10:20:30.000Z"`,
		`"2024-03-05T12:20:30+02:00"`,
		`"2024-03-05T10:20:30"`,
		`"2024-03-05 10:20:30Z"`,
	}
	for _, input := range testCases {
		var ts Time
		err := json.Unmarshal([]byte(input), &ts)

		assert.NoError(t, err, input)
		assert.True(t, want.Equal(ts.Time), input)
		assert.Equal(t, time.UTC, ts.Location(), input)
	}
}

func TestTimeUnmarshalLeavesGarbageUntouched(t *testing.T) {
	before := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	for _, input := range []string{`"yesterday"`, `12345`, `null`, `true`, `""`} {
		ts := NewTime(before)

		err := json.Unmarshal([]byte(input), &ts)

		assert.NoError(t, err, input)
		assert.True(t, before.Equal(ts.Time), input)
	}
}

func TestParseTimeDateOnly(t *testing.T) {
	parsed, ok := ParseTime("2023-11-30")

	assert.True(t, ok)
	assert.True(t, time.Date(2023, 11, 30, 0, 0, 0, 0, time.UTC).Equal(parsed))
}
