// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package jsonutil

import (
	"encoding/json"
	"time"
)

// TimeLayout is the timestamp format written on the wire.
const TimeLayout = "2006-01-02T15:04:05.000Z"

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02",
}

// Time is a timestamp field. It is always written in UTC with millisecond precision.
type Time struct {
	time.Time
}

func NewTime(t time.Time) Time {
	return Time{Time: t.UTC()}
}

// ParseTime accepts the ISO-8601 variants the service emits.
func ParseTime(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed.UTC(), true
		}
	}

	return time.Time{}, false
}

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Time.UTC().Format(TimeLayout) + `"`), nil
}

// UnmarshalJSON leaves t untouched when data is not a recognised timestamp string.
func (t *Time) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	if parsed, ok := ParseTime(s); ok {
		t.Time = parsed
	}

	return nil
}
