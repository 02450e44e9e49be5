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

type testRecord struct {
	Name    string               `json:"Name,omitempty"`
	Count   int32                `json:"Count"`
	Limit   *uint32              `json:"Limit,omitempty"`
	Ratio   float64              `json:"Ratio"`
	Enabled *bool                `json:"Enabled,omitempty"`
	Color   testColor            `json:"Color,omitempty"`
	Boxed   *testColor           `json:"Boxed,omitempty"`
	Colors  []testColor          `json:"Colors,omitempty"`
	ByKey   map[string]testColor `json:"ByKey,omitempty"`
	Tags    []string             `json:"Tags,omitempty"`
	Labels  map[string]string    `json:"Labels,omitempty"`
	When    Time                 `json:"When"`
	Expires *Time                `json:"Expires,omitempty"`
	Dates   []Time               `json:"Dates,omitempty"`
	Child   *testRecord          `json:"Child,omitempty"`
	Payload any                  `json:"Payload,omitempty"`
}

func TestDecodeKeepsFieldsWithMismatchedValues(t *testing.T) {
	// Arrange
	rec := testRecord{Name: "keep", Count: 7, Ratio: 1.5, Color: testColorBlue}
	input := `{
		"Name": 12,
		"Count": "seven",
		"Limit": -1,
		"Ratio": {"x": 1},
		"Enabled": "yes",
		"Color": "Purple",
		"Child": "not an object",
		"Tags": ["a", 2, "b"],
		"Labels": {"x": "1", "y": false}
	}`

	// Act
	err := Decode([]byte(input), &rec)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "keep", rec.Name)
	assert.Equal(t, int32(7), rec.Count)
	assert.Nil(t, rec.Limit)
	assert.Equal(t, 1.5, rec.Ratio)
	assert.Nil(t, rec.Enabled)
	assert.Equal(t, testColorBlue, rec.Color)
	assert.Nil(t, rec.Child)
	assert.Equal(t, []string{"a", "b"}, rec.Tags)
	assert.Equal(t, map[string]string{"x": "1"}, rec.Labels)
}

func TestDecodeDropsUnresolvedEnums(t *testing.T) {
	var rec testRecord
	input := `{"Boxed":"Purple","Colors":["Red","Purple","Blue"],"ByKey":{"a":"Green","b":"Mauve"}}`

	err := Decode([]byte(input), &rec)

	require.NoError(t, err)
	assert.Nil(t, rec.Boxed)
	assert.Equal(t, []testColor{testColorRed, testColorBlue}, rec.Colors)
	assert.Equal(t, map[string]testColor{"a": testColorGreen}, rec.ByKey)
}

func TestDecodeNestedAndOpaque(t *testing.T) {
	var rec testRecord
	input := `{
		"Boxed": "Green",
		"Enabled": false,
		"Expires": "2024-03-05T10:20:30.500Z",
		"Child": {"Name": "inner", "Count": 3, "Boxed": "Nope"},
		"Payload": {"nested": [1, "two", null]},
		"Unknown": {"ignored": true}
	}`

	err := Decode([]byte(input), &rec)

	require.NoError(t, err)
	require.NotNil(t, rec.Boxed)
	assert.Equal(t, testColorGreen, *rec.Boxed)
	require.NotNil(t, rec.Enabled)
	assert.False(t, *rec.Enabled)
	require.NotNil(t, rec.Expires)
	assert.True(t, time.Date(2024, 3, 5, 10, 20, 30, 500000000, time.UTC).Equal(rec.Expires.Time))
	require.NotNil(t, rec.Child)
	assert.Equal(t, "inner", rec.Child.Name)
	assert.Equal(t, int32(3), rec.Child.Count)
	assert.Nil(t, rec.Child.Boxed)
	assert.Equal(t, map[string]any{"nested": []any{json.Number("1"), "two", nil}}, rec.Payload)
}

func TestDecodeIgnoresDocumentOfWrongShape(t *testing.T) {
	rec := testRecord{Name: "keep"}

	err := Decode([]byte(`["not", "an", "object"]`), &rec)

	assert.NoError(t, err)
	assert.Equal(t, "keep", rec.Name)
}

func TestDecodeDropsMalformedTimestamps(t *testing.T) {
	when := NewTime(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	for _, value := range []string{`"yesterday"`, `5`, `{"at":1}`} {
		t.Run(value, func(t *testing.T) {
			rec := testRecord{When: when}
			input := `{"When":` + value + `,"Expires":` + value + `,"Dates":["2024-01-02T00:00:00Z",` + value + `]}`

			err := Decode([]byte(input), &rec)

			require.NoError(t, err)
			assert.Equal(t, when, rec.When)
			assert.Nil(t, rec.Expires)
			require.Len(t, rec.Dates, 1)
			assert.True(t, when.Equal(rec.Dates[0].Time))
		})
	}
}

func TestDecodeMatchesKeysExactly(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  testRecord
	}{
		{name: "other case ignored", input: `{"name":"x","count":3,"tags":["a"]}`, want: testRecord{}},
		{name: "canonical key wins", input: `{"Tags":["a"],"tags":["b"],"TAGS":["c"]}`, want: testRecord{Tags: []string{"a"}}},
		{name: "nested", input: `{"Child":{"Name":"in","NAME":"out"}}`, want: testRecord{Child: &testRecord{Name: "in"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec testRecord

			err := Decode([]byte(tt.input), &rec)

			require.NoError(t, err)
			assert.Equal(t, tt.want, rec)
		})
	}
}

func TestDecodeKeepsLargeIntegersInOpaqueValues(t *testing.T) {
	input := `{"Payload":{"id":9007199254740993,"ids":[18446744073709551615],"ratio":0.1}}`
	var rec testRecord

	err := Decode([]byte(input), &rec)
	require.NoError(t, err)
	data, err := Encode(rec)

	require.NoError(t, err)
	assert.Equal(t, json.Number("9007199254740993"), rec.Payload.(map[string]any)["id"])
	assert.Contains(t, string(data), `"Payload":{"id":9007199254740993,"ids":[18446744073709551615],"ratio":0.1}`)
}

func TestDecodeErrors(t *testing.T) {
	var rec testRecord

	assert.Error(t, Decode([]byte(`{"Name":`), &rec))
	assert.Error(t, Decode([]byte(`{}`), rec))
	assert.Error(t, Decode([]byte(`{}`), (*testRecord)(nil)))
}

func TestEncodeOmitsUnsetOptionals(t *testing.T) {
	rec := testRecord{
		Count: 2,
		When:  NewTime(time.Date(2024, 1, 2, 3, 4, 5, 6000000, time.UTC)),
		Boxed: Ptr(testColorRed),
	}

	data, err := Encode(rec)

	require.NoError(t, err)
	assert.JSONEq(t, `{"Count":2,"Ratio":0,"Boxed":"Red","When":"2024-01-02T03:04:05.006Z"}`, string(data))
}

func TestEncodeValueThenDecodeValue(t *testing.T) {
	// Arrange
	rec := testRecord{
		Name:   "root",
		Count:  4,
		Colors: []testColor{testColorGreen},
		Labels: map[string]string{"k": "v"},
		When:   NewTime(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
		Child:  &testRecord{Name: "leaf", When: NewTime(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC))},
	}

	// Act
	tree, err := EncodeValue(rec)
	require.NoError(t, err)
	var back testRecord
	err = DecodeValue(tree, &back)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "root", tree["Name"])
	assert.Equal(t, rec.Name, back.Name)
	assert.Equal(t, rec.Count, back.Count)
	assert.Equal(t, rec.Colors, back.Colors)
	assert.Equal(t, rec.Labels, back.Labels)
	assert.True(t, rec.When.Equal(back.When.Time))
	require.NotNil(t, back.Child)
	assert.Equal(t, "leaf", back.Child.Name)
}

func TestCloneIsDeep(t *testing.T) {
	// prepare
	src := testRecord{
		Name:   "src",
		Boxed:  Ptr(testColorRed),
		Tags:   []string{"a"},
		Labels: map[string]string{"k": "v"},
		Child:  &testRecord{Name: "child"},
	}

	// act
	dst, err := Clone(src)
	require.NoError(t, err)
	*dst.Boxed = testColorBlue
	dst.Tags[0] = "changed"
	dst.Labels["k"] = "changed"
	dst.Child.Name = "changed"

	// assert
	assert.Equal(t, "src", dst.Name)
	assert.Equal(t, testColorRed, *src.Boxed)
	assert.Equal(t, "a", src.Tags[0])
	assert.Equal(t, "v", src.Labels["k"])
	assert.Equal(t, "child", src.Child.Name)
}
