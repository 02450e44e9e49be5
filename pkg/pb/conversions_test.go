// Copyright (c) 2023 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"

	"playfab-models-go/pkg/clientmodels"
	"playfab-models-go/pkg/jsonutil"
)

func TestPayloadToValue(t *testing.T) {
	// prepare
	payload := map[string]any{"granted": []any{"gem"}, "count": float64(2)}
	record := clientmodels.Variable{Name: "difficulty", Value: "hard"}

	// act
	fromTree, err := PayloadToValue(payload)
	require.NoError(t, err)
	fromRecord, err := PayloadToValue(record)
	require.NoError(t, err)

	// assert
	assert.Equal(t, payload, ValueToPayload(fromTree))
	assert.Equal(t, map[string]any{"Name": "difficulty", "Value": "hard"}, ValueToPayload(fromRecord))
	assert.Nil(t, ValueToPayload(nil))
}

func TestTimeConversion(t *testing.T) {
	ts := jsonutil.NewTime(time.Date(2024, 7, 1, 12, 0, 0, 125000000, time.UTC))

	back := TimeFromProto(TimeToProto(ts))

	assert.True(t, ts.Equal(back.Time))
	assert.True(t, TimeFromProto(nil).IsZero())
}

func TestStringMapToStruct(t *testing.T) {
	s, err := StringMapToStruct(map[string]string{"env": "prod"})

	require.NoError(t, err)
	assert.Equal(t, "prod", s.Fields["env"].GetStringValue())
}

func TestRecordsRoundTrip(t *testing.T) {
	// Arrange
	entries := []clientmodels.PlayerLeaderboardEntry{
		{DisplayName: "ann", PlayFabID: "A", Position: 0, StatValue: 90},
		{DisplayName: "bob", PlayFabID: "B", Position: 1, StatValue: 75},
	}

	// Act
	list := RecordsToList(entries)
	list.Values = append(list.Values, structpb.NewStringValue("noise"))
	back := ListToRecords[clientmodels.PlayerLeaderboardEntry](list)

	// Assert
	assert.Len(t, list.Values, 3)
	assert.Equal(t, entries, back)
}

func TestStructToRecordIsPermissive(t *testing.T) {
	s, err := structpb.NewStruct(map[string]any{"Position": "first", "PlayFabId": "C"})
	require.NoError(t, err)
	entry := clientmodels.PlayerLeaderboardEntry{Position: 4}

	err = StructToRecord(s, &entry)

	require.NoError(t, err)
	assert.Equal(t, int32(4), entry.Position)
	assert.Equal(t, "C", entry.PlayFabID)
}
