package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayload(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected Payload
	}{
		{name: "action only", data: "cancel", expected: Payload{Action: "cancel"}},
		{name: "two params", data: "place_add?40.7128|-74.006", expected: Payload{Action: "place_add", Params: []string{"40.7128", "-74.006"}}},
		{name: "three params", data: "place_delete?1|2|3", expected: Payload{Action: "place_delete", Params: []string{"1", "2", "3"}}},
		{name: "empty params", data: "place_add?", expected: Payload{Action: "place_add"}},
		{name: "empty", data: "", expected: Payload{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePayload(tt.data))
		})
	}
}

func TestPayload_PlaceRefRoundTrip(t *testing.T) {
	data := RenamePayload(40.7128, -74.0060, 42)
	assert.Equal(t, "place_rename?40.7128|-74.006|42", data)

	ref, err := ParsePayload(data).placeRef(true)
	require.NoError(t, err)
	assert.Equal(t, placeRef{Lat: 40.7128, Lon: -74.006, PlaceID: 42}, ref)

	ref, err = ParsePayload(AddPayload(0.1, 179.99999)).placeRef(false)
	require.NoError(t, err)
	assert.Equal(t, 0.1, ref.Lat)
	assert.Equal(t, 179.99999, ref.Lon)

	assert.LessOrEqual(t, len(DeletePayload(-89.123456789, -179.123456789, 9223372036854775807)), 64)
}

func TestPayload_PlaceRefInvalid(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		withID bool
	}{
		{name: "missing lon", data: "place_add?1", withID: false},
		{name: "extra param", data: "place_add?1|2|3", withID: false},
		{name: "bad lat", data: "place_add?north|2", withID: false},
		{name: "bad lon", data: "place_add?1|east", withID: false},
		{name: "missing id", data: "place_rename?1|2", withID: true},
		{name: "bad id", data: "place_rename?1|2|x", withID: true},
		{name: "zero id", data: "place_delete?1|2|0", withID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePayload(tt.data).placeRef(tt.withID)
			assert.Error(t, err)
		})
	}
}
