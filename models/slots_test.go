package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotSetUnmarshalMixedTypes(t *testing.T) {
	var slots SlotSet
	err := json.Unmarshal([]byte(`{"Location":"Chicago","CheckInDate":null,"Nights":"4","RoomType":null}`), &slots)
	require.NoError(t, err)

	require.NotNil(t, slots.Location)
	assert.Equal(t, "Chicago", *slots.Location)
	assert.Nil(t, slots.CheckInDate)
	require.NotNil(t, slots.Nights)
	assert.Equal(t, 4, slots.Nights.Int())
	assert.Nil(t, slots.RoomType)

	// Numbers are accepted as well as numeric strings.
	err = json.Unmarshal([]byte(`{"Nights":7}`), &slots)
	require.NoError(t, err)
	assert.Equal(t, 7, slots.Nights.Int())

	err = json.Unmarshal([]byte(`{"Nights":"four"}`), &slots)
	assert.Error(t, err)
}

func TestSlotSetClearAndComplete(t *testing.T) {
	location := "Boston"
	checkIn := "2030-11-08"
	roomType := "king"
	nights := SlotInt(3)
	slots := SlotSet{
		Location:    &location,
		CheckInDate: &checkIn,
		Nights:      &nights,
		RoomType:    &roomType,
	}
	assert.True(t, slots.Complete())

	slots.Clear(SlotRoomType)
	assert.Nil(t, slots.RoomType)
	assert.False(t, slots.Complete())
}

func TestSlotIntMarshalsAsNumber(t *testing.T) {
	nights := SlotInt(4)
	data, err := json.Marshal(SlotSet{Nights: &nights})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Nights":4`)
}
