package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomPairHashOrderIndependent(t *testing.T) {
	assert.Equal(t, RoomPairHash("911234567890", "919876543210"), RoomPairHash("919876543210", "911234567890"))
}

func TestRoomPairHashDeterministic(t *testing.T) {
	assert.Equal(t, RoomPairHash("A", "B"), RoomPairHash("A", "B"))
}

func TestRoomPairHashDistinctPairsDiffer(t *testing.T) {
	assert.NotEqual(t, RoomPairHash("A", "B"), RoomPairHash("A", "C"))
	// The separator keeps concatenation ambiguity out of the key space.
	assert.NotEqual(t, RoomPairHash("AB", "C"), RoomPairHash("A", "BC"))
}
