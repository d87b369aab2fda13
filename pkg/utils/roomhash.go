package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// RoomPairHash derives the lookup key for a two-party LEDGER room. The pair
// is ordered before hashing so both participants resolve to the same room.
func RoomPairHash(a, b string) string {
	if b < a {
		a, b = b, a
	}

	sum := sha256.Sum256([]byte(a + "|" + b))
	return hex.EncodeToString(sum[:])
}
