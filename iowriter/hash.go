package iowriter

import (
	"encoding/hex"

	"lukechampine.com/blake3"
)

// ContentHash returns a hex-encoded blake3 digest of data, used to decide
// whether a candidate rewrite of an output file would actually change its
// contents.
func ContentHash(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
