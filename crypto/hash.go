package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digests are the ASCII bytes of the lowercase hexadecimal SHA256, not the
// raw sum. Leaf digests hash one data block; node digests hash the
// concatenation of two child digests, which keeps the two domains from
// colliding by framing alone. Changing this encoding silently breaks digest
// comparison with other implementations.

// Hash hashes one data block into a leaf digest
func Hash(value []byte) []byte {
	sum := sha256.Sum256(value)
	return hexDigest(sum[:])
}

// HashNodes hashes two child digests into one node digest
func HashNodes(left []byte, right []byte) []byte {
	h := sha256.New()
	h.Write(left)
	h.Write(right)
	return hexDigest(h.Sum(nil))
}

func hexDigest(sum []byte) []byte {
	digest := make([]byte, hex.EncodedLen(len(sum)))
	hex.Encode(digest, sum)
	return digest
}
