package cryptox

import "crypto/sha256"

// MakeVerifier returns the SHA-256 digest of a derived key. The digest proves
// knowledge of the key to the server without disclosing it.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}
