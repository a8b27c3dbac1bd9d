// Package ref is the trusted SHA-256 implementation that digests computed
// step by step are checked against.
package ref

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/zeebo/sha256step/internal/consts"
)

// Sum256 returns the digest of message as computed by crypto/sha256.
func Sum256(message []byte) [sha256.Size]byte {
	return sha256.Sum256(message)
}

// Hex returns the reference digest of message as lowercase hex.
func Hex(message []byte) string {
	sum := Sum256(message)
	return hex.EncodeToString(sum[:])
}

// Verification is the outcome of comparing a computed digest with the
// reference.
type Verification struct {
	Computed  string
	Reference string
	Match     bool

	// CPUFeatures lists the detected extensions the reference may use. Empty
	// when none were detected.
	CPUFeatures string
}

// Verify hashes message with the reference implementation and compares the
// result with digest.
func Verify(message []byte, digest string) Verification {
	want := Hex(message)
	return Verification{
		Computed:    digest,
		Reference:   want,
		Match:       digest == want,
		CPUFeatures: consts.CPUFeatures,
	}
}
