package utils

import (
	"golang.org/x/crypto/cryptobyte"

	"github.com/zeebo/sha256step/internal/consts"
)

// BytesToWords reads the block as sixteen big-endian words.
func BytesToWords(bytes *[consts.BlockLen]uint8, words *[consts.InputWords]uint32) {
	s := cryptobyte.String(bytes[:])
	for i := range words {
		// cannot fail: the block holds exactly InputWords words
		s.ReadUint32(&words[i])
	}
}

// WordsToBytes appends the big-endian encoding of words to out.
func WordsToBytes(words []uint32, out []byte) []byte {
	b := cryptobyte.NewBuilder(out)
	for _, w := range words {
		b.AddUint32(w)
	}
	return b.BytesOrPanic()
}

// AppendLength appends v as a big-endian 64-bit integer.
func AppendLength(out []byte, v uint64) []byte {
	b := cryptobyte.NewBuilder(out)
	b.AddUint64(v)
	return b.BytesOrPanic()
}
