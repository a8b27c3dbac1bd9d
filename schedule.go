package sha256step

import (
	"github.com/pkg/errors"

	"github.com/zeebo/sha256step/internal/consts"
	"github.com/zeebo/sha256step/internal/utils"
)

// Schedule is the expanded message schedule of one block.
type Schedule [consts.Rounds]uint32

// Split cuts a padded message into consecutive blocks. It refuses input that
// is empty or not a whole number of blocks rather than dropping a tail.
func Split(padded []byte) ([][consts.BlockLen]byte, error) {
	if len(padded) == 0 || len(padded)%consts.BlockLen != 0 {
		return nil, errors.Wrapf(ErrInvariantViolation,
			"padded length %d is not a positive multiple of %d", len(padded), consts.BlockLen)
	}

	blocks := make([][consts.BlockLen]byte, len(padded)/consts.BlockLen)
	for i := range blocks {
		copy(blocks[i][:], padded[i*consts.BlockLen:])
	}
	return blocks, nil
}

// Expand builds the 64 word message schedule for a block. The first sixteen
// words are the block itself, read big-endian; every later word mixes four
// earlier ones, so they are filled strictly in order.
func Expand(block *[consts.BlockLen]byte) (w Schedule) {
	var m [consts.InputWords]uint32
	utils.BytesToWords(block, &m)
	copy(w[:], m[:])

	for t := consts.InputWords; t < consts.Rounds; t++ {
		w[t] = SmallSigma1(w[t-2]) + w[t-7] + SmallSigma0(w[t-15]) + w[t-16]
	}
	return w
}
