package sha256step

import (
	"github.com/pkg/errors"

	"github.com/zeebo/sha256step/internal/consts"
	"github.com/zeebo/sha256step/internal/utils"
)

// Pad returns msg followed by a single 0x80 byte, enough zeros to bring the
// length to 56 mod 64, and the bit length of msg as a big-endian uint64. The
// result is always a non-empty multiple of the block size.
func Pad(msg []byte) ([]byte, error) {
	n := uint64(len(msg))
	zeros, err := padding(n)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, n+1+uint64(zeros)+consts.LenFieldLen)
	out = append(out, msg...)
	out = append(out, 0x80)
	out = append(out, make([]byte, zeros)...)
	return utils.AppendLength(out, n*8), nil
}

// padding returns how many zero bytes follow the 0x80 marker for a message of
// n bytes.
func padding(n uint64) (int, error) {
	if n > consts.MaxInputLen {
		return 0, errors.Wrapf(ErrInputTooLarge, "%d bytes overflows the length field", n)
	}
	const tail = consts.BlockLen - consts.LenFieldLen
	return int((tail + consts.BlockLen - 1 - n%consts.BlockLen) % consts.BlockLen), nil
}
