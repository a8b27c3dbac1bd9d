// Package sha256step computes SHA-256 digests while keeping every
// intermediate value around: the padded message, each block and its message
// schedule, and the working variables of the first rounds of the first block.
//
// It is meant for teaching and inspection. It is neither fast nor hardened
// against side channels; use crypto/sha256 for anything else.
package sha256step

import (
	"encoding/hex"

	"github.com/pkg/errors"

	"github.com/zeebo/sha256step/internal/consts"
	"github.com/zeebo/sha256step/internal/utils"
)

const (
	// Size is the length of a digest in bytes.
	Size = consts.DigestLen

	// BlockSize is the length of a block in bytes.
	BlockSize = consts.BlockLen

	// Rounds is the number of compression rounds per block.
	Rounds = consts.Rounds
)

// Block is one 64 byte slice of the padded message with its schedule.
type Block struct {
	Index    int
	Bytes    [consts.BlockLen]byte
	Schedule Schedule
}

// Hex returns the block bytes as lowercase hex.
func (b Block) Hex() string { return hex.EncodeToString(b.Bytes[:]) }

// Result holds everything computed while hashing a message.
type Result struct {
	Message []byte
	Padded  []byte
	Blocks  []Block

	// Rounds are the recorded rounds of block 0. Later blocks are never
	// recorded.
	Rounds []Round

	State  State
	Digest string
}

// PaddedHex returns the padded message as lowercase hex.
func (r *Result) PaddedHex() string { return hex.EncodeToString(r.Padded) }

// BlockCount returns the number of blocks the padded message split into.
func (r *Result) BlockCount() int { return len(r.Blocks) }

// InitialState returns the hash state every digest starts from.
func InitialState() State { return State(consts.IV) }

// Sum returns the big-endian serialization of the state.
func (s State) Sum() (out [Size]byte) {
	copy(out[:], utils.WordsToBytes(s[:], make([]byte, 0, Size)))
	return out
}

// Hex returns the serialized state as lowercase hex.
func (s State) Hex() string {
	sum := s.Sum()
	return hex.EncodeToString(sum[:])
}

// Trace hashes message and returns the digest together with all of the
// intermediate values. roundsToRecord rounds of the first block are recorded;
// it is clamped to [0, 64].
func Trace(message []byte, roundsToRecord int) (*Result, error) {
	padded, err := Pad(message)
	if err != nil {
		return nil, errors.WithMessage(err, "pad")
	}

	raw, err := Split(padded)
	if err != nil {
		return nil, errors.WithMessage(err, "split")
	}

	res := &Result{
		Message: message,
		Padded:  padded,
		Blocks:  make([]Block, len(raw)),
	}

	state := InitialState()
	for i := range raw {
		blk := &res.Blocks[i]
		blk.Index = i
		blk.Bytes = raw[i]
		blk.Schedule = Expand(&raw[i])

		record := 0
		if i == 0 {
			record = roundsToRecord
		}

		var rounds []Round
		state, rounds = Compress(state, &blk.Schedule, record)
		if i == 0 {
			res.Rounds = rounds
		}
	}

	res.State = state
	res.Digest = state.Hex()
	return res, nil
}

// Sum256 returns the digest of message.
func Sum256(message []byte) ([Size]byte, error) {
	res, err := Trace(message, 0)
	if err != nil {
		return [Size]byte{}, err
	}
	return res.State.Sum(), nil
}

// Hex returns the digest of message as lowercase hex.
func Hex(message []byte) (string, error) {
	res, err := Trace(message, 0)
	if err != nil {
		return "", err
	}
	return res.Digest, nil
}
