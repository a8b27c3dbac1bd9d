package sha256step

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

var vectors = []struct {
	input string
	hash  string
}{
	{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	{"Hello", "185f8db32271fe25f561a6fc938b2e264306ec304eda518007d1764826381969"},
	{"hello", "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
	{"hello!", "ce06092fb948d9ffac7d1a376e404b26b7575bcc11ee05a4615fef4fec3a308b"},
	{"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"},
	{strings.Repeat("a", 64), "ffe054fe7ae0cb6dc65c3af9b61d5209f439851db43d0ba5997337df154668eb"},
	{strings.Repeat("a", 1000), "41edece42d63e8d9bf515a9ba6932e1c20cbc9f5a5d134645adb5db1b9737ea3"},
}

func reference(msg []byte) string {
	sum := sha256.Sum256(msg)
	return hex.EncodeToString(sum[:])
}

func randomMessage(n int) []byte {
	msg := make([]byte, n)
	for i := range msg {
		msg[i] = byte(pcg.Uint32())
	}
	return msg
}

func TestVectors(t *testing.T) {
	for _, tv := range vectors {
		res, err := Trace([]byte(tv.input), 8)
		assert.NoError(t, err)
		assert.Equal(t, tv.hash, res.Digest)
		assert.Equal(t, reference([]byte(tv.input)), res.Digest)

		h, err := Hex([]byte(tv.input))
		assert.NoError(t, err)
		assert.Equal(t, tv.hash, h)

		sum, err := Sum256([]byte(tv.input))
		assert.NoError(t, err)
		assert.Equal(t, tv.hash, hex.EncodeToString(sum[:]))
	}
}

func TestCrossCheck(t *testing.T) {
	for n := 0; n <= 300; n++ {
		msg := randomMessage(n)

		res, err := Trace(msg, 64)
		assert.NoError(t, err)
		assert.Equal(t, reference(msg), res.Digest)
		assert.Equal(t, sha256.Sum256(msg), res.State.Sum())
	}

	for _, n := range []int{1 << 10, 4<<10 + 7, 64 << 10} {
		msg := randomMessage(n)
		h, err := Hex(msg)
		assert.NoError(t, err)
		assert.Equal(t, reference(msg), h)
	}
}

func TestPad(t *testing.T) {
	for n := 0; n <= 300; n++ {
		msg := bytes.Repeat([]byte{0xaa}, n)

		padded, err := Pad(msg)
		assert.NoError(t, err)

		assert.Equal(t, 0, len(padded)%BlockSize)
		assert.That(t, len(padded) >= n+9)
		assert.That(t, len(padded) < n+9+BlockSize)
		assert.Equal(t, hex.EncodeToString(msg), hex.EncodeToString(padded[:n]))
		assert.Equal(t, byte(0x80), padded[n])
		for _, b := range padded[n+1 : len(padded)-8] {
			assert.Equal(t, byte(0), b)
		}
		assert.Equal(t, uint64(n)*8, binary.BigEndian.Uint64(padded[len(padded)-8:]))
		assert.Equal(t, 448, (n*8+8+(len(padded)-n-9)*8)%512)
	}
}

func TestPadBoundaries(t *testing.T) {
	cases := []struct {
		n      int
		blocks int
	}{
		{0, 1}, {55, 1}, {56, 2}, {63, 2}, {64, 2}, {119, 2}, {120, 3},
	}
	for _, c := range cases {
		padded, err := Pad(make([]byte, c.n))
		assert.NoError(t, err)
		assert.Equal(t, c.blocks*BlockSize, len(padded))
	}
}

func TestPadTooLarge(t *testing.T) {
	_, err := padding(1 << 61)
	assert.Error(t, err)
	assert.Equal(t, ErrInputTooLarge, errors.Cause(err))

	zeros, err := padding(1<<61 - 1)
	assert.NoError(t, err)
	assert.Equal(t, 56, zeros)
}

func TestSplit(t *testing.T) {
	padded, err := Pad(randomMessage(200))
	assert.NoError(t, err)

	blocks, err := Split(padded)
	assert.NoError(t, err)
	assert.Equal(t, len(padded)/BlockSize, len(blocks))

	var joined []byte
	for _, b := range blocks {
		joined = append(joined, b[:]...)
	}
	assert.Equal(t, hex.EncodeToString(padded), hex.EncodeToString(joined))
}

func TestSplitMisaligned(t *testing.T) {
	for _, n := range []int{0, 1, 63, 65, 127} {
		_, err := Split(make([]byte, n))
		assert.Error(t, err)
		assert.Equal(t, ErrInvariantViolation, errors.Cause(err))
	}
}

func TestExpand(t *testing.T) {
	padded, err := Pad([]byte("abc"))
	assert.NoError(t, err)
	blocks, err := Split(padded)
	assert.NoError(t, err)

	w := Expand(&blocks[0])
	assert.Equal(t, uint32(0x61626380), w[0])
	assert.Equal(t, uint32(0), w[1])
	assert.Equal(t, uint32(0x18), w[15])
	assert.Equal(t, uint32(0x61626380), w[16])
	assert.Equal(t, uint32(0x000f0000), w[17])
	assert.Equal(t, uint32(0x12b1edeb), w[63])

	for i := 0; i < 10; i++ {
		assert.Equal(t, w, Expand(&blocks[0]))
	}
}

func TestCompressRecords(t *testing.T) {
	padded, err := Pad([]byte("abc"))
	assert.NoError(t, err)
	blocks, err := Split(padded)
	assert.NoError(t, err)
	w := Expand(&blocks[0])

	state, rounds := Compress(InitialState(), &w, 2)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", state.Hex())
	assert.Equal(t, 2, len(rounds))

	assert.Equal(t, Round{
		T: 0, W: 0x61626380, K: 0x428a2f98, T1: 0x54da50e8, T2: 0x08909ae5,
		A: 0x5d6aebcd, B: 0x6a09e667, C: 0xbb67ae85, D: 0x3c6ef372,
		E: 0xfa2a4622, F: 0x510e527f, G: 0x9b05688c, H: 0x1f83d9ab,
	}, rounds[0])
	assert.Equal(t, Round{
		T: 1, W: 0, K: 0x71374491, T1: 0x3c5f8617, T2: 0x1e0b5396,
		A: 0x5a6ad9ad, B: 0x5d6aebcd, C: 0x6a09e667, D: 0xbb67ae85,
		E: 0x78ce7989, F: 0xfa2a4622, G: 0x510e527f, H: 0x9b05688c,
	}, rounds[1])
	assert.Equal(t, [8]uint32{
		0x5a6ad9ad, 0x5d6aebcd, 0x6a09e667, 0xbb67ae85,
		0x78ce7989, 0xfa2a4622, 0x510e527f, 0x9b05688c,
	}, rounds[1].Vars())
}

func TestRoundClamp(t *testing.T) {
	for _, c := range []struct{ in, out int }{
		{-100, 0}, {-1, 0}, {0, 0}, {1, 1}, {8, 8}, {64, 64}, {65, 64}, {1 << 30, 64},
	} {
		t.Run(fmt.Sprint(c.in), func(t *testing.T) {
			res, err := Trace([]byte("hello"), c.in)
			assert.NoError(t, err)
			assert.Equal(t, c.out, len(res.Rounds))
			for i, r := range res.Rounds {
				assert.Equal(t, i, r.T)
				assert.That(t, r.T >= 0 && r.T < Rounds)
			}
			assert.Equal(t, reference([]byte("hello")), res.Digest)
		})
	}
}

func TestMultiBlock(t *testing.T) {
	msg := []byte(strings.Repeat("The quick brown fox jumps over the lazy dog. ", 5))

	res, err := Trace(msg, 8)
	assert.NoError(t, err)
	assert.Equal(t, 4, res.BlockCount())
	assert.Equal(t, reference(msg), res.Digest)
	assert.Equal(t, 8, len(res.Rounds))

	state := InitialState()
	for i, blk := range res.Blocks {
		assert.Equal(t, i, blk.Index)
		assert.Equal(t, hex.EncodeToString(res.Padded[i*BlockSize:(i+1)*BlockSize]), blk.Hex())
		assert.Equal(t, Expand(&blk.Bytes), blk.Schedule)
		state, _ = Compress(state, &blk.Schedule, 0)
	}
	assert.Equal(t, res.State, state)
}

func TestZeroRecords(t *testing.T) {
	for _, tv := range vectors {
		res, err := Trace([]byte(tv.input), 0)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(res.Rounds))
		assert.Equal(t, tv.hash, res.Digest)
	}
}

func TestResult(t *testing.T) {
	msg := []byte("hello")
	res, err := Trace(msg, 3)
	assert.NoError(t, err)

	assert.Equal(t, hex.EncodeToString(msg), hex.EncodeToString(res.Message))
	assert.Equal(t, 1, res.BlockCount())
	assert.Equal(t, 128, len(res.PaddedHex()))
	assert.That(t, strings.HasPrefix(res.PaddedHex(), "68656c6c6f80"))
	assert.That(t, strings.HasSuffix(res.PaddedHex(), "0000000000000028"))
	assert.Equal(t, res.PaddedHex(), res.Blocks[0].Hex())
	assert.Equal(t, 64, len(res.Digest))
	assert.Equal(t, strings.ToLower(res.Digest), res.Digest)
}
