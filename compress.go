package sha256step

import (
	"github.com/zeebo/sha256step/internal/consts"
)

// State is the eight word running hash value.
type State [consts.StateWords]uint32

// Round is a snapshot of the working variables taken right after one round
// of the compression function.
type Round struct {
	T  int
	W  uint32
	K  uint32
	T1 uint32
	T2 uint32

	A, B, C, D, E, F, G, H uint32
}

// Vars returns the working variables a through h in order.
func (r Round) Vars() [8]uint32 {
	return [8]uint32{r.A, r.B, r.C, r.D, r.E, r.F, r.G, r.H}
}

// Compress runs the 64 rounds over w starting from state and returns the new
// state. The first record rounds are captured, clamped to [0, 64].
func Compress(state State, w *Schedule, record int) (State, []Round) {
	record = ClampRounds(record)

	var rounds []Round
	if record > 0 {
		rounds = make([]Round, 0, record)
	}

	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]

	for t := 0; t < consts.Rounds; t++ {
		t1 := h + BigSigma1(e) + Choose(e, f, g) + consts.K[t] + w[t]
		t2 := BigSigma0(a) + Majority(a, b, c)

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2

		if t < record {
			rounds = append(rounds, Round{
				T: t, W: w[t], K: consts.K[t], T1: t1, T2: t2,
				A: a, B: b, C: c, D: d, E: e, F: f, G: g, H: h,
			})
		}
	}

	return State{
		state[0] + a, state[1] + b, state[2] + c, state[3] + d,
		state[4] + e, state[5] + f, state[6] + g, state[7] + h,
	}, rounds
}

// ClampRounds limits n to the number of rounds that exist.
func ClampRounds(n int) int {
	if n < 0 {
		return 0
	}
	if n > consts.Rounds {
		return consts.Rounds
	}
	return n
}
