package report

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/zeebo/sha256step"
	"github.com/zeebo/sha256step/ref"
)

const (
	DefaultScheduleLimit = 16
	continuePrompt       = "Press [Enter] to continue..."
)

// Walkthrough prints the stages of a digest computation one at a time.
type Walkthrough struct {
	Reporter Reporter
	Pacing   Pacing

	// Input supplies the Enter presses when Pacing.Step is set.
	Input io.Reader

	// ScheduleLimit is how many schedule words of block 0 are shown. It is
	// clamped to [0, 64].
	ScheduleLimit int
	HideSchedule  bool

	lines *lineReader
}

// Run prints res and the verification v. It only returns early when ctx is
// cancelled.
func (w *Walkthrough) Run(ctx context.Context, res *sha256step.Result, v ref.Verification) error {
	r := w.Reporter

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	w.lines = nil

	if err := w.header(ctx, "SHA-256 Step-by-Step"); err != nil {
		return err
	}
	if err := w.kv(ctx, "Input", [][2]string{
		{"Text", strconv.Quote(string(res.Message))},
		{"Bytes (hex)", fmt.Sprintf("%x", res.Message)},
		{"Bit length", fmt.Sprintf("%d bits", len(res.Message)*8)},
	}, true); err != nil {
		return err
	}

	if err := w.header(ctx, "Preprocessing"); err != nil {
		return err
	}
	if err := w.kv(ctx, "Padding", [][2]string{
		{"Padded length (bits)", strconv.Itoa(len(res.Padded) * 8)},
		{"Padded (hex)", res.PaddedHex()},
	}, true); err != nil {
		return err
	}
	if err := w.kv(ctx, "Blocks", [][2]string{
		{"Count", strconv.Itoa(res.BlockCount())},
		{"Block size", fmt.Sprintf("%d bits (%d bytes)", sha256step.BlockSize*8, sha256step.BlockSize)},
	}, true); err != nil {
		return err
	}

	if res.BlockCount() > 0 {
		b0 := res.Blocks[0]
		if err := w.header(ctx, "Block 0"); err != nil {
			return err
		}
		if err := w.kv(ctx, "Block 0", [][2]string{{"Bytes (hex)", b0.Hex()}}, true); err != nil {
			return err
		}
		if !w.HideSchedule {
			if err := w.schedule(ctx, &b0.Schedule); err != nil {
				return err
			}
		}
		if err := w.rounds(ctx, res.Rounds); err != nil {
			return err
		}
	}

	if err := w.header(ctx, "Result"); err != nil {
		return err
	}
	if err := w.kv(ctx, "Digest", [][2]string{
		{"Computed (step by step)", v.Computed},
		{referenceLabel(v.CPUFeatures), v.Reference},
		{"Verification", r.Verdict(v.Match)},
	}, false); err != nil {
		return err
	}

	r.Footer()
	return nil
}

func (w *Walkthrough) header(ctx context.Context, title string) error {
	w.Reporter.Header(title)
	return sleep(ctx, w.Pacing.Delay)
}

func (w *Walkthrough) kv(ctx context.Context, title string, kvs [][2]string, pause bool) error {
	if title != "" {
		w.Reporter.Section(title)
	}
	for _, kv := range kvs {
		w.Reporter.KV(kv[0], kv[1])
		if err := sleep(ctx, w.Pacing.Delay); err != nil {
			return err
		}
	}
	if !pause {
		return nil
	}
	return w.pause(ctx)
}

func (w *Walkthrough) schedule(ctx context.Context, s *sha256step.Schedule) error {
	limit := sha256step.ClampRounds(w.ScheduleLimit)

	w.Reporter.Section(fmt.Sprintf("Message Schedule W[0..%d]", limit-1))
	for i := 0; i < limit; i++ {
		w.Reporter.Word(i, s[i])
		if err := sleep(ctx, w.Pacing.ScheduleDelay); err != nil {
			return err
		}
	}
	return w.pause(ctx)
}

func (w *Walkthrough) rounds(ctx context.Context, rounds []sha256step.Round) error {
	if len(rounds) == 0 {
		return nil
	}

	w.Reporter.Section(fmt.Sprintf("First %d Rounds", len(rounds)))
	for _, rd := range rounds {
		w.Reporter.Line(FormatRound(rd))
		if err := sleep(ctx, w.Pacing.RoundDelay); err != nil {
			return err
		}
	}
	return w.pause(ctx)
}

func (w *Walkthrough) pause(ctx context.Context) error {
	if !w.Pacing.Step || w.Input == nil {
		return ctx.Err()
	}
	if w.lines == nil {
		w.lines = newLineReader(ctx, w.Input)
	}
	w.Reporter.Prompt(continuePrompt)
	return w.lines.wait(ctx)
}

func referenceLabel(features string) string {
	if features == "" {
		return "crypto/sha256"
	}
	return "crypto/sha256 (cpu: " + features + ")"
}

// FormatRound renders a recorded round on one line.
func FormatRound(r sha256step.Round) string {
	return fmt.Sprintf(
		"t=%02d  W=0x%08x  K=0x%08x  T1=0x%08x  T2=0x%08x  "+
			"a..h=0x%08x,0x%08x,0x%08x,0x%08x,0x%08x,0x%08x,0x%08x,0x%08x",
		r.T, r.W, r.K, r.T1, r.T2,
		r.A, r.B, r.C, r.D, r.E, r.F, r.G, r.H,
	)
}
