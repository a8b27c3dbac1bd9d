package report

import (
	"bufio"
	"context"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Pacing controls how fast a walkthrough is printed. It has no effect on
// what is printed.
type Pacing struct {
	Delay         time.Duration
	ScheduleDelay time.Duration
	RoundDelay    time.Duration

	// Step pauses for Enter after each section.
	Step bool
}

// NewPacing returns a Pacing whose schedule and round delays fall back to
// delay when they are nil.
func NewPacing(delay time.Duration, schedule, round *time.Duration, step bool) Pacing {
	p := Pacing{Delay: delay, ScheduleDelay: delay, RoundDelay: delay, Step: step}
	if schedule != nil {
		p.ScheduleDelay = *schedule
	}
	if round != nil {
		p.RoundDelay = *round
	}
	return p
}

// ParseDelay parses a delay given either as a Go duration ("350ms") or as a
// bare number of seconds ("0.35"). An empty string reports ok == false.
func ParseDelay(s string) (d time.Duration, ok bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(secs) || math.IsInf(secs, 0) {
			return 0, false, errors.Errorf("invalid delay %q", s)
		}
		d = time.Duration(secs * float64(time.Second))
	} else if d, err = time.ParseDuration(s); err != nil {
		return 0, false, errors.Errorf("invalid delay %q", s)
	}
	if d < 0 {
		return 0, false, errors.Errorf("negative delay %q", s)
	}
	return d, true, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// lineReader reads whole lines in the background so a pending read does not
// keep a cancelled walkthrough from returning. The goroutine exits once ctx is
// done and it is not blocked in a read.
type lineReader struct {
	lines chan struct{}
	done  chan struct{}
}

func newLineReader(ctx context.Context, r io.Reader) *lineReader {
	lr := &lineReader{
		lines: make(chan struct{}),
		done:  make(chan struct{}),
	}
	go func() {
		defer close(lr.done)
		defer close(lr.lines)
		br := bufio.NewReader(r)
		for {
			if _, err := br.ReadString('\n'); err != nil {
				return
			}
			select {
			case lr.lines <- struct{}{}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return lr
}

// wait blocks until a line has been read, the input is exhausted, or ctx is
// done.
func (lr *lineReader) wait(ctx context.Context) error {
	select {
	case <-lr.lines:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
