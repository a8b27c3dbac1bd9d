// Package report renders a sha256step.Result as a paced, human readable
// walkthrough on a terminal.
package report

import (
	"fmt"
	"io"
	"strings"
)

// Reporter is the set of output primitives a walkthrough is built from.
type Reporter interface {
	// Header starts a major part of the walkthrough.
	Header(title string)
	// Section titles a group of lines inside a part.
	Section(title string)
	// KV prints one labelled value.
	KV(key, value string)
	// Word prints entry i of a message schedule.
	Word(i int, w uint32)
	// Line prints s as is.
	Line(s string)
	// Prompt prints s without a trailing newline.
	Prompt(s string)
	// Verdict describes the outcome of the digest comparison.
	Verdict(match bool) string
	// Footer ends the walkthrough.
	Footer()
}

// Plain writes unstyled text.
type Plain struct {
	out io.Writer
}

// NewPlain returns a Reporter writing plain text to out.
func NewPlain(out io.Writer) *Plain { return &Plain{out: out} }

func (p *Plain) Header(title string) {
	bar := strings.Repeat("=", len(title))
	fmt.Fprintf(p.out, "\n%s\n%s\n%s\n", bar, title, bar)
}

func (p *Plain) Section(title string) { fmt.Fprintf(p.out, "\n%s:\n", title) }

func (p *Plain) KV(key, value string) { fmt.Fprintf(p.out, "  - %s: %s\n", key, value) }

func (p *Plain) Word(i int, w uint32) { fmt.Fprintf(p.out, "  W[%2d] = 0x%08x\n", i, w) }

func (p *Plain) Line(s string) { fmt.Fprintln(p.out, s) }

func (p *Plain) Prompt(s string) { fmt.Fprint(p.out, s) }

func (p *Plain) Verdict(match bool) string {
	if match {
		return "✅ MATCH"
	}
	return "❌ MISMATCH"
}

func (p *Plain) Footer() {}
