package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/morikuni/aec"
)

const defaultRichWidth = 72

// Rich writes ANSI styled text with boxed section titles.
type Rich struct {
	out   io.Writer
	width int
}

// NewRich returns a Reporter writing styled text to out. Rules are drawn
// width cells wide; a non-positive width picks a default.
func NewRich(out io.Writer, width int) *Rich {
	if width <= 0 {
		width = defaultRichWidth
	}
	return &Rich{out: out, width: width}
}

func (r *Rich) Header(title string) {
	fmt.Fprintln(r.out, r.rule(aec.Bold.Apply(title), runewidth.StringWidth(title)))
}

func (r *Rich) rule(label string, labelWidth int) string {
	if labelWidth == 0 {
		return strings.Repeat("─", r.width)
	}
	rest := r.width - labelWidth - 2
	if rest < 2 {
		rest = 2
	}
	left := rest / 2
	return strings.Repeat("─", left) + " " + label + " " + strings.Repeat("─", rest-left)
}

func (r *Rich) Section(title string) {
	bar := strings.Repeat("─", runewidth.StringWidth(title)+2)
	fmt.Fprintf(r.out, "╭%s╮\n│ %s │\n╰%s╯\n", bar, aec.Bold.Apply(title), bar)
}

func (r *Rich) KV(key, value string) {
	fmt.Fprintf(r.out, "%s: %s\n", aec.Bold.Apply(key), value)
}

func (r *Rich) Word(i int, w uint32) {
	fmt.Fprintf(r.out, "%s = 0x%08x\n", aec.Faint.Apply(fmt.Sprintf("W[%2d]", i)), w)
}

func (r *Rich) Line(s string) { fmt.Fprintln(r.out, s) }

func (r *Rich) Prompt(s string) { fmt.Fprint(r.out, aec.Faint.Apply(s)) }

func (r *Rich) Verdict(match bool) string {
	if match {
		return aec.GreenF.With(aec.Bold).Apply("✅ MATCH")
	}
	return aec.RedF.With(aec.Bold).Apply("❌ MISMATCH")
}

func (r *Rich) Footer() {
	fmt.Fprintln(r.out, r.rule("", 0))
	fmt.Fprintf(r.out, "%s %s faster • %s for manual pauses • %s to show full W\n",
		aec.Faint.Apply("Tips:"),
		aec.Bold.Apply("--delay 0.1"),
		aec.Bold.Apply("--step"),
		aec.Bold.Apply("--schedule-limit 64"),
	)
}
