package report

import (
	"strings"

	"github.com/acarl005/stripansi"
)

// outputTail is the display form of one captured stream.
type outputTail struct {
	Text      string
	Shown     int
	Total     int
	Truncated bool
}

// tail strips ANSI escape sequences from s and keeps at most max trailing
// characters. Lengths are counted in runes, so a multi-byte character is
// never split.
func tail(s string, max int) outputTail {
	clean := stripansi.Strip(s)
	runes := []rune(clean)
	total := len(runes)
	if max < 0 {
		max = 0
	}
	if total <= max {
		return outputTail{Text: clean, Shown: total, Total: total}
	}
	return outputTail{
		Text:      string(runes[total-max:]),
		Shown:     max,
		Total:     total,
		Truncated: true,
	}
}

// blank reports whether the stream has nothing worth a section.
func (t outputTail) blank() bool {
	return strings.TrimSpace(t.Text) == ""
}
