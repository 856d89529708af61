package message

import (
	"regexp"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

var blankRuns = regexp.MustCompile(`\n{3,}`)

// wrap breaks text into lines of at most width columns without splitting words.
// Explicit newlines are kept, trailing blanks are trimmed from every line and
// runs of empty lines collapse to a single one.
func wrap(text string, width int) string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return ""
	}

	w := wordwrap.NewWriter(width)
	// only whitespace separates words; keys like ABC-123 must stay whole
	w.Breakpoints = nil
	_, _ = w.Write([]byte(text))
	_ = w.Close()

	lines := strings.Split(w.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return blankRuns.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
}
