package choice

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// minLabelWidth is the narrowest label column, so short type lists still line up
// with the longer built-in ones.
const minLabelWidth = 5

// Option is a selectable value with a description and an optional display title
type Option struct {
	Value       string `json:"value" yaml:"value" mapstructure:"value"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty" mapstructure:"title"`
}

// Label returns the text shown to the user for the option
func (o Option) Label() string {
	if o.Title != "" {
		return o.Title
	}
	return o.Value
}

// Choice is a display-ready entry of a select prompt
type Choice struct {
	Name  string
	Value string
}

// Build turns options into aligned choices.
// Labels are padded to the widest label (at least minLabelWidth) plus one column,
// followed by ": description".
func Build(options []Option) []Choice {
	width := minLabelWidth
	for _, o := range options {
		if w := runewidth.StringWidth(o.Label()); w > width {
			width = w
		}
	}

	choices := make([]Choice, 0, len(options))
	for _, o := range options {
		name := o.Label()
		if desc := strings.TrimSpace(o.Description); desc != "" {
			name = runewidth.FillRight(name, width+1) + ": " + desc
		}
		choices = append(choices, Choice{Name: name, Value: o.Value})
	}
	return choices
}

// Index returns the position of value in choices, or -1
func Index(choices []Choice, value string) int {
	for i, c := range choices {
		if c.Value == value {
			return i
		}
	}
	return -1
}

// Names returns the display names of choices in order
func Names(choices []Choice) []string {
	names := make([]string, len(choices))
	for i, c := range choices {
		names[i] = c.Name
	}
	return names
}

// Unique drops options whose value already appeared earlier in the list.
// Options with an empty value are dropped as well.
func Unique(options []Option) []Option {
	if options == nil {
		return nil
	}
	seen := make(map[string]bool, len(options))
	out := make([]Option, 0, len(options))
	for _, o := range options {
		if o.Value == "" || seen[o.Value] {
			continue
		}
		seen[o.Value] = true
		out = append(out, o)
	}
	return out
}
