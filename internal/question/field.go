// Package question describes the ordered, conditional questions asked to build a commit message.
package question

import (
	"errors"
	"strings"

	"github.com/huimingz/gitcz/internal/choice"
	"github.com/huimingz/gitcz/internal/engine"
)

// Kind is the widget a field is asked with
type Kind string

const (
	KindSelect  Kind = "select"
	KindInput   Kind = "input"
	KindConfirm Kind = "confirm"
)

// ErrRequired is returned by Accept for an empty answer to a required field
// that has no validator of its own
var ErrRequired = errors.New("a value is required")

// Field is one question of the plan.
// Every function member is optional and receives the answers collected so far.
type Field struct {
	Name     string
	Kind     Kind
	Message  func(a *engine.Answers) string
	Choices  []choice.Choice
	Required bool

	When      func(a *engine.Answers) bool
	Default   func(a *engine.Answers) string
	MaxLength func(a *engine.Answers) int
	Validate  func(raw string, a *engine.Answers) error
	Filter    func(raw string, a *engine.Answers) string
	Preview   func(raw string, a *engine.Answers) string
}

// Visible reports whether the field is asked given the answers so far
func (f Field) Visible(a *engine.Answers) bool {
	return f.When == nil || f.When(a)
}

// Prompt returns the question text
func (f Field) Prompt(a *engine.Answers) string {
	if f.Message == nil {
		return f.Name
	}
	return f.Message(a)
}

// DefaultValue returns the pre-filled answer, or ""
func (f Field) DefaultValue(a *engine.Answers) string {
	if f.Default == nil {
		return ""
	}
	return f.Default(a)
}

// Limit returns the maximum answer length in characters, or 0 for none
func (f Field) Limit(a *engine.Answers) int {
	if f.MaxLength == nil {
		return 0
	}
	return f.MaxLength(a)
}

// PreviewOf renders raw the way it will appear in the message, or "" if the
// field has no preview
func (f Field) PreviewOf(raw string, a *engine.Answers) string {
	if f.Preview == nil {
		return ""
	}
	return f.Preview(raw, a)
}

// Accept validates raw, normalizes it and stores the result in a.
// On error a is left untouched.
func (f Field) Accept(a *engine.Answers, raw string) error {
	if f.Validate != nil {
		if err := f.Validate(raw, a); err != nil {
			return err
		}
	} else if f.Required && strings.TrimSpace(raw) == "" {
		return ErrRequired
	}

	value := raw
	if f.Filter != nil {
		value = f.Filter(raw, a)
	}
	return a.Set(f.Name, value)
}
