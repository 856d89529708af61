// Package issue recognizes issue tracker keys such as PROJ-123.
package issue

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/huimingz/gitcz/internal/log"
)

// keyPattern matches a key like ABC-123. The look-behind stops a match from
// starting inside a longer key, e.g. "BC-12" in "ABC-12" or "12" in "AB-1-12".
// RE2 has no look-behind, hence regexp2. Digits are spelled [0-9] because
// regexp2's \d also matches non-ASCII decimal digits such as "١".
const keyPattern = `(?<!([a-zA-Z0-9]{1,10})-?)[a-zA-Z0-9]+-[0-9]+`

var (
	keyExact    = regexp2.MustCompile(`^`+keyPattern+`$`, regexp2.None)
	keyInBranch = regexp2.MustCompile(`(?<jiraIssue>`+keyPattern+`)`, regexp2.None)
	separator   = regexp.MustCompile(`,?\s+`)
)

// BranchReader returns the name of the checked out branch
type BranchReader interface {
	CurrentBranch(ctx context.Context) (string, error)
}

// Split breaks a user-entered list of keys into tokens
func Split(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return separator.Split(raw, -1)
}

// IsKey reports whether s is exactly one issue key
func IsKey(s string) bool {
	ok, err := keyExact.MatchString(s)
	return err == nil && ok
}

// FindKey returns the first issue key embedded in s, or ""
func FindKey(s string) string {
	m, err := keyInBranch.FindStringMatch(s)
	if err != nil || m == nil {
		return ""
	}
	if g := m.GroupByName("jiraIssue"); g != nil {
		return g.String()
	}
	return ""
}

// Normalize upper-cases every key and wraps it in the given affixes
func Normalize(raw, prepend, appendix string) string {
	tokens := Split(raw)
	for i, t := range tokens {
		tokens[i] = prepend + strings.ToUpper(t) + appendix
	}
	return strings.Join(tokens, ", ")
}

// FromBranch extracts a default issue key from the current branch name.
// Any failure yields "" since the key is only a convenience default.
func FromBranch(ctx context.Context, r BranchReader) string {
	if r == nil {
		return ""
	}
	branch, err := r.CurrentBranch(ctx)
	if err != nil {
		log.Debug("branch lookup failed: %v", err)
		return ""
	}
	key := FindKey(strings.TrimSpace(branch))
	log.Debug("branch %q issue key %q", branch, key)
	return key
}

var (
	// ErrMissing is returned by Validate when no key was entered
	ErrMissing = errors.New("at least one issue key is required")

	// ErrInvalid is returned by Validate when a token is not an issue key
	ErrInvalid = errors.New("invalid issue key")
)

// Validate checks a user-entered list of keys
func Validate(raw string, optional bool) error {
	tokens := Split(raw)
	if len(tokens) == 0 {
		if optional {
			return nil
		}
		return ErrMissing
	}
	for _, t := range tokens {
		if !IsKey(t) {
			return fmt.Errorf("%w: %s", ErrInvalid, t)
		}
	}
	return nil
}
