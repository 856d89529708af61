// Package message composes conventional commit messages from collected answers.
package message

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/huimingz/gitcz/internal/engine"
)

// Footer tokens rendered by the composer itself
const (
	IssueFooterToken     = "Jira-issues"
	ReferencesToken      = "Refs"
	breakingMarkerPhrase = engine.BreakingToken + ": "
)

// matches a marker the user typed at the start of the breaking description
var typedBreakingMarker = regexp.MustCompile(`(?i)^BREAKING[ -]CHANGE:\s*`)

// Footer is one "Token: value" trailer line
type Footer struct {
	Token string
	Value string
}

// Compose renders the full commit message: title, body, breaking change block
// and footers, separated by single blank lines. Empty parts are left out.
func Compose(answers engine.Answers, cfg engine.Config) string {
	a := answers.Trimmed()

	segments := []string{
		strings.TrimSpace(Title(a, cfg)),
		Body(a, cfg),
		Breaking(a, cfg),
		renderFooters(Footers(a, cfg), cfg.MaxBodyWidth),
	}

	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s = strings.Trim(s, "\n"); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

// ResolveScope returns the custom scope if given, else the selected scope.
// Sentinel values count as no scope.
func ResolveScope(a engine.Answers) string {
	for _, s := range []string{a.CustomScope, a.Scope} {
		s = strings.TrimSpace(s)
		if s != "" && !engine.IsScopeSentinel(s) {
			return s
		}
	}
	return ""
}

// TypeWithScope renders "type(scope)" or "type", followed by "!" when the
// inline breaking marker is enabled and the change is breaking
func TypeWithScope(a engine.Answers, cfg engine.Config) string {
	mark := ""
	if cfg.ExclamationMark && a.IsBreaking {
		mark = "!"
	}
	if scope := ResolveScope(a); scope != "" {
		return fmt.Sprintf("%s(%s)%s", a.Type, scope, mark)
	}
	return a.Type + mark
}

// Title renders the header line, placing the issue reference according to
// cfg.IssueLocation. The subject is used as given, so a title rendered with an
// empty subject is the prefix the subject will follow.
func Title(a engine.Answers, cfg engine.Config) string {
	typeWithScope := TypeWithScope(a, cfg)
	issue := strings.TrimSpace(a.JiraIssues)

	if issue == "" {
		return fmt.Sprintf("%s: %s", typeWithScope, a.Subject)
	}

	switch cfg.IssueLocation {
	case engine.LocationBeforeType:
		return fmt.Sprintf("%s %s: %s", issue, typeWithScope, a.Subject)
	case engine.LocationAfterDescription:
		return fmt.Sprintf("%s: %s %s", typeWithScope, a.Subject, issue)
	case engine.LocationAfterBody:
		return fmt.Sprintf("%s: %s", typeWithScope, a.Subject)
	default:
		return fmt.Sprintf("%s: %s %s", typeWithScope, issue, a.Subject)
	}
}

// Body returns the wrapped body. The issues body, asked for when closing issues
// without any other description, takes precedence.
func Body(a engine.Answers, cfg engine.Config) string {
	text := a.Body
	if strings.TrimSpace(a.IssuesBody) != "" {
		text = a.IssuesBody
	}
	return wrap(text, cfg.MaxBodyWidth)
}

// Breaking returns the wrapped BREAKING CHANGE block, or "" without a description
func Breaking(a engine.Answers, cfg engine.Config) string {
	text := strings.TrimSpace(a.BreakingBody)
	text = strings.TrimSpace(typedBreakingMarker.ReplaceAllString(text, ""))
	if text == "" {
		return ""
	}
	return wrap(breakingMarkerPhrase+text, cfg.MaxBodyWidth)
}

// Footers returns the trailer entries in order: issue footer (post-body only),
// references, then the configured footers. Entries without a value are dropped.
func Footers(a engine.Answers, cfg engine.Config) []Footer {
	candidates := make([]Footer, 0, len(cfg.Footers)+2)
	if cfg.IssueLocation == engine.LocationAfterBody {
		candidates = append(candidates, Footer{Token: IssueFooterToken, Value: a.JiraIssues})
	}
	candidates = append(candidates, Footer{Token: ReferencesToken, Value: a.Issues})
	for _, def := range cfg.Footers {
		candidates = append(candidates, Footer{Token: def.Token, Value: a.Footers[def.Token]})
	}

	footers := candidates[:0]
	for _, f := range candidates {
		if f.Value = strings.TrimSpace(f.Value); f.Value != "" {
			footers = append(footers, f)
		}
	}
	return footers
}

func renderFooters(footers []Footer, width int) string {
	lines := make([]string, 0, len(footers))
	for _, f := range footers {
		lines = append(lines, wrap(f.Token+": "+f.Value, width))
	}
	return strings.Join(lines, "\n")
}
