package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Field names of the question plan, in plan order
const (
	FieldType            = "type"
	FieldScope           = "scope"
	FieldCustomScope     = "customScope"
	FieldJiraIssues      = "jiraIssues"
	FieldIsBreaking      = "isBreaking"
	FieldSubject         = "subject"
	FieldBody            = "body"
	FieldBreakingBody    = "breakingBody"
	FieldIsIssueAffected = "isIssueAffected"
	FieldIssuesBody      = "issuesBody"
	FieldIssues          = "issues"
)

const footerFieldPrefix = "footer:"

// Sentinel scope values offered next to the configured scopes.
// Neither ever ends up in a message.
const (
	ScopeCustom = "[custom]"
	ScopeSkip   = "[skip]"
)

// IsScopeSentinel reports whether s is ScopeCustom or ScopeSkip
func IsScopeSentinel(s string) bool {
	return s == ScopeCustom || s == ScopeSkip
}

// ErrUnknownField is returned by Answers.Set for a name no field uses
var ErrUnknownField = errors.New("unknown field")

// FooterField returns the field name used for the additional footer token
func FooterField(token string) string {
	return footerFieldPrefix + token
}

// Answers is the answer set collected while walking the question plan.
// Unanswered fields keep their zero value.
type Answers struct {
	Type            string            `json:"type"`
	Scope           string            `json:"scope,omitempty"`
	CustomScope     string            `json:"customScope,omitempty"`
	JiraIssues      string            `json:"jiraIssues,omitempty"`
	IsBreaking      bool              `json:"isBreaking,omitempty"`
	Subject         string            `json:"subject"`
	Body            string            `json:"body,omitempty"`
	BreakingBody    string            `json:"breakingBody,omitempty"`
	IsIssueAffected bool              `json:"isIssueAffected,omitempty"`
	IssuesBody      string            `json:"issuesBody,omitempty"`
	Issues          string            `json:"issues,omitempty"`
	Footers         map[string]string `json:"footers,omitempty"`
}

// Set stores value under the field name
func (a *Answers) Set(name, value string) error {
	switch name {
	case FieldType:
		a.Type = value
	case FieldScope:
		a.Scope = value
	case FieldCustomScope:
		a.CustomScope = value
	case FieldJiraIssues:
		a.JiraIssues = value
	case FieldIsBreaking:
		b, err := ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		a.IsBreaking = b
	case FieldSubject:
		a.Subject = value
	case FieldBody:
		a.Body = value
	case FieldBreakingBody:
		a.BreakingBody = value
	case FieldIsIssueAffected:
		b, err := ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		a.IsIssueAffected = b
	case FieldIssuesBody:
		a.IssuesBody = value
	case FieldIssues:
		a.Issues = value
	default:
		token, ok := strings.CutPrefix(name, footerFieldPrefix)
		if !ok || token == "" {
			return fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
		if a.Footers == nil {
			a.Footers = make(map[string]string)
		}
		a.Footers[token] = value
	}
	return nil
}

// Trimmed returns a copy with surrounding whitespace removed from every text answer
func (a Answers) Trimmed() Answers {
	out := a
	out.Type = strings.TrimSpace(a.Type)
	out.Scope = strings.TrimSpace(a.Scope)
	out.CustomScope = strings.TrimSpace(a.CustomScope)
	out.JiraIssues = strings.TrimSpace(a.JiraIssues)
	out.Subject = strings.TrimSpace(a.Subject)
	out.Body = strings.TrimSpace(a.Body)
	out.BreakingBody = strings.TrimSpace(a.BreakingBody)
	out.IssuesBody = strings.TrimSpace(a.IssuesBody)
	out.Issues = strings.TrimSpace(a.Issues)
	if a.Footers != nil {
		out.Footers = make(map[string]string, len(a.Footers))
		for k, v := range a.Footers {
			out.Footers[k] = strings.TrimSpace(v)
		}
	}
	return out
}

// ParseBool accepts the spellings a user may type at a yes/no prompt
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true", "1":
		return true, nil
	case "n", "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", s)
	}
}
