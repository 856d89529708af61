package engine

import (
	"slices"

	"github.com/huimingz/gitcz/internal/choice"
)

// IssueLocation controls where the issue reference is rendered
type IssueLocation string

const (
	LocationDefault           IssueLocation = ""
	LocationBeforeType        IssueLocation = "pre-type"
	LocationBeforeDescription IssueLocation = "pre-description"
	LocationAfterDescription  IssueLocation = "post-description"
	LocationAfterBody         IssueLocation = "post-body"
)

// IsValid reports whether l is one of the known locations
func (l IssueLocation) IsValid() bool {
	switch l {
	case LocationDefault, LocationBeforeType, LocationBeforeDescription, LocationAfterDescription, LocationAfterBody:
		return true
	default:
		return false
	}
}

// ParseIssueLocation converts s to an IssueLocation; unknown values map to LocationDefault
func ParseIssueLocation(s string) IssueLocation {
	l := IssueLocation(s)
	if l.IsValid() {
		return l
	}
	return LocationDefault
}

// IssueLocations lists the selectable (non-default) locations
func IssueLocations() []IssueLocation {
	return []IssueLocation{LocationBeforeType, LocationBeforeDescription, LocationAfterDescription, LocationAfterBody}
}

// FooterDefinition describes an additional footer asked for on every commit
type FooterDefinition struct {
	Token    string `json:"token" yaml:"token" mapstructure:"token" validate:"required,footertoken"`
	Message  string `json:"message,omitempty" yaml:"message,omitempty" mapstructure:"message" validate:"max=200"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty" mapstructure:"required"`
}

// Prompt returns the message shown when asking for the footer value
func (f FooterDefinition) Prompt() string {
	if f.Message != "" {
		return f.Message
	}
	return f.Token + ":"
}

// Config is the fully resolved engine configuration.
// Obtain one with Resolve; it is passed by value and never mutated afterwards.
type Config struct {
	Types  []choice.Option `json:"types" yaml:"types"`
	Scopes []choice.Option `json:"scopes,omitempty" yaml:"scopes,omitempty"`

	CustomScope     bool `json:"custom_scope" yaml:"custom_scope"`
	SkipScope       bool `json:"skip_scope" yaml:"skip_scope"`
	SkipDescription bool `json:"skip_description" yaml:"skip_description"`
	SkipBreaking    bool `json:"skip_breaking" yaml:"skip_breaking"`

	MaxHeaderWidth int `json:"max_header_width" yaml:"max_header_width"`
	MaxBodyWidth   int `json:"max_body_width" yaml:"max_body_width"`

	IssueMode     bool          `json:"issue_mode" yaml:"issue_mode"`
	IssueOptional bool          `json:"issue_optional" yaml:"issue_optional"`
	IssuePrefix   string        `json:"issue_prefix" yaml:"issue_prefix"`
	IssuePrepend  string        `json:"issue_prepend,omitempty" yaml:"issue_prepend,omitempty"`
	IssueAppend   string        `json:"issue_append,omitempty" yaml:"issue_append,omitempty"`
	IssueLocation IssueLocation `json:"issue_location,omitempty" yaml:"issue_location,omitempty"`

	// ExclamationMark renders breaking changes inline as "type!:" in addition
	// to the BREAKING CHANGE block.
	ExclamationMark bool `json:"exclamation_mark" yaml:"exclamation_mark"`

	Footers []FooterDefinition `json:"footers,omitempty" yaml:"footers,omitempty"`

	DefaultType   string `json:"default_type,omitempty" yaml:"default_type,omitempty"`
	DefaultScope  string `json:"default_scope,omitempty" yaml:"default_scope,omitempty"`
	DefaultBody   string `json:"default_body,omitempty" yaml:"default_body,omitempty"`
	DefaultIssues string `json:"default_issues,omitempty" yaml:"default_issues,omitempty"`
}

// HasType reports whether value is one of the configured types
func (c Config) HasType(value string) bool {
	return slices.ContainsFunc(c.Types, func(o choice.Option) bool { return o.Value == value })
}

// HasScope reports whether value is one of the configured scopes
func (c Config) HasScope(value string) bool {
	return slices.ContainsFunc(c.Scopes, func(o choice.Option) bool { return o.Value == value })
}

// DefaultTypes returns the built-in change types
func DefaultTypes() []choice.Option {
	return []choice.Option{
		{Value: "feat", Description: "A new feature"},
		{Value: "fix", Description: "A bug fix"},
		{Value: "docs", Description: "Documentation only changes"},
		{Value: "refactor", Description: "A code change that neither fixes a bug nor adds a feature (formatting, performance improvement, etc)"},
		{Value: "test", Description: "Adding missing tests or correcting existing tests"},
		{Value: "build", Description: "Changes that affect the build system or external dependencies (go modules, make, docker)"},
		{Value: "ci", Description: "Changes to our CI configuration files and scripts (NOTE: Does not bump the version)"},
		{Value: "chore", Description: "Other changes that don't modify src or test files"},
		{Value: "revert", Description: "Reverts a previous commit"},
	}
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() Config {
	return Config{
		Types:          DefaultTypes(),
		SkipScope:      true,
		MaxHeaderWidth: 72,
		MaxBodyWidth:   100,
		IssueMode:      true,
		IssuePrefix:    "JIRA",
	}
}
