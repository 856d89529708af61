package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huimingz/gitcz/internal/choice"
)

func TestResolve_Defaults(t *testing.T) {
	cfg := Resolve(Overrides{})

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Len(t, cfg.Types, 9)
	assert.Equal(t, 72, cfg.MaxHeaderWidth)
	assert.Equal(t, 100, cfg.MaxBodyWidth)
	assert.True(t, cfg.SkipScope)
	assert.True(t, cfg.IssueMode)
	assert.False(t, cfg.ExclamationMark)
	assert.Equal(t, LocationDefault, cfg.IssueLocation)
	assert.Equal(t, "JIRA", cfg.IssuePrefix)
}

func TestResolve_Overrides(t *testing.T) {
	tests := []struct {
		name  string
		in    Overrides
		check func(t *testing.T, cfg Config)
	}{
		{
			name: "type list replaces defaults",
			in:   Overrides{Types: []choice.Option{{Value: "test", Description: "A test type"}}},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, []choice.Option{{Value: "test", Description: "A test type"}}, cfg.Types)
			},
		},
		{
			name: "empty type list falls back",
			in:   Overrides{Types: []choice.Option{}},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, DefaultTypes(), cfg.Types)
			},
		},
		{
			name: "type list with only blank values falls back",
			in:   Overrides{Types: []choice.Option{{Value: ""}}},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, DefaultTypes(), cfg.Types)
			},
		},
		{
			name: "duplicate scope values keep the first",
			in:   Overrides{Scopes: []choice.Option{{Value: "api", Description: "a"}, {Value: "api", Description: "b"}}},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, []choice.Option{{Value: "api", Description: "a"}}, cfg.Scopes)
			},
		},
		{
			name: "non-positive widths fall back",
			in:   Overrides{MaxHeaderWidth: Int(0), MaxBodyWidth: Int(-3)},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, 72, cfg.MaxHeaderWidth)
				assert.Equal(t, 100, cfg.MaxBodyWidth)
			},
		},
		{
			name: "widths and flags",
			in: Overrides{
				MaxHeaderWidth:  Int(50),
				MaxBodyWidth:    Int(60),
				SkipScope:       Bool(false),
				CustomScope:     Bool(true),
				SkipBreaking:    Bool(true),
				SkipDescription: Bool(true),
				ExclamationMark: Bool(true),
				IssueMode:       Bool(false),
				IssueOptional:   Bool(true),
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, 50, cfg.MaxHeaderWidth)
				assert.Equal(t, 60, cfg.MaxBodyWidth)
				assert.False(t, cfg.SkipScope)
				assert.True(t, cfg.CustomScope)
				assert.True(t, cfg.SkipBreaking)
				assert.True(t, cfg.SkipDescription)
				assert.True(t, cfg.ExclamationMark)
				assert.False(t, cfg.IssueMode)
				assert.True(t, cfg.IssueOptional)
			},
		},
		{
			name: "known issue location",
			in:   Overrides{IssueLocation: String("post-body")},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, LocationAfterBody, cfg.IssueLocation)
			},
		},
		{
			name: "unknown issue location falls back",
			in:   Overrides{IssueLocation: String("somewhere")},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, LocationDefault, cfg.IssueLocation)
			},
		},
		{
			name: "blank issue prefix keeps default",
			in:   Overrides{IssuePrefix: String("  ")},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "JIRA", cfg.IssuePrefix)
			},
		},
		{
			name: "issue affixes",
			in:   Overrides{IssuePrepend: String("["), IssueAppend: String("]")},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "[", cfg.IssuePrepend)
				assert.Equal(t, "]", cfg.IssueAppend)
			},
		},
		{
			name: "defaults for answers",
			in: Overrides{
				DefaultType:   String("fix"),
				DefaultScope:  String("api"),
				DefaultBody:   String("body"),
				DefaultIssues: String("#1"),
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "fix", cfg.DefaultType)
				assert.Equal(t, "api", cfg.DefaultScope)
				assert.Equal(t, "body", cfg.DefaultBody)
				assert.Equal(t, "#1", cfg.DefaultIssues)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Resolve(tt.in))
		})
	}
}

func TestResolve_Footers(t *testing.T) {
	cfg := Resolve(Overrides{Footers: []FooterDefinition{
		{Token: "Reviewed-by", Message: "Who reviewed it?"},
		{Token: ""},
		{Token: "Bad Token"},
		{Token: "Bad:Token"},
		{Token: "BREAKING-CHANGE"},
		{Token: " Signed-off-by ", Required: true},
		{Token: "Reviewed-by", Message: "duplicate"},
	}})

	require.Len(t, cfg.Footers, 2)
	assert.Equal(t, FooterDefinition{Token: "Reviewed-by", Message: "Who reviewed it?"}, cfg.Footers[0])
	assert.Equal(t, FooterDefinition{Token: "Signed-off-by", Required: true}, cfg.Footers[1])
	assert.Equal(t, "Signed-off-by:", cfg.Footers[1].Prompt())
}

func TestOverrides_Merge(t *testing.T) {
	file := Overrides{
		Scopes:         []choice.Option{{Value: "api"}},
		SkipScope:      Bool(false),
		MaxHeaderWidth: Int(60),
		IssuePrefix:    String("PROJ"),
	}
	flags := Overrides{
		MaxHeaderWidth: Int(50),
		IssueLocation:  String("pre-type"),
	}

	merged := file.Merge(flags)
	cfg := Resolve(merged)

	assert.Equal(t, []choice.Option{{Value: "api"}}, cfg.Scopes)
	assert.False(t, cfg.SkipScope)
	assert.Equal(t, 50, cfg.MaxHeaderWidth)
	assert.Equal(t, "PROJ", cfg.IssuePrefix)
	assert.Equal(t, LocationBeforeType, cfg.IssueLocation)

	// the lower layer is left untouched
	assert.Equal(t, 60, *file.MaxHeaderWidth)
	assert.Nil(t, file.IssueLocation)
}

func TestOverrides_MergeEmptySliceReplaces(t *testing.T) {
	file := Overrides{Scopes: []choice.Option{{Value: "api"}}}
	merged := file.Merge(Overrides{Scopes: []choice.Option{}})

	assert.Empty(t, Resolve(merged).Scopes)
}

func TestConfig_HasTypeAndScope(t *testing.T) {
	cfg := Resolve(Overrides{Scopes: []choice.Option{{Value: "api"}}})

	assert.True(t, cfg.HasType("feat"))
	assert.False(t, cfg.HasType("feature"))
	assert.True(t, cfg.HasScope("api"))
	assert.False(t, cfg.HasScope("ui"))
}

func TestParseIssueLocation(t *testing.T) {
	for _, l := range IssueLocations() {
		assert.Equal(t, l, ParseIssueLocation(string(l)))
	}
	assert.Equal(t, LocationDefault, ParseIssueLocation(""))
	assert.Equal(t, LocationDefault, ParseIssueLocation("PRE-TYPE"))
}
