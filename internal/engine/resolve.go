package engine

import (
	"slices"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/huimingz/gitcz/internal/choice"
	"github.com/huimingz/gitcz/internal/log"
)

// BreakingToken is the footer token reserved for the breaking change block
const BreakingToken = "BREAKING CHANGE"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("footertoken", func(fl validator.FieldLevel) bool {
		return isFooterToken(fl.Field().String())
	})
	return v
}

// isFooterToken reports whether token can be rendered as "Token: value".
// BREAKING CHANGE and its hyphenated form belong to the breaking block.
func isFooterToken(token string) bool {
	if token == "" || strings.EqualFold(token, "BREAKING-CHANGE") {
		return false
	}
	return !strings.ContainsFunc(token, func(r rune) bool {
		return r == ':' || unicode.IsSpace(r)
	})
}

// Overrides holds caller-supplied configuration values.
// A nil field is "not specified" and keeps the value from the layer below it;
// a non-nil slice replaces the whole list.
type Overrides struct {
	Types  []choice.Option
	Scopes []choice.Option

	CustomScope     *bool
	SkipScope       *bool
	SkipDescription *bool
	SkipBreaking    *bool

	MaxHeaderWidth *int
	MaxBodyWidth   *int

	IssueMode     *bool
	IssueOptional *bool
	IssuePrefix   *string
	IssuePrepend  *string
	IssueAppend   *string
	IssueLocation *string

	ExclamationMark *bool

	Footers []FooterDefinition

	DefaultType   *string
	DefaultScope  *string
	DefaultBody   *string
	DefaultIssues *string
}

// Merge returns o with every field that next specifies replaced by next's value.
// Layers are merged from lowest to highest precedence:
//
//	file.Merge(flags)
func (o Overrides) Merge(next Overrides) Overrides {
	out := o
	if next.Types != nil {
		out.Types = next.Types
	}
	if next.Scopes != nil {
		out.Scopes = next.Scopes
	}
	pick(&out.CustomScope, next.CustomScope)
	pick(&out.SkipScope, next.SkipScope)
	pick(&out.SkipDescription, next.SkipDescription)
	pick(&out.SkipBreaking, next.SkipBreaking)
	pick(&out.MaxHeaderWidth, next.MaxHeaderWidth)
	pick(&out.MaxBodyWidth, next.MaxBodyWidth)
	pick(&out.IssueMode, next.IssueMode)
	pick(&out.IssueOptional, next.IssueOptional)
	pick(&out.IssuePrefix, next.IssuePrefix)
	pick(&out.IssuePrepend, next.IssuePrepend)
	pick(&out.IssueAppend, next.IssueAppend)
	pick(&out.IssueLocation, next.IssueLocation)
	pick(&out.ExclamationMark, next.ExclamationMark)
	if next.Footers != nil {
		out.Footers = next.Footers
	}
	pick(&out.DefaultType, next.DefaultType)
	pick(&out.DefaultScope, next.DefaultScope)
	pick(&out.DefaultBody, next.DefaultBody)
	pick(&out.DefaultIssues, next.DefaultIssues)
	return out
}

func pick[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}

// Resolve applies overrides on top of DefaultConfig.
// It never fails: values that cannot be used fall back to the defaults.
func Resolve(o Overrides) Config {
	cfg := DefaultConfig()

	if types := choice.Unique(o.Types); len(types) > 0 {
		cfg.Types = types
	} else if o.Types != nil {
		log.Debug("ignoring empty type list override")
	}
	if o.Scopes != nil {
		cfg.Scopes = choice.Unique(o.Scopes)
	}

	apply(&cfg.CustomScope, o.CustomScope)
	apply(&cfg.SkipScope, o.SkipScope)
	apply(&cfg.SkipDescription, o.SkipDescription)
	apply(&cfg.SkipBreaking, o.SkipBreaking)

	if o.MaxHeaderWidth != nil && *o.MaxHeaderWidth > 0 {
		cfg.MaxHeaderWidth = *o.MaxHeaderWidth
	}
	if o.MaxBodyWidth != nil && *o.MaxBodyWidth > 0 {
		cfg.MaxBodyWidth = *o.MaxBodyWidth
	}

	apply(&cfg.IssueMode, o.IssueMode)
	apply(&cfg.IssueOptional, o.IssueOptional)
	if o.IssuePrefix != nil && strings.TrimSpace(*o.IssuePrefix) != "" {
		cfg.IssuePrefix = strings.TrimSpace(*o.IssuePrefix)
	}
	apply(&cfg.IssuePrepend, o.IssuePrepend)
	apply(&cfg.IssueAppend, o.IssueAppend)
	if o.IssueLocation != nil {
		cfg.IssueLocation = ParseIssueLocation(strings.TrimSpace(*o.IssueLocation))
		if string(cfg.IssueLocation) != strings.TrimSpace(*o.IssueLocation) {
			log.Warn("unknown issue location %q, using default", *o.IssueLocation)
		}
	}

	apply(&cfg.ExclamationMark, o.ExclamationMark)

	if o.Footers != nil {
		cfg.Footers = sanitizeFooters(o.Footers)
	}

	apply(&cfg.DefaultType, o.DefaultType)
	apply(&cfg.DefaultScope, o.DefaultScope)
	apply(&cfg.DefaultBody, o.DefaultBody)
	apply(&cfg.DefaultIssues, o.DefaultIssues)

	return cfg
}

func apply[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// sanitizeFooters drops definitions that fail validation or repeat a token
func sanitizeFooters(defs []FooterDefinition) []FooterDefinition {
	out := make([]FooterDefinition, 0, len(defs))
	for _, def := range defs {
		def.Token = strings.TrimSpace(def.Token)
		def.Message = strings.TrimSpace(def.Message)
		if err := validate.Struct(def); err != nil {
			log.Warn("dropping footer definition %q: %v", def.Token, err)
			continue
		}
		if slices.ContainsFunc(out, func(d FooterDefinition) bool { return d.Token == def.Token }) {
			log.Debug("dropping duplicate footer definition %q", def.Token)
			continue
		}
		out = append(out, def)
	}
	return out
}

// Bool returns a pointer to v, for building Overrides literals
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v, for building Overrides literals
func Int(v int) *int { return &v }

// String returns a pointer to v, for building Overrides literals
func String(v string) *string { return &v }
