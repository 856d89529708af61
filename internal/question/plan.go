package question

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/huimingz/gitcz/internal/choice"
	"github.com/huimingz/gitcz/internal/engine"
	"github.com/huimingz/gitcz/internal/i18n"
	"github.com/huimingz/gitcz/internal/issue"
	"github.com/huimingz/gitcz/internal/message"
)

// defaultIssuesBody is pre-filled when closing issues without any other description
const defaultIssuesBody = "-"

var lowerScope = cases.Lower(language.Und)

// Option configures Build
type Option func(*planner)

// WithTranslator localizes the question texts and validation messages
func WithTranslator(t *i18n.Translator) Option {
	return func(p *planner) {
		p.tr = t
	}
}

// WithDefaultIssue pre-fills the issue question, usually with the key found in the branch name
func WithDefaultIssue(key string) Option {
	return func(p *planner) {
		p.defaultIssue = key
	}
}

type planner struct {
	cfg          engine.Config
	tr           *i18n.Translator
	defaultIssue string
}

// Build returns every question in the order it is asked. Whether a field
// is asked depends on its When predicate, which reads both the
// configuration and the answers given so far.
func Build(cfg engine.Config, opts ...Option) []Field {
	p := &planner{cfg: cfg}
	for _, opt := range opts {
		opt(p)
	}
	if p.tr == nil {
		p.tr = i18n.Default()
	}

	fields := []Field{
		p.typeField(),
		p.scopeField(),
		p.customScopeField(),
		p.issueField(),
		p.breakingField(),
		p.subjectField(),
		p.bodyField(),
		p.breakingBodyField(),
		p.issueAffectedField(),
		p.issuesBodyField(),
		p.issuesField(),
	}
	for _, def := range cfg.Footers {
		fields = append(fields, p.footerField(def))
	}
	return fields
}

// enabled is a When predicate that only depends on the configuration
func enabled(on bool) func(*engine.Answers) bool {
	return func(*engine.Answers) bool {
		return on
	}
}

func (p *planner) text(id string, data map[string]any) func(*engine.Answers) string {
	return func(*engine.Answers) string {
		return p.tr.T(id, data)
	}
}

func constant(s string) func(*engine.Answers) string {
	return func(*engine.Answers) string {
		return s
	}
}

func filterScope(raw string, _ *engine.Answers) string {
	return lowerScope.String(strings.TrimSpace(raw))
}

func (p *planner) typeField() Field {
	f := Field{
		Name:     engine.FieldType,
		Kind:     KindSelect,
		Message:  p.text("type_prompt", nil),
		Choices:  choice.Build(p.cfg.Types),
		Required: true,
	}
	if p.cfg.DefaultType != "" && p.cfg.HasType(p.cfg.DefaultType) {
		f.Default = constant(p.cfg.DefaultType)
	}
	return f
}

func (p *planner) scopeField() Field {
	f := Field{
		Name:   engine.FieldScope,
		When:   enabled(!p.cfg.SkipScope),
		Filter: filterScope,
	}

	if len(p.cfg.Scopes) == 0 {
		f.Kind = KindInput
		f.Message = p.text("scope_input_prompt", nil)
		if p.cfg.DefaultScope != "" {
			f.Default = constant(p.cfg.DefaultScope)
		}
		return f
	}

	f.Kind = KindSelect
	f.Message = p.text("scope_select_prompt", nil)
	f.Choices = choice.Build(p.cfg.Scopes)
	if p.cfg.CustomScope {
		f.Choices = append(f.Choices, choice.Choice{Name: engine.ScopeCustom, Value: engine.ScopeCustom})
	}
	f.Choices = append(f.Choices, choice.Choice{Name: engine.ScopeSkip, Value: engine.ScopeSkip})
	if p.cfg.DefaultScope != "" && p.cfg.HasScope(p.cfg.DefaultScope) {
		f.Default = constant(p.cfg.DefaultScope)
	}
	return f
}

func (p *planner) customScopeField() Field {
	// typing a scope is only an extra choice when there is a list to choose from
	on := !p.cfg.SkipScope && p.cfg.CustomScope && len(p.cfg.Scopes) > 0
	return Field{
		Name:    engine.FieldCustomScope,
		Kind:    KindInput,
		Message: p.text("custom_scope_prompt", nil),
		When: func(a *engine.Answers) bool {
			return on && a.Scope == engine.ScopeCustom
		},
		Filter: filterScope,
	}
}

func (p *planner) issueField() Field {
	data := map[string]any{"Prefix": p.cfg.IssuePrefix}
	prompt := "issue_prompt"
	if p.cfg.IssueOptional {
		prompt = "issue_prompt_optional"
	}

	f := Field{
		Name:     engine.FieldJiraIssues,
		Kind:     KindInput,
		Message:  p.text(prompt, data),
		Required: !p.cfg.IssueOptional,
		When:     enabled(p.cfg.IssueMode),
		Validate: func(raw string, _ *engine.Answers) error {
			err := issue.Validate(raw, p.cfg.IssueOptional)
			switch {
			case err == nil:
				return nil
			case errors.Is(err, issue.ErrMissing):
				return errors.New(p.tr.T("issue_required", data))
			default:
				return errors.New(p.tr.T("issue_invalid", data))
			}
		},
		Filter: func(raw string, _ *engine.Answers) string {
			return issue.Normalize(raw, p.cfg.IssuePrepend, p.cfg.IssueAppend)
		},
	}
	if p.defaultIssue != "" {
		f.Default = constant(p.defaultIssue)
	}
	return f
}

func (p *planner) breakingField() Field {
	return Field{
		Name:    engine.FieldIsBreaking,
		Kind:    KindConfirm,
		Message: p.text("breaking_prompt", nil),
		When:    enabled(!p.cfg.SkipBreaking),
		Default: constant("false"),
	}
}

// titlePrefix is the title rendered without a description
func (p *planner) titlePrefix(a *engine.Answers) string {
	head := *a
	head.Subject = ""
	return message.Title(head, p.cfg)
}

// subjectLimit is the header width left for the description
func (p *planner) subjectLimit(a *engine.Answers) int {
	return p.cfg.MaxHeaderWidth - utf8.RuneCountInString(p.titlePrefix(a))
}

func (p *planner) subjectField() Field {
	return Field{
		Name: engine.FieldSubject,
		Kind: KindInput,
		Message: func(a *engine.Answers) string {
			return p.tr.T("subject_prompt", map[string]any{"Max": p.subjectLimit(a)})
		},
		Required:  true,
		MaxLength: p.subjectLimit,
		Validate: func(raw string, a *engine.Answers) error {
			subject := strings.TrimSpace(raw)
			if subject == "" {
				return errors.New(p.tr.T("subject_required", nil))
			}
			limit := p.subjectLimit(a)
			if n := utf8.RuneCountInString(subject); n > limit {
				return errors.New(p.tr.T("subject_too_long", map[string]any{"Max": limit, "Length": n}))
			}
			return nil
		},
		// aligns the stored subject under the title prefix; the composer trims it
		Filter: func(raw string, a *engine.Answers) string {
			pad := utf8.RuneCountInString(p.titlePrefix(a)) + 2
			return strings.Repeat(" ", pad) + strings.TrimSpace(raw)
		},
		Preview: func(raw string, a *engine.Answers) string {
			head := a.Trimmed()
			head.Subject = strings.TrimSpace(raw)
			return strings.TrimSpace(message.Title(head, p.cfg))
		},
	}
}

func (p *planner) bodyField() Field {
	f := Field{
		Name:    engine.FieldBody,
		Kind:    KindInput,
		Message: p.text("body_prompt", nil),
		When:    enabled(!p.cfg.SkipDescription),
	}
	if p.cfg.DefaultBody != "" {
		f.Default = constant(p.cfg.DefaultBody)
	}
	return f
}

func (p *planner) breakingBodyField() Field {
	return Field{
		Name:     engine.FieldBreakingBody,
		Kind:     KindInput,
		Message:  p.text("breaking_body_prompt", nil),
		Required: true,
		When: func(a *engine.Answers) bool {
			return a.IsBreaking
		},
		Validate: func(raw string, _ *engine.Answers) error {
			if strings.TrimSpace(raw) == "" {
				return errors.New(p.tr.T("breaking_body_required", nil))
			}
			return nil
		},
	}
}

func (p *planner) issueAffectedField() Field {
	return Field{
		Name:    engine.FieldIsIssueAffected,
		Kind:    KindConfirm,
		Message: p.text("issue_affected_prompt", nil),
		When:    enabled(!p.cfg.IssueMode),
		Default: constant(strconv.FormatBool(p.cfg.DefaultIssues != "")),
	}
}

func (p *planner) issuesBodyField() Field {
	return Field{
		Name:    engine.FieldIssuesBody,
		Kind:    KindInput,
		Message: p.text("issues_body_prompt", nil),
		Default: constant(defaultIssuesBody),
		When: func(a *engine.Answers) bool {
			return !p.cfg.IssueMode && a.IsIssueAffected && strings.TrimSpace(a.Body) == "" && !a.IsBreaking
		},
	}
}

func (p *planner) issuesField() Field {
	f := Field{
		Name:    engine.FieldIssues,
		Kind:    KindInput,
		Message: p.text("issues_prompt", nil),
		When: func(a *engine.Answers) bool {
			return !p.cfg.IssueMode && a.IsIssueAffected
		},
	}
	if p.cfg.DefaultIssues != "" {
		f.Default = constant(p.cfg.DefaultIssues)
	}
	return f
}

func (p *planner) footerField(def engine.FooterDefinition) Field {
	f := Field{
		Name:     engine.FooterField(def.Token),
		Kind:     KindInput,
		Message:  constant(def.Prompt()),
		Required: def.Required,
	}
	if def.Required {
		f.Validate = func(raw string, _ *engine.Answers) error {
			if strings.TrimSpace(raw) == "" {
				return errors.New(p.tr.T("footer_required", map[string]any{"Token": def.Token}))
			}
			return nil
		}
	}
	return f
}
