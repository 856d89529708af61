package ui

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/huimingz/gitcz/internal/choice"
	"github.com/huimingz/gitcz/internal/engine"
	"github.com/huimingz/gitcz/internal/log"
	"github.com/huimingz/gitcz/internal/question"
)

// Collector walks a question plan and gathers the answers
type Collector struct {
	prompter *Prompter
	printer  *Printer
}

// NewCollector creates a Collector asking through prompter and reporting through printer
func NewCollector(prompter *Prompter, printer *Printer) *Collector {
	return &Collector{prompter: prompter, printer: printer}
}

// Collect asks every visible field in order. A rejected answer is reported and
// the same field is asked again. Cancellation or end of input aborts the walk
// and no answers are returned.
func (c *Collector) Collect(ctx context.Context, fields []question.Field) (*engine.Answers, error) {
	answers := &engine.Answers{}
	for _, f := range fields {
		if err := ctx.Err(); err != nil {
			return nil, ErrInterrupted
		}
		if !f.Visible(answers) {
			log.Debug("skip field %s", f.Name)
			continue
		}
		if err := c.ask(ctx, f, answers); err != nil {
			return nil, err
		}
	}
	return answers, nil
}

func (c *Collector) ask(ctx context.Context, f question.Field, answers *engine.Answers) error {
	for {
		raw, err := c.read(ctx, f, answers)
		if err != nil {
			return err
		}

		if err := f.Accept(answers, raw); err != nil {
			if errors.Is(err, engine.ErrUnknownField) {
				return err
			}
			if err := c.printer.PrintValidation(err); err != nil {
				return err
			}
			continue
		}

		if preview := f.PreviewOf(raw, answers); preview != "" {
			n := utf8.RuneCountInString(strings.TrimSpace(raw))
			if err := c.printer.PrintPreview(preview, n, f.Limit(answers)); err != nil {
				return err
			}
		}
		return nil
	}
}

func (c *Collector) read(ctx context.Context, f question.Field, answers *engine.Answers) (string, error) {
	message := f.Prompt(answers)
	def := f.DefaultValue(answers)

	switch f.Kind {
	case question.KindSelect:
		idx, err := c.prompter.Select(ctx, message, choice.Names(f.Choices), choice.Index(f.Choices, def))
		if err != nil {
			return "", err
		}
		return f.Choices[idx].Value, nil

	case question.KindConfirm:
		defaultYes, _ := engine.ParseBool(def)
		ok, err := c.prompter.Confirm(ctx, message, defaultYes)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(ok), nil

	default:
		return c.prompter.Input(ctx, message, def)
	}
}
