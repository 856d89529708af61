// Package i18n localizes prompts and status messages.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/huimingz/gitcz/internal/log"
	"github.com/huimingz/gitcz/pkg/lang"
)

//go:embed locales/*.toml
var locales embed.FS

var loadBundle = sync.OnceValues(func() (*goi18n.Bundle, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(locales, "locales/active.*.toml")
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(locales, file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}
	return bundle, nil
})

// Translator looks up messages for one language, falling back to English
type Translator struct {
	lang      lang.Language
	localizer *goi18n.Localizer
}

// New returns a translator for l. Unsupported languages get English.
func New(l lang.Language) (*Translator, error) {
	bundle, err := loadBundle()
	if err != nil {
		return nil, err
	}
	if !l.IsValid() {
		l = lang.DefaultLanguage()
	}
	return &Translator{
		lang:      l,
		localizer: goi18n.NewLocalizer(bundle, l.String(), lang.English.String()),
	}, nil
}

// Default returns the English translator.
// The message files are embedded, so a failure here is a build defect.
func Default() *Translator {
	t, err := New(lang.English)
	if err != nil {
		panic(err)
	}
	return t
}

// Language returns the language messages are rendered in
func (t *Translator) Language() lang.Language {
	return t.lang
}

// T renders the message id with the given template data.
// A missing message renders as its id.
func (t *Translator) T(id string, data map[string]any) string {
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		log.Debug("translation %q (%s): %v", id, t.lang, err)
		return id
	}
	return msg
}
