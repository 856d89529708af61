package lang

import (
	"strings"

	"golang.org/x/text/language"
)

// Language represents supported prompt languages
type Language string

const (
	English           Language = "en"
	ChineseSimplified Language = "zh"
)

var matcher = language.NewMatcher([]language.Tag{language.English, language.SimplifiedChinese})

// String returns the string representation of the language
func (l Language) String() string {
	return string(l)
}

// IsValid checks if the language is valid
func (l Language) IsValid() bool {
	switch l {
	case English, ChineseSimplified:
		return true
	default:
		return false
	}
}

// DisplayName returns the display name of the language
func (l Language) DisplayName() string {
	switch l {
	case English:
		return "English"
	case ChineseSimplified:
		return "中文（简体）"
	default:
		return string(l)
	}
}

// Supported lists the languages with message files, default first
func Supported() []Language {
	return []Language{English, ChineseSimplified}
}

// DefaultLanguage returns the default language
func DefaultLanguage() Language {
	return English
}

// ParseLanguage maps a language tag such as "zh-CN", "en_US" or the POSIX
// locale "zh_CN.UTF-8" to the closest supported language.
// Anything unrecognized yields the default language.
func ParseLanguage(s string) Language {
	s, _, _ = strings.Cut(strings.TrimSpace(s), ".")
	s = strings.ReplaceAll(s, "_", "-")
	if s == "" {
		return DefaultLanguage()
	}

	tag, err := language.Parse(s)
	if err != nil {
		return DefaultLanguage()
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return DefaultLanguage()
	}
	return Supported()[idx]
}
