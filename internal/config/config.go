package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/huimingz/gitcz/internal/choice"
	"github.com/huimingz/gitcz/internal/engine"
	"github.com/huimingz/gitcz/internal/log"
	"github.com/huimingz/gitcz/pkg/lang"
)

// FileName is the configuration file written by init and looked up by Load
const FileName = ".czrc.yaml"

// LangEnv overrides the language set in the configuration file
const LangEnv = "GITCZ_LANG"

// searchNames are tried in each search directory, in order
var searchNames = []string{FileName, ".czrc.yml", ".czrc.json", ".czrc.toml"}

// Config represents the configuration file. Every key is optional;
// a missing key keeps the built-in default.
type Config struct {
	Language string `yaml:"language" mapstructure:"language"`

	Types  []choice.Option `yaml:"types" mapstructure:"types"`
	Scopes []choice.Option `yaml:"scopes" mapstructure:"scopes"`

	CustomScope     *bool `yaml:"custom_scope" mapstructure:"custom_scope"`
	SkipScope       *bool `yaml:"skip_scope" mapstructure:"skip_scope"`
	SkipDescription *bool `yaml:"skip_description" mapstructure:"skip_description"`
	SkipBreaking    *bool `yaml:"skip_breaking" mapstructure:"skip_breaking"`

	MaxHeaderWidth *int `yaml:"max_header_width" mapstructure:"max_header_width"`
	MaxBodyWidth   *int `yaml:"max_body_width" mapstructure:"max_body_width"`

	IssueMode     *bool   `yaml:"issue_mode" mapstructure:"issue_mode"`
	IssueOptional *bool   `yaml:"issue_optional" mapstructure:"issue_optional"`
	IssuePrefix   *string `yaml:"issue_prefix" mapstructure:"issue_prefix"`
	IssuePrepend  *string `yaml:"issue_prepend" mapstructure:"issue_prepend"`
	IssueAppend   *string `yaml:"issue_append" mapstructure:"issue_append"`
	IssueLocation *string `yaml:"issue_location" mapstructure:"issue_location"`

	ExclamationMark *bool `yaml:"exclamation_mark" mapstructure:"exclamation_mark"`

	Footers []engine.FooterDefinition `yaml:"footers" mapstructure:"footers"`

	DefaultType   *string `yaml:"default_type" mapstructure:"default_type"`
	DefaultScope  *string `yaml:"default_scope" mapstructure:"default_scope"`
	DefaultBody   *string `yaml:"default_body" mapstructure:"default_body"`
	DefaultIssues *string `yaml:"default_issues" mapstructure:"default_issues"`
}

// Overrides returns the engine overrides the file specifies
func (c *Config) Overrides() engine.Overrides {
	return engine.Overrides{
		Types:           c.Types,
		Scopes:          c.Scopes,
		CustomScope:     c.CustomScope,
		SkipScope:       c.SkipScope,
		SkipDescription: c.SkipDescription,
		SkipBreaking:    c.SkipBreaking,
		MaxHeaderWidth:  c.MaxHeaderWidth,
		MaxBodyWidth:    c.MaxBodyWidth,
		IssueMode:       c.IssueMode,
		IssueOptional:   c.IssueOptional,
		IssuePrefix:     c.IssuePrefix,
		IssuePrepend:    c.IssuePrepend,
		IssueAppend:     c.IssueAppend,
		IssueLocation:   c.IssueLocation,
		ExclamationMark: c.ExclamationMark,
		Footers:         c.Footers,
		DefaultType:     c.DefaultType,
		DefaultScope:    c.DefaultScope,
		DefaultBody:     c.DefaultBody,
		DefaultIssues:   c.DefaultIssues,
	}
}

// GetLanguage returns the language to use
// Priority: parameter > env variable (GITCZ_LANG) > config file > default (en)
func (c *Config) GetLanguage(langParam string) lang.Language {
	// Parameter has highest priority
	if langParam != "" {
		return lang.ParseLanguage(langParam)
	}

	// Check env variable
	if envLang := os.Getenv(LangEnv); envLang != "" {
		return lang.ParseLanguage(envLang)
	}

	// Use config file value
	if c.Language != "" {
		return lang.ParseLanguage(c.Language)
	}

	return lang.DefaultLanguage()
}

// optionHook lets a list entry be a bare value instead of an option map:
//
//	scopes: [api, ui]
func optionHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != reflect.TypeOf(choice.Option{}) || from.Kind() != reflect.String {
		return data, nil
	}
	return choice.Option{Value: strings.TrimSpace(data.(string))}, nil
}

// LoadFromFile loads configuration from a file.
// The format follows the extension: yaml, yml, json or toml.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	switch strings.TrimPrefix(filepath.Ext(path), ".") {
	case "yaml", "yml", "json", "toml":
	default:
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		optionHook,
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Load loads configuration with the following priority:
// 1. Custom path if provided
// 2. Current directory .czrc.yaml (or .yml, .json, .toml)
// 3. Home directory ~/.czrc.yaml (or .yml, .json, .toml)
//
// Finding no file is not an error: an empty Config is returned and the
// built-in defaults apply. The path of the file used is returned, or "".
func Load(customPath string) (*Config, string, error) {
	// If custom path is provided, use it exclusively
	if customPath != "" {
		cfg, err := LoadFromFile(customPath)
		if err != nil {
			return nil, "", err
		}
		return cfg, customPath, nil
	}

	dirs := []string{"."}
	if homeDir, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, homeDir)
	} else {
		log.Debug("home directory unavailable: %v", err)
	}

	for _, dir := range dirs {
		for _, name := range searchNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				if !errors.Is(err, os.ErrNotExist) {
					log.Debug("skip %s: %v", path, err)
				}
				continue
			}
			cfg, err := LoadFromFile(path)
			if err != nil {
				return nil, "", err
			}
			return cfg, path, nil
		}
	}

	log.Debug("no configuration file found, using defaults")
	return &Config{}, "", nil
}
