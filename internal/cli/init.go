package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/huimingz/gitcz/internal/config"
	"github.com/huimingz/gitcz/internal/i18n"
	"github.com/huimingz/gitcz/internal/ui"
	"github.com/huimingz/gitcz/pkg/lang"
)

const defaultConfigTemplate = `# gitcz configuration file
# Keys that are left out keep their built-in defaults.

# Prompt language: en or zh (--lang and GITCZ_LANG take precedence)
language: %s

# Change types, asked first. An entry is a bare value or a map.
# types:
#   - value: feat
#     description: A new feature
#   - value: fix
#     description: A bug fix
#     title: Bug Fixes

# Scopes to choose from. Without a list the scope is typed freely.
# scopes: [api, ui, docs]
# custom_scope: true
skip_scope: true
# skip_description: false
# skip_breaking: false

# The header is "type(scope): description"; body and footers are wrapped.
max_header_width: 72
max_body_width: 100

# true: ask for an issue key (pre-filled from the branch name)
# false: ask whether the change affects open issues
issue_mode: true
# issue_optional: false
issue_prefix: JIRA
# issue_prepend: "["
# issue_append: "]"

# Where the issue key goes: pre-type, pre-description, post-description, post-body
# issue_location: pre-description

# Mark breaking changes with "!" after the type
# exclamation_mark: false

# Additional footers asked on every commit
# footers:
#   - token: Signed-off-by
#     message: "Signed-off-by (Name <email>):"
#     required: true
#   - token: Reviewed-by

# default_type: feat
# default_scope: api
# default_body: ""
# default_issues: ""
`

const nextSteps = `
Next steps:
  1. Edit the config file to list your types, scopes and footers
  2. Stage your changes with 'git add'
  3. Run 'gitcz' to write the commit message
`

var (
	initForce  bool
	initGlobal bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a gitcz configuration file",
	Long: `Create a commented configuration file (.czrc.yaml).

The file is written to the current directory, or to the home directory
with --global. The prompt language is asked unless --lang is given.
Every key is optional; edit the file to set types, scopes, issue handling
and footers for your project.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if initGlobal {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to get home directory: %w", err)
			}
			dir = homeDir
		}
		configPath := filepath.Join(dir, config.FileName)

		// one buffered reader shared by both questions, so piped answers are not lost
		in, out := bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout()
		force := initForce
		if _, err := os.Stat(configPath); err == nil && !force {
			force, err = ui.Confirm(fmt.Sprintf("%s already exists. Overwrite?", configPath), in, out)
			if err != nil {
				return err
			}
			if !force {
				return fmt.Errorf("%w: %s\nUse --force to overwrite", errConfigExists, configPath)
			}
		}

		language := lang.ParseLanguage(langFlag)
		if langFlag == "" {
			languages := lang.Supported()
			names := make([]string, 0, len(languages))
			for _, l := range languages {
				names = append(names, fmt.Sprintf("%s (%s)", l.DisplayName(), l))
			}
			idx, err := ui.SelectOption("Prompt language", names, 0, in, out)
			if err != nil {
				return err
			}
			language = languages[idx]
		}

		if err := writeConfigTemplate(configPath, language, force); err != nil {
			return err
		}

		tr, err := i18n.New(language)
		if err != nil {
			return err
		}
		_ = ui.NewPrinter(out).PrintSuccess(tr.T("config_written", map[string]any{"Path": configPath}))
		_, err = fmt.Fprint(out, nextSteps)
		return err
	},
}

// errConfigExists is returned by writeConfigTemplate when overwriting is not allowed
var errConfigExists = errors.New("config file already exists")

// writeConfigTemplate writes the commented default configuration to path
func writeConfigTemplate(path string, language lang.Language, force bool) error {
	// Check if file exists
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s\nUse --force to overwrite", errConfigExists, path)
	}

	content := fmt.Sprintf(defaultConfigTemplate, language)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing config file")
	initCmd.Flags().BoolVarP(&initGlobal, "global", "g", false, "Write the file to the home directory")
	rootCmd.AddCommand(initCmd)
}
