package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/huimingz/gitcz/internal/choice"
	"github.com/huimingz/gitcz/internal/config"
	"github.com/huimingz/gitcz/internal/engine"
	"github.com/huimingz/gitcz/internal/git"
	"github.com/huimingz/gitcz/internal/i18n"
	"github.com/huimingz/gitcz/internal/issue"
	"github.com/huimingz/gitcz/internal/log"
	"github.com/huimingz/gitcz/internal/message"
	"github.com/huimingz/gitcz/internal/question"
	"github.com/huimingz/gitcz/internal/ui"
	"github.com/huimingz/gitcz/pkg/lang"
)

// commitOptions holds the commit flags. Configuration flags only take
// effect when given on the command line.
type commitOptions struct {
	dryRun  bool
	autoYes bool

	skipScope       bool
	scopes          []string
	customScope     bool
	issueLocation   string
	exclamationMark bool
	maxHeaderWidth  int
	maxBodyWidth    int
	noIssueMode     bool
}

var commitOpts commitOptions

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Compose a conventional commit message and commit",
	Long: `Ask for the parts of a conventional commit message and commit the staged changes.

This command will:
1. Check that there are staged changes (git diff --cached)
2. Ask for type, scope, issue, description, body and footers
3. Show the composed message and ask for confirmation before committing

The issue question is pre-filled with a key found in the branch name,
e.g. PROJ-42 for feature/PROJ-42-login.

Examples:
  gitcz
  gitcz commit --dry-run
  gitcz commit --scopes api,ui --custom-scope
  gitcz commit --issue-location post-body --lang zh`,
	RunE: runCommit,
}

func init() {
	bindCommitFlags(commitCmd.Flags(), &commitOpts)
	rootCmd.AddCommand(commitCmd)
}

func bindCommitFlags(fs *pflag.FlagSet, o *commitOptions) {
	fs.BoolVar(&o.dryRun, "dry-run", false, "Print the message instead of committing; staged changes are not required")
	fs.BoolVarP(&o.autoYes, "yes", "y", false, "Commit without asking for confirmation")
	fs.BoolVar(&o.skipScope, "skip-scope", false, "Do not ask for a scope")
	fs.StringSliceVar(&o.scopes, "scopes", nil, "Scopes to choose from (comma separated)")
	fs.BoolVar(&o.customScope, "custom-scope", false, "Allow typing a scope that is not in the list")
	fs.StringVar(&o.issueLocation, "issue-location", "", "Where the issue key goes: "+issueLocationNames())
	fs.BoolVar(&o.exclamationMark, "exclamation-mark", false, "Mark breaking changes with '!' after the type")
	fs.IntVar(&o.maxHeaderWidth, "max-header-width", 0, "Maximum length of the header line")
	fs.IntVar(&o.maxBodyWidth, "max-body-width", 0, "Wrap body and footers at this width")
	fs.BoolVar(&o.noIssueMode, "no-issue-mode", false, "Ask about affected issues instead of an issue key")
}

func issueLocationNames() string {
	names := make([]string, 0, len(engine.IssueLocations()))
	for _, l := range engine.IssueLocations() {
		names = append(names, string(l))
	}
	return strings.Join(names, ", ")
}

// overrides returns the configuration set by flags given on the command line
func (o *commitOptions) overrides(fs *pflag.FlagSet) engine.Overrides {
	var ov engine.Overrides
	if fs.Changed("skip-scope") {
		ov.SkipScope = engine.Bool(o.skipScope)
	}
	if fs.Changed("scopes") {
		ov.Scopes = make([]choice.Option, 0, len(o.scopes))
		for _, s := range o.scopes {
			ov.Scopes = append(ov.Scopes, choice.Option{Value: s})
		}
		// a scope list is pointless unless it is asked for
		if !fs.Changed("skip-scope") {
			ov.SkipScope = engine.Bool(false)
		}
	}
	if fs.Changed("custom-scope") {
		ov.CustomScope = engine.Bool(o.customScope)
	}
	if fs.Changed("issue-location") {
		ov.IssueLocation = engine.String(o.issueLocation)
	}
	if fs.Changed("exclamation-mark") {
		ov.ExclamationMark = engine.Bool(o.exclamationMark)
	}
	if fs.Changed("max-header-width") {
		ov.MaxHeaderWidth = engine.Int(o.maxHeaderWidth)
	}
	if fs.Changed("max-body-width") {
		ov.MaxBodyWidth = engine.Int(o.maxBodyWidth)
	}
	if fs.Changed("no-issue-mode") {
		ov.IssueMode = engine.Bool(!o.noIssueMode)
	}
	return ov
}

// settings is the resolved configuration of one run
type settings struct {
	config   engine.Config
	language lang.Language
	path     string
	tr       *i18n.Translator
}

// loadSettings resolves the configuration: defaults < config file < flags
func loadSettings(fs *pflag.FlagSet) (*settings, error) {
	file, path, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if path != "" {
		log.Debug("Using config file: %s", path)
	}

	cfg := engine.Resolve(file.Overrides().Merge(commitOpts.overrides(fs)))
	log.DebugConfig("Configuration", cfg)

	language := file.GetLanguage(langFlag)
	log.Debug("Using language: %s", language)

	tr, err := i18n.New(language)
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}
	return &settings{config: cfg, language: language, path: path, tr: tr}, nil
}

func runCommit(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd.Flags())
	if err != nil {
		return err
	}

	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	printer := ui.NewPrinter(cmd.OutOrStdout(), ui.WithVerbose(log.IsDebugMode()))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	interrupts := NewInterruptHandler(cancel, printer)
	interrupts.Start()
	defer interrupts.Stop()

	runner := &commitRunner{
		git:     git.NewExecutor(cwd),
		input:   cmd.InOrStdin(),
		output:  cmd.OutOrStdout(),
		printer: printer,
		dryRun:  commitOpts.dryRun,
		autoYes: commitOpts.autoYes,
	}
	return interrupts.Wrap(runner.run(ctx, s.config, s.tr))
}

// commitRunner drives one commit: collect answers, compose, confirm, commit
type commitRunner struct {
	git     git.Executor
	input   io.Reader
	output  io.Writer
	printer *ui.Printer
	dryRun  bool
	autoYes bool
}

func (r *commitRunner) run(ctx context.Context, cfg engine.Config, tr *i18n.Translator) error {
	// Check if there are staged changes
	if !r.dryRun {
		files, err := r.git.StagedFiles(ctx)
		if err != nil {
			return fmt.Errorf("failed to get staged changes: %w", err)
		}
		if len(files) == 0 {
			_ = r.printer.PrintWarning(tr.T("no_staged_changes", nil))
			return nil
		}
		_ = r.printer.PrintDetail(fmt.Sprintf("Staged files: %s", strings.Join(files, ", ")))
	}

	var opts []question.Option
	opts = append(opts, question.WithTranslator(tr))
	if cfg.IssueMode {
		opts = append(opts, question.WithDefaultIssue(issue.FromBranch(ctx, r.git)))
	}

	prompter := ui.NewPrompter(r.input, r.output)
	defer prompter.Close()

	answers, err := ui.NewCollector(prompter, r.printer).Collect(ctx, question.Build(cfg, opts...))
	if err != nil {
		if errors.Is(err, ui.ErrInterrupted) || errors.Is(err, io.EOF) {
			return fmt.Errorf("%s: %w", tr.T("commit_aborted", nil), err)
		}
		return fmt.Errorf("failed to collect answers: %w", err)
	}

	commitMessage := message.Compose(*answers, cfg)

	if r.dryRun {
		_, err := fmt.Fprintln(r.output, commitMessage)
		return err
	}

	// Print the composed commit message
	_ = r.printer.Newline()
	if err := ui.ShowCommitMessage(tr.T("preview_title", nil), commitMessage, r.output); err != nil {
		return err
	}

	// Ask for confirmation (default is Yes)
	if !r.autoYes {
		confirmed, err := prompter.Confirm(ctx, tr.T("confirm_commit", nil), true)
		if err != nil {
			return fmt.Errorf("%s: %w", tr.T("commit_aborted", nil), err)
		}
		if !confirmed {
			_ = r.printer.PrintInfo(tr.T("commit_aborted", nil))
			return nil
		}
	}

	// Execute commit
	if err := r.git.Commit(ctx, commitMessage); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	_ = r.printer.PrintSuccess(tr.T("commit_created", nil))
	return nil
}
