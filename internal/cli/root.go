package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/huimingz/gitcz/internal/log"
	"github.com/huimingz/gitcz/internal/ui"
)

var (
	// Global flags
	debugMode  bool
	configFile string
	langFlag   string

	// Version info
	version   = "dev"
	gitCommit = "unknown"
	buildTime = "unknown"
)

// rootCmd represents the base command; without a subcommand it runs commit
var rootCmd = &cobra.Command{
	Use:   "gitcz",
	Short: "Write conventional commit messages interactively",
	Long: `gitcz asks a short series of questions about your staged changes and
composes a conventional commit message from the answers:

  type(scope): description

  body

  BREAKING CHANGE: what breaks
  Jira-issues: PROJ-123

Run without a subcommand to start the commit prompt.
Use "gitcz [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set debug mode before any command runs
		if debugMode {
			log.SetDebugMode(true)
			log.Debug("Debug mode enabled")
		}
	},
	RunE: runCommit,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// Errors are reported here; an interrupt was already reported by the signal handler.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, ui.ErrInterrupted) {
		_ = ui.NewPrinter(rootCmd.ErrOrStderr()).PrintError(err.Error())
	}
	return err
}

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, commit, time string) {
	version = v
	gitCommit = commit
	buildTime = time
}

// GetVersionInfo returns version information
func GetVersionInfo() (string, string, string) {
	return version, gitCommit, buildTime
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode for verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file path (default: ./.czrc.yaml, then ~/.czrc.yaml)")
	rootCmd.PersistentFlags().StringVarP(&langFlag, "lang", "l", "", "Prompt language (en, zh); overrides GITCZ_LANG and the config file")

	bindCommitFlags(rootCmd.Flags(), &commitOpts)
}
