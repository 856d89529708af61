package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/huimingz/gitcz/internal/engine"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the gitcz configuration",
	Long:  `Commands for inspecting the configuration gitcz resolves from defaults, config file and flags.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	Long: `Print the configuration used for commits as YAML.

Values come from the built-in defaults, overridden by the config file.
The file used is shown first; "defaults" means no file was found.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd.Flags())
		if err != nil {
			return err
		}
		return renderSettings(cmd.OutOrStdout(), s)
	},
}

// shownConfig is the document printed by config show
type shownConfig struct {
	Language      string `yaml:"language"`
	engine.Config `yaml:",inline"`
}

func renderSettings(w io.Writer, s *settings) error {
	source := s.path
	if source == "" {
		source = "defaults"
	}
	if _, err := color.New(color.Bold).Fprintf(w, "# source: %s\n", source); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(shownConfig{Language: s.language.String(), Config: s.config}); err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}
	return enc.Close()
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
