package cmd

import (
	"fmt"

	"github.com/dotcommander/ccplug/internal/config"
	"github.com/dotcommander/ccplug/internal/outputters"
	"github.com/dotcommander/ccplug/internal/validate"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a plugin directory",
	Long: `Validate checks a plugin directory's structure, configuration, and
documentation. Components are detected by presence (MCP server manifests,
SKILL.md, commands/) and each detected component gets its own checks.

Exit code is 0 when no errors were found, 1 otherwise. Warnings and info
notes never fail validation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading configuration: %w", err)
		}

		report := validate.New(args[0]).Validate()

		outputter := outputters.NewOutputter(cfg, cmd.OutOrStdout())
		if err := outputter.Format(report); err != nil {
			return fmt.Errorf("error formatting output: %w", err)
		}

		if !report.Passed() {
			exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
