// Package cmd wires the ccplug CLI: scaffolding, validation, and packaging
// of Claude Code plugin directories.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
)

var rootCmd = &cobra.Command{
	Use:   "ccplug",
	Short: "Scaffold, validate, and package Claude Code plugins",
	Long: `ccplug manages Claude Code plugin directories through their lifecycle:

  new       scaffold a plugin from a template
  validate  check a plugin's structure, configuration, and documentation
  package   validate and bundle a plugin into a distributable archive

A plugin is any combination of an MCP server, a skill document, and slash
command files. Validation reports errors (block packaging), warnings (style
and completeness), and info notes (recommendations).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Errors are reported on stderr with a
// non-zero exit; validation failures exit 1 via their command handlers.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cobra.CheckErr(err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Report format (console|json|markdown)")
	rootCmd.PersistentFlags().StringVar(&outputFile, "report-file", "", "Write the report to a file instead of stdout")

	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("report-file"))
}

// exit is stubbed in tests.
var exit = os.Exit
