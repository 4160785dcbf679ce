package cmd

import (
	"errors"
	"fmt"

	"github.com/dotcommander/ccplug/internal/config"
	"github.com/dotcommander/ccplug/internal/outputters"
	"github.com/dotcommander/ccplug/internal/pack"
	"github.com/spf13/cobra"
)

var (
	packOutputDir      string
	packSkipValidation bool
	packForce          bool
)

var packageCmd = &cobra.Command{
	Use:   "package <path>",
	Short: "Package a plugin into a distributable archive",
	Long: `Package validates a plugin and bundles it into <name>.zip, excluding
development litter such as node_modules, __pycache__, and build output.

A plugin that fails validation is not packaged; pass --skip-validation to
package it anyway. An existing archive is only overwritten with --force.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading configuration: %w", err)
		}

		result, err := pack.Create(args[0], pack.Options{
			OutputDir:      packOutputDir,
			SkipValidation: packSkipValidation || cfg.SkipValidation,
			Force:          packForce || cfg.Force,
			Exclude:        cfg.Exclude,
		})

		var vErr *pack.ValidationFailedError
		if errors.As(err, &vErr) {
			outputter := outputters.NewOutputter(cfg, cmd.OutOrStdout())
			if fmtErr := outputter.Format(vErr.Report); fmtErr != nil {
				return fmtErr
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "\nValidation failed. Use --skip-validation to package anyway.")
			exit(1)
			return nil
		}
		if err != nil {
			return err
		}

		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "Package created: %s\n", result.ArchivePath)
			fmt.Fprintf(cmd.OutOrStdout(), "  Size: %.2f MB\n", float64(result.Size)/(1024*1024))
			fmt.Fprintf(cmd.OutOrStdout(), "  Files: %d\n", result.Files)
		}
		return nil
	},
}

func init() {
	packageCmd.Flags().StringVarP(&packOutputDir, "output", "o", "", "Output directory for the archive (default: current directory)")
	packageCmd.Flags().BoolVar(&packSkipValidation, "skip-validation", false, "Package even when validation fails")
	packageCmd.Flags().BoolVar(&packForce, "force", false, "Overwrite an existing archive")
	rootCmd.AddCommand(packageCmd)
}
