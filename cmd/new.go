package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dotcommander/ccplug/internal/scaffold"
	"github.com/dotcommander/ccplug/internal/types"
	"github.com/spf13/cobra"
)

var (
	newType      string
	newOutputDir string
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Scaffold a new plugin from a template",
	Long: `New creates a plugin directory from an embedded template.

Available plugin types:
  mcp-ts    MCP Server (TypeScript)
  mcp-py    MCP Server (Python)
  skill     Skill with workflows and knowledge
  command   Slash command
  full      Complete plugin with all components

The full type scaffolds both MCP server flavors; keep one, delete the other,
and rename the kept directory to mcp-server/.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		description, ok := scaffold.Descriptions[newType]
		if !ok {
			return fmt.Errorf("unknown plugin type: %s (valid types: %s)", newType, strings.Join(pluginTypes(), ", "))
		}

		target, err := scaffold.Create(name, newType, newOutputDir)
		if err != nil {
			return err
		}

		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s plugin: %s\n", description, target)
			fmt.Fprintf(cmd.OutOrStdout(), "\nCustomize the templates, then check your work with:\n  ccplug validate %s\n", target)
		}
		return nil
	},
}

func pluginTypes() []string {
	names := make([]string, 0, len(scaffold.Descriptions))
	for name := range scaffold.Descriptions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	newCmd.Flags().StringVarP(&newType, "type", "t", types.TypeFull, "Plugin type to create")
	newCmd.Flags().StringVarP(&newOutputDir, "output", "o", "", "Output directory (default: current directory)")
	rootCmd.AddCommand(newCmd)
}
