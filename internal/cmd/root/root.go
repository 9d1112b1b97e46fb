// Package root provides the root command for the mdp CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/mdpress/mdp/internal/cmd/build"
	"github.com/mdpress/mdp/internal/cmd/completion"
	"github.com/mdpress/mdp/internal/cmd/initcmd"
	"github.com/mdpress/mdp/internal/version"
)

// NewCmdRoot creates the root command for mdp.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mdp",
		Short: "A build tool for print-oriented Markdown documents",
		Long: `mdp preprocesses and renders Markdown documents.

The preprocess step expands bracket directives like [[greet, World]] against
a directive config, applies legacy token substitutions, and wraps content
into numbered page sections. The render step converts the enhanced Markdown
to standalone HTML through a document shell template.

Get started by running: mdp init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "C", "", "config file (default: ./mdp.yml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Set version template
	cmd.SetVersionTemplate("mdp version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(build.NewCmdBuild())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
