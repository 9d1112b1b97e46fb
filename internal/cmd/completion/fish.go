package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdFish creates the fish completion command.
func NewCmdFish() *cobra.Command {
	return &cobra.Command{
		Use:   "fish",
		Short: "Generate fish completion script",
		Long: `Generate fish completion script for mdp.

To load completions in your current shell session:

  mdp completion fish | source

To load completions for every new session:

  mdp completion fish > ~/.config/fish/completions/mdp.fish`,
		Example: `  # Load in current session
  mdp completion fish | source

  # Install permanently
  mdp completion fish > ~/.config/fish/completions/mdp.fish`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		},
	}
}
