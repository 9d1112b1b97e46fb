package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdBash creates the bash completion command.
func NewCmdBash() *cobra.Command {
	return &cobra.Command{
		Use:   "bash",
		Short: "Generate bash completion script",
		Long: `Generate bash completion script for mdp.

To load completions in your current shell session:

  source <(mdp completion bash)

To load completions for every new session:

  # Linux
  mdp completion bash > /etc/bash_completion.d/mdp

  # macOS (requires bash-completion)
  mdp completion bash > $(brew --prefix)/etc/bash_completion.d/mdp`,
		Example: `  # Load in current session
  source <(mdp completion bash)

  # Install permanently (Linux)
  mdp completion bash | sudo tee /etc/bash_completion.d/mdp > /dev/null

  # Install permanently (macOS with Homebrew)
  mdp completion bash > $(brew --prefix)/etc/bash_completion.d/mdp`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		},
	}
}
