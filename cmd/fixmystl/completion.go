package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for fixmystl.

To load completions:

Bash:

  $ source <(fixmystl completion bash)

  To load completions for each session, execute once:
  Linux:
    $ fixmystl completion bash > /etc/bash_completion.d/fixmystl
  macOS:
    $ fixmystl completion bash > /usr/local/etc/bash_completion.d/fixmystl

Zsh:

  $ fixmystl completion zsh > "${fpath[1]}/_fixmystl"

  You will need to start a new shell for this setup to take effect.

Fish:

  $ fixmystl completion fish > ~/.config/fish/completions/fixmystl.fish

PowerShell:

  PS> fixmystl completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(out)
		case "zsh":
			return cmd.Root().GenZshCompletion(out)
		case "fish":
			return cmd.Root().GenFishCompletion(out, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletionWithDesc(out)
		}
		return fmt.Errorf("unsupported shell %q", args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
