package cli

import "github.com/spf13/cobra"

// completionCommand creates the completion command. Completion covers
// subcommands, flags and the shell names themselves.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion bash|zsh|fish|powershell",
		Short: "Print a shell completion script",
		Long: `Print a shell completion script for hovertip to stdout.

Load it for the current shell:

  source <(hovertip completion bash)
  hovertip completion fish | source
  hovertip completion powershell | Out-String | Invoke-Expression

For zsh, write the script somewhere on $fpath, e.g.

  hovertip completion zsh > "${fpath[1]}/_hovertip"

and start a new shell.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, out := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(out)
			}
		},
	}

	return cmd
}
