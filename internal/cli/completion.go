package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ghcount/pkg/errors"
)

// completionShells are the values accepted by --completion.
//
// Completion is a flag rather than a subcommand: every positional argument
// is a user name, and a "completion" subcommand would shadow that login.
var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// writeCompletion writes the completion script for shell to w.
//
// To load completions:
//
//	Bash:       source <(ghcount --completion bash)
//	Zsh:        ghcount --completion zsh > "${fpath[1]}/_ghcount"
//	Fish:       ghcount --completion fish | source
//	PowerShell: ghcount --completion powershell | Out-String | Invoke-Expression
func writeCompletion(root *cobra.Command, w io.Writer, shell string) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	}
	return errors.New(errors.ErrCodeInvalidInput, "unsupported shell %q (want bash, zsh, fish or powershell)", shell)
}
