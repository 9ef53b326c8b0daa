// Package completion generates and installs shell completion scripts.
package completion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentstation/birdmap/internal/cmd/emoji"
	"github.com/agentstation/birdmap/pkg/errors"
)

// Supported shells.
const (
	ShellBash = "bash"
	ShellZsh  = "zsh"
	ShellFish = "fish"
)

// Shells lists the shells completions can be generated for.
var Shells = []string{ShellBash, ShellZsh, ShellFish}

const dirPermissions = 0o755

// Generate writes the completion script for shell.
func Generate(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case ShellBash:
		return root.GenBashCompletionV2(w, true)
	case ShellZsh:
		return root.GenZshCompletion(w)
	case ShellFish:
		return root.GenFishCompletion(w, true)
	}
	return errors.NewValidationError("shell", shell, "unsupported shell")
}

// Install writes the completion script for shell to its per-user location.
func Install(root *cobra.Command, shell string, w io.Writer) error {
	target, err := Path(shell)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), dirPermissions); err != nil {
		return errors.WrapIO("mkdir", filepath.Dir(target), err)
	}

	f, err := os.Create(target) // #nosec G304 - path built by Path
	if err != nil {
		return errors.WrapIO("create", target, err)
	}
	if err := Generate(root, shell, f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.WrapIO("close", target, err)
	}

	fmt.Fprintf(w, "%s %s completions installed to: %s\n", emoji.Success, shell, target)
	fmt.Fprintf(w, "%s Start a new shell session to enable completions.\n", emoji.Info)
	return nil
}

// Uninstall removes the completion script Install wrote for shell.
func Uninstall(shell string, w io.Writer) error {
	target, err := Path(shell)
	if err != nil {
		return err
	}

	info, err := os.Stat(target)
	if err != nil || info.IsDir() {
		fmt.Fprintf(w, "%s No %s completions found at: %s\n", emoji.Info, shell, target)
		return nil
	}
	if err := os.Remove(target); err != nil {
		return errors.WrapIO("remove", target, err)
	}
	fmt.Fprintf(w, "%s Removed %s completions from: %s\n", emoji.Success, shell, target)
	return nil
}

// Path returns where Install puts the completion script for shell. A
// Homebrew prefix is used when HOMEBREW_PREFIX is set, otherwise a
// directory under the user's home.
func Path(shell string) (string, error) {
	if prefix := os.Getenv("HOMEBREW_PREFIX"); prefix != "" {
		switch shell {
		case ShellBash:
			return filepath.Join(prefix, "etc", "bash_completion.d", "birdmap"), nil
		case ShellZsh:
			return filepath.Join(prefix, "share", "zsh", "site-functions", "_birdmap"), nil
		case ShellFish:
			return filepath.Join(prefix, "share", "fish", "vendor_completions.d", "birdmap.fish"), nil
		}
		return "", errors.NewValidationError("shell", shell, "unsupported shell")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapIO("lookup", "home directory", err)
	}
	switch shell {
	case ShellBash:
		return filepath.Join(home, ".bash_completion.d", "birdmap"), nil
	case ShellZsh:
		return filepath.Join(home, ".zsh", "completions", "_birdmap"), nil
	case ShellFish:
		return filepath.Join(home, ".config", "fish", "completions", "birdmap.fish"), nil
	}
	return "", errors.NewValidationError("shell", shell, "unsupported shell")
}
