package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/aliasdb/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewImportCommand creates the 'import' subcommand.
func NewImportCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <script-file|->",
		Short: "Import alias definitions from a shell script.",
		Long: `Reads 'alias name=...' lines from a shell script, such as one written by
'aliasdb list', and adds them to the alias file. Lines without the 'alias'
keyword are skipped. Use '-' to read from stdin:

  alias -p | aliasdb import -     # bash, sh
  alias -L | aliasdb import -     # zsh`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImportCmd(cmd, args[0], s)
		},
	}
	return cmd
}

func runImportCmd(cmd *cobra.Command, source string, s *session) error {
	svc, err := s.service()
	if err != nil {
		return err
	}

	var r io.Reader = cmd.InOrStdin()
	if source != stdoutPath {
		f, err := os.Open(source)
		if err != nil {
			return fmt.Errorf("could not open alias script: %w", err)
		}
		defer f.Close()
		r = f
	}

	count, err := svc.ImportScript(r)
	if err != nil {
		return fmt.Errorf("could not import aliases: %w", err)
	}

	out := cmd.OutOrStdout()
	if count == 0 {
		ui.InfoAt(out, source, "No alias definitions found in")
		return nil
	}
	ui.SuccessAt(out, s.repository.Location(), "Imported %d alias(es) into", count)
	return nil
}
