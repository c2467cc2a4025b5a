package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliasdb/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(s *session) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"script"},
		Short:   "Print a shell script that defines every alias.",
		Long: `Generates one 'alias name="command"' line per alias, sorted by name.
The script is safe to source from sh, bash and zsh:

  eval "$(aliasdb list)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, s, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", stdoutPath, "Write the script to this file instead of stdout.")
	return cmd
}

func runListCmd(cmd *cobra.Command, s *session, output string) error {
	svc, err := s.service()
	if err != nil {
		return err
	}

	script, err := svc.RenderScript()
	if err != nil {
		return fmt.Errorf("could not render aliases: %w", err)
	}
	if err := writeOutput(cmd, s, output, script); err != nil {
		return err
	}
	if output != stdoutPath {
		ui.SuccessAt(cmd.ErrOrStderr(), output, "Wrote alias script to")
	}
	return nil
}
