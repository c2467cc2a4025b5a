package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliasdb/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewAddCommand creates the 'add' subcommand.
func NewAddCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name> <command>",
		Short: "Add an alias, replacing any alias with the same name.",
		Long: `Stores an alias in the alias file. Quote the command so your shell passes
it as a single argument:

  aliasdb add lss 'ls -lhr --sort size'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddCmd(cmd, args, s)
		},
	}
	return cmd
}

func runAddCmd(cmd *cobra.Command, args []string, s *session) error {
	svc, err := s.service()
	if err != nil {
		return err
	}
	name, command := args[0], args[1]

	replaced, err := svc.AddAlias(name, command)
	if err != nil {
		return fmt.Errorf("could not add alias: %w", err)
	}

	out := cmd.OutOrStdout()
	if replaced {
		ui.SuccessAt(out, s.repository.Location(), "Replaced alias '%s' in", name)
	} else {
		ui.SuccessAt(out, s.repository.Location(), "Added alias '%s' to", name)
	}
	return nil
}
