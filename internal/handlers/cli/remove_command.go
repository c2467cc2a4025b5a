package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliasdb/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the 'remove' subcommand.
func NewRemoveCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Remove an alias.",
		Long:    `Deletes an alias from the alias file. Removing an alias that does not exist changes nothing.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemoveCmd(cmd, args, s)
		},
	}
	return cmd
}

func runRemoveCmd(cmd *cobra.Command, args []string, s *session) error {
	svc, err := s.service()
	if err != nil {
		return err
	}
	name := args[0]

	removed, err := svc.RemoveAlias(name)
	if err != nil {
		return fmt.Errorf("could not remove alias: %w", err)
	}

	if !removed {
		ui.WarnAt(cmd.ErrOrStderr(), s.repository.Location(), "Nothing was removed. Alias '%s' not found in", name)
		return nil
	}
	ui.SuccessAt(cmd.OutOrStdout(), s.repository.Location(), "Removed alias '%s' from", name)
	return nil
}
