package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliasdb/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewVerifyCommand creates the 'verify' subcommand.
func NewVerifyCommand(s *session) *cobra.Command {
	var shellPath string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that a real shell reproduces every alias command exactly.",
		Long: `Passes every escaped alias command through a shell and compares the
result with the stored command. Any difference means the generated script
would not define the alias as stored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerifyCmd(cmd, s, shellPath)
		},
	}

	cmd.Flags().StringVar(&shellPath, "shell", "", "Shell to verify with (default /bin/sh).")
	return cmd
}

func runVerifyCmd(cmd *cobra.Command, s *session, shellPath string) error {
	svc, err := s.service()
	if err != nil {
		return err
	}

	aliases, err := svc.ListAliases()
	if err != nil {
		return fmt.Errorf("could not list aliases: %w", err)
	}
	out := cmd.OutOrStdout()
	if len(aliases) == 0 {
		ui.InfoAt(out, s.repository.Location(), "No aliases to verify in")
		return nil
	}

	verifier := s.deps.NewVerificationService(shellPath, s.logger)
	mismatches, err := verifier.Verify(aliases)
	if err != nil {
		return fmt.Errorf("could not verify aliases: %w", err)
	}

	if len(mismatches) == 0 {
		ui.Successf(out, "All %d alias(es) are reproduced exactly by the shell.", len(aliases))
		return nil
	}

	errOut := cmd.ErrOrStderr()
	for _, m := range mismatches {
		ui.Errorf(errOut, "alias %s: stored %q, shell produced %q", m.Alias.Name, m.Alias.Command, m.Got)
	}
	return fmt.Errorf("%d of %d alias(es) would not be defined as stored", len(mismatches), len(aliases))
}
