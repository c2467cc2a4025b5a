package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliasdb/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasdb/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewShowCommand creates the 'show' subcommand.
func NewShowCommand(s *session) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Show one alias definition, or a table of all aliases.",
		Long: `With a name, prints the shell statement defining that alias.
Without one, prints every alias in a table.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runShowAliasCmd(cmd, s, args[0], output)
			}
			return runShowTableCmd(cmd, s)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", stdoutPath, "Write the alias statement to this file instead of stdout.")
	return cmd
}

func runShowAliasCmd(cmd *cobra.Command, s *session, name, output string) error {
	svc, err := s.service()
	if err != nil {
		return err
	}

	line, found, err := svc.RenderAlias(name)
	if err != nil {
		return fmt.Errorf("could not look up alias: %w", err)
	}
	if !found {
		ui.WarnAt(cmd.ErrOrStderr(), s.repository.Location(), "Alias '%s' not found in", name)
		return nil
	}
	return writeOutput(cmd, s, output, line)
}

func runShowTableCmd(cmd *cobra.Command, s *session) error {
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
		ui.InfoAt(out, s.repository.Location(), "No aliases found in")
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor("Aliases in"), ui.DetailColor(s.repository.Location()))
	renderAliasTable(cmd, aliases)
	return nil
}

func renderAliasTable(cmd *cobra.Command, aliases []alias.Alias) {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Alias Name", "Command"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, a := range aliases {
		table.Append([]string{ui.AliasNameColor(a.Name), ui.AliasCmdColor(a.Command)})
	}
	table.Render()
}
