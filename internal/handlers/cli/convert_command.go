package cli

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/aliasdb/internal/core/domain/format"
	"github.com/AntonioJCosta/aliasdb/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewConvertCommand creates the 'convert' subcommand.
func NewConvertCommand(s *session) *cobra.Command {
	var to, output string

	cmd := &cobra.Command{
		Use:   "convert --output <path> [--to yaml|json]",
		Short: "Write the alias file in another format.",
		Long: `Copies every alias into a new file, encoded as YAML or JSON. The format
defaults to the extension of the output path:

  aliasdb convert --output ~/.config/aliases.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvertCmd(cmd, s, to, output)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Target format: yaml or json.")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Path of the converted alias file.")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func runConvertCmd(cmd *cobra.Command, s *session, to, output string) error {
	svc, err := s.service()
	if err != nil {
		return err
	}
	if output == "" || output == stdoutPath {
		return errors.New("convert needs an output file path")
	}

	target, err := convertTarget(to, output)
	if err != nil {
		return err
	}

	dst, err := s.deps.NewRepository(output, target, true, s.logger)
	if err != nil {
		return fmt.Errorf("could not open output file: %w", err)
	}
	count, err := svc.ExportTo(dst)
	if err != nil {
		return fmt.Errorf("could not convert aliases: %w", err)
	}

	ui.SuccessAt(cmd.OutOrStdout(), dst.Location(), "Wrote %d alias(es) as %s to", count, target)
	return nil
}

func convertTarget(to, output string) (format.Format, error) {
	if to != "" {
		return format.Parse(to)
	}
	f, err := format.FromPath(output)
	if err != nil {
		return 0, fmt.Errorf("cannot tell the target format, pass --to: %w", err)
	}
	return f, nil
}
