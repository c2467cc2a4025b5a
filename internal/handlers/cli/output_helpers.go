package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// stdoutPath selects standard output for --output flags.
const stdoutPath = "-"

// writeOutput writes generated text to path, or to the command's stdout when
// path is "-".
func writeOutput(cmd *cobra.Command, s *session, path, text string) error {
	if path == "" || path == stdoutPath {
		_, err := io.WriteString(cmd.OutOrStdout(), text)
		return err
	}
	if err := s.deps.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	return nil
}
