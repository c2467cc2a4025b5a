package scriptverification

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/aliasdb/internal/adapters/shellscript"
	"github.com/AntonioJCosta/aliasdb/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasdb/internal/core/ports"
	"go.uber.org/zap"
)

type service struct {
	executor  ports.CommandExecutor
	shellPath string
	logger    *zap.Logger
}

// NewService creates a service that checks escaped commands against the shell at shellPath.
// An empty shellPath selects the executor's default shell.
// It panics if executor is nil.
func NewService(executor ports.CommandExecutor, shellPath string, logger *zap.Logger) ports.AliasVerificationService {
	if executor == nil {
		panic("command executor cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{executor: executor, shellPath: shellPath, logger: logger}
}

/*
Verify passes every command, escaped exactly as it appears in a rendered alias
line, through the shell as a double-quoted printf argument and compares what
the shell prints with the stored command. Aliases that do not come back
byte-for-byte are returned as mismatches.
*/
func (s *service) Verify(aliases []alias.Alias) ([]ports.Mismatch, error) {
	if len(aliases) == 0 {
		return nil, nil
	}

	script := buildPrintfScript(aliases)
	s.logger.Debug("Verifying aliases with shell", zap.String("shell", s.shellPath), zap.Int("count", len(aliases)))

	stdout, _, err := s.executor.Execute(s.shellPath, script)
	if err != nil {
		return nil, fmt.Errorf("failed to run verification script: %w", err)
	}

	got := strings.Split(stdout, "\x00")
	// printf terminates every argument with NUL, so the last field is empty.
	if len(got) != len(aliases)+1 || got[len(got)-1] != "" {
		return nil, fmt.Errorf("unexpected verification output: got %d fields for %d aliases", len(got)-1, len(aliases))
	}

	var mismatches []ports.Mismatch
	for i, a := range aliases {
		if got[i] != a.Command {
			s.logger.Debug("Alias did not survive the shell", zap.String("alias", a.Name), zap.String("got", got[i]))
			mismatches = append(mismatches, ports.Mismatch{Alias: a, Got: got[i]})
		}
	}
	return mismatches, nil
}

func buildPrintfScript(aliases []alias.Alias) string {
	var b strings.Builder
	b.WriteString(`printf '%s\000'`)
	for _, a := range aliases {
		b.WriteString(` "`)
		b.WriteString(shellscript.EscapeDoubleQuoted(a.Command))
		b.WriteString(`"`)
	}
	return b.String()
}
