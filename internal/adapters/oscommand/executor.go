package oscommand

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/AntonioJCosta/aliasdb/internal/core/ports"
)

// DefaultShell is the POSIX shell used when no shell is requested.
const DefaultShell = "/bin/sh"

// OSCommandExecutor implements the CommandExecutor interface using the operating system's shells.
type OSCommandExecutor struct{}

// NewOSCommandExecutor creates a new OSCommandExecutor.
func NewOSCommandExecutor() ports.CommandExecutor {
	return &OSCommandExecutor{}
}

// Execute runs script with `<shell> -c` and returns its stdout, stderr, and any error.
// An empty shellPath selects DefaultShell. Bare shell names such as "bash" are
// looked up in PATH.
func (e *OSCommandExecutor) Execute(shellPath, script string) (string, string, error) {
	shellExecPath, err := resolveShell(shellPath)
	if err != nil {
		return "", "", err
	}

	cmd := exec.Command(shellExecPath, "-c", script)
	cmd.Env = append(os.Environ(), "LC_ALL=C")
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err = cmd.Run()
	stdout := outBuf.String()
	stderr := errBuf.String()

	if err != nil {
		// Include stderr in the error message for better diagnostics.
		return stdout, stderr, fmt.Errorf("executing script with shell '%s': %w. Stderr: %s", shellExecPath, err, strings.TrimSpace(stderr))
	}
	return stdout, stderr, nil
}

func resolveShell(shellPath string) (string, error) {
	if shellPath == "" {
		return DefaultShell, nil
	}
	if strings.ContainsRune(shellPath, os.PathSeparator) {
		return shellPath, nil
	}
	resolved, err := exec.LookPath(shellPath)
	if err != nil {
		return "", fmt.Errorf("shell %q not found in PATH: %w", shellPath, err)
	}
	return resolved, nil
}
