package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/aliasdb/internal/adapters/oscommand"
	"github.com/AntonioJCosta/aliasdb/internal/adapters/shellscript"
	"github.com/AntonioJCosta/aliasdb/internal/core/domain/format"
	"github.com/AntonioJCosta/aliasdb/internal/core/ports"
	"github.com/AntonioJCosta/aliasdb/internal/core/services/aliasmanagement"
	"github.com/AntonioJCosta/aliasdb/internal/core/services/scriptverification"
	"github.com/AntonioJCosta/aliasdb/internal/handlers/cli"
	"github.com/AntonioJCosta/aliasdb/internal/handlers/ui"
	"github.com/AntonioJCosta/aliasdb/internal/repositories/aliasfile"
	"go.uber.org/zap"
)

// Version is set at build time
var Version = "dev"

func main() {
	script := shellscript.NewPOSIXScript()
	cmdExec := oscommand.NewOSCommandExecutor()

	deps := cli.Dependencies{
		NewRepository: func(path string, f format.Format, allowMissing bool, logger *zap.Logger) (ports.AliasRepository, error) {
			return aliasfile.NewRepository(path, f, aliasfile.Options{AllowMissing: allowMissing, Logger: logger})
		},
		NewManagementService: func(repo ports.AliasRepository, logger *zap.Logger) ports.AliasManagementService {
			return aliasmanagement.NewService(repo, script, logger)
		},
		NewVerificationService: func(shellPath string, logger *zap.Logger) ports.AliasVerificationService {
			return scriptverification.NewService(cmdExec, shellPath, logger)
		},
		WriteFile: aliasfile.WriteFileAtomic,
	}

	rootCmd := cli.NewRootCommand(Version, deps)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
