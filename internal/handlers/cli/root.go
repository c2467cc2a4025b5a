package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/AntonioJCosta/aliasdb/internal/config"
	"github.com/AntonioJCosta/aliasdb/internal/core/domain/format"
	"github.com/AntonioJCosta/aliasdb/internal/core/ports"
	"github.com/AntonioJCosta/aliasdb/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

/*
Dependencies holds the constructors the commands use to reach the alias
store. They are called after the global flags are parsed, since the file
location and format are only known then.
*/
type Dependencies struct {
	NewRepository          func(path string, f format.Format, allowMissing bool, logger *zap.Logger) (ports.AliasRepository, error)
	NewManagementService   func(repo ports.AliasRepository, logger *zap.Logger) ports.AliasManagementService
	NewVerificationService func(shellPath string, logger *zap.Logger) ports.AliasVerificationService
	// WriteFile writes generated output such as rendered scripts.
	WriteFile func(path string, data []byte, perm os.FileMode) error
}

// session is filled in by the root command before any subcommand runs.
type session struct {
	deps       Dependencies
	logger     *zap.Logger
	config     config.Config
	repository ports.AliasRepository
	aliases    ports.AliasManagementService
}

func NewRootCommand(version string, deps Dependencies) *cobra.Command {
	if deps.NewRepository == nil || deps.NewManagementService == nil || deps.NewVerificationService == nil || deps.WriteFile == nil {
		panic("cli dependencies are not fully initialized")
	}

	var (
		flags   config.Flags
		verbose bool
	)
	s := &session{deps: deps, logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "aliasdb",
		Short: "aliasdb keeps your shell aliases in a YAML or JSON file.",
		Long: `aliasdb stores shell aliases in a small YAML or JSON database and
generates a POSIX shell script that defines them.

Add this to your shell configuration to load the aliases:

  eval "$(aliasdb list)"`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(verbose)
			if err != nil {
				return err
			}
			s.logger = logger
			return s.open(flags)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if s.logger != nil {
				_ = s.logger.Sync()
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.File, "file", "f", "", "Alias file to use (default ~/.config/aliases.yaml, or $"+config.EnvFile+").")
	pf.StringVar(&flags.Format, "format", "", "Alias file format: yaml or json (default from the file extension, or $"+config.EnvFormat+").")
	pf.StringVar(&flags.JSONFile, "json", "", "Read and store aliases in the given JSON file.")
	pf.StringVar(&flags.YAMLFile, "yaml", "", "Read and store aliases in the given YAML file.")
	pf.BoolVar(&flags.Strict, "strict", false, "Fail if the alias file does not exist instead of starting empty.")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")
	rootCmd.MarkFlagsMutuallyExclusive("file", "json", "yaml")

	rootCmd.AddCommand(NewAddCommand(s))
	rootCmd.AddCommand(NewRemoveCommand(s))
	rootCmd.AddCommand(NewListCommand(s))
	rootCmd.AddCommand(NewShowCommand(s))
	rootCmd.AddCommand(NewImportCommand(s))
	rootCmd.AddCommand(NewConvertCommand(s))
	rootCmd.AddCommand(NewVerifyCommand(s))

	return rootCmd
}

// open resolves the alias file and builds the management service for it.
func (s *session) open(flags config.Flags) error {
	cfg, err := config.Resolve(flags)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	s.config = cfg
	s.logger.Debug("Resolved alias file", zap.String("path", cfg.Path), zap.Stringer("format", cfg.Format), zap.Bool("allowMissing", cfg.AllowMissing))

	repo, err := s.deps.NewRepository(cfg.Path, cfg.Format, cfg.AllowMissing, s.logger)
	if err != nil {
		return fmt.Errorf("could not open alias file: %w", err)
	}
	s.repository = repo
	s.aliases = s.deps.NewManagementService(repo, s.logger)
	return nil
}

func (s *session) service() (ports.AliasManagementService, error) {
	if s.aliases == nil {
		return nil, errors.New("alias management service not initialized")
	}
	return s.aliases, nil
}
