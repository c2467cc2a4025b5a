/*
Package config resolves where the alias store lives and how it is encoded,
from command-line flags, environment variables and defaults.
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/aliasdb/internal/core/domain/format"
)

// Environment variables consulted when the corresponding flag is not set.
const (
	EnvFile   = "ALIASDB_FILE"
	EnvFormat = "ALIASDB_FORMAT"
)

const (
	defaultDir      = ".config"
	defaultFilename = "aliases.yaml"
)

// ErrConflictingFlags is returned when more than one flag names the alias file.
var ErrConflictingFlags = errors.New("flags cannot be used together")

// Flags holds the raw values of the global command-line flags.
type Flags struct {
	File     string // --file
	Format   string // --format
	JSONFile string // --json
	YAMLFile string // --yaml
	Strict   bool   // --strict
}

// Config is the resolved location and encoding of the alias store.
type Config struct {
	Path         string
	Format       format.Format
	AllowMissing bool
}

/*
Resolve combines flags, environment and defaults into a Config.

The path is taken from --file, --json or --yaml (at most one of them may be
set), then $ALIASDB_FILE, and finally ~/.config/aliases.yaml. The format is taken from --format, then the
--json or --yaml shorthand, then $ALIASDB_FORMAT, then the file extension,
and falls back to YAML.
*/
func Resolve(flags Flags) (Config, error) {
	switch {
	case flags.JSONFile != "" && flags.YAMLFile != "":
		return Config{}, fmt.Errorf("%w: --json and --yaml", ErrConflictingFlags)
	case flags.File != "" && flags.JSONFile != "":
		return Config{}, fmt.Errorf("%w: --file and --json", ErrConflictingFlags)
	case flags.File != "" && flags.YAMLFile != "":
		return Config{}, fmt.Errorf("%w: --file and --yaml", ErrConflictingFlags)
	}

	path, err := resolvePath(flags)
	if err != nil {
		return Config{}, err
	}
	f, err := resolveFormat(flags, path)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Path:         path,
		Format:       f,
		AllowMissing: !flags.Strict,
	}, nil
}

// DefaultPath returns ~/.config/aliases.yaml for the current user.
func DefaultPath() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, defaultDir, defaultFilename), nil
}

func resolvePath(flags Flags) (string, error) {
	var path string
	switch {
	case flags.File != "":
		path = flags.File
	case flags.JSONFile != "":
		path = flags.JSONFile
	case flags.YAMLFile != "":
		path = flags.YAMLFile
	case os.Getenv(EnvFile) != "":
		path = os.Getenv(EnvFile)
	default:
		return DefaultPath()
	}
	return expandHome(path)
}

func resolveFormat(flags Flags, path string) (format.Format, error) {
	switch {
	case flags.Format != "":
		return parseFormat("--format", flags.Format)
	case flags.JSONFile != "":
		return format.JSON, nil
	case flags.YAMLFile != "":
		return format.YAML, nil
	case os.Getenv(EnvFormat) != "":
		return parseFormat(EnvFormat, os.Getenv(EnvFormat))
	}
	if f, err := format.FromPath(path); err == nil {
		return f, nil
	}
	return format.YAML, nil
}

func parseFormat(source, name string) (format.Format, error) {
	f, err := format.Parse(name)
	if err != nil {
		return 0, fmt.Errorf("invalid format from %s: %w", source, err)
	}
	return f, nil
}

// expandHome replaces a leading "~/" with the current user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func homeDir() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get current user: %w", err)
	}
	if usr.HomeDir == "" {
		return "", errors.New("home directory of the current user is not set")
	}
	return usr.HomeDir, nil
}
