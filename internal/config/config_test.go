package config

import (
	"errors"
	"os/user"
	"path/filepath"
	"testing"

	"github.com/AntonioJCosta/aliasdb/internal/core/domain/format"
	"github.com/google/go-cmp/cmp"
)

func TestResolve(t *testing.T) {
	currentUser, err := user.Current()
	if err != nil || currentUser.HomeDir == "" {
		t.Skipf("cannot determine home directory: %v", err)
	}
	home := currentUser.HomeDir

	tests := []struct {
		name      string
		flags     Flags
		envFile   string
		envFormat string
		want      Config
		wantErr   error
	}{
		{
			name: "defaults",
			want: Config{Path: filepath.Join(home, ".config", "aliases.yaml"), Format: format.YAML, AllowMissing: true},
		},
		{
			name:  "file flag with json extension",
			flags: Flags{File: "/tmp/a.json"},
			want:  Config{Path: "/tmp/a.json", Format: format.JSON, AllowMissing: true},
		},
		{
			name:  "file flag without extension falls back to yaml",
			flags: Flags{File: "/tmp/aliases"},
			want:  Config{Path: "/tmp/aliases", Format: format.YAML, AllowMissing: true},
		},
		{
			name:  "format flag beats extension",
			flags: Flags{File: "/tmp/a.json", Format: "yml"},
			want:  Config{Path: "/tmp/a.json", Format: format.YAML, AllowMissing: true},
		},
		{
			name:  "json shorthand sets path and format",
			flags: Flags{JSONFile: "/tmp/store.txt"},
			want:  Config{Path: "/tmp/store.txt", Format: format.JSON, AllowMissing: true},
		},
		{
			name:  "yaml shorthand sets path and format",
			flags: Flags{YAMLFile: "/tmp/store.json"},
			want:  Config{Path: "/tmp/store.json", Format: format.YAML, AllowMissing: true},
		},
		{
			name:      "environment",
			envFile:   "/tmp/env.yml",
			envFormat: "json",
			want:      Config{Path: "/tmp/env.yml", Format: format.JSON, AllowMissing: true},
		},
		{
			name:    "flags beat environment",
			flags:   Flags{File: "/tmp/flag.json"},
			envFile: "/tmp/env.yaml",
			want:    Config{Path: "/tmp/flag.json", Format: format.JSON, AllowMissing: true},
		},
		{
			name:  "tilde is expanded",
			flags: Flags{File: "~/aliases.json"},
			want:  Config{Path: filepath.Join(home, "aliases.json"), Format: format.JSON, AllowMissing: true},
		},
		{
			name:  "strict disallows a missing file",
			flags: Flags{File: "/tmp/a.yaml", Strict: true},
			want:  Config{Path: "/tmp/a.yaml", Format: format.YAML, AllowMissing: false},
		},
		{
			name:    "unknown format flag",
			flags:   Flags{Format: "toml"},
			wantErr: format.ErrUnknownFormat,
		},
		{
			name:      "unknown format in environment",
			envFormat: "ini",
			wantErr:   format.ErrUnknownFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvFile, tt.envFile)
			t.Setenv(EnvFormat, tt.envFormat)

			got, err := Resolve(tt.flags)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() unexpected error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve_ConflictingPathFlags(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
	}{
		{name: "json with yaml", flags: Flags{JSONFile: "a.json", YAMLFile: "a.yaml"}},
		{name: "file with json", flags: Flags{File: "/tmp/a.yaml", JSONFile: "/tmp/b.json"}},
		{name: "file with yaml", flags: Flags{File: "/tmp/a.json", YAMLFile: "/tmp/b.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.flags)
			if !errors.Is(err, ErrConflictingFlags) {
				t.Fatalf("Resolve() error = %v, want %v", err, ErrConflictingFlags)
			}
			if diff := cmp.Diff(Config{}, got); diff != "" {
				t.Errorf("Resolve() returned a config on error (-want +got):\n%s", diff)
			}
		})
	}
}
