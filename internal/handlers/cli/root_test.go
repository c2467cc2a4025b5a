package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AntonioJCosta/aliasdb/internal/adapters/shellscript"
	"github.com/AntonioJCosta/aliasdb/internal/config"
	"github.com/AntonioJCosta/aliasdb/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasdb/internal/core/domain/format"
	"github.com/AntonioJCosta/aliasdb/internal/core/ports"
	"github.com/AntonioJCosta/aliasdb/internal/core/services/aliasmanagement"
	"github.com/AntonioJCosta/aliasdb/internal/core/testutil"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

type verifierFunc func(aliases []alias.Alias) ([]ports.Mismatch, error)

func (f verifierFunc) Verify(aliases []alias.Alias) ([]ports.Mismatch, error) { return f(aliases) }

type openedRepo struct {
	path         string
	format       format.Format
	allowMissing bool
}

// testHarness wires the commands to in-memory repositories keyed by path.
type testHarness struct {
	repos    map[string]*testutil.MockAliasRepository
	opened   []openedRepo
	written  map[string]string
	verifier verifierFunc
}

func newTestHarness(initial map[string]string) *testHarness {
	return &testHarness{
		repos:   map[string]*testutil.MockAliasRepository{"/test/aliases.yaml": testutil.NewInMemoryAliasRepository(initial)},
		written: map[string]string{},
	}
}

func (h *testHarness) deps() Dependencies {
	return Dependencies{
		NewRepository: func(path string, f format.Format, allowMissing bool, _ *zap.Logger) (ports.AliasRepository, error) {
			h.opened = append(h.opened, openedRepo{path: path, format: f, allowMissing: allowMissing})
			repo, ok := h.repos[path]
			if !ok {
				repo = testutil.NewInMemoryAliasRepository(nil)
				h.repos[path] = repo
			}
			return repo, nil
		},
		NewManagementService: func(repo ports.AliasRepository, logger *zap.Logger) ports.AliasManagementService {
			return aliasmanagement.NewService(repo, shellscript.NewPOSIXScript(), logger)
		},
		NewVerificationService: func(string, *zap.Logger) ports.AliasVerificationService {
			return h.verifier
		},
		WriteFile: func(path string, data []byte, _ os.FileMode) error {
			h.written[path] = string(data)
			return nil
		},
	}
}

func (h *testHarness) run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv(config.EnvFile, "")
	t.Setenv(config.EnvFormat, "")

	var outBuf, errBuf bytes.Buffer
	root := NewRootCommand("test", h.deps())
	root.SetOut(&outBuf)
	root.SetErr(&errBuf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--file", "/test/aliases.yaml"}, args...))

	err = root.Execute()
	return outBuf.String(), errBuf.String(), err
}

func (h *testHarness) stored(t *testing.T, path string) map[string]string {
	t.Helper()
	store, err := h.repos[path].Load()
	if err != nil {
		t.Fatalf("Load(%s) error = %v", path, err)
	}
	return store.ToMap()
}

func TestNewRootCommand_PanicsWithoutDependencies(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewRootCommand did not panic with empty dependencies")
		}
	}()
	_ = NewRootCommand("test", Dependencies{})
}

func TestRootCommand_ResolvesAliasFile(t *testing.T) {
	h := newTestHarness(nil)
	if _, _, err := h.run(t, "", "--strict", "list"); err != nil {
		t.Fatalf("list error = %v", err)
	}
	want := []openedRepo{{path: "/test/aliases.yaml", format: format.YAML, allowMissing: false}}
	if diff := cmp.Diff(want, h.opened, cmp.AllowUnexported(openedRepo{})); diff != "" {
		t.Errorf("opened repositories mismatch (-want +got):\n%s", diff)
	}
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	h := newTestHarness(nil)
	_, _, err := h.run(t, "", "--format", "toml", "list")
	if !errors.Is(err, format.ErrUnknownFormat) {
		t.Errorf("error = %v, want %v", err, format.ErrUnknownFormat)
	}
}

func TestRootCommand_RejectsFileWithShorthand(t *testing.T) {
	for _, shorthand := range []string{"--json", "--yaml"} {
		t.Run(shorthand, func(t *testing.T) {
			h := newTestHarness(nil)
			_, _, err := h.run(t, "", shorthand, "/test/other", "list")
			if err == nil {
				t.Fatalf("--file with %s: expected an error, got nil", shorthand)
			}
			if len(h.opened) != 0 {
				t.Errorf("opened repositories = %v, want none", h.opened)
			}
		})
	}
}

func TestAddThenList(t *testing.T) {
	h := newTestHarness(map[string]string{"lst": "ls -lhr --sort time"})

	stdout, _, err := h.run(t, "", "add", "lss", "ls -lhr --sort size")
	if err != nil {
		t.Fatalf("add error = %v", err)
	}
	if !strings.Contains(stdout, "Added alias 'lss' to") || !strings.Contains(stdout, "/test/aliases.yaml") {
		t.Errorf("add output = %q, want the alias and the file it was added to", stdout)
	}

	stdout, _, err = h.run(t, "", "list")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	want := "alias lss=\"ls -lhr --sort size\"\n" +
		"alias lst=\"ls -lhr --sort time\"\n"
	if stdout != want {
		t.Errorf("list output = %q, want %q", stdout, want)
	}
}

func TestAddCommand_Replaces(t *testing.T) {
	h := newTestHarness(map[string]string{"x": "a"})

	stdout, _, err := h.run(t, "", "add", "x", "b")
	if err != nil {
		t.Fatalf("add error = %v", err)
	}
	if !strings.Contains(stdout, "Replaced alias 'x'") {
		t.Errorf("add output = %q", stdout)
	}
	if diff := cmp.Diff(map[string]string{"x": "b"}, h.stored(t, "/test/aliases.yaml")); diff != "" {
		t.Errorf("stored aliases mismatch (-want +got):\n%s", diff)
	}
}

func TestAddCommand_Args(t *testing.T) {
	h := newTestHarness(nil)
	if _, _, err := h.run(t, "", "add", "only-name"); err == nil {
		t.Error("add with one argument should fail")
	}
	if _, _, err := h.run(t, "", "add", "", "ls"); !errors.Is(err, alias.ErrEmptyName) {
		t.Errorf("add with empty name error = %v, want %v", err, alias.ErrEmptyName)
	}
}

func TestRemoveCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantStdout string
		wantStderr string
		wantStored map[string]string
	}{
		{
			name:       "existing alias",
			args:       []string{"remove", "ll"},
			wantStdout: "Removed alias 'll'",
			wantStored: map[string]string{"la": "ls -a"},
		},
		{
			name:       "rm alias of the command",
			args:       []string{"rm", "la"},
			wantStdout: "Removed alias 'la'",
			wantStored: map[string]string{"ll": "ls -l"},
		},
		{
			name:       "absent alias is not an error",
			args:       []string{"remove", "nope"},
			wantStderr: "Alias 'nope' not found",
			wantStored: map[string]string{"ll": "ls -l", "la": "ls -a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHarness(map[string]string{"ll": "ls -l", "la": "ls -a"})

			stdout, stderr, err := h.run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("remove error = %v", err)
			}
			if tt.wantStdout != "" && !strings.Contains(stdout, tt.wantStdout) {
				t.Errorf("stdout = %q, want it to contain %q", stdout, tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr, tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.wantStderr)
			}
			if diff := cmp.Diff(tt.wantStored, h.stored(t, "/test/aliases.yaml")); diff != "" {
				t.Errorf("stored aliases mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListCommand_EmptyStore(t *testing.T) {
	h := newTestHarness(nil)
	stdout, _, err := h.run(t, "", "script")
	if err != nil {
		t.Fatalf("script error = %v", err)
	}
	if stdout != "" {
		t.Errorf("script output for an empty store = %q, want empty", stdout)
	}
}

func TestListCommand_OutputFile(t *testing.T) {
	h := newTestHarness(map[string]string{"lss": "ls -lhr --sort=size; echo $HOME"})

	stdout, _, err := h.run(t, "", "list", "-o", "/tmp/aliases.sh")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want nothing when writing to a file", stdout)
	}
	want := "alias lss=\"ls -lhr --sort=size; echo \\$HOME\"\n"
	if got := h.written["/tmp/aliases.sh"]; got != want {
		t.Errorf("written script = %q, want %q", got, want)
	}
}

func TestShowCommand(t *testing.T) {
	h := newTestHarness(map[string]string{"home": `cd "$HOME"`, "ll": "ls -l"})

	t.Run("single alias", func(t *testing.T) {
		stdout, _, err := h.run(t, "", "show", "home")
		if err != nil {
			t.Fatalf("show error = %v", err)
		}
		if want := "alias home=\"cd \\\"\\$HOME\\\"\"\n"; stdout != want {
			t.Errorf("show output = %q, want %q", stdout, want)
		}
	})

	t.Run("missing alias", func(t *testing.T) {
		stdout, stderr, err := h.run(t, "", "show", "nope")
		if err != nil {
			t.Fatalf("show error = %v", err)
		}
		if stdout != "" || !strings.Contains(stderr, "Alias 'nope' not found") {
			t.Errorf("show output = %q, stderr = %q", stdout, stderr)
		}
	})

	t.Run("table", func(t *testing.T) {
		stdout, _, err := h.run(t, "", "show")
		if err != nil {
			t.Fatalf("show error = %v", err)
		}
		for _, want := range []string{"ALIAS NAME", "COMMAND", "home", `cd "$HOME"`, "ll", "ls -l"} {
			if !strings.Contains(stdout, want) {
				t.Errorf("table output missing %q:\n%s", want, stdout)
			}
		}
		if strings.Index(stdout, "home") > strings.Index(stdout, "ls -l") {
			t.Errorf("table rows are not in name order:\n%s", stdout)
		}
	})
}

func TestImportCommand(t *testing.T) {
	h := newTestHarness(map[string]string{"g": "git"})

	script := "alias ll='ls -la'\nalias up=\"cd ..\"\n"
	stdout, _, err := h.run(t, script, "import", "-")
	if err != nil {
		t.Fatalf("import error = %v", err)
	}
	if !strings.Contains(stdout, "Imported 2 alias(es)") {
		t.Errorf("import output = %q", stdout)
	}
	want := map[string]string{"g": "git", "ll": "ls -la", "up": "cd .."}
	if diff := cmp.Diff(want, h.stored(t, "/test/aliases.yaml")); diff != "" {
		t.Errorf("stored aliases mismatch (-want +got):\n%s", diff)
	}
}

func TestImportCommand_FromFile(t *testing.T) {
	h := newTestHarness(nil)
	path := filepath.Join(t.TempDir(), "aliases.sh")
	if err := os.WriteFile(path, []byte("# nothing here\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	stdout, _, err := h.run(t, "", "import", path)
	if err != nil {
		t.Fatalf("import error = %v", err)
	}
	if !strings.Contains(stdout, "No alias definitions found") {
		t.Errorf("import output = %q", stdout)
	}

	if _, _, err := h.run(t, "", "import", filepath.Join(t.TempDir(), "missing.sh")); err == nil {
		t.Error("import of a missing file should fail")
	}
}

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantPath   string
		wantFormat format.Format
		wantErr    bool
	}{
		{
			name:       "format from extension",
			args:       []string{"convert", "--output", "/out/aliases.json"},
			wantPath:   "/out/aliases.json",
			wantFormat: format.JSON,
		},
		{
			name:       "explicit target format",
			args:       []string{"convert", "--to", "yaml", "-o", "/out/aliases.txt"},
			wantPath:   "/out/aliases.txt",
			wantFormat: format.YAML,
		},
		{
			name:    "unknown extension without --to",
			args:    []string{"convert", "--output", "/out/aliases"},
			wantErr: true,
		},
		{
			name:    "missing output",
			args:    []string{"convert", "--to", "json"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := map[string]string{"lss": "ls -lhr --sort size", "q": `echo "$1"`}
			h := newTestHarness(source)

			_, _, err := h.run(t, "", tt.args...)
			if tt.wantErr {
				if err == nil {
					t.Fatal("convert expected an error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("convert error = %v", err)
			}

			last := h.opened[len(h.opened)-1]
			if last.path != tt.wantPath || last.format != tt.wantFormat {
				t.Errorf("opened %s as %s, want %s as %s", last.path, last.format, tt.wantPath, tt.wantFormat)
			}
			if diff := cmp.Diff(source, h.stored(t, tt.wantPath)); diff != "" {
				t.Errorf("converted aliases mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVerifyCommand(t *testing.T) {
	t.Run("all reproduced", func(t *testing.T) {
		h := newTestHarness(map[string]string{"ll": "ls -l"})
		h.verifier = func([]alias.Alias) ([]ports.Mismatch, error) { return nil, nil }

		stdout, _, err := h.run(t, "", "verify")
		if err != nil {
			t.Fatalf("verify error = %v", err)
		}
		if !strings.Contains(stdout, "All 1 alias(es)") {
			t.Errorf("verify output = %q", stdout)
		}
	})

	t.Run("mismatch fails", func(t *testing.T) {
		h := newTestHarness(map[string]string{"home": "echo $HOME"})
		h.verifier = func(aliases []alias.Alias) ([]ports.Mismatch, error) {
			return []ports.Mismatch{{Alias: aliases[0], Got: "echo /root"}}, nil
		}

		_, stderr, err := h.run(t, "", "verify")
		if err == nil {
			t.Fatal("verify expected an error, got nil")
		}
		if !strings.Contains(stderr, `alias home: stored "echo $HOME", shell produced "echo /root"`) {
			t.Errorf("verify stderr = %q", stderr)
		}
	})

	t.Run("empty store verifies nothing", func(t *testing.T) {
		h := newTestHarness(nil)
		h.verifier = func([]alias.Alias) ([]ports.Mismatch, error) {
			t.Error("verifier should not be called for an empty store")
			return nil, nil
		}
		if _, _, err := h.run(t, "", "verify"); err != nil {
			t.Fatalf("verify error = %v", err)
		}
	})
}
