package testutil

import (
	"errors"
	"io"

	"github.com/AntonioJCosta/aliasdb/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasdb/internal/core/ports"
)

// MockShellScript is a mock implementation of ports.ShellScript.
type MockShellScript struct {
	RenderFunc  func(aliases []alias.Alias) string
	ParseFunc   func(r io.Reader) ([]alias.Alias, error)
	RenderCalls [][]alias.Alias
}

// Render implements the ports.ShellScript interface.
func (m *MockShellScript) Render(aliases []alias.Alias) string {
	m.RenderCalls = append(m.RenderCalls, aliases)
	if m.RenderFunc != nil {
		return m.RenderFunc(aliases)
	}
	return ""
}

// Parse implements the ports.ShellScript interface.
func (m *MockShellScript) Parse(r io.Reader) ([]alias.Alias, error) {
	if m.ParseFunc != nil {
		return m.ParseFunc(r)
	}
	return nil, errors.New("MockShellScript: ParseFunc not implemented")
}

var _ ports.ShellScript = (*MockShellScript)(nil)
