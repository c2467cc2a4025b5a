package testutil

import "errors"

// MockCommandExecutor is a mock implementation of ports.CommandExecutor.
type MockCommandExecutor struct {
	ExecuteFunc func(shellPath, script string) (stdout string, stderr string, err error)
	// ExecuteCalls keeps track of the scripts passed to Execute.
	ExecuteCalls []string
}

// Execute calls the mock ExecuteFunc.
func (m *MockCommandExecutor) Execute(shellPath, script string) (string, string, error) {
	m.ExecuteCalls = append(m.ExecuteCalls, script)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(shellPath, script)
	}
	return "", "", errors.New("MockCommandExecutor.ExecuteFunc not implemented")
}
