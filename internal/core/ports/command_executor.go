package ports

// CommandExecutor defines an interface for running a script with a shell.
type CommandExecutor interface {
	// Execute runs script with the shell at shellPath. An empty shellPath
	// selects the executor's default shell.
	Execute(shellPath, script string) (stdout string, stderr string, err error)
}
