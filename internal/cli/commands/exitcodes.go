package commands

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
)
