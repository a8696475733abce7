package commands

import (
	"log/slog"

	"github.com/ccollicutt/mostactive/pkg/config"
)

// Deps carries what commands need from the process: the loaded
// configuration, the diagnostic logger and the raw argument tokens.
type Deps struct {
	Config *config.Config
	Logger *slog.Logger

	// Args are the command-line tokens after the program name.
	Args []string
}
