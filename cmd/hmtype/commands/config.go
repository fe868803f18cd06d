package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"wisp/internal/hmconfig"
)

// Color functions for pretty output, following the palette convention the
// rest of the retrieved pack uses for CLI/REPL diagnostics.
var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

// loadConfig reads the configured config file, applies --verbose/--no-color
// flag overrides, and sets the package-level color.NoColor switch used by
// every SprintFunc above.
func loadConfig() *hmconfig.Config {
	cfg, err := hmconfig.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if verboseFlag {
		cfg.Verbose = true
	}

	isTerminal := isatty.IsTerminal(os.Stdout.Fd())
	colorOn := cfg.ColorEnabled(isTerminal) && !noColor
	color.NoColor = !colorOn

	return cfg
}
