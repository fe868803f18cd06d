package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"wisp/internal/hmconfig"
	"wisp/internal/scenarios"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively run scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		startRepl(loadConfig(), os.Stdout)
	},
}

// startRepl mirrors the retrieved pack's liner-based REPL shape: a history
// file, multiline mode (unused here, since scenario names are one token,
// but kept for consistency with the rest of the pack's REPL wiring), and
// tab-completion over the command set and the scenario catalogue. Surface
// parsing is out of scope, so the "expression" typed at the prompt is a
// scenario name, not source to be parsed.
func startRepl(cfg *hmconfig.Config, out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(true)

	historyFile := filepath.Join(os.TempDir(), ".hmtype_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			_, _ = line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Fprintln(out, bold("hmtype"), dim("- type :help for help, :quit to exit"))

	completions := []string{":help", ":quit", ":list"}
	for _, s := range scenarios.All() {
		completions = append(completions, s.Name)
	}
	line.SetCompleter(func(partial string) (c []string) {
		for _, name := range completions {
			if strings.HasPrefix(name, partial) {
				c = append(c, name)
			}
		}
		return
	})

	for {
		input, err := line.Prompt("hmtype> ")
		if err == io.EOF {
			fmt.Fprintln(out, green("Goodbye!"))
			return
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		switch input {
		case ":help":
			fmt.Fprintln(out, "Commands: :list, :quit, or a scenario name from :list")
		case ":quit":
			fmt.Fprintln(out, green("Goodbye!"))
			return
		case ":list":
			runList(nil, nil)
		default:
			name := strings.TrimPrefix(input, ":")
			runScenario(cfg, name, out)
		}
	}
}
