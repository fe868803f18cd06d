package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"wisp/internal/hm"
	"wisp/internal/hmconfig"
	"wisp/internal/scenarios"
)

var inferCmd = &cobra.Command{
	Use:   "infer <scenario>",
	Short: "Infer and print a scenario's principal type",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		runScenario(cfg, args[0], os.Stdout)
	},
}

// runScenario looks up name in the scenario catalogue, infers its type
// against cfg's environment, and writes the result - principal type or
// rendered hmerr failure - to out. It exits the process on a lookup or
// configuration failure, but a type-inference failure is printed, not
// fatal, since "this scenario fails to typecheck" is itself a valid demo.
func runScenario(cfg *hmconfig.Config, name string, out io.Writer) {
	s, ok := scenarios.Find(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: no such scenario %q (see 'hmtype list')\n", red("Error"), name)
		os.Exit(1)
	}

	env, err := cfg.Env()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}

	ctx := &hm.Context{Env: env, Verbose: cfg.Verbose}
	scheme, err := hm.GetTypeOfWithContext(ctx, s.Expr)
	if err != nil {
		fmt.Fprintf(out, "%s %s: %v\n", bold(s.Name), red("type error"), err)
		return
	}
	fmt.Fprintf(out, "%s %s %s\n", bold(s.Name), dim("::"), cyan(hm.CanonicalizeScheme(scheme).String()))
}
