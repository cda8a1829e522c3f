/*
Computectl runs the canned automaton, regex, and SIMPLE-language
demonstrations of this module and prints their acceptance decisions and
execution traces.

Usage:

	computectl [flags]

The flags are:

	-v, --version
		Print the version and exit.

	-f, --scenarios FILE
		Load the demonstration list from the given TOML file instead of
		running the built-in scenarios.

	-i, --interactive
		After running the scenario list, start an interactive session for
		ad hoc "<regex> <string>" match checks.

	-d, --direct
		Force reading interactive input directly from stdin instead of
		through GNU readline.

No stable command-line contract is required or guaranteed (spec §6).
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/yosuke-oka/understanding-computation/internal/compute/repl"
	"github.com/yosuke-oka/understanding-computation/internal/compute/scenario"
	"github.com/yosuke-oka/understanding-computation/internal/version"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitInitError indicates a problem loading a scenario file.
	ExitInitError

	// ExitREPLError indicates an unrecoverable error in interactive mode.
	ExitREPLError
)

var (
	returnCode      = ExitSuccess
	flagVersion     = pflag.BoolP("version", "v", false, "print the version and exit")
	scenarioFile    = pflag.StringP("scenarios", "f", "", "TOML file listing demonstrations to run; defaults to the built-in list")
	flagInteractive = pflag.BoolP("interactive", "i", false, "start an interactive match-checking session after the scenario list")
	flagDirect      = pflag.BoolP("direct", "d", false, "force direct stdin reads instead of GNU readline in interactive mode")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("computectl %s\n", version.Current)
		return
	}

	scenarios := scenario.Builtin()
	if *scenarioFile != "" {
		f, err := scenario.Load(*scenarioFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			returnCode = ExitInitError
			return
		}
		scenarios = f.Scenarios
	}

	scenario.Run(os.Stdout, scenarios)

	if !*flagInteractive {
		return
	}

	var reader repl.Reader
	if *flagDirect {
		reader = repl.NewDirectReader(os.Stdin)
	} else {
		rl, err := repl.NewInteractiveReader("computectl> ")
		if err != nil {
			reader = repl.NewDirectReader(os.Stdin)
		} else {
			reader = rl
		}
	}
	defer reader.Close()

	if err := repl.Run(os.Stdout, reader); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		returnCode = ExitREPLError
		return
	}
}
