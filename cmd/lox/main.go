// Command lox is the driver: the thin shell around the scanner, parser,
// and evaluator. A single cobra root command's RunE dispatches on
// arguments and funnels every exit path through one os.Exit call at the
// end of main, covering this language's four pipeline-stage subcommands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vinhtc27/interpreter/internal/color"
	"github.com/vinhtc27/interpreter/internal/config"
	"github.com/vinhtc27/interpreter/internal/suggest"
)

const (
	exitSuccess  = 0
	exitLexParse = 65
	exitRuntime  = 70
	exitUsage    = 1
)

func main() {
	exitCode := exitSuccess

	rootCmd := &cobra.Command{
		Use:           "lox <tokenize|parse|evaluate|run> <filename>",
		Short:         "A tree-walking interpreter for a small scripting language",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			command, filename := args[0], args[1]
			code, err := dispatch(cmd, command, filename)
			exitCode = code
			return err
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug tracing (or set LOX_DEBUG)")
	rootCmd.PersistentFlags().Bool("watch", false, "Re-run on file change (run subcommand only)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored diagnostics")
	rootCmd.PersistentFlags().String("emit-cache", "", "Write a CBOR token cache to this path (tokenize subcommand only)")
	rootCmd.PersistentFlags().String("use-cache", "", "Load a CBOR token cache from this path if its fingerprint matches")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if exitCode == exitSuccess {
			exitCode = exitUsage
		}
	}

	os.Exit(exitCode)
}

// dispatch runs one pipeline stage end to end and returns the process
// exit code plus a usage-level error (flag/IO problems cobra should
// still report through its own error path; business-logic failures are
// reported via the contract-fixed diagnostics and carried only in the
// exit code, with a nil error).
func dispatch(cmd *cobra.Command, command, filename string) (int, error) {
	debugFlag, _ := cmd.Flags().GetBool("debug")
	if debugFlag {
		os.Setenv("LOX_DEBUG", "1")
	}

	noColorFlag, _ := cmd.Flags().GetBool("no-color")
	useColor := color.ShouldUseColor(noColorFlag)

	switch command {
	case "tokenize":
		return runTokenize(cmd, filename, useColor)
	case "parse":
		return runParse(filename, useColor)
	case "evaluate":
		return runEvaluate(cmd, filename, useColor)
	case "run":
		return runRun(cmd, filename, useColor)
	default:
		// The suggestion, if any, is printed on its own separate line so
		// callers that only check the first line of stderr still see the
		// exact "Unknown command: <cmd>" wording untouched.
		fmt.Fprintln(os.Stderr, color.Colorize(fmt.Sprintf("Unknown command: %s", command), color.Red, useColor))
		if match, ok := suggest.Closest(command, []string{"tokenize", "parse", "evaluate", "run"}); ok {
			fmt.Fprintln(os.Stderr, color.Colorize(fmt.Sprintf("Did you mean '%s'?", match), color.Yellow, useColor))
		}
		return exitUsage, nil
	}
}

func newSignalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()
	return ctx, cancel
}

func loadLimits(filename string) config.Limits {
	limits, err := config.LoadForScript(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
		return config.Default()
	}
	return limits
}
