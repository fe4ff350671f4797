package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"brilcheck/internal/bril"
	"brilcheck/internal/brilcheck/log"
)

// defaultPath is loaded when no file argument is given.
const defaultPath = "add.json"

// Exit codes returned by Execute.
const (
	exitOK        = 0
	exitFailure   = 1
	exitLoadError = 2
)

// NewRootCmd builds the brilcheck command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "brilcheck [file]",
		Short: "Load a Bril JSON program and check its shape",
		Long: `Brilcheck loads a Bril program serialized as JSON, checks that it holds a
list of functions each with a name and a list of instructions, and prints
a per-function instruction count.`,
		Example: `
# Summarize add.json in the current directory
brilcheck

# Summarize a specific program as JSON
brilcheck --json benchmarks/fib.json

# Browse the functions of a program
brilcheck -t benchmarks/fib.json
  `,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			log.Setup(debug || LoadConfig().Debug)
			_, err := ResolveCwd(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultPath
			if len(args) > 0 {
				path = args[0]
			}

			jsonOutput, _ := cmd.Flags().GetBool("json")
			markdown, _ := cmd.Flags().GetBool("markdown")
			tui, _ := cmd.Flags().GetBool("tui")

			if tui {
				return runBrowse(cmd.Context(), path)
			}

			prog, err := bril.Load(path)
			if err != nil {
				slog.Debug("Load failed", "path", path, "error", err)
				return err
			}
			slog.Debug("Loaded program", "path", path, "functions", len(prog.Functions))

			out := cmd.OutOrStdout()
			switch {
			case jsonOutput:
				return writeJSON(out, path, prog)
			case markdown:
				return writeMarkdown(out, path, prog, renderToTerminal(out))
			default:
				return writeSummary(out, path, prog)
			}
		},
	}

	rootCmd.PersistentFlags().StringP("cwd", "c", "", "Current working directory")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Debug")

	rootCmd.Flags().BoolP("json", "j", false, "Print the summary as JSON")
	rootCmd.Flags().BoolP("markdown", "m", false, "Print the summary as a markdown report")
	rootCmd.Flags().BoolP("tui", "t", false, "Browse the program interactively")
	rootCmd.MarkFlagsMutuallyExclusive("json", "markdown", "tui")

	rootCmd.AddCommand(newShowCmd(), newSchemaCmd())
	return rootCmd
}

// writeSummary prints the function count followed by one line per function.
func writeSummary(w io.Writer, path string, prog *bril.Program) error {
	s := bril.Summarize(path, prog)
	if _, err := fmt.Fprintf(w, "Loaded %s: %d function(s)\n", s.Path, len(s.Functions)); err != nil {
		return err
	}
	for _, fn := range s.Functions {
		if _, err := fmt.Fprintf(w, "- %s: %d instruction(s)\n", fn.Name, fn.Instrs); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, path string, prog *bril.Program) error {
	data, err := json.MarshalIndent(bril.Summarize(path, prog), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// renderToTerminal reports whether styled output should be written to w.
func renderToTerminal(w io.Writer) bool {
	if LoadConfig().NoColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}

// printError writes err the way every brilcheck failure is reported.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %s\n", err)
}

// exitCode maps the result of a command to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var le *bril.LoadError
	if errors.As(err, &le) {
		return exitLoadError
	}
	return exitFailure
}

// run executes the command tree with cobra alone and returns the exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(stderr, err)
	}
	return exitCode(err)
}

func Execute() {
	ctx := context.Background()

	// Bypass fang when output is being piped so nothing but the summary
	// reaches stdout.
	if !term.IsTerminal(os.Stdout.Fd()) {
		code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
		log.Close()
		os.Exit(code)
	}

	rootCmd := NewRootCmd()
	err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			printError(w, err)
		}),
	)
	log.Close()
	os.Exit(exitCode(err))
}

func ResolveCwd(cmd *cobra.Command) (string, error) {
	cwd, _ := cmd.Flags().GetString("cwd")
	if cwd != "" {
		err := os.Chdir(cwd)
		if err != nil {
			return "", fmt.Errorf("failed to change directory: %w", err)
		}
		return cwd, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	return cwd, nil
}
