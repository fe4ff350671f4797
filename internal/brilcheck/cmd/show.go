package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"brilcheck/internal/bril"
	"brilcheck/internal/ui/colorize"
)

func newShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show <file> <function>",
		Short: "Print one function of a program as JSON",
		Example: `
# Print the main function of add.json
brilcheck show add.json main

# Print only its instructions
brilcheck show -i add.json main
  `,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			instrsOnly, _ := cmd.Flags().GetBool("instrs")

			prog, err := bril.Load(args[0])
			if err != nil {
				return err
			}
			text, err := renderFunction(prog, args[1], instrsOnly)
			if err != nil {
				return fmt.Errorf("%w in %s", err, args[0])
			}

			out := cmd.OutOrStdout()
			if renderToTerminal(out) {
				if colored, err := colorize.ColorizeJSON(text); err == nil {
					text = colored
				}
			}
			fmt.Fprintln(out, text)
			return nil
		},
	}
	showCmd.Flags().BoolP("instrs", "i", false, "Print only the instruction list")
	return showCmd
}

// renderFunction returns the named function as indented JSON.
func renderFunction(prog *bril.Program, name string, instrsOnly bool) (string, error) {
	fn, ok := prog.Function(name)
	if !ok {
		return "", fmt.Errorf("function %q not found", name)
	}

	var v any = fn.Raw
	if instrsOnly {
		v = fn.Instrs
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal function %q: %w", name, err)
	}
	return string(data), nil
}
