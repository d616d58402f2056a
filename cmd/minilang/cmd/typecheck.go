package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mlang/minilang/pkg/minilang"
)

var typecheckContext bool

var typecheckCmd = &cobra.Command{
	Use:   "typecheck [source_file]",
	Short: "Type-check a minilang program",
	Long: `Type-check a minilang program.

Reads source from the given file, or from stdin if no file is given.
On success, prints "OK: <type>" and exits 0. On the first lex, parse,
or type diagnostic, prints it to stderr and exits 1.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTypecheck,
}

func init() {
	rootCmd.AddCommand(typecheckCmd)
	typecheckCmd.Flags().BoolVar(&typecheckContext, "context", false, "show the offending source line with a caret")
}

func runTypecheck(c *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}

	noColor, _ := c.Flags().GetBool("no-color")

	engine, _ := minilang.New()
	_, typ, derr := engine.Check(source)
	if derr != nil {
		if typecheckContext {
			if noColor {
				fmt.Fprintln(os.Stderr, derr.WithContext(source))
			} else {
				fmt.Fprintln(os.Stderr, derr.WithContextColor(source))
			}
		} else {
			fmt.Fprintln(os.Stderr, derr.Error())
		}
		return fmt.Errorf("typecheck failed")
	}

	fmt.Printf("OK: %s\n", typ.String())
	return nil
}

// readSource reads from args[0] when given, else falls back to stdin.
func readSource(args []string) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("error reading file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("error reading stdin: %w", err)
	}
	return string(data), nil
}
