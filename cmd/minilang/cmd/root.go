package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "minilang",
	Short: "minilang tokenizer, parser, and type checker",
	Long: `minilang is a small expression-oriented language front end:
a tokenizer, a recursive-descent parser, and a scope-aware type checker.

It has no interpreter or bytecode backend; "typecheck" is the only
thing this CLI produces a verdict about.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("no-color", "", false, "disable colored diagnostic output")
}
