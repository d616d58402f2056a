package cmd

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mlang/minilang/pkg/minilang"
)

var (
	replYellow = color.New(color.FgYellow)
	replRed    = color.New(color.FgRed)
	replCyan   = color.New(color.FgCyan)
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive type-checking session",
	Long: `Start an interactive session: each line you enter is tokenized,
parsed, and type-checked independently. There is no persistent scope
across lines, since Engine.Check always builds a fresh symbol table.`,
	RunE: func(c *cobra.Command, args []string) error {
		if noColor, _ := c.Flags().GetBool("no-color"); noColor {
			color.NoColor = true
		}
		runREPL()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL() {
	replCyan.Println("minilang repl — type an expression, or '.exit' to quit")

	rl, err := readline.New("minilang> ")
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	engine, _ := minilang.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Println("Good bye!")
			return
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Println("Good bye!")
			return
		}
		rl.SaveHistory(line)

		evalLine(engine, line)
	}
}

// evalLine runs one line through Engine.Check with panic recovery, so a
// bug surfacing as a panic in any stage degrades to a printed error
// rather than killing the session.
func evalLine(engine *minilang.Engine, line string) {
	defer func() {
		if r := recover(); r != nil {
			replRed.Printf("internal error: %v\n", r)
		}
	}()

	_, typ, derr := engine.Check(line)
	if derr != nil {
		replRed.Println(derr.Error())
		return
	}
	replYellow.Printf("OK: %s\n", typ.String())
}
