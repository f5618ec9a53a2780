package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/tpereira/parsec"
	"github.com/tpereira/parsec/examples/calc"
)

func newCalcCmd() *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "calc [expression]",
		Short: "Evaluate an arithmetic expression",
		Long: `Evaluate an arithmetic expression with the calc example grammar.

If no expression is provided, reads one from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if trace {
				commonlog.Configure(2, nil)
			}
			log := commonlog.GetLogger("parsec.calc")

			var src string
			if len(args) == 0 {
				raw, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				src = string(raw)
			} else {
				src = args[0]
			}
			src = strings.TrimSpace(src)

			log.Debugf("parsing %q", src)
			value, err := calc.Eval(src)
			if err != nil {
				var failure *parsec.Failure
				if errors.As(err, &failure) {
					printFailure(src, failure)
					return fmt.Errorf("parse failed")
				}
				return err
			}

			log.Debugf("evaluated %q", src)
			fmt.Println(value)
			return nil
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, "Log parser diagnostics to stderr")
	return cmd
}

func printFailure(src string, failure *parsec.Failure) {
	color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "parse error")
	fmt.Fprintln(os.Stderr, failure.Pretty())

	// point at the failing column when the input fits on one line
	if !strings.Contains(src, "\n") {
		fmt.Fprintln(os.Stderr, src)
		caret := strings.Repeat(" ", failure.Pos.Column-1) + "^"
		color.New(color.FgYellow).Fprintln(os.Stderr, caret)
	}
}
