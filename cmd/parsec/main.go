package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "parsec",
		Short: "Demos for the parsec combinator library",
	}

	rootCmd.AddCommand(newCalcCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
