package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "craneway",
	Short: "Crane runway beam sizing tool",
	Long: `craneway - overhead crane runway beam selection

Selects the lightest adequate runway beam for an overhead crane
installation and checks it against lateral/longitudinal deflection,
bending stress and axial unity limits.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
