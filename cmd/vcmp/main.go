package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/vcmp/lib/generator"
)

const version = "0.1.0"

var dryRun bool

var rootCmd = &cobra.Command{
	Use:   "vcmp",
	Short: "Accessor code generator for vcmp components",
	Long: `vcmp generates typed accessor wrappers for components built with
github.com/pthm/vcmp.

The generator scans Go packages for schema declarations bound to
component types (type Card with var cardSchema) and writes *_vc.go
files containing per-attribute getters and per-element accessors, so
templates use compile-time checked names instead of string lookups.`,
}

var generateCmd = &cobra.Command{
	Use:   "generate [packages]",
	Short: "Generate accessor code for components (e.g., ./...)",
	RunE: func(cmd *cobra.Command, args []string) error {
		patterns := args
		if len(patterns) == 0 {
			patterns = []string{"./..."}
		}
		g := generator.New(generator.Options{DryRun: dryRun})
		return g.Generate(patterns...)
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean [packages]",
	Short: "Remove generated files (*_vc.go)",
	RunE: func(cmd *cobra.Command, args []string) error {
		patterns := args
		if len(patterns) == 0 {
			patterns = []string{"./..."}
		}
		g := generator.New(generator.Options{DryRun: dryRun})
		return g.Clean(patterns...)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the vcmp version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("vcmp version %s\n", version)
	},
}

func init() {
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be generated without writing files")
	cleanCmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be removed without deleting files")
	rootCmd.AddCommand(generateCmd, cleanCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
