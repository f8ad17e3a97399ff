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

// rootCmd's own RunE mirrors runCmd so `wave script.wv` works without the
// explicit `run` subcommand (spec §6's `wave <file>` invocation contract).
var rootCmd = &cobra.Command{
	Use:   "wave [file]",
	Short: "Wave language interpreter",
	Long: `wave is a tree-walking interpreter for the Wave scripting language:
a small, dynamically-typed, C-like language with closures, single-
inheritance classes, and arrays.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runScript,
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

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
