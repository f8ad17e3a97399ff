// Command wave runs Wave scripts from a file or an inline expression.
package main

import (
	"fmt"
	"os"

	"github.com/Sang-it/wave/cmd/wave/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
