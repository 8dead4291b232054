// main is the entry point for the contactbook CLI.
package main

import (
	"fmt"
	"os"

	"github.com/hellperdev/contactbook/cmd"
)

func main() {
	os.Exit(run())
}

// run executes the CLI and reports the process exit code. Split from main so
// the deferred session close always runs before the process exits.
func run() int {
	defer cmd.CloseSession()

	if err := cmd.Execute(); err != nil {
		fmt.Println("❌", err)
		return 1
	}
	return 0
}
