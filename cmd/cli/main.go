package main

import (
	"fmt"
	"io"
	"os"

	"hypotest/internal/errors"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and reports a failure on stderr exactly once, prefixed with its error code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", errors.GetCode(err), err)
		return 1
	}
	return 0
}
