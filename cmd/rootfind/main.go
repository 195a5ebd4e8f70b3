package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// usageError marks errors caused by bad arguments or flags.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	// cobra falls back to os.Args on nil
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	cmd, err := root.ExecuteC()
	if err == nil {
		return exitOK
	}

	_, _ = fmt.Fprintln(stderr, "rootfind: "+err.Error())

	var ue usageError
	if errors.As(err, &ue) {
		_, _ = fmt.Fprint(stderr, cmd.UsageString())
		return exitUsage
	}
	return exitFailure
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
