// Package main provides the todols CLI: a personal task list kept in a
// local file and managed through command-line flags.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mesh-intelligence/todols/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "todols:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// sysError marks failures of the environment (directories, config files,
// the task file) as opposed to bad user input.
type sysError struct {
	err error
}

func (e sysError) Error() string { return e.err.Error() }
func (e sysError) Unwrap() error { return e.err }

// exitCode maps an error to exitSysError or exitUserError.
func exitCode(err error) int {
	var se sysError
	if errors.As(err, &se) || errors.Is(err, types.ErrIO) {
		return exitSysError
	}
	return exitUserError
}
