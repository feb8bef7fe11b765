// Command argtypes parses a command string into typed values, and prints
// them as JSON, YAML, HCL or text.
//
//	argtypes -b verbose -- --verbose --name Alice --count 3 --ports [80, 443]
//	argtypes -f yaml -c '--ratio 0.5 --tags [a, b]'
//	echo '--id 7' | argtypes -
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Exit codes.
const (
	exitOK    = 0
	exitParse = 1
	exitUsage = 2
)

// ExitError is an error carrying the exit code of the process.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the tool and returns its exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	cmd := newRootCommand(stdin, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}

	fmt.Fprintln(stderr, "Error:", err)

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return exitUsage
}
