package argtable

import (
	"io"
	"os"
	"path/filepath"
)

type easyConfig struct {
	program     string
	args        []string
	stdout      io.Writer
	stderr      io.Writer
	exitOnError bool
}

type parseOpt func(c *easyConfig)

func newEasyConfig(opts []parseOpt) easyConfig {
	c := easyConfig{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	if len(os.Args) != 0 {
		c.program = filepath.Base(os.Args[0])
		c.args = os.Args[1:]
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Exit the program with the conventional status instead of returning ExitSuccess or
// ExitError.
func ExitOnError() parseOpt {
	return func(c *easyConfig) {
		c.exitOnError = true
	}
}

// Sets the program name, normally the base name of the first argument, shown in usage and
// errors.
func Program(program string) parseOpt {
	return func(c *easyConfig) {
		c.program = program
	}
}

// Parse these arguments instead of os.Args[1:].
func Args(args []string) parseOpt {
	return func(c *easyConfig) {
		c.args = args
	}
}

// Where full help is written. Defaults to os.Stdout.
func Stdout(w io.Writer) parseOpt {
	return func(c *easyConfig) {
		c.stdout = w
	}
}

// Where errors and the short usage are written. Defaults to os.Stderr.
func Stderr(w io.Writer) parseOpt {
	return func(c *easyConfig) {
		c.stderr = w
	}
}
