package argtable

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEasyErrors(t *testing.T) {
	for _, _case := range []struct {
		args []string
		msg  string
	}{
		{nil, `missing argument: "file"`},
		{[]string{"-x", "f"}, `unknown option: "-x"`},
		{[]string{"f", "-n"}, `option "-n" requires a value`},
		{[]string{"--help=yes"}, `flag "--help" doesn't take a value`},
	} {
		var stderr bytes.Buffer
		res := basicOpts.ParseEasy(nil, Program("basic"), Args(_case.args), Stderr(&stderr))
		assert.Equal(t, ExitError, res, "%q", _case.args)
		assert.Equal(t, "basic: "+_case.msg+"\n"+
			basicUsage+"\n"+
			"Run 'basic --help' to view all available options.\n",
			stderr.String())
	}
}

func TestParseEasyHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	res := basicOpts.ParseEasy(func(ctx Context[testArg]) (ParseControl, error) {
		switch ctx.ID {
		case argHelp:
			require.NoError(t, basicOpts.PrintFullHelp(ctx.Program, Stdout(&stdout)))
			return Quit, nil
		}
		return Continue, nil
	}, Program("basic"), Args([]string{"-h"}), Stderr(&stderr))
	assert.Equal(t, ExitSuccess, res)
	assert.Empty(t, stderr.String())

	var want bytes.Buffer
	require.NoError(t, basicOpts.WriteFullHelp(&want, "basic"))
	assert.Equal(t, want.String(), stdout.String())
}

func TestParseEasyDefaults(t *testing.T) {
	c := newEasyConfig([]parseOpt{Args([]string{"a"})})
	assert.NotEmpty(t, c.program)
	assert.Equal(t, []string{"a"}, c.args)
	assert.False(t, c.exitOnError)
	assert.True(t, newEasyConfig([]parseOpt{ExitOnError()}).exitOnError)
}

func TestPrintHelp(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, basicOpts.PrintHelp("basic", ShortUsage[testArg], Stdout(&stdout)))
	assert.Equal(t, basicUsage, stdout.String())

	stdout.Reset()
	require.NoError(t, basicOpts.PrintHelp("basic", func(w io.Writer, ctx HelpContext[testArg]) error {
		_, err := fmt.Fprintf(w, "%s has %d entries\n", ctx.Program, len(ctx.Opts.Options()))
		return err
	}, Stdout(&stdout)))
	assert.Equal(t, "basic has 4 entries\n", stdout.String())

	assert.Equal(t, errWriteFailed, basicOpts.PrintFullHelp("basic", Stdout(failingWriter{})))
}
