package argtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testArg int

const (
	argHelp testArg = iota
	argVerbose
	argAll
	argNumber
	argFile
	argOut
)

var testOpts = New(
	HelpFlag(argHelp, "-h", "--help").Help("Show this help and exit."),
	Flag(argVerbose, "-v", "--verbose").Help("Be loud."),
	Flag(argAll, "-a", "--all").Help("Do everything."),
	Value(argNumber, "value", "-n", "--number").Help("Optionally specify a number (default: 0)"),
	Positional(argFile, "file").Required().Help("Input file."),
	Positional(argOut, "out").Help("Output destination (optional)."),
)

// A handler invocation as seen by a recording handler.
type call struct {
	id       testArg
	name     string
	value    string
	hasValue bool
}

func flagCall(id testArg, name string) call {
	return call{id: id, name: name}
}

func valueCall(id testArg, name, value string) call {
	return call{id: id, name: name, value: value, hasValue: true}
}

type recorder struct {
	calls []call
	// Optional per-match behaviour; the zero value continues.
	respond func(ctx Context[testArg]) (ParseControl, error)
}

func (r *recorder) handle(ctx Context[testArg]) (ParseControl, error) {
	r.calls = append(r.calls, call{ctx.ID, ctx.Name, ctx.Value, ctx.HasValue})
	if r.respond != nil {
		return r.respond(ctx)
	}
	return Continue, nil
}

type parseCase struct {
	args  []string
	res   ParseResult
	err   error
	calls []call
}

func noErrorCase(calls []call, args ...string) parseCase {
	return parseCase{args: args, res: ContinueSuccess, calls: calls}
}

func errorCase(err error, calls []call, args ...string) parseCase {
	return parseCase{args: args, res: ExitError, err: err, calls: calls}
}

func (me parseCase) Run(t *testing.T, opts *Opts[testArg]) {
	var r recorder
	res, err := opts.ParseErr("test", me.args, r.handle)
	assert.EqualValues(t, me.err, err, "%q", me.args)
	assert.EqualValues(t, me.res, res, "%q", me.args)
	assert.EqualValues(t, me.calls, r.calls, "%q", me.args)
}

func RunCases(t *testing.T, cases []parseCase, opts *Opts[testArg]) {
	for _, _case := range cases {
		_case.Run(t, opts)
	}
}
