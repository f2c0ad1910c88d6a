package argtable

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

var basicOpts = New(
	HelpFlag(argHelp, "-h", "--help").Help("Show this help and exit."),
	Value(argNumber, "value", "-n", "--number").Help("Optionally specify a number (default: 0)"),
	Positional(argFile, "file").Required().Help("Input file."),
	Positional(argOut, "out").Help("Output destination (optional)."),
).WithDescription("My simple utility.")

const basicUsage = "Usage: basic [-h|--help] [-n|--number value] <file> [out]"

func TestShortUsage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ShortUsage(&buf, HelpContext[testArg]{Opts: basicOpts, Program: "basic"}))
	assert.Equal(t, basicUsage, buf.String())

	buf.Reset()
	require.NoError(t, basicOpts.WriteShortUsage(&buf, "basic"))
	assert.Equal(t, basicUsage+"\n", buf.String())
}

func TestShortUsageRequiredOptions(t *testing.T) {
	opts := New(
		Value(argNumber, "n", "--number").Required(),
		Flag(argVerbose, "-v"),
		Flag(argAll, "-all").Required(),
	)
	var buf bytes.Buffer
	require.NoError(t, opts.WriteShortUsage(&buf, "p"))
	assert.Equal(t, "Usage: p <--number n> [-v] <-all>\n", buf.String())
}

func TestFullHelp(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, basicOpts.WriteFullHelp(&buf, "basic"))
	assert.Equal(t, basicUsage+"\n"+
		"\n"+
		"My simple utility.\n"+
		"\n"+
		"Positional arguments:\n"+
		"  file   Input file. (required)\n"+
		"  out    Output destination (optional).\n"+
		"\n"+
		"Options:\n"+
		"  -h, --help             Show this help and exit.\n"+
		"  -n, --number <value>   Optionally specify a number (default: 0)\n",
		buf.String())
}

func TestFullHelpNoDescriptionOrPositionals(t *testing.T) {
	opts := New(Flag(argVerbose, "-v", "--verbose").Help("Be loud."))
	var buf bytes.Buffer
	require.NoError(t, opts.WriteFullHelp(&buf, "p"))
	assert.Equal(t, "Usage: p [-v|--verbose]\n"+
		"\n"+
		"Options:\n"+
		"  -v, --verbose   Be loud.\n",
		buf.String())
}

func TestHelpIsIdempotent(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, testOpts.WriteFullHelp(&a, "test"))
	require.NoError(t, testOpts.WriteFullHelp(&b, "test"))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

// Everything after the synopsis line.
func fullListing(t *testing.T, opts *Opts[testArg]) string {
	var buf bytes.Buffer
	require.NoError(t, opts.WriteFullHelp(&buf, "p"))
	ss := strings.SplitN(buf.String(), "\n", 2)
	require.Len(t, ss, 2)
	return ss[1]
}

func shortUsage(t *testing.T, opts *Opts[testArg]) string {
	var buf bytes.Buffer
	require.NoError(t, opts.WriteShortUsage(&buf, "p"))
	return buf.String()
}

func TestExclusion(t *testing.T) {
	opts := New(
		Flag(argVerbose, "--verbose").Help("Be loud.").Hide(ExcludeFullHelp),
		Flag(argAll, "--all").Help("Do everything.").Hide(ExcludeShortUsage),
		Flag(argHelp, "--secret").Hide(ExcludeAll),
		Positional(argFile, "file").Hide(ExcludeShortUsage),
		Positional(argOut, "out").Hide(ExcludeFullHelp),
	)
	usage := shortUsage(t, opts)
	listing := fullListing(t, opts)
	assert.Equal(t, "Usage: p [--verbose] [out]\n", usage)

	assert.NotContains(t, listing, "--verbose")
	assert.Contains(t, listing, "--all")
	assert.NotContains(t, listing, "--secret")
	assert.Contains(t, listing, "file")
	assert.NotContains(t, listing, "out")

	// Hidden options still match.
	var r recorder
	res, err := opts.ParseErr("p", []string{"--secret", "--verbose", "--all", "f", "o"}, r.handle)
	require.NoError(t, err)
	assert.Equal(t, ContinueSuccess, res)
	assert.Len(t, r.calls, 5)
}

func TestExcludedSectionOmitted(t *testing.T) {
	opts := New(
		Flag(argVerbose, "-v").Hide(ExcludeFullHelp),
		Positional(argFile, "file").Help("Input."),
	)
	assert.Equal(t, "\nPositional arguments:\n  file   Input.\n", fullListing(t, opts))
}

func TestErrorUsage(t *testing.T) {
	_, err := basicOpts.ParseErr("basic", nil, nil)
	require.Error(t, err)
	var buf bytes.Buffer
	require.NoError(t, basicOpts.WriteErrorUsage(&buf, "basic", err))
	assert.Equal(t, "basic: missing argument: \"file\"\n"+
		basicUsage+"\n"+
		"Run 'basic --help' to view all available options.\n",
		buf.String())

	_, err = basicOpts.ParseErr("basic", []string{"--bogus"}, nil)
	require.Error(t, err)
	buf.Reset()
	require.NoError(t, basicOpts.WriteErrorUsage(&buf, "basic", err))
	assert.Equal(t, "basic: unknown option: \"--bogus\"\n", buf.String())
}

func TestErrorUsageWithoutHelpOption(t *testing.T) {
	opts := New(Positional(argFile, "file").Required())
	_, err := opts.ParseErr("p", nil, nil)
	var buf bytes.Buffer
	require.NoError(t, ErrorUsage(&buf, HelpContext[testArg]{Opts: opts, Program: "p"}, err))
	assert.Equal(t, "p: missing argument: \"file\"\nUsage: p <file>\n", buf.String())
}

func TestWriteError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteError(&buf, "", xerrors.New("plain")))
	require.NoError(t, WriteError(&buf, "prog", ParseError{Kind: TooManyPositionals, Value: "x"}))
	assert.Equal(t, "plain\nprog: excess argument: \"x\"\n", buf.String())
}

type failingWriter struct{}

var errWriteFailed = xerrors.New("write failed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

func TestHelpWriteErrors(t *testing.T) {
	assert.Equal(t, errWriteFailed, basicOpts.WriteFullHelp(failingWriter{}, "p"))
	assert.Equal(t, errWriteFailed, basicOpts.WriteShortUsage(failingWriter{}, "p"))
	assert.Equal(t, errWriteFailed, WriteError(failingWriter{}, "p", errWriteFailed))
}

func TestCustomHelpWriter(t *testing.T) {
	// A custom writer composed from the standard pieces.
	var custom HelpWriter[testArg] = func(w io.Writer, ctx HelpContext[testArg]) error {
		if _, err := io.WriteString(w, "custom\n"); err != nil {
			return err
		}
		return ShortUsage(w, ctx)
	}
	var buf bytes.Buffer
	require.NoError(t, custom(&buf, HelpContext[testArg]{Opts: basicOpts, Program: "basic"}))
	assert.Equal(t, "custom\n"+basicUsage, buf.String())
}

func TestHelpWithFlagChars(t *testing.T) {
	opts := basicOpts.WithFlagChars("/")
	var buf bytes.Buffer
	require.NoError(t, opts.WriteFullHelp(&buf, "basic"))
	assert.Equal(t, "Usage: basic [/h|//help] [/n|//number value] <file> [out]\n"+
		"\n"+
		"My simple utility.\n"+
		"\n"+
		"Positional arguments:\n"+
		"  file   Input file. (required)\n"+
		"  out    Output destination (optional).\n"+
		"\n"+
		"Options:\n"+
		"  /h, //help             Show this help and exit.\n"+
		"  /n, //number <value>   Optionally specify a number (default: 0)\n",
		buf.String())

	buf.Reset()
	_, err := opts.ParseErr("basic", nil, nil)
	require.NoError(t, opts.WriteErrorUsage(&buf, "basic", err))
	assert.Equal(t, "basic: missing argument: \"file\"\n"+
		"Usage: basic [/h|//help] [/n|//number value] <file> [out]\n"+
		"Run 'basic //help' to view all available options.\n",
		buf.String())
}
