package argtable

import (
	"os"
)

// ParseEasy parses the process arguments. Errors are written to stderr followed by the short
// usage and, if the table has a help option, a hint to run it.
func (o *Opts[ID]) ParseEasy(handler Handler[ID], opts ...parseOpt) ParseResult {
	c := newEasyConfig(opts)
	res := o.Parse(c.program, c.args, handler, func(program string, err error) {
		o.easyError(c, err)
	})
	c.exit(res)
	return res
}

// PrintHelp renders help with hw to stdout, or where Stdout says.
func (o *Opts[ID]) PrintHelp(program string, hw HelpWriter[ID], opts ...parseOpt) error {
	c := newEasyConfig(opts)
	return hw(c.stdout, HelpContext[ID]{Opts: o, Program: program})
}

// PrintFullHelp is PrintHelp with FullHelp.
func (o *Opts[ID]) PrintFullHelp(program string, opts ...parseOpt) error {
	return o.PrintHelp(program, FullHelp[ID], opts...)
}

func (o *Opts[ID]) easyError(c easyConfig, err error) {
	ew := &errWriter{w: c.stderr}
	if e := WriteError(ew, c.program, err); e != nil {
		return
	}
	ctx := HelpContext[ID]{Opts: o, Program: c.program}
	writeShortUsage(ew, ctx)
	ew.printf("\n")
	writeHelpHint(ew, ctx)
}

func (c easyConfig) exit(res ParseResult) {
	if c.exitOnError && res != ContinueSuccess {
		os.Exit(res.ExitCode())
	}
}
