package argtable

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/anacrolix/missinggo/v2"
	"golang.org/x/xerrors"
)

// HelpContext is everything needed to render help for a table.
type HelpContext[ID comparable] struct {
	Opts    *Opts[ID]
	Program string
}

// HelpWriter renders help text for a table into w. ShortUsage and FullHelp are the standard
// implementations.
type HelpWriter[ID comparable] func(w io.Writer, ctx HelpContext[ID]) error

// ErrorWriter renders a parse error into w. ErrorUsage is the standard implementation.
type ErrorWriter[ID comparable] func(w io.Writer, ctx HelpContext[ID], err error) error

var (
	_ HelpWriter[int]  = ShortUsage[int]
	_ HelpWriter[int]  = FullHelp[int]
	_ ErrorWriter[int] = ErrorUsage[int]
)

// Keeps the first write error so rendering code can write unconditionally.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (n int, err error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, ew.err = ew.w.Write(b)
	return n, ew.err
}

func (ew *errWriter) printf(format string, a ...interface{}) {
	fmt.Fprintf(ew, format, a...)
}

func newUsageTabwriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 8, 2, 3, ' ', 0)
}

// ShortUsage writes the one line synopsis, without a trailing newline:
//  Usage: program [-h|--help] [-n|--number value] <file> [out]
// Options excluded from the short usage are omitted.
func ShortUsage[ID comparable](w io.Writer, ctx HelpContext[ID]) error {
	ew := &errWriter{w: w}
	writeShortUsage(ew, ctx)
	return ew.err
}

func writeShortUsage[ID comparable](ew *errWriter, ctx HelpContext[ID]) {
	ew.printf("Usage: %s", ctx.Program)
	opts := ctx.Opts.options
	for i := range opts {
		opt := &opts[i]
		if !opt.isOption() || !opt.inShortUsage() {
			continue
		}
		l, r := "[", "]"
		if opt.required {
			l, r = "<", ">"
		}
		ew.printf(" %s%s", l, synopsisNames(ctx.Opts, opt))
		if opt.kind == KindValue && opt.valueHint != "" {
			ew.printf(" %s", opt.valueHint)
		}
		ew.printf("%s", r)
	}
	for i := range opts {
		opt := &opts[i]
		if opt.isOption() || !opt.inShortUsage() {
			continue
		}
		if opt.required {
			ew.printf(" <%s>", opt.FirstName())
		} else {
			ew.printf(" [%s]", opt.FirstName())
		}
	}
}

func synopsisNames[ID comparable](o *Opts[ID], opt *Option[ID]) string {
	short, hasShort := opt.FirstShortName()
	long, hasLong := opt.FirstLongName()
	switch {
	case hasShort && hasLong:
		return o.displayName(short) + "|" + o.displayName(long)
	case hasShort:
		return o.displayName(short)
	case hasLong:
		return o.displayName(long)
	default:
		return o.displayName(opt.FirstName())
	}
}

// FullHelp writes the short usage, the table description, and a listing of positionals and
// options with their help text. Options excluded from the full help are omitted.
func FullHelp[ID comparable](w io.Writer, ctx HelpContext[ID]) error {
	ew := &errWriter{w: w}
	writeShortUsage(ew, ctx)
	ew.printf("\n")
	if d := ctx.Opts.description; d != "" {
		ew.printf("\n%s", missinggo.Unchomp(d))
	}
	writeSection(ew, ctx.Opts, "Positional arguments", func(opt *Option[ID]) bool {
		return !opt.isOption()
	})
	writeSection(ew, ctx.Opts, "Options", func(opt *Option[ID]) bool {
		return opt.isOption()
	})
	return ew.err
}

func writeSection[ID comparable](ew *errWriter, o *Opts[ID], title string, include func(*Option[ID]) bool) {
	var tw *tabwriter.Writer
	for i := range o.options {
		opt := &o.options[i]
		if !include(opt) || !opt.inFullHelp() {
			continue
		}
		if tw == nil {
			ew.printf("\n%s:\n", title)
			tw = newUsageTabwriter(ew)
		}
		fmt.Fprintf(tw, "  %s\t%s\n", listingNames(o, opt), listingHelp(opt))
	}
	if tw != nil {
		if err := tw.Flush(); err != nil && ew.err == nil {
			ew.err = err
		}
	}
}

func listingNames[ID comparable](o *Opts[ID], opt *Option[ID]) string {
	if !opt.isOption() {
		return opt.FirstName()
	}
	names := make([]string, 0, len(opt.names))
	for _, n := range opt.names {
		names = append(names, o.displayName(n))
	}
	s := strings.Join(names, ", ")
	if opt.kind == KindValue && opt.valueHint != "" {
		s += " <" + opt.valueHint + ">"
	}
	return s
}

func listingHelp[ID comparable](opt *Option[ID]) string {
	if !opt.required {
		return opt.help
	}
	if opt.help == "" {
		return "(required)"
	}
	return opt.help + " (required)"
}

// WriteError writes the message for err prefixed by the program name. It's the formatting
// shared by ErrorUsage and custom error writers.
func WriteError(w io.Writer, program string, err error) error {
	var e error
	if program == "" {
		_, e = fmt.Fprintf(w, "%s\n", err)
	} else {
		_, e = fmt.Fprintf(w, "%s: %s\n", program, err)
	}
	return e
}

// ErrorUsage writes the error with WriteError. For missing required arguments it follows
// with the short usage, and a pointer to the help option if the table has one.
func ErrorUsage[ID comparable](w io.Writer, ctx HelpContext[ID], err error) error {
	if e := WriteError(w, ctx.Program, err); e != nil {
		return e
	}
	var pe ParseError
	if !xerrors.As(err, &pe) {
		return nil
	}
	if pe.Kind != MissingRequiredPositional && pe.Kind != MissingRequiredOption {
		return nil
	}
	ew := &errWriter{w: w}
	writeShortUsage(ew, ctx)
	ew.printf("\n")
	writeHelpHint(ew, ctx)
	return ew.err
}

func writeHelpHint[ID comparable](ew *errWriter, ctx HelpContext[ID]) {
	help, ok := ctx.Opts.HelpOption()
	if !ok {
		return
	}
	name, ok := help.FirstLongName()
	if !ok {
		name = help.FirstName()
	}
	ew.printf("Run '%s %s' to view all available options.\n", ctx.Program, ctx.Opts.displayName(name))
}

// WriteShortUsage writes the standard short usage followed by a newline.
func (o *Opts[ID]) WriteShortUsage(w io.Writer, program string) error {
	ew := &errWriter{w: w}
	writeShortUsage(ew, HelpContext[ID]{Opts: o, Program: program})
	ew.printf("\n")
	return ew.err
}

// WriteFullHelp writes the standard full help.
func (o *Opts[ID]) WriteFullHelp(w io.Writer, program string) error {
	return FullHelp(w, HelpContext[ID]{Opts: o, Program: program})
}

// WriteErrorUsage writes err the way ErrorUsage does.
func (o *Opts[ID]) WriteErrorUsage(w io.Writer, program string, err error) error {
	return ErrorUsage(w, HelpContext[ID]{Opts: o, Program: program}, err)
}
