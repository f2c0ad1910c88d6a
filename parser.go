package argtable

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/xerrors"
)

// ParseResult is the outcome of a parse call, and tells the caller how the program should
// proceed.
type ParseResult int

const (
	// Parsing succeeded and the program should continue.
	ContinueSuccess ParseResult = iota
	// Parsing stopped early on request of the handler, and the program should exit with
	// status 0. This is the usual outcome of a help flag.
	ExitSuccess
	// Parsing failed, and the program should exit with status 1.
	ExitError
)

func (r ParseResult) String() string {
	switch r {
	case ContinueSuccess:
		return "continue"
	case ExitSuccess:
		return "exit success"
	case ExitError:
		return "exit error"
	default:
		return fmt.Sprintf("ParseResult(%d)", int(r))
	}
}

// ExitCode is the process exit status conventionally associated with the result.
func (r ParseResult) ExitCode() int {
	if r == ExitError {
		return 1
	}
	return 0
}

// ParseControl is returned by a Handler to steer the parser.
type ParseControl int

const (
	// Keep consuming tokens.
	Continue ParseControl = iota
	// Stop consuming tokens, as if the input ended here. End of input checks still apply.
	Stop
	// Stop immediately and report ExitSuccess, skipping end of input checks.
	Quit
)

func (c ParseControl) String() string {
	switch c {
	case Continue:
		return "continue"
	case Stop:
		return "stop"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("ParseControl(%d)", int(c))
	}
}

// Context describes a single match passed to a Handler.
type Context[ID comparable] struct {
	Program string
	ID      ID
	Option  *Option[ID]
	// The declared alias that matched, or the positional's name. With WithFlagChars this is
	// still the dashed form.
	Name string
	// The raw value for value options and positionals. HasValue is false for flags.
	Value    string
	HasValue bool
}

// Handler is invoked once per matched option or positional, strictly in input order. Returning
// an error aborts the parse. Errors that aren't already a ParseError are reported as
// ValueCoercionFailed for the matched option and value.
type Handler[ID comparable] func(ctx Context[ID]) (ParseControl, error)

// ErrorHandler receives the error that terminated a parse call.
type ErrorHandler func(program string, err error)

// Parse matches args against the table, calling handler for each match. If parsing fails,
// onError is called with the error before ExitError is returned.
func (o *Opts[ID]) Parse(program string, args []string, handler Handler[ID], onError ErrorHandler) ParseResult {
	res, err := o.ParseErr(program, args, handler)
	if err != nil && onError != nil {
		onError(program, err)
	}
	return res
}

// ParseErr is like Parse but returns the error instead of passing it to a callback.
func (o *Opts[ID]) ParseErr(program string, args []string, handler Handler[ID]) (ParseResult, error) {
	p := parser[ID]{
		opts:    o,
		program: program,
		args:    args,
		handler: handler,
	}
	return p.parse()
}

type parser[ID comparable] struct {
	opts    *Opts[ID]
	program string
	handler Handler[ID]

	args []string
	// Index into the table from which the next positional is searched for.
	posCursor int
	afterEnd  bool
	required  requiredSet
}

func (p *parser[ID]) parse() (ParseResult, error) {
tokens:
	for len(p.args) != 0 {
		ctl, err := p.parseAny()
		if err != nil {
			return ExitError, err
		}
		switch ctl {
		case Continue:
		case Stop:
			break tokens
		case Quit:
			return ExitSuccess, nil
		default:
			panic(ctl)
		}
	}
	if err := p.checkRequired(); err != nil {
		return ExitError, err
	}
	return ContinueSuccess, nil
}

func (p *parser[ID]) next() string {
	return p.args[0]
}

func (p *parser[ID]) advance() {
	p.args = p.args[1:]
}

func (p *parser[ID]) parseAny() (ParseControl, error) {
	t := classifyToken(p.next(), p.afterEnd, p.opts.FlagChars())
	p.advance()
	switch t.kind {
	case endOfOptionsToken:
		p.afterEnd = true
		return Continue, nil
	case longToken:
		return p.parseOption(t)
	case shortToken:
		return p.parseShort(t)
	case positionalToken:
		return p.parsePos(t.raw)
	default:
		panic(t.kind)
	}
}

func (p *parser[ID]) parseOption(t token) (ParseControl, error) {
	opt, reqIdx, ok := p.opts.lookup(t.name)
	if !ok {
		return Continue, ParseError{Kind: UnknownOption, Name: t.typedName()}
	}
	return p.matched(opt, reqIdx, t.name, t.typedName(), t.value, t.hasValue)
}

// Single flag character tokens match an alias exactly, such as "-v", "-n=5" or "-seed", before
// they're treated as a cluster of short options.
func (p *parser[ID]) parseShort(t token) (ParseControl, error) {
	if _, _, ok := p.opts.lookup(t.name); ok || utf8.RuneCountInString(t.body()) == 1 {
		return p.parseOption(t)
	}
	return p.parseCluster(t)
}

// Walks "-abc" as "-a", "-b", "-c". A value option absorbs the rest of the cluster as its
// value, or the next token if it's last.
func (p *parser[ID]) parseCluster(t token) (ParseControl, error) {
	rest := t.body()
	for rest != "" {
		r, size := utf8.DecodeRuneInString(rest)
		typed := t.prefix + rest[:size]
		rest = rest[size:]
		var (
			opt    *Option[ID]
			reqIdx int
			alias  string
			ok     bool
		)
		if r != utf8.RuneError || size != 1 {
			opt, reqIdx, alias, ok = p.opts.lookupShort(r)
		}
		if !ok {
			return Continue, ParseError{Kind: UnknownOption, Name: typed, Token: t.raw}
		}
		if opt.kind == KindValue {
			if rest == "" {
				return p.matched(opt, reqIdx, alias, typed, "", false)
			}
			return p.matched(opt, reqIdx, alias, typed, strings.TrimPrefix(rest, "="), true)
		}
		if strings.HasPrefix(rest, "=") {
			return Continue, ParseError{Kind: UnexpectedValue, Name: typed, Token: t.raw, Value: rest[1:]}
		}
		ctl, err := p.matched(opt, reqIdx, alias, typed, "", false)
		if err != nil || ctl != Continue {
			return ctl, err
		}
	}
	return Continue, nil
}

// The handler sees the declared alias, errors report the name as typed.
func (p *parser[ID]) matched(opt *Option[ID], reqIdx int, alias, typed, value string, hasValue bool) (ParseControl, error) {
	if reqIdx >= 0 {
		p.required.set(reqIdx)
	}
	switch opt.kind {
	case KindFlag:
		if hasValue {
			return Continue, ParseError{Kind: UnexpectedValue, Name: typed, Value: value}
		}
		return p.call(opt, alias, typed, "", false)
	case KindValue:
		if !hasValue {
			if len(p.args) == 0 {
				return Continue, ParseError{Kind: MissingValue, Name: typed}
			}
			value = p.next()
			p.advance()
		}
		return p.call(opt, alias, typed, value, true)
	default:
		panic(opt.kind)
	}
}

func (p *parser[ID]) parsePos(s string) (ParseControl, error) {
	i := p.opts.nextPositional(p.posCursor)
	if i == -1 {
		return Continue, ParseError{Kind: TooManyPositionals, Value: s}
	}
	p.posCursor = i + 1
	opt := &p.opts.options[i]
	return p.call(opt, opt.FirstName(), opt.FirstName(), s, true)
}

func (p *parser[ID]) call(opt *Option[ID], alias, typed, value string, hasValue bool) (ParseControl, error) {
	if p.handler == nil {
		return Continue, nil
	}
	ctl, err := p.handler(Context[ID]{
		Program:  p.program,
		ID:       opt.id,
		Option:   opt,
		Name:     alias,
		Value:    value,
		HasValue: hasValue,
	})
	if err != nil {
		return ctl, handlerError(typed, value, err)
	}
	return ctl, nil
}

func handlerError(name, value string, err error) error {
	var pe ParseError
	if xerrors.As(err, &pe) {
		return err
	}
	return ParseError{Kind: ValueCoercionFailed, Name: name, Value: value, Cause: err}
}

func (p *parser[ID]) checkRequired() error {
	reqIdx := 0
	for i := range p.opts.options {
		opt := &p.opts.options[i]
		if !opt.required {
			continue
		}
		if opt.kind == KindPositional {
			if i >= p.posCursor {
				return ParseError{Kind: MissingRequiredPositional, Name: opt.FirstName()}
			}
			continue
		}
		if !p.required.has(reqIdx) {
			return ParseError{Kind: MissingRequiredOption, Name: opt.FirstName()}
		}
		reqIdx++
	}
	return nil
}
