package argtable

// ParseMap parses args and copies every bound value into a map keyed by option ID. Flags map
// to the empty string, and a repeated option keeps its last value. Matching a help option
// calls help and stops with ExitSuccess. The map is only returned with ContinueSuccess.
func ParseMap[ID comparable](
	o *Opts[ID], program string, args []string, help func(program string), onError ErrorHandler,
) (map[ID]string, ParseResult) {
	out := make(map[ID]string)
	res := o.Parse(program, args, func(ctx Context[ID]) (ParseControl, error) {
		if ctx.Option.IsHelp() {
			if help != nil {
				help(ctx.Program)
			}
			return Quit, nil
		}
		out[ctx.ID] = ctx.Value
		return Continue, nil
	}, onError)
	if res != ContinueSuccess {
		return nil, res
	}
	return out, res
}

// ParseMapEasy is ParseMap over the process arguments, with the full help written to stdout
// and errors reported like ParseEasy. Failing to write the help is reported to stderr as
// ExitError.
func ParseMapEasy[ID comparable](o *Opts[ID], opts ...parseOpt) (map[ID]string, ParseResult) {
	c := newEasyConfig(opts)
	var helpErr error
	m, res := ParseMap(o, c.program, c.args, func(program string) {
		helpErr = o.WriteFullHelp(c.stdout, program)
	}, func(program string, err error) {
		o.easyError(c, err)
	})
	if helpErr != nil {
		WriteError(c.stderr, c.program, helpErr)
		res = ExitError
	}
	c.exit(res)
	return m, res
}
