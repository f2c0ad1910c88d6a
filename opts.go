package argtable

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bradfitz/iter"
)

// Opts is an immutable, ordered table of options and positionals. Declare it once, typically
// as a package-level variable, and share it between any number of parse calls.
type Opts[ID comparable] struct {
	options     []Option[ID]
	description string
	flagChars   string
}

// New builds a table from options in declaration order. It panics if the table is malformed:
// duplicate or badly shaped aliases, a required positional after an optional one, or more than
// MaxRequiredOptions required options.
func New[ID comparable](options ...Option[ID]) *Opts[ID] {
	o := &Opts[ID]{options: options, flagChars: "-"}
	o.validate()
	return o
}

// WithDescription returns a copy of the table with a program description for the full help.
func (o *Opts[ID]) WithDescription(description string) *Opts[ID] {
	c := *o
	c.description = description
	return &c
}

func (o *Opts[ID]) Description() string {
	return o.description
}

// WithFlagChars returns a copy of the table that recognises options starting with any of
// chars instead of '-'. Aliases are still declared with dashes: with "/" the alias "-v" matches
// "/v" and "--verbose" matches "//verbose". Generated help shows the first character. It
// panics if chars is empty or contains '='.
func (o *Opts[ID]) WithFlagChars(chars string) *Opts[ID] {
	if chars == "" {
		panic(tableError{"flag characters cannot be empty"})
	}
	if strings.ContainsRune(chars, '=') {
		panic(tableError{fmt.Sprintf("flag characters contain '=': %q", chars)})
	}
	c := *o
	c.flagChars = chars
	return &c
}

// FlagChars returns the characters that introduce an option.
func (o *Opts[ID]) FlagChars() string {
	if o.flagChars == "" {
		return "-"
	}
	return o.flagChars
}

// Rewrites the leading dashes of a declared alias with the first flag character.
func (o *Opts[ID]) displayName(alias string) string {
	r, _ := utf8.DecodeRuneInString(o.FlagChars())
	if r == '-' {
		return alias
	}
	n := len(alias) - len(strings.TrimLeft(alias, "-"))
	if n > 2 {
		n = 2
	}
	return strings.Repeat(string(r), n) + alias[n:]
}

// Options returns the table entries in declaration order. The slice must not be modified.
func (o *Opts[ID]) Options() []Option[ID] {
	return o.options
}

// HelpOption returns the first option declared with HelpFlag.
func (o *Opts[ID]) HelpOption() (*Option[ID], bool) {
	for i := range iter.N(len(o.options)) {
		if o.options[i].isHelp {
			return &o.options[i], true
		}
	}
	return nil, false
}

// Lookup resolves an alias to its flag or value option.
func (o *Opts[ID]) Lookup(alias string) (*Option[ID], bool) {
	opt, _, ok := o.lookup(alias)
	return opt, ok
}

// Resolves an alias, also returning the option's ordinal among required options, or -1.
func (o *Opts[ID]) lookup(alias string) (opt *Option[ID], requiredIndex int, ok bool) {
	requiredIndex = 0
	for i := range iter.N(len(o.options)) {
		opt = &o.options[i]
		if !opt.isOption() {
			continue
		}
		if _, ok = opt.matchName(alias); ok {
			if !opt.required {
				requiredIndex = -1
			}
			return
		}
		if opt.required {
			requiredIndex++
		}
	}
	return nil, -1, false
}

// Resolves a character of a short option cluster to an option with a "-r" alias.
func (o *Opts[ID]) lookupShort(r rune) (opt *Option[ID], requiredIndex int, alias string, ok bool) {
	requiredIndex = 0
	for i := range iter.N(len(o.options)) {
		opt = &o.options[i]
		if !opt.isOption() {
			continue
		}
		for _, name := range opt.names {
			if !isShortAlias(name) {
				continue
			}
			if c, _ := utf8.DecodeRuneInString(name[1:]); c == r {
				if !opt.required {
					requiredIndex = -1
				}
				return opt, requiredIndex, name, true
			}
		}
		if opt.required {
			requiredIndex++
		}
	}
	return nil, -1, "", false
}

// Returns the index of the first positional at or after from, or -1.
func (o *Opts[ID]) nextPositional(from int) int {
	for i := from; i < len(o.options); i++ {
		if o.options[i].kind == KindPositional {
			return i
		}
	}
	return -1
}

func (o *Opts[ID]) validate() {
	var (
		numRequired     int
		optionalPosSeen string
	)
	for i := range iter.N(len(o.options)) {
		opt := &o.options[i]
		if len(opt.names) == 0 {
			panic(tableError{"option names cannot be empty"})
		}
		if opt.kind == KindPositional {
			if !opt.required {
				if optionalPosSeen == "" {
					optionalPosSeen = opt.FirstName()
				}
			} else if optionalPosSeen != "" {
				panic(tableError{fmt.Sprintf(
					"required positional %q declared after optional positional %q",
					opt.FirstName(), optionalPosSeen)})
			}
			continue
		}
		if opt.required {
			numRequired++
		}
		for j, name := range opt.names {
			if !isShortAlias(name) && !isLongAlias(name) {
				panic(tableError{fmt.Sprintf("bad option alias: %q", name)})
			}
			if strings.ContainsRune(name, '=') {
				panic(tableError{fmt.Sprintf("option alias contains '=': %q", name)})
			}
			if o.aliasDeclaredBefore(i, j) {
				panic(tableError{fmt.Sprintf("option alias %q defined more than once", name)})
			}
		}
	}
	if numRequired > MaxRequiredOptions {
		panic(tableError{fmt.Sprintf(
			"%d required options exceeds the maximum of %d", numRequired, MaxRequiredOptions)})
	}
}

// Whether the alias at nameIndex of the option at end was already declared earlier in the
// table, or earlier in the same option.
func (o *Opts[ID]) aliasDeclaredBefore(end, nameIndex int) bool {
	name := o.options[end].names[nameIndex]
	for i := range iter.N(end + 1) {
		opt := &o.options[i]
		if !opt.isOption() {
			continue
		}
		names := opt.names
		if i == end {
			names = names[:nameIndex]
		}
		for _, other := range names {
			if other == name {
				return true
			}
		}
	}
	return false
}
