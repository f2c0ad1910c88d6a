package argtable

import (
	"strings"

	"github.com/huandu/xstrings"
)

// Kind is the type of an Option.
type Kind int

const (
	// A boolean-presence option that takes no value.
	KindFlag Kind = iota
	// An option that requires exactly one value, inline or in the next token.
	KindValue
	// An argument identified by its position rather than a name.
	KindPositional
)

func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindValue:
		return "value"
	case KindPositional:
		return "positional"
	default:
		return "unknown"
	}
}

// Exclude controls which generated texts an Option is omitted from. Excluded options still
// match normally.
type Exclude struct {
	ShortUsage bool
	FullHelp   bool
}

var (
	ExcludeShortUsage = Exclude{ShortUsage: true}
	ExcludeFullHelp   = Exclude{FullHelp: true}
	ExcludeAll        = Exclude{ShortUsage: true, FullHelp: true}
)

// Option is one entry in an Opts table. Options are values, and the builder methods return
// modified copies so tables can be declared in a single expression.
type Option[ID comparable] struct {
	id        ID
	kind      Kind
	names     []string
	valueHint string
	help      string
	required  bool
	isHelp    bool
	exclude   Exclude
}

func newOption[ID comparable](id ID, kind Kind, names []string, valueHint string) Option[ID] {
	if len(names) == 0 {
		panic(tableError{"option names cannot be empty"})
	}
	return Option[ID]{
		id:        id,
		kind:      kind,
		names:     names,
		valueHint: valueHint,
	}
}

// Flag returns an option that takes no value, matched by any of names.
func Flag[ID comparable](id ID, names ...string) Option[ID] {
	return newOption(id, KindFlag, names, "")
}

// HelpFlag is a Flag that is marked as the table's help option. Wrappers and the standard
// error writer use it to point the user at the full help.
func HelpFlag[ID comparable](id ID, names ...string) Option[ID] {
	o := Flag(id, names...)
	o.isHelp = true
	return o
}

// Value returns an option that requires a value. valueHint is the label shown for the value
// in generated help.
func Value[ID comparable](id ID, valueHint string, names ...string) Option[ID] {
	return newOption(id, KindValue, names, valueHint)
}

// Positional returns a positional argument. The name is only used for display.
func Positional[ID comparable](id ID, name string) Option[ID] {
	return newOption(id, KindPositional, []string{name}, "")
}

// Required marks the option as required. Parsing fails if it's never matched.
func (o Option[ID]) Required() Option[ID] {
	if o.isHelp {
		panic(tableError{"help flag cannot be made required"})
	}
	o.required = true
	return o
}

// Help sets the descriptive text shown in the full help listing.
func (o Option[ID]) Help(text string) Option[ID] {
	o.help = text
	return o
}

// Hide excludes the option from the short usage synopsis, the full help listing, or both.
// Calls accumulate.
func (o Option[ID]) Hide(e Exclude) Option[ID] {
	o.exclude.ShortUsage = o.exclude.ShortUsage || e.ShortUsage
	o.exclude.FullHelp = o.exclude.FullHelp || e.FullHelp
	return o
}

func (o Option[ID]) ID() ID { return o.id }
func (o Option[ID]) Kind() Kind { return o.kind }
func (o Option[ID]) ValueHint() string { return o.valueHint }
func (o Option[ID]) HelpText() string { return o.help }
func (o Option[ID]) IsRequired() bool { return o.required }
func (o Option[ID]) IsHelp() bool { return o.isHelp }
func (o Option[ID]) Excluded() Exclude { return o.exclude }
func (o Option[ID]) isOption() bool { return o.kind != KindPositional }
func (o Option[ID]) inShortUsage() bool { return !o.exclude.ShortUsage }
func (o Option[ID]) inFullHelp() bool { return !o.exclude.FullHelp }

// Names returns the aliases of the option, or the display name of a positional. The slice
// must not be modified.
func (o Option[ID]) Names() []string {
	return o.names
}

// FirstName returns the first alias, or the positional's name.
func (o Option[ID]) FirstName() string {
	return o.names[0]
}

// FirstLongName returns the first alias that isn't a short alias.
func (o Option[ID]) FirstLongName() (string, bool) {
	for _, n := range o.names {
		if isLongAlias(n) {
			return n, true
		}
	}
	return "", false
}

// FirstShortName returns the first alias of the "-x" form.
func (o Option[ID]) FirstShortName() (string, bool) {
	for _, n := range o.names {
		if isShortAlias(n) {
			return n, true
		}
	}
	return "", false
}

func (o Option[ID]) matchName(s string) (string, bool) {
	for _, n := range o.names {
		if n == s {
			return n, true
		}
	}
	return "", false
}

// A dash followed by exactly one character that isn't a dash.
func isShortAlias(s string) bool {
	return xstrings.Len(s) == 2 && s[0] == '-' && s[1] != '-'
}

// Anything else with a dash prefix and at least one name character after it, such as
// "--long", "--l" or the single dash "-long".
func isLongAlias(s string) bool {
	if !strings.HasPrefix(s, "-") || isShortAlias(s) {
		return false
	}
	return strings.TrimLeft(s, "-") != "" && xstrings.Len(s) >= 3
}
