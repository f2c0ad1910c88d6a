package argtable

import (
	"strings"
	"unicode/utf8"
)

type tokenKind int

const (
	positionalToken tokenKind = iota
	longToken
	shortToken
	endOfOptionsToken
)

func (k tokenKind) String() string {
	switch k {
	case positionalToken:
		return "positional"
	case longToken:
		return "long"
	case shortToken:
		return "short"
	case endOfOptionsToken:
		return "end of options"
	default:
		panic(int(k))
	}
}

// A classified input token. For long and short tokens, prefix is the flag characters as typed,
// name is the text before the first '=' rewritten with dashes so it can be looked up against
// declared aliases, and value is what follows the '='.
type token struct {
	kind     tokenKind
	raw      string
	prefix   string
	name     string
	value    string
	hasValue bool
}

// Classifies a single raw argument. Tokens starting with one of flagChars are options, two
// flag characters make a long option, and the first flag character doubled ends options.
// After the end of options everything is positional.
func classifyToken(s string, afterEnd bool, flagChars string) (t token) {
	t.raw = s
	t.name = s
	t.kind = positionalToken
	if afterEnd {
		return
	}
	n1 := flagCharLen(s, flagChars)
	if n1 == 0 || n1 == len(s) {
		// Includes "-" on its own, which conventionally means stdin.
		return
	}
	n2 := flagCharLen(s[n1:], flagChars)
	switch {
	case n2 == 0:
		t.kind = shortToken
		t.prefix = s[:n1]
		t.name = "-" + s[n1:]
	case n1+n2 == len(s) && s[:n1] == s[n1:]:
		t.kind = endOfOptionsToken
		return
	default:
		t.kind = longToken
		t.prefix = s[:n1+n2]
		t.name = "--" + s[n1+n2:]
	}
	t.splitValue()
	return
}

// Returns the byte length of the flag character s starts with, or 0.
func flagCharLen(s string, flagChars string) int {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !strings.ContainsRune(flagChars, r) {
		return 0
	}
	return size
}

func (t *token) splitValue() {
	i := strings.IndexByte(t.name, '=')
	if i == -1 {
		return
	}
	t.value = t.name[i+1:]
	t.name = t.name[:i]
	t.hasValue = true
}

// The option part of the token as the user typed it.
func (t token) typedName() string {
	if !t.hasValue {
		return t.raw
	}
	return t.raw[:len(t.raw)-len(t.value)-1]
}

// Everything after the flag characters.
func (t token) body() string {
	return t.raw[len(t.prefix):]
}
