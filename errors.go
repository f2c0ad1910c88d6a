package argtable

import (
	"fmt"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// An option-shaped token that no alias in the table matches.
	UnknownOption ErrorKind = iota
	// A value option at the end of the input with no inline value.
	MissingValue
	// A flag was given an inline value, as in "--verbose=1".
	UnexpectedValue
	// A required positional received no token.
	MissingRequiredPositional
	// A required flag or value option was never matched.
	MissingRequiredOption
	// A positional token arrived after every positional slot was filled.
	TooManyPositionals
	// The handler rejected a value.
	ValueCoercionFailed
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownOption:
		return "unknown option"
	case MissingValue:
		return "missing value"
	case UnexpectedValue:
		return "unexpected value"
	case MissingRequiredPositional:
		return "missing required positional"
	case MissingRequiredOption:
		return "missing required option"
	case TooManyPositionals:
		return "too many positionals"
	case ValueCoercionFailed:
		return "value coercion failed"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError is the error produced when a parse call fails. Name is the matched alias, the
// positional's name, or the unrecognised option. Token is the raw input token where it differs
// from Name, such as the whole cluster for an unknown short option.
type ParseError struct {
	Kind  ErrorKind
	Name  string
	Token string
	Value string
	Cause error
}

func (pe ParseError) Error() string {
	switch pe.Kind {
	case UnknownOption:
		if pe.Token != "" && pe.Token != pe.Name {
			return fmt.Sprintf("unknown option: %q in %q", pe.Name, pe.Token)
		}
		return fmt.Sprintf("unknown option: %q", pe.Name)
	case MissingValue:
		return fmt.Sprintf("option %q requires a value", pe.Name)
	case UnexpectedValue:
		return fmt.Sprintf("flag %q doesn't take a value", pe.Name)
	case MissingRequiredPositional:
		return fmt.Sprintf("missing argument: %q", pe.Name)
	case MissingRequiredOption:
		return fmt.Sprintf("missing required option: %q", pe.Name)
	case TooManyPositionals:
		return fmt.Sprintf("excess argument: %q", pe.Value)
	case ValueCoercionFailed:
		return pe.coercionMessage()
	default:
		return pe.Kind.String()
	}
}

func (pe ParseError) coercionMessage() string {
	var ce *CoercionError
	if asCoercionError(pe.Cause, &ce) {
		switch ce.Kind {
		case IntegerEmpty:
			return fmt.Sprintf("value for option %q cannot be empty", pe.Name)
		case IntegerRange:
			return fmt.Sprintf("value %q out of range for option %q", pe.Value, pe.Name)
		}
	}
	if pe.Cause == nil {
		return fmt.Sprintf("invalid value %q for option %q", pe.Value, pe.Name)
	}
	return fmt.Sprintf("invalid value %q for option %q: %s", pe.Value, pe.Name, pe.Cause)
}

func (pe ParseError) Unwrap() error {
	return pe.Cause
}

// Raised as a panic when an Opts table is declared incorrectly.
type tableError struct {
	msg string
}

func (te tableError) Error() string {
	return te.msg
}
