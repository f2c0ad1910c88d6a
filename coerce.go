package argtable

import (
	"encoding"
	"fmt"
	"net"
	"net/url"
	"reflect"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/xerrors"
)

// Unmarshaler is implemented by types that parse themselves from a raw argument value.
type Unmarshaler interface {
	UnmarshalArg(s string) error
}

// CoercionKind classifies a CoercionError.
type CoercionKind int

const (
	InvalidValue CoercionKind = iota
	IntegerEmpty
	IntegerRange
	InvalidInteger
	InvalidFloat
)

// CoercionError is returned by Unmarshal when a raw value can't be converted. Handlers can
// return it as is; the parser fills in the option it was for.
type CoercionError struct {
	Kind  CoercionKind
	Value string
	Err   error
}

func (ce *CoercionError) Error() string {
	switch ce.Kind {
	case IntegerEmpty:
		return "empty integer"
	case IntegerRange:
		return fmt.Sprintf("%q out of range", ce.Value)
	case InvalidInteger:
		return fmt.Sprintf("invalid integer %q", ce.Value)
	case InvalidFloat:
		return fmt.Sprintf("invalid float %q", ce.Value)
	}
	if ce.Err != nil {
		return fmt.Sprintf("error parsing %q: %s", ce.Value, ce.Err)
	}
	return fmt.Sprintf("invalid value %q", ce.Value)
}

func (ce *CoercionError) Unwrap() error {
	return ce.Err
}

func asCoercionError(err error, target **CoercionError) bool {
	return err != nil && xerrors.As(err, target)
}

var typeMarshalFuncs = map[reflect.Type]func(settee reflect.Value, s string) error{}

// Registers f, a func(string) (T, error) or func(string) T, as the conversion for T.
func addMarshalFunc(f interface{}) {
	v := reflect.ValueOf(f)
	t := v.Type()
	setType := t.Out(0)
	typeMarshalFuncs[setType] = func(settee reflect.Value, s string) error {
		out := v.Call([]reflect.Value{reflect.ValueOf(s)})
		if len(out) > 1 {
			if i := out[1].Interface(); i != nil {
				return &CoercionError{Kind: InvalidValue, Value: s, Err: i.(error)}
			}
		}
		settee.Set(out[0])
		return nil
	}
}

func init() {
	addMarshalFunc(func(urlStr string) (*url.URL, error) {
		return url.Parse(urlStr)
	})
	addMarshalFunc(func(s string) (*net.TCPAddr, error) {
		return net.ResolveTCPAddr("tcp", s)
	})
	addMarshalFunc(func(s string) (time.Duration, error) {
		return time.ParseDuration(s)
	})
	addMarshalFunc(func(s string) (net.IP, error) {
		ip := net.ParseIP(s)
		if ip == nil {
			return nil, errors.New("not an IP address")
		}
		return ip, nil
	})
}

// Unmarshal converts s and stores it in the value target points to. Slices have the converted
// element appended, and nil pointers are allocated. Failures are *CoercionError.
func Unmarshal(target interface{}, s string) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return errors.Errorf("unmarshal target must be a non-nil pointer, got %T", target)
	}
	return unmarshalValue(v.Elem(), s)
}

func unmarshalValue(v reflect.Value, s string) error {
	if v.CanAddr() {
		switch u := v.Addr().Interface().(type) {
		case Unmarshaler:
			return u.UnmarshalArg(s)
		case encoding.TextUnmarshaler:
			if err := u.UnmarshalText([]byte(s)); err != nil {
				return &CoercionError{Kind: InvalidValue, Value: s, Err: err}
			}
			return nil
		}
	}
	if f, ok := typeMarshalFuncs[v.Type()]; ok {
		return f(v, s)
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return &CoercionError{Kind: InvalidValue, Value: s, Err: errors.Cause(err)}
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return integerError(s, err)
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return integerError(s, err)
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return &CoercionError{Kind: InvalidFloat, Value: s, Err: err}
		}
		v.SetFloat(f)
	case reflect.Slice:
		n := reflect.New(v.Type().Elem())
		if err := unmarshalValue(n.Elem(), s); err != nil {
			return err
		}
		v.Set(reflect.Append(v, n.Elem()))
	case reflect.Ptr:
		if v.IsNil() {
			nv := reflect.New(v.Type().Elem())
			if err := unmarshalValue(nv.Elem(), s); err != nil {
				return err
			}
			v.Set(nv)
			return nil
		}
		return unmarshalValue(v.Elem(), s)
	default:
		if !v.CanAddr() {
			return errors.Errorf("can't set value of type %s", v.Type())
		}
		n, err := fmt.Sscan(s, v.Addr().Interface())
		if err != nil {
			return &CoercionError{Kind: InvalidValue, Value: s, Err: errors.Wrapf(err, "scanning %s", v.Type())}
		}
		if n != 1 {
			panic(n)
		}
	}
	return nil
}

func integerError(s string, err error) error {
	ce := &CoercionError{Kind: InvalidInteger, Value: s, Err: err}
	var ne *strconv.NumError
	switch {
	case s == "":
		ce.Kind = IntegerEmpty
	case xerrors.As(err, &ne) && ne.Err == strconv.ErrRange:
		ce.Kind = IntegerRange
	}
	return ce
}
