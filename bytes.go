package argtable

import (
	"encoding"

	"github.com/dustin/go-humanize"
)

// A nice builtin type that will unmarshal human readable byte quantities to int64. For example
// 100GB. See https://godoc.org/github.com/dustin/go-humanize.
type Bytes int64

var (
	_ Unmarshaler              = (*Bytes)(nil)
	_ encoding.TextUnmarshaler = (*Bytes)(nil)
)

func (me *Bytes) UnmarshalArg(s string) error {
	ui64, err := humanize.ParseBytes(s)
	if err != nil {
		return &CoercionError{Kind: InvalidValue, Value: s, Err: err}
	}
	*me = Bytes(ui64)
	return nil
}

func (me *Bytes) UnmarshalText(text []byte) error {
	return me.UnmarshalArg(string(text))
}

func (me Bytes) Int64() int64 {
	return int64(me)
}

func (me Bytes) String() string {
	return humanize.Bytes(uint64(me))
}
