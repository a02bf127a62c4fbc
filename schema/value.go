// Package schema decodes Saga 1000 response payloads into named, typed
// field values according to a per-command schema, and holds the static
// command registry itself.
package schema

import (
	"errors"
	"fmt"
)

// Kind identifies which alternative of Value is populated.
type Kind uint8

const (
	KindFloat Kind = iota
	KindInt
	KindText
	KindBits
	KindDateTime
	KindInvalid
	KindRaw
)

// Value is the decoded result of a single field: a tagged union over
// {Float, Int, Text, Bits, DateTime, Invalid, Raw}. Exactly one accessor
// is meaningful, selected by Kind.
type Value struct {
	Kind Kind

	Float    float64
	Int      int64
	Text     string
	Bits     string
	DateTime DateTime
	Raw      []byte
}

// Any returns the value held by v as an interface{}, for callers (such as
// a Sink) that want to treat all field kinds uniformly.
func (v Value) Any() any {
	switch v.Kind {
	case KindFloat:
		return v.Float
	case KindInt:
		return v.Int
	case KindText:
		return v.Text
	case KindBits:
		return v.Bits
	case KindDateTime:
		if !v.DateTime.Valid {
			return nil
		}
		return v.DateTime
	case KindInvalid:
		return nil
	default:
		return v.Raw
	}
}

// String renders v the way a human-facing record listing would: floats
// round to 4 decimal places, invalid datetimes render as the sentinel
// text, bit-strings keep their "0b..." presentation.
func (v Value) String() string {
	switch v.Kind {
	case KindFloat:
		return fmt.Sprintf("%.4f", v.Float)
	case KindInt:
		return fmt.Sprintf("%d", v.Int)
	case KindText:
		return v.Text
	case KindBits:
		return v.Bits
	case KindDateTime:
		return v.DateTime.String()
	case KindInvalid:
		return "[invalid]"
	default:
		return fmt.Sprintf("% x", v.Raw)
	}
}

// Decode errors.
var (
	// ErrWrongWidth is returned when the input slice length does not match
	// the width the type tag requires.
	ErrWrongWidth = errors.New("schema: field input has wrong width for its type")
	// ErrBadEncoding is returned for an ASCII field with no recoverable bytes.
	ErrBadEncoding = errors.New("schema: field could not be decoded as ASCII")
)
