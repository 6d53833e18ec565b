package runtime

import (
	"strconv"

	"github.com/quonlang/quon/internal/config"
)

// Integer is a 64-bit signed integer. Arithmetic wraps on overflow.
type Integer struct {
	Value int64
}

func (i *Integer) Type() ValueType { return INTEGER_VAL }
func (i *Integer) Inspect() string { return strconv.FormatInt(i.Value, 10) }

// Float is a 64-bit IEEE 754 floating point number.
type Float struct {
	Value float64
}

func (f *Float) Type() ValueType { return FLOAT_VAL }
func (f *Float) Inspect() string { return strconv.FormatFloat(f.Value, 'g', -1, 64) }

// Boolean
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ValueType { return BOOLEAN_VAL }
func (b *Boolean) Inspect() string { return strconv.FormatBool(b.Value) }

// String is owned text. Inspect returns the text itself, unquoted; quoting
// only happens for string keys inside Object rendering.
type String struct {
	Value string
}

func (s *String) Type() ValueType { return STRING_VAL }
func (s *String) Inspect() string { return s.Value }

// Void is "no value". It is a normal value, distinct from Error.
type Void struct{}

func (v *Void) Type() ValueType { return VOID_VAL }
func (v *Void) Inspect() string { return config.VoidText }

// Error is the sentinel result of an invalid operation. It is ordinary data,
// not an exception: operators producing it never fail the computation.
type Error struct{}

func (e *Error) Type() ValueType { return ERROR_VAL }
func (e *Error) Inspect() string { return config.ErrorText }
