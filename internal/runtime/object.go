// Package runtime implements the quon value model: the closed set of runtime
// value kinds, coercion between kinds, the operator semantics over them, and
// the key codec that lets Object serve as both an array and a record.
//
// Two failure classes run through this package and must not be conflated.
// Invalid operations (wrong operand kinds, failed parses, missing keys) yield
// the first-class ERR value, which propagates as ordinary data. Violations of
// representation invariants (malformed object keys, unknown value kinds) are
// bugs in a collaborating component and panic.
package runtime

// ValueType tags one of the closed set of value kinds.
type ValueType string

const (
	INTEGER_VAL  = "INTEGER"
	FLOAT_VAL    = "FLOAT"
	BOOLEAN_VAL  = "BOOLEAN"
	STRING_VAL   = "STRING"
	VOID_VAL     = "VOID"
	ERROR_VAL    = "ERROR"
	LIST_VAL     = "LIST"
	OBJECT_VAL   = "OBJECT"
	THREAD_VAL   = "THREAD"
	FUNCTION_VAL = "FUNCTION"
)

// Value is the representation of every quon datum. The variant set is closed:
// exactly the ten kinds above exist, and every operator and coercion in this
// package handles all pairings of them.
type Value interface {
	Type() ValueType

	// Inspect renders the value as display text. Kind-specific formats are
	// documented on each variant; List and Object concatenate their parts
	// with no separator, which the language depends on.
	Inspect() string
}

var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
	VOID  = &Void{}
	ERR   = &Error{}
)

func nativeBoolToBoolean(b bool) *Boolean {
	if b {
		return TRUE
	}
	return FALSE
}

func isTrue(v Value) bool {
	b, ok := v.(*Boolean)
	return ok && b.Value
}
