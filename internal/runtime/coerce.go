package runtime

import (
	"fmt"
	"math"
	"strconv"
)

// Like reports whether a and b are the same kind, ignoring payloads.
// Coercion uses it to short-circuit when no conversion is needed.
func Like(a, b Value) bool {
	return a.Type() == b.Type()
}

// Into coerces v to the kind of target; only the target's kind matters, its
// payload is ignored. Same-kind coercion returns v unchanged, even for Error
// and Void targets. Anything the tables below don't support yields ERR.
func Into(v Value, target Value) Value {
	if Like(v, target) {
		return v
	}
	switch target.(type) {
	case *Void:
		return VOID
	case *Error:
		return ERR
	case *Function, *Thread:
		return ERR
	case *Integer:
		return toInteger(v)
	case *Float:
		return toFloat(v)
	case *Boolean:
		return toBoolean(v)
	case *String:
		return toString(v)
	case *List:
		return toList(v)
	case *Object:
		return toObject(v)
	default:
		panic(fmt.Sprintf("runtime: coercion target of unknown kind %s", target.Type()))
	}
}

func toInteger(v Value) Value {
	switch v := v.(type) {
	case *Boolean:
		if v.Value {
			return &Integer{Value: 1}
		}
		return &Integer{Value: 0}
	case *Float:
		return &Integer{Value: truncateToInt64(v.Value)}
	case *String:
		n, err := strconv.ParseInt(v.Value, 10, 64)
		if err != nil {
			return ERR
		}
		return &Integer{Value: n}
	default:
		return ERR
	}
}

// truncateToInt64 truncates toward zero, saturating at the int64 range.
// NaN maps to 0.
func truncateToInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

func toFloat(v Value) Value {
	switch v := v.(type) {
	case *Boolean:
		if v.Value {
			return &Float{Value: 1}
		}
		return &Float{Value: 0}
	case *Integer:
		return &Float{Value: float64(v.Value)}
	case *String:
		f, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return ERR
		}
		return &Float{Value: f}
	default:
		return ERR
	}
}

func toBoolean(v Value) Value {
	switch v := v.(type) {
	case *Integer:
		return nativeBoolToBoolean(v.Value != 0)
	case *Float:
		return nativeBoolToBoolean(v.Value != 0)
	case *String:
		return nativeBoolToBoolean(len(v.Value) != 0)
	case *Void:
		return TRUE
	case *Error:
		return FALSE
	case *List:
		return nativeBoolToBoolean(len(v.Elements) != 0)
	case *Object:
		return nativeBoolToBoolean(len(v.Pairs) != 0)
	default:
		return ERR
	}
}

// toString never yields ERR: every kind has display text, and Inspect is
// exactly the stringification rule.
func toString(v Value) Value {
	return &String{Value: v.Inspect()}
}

func toList(v Value) Value {
	switch v := v.(type) {
	case *String:
		elements := make([]Value, len(v.Value))
		for i := 0; i < len(v.Value); i++ {
			elements[i] = &Integer{Value: int64(v.Value[i])}
		}
		return &List{Elements: elements}
	case *Object:
		elements := make([]Value, 0, len(v.Pairs))
		for k := range v.Pairs {
			elements = append(elements, DecodeKey(k))
		}
		return &List{Elements: elements}
	default:
		return ERR
	}
}

func toObject(v Value) Value {
	switch v := v.(type) {
	case *String:
		pairs := make(map[string]Value, len(v.Value))
		for i := 0; i < len(v.Value); i++ {
			pairs[strconv.Itoa(i)] = &Integer{Value: int64(v.Value[i])}
		}
		return &Object{Pairs: pairs}
	case *List:
		pairs := make(map[string]Value, len(v.Elements))
		for i, el := range v.Elements {
			pairs[strconv.Itoa(i)] = el
		}
		return &Object{Pairs: pairs}
	default:
		return ERR
	}
}
