package runtime

import "math"

// Binary operators are total over Value: unsupported pairings yield ERR
// instead of failing the computation, so the (future) evaluator can
// propagate or branch on invalid results as ordinary data.

// Add: Int+Int and Float+Float arithmetically (Int wraps on overflow),
// Str+Str and List+List concatenate, Obj+Obj unions with the right side
// winning on key collisions.
func Add(lhs, rhs Value) Value {
	switch l := lhs.(type) {
	case *Integer:
		if r, ok := rhs.(*Integer); ok {
			return &Integer{Value: l.Value + r.Value}
		}
	case *Float:
		if r, ok := rhs.(*Float); ok {
			return &Float{Value: l.Value + r.Value}
		}
	case *String:
		if r, ok := rhs.(*String); ok {
			return &String{Value: l.Value + r.Value}
		}
	case *List:
		if r, ok := rhs.(*List); ok {
			elements := make([]Value, 0, len(l.Elements)+len(r.Elements))
			elements = append(elements, l.Elements...)
			elements = append(elements, r.Elements...)
			return &List{Elements: elements}
		}
	case *Object:
		if r, ok := rhs.(*Object); ok {
			pairs := make(map[string]Value, len(l.Pairs)+len(r.Pairs))
			for k, v := range l.Pairs {
				pairs[k] = v
			}
			for k, v := range r.Pairs {
				pairs[k] = v
			}
			return &Object{Pairs: pairs}
		}
	}
	return ERR
}

func Sub(lhs, rhs Value) Value {
	switch l := lhs.(type) {
	case *Integer:
		if r, ok := rhs.(*Integer); ok {
			return &Integer{Value: l.Value - r.Value}
		}
	case *Float:
		if r, ok := rhs.(*Float); ok {
			return &Float{Value: l.Value - r.Value}
		}
	}
	return ERR
}

func Mul(lhs, rhs Value) Value {
	switch l := lhs.(type) {
	case *Integer:
		if r, ok := rhs.(*Integer); ok {
			return &Integer{Value: l.Value * r.Value}
		}
	case *Float:
		if r, ok := rhs.(*Float); ok {
			return &Float{Value: l.Value * r.Value}
		}
	}
	return ERR
}

// Div divides. Integer division by zero is ERR, not a fault, and
// MinInt64 / -1 wraps to MinInt64. Float division follows IEEE 754.
func Div(lhs, rhs Value) Value {
	switch l := lhs.(type) {
	case *Integer:
		if r, ok := rhs.(*Integer); ok {
			if r.Value == 0 {
				return ERR
			}
			if l.Value == math.MinInt64 && r.Value == -1 {
				return &Integer{Value: math.MinInt64}
			}
			return &Integer{Value: l.Value / r.Value}
		}
	case *Float:
		if r, ok := rhs.(*Float); ok {
			return &Float{Value: l.Value / r.Value}
		}
	}
	return ERR
}

// Mod takes the remainder, truncated toward zero. Integer modulo by zero is
// ERR and MinInt64 % -1 wraps to 0.
func Mod(lhs, rhs Value) Value {
	switch l := lhs.(type) {
	case *Integer:
		if r, ok := rhs.(*Integer); ok {
			if r.Value == 0 {
				return ERR
			}
			if l.Value == math.MinInt64 && r.Value == -1 {
				return &Integer{Value: 0}
			}
			return &Integer{Value: l.Value % r.Value}
		}
	case *Float:
		if r, ok := rhs.(*Float); ok {
			return &Float{Value: math.Mod(l.Value, r.Value)}
		}
	}
	return ERR
}

// And is bitwise on Integers, logical on Booleans.
func And(lhs, rhs Value) Value {
	switch l := lhs.(type) {
	case *Integer:
		if r, ok := rhs.(*Integer); ok {
			return &Integer{Value: l.Value & r.Value}
		}
	case *Boolean:
		if r, ok := rhs.(*Boolean); ok {
			return nativeBoolToBoolean(l.Value && r.Value)
		}
	}
	return ERR
}

// Or is bitwise on Integers, logical on Booleans.
func Or(lhs, rhs Value) Value {
	switch l := lhs.(type) {
	case *Integer:
		if r, ok := rhs.(*Integer); ok {
			return &Integer{Value: l.Value | r.Value}
		}
	case *Boolean:
		if r, ok := rhs.(*Boolean); ok {
			return nativeBoolToBoolean(l.Value || r.Value)
		}
	}
	return ERR
}

// Xor is bitwise on Integers, logical (inequality) on Booleans.
func Xor(lhs, rhs Value) Value {
	switch l := lhs.(type) {
	case *Integer:
		if r, ok := rhs.(*Integer); ok {
			return &Integer{Value: l.Value ^ r.Value}
		}
	case *Boolean:
		if r, ok := rhs.(*Boolean); ok {
			return nativeBoolToBoolean(l.Value != r.Value)
		}
	}
	return ERR
}

// Not is the bitwise complement of an Integer or the negation of a Boolean.
func Not(v Value) Value {
	switch v := v.(type) {
	case *Integer:
		return &Integer{Value: ^v.Value}
	case *Boolean:
		return nativeBoolToBoolean(!v.Value)
	}
	return ERR
}

// Index reads an element. Lists take a nonnegative in-range Integer; Objects
// take an Integer or String logical key through the codec. Out-of-range
// indices, missing keys, and every other pairing are ERR.
func Index(lhs, rhs Value) Value {
	switch l := lhs.(type) {
	case *List:
		idx, ok := rhs.(*Integer)
		if !ok || idx.Value < 0 || idx.Value >= int64(len(l.Elements)) {
			return ERR
		}
		return l.Elements[idx.Value]
	case *Object:
		// Validate the key kind here: the codec treats anything else as a
		// caller bug and panics.
		switch rhs.(type) {
		case *Integer, *String:
		default:
			return ERR
		}
		if v, ok := l.Pairs[EncodeKey(rhs)]; ok {
			return v
		}
		return ERR
	}
	return ERR
}
