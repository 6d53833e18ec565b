package runtime

import "fmt"

// Clone returns a deep copy of v. The environment hands out clones on every
// fetch and closure capture so callers can never alias interpreter-owned
// state.
func Clone(v Value) Value {
	switch v := v.(type) {
	case *Integer:
		return &Integer{Value: v.Value}
	case *Float:
		return &Float{Value: v.Value}
	case *Boolean:
		return nativeBoolToBoolean(v.Value)
	case *String:
		return &String{Value: v.Value}
	case *Void:
		return VOID
	case *Error:
		return ERR
	case *List:
		elements := make([]Value, len(v.Elements))
		for i, el := range v.Elements {
			elements[i] = Clone(el)
		}
		return &List{Elements: elements}
	case *Object:
		return cloneObject(v)
	case *Thread:
		return &Thread{ID: v.ID, Current: v.Current}
	case *Function:
		return &Function{Scope: cloneObject(v.Scope)}
	default:
		panic(fmt.Sprintf("runtime: cannot clone unknown value kind %s", v.Type()))
	}
}

func cloneObject(o *Object) *Object {
	if o == nil {
		return nil
	}
	pairs := make(map[string]Value, len(o.Pairs))
	for k, v := range o.Pairs {
		pairs[k] = Clone(v)
	}
	return &Object{Pairs: pairs}
}
