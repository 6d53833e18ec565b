package runtime

// Eq compares two values for equality without thread resolution; a Current
// thread is never equal to a defined one. Like every operator here it is
// total, returning TRUE or FALSE for all pairings.
func Eq(a, b Value) Value {
	return EqWithThreads(nil, a, b)
}

// EqWithThreads compares two values for equality, consulting res (which may
// be nil) when a Current thread identity meets a defined one.
//
// Kind-matched primitives compare by payload. Lists compare pointwise.
// Objects compare key-order-independently: equal key sets and equality per
// key. Two Functions are never equal. Mismatched kinds are never equal.
func EqWithThreads(res ThreadResolver, a, b Value) Value {
	switch l := a.(type) {
	case *Integer:
		if r, ok := b.(*Integer); ok {
			return nativeBoolToBoolean(l.Value == r.Value)
		}
	case *Float:
		if r, ok := b.(*Float); ok {
			return nativeBoolToBoolean(l.Value == r.Value)
		}
	case *Boolean:
		if r, ok := b.(*Boolean); ok {
			return nativeBoolToBoolean(l.Value == r.Value)
		}
	case *String:
		if r, ok := b.(*String); ok {
			return nativeBoolToBoolean(l.Value == r.Value)
		}
	case *Void:
		if _, ok := b.(*Void); ok {
			return TRUE
		}
	case *Error:
		if _, ok := b.(*Error); ok {
			return TRUE
		}
	case *List:
		if r, ok := b.(*List); ok {
			if len(l.Elements) != len(r.Elements) {
				return FALSE
			}
			for i := range l.Elements {
				if !isTrue(EqWithThreads(res, l.Elements[i], r.Elements[i])) {
					return FALSE
				}
			}
			return TRUE
		}
	case *Object:
		if r, ok := b.(*Object); ok {
			if len(l.Pairs) != len(r.Pairs) {
				return FALSE
			}
			for k, lv := range l.Pairs {
				rv, ok := r.Pairs[k]
				if !ok || !isTrue(EqWithThreads(res, lv, rv)) {
					return FALSE
				}
			}
			return TRUE
		}
	case *Thread:
		if r, ok := b.(*Thread); ok {
			return threadsEqual(res, l, r)
		}
	case *Function:
		if _, ok := b.(*Function); ok {
			return FALSE
		}
	}
	return FALSE
}

func threadsEqual(res ThreadResolver, l, r *Thread) *Boolean {
	switch {
	case l.Current && r.Current:
		return TRUE
	case !l.Current && !r.Current:
		return nativeBoolToBoolean(l.ID == r.ID)
	}
	// One side is the current thread, the other a defined id. Only a live
	// resolver can tell whether they coincide.
	if res != nil {
		if id, ok := res.CurrentThreadID(); ok {
			defined := l
			if l.Current {
				defined = r
			}
			return nativeBoolToBoolean(defined.ID == id)
		}
	}
	return FALSE
}

// Ne is the negation of Eq.
func Ne(a, b Value) Value {
	return NeWithThreads(nil, a, b)
}

// NeWithThreads is the negation of EqWithThreads.
func NeWithThreads(res ThreadResolver, a, b Value) Value {
	return nativeBoolToBoolean(!isTrue(EqWithThreads(res, a, b)))
}

// Ordering covers Integers, Floats and Strings (natural order) and pairs of
// defined Threads (by id). Everything else — including any comparison that
// involves the current thread, which has no defined position — is FALSE for
// all four relations, never ERR.

func Lt(a, b Value) Value {
	switch l := a.(type) {
	case *Integer:
		if r, ok := b.(*Integer); ok {
			return nativeBoolToBoolean(l.Value < r.Value)
		}
	case *Float:
		if r, ok := b.(*Float); ok {
			return nativeBoolToBoolean(l.Value < r.Value)
		}
	case *String:
		if r, ok := b.(*String); ok {
			return nativeBoolToBoolean(l.Value < r.Value)
		}
	case *Thread:
		if r, ok := b.(*Thread); ok && !l.Current && !r.Current {
			return nativeBoolToBoolean(l.ID < r.ID)
		}
	}
	return FALSE
}

func Gt(a, b Value) Value {
	switch l := a.(type) {
	case *Integer:
		if r, ok := b.(*Integer); ok {
			return nativeBoolToBoolean(l.Value > r.Value)
		}
	case *Float:
		if r, ok := b.(*Float); ok {
			return nativeBoolToBoolean(l.Value > r.Value)
		}
	case *String:
		if r, ok := b.(*String); ok {
			return nativeBoolToBoolean(l.Value > r.Value)
		}
	case *Thread:
		if r, ok := b.(*Thread); ok && !l.Current && !r.Current {
			return nativeBoolToBoolean(l.ID > r.ID)
		}
	}
	return FALSE
}

func Le(a, b Value) Value {
	switch l := a.(type) {
	case *Integer:
		if r, ok := b.(*Integer); ok {
			return nativeBoolToBoolean(l.Value <= r.Value)
		}
	case *Float:
		if r, ok := b.(*Float); ok {
			return nativeBoolToBoolean(l.Value <= r.Value)
		}
	case *String:
		if r, ok := b.(*String); ok {
			return nativeBoolToBoolean(l.Value <= r.Value)
		}
	case *Thread:
		if r, ok := b.(*Thread); ok && !l.Current && !r.Current {
			return nativeBoolToBoolean(l.ID <= r.ID)
		}
	}
	return FALSE
}

func Ge(a, b Value) Value {
	switch l := a.(type) {
	case *Integer:
		if r, ok := b.(*Integer); ok {
			return nativeBoolToBoolean(l.Value >= r.Value)
		}
	case *Float:
		if r, ok := b.(*Float); ok {
			return nativeBoolToBoolean(l.Value >= r.Value)
		}
	case *String:
		if r, ok := b.(*String); ok {
			return nativeBoolToBoolean(l.Value >= r.Value)
		}
	case *Thread:
		if r, ok := b.(*Thread); ok && !l.Current && !r.Current {
			return nativeBoolToBoolean(l.ID >= r.ID)
		}
	}
	return FALSE
}
