package runtime

import "strings"

// List is an ordered, heterogeneous sequence of values.
type List struct {
	Elements []Value
}

func NewList(elements ...Value) *List {
	return &List{Elements: elements}
}

func (l *List) Type() ValueType { return LIST_VAL }

func (l *List) Len() int { return len(l.Elements) }

// Inspect renders "[" + the element texts + "]". Elements are concatenated
// with no separator.
func (l *List) Inspect() string {
	var out strings.Builder
	out.WriteString("[")
	for _, el := range l.Elements {
		out.WriteString(el.Inspect())
	}
	out.WriteString("]")
	return out.String()
}

// Object is a mapping from encoded key to value. The key codec in
// object_keys.go folds integer and string logical keys into the one string
// namespace, so an Object serves as both an array and a record. Iteration
// order is not guaranteed.
type Object struct {
	Pairs map[string]Value
}

func NewObject() *Object {
	return &Object{Pairs: make(map[string]Value)}
}

func (o *Object) Type() ValueType { return OBJECT_VAL }

func (o *Object) Len() int { return len(o.Pairs) }

// Set binds an Integer or String logical key to v. Any other key kind is an
// internal-consistency fault.
func (o *Object) Set(key Value, v Value) {
	o.Pairs[EncodeKey(key)] = v
}

// Get looks up an Integer or String logical key.
func (o *Object) Get(key Value) (Value, bool) {
	v, ok := o.Pairs[EncodeKey(key)]
	return v, ok
}

// Inspect renders "{}" when empty, otherwise "{ " + the "key: value" pairs
// + " }". String keys are quoted, integer keys are not, and pairs are
// concatenated with no separator.
func (o *Object) Inspect() string {
	if len(o.Pairs) == 0 {
		return "{}"
	}
	var out strings.Builder
	out.WriteString("{ ")
	for k, v := range o.Pairs {
		switch key := DecodeKey(k).(type) {
		case *String:
			out.WriteString("\"" + key.Value + "\": " + v.Inspect())
		case *Integer:
			out.WriteString(key.Inspect() + ": " + v.Inspect())
		}
	}
	out.WriteString(" }")
	return out.String()
}
