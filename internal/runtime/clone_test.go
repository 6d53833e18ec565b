package runtime

import "testing"

func TestCloneIsDeep(t *testing.T) {
	inner := NewList(&Integer{Value: 1})
	original := &Object{Pairs: map[string]Value{
		"$items": inner,
		"0":      &String{Value: "keep"},
	}}

	cloned, ok := Clone(original).(*Object)
	if !ok {
		t.Fatalf("Clone(Object) did not produce an object")
	}
	if !isTrue(Eq(cloned, original)) {
		t.Fatalf("clone should start equal to the original")
	}

	// Mutating the original must not show through the clone.
	inner.Elements[0] = &Integer{Value: 99}
	original.Pairs["$extra"] = VOID

	if cloned.Len() != 2 {
		t.Errorf("clone gained an entry from the original, len = %d", cloned.Len())
	}
	items, _ := cloned.Get(&String{Value: "items"})
	if !isTrue(Eq(items, NewList(&Integer{Value: 1}))) {
		t.Errorf("clone saw a mutation of a nested list: %s", items.Inspect())
	}
}

func TestCloneFunctionSnapsScope(t *testing.T) {
	scope := NewObject()
	scope.Set(&String{Value: "x"}, &Integer{Value: 1})
	fn := &Function{Scope: scope}

	cloned := Clone(fn).(*Function)
	scope.Set(&String{Value: "x"}, &Integer{Value: 2})

	if v, _ := cloned.Scope.Get(&String{Value: "x"}); !isTrue(Eq(v, &Integer{Value: 1})) {
		t.Errorf("cloned function scope saw a later mutation: %s", v.Inspect())
	}
}

func TestCloneSingletonKinds(t *testing.T) {
	for _, v := range []Value{VOID, ERR, TRUE, FALSE} {
		if got := Clone(v); !isTrue(Eq(got, v)) {
			t.Errorf("Clone(%s) = %s, want equal value", v.Inspect(), got.Inspect())
		}
	}
	th := &Thread{ID: 5}
	cloned := Clone(th).(*Thread)
	if cloned == th || cloned.ID != 5 || cloned.Current {
		t.Errorf("Clone(Thread) = %+v, want a fresh copy of id 5", cloned)
	}
}
