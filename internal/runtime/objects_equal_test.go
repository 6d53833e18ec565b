package runtime

import "testing"

type fixedThread int64

func (f fixedThread) CurrentThreadID() (int64, bool) { return int64(f), true }

type unknownThread struct{}

func (unknownThread) CurrentThreadID() (int64, bool) { return 0, false }

func TestEq(t *testing.T) {
	fn := &Function{Scope: NewObject()}
	tests := []struct {
		name string
		a    Value
		b    Value
		want Value
	}{
		{"equal integers", &Integer{Value: 3}, &Integer{Value: 3}, TRUE},
		{"unequal integers", &Integer{Value: 3}, &Integer{Value: 4}, FALSE},
		{"equal floats", &Float{Value: 0.5}, &Float{Value: 0.5}, TRUE},
		{"equal strings", &String{Value: "a"}, &String{Value: "a"}, TRUE},
		{"equal booleans", TRUE, &Boolean{Value: true}, TRUE},
		{"void equals void", VOID, &Void{}, TRUE},
		{"error equals error", ERR, &Error{}, TRUE},
		{"integer never equals float", &Integer{Value: 1}, &Float{Value: 1}, FALSE},
		{"void never equals error", VOID, ERR, FALSE},
		{
			"equal lists",
			NewList(&Integer{Value: 1}, &Integer{Value: 2}),
			NewList(&Integer{Value: 1}, &Integer{Value: 2}),
			TRUE,
		},
		{
			"prefix list is not equal",
			NewList(&Integer{Value: 1}, &Integer{Value: 2}),
			NewList(&Integer{Value: 1}, &Integer{Value: 2}, &Integer{Value: 3}),
			FALSE,
		},
		{
			"nested list mismatch",
			NewList(NewList(&Integer{Value: 1})),
			NewList(NewList(&Integer{Value: 2})),
			FALSE,
		},
		{"defined threads equal", &Thread{ID: 3}, &Thread{ID: 3}, TRUE},
		{"defined threads unequal", &Thread{ID: 3}, &Thread{ID: 4}, FALSE},
		{"current threads equal", &Thread{Current: true}, &Thread{Current: true}, TRUE},
		{"current vs defined without resolver", &Thread{Current: true}, &Thread{ID: 3}, FALSE},
		{"a function never equals another", &Function{}, &Function{}, FALSE},
		{"a function never equals itself", fn, fn, FALSE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Eq(tt.a, tt.b); got != tt.want {
				t.Errorf("Eq(%s, %s) = %s, want %s", tt.a.Inspect(), tt.b.Inspect(), got.Inspect(), tt.want.Inspect())
			}
			// Eq is symmetric in every supported pairing.
			if got := Eq(tt.b, tt.a); got != tt.want {
				t.Errorf("Eq(%s, %s) = %s, want %s", tt.b.Inspect(), tt.a.Inspect(), got.Inspect(), tt.want.Inspect())
			}
		})
	}
}

// Object equality ignores key order: equal key sets, equal values per key.
func TestEqObjects(t *testing.T) {
	a := &Object{Pairs: map[string]Value{
		"$a": &Integer{Value: 1},
		"0":  NewList(&Integer{Value: 2}),
	}}
	b := &Object{Pairs: map[string]Value{
		"0":  NewList(&Integer{Value: 2}),
		"$a": &Integer{Value: 1},
	}}
	if got := Eq(a, b); got != TRUE {
		t.Errorf("Eq over same entries = %s, want true", got.Inspect())
	}

	differentValue := &Object{Pairs: map[string]Value{
		"$a": &Integer{Value: 1},
		"0":  NewList(&Integer{Value: 3}),
	}}
	if got := Eq(a, differentValue); got != FALSE {
		t.Errorf("Eq over different values = %s, want false", got.Inspect())
	}

	differentKeys := &Object{Pairs: map[string]Value{
		"$a": &Integer{Value: 1},
		"$b": NewList(&Integer{Value: 2}),
	}}
	if got := Eq(a, differentKeys); got != FALSE {
		t.Errorf("Eq over different key sets = %s, want false", got.Inspect())
	}

	smaller := &Object{Pairs: map[string]Value{"$a": &Integer{Value: 1}}}
	if got := Eq(a, smaller); got != FALSE {
		t.Errorf("Eq over different entry counts = %s, want false", got.Inspect())
	}
}

func TestEqWithThreads(t *testing.T) {
	current := &Thread{Current: true}
	three := &Thread{ID: 3}

	if got := EqWithThreads(fixedThread(3), current, three); got != TRUE {
		t.Errorf("current vs 3 with current id 3 = %s, want true", got.Inspect())
	}
	if got := EqWithThreads(fixedThread(3), three, current); got != TRUE {
		t.Errorf("3 vs current with current id 3 = %s, want true", got.Inspect())
	}
	if got := EqWithThreads(fixedThread(4), current, three); got != FALSE {
		t.Errorf("current vs 3 with current id 4 = %s, want false", got.Inspect())
	}
	if got := EqWithThreads(unknownThread{}, current, three); got != FALSE {
		t.Errorf("current vs 3 with unresolvable id = %s, want false", got.Inspect())
	}
	// Resolution only applies to the mixed case.
	if got := EqWithThreads(fixedThread(9), three, &Thread{ID: 3}); got != TRUE {
		t.Errorf("3 vs 3 under any resolver = %s, want true", got.Inspect())
	}
}

func TestNe(t *testing.T) {
	if got := Ne(&Integer{Value: 1}, &Integer{Value: 2}); got != TRUE {
		t.Errorf("Ne(1, 2) = %s, want true", got.Inspect())
	}
	if got := Ne(VOID, VOID); got != FALSE {
		t.Errorf("Ne(void, void) = %s, want false", got.Inspect())
	}
	if got := NeWithThreads(fixedThread(3), &Thread{Current: true}, &Thread{ID: 3}); got != FALSE {
		t.Errorf("NeWithThreads resolved equal threads = %s, want false", got.Inspect())
	}
}

func TestOrdering(t *testing.T) {
	ops := map[string]func(Value, Value) Value{"lt": Lt, "gt": Gt, "le": Le, "ge": Ge}

	tests := []struct {
		name string
		a    Value
		b    Value
		want map[string]Value
	}{
		{
			"integers",
			&Integer{Value: 1}, &Integer{Value: 2},
			map[string]Value{"lt": TRUE, "gt": FALSE, "le": TRUE, "ge": FALSE},
		},
		{
			"equal integers",
			&Integer{Value: 2}, &Integer{Value: 2},
			map[string]Value{"lt": FALSE, "gt": FALSE, "le": TRUE, "ge": TRUE},
		},
		{
			"floats",
			&Float{Value: 2.5}, &Float{Value: 0.5},
			map[string]Value{"lt": FALSE, "gt": TRUE, "le": FALSE, "ge": TRUE},
		},
		{
			"strings order lexicographically",
			&String{Value: "ab"}, &String{Value: "b"},
			map[string]Value{"lt": TRUE, "gt": FALSE, "le": TRUE, "ge": FALSE},
		},
		{
			"defined threads order by id",
			&Thread{ID: 1}, &Thread{ID: 2},
			map[string]Value{"lt": TRUE, "gt": FALSE, "le": TRUE, "ge": FALSE},
		},
		{
			"no ordering through the current thread",
			&Thread{Current: true}, &Thread{ID: 3},
			map[string]Value{"lt": FALSE, "gt": FALSE, "le": FALSE, "ge": FALSE},
		},
		{
			"no ordering into the current thread",
			&Thread{ID: 3}, &Thread{Current: true},
			map[string]Value{"lt": FALSE, "gt": FALSE, "le": FALSE, "ge": FALSE},
		},
		{
			"unordered kinds are false, not err",
			TRUE, FALSE,
			map[string]Value{"lt": FALSE, "gt": FALSE, "le": FALSE, "ge": FALSE},
		},
		{
			"mismatched kinds are false",
			&Integer{Value: 1}, &Float{Value: 2},
			map[string]Value{"lt": FALSE, "gt": FALSE, "le": FALSE, "ge": FALSE},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for opName, op := range ops {
				if got := op(tt.a, tt.b); got != tt.want[opName] {
					t.Errorf("%s(%s, %s) = %s, want %s", opName, tt.a.Inspect(), tt.b.Inspect(), got.Inspect(), tt.want[opName].Inspect())
				}
			}
		})
	}
}
