package runtime

import (
	"strconv"

	"github.com/quonlang/quon/internal/config"
)

// Thread is a placeholder thread identity. Current marks "the thread
// evaluating this expression" without naming it; otherwise ID names a
// specific thread. No scheduling exists yet, so a Thread can only be
// compared, stored, and displayed.
type Thread struct {
	ID      int64
	Current bool // when set, ID is meaningless
}

// CurrentThread returns the identity of the evaluating thread.
func CurrentThread() *Thread {
	return &Thread{Current: true}
}

func (t *Thread) Type() ValueType { return THREAD_VAL }

func (t *Thread) Inspect() string {
	if t.Current {
		return config.CurrentThreadText
	}
	return config.ThreadSigil + strconv.FormatInt(t.ID, 10)
}

// Function is an anonymous function value. Scope is a snapshot of the
// bindings visible at creation time, never an alias into a live scope stack.
// The body representation belongs to the (future) evaluator, so the value
// carries none; two Functions are never equal.
type Function struct {
	Scope *Object
}

func (f *Function) Type() ValueType { return FUNCTION_VAL }
func (f *Function) Inspect() string { return config.FunctionText }
