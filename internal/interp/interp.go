// Package interp implements the variable-binding environment of the quon
// runtime: a process-lifetime global table plus a stack of local scope
// frames. The (future) evaluator resolves identifiers through it and stores
// runtime values under them; no evaluation happens here.
package interp

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/quonlang/quon/internal/config"
	"github.com/quonlang/quon/internal/runtime"
)

// Frame is one scope's binding table. Identifier names are stored raw; the
// Object key codec applies to Object values, not to binding tables.
type Frame map[string]runtime.Value

// Interp owns the binding state of one interpreter instance. It is not safe
// for concurrent use: frames and globals belong to a single logical
// interpreter, and any future scheduler must synchronize around it.
type Interp struct {
	id      uuid.UUID
	globals Frame
	locals  []Frame // never empty; locals[len-1] is the current scope
	limits  config.Limits
	logger  *slog.Logger

	currentThread    int64
	hasCurrentThread bool
}

// Options configures a new Interp. The zero value gives default limits and a
// discarded log.
type Options struct {
	Limits *config.Limits
	Logger *slog.Logger
}

// New creates an interpreter environment with one empty global table and the
// implicit top-level local scope.
func New(opts Options) *Interp {
	limits := config.DefaultLimits()
	if opts.Limits != nil {
		limits = *opts.Limits
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	id := uuid.New()
	return &Interp{
		id:      id,
		globals: Frame{},
		locals:  []Frame{{}},
		limits:  limits,
		logger:  logger.With(slog.String("interp", id.String())),
	}
}

// ID identifies this interpreter instance in logs and diagnostics.
func (in *Interp) ID() uuid.UUID { return in.id }

// StoreGlobal binds name in the global table, overwriting any prior binding.
func (in *Interp) StoreGlobal(name string, v runtime.Value) {
	in.globals[name] = v
	in.trace("store_global", name, v)
}

// FetchGlobal returns a copy of the global bound to name. The copy is deep,
// so the caller can never alias interpreter-owned state.
func (in *Interp) FetchGlobal(name string) (runtime.Value, bool) {
	v, ok := in.globals[name]
	if !ok {
		return nil, false
	}
	return runtime.Clone(v), true
}

// StoreLocal binds name in the current (top) scope frame.
func (in *Interp) StoreLocal(name string, v runtime.Value) {
	if len(in.locals) == 0 {
		panic("interp: local scope stack is empty")
	}
	in.locals[len(in.locals)-1][name] = v
	in.trace("store_local", name, v)
}

// FetchLocal resolves name against the innermost frame first, walking out
// through enclosing frames and finally the globals. Like FetchGlobal it
// hands out a deep copy.
func (in *Interp) FetchLocal(name string) (runtime.Value, bool) {
	for i := len(in.locals) - 1; i >= 0; i-- {
		if v, ok := in.locals[i][name]; ok {
			return runtime.Clone(v), true
		}
	}
	return in.FetchGlobal(name)
}

// PushScope enters a new lexical scope. It fails when the configured depth
// limit is reached, which is how runaway recursion surfaces.
func (in *Interp) PushScope() error {
	if len(in.locals) >= in.limits.MaxScopeDepth {
		return fmt.Errorf("interp: scope depth limit %d exceeded", in.limits.MaxScopeDepth)
	}
	in.locals = append(in.locals, Frame{})
	return nil
}

// PopScope leaves the current scope, dropping its bindings. Popping the
// implicit top-level scope is a contract violation and panics.
func (in *Interp) PopScope() {
	if len(in.locals) <= 1 {
		panic("interp: cannot pop the top-level scope")
	}
	in.locals = in.locals[:len(in.locals)-1]
}

// Depth reports the number of live scope frames, the top-level one included.
func (in *Interp) Depth() int { return len(in.locals) }

// MakeClosure snapshots every binding visible from the current scope into a
// fresh Function. Frames flatten innermost-last so inner bindings shadow
// outer ones, and the snapshot is a deep copy with no aliasing back into the
// live stack.
func (in *Interp) MakeClosure() *runtime.Function {
	scope := runtime.NewObject()
	for _, frame := range in.locals {
		for name, v := range frame {
			scope.Set(&runtime.String{Value: name}, runtime.Clone(v))
		}
	}
	return &runtime.Function{Scope: scope}
}

// SetCurrentThread records which thread id is currently evaluating, making
// the interpreter a usable runtime.ThreadResolver. No scheduler exists yet,
// so only a future one (or a test) calls this.
func (in *Interp) SetCurrentThread(id int64) {
	in.currentThread = id
	in.hasCurrentThread = true
}

// ClearCurrentThread forgets the current thread id.
func (in *Interp) ClearCurrentThread() {
	in.currentThread = 0
	in.hasCurrentThread = false
}

// CurrentThreadID implements runtime.ThreadResolver.
func (in *Interp) CurrentThreadID() (int64, bool) {
	return in.currentThread, in.hasCurrentThread
}

func (in *Interp) trace(op, name string, v runtime.Value) {
	if !in.limits.TraceBindings {
		return
	}
	in.logger.Debug(op,
		slog.String("name", name),
		slog.String("kind", string(v.Type())),
		slog.Int("depth", len(in.locals)),
	)
}
