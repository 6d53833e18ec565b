package runtime

// ThreadResolver tells equality which concrete thread id "the current
// thread" denotes, once a component that actually runs threads exists. The
// interpreter environment implements it; until a scheduler wires in a live
// id, resolution fails and a Current thread compares unequal to every
// defined one.
type ThreadResolver interface {
	// CurrentThreadID returns the id of the current thread, if known.
	CurrentThreadID() (int64, bool)
}
