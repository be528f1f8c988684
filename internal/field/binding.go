package field

// Sink is the write channel into bound form state. Commit is a single
// synchronous call; the engine never mutates a bound value in place.
type Sink[T any] interface {
	Commit(Value[T])
}

// Binding is an in-memory bound-form-state holder: it owns the current
// value, accepts writes through Commit and notifies watchers on every
// write, whether it came from the commit pipeline or from an external
// caller. All access happens on the single UI event loop; no locking.
type Binding[T any] struct {
	value    Value[T]
	watchers []func(Value[T])
}

// NewBinding creates a binding holding the given initial value.
func NewBinding[T any](initial Value[T]) *Binding[T] {
	return &Binding[T]{value: initial}
}

// Current returns the bound value.
func (b *Binding[T]) Current() Value[T] {
	return b.value
}

// Commit replaces the bound value and notifies watchers.
func (b *Binding[T]) Commit(v Value[T]) {
	b.value = v
	for _, fn := range b.watchers {
		fn(v)
	}
}

// Watch registers a change-notification callback. Callbacks run
// synchronously, in registration order, on every Commit.
func (b *Binding[T]) Watch(fn func(Value[T])) {
	b.watchers = append(b.watchers, fn)
}
