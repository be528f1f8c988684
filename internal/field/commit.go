package field

// Reason classifies a change event arriving from the widget layer.
type Reason int

const (
	// ReasonSelect - an option was picked from the dropdown.
	ReasonSelect Reason = iota
	// ReasonClear - the selection was cleared.
	ReasonClear
	// ReasonCreate - a free-text item was created.
	ReasonCreate
	// ReasonRemove - one element of a multi selection was removed.
	ReasonRemove
)

// Pipeline normalizes widget change events into committed field values.
// It is the only write path into the binding: every payload is resolved
// element-wise through the factory, new items are registered with the
// store, the optional Transform hook runs exactly once on the resolved
// value, and the result is written in a single synchronous Commit.
type Pipeline[T any] struct {
	Adapter Adapter[T]
	Factory Factory[T]
	Store   *Store[T]
	Sink    Sink[T]
	// Transform, when set, rewrites the resolved value immediately before
	// the write. It is skipped for the explicit nil single-selection clear.
	Transform func(Value[T]) Value[T]
	// Multiple selects sequence semantics for payloads and committed values.
	Multiple bool
}

// Commit resolves the payload for the given reason, applies the transform
// hook, writes the result to the sink and returns it. Payloads are the
// complete new selection: zero or one option in single mode, the full
// ordered sequence in multi mode. Mixed payloads (existing items alongside
// provisional creates) resolve element-wise; duplicate keys within one
// payload are silently dropped, first occurrence wins.
func (p *Pipeline[T]) Commit(reason Reason, payload []Option[T]) (Value[T], error) {
	var next Value[T]

	switch reason {
	case ReasonClear:
		if p.Multiple {
			next = Multi[T](nil)
		} else {
			next = None[T]()
		}

	case ReasonSelect, ReasonCreate, ReasonRemove:
		items, err := p.resolve(payload)
		if err != nil {
			return None[T](), err
		}
		if reason != ReasonRemove && p.Store != nil {
			for _, item := range items {
				p.Store.Register(item)
			}
		}
		next = p.shape(items)
	}

	if p.Transform != nil && !next.IsNone() {
		next = p.Transform(next)
	}
	if p.Sink != nil {
		p.Sink.Commit(next)
	}
	return next, nil
}

// resolve canonicalizes a payload into items, deduplicating by key.
func (p *Pipeline[T]) resolve(payload []Option[T]) ([]T, error) {
	items := make([]T, 0, len(payload))
	seen := make(map[string]struct{}, len(payload))
	for _, opt := range payload {
		item, err := p.Factory.Resolve(opt)
		if err != nil {
			return nil, err
		}
		key := p.Adapter.Key(item)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		items = append(items, item)
	}
	return items, nil
}

func (p *Pipeline[T]) shape(items []T) Value[T] {
	if p.Multiple {
		return Multi(items)
	}
	if len(items) == 0 {
		return None[T]()
	}
	return Single(items[len(items)-1])
}
