package field

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type label struct {
	ID   string
	Name string
}

func labelAdapter() Adapter[label] {
	return Adapter[label]{
		Key:   func(l label) string { return l.ID },
		Label: func(l label) string { return l.Name },
	}
}

func TestNewStore_SeedsFromInitialValue(t *testing.T) {
	configured := []label{{ID: "1", Name: "Item One"}, {ID: "2", Name: "Item Two"}}

	t.Run("ValueOutsideConfiguredIsDiscovered", func(t *testing.T) {
		s := NewStore(labelAdapter(), configured, Single(label{ID: "X", Name: "Not In List"}))

		want := []label{{ID: "1", Name: "Item One"}, {ID: "2", Name: "Item Two"}, {ID: "X", Name: "Not In List"}}
		if diff := cmp.Diff(want, s.Options()); diff != "" {
			t.Errorf("options mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("ValueInsideConfiguredAddsNothing", func(t *testing.T) {
		s := NewStore(labelAdapter(), configured, Single(label{ID: "1", Name: "Item One"}))
		if len(s.Discovered()) != 0 {
			t.Errorf("expected no discovered options, got %v", s.Discovered())
		}
	})

	t.Run("NoneValueAddsNothing", func(t *testing.T) {
		s := NewStore(labelAdapter(), configured, None[label]())
		if len(s.Options()) != 2 {
			t.Errorf("expected 2 options, got %d", len(s.Options()))
		}
	})
}

func TestStore_ReconcileIsIdempotent(t *testing.T) {
	s := NewStore(labelAdapter(), []label{{ID: "1", Name: "Item One"}}, None[label]())

	v := Multi([]label{{ID: "1", Name: "Item One"}, {ID: "9", Name: "Stale"}})
	s.Reconcile(v)
	once := s.Options()
	s.Reconcile(v)
	twice := s.Options()

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second reconcile changed options (-once +twice):\n%s", diff)
	}
	if len(twice) != 2 {
		t.Errorf("expected 2 options, got %d", len(twice))
	}
}

func TestStore_NoDuplicateKeys(t *testing.T) {
	s := NewStore(labelAdapter(), []label{{ID: "1", Name: "Item One"}}, None[label]())

	s.Register(label{ID: "2", Name: "Item Two"})
	s.Register(label{ID: "2", Name: "Same Key Different Name"})
	s.Register(label{ID: "1", Name: "Shadowing Configured"})
	s.Reconcile(Multi([]label{{ID: "2", Name: "Item Two"}, {ID: "3", Name: "Item Three"}}))

	opts := s.Options()
	seen := make(map[string]bool)
	for _, opt := range opts {
		if seen[opt.ID] {
			t.Fatalf("duplicate key %q in option set %v", opt.ID, opts)
		}
		seen[opt.ID] = true
	}
	if len(opts) != 3 {
		t.Errorf("expected 3 options, got %d", len(opts))
	}
	// First-seen instance wins on key collision.
	if opts[1].Name != "Item Two" {
		t.Errorf("expected first-seen instance kept, got %q", opts[1].Name)
	}
}

func TestStore_Ordering(t *testing.T) {
	s := NewStore(labelAdapter(), []label{{ID: "b", Name: "Bravo"}, {ID: "a", Name: "Alpha"}}, None[label]())
	s.Register(label{ID: "z", Name: "Zulu"})
	s.Register(label{ID: "m", Name: "Mike"})

	got := s.Options()
	want := []label{{ID: "b", Name: "Bravo"}, {ID: "a", Name: "Alpha"}, {ID: "z", Name: "Zulu"}, {ID: "m", Name: "Mike"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("configured must precede discovered, discovered in insertion order (-want +got):\n%s", diff)
	}
}

func TestStore_SetConfigured(t *testing.T) {
	s := NewStore(labelAdapter(), []label{{ID: "1", Name: "Item One"}}, None[label]())
	s.Register(label{ID: "2", Name: "Discovered Two"})
	s.Register(label{ID: "3", Name: "Discovered Three"})

	// New configured list absorbs key "2"; the discovered copy must drop.
	s.SetConfigured([]label{{ID: "1", Name: "Item One"}, {ID: "2", Name: "Item Two"}})

	want := []label{{ID: "1", Name: "Item One"}, {ID: "2", Name: "Item Two"}, {ID: "3", Name: "Discovered Three"}}
	if diff := cmp.Diff(want, s.Options()); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_ContainsByKeyOnly(t *testing.T) {
	s := NewStore(labelAdapter(), []label{{ID: "1", Name: "Item One"}}, None[label]())
	if !s.Contains(label{ID: "1", Name: "completely different name"}) {
		t.Error("Contains must compare by key, not by value")
	}
	if s.Contains(label{ID: "999", Name: "Item One"}) {
		t.Error("Contains must not match on label")
	}
}
