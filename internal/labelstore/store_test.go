package labelstore

import (
	"context"
	"path/filepath"
	"testing"

	apperrors "fieldkit/internal/errors"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), "labels.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func TestOpen(t *testing.T) {
	t.Run("CreatesDatabase", func(t *testing.T) {
		s := openTestStore(t)
		labels, err := s.List(context.Background())
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(labels) != 0 {
			t.Errorf("expected empty store, got %d labels", len(labels))
		}
	})

	t.Run("EmptyPathRejected", func(t *testing.T) {
		_, err := Open(context.Background(), "  ")
		if !apperrors.IsCode(err, apperrors.CodeConfigurationError) {
			t.Errorf("expected configuration error, got %v", err)
		}
	})
}

func TestAddAndList(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	first, err := s.Add(ctx, "backend")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if first.ID == "" {
		t.Error("expected generated id")
	}
	if _, err := s.Add(ctx, "frontend"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	labels, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(labels))
	}
	if labels[0].Name != "backend" || labels[1].Name != "frontend" {
		t.Errorf("expected insertion order, got %+v", labels)
	}
}

func TestAddDeduplicatesByName(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	first, err := s.Add(ctx, "backend")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// Same name, different case: existing label comes back, nothing inserted.
	again, err := s.Add(ctx, "Backend")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if again.ID != first.ID {
		t.Errorf("expected existing label returned, got %+v vs %+v", again, first)
	}

	labels, _ := s.List(ctx)
	if len(labels) != 1 {
		t.Errorf("expected 1 label, got %d", len(labels))
	}
}

func TestAddRejectsBlankName(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Add(context.Background(), "   ")
	if !apperrors.IsCode(err, apperrors.CodeConfigurationError) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	added, _ := s.Add(ctx, "backend")

	got, err := s.Get(ctx, added.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "backend" {
		t.Errorf("expected backend, got %+v", got)
	}

	_, err = s.Get(ctx, "missing")
	if !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	added, _ := s.Add(ctx, "backend")

	if err := s.Remove(ctx, added.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	labels, _ := s.List(ctx)
	if len(labels) != 0 {
		t.Errorf("expected empty store after remove, got %d", len(labels))
	}

	if err := s.Remove(ctx, added.ID); !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Errorf("expected not-found error on double remove, got %v", err)
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	if err := s.Seed(ctx, []string{"backend", "frontend"}); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	labels, _ := s.List(ctx)
	if len(labels) != 2 {
		t.Fatalf("expected 2 seeded labels, got %d", len(labels))
	}

	// Second seed is a no-op on a populated store.
	if err := s.Seed(ctx, []string{"api"}); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	labels, _ = s.List(ctx)
	if len(labels) != 2 {
		t.Errorf("expected seed skipped on populated store, got %d labels", len(labels))
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "labels.db")

	s, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := s.Add(ctx, "backend"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s, err = Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer func() {
		_ = s.Close()
	}()

	labels, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(labels) != 1 || labels[0].Name != "backend" {
		t.Errorf("expected persisted label, got %+v", labels)
	}
}
