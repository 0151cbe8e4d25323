package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSettingsStore_InMemory(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	s := NewSettingsStore(db)

	if _, ok, err := s.Get(ctx, "alarm_state"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "alarm_state", "on"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, "alarm_state", "off"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	v, ok, err := s.Get(ctx, "alarm_state")
	if err != nil || !ok || v != "off" {
		t.Fatalf("expected off, got %q ok=%v err=%v", v, ok, err)
	}

	if err := s.Delete(ctx, "alarm_state"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, err := s.Get(ctx, "alarm_state"); err != nil || ok {
		t.Fatalf("expected deleted key, got ok=%v err=%v", ok, err)
	}
}

func TestSettingsStore_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.db")
	ctx := context.Background()

	db, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := NewSettingsStore(db).Set(ctx, "wake_time_override", "06:30:00"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	v, ok, err := NewSettingsStore(db).Get(ctx, "wake_time_override")
	if err != nil || !ok || v != "06:30:00" {
		t.Fatalf("expected persisted value, got %q ok=%v err=%v", v, ok, err)
	}
}
