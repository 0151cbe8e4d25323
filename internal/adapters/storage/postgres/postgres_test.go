package postgres

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"babylog/internal/domain/events"
	"babylog/internal/domain/events/details"

	"github.com/google/uuid"
)

// openTestDB necesita TEST_DB_DSN; sin eso los tests se saltean.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	db, err := Open(dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("schema: %v", err)
	}
	return db
}

func TestEventsRepo_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewEventsRepo(db)

	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	feed := events.CareEvent{
		ID:         uuid.NewString(),
		Kind:       events.KindFeed,
		RecordedAt: start,
		Feed: &details.Feed{
			StartTime:       start,
			EndTime:         start.Add(10 * time.Minute),
			DurationSeconds: 600,
			Side:            details.FeedSideBreastLeft,
		},
	}
	if err := repo.Create(ctx, feed); err != nil {
		t.Fatalf("create: %v", err)
	}
	t.Cleanup(func() { _ = repo.Delete(ctx, feed.ID) })

	got, err := repo.GetByID(ctx, feed.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Feed == nil || got.Feed.Side != details.FeedSideBreastLeft || got.Feed.DurationSeconds != 600 {
		t.Fatalf("unexpected feed %+v", got.Feed)
	}

	side := details.FeedSideBreastRight
	if err := repo.Update(ctx, feed.ID, events.Patch{FeedSide: &side}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = repo.GetByID(ctx, feed.ID)
	if got.Feed.Side != details.FeedSideBreastRight {
		t.Fatalf("expected breast_right, got %s", got.Feed.Side)
	}
}

func TestEventsRepo_NotFound(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewEventsRepo(db)

	if _, err := repo.GetByID(ctx, uuid.NewString()); !errors.Is(err, events.ErrNotFound) {
		t.Fatalf("get: expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, uuid.NewString()); !errors.Is(err, events.ErrNotFound) {
		t.Fatalf("delete: expected ErrNotFound, got %v", err)
	}
}

func TestSettingsStore_Upsert(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	s := NewSettingsStore(db)
	key := "test_" + uuid.NewString()
	t.Cleanup(func() { _ = s.Delete(ctx, key) })

	_ = s.Set(ctx, key, "a")
	_ = s.Set(ctx, key, "b")
	v, ok, err := s.Get(ctx, key)
	if err != nil || !ok || v != "b" {
		t.Fatalf("expected b, got %q ok=%v err=%v", v, ok, err)
	}
}
