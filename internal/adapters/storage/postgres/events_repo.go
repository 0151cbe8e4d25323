package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"babylog/internal/domain/events"
)

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

const selectEvents = `
	SELECT
		id, kind, recorded_at, note,
		start_time, end_time, duration_seconds,
		feed_side, diaper_type, image_ref
	FROM care_events
`

func (r *EventsRepo) Create(ctx context.Context, e events.CareEvent) error {
	rec := events.ToRecord(e)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO care_events (
			id, kind, recorded_at, note,
			start_time, end_time, duration_seconds,
			feed_side, diaper_type, image_ref
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		rec.ID,
		rec.Kind,
		rec.RecordedAt,
		rec.Note,
		nullTime(rec.StartTime),
		nullTime(rec.EndTime),
		rec.DurationSeconds,
		rec.FeedSide,
		rec.DiaperType,
		rec.ImageRef,
	)
	return err
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (events.CareEvent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return events.CareEvent{}, events.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, selectEvents+` WHERE id = $1`, id)
	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return events.CareEvent{}, events.ErrNotFound
		}
		return events.CareEvent{}, err
	}
	return e, nil
}

// List devuelve en orden de inserción.
func (r *EventsRepo) List(ctx context.Context) ([]events.CareEvent, error) {
	rows, err := r.db.QueryContext(ctx, selectEvents+` ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]events.CareEvent, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EventsRepo) Update(ctx context.Context, id string, p events.Patch) error {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if p.Note != nil {
		add("note", *p.Note)
	}
	if p.FeedSide != nil {
		add("feed_side", string(*p.FeedSide))
	}
	if p.DiaperType != nil {
		add("diaper_type", string(*p.DiaperType))
	}
	if p.ImageRef != nil {
		add("image_ref", *p.ImageRef)
	}
	if len(sets) == 0 {
		// Nada que tocar, pero igual confirmamos que existe.
		_, err := r.GetByID(ctx, id)
		return err
	}

	args = append(args, strings.TrimSpace(id))
	res, err := r.db.ExecContext(ctx,
		fmt.Sprintf(`UPDATE care_events SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args)),
		args...,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *EventsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM care_events WHERE id = $1`, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	return requireAffected(res)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (events.CareEvent, error) {
	var (
		rec        events.Record
		start, end sql.NullTime
	)
	if err := s.Scan(
		&rec.ID,
		&rec.Kind,
		&rec.RecordedAt,
		&rec.Note,
		&start,
		&end,
		&rec.DurationSeconds,
		&rec.FeedSide,
		&rec.DiaperType,
		&rec.ImageRef,
	); err != nil {
		return events.CareEvent{}, err
	}
	rec.StartTime = start.Time
	rec.EndTime = end.Time
	return events.FromRecord(rec), nil
}

func requireAffected(res sql.Result) error {
	n, _ := res.RowsAffected()
	if n == 0 {
		return events.ErrNotFound
	}
	return nil
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
