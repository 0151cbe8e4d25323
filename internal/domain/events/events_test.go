package events

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"babylog/internal/domain/events/details"
	"babylog/internal/ports/images"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

func TestNewFeed_EndFromDuration(t *testing.T) {
	e, err := NewFeed(FeedInput{StartTime: t0, DurationSeconds: 600, Side: details.FeedSideBreastLeft, Note: "  ok "})
	require.NoError(t, err)

	assert.True(t, e.Feed.EndTime.Equal(t0.Add(10*time.Minute)))
	assert.Equal(t, 600, e.Feed.DurationSeconds)
	assert.Equal(t, "ok", e.Note)
	assert.Empty(t, e.ID)
	assert.Equal(t, KindFeed, e.Kind)
}

func TestNewSleep_DurationFromEnd(t *testing.T) {
	e, err := NewSleep(SleepInput{StartTime: t0, EndTime: t0.Add(90 * time.Minute)})
	require.NoError(t, err)
	assert.Equal(t, 5400, e.Sleep.DurationSeconds)
}

func TestConstructors_Reject(t *testing.T) {
	cases := map[string]func() error{
		"feed without side": func() error {
			_, err := NewFeed(FeedInput{StartTime: t0, DurationSeconds: 60})
			return err
		},
		"feed without end or duration": func() error {
			_, err := NewFeed(FeedInput{StartTime: t0, Side: details.FeedSideBottle})
			return err
		},
		"sleep end before start": func() error {
			_, err := NewSleep(SleepInput{StartTime: t0, EndTime: t0.Add(-time.Minute)})
			return err
		},
		"sleep negative duration": func() error {
			_, err := NewSleep(SleepInput{StartTime: t0, EndTime: t0.Add(time.Minute), DurationSeconds: -1})
			return err
		},
		"sleep without start": func() error {
			_, err := NewSleep(SleepInput{EndTime: t0})
			return err
		},
		"diaper without type": func() error {
			_, err := NewDiaper(DiaperInput{Type: " "})
			return err
		},
	}
	for name, fn := range cases {
		assert.ErrorIs(t, fn(), ErrInvalidInput, name)
	}
}

func TestClassify(t *testing.T) {
	good, _ := NewDiaper(DiaperInput{Type: details.DiaperTypeWet})
	require.NoError(t, good.Classify())

	bad := []CareEvent{
		{ID: "a", Kind: Kind("Bath Event")},
		{ID: "b", Kind: KindFeed},
		{ID: "c", Kind: KindFeed, Feed: &details.Feed{Side: "middle"}},
		{ID: "d", Kind: KindDiaper, Diaper: &details.Diaper{Type: "dry"}},
	}
	for _, e := range bad {
		err := e.Classify()
		assert.ErrorIs(t, err, ErrUnclassified, e.ID)

		var ue *UnclassifiedError
		if assert.ErrorAs(t, err, &ue, e.ID) {
			assert.Equal(t, e.ID, ue.ID)
		}
	}
}

func TestParseKind_LegacyLabels(t *testing.T) {
	for in, want := range map[string]Kind{
		"Feed Event":  KindFeed,
		"sleep":       KindSleep,
		"Nappy Event": KindDiaper,
	} {
		assert.Equal(t, want, ParseKind(in), in)
	}

	k := ParseKind("Bath Event")
	assert.False(t, k.Known())
	assert.Equal(t, "Unknown Event", k.Title())
}

func TestRecord_RoundTripAndLenientDecode(t *testing.T) {
	e, _ := NewFeed(FeedInput{StartTime: t0, DurationSeconds: 120, Side: details.FeedSideBreastRight})
	e.ID = "x1"
	e.RecordedAt = t0

	back := FromRecord(ToRecord(e))
	assert.Equal(t, KindFeed, back.Kind)
	require.NotNil(t, back.Feed)
	assert.Equal(t, details.FeedSideBreastRight, back.Feed.Side)
	assert.Equal(t, 120, back.Feed.DurationSeconds)

	legacy := FromRecord(Record{ID: "x2", Kind: "Nappy Event", DiaperType: "Wet Dirty"})
	assert.Equal(t, KindDiaper, legacy.Kind)
	require.NotNil(t, legacy.Diaper)
	assert.Equal(t, details.DiaperTypeWetDirty, legacy.Diaper.Type)

	unknown := FromRecord(Record{ID: "x3", Kind: "Bath Event"})
	assert.Error(t, unknown.Classify())
}

// fakeRepo guarda en memoria, en orden de alta.
type fakeRepo struct {
	byID  map[string]CareEvent
	order []string

	updateErr error
}

func newFakeRepo() *fakeRepo { return &fakeRepo{byID: map[string]CareEvent{}} }

func (r *fakeRepo) List(ctx context.Context) ([]CareEvent, error) {
	out := make([]CareEvent, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (CareEvent, error) {
	e, ok := r.byID[id]
	if !ok {
		return CareEvent{}, ErrNotFound
	}
	return e.Clone(), nil
}

func (r *fakeRepo) Create(ctx context.Context, e CareEvent) error {
	r.byID[e.ID] = e.Clone()
	r.order = append(r.order, e.ID)
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, id string, p Patch) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	e, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	r.byID[id] = p.Apply(e)
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeImages struct {
	data map[string]images.Image
	seq  int
}

func (f *fakeImages) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	f.seq++
	ref := fmt.Sprintf("img-%d", f.seq)
	f.data[ref] = images.Image{Data: data, ContentType: contentType}
	return ref, nil
}

func (f *fakeImages) Delete(ctx context.Context, ref string) error {
	if _, ok := f.data[ref]; !ok {
		return images.ErrNotFound
	}
	delete(f.data, ref)
	return nil
}

func (f *fakeImages) Open(ctx context.Context, ref string) (images.Image, error) {
	img, ok := f.data[ref]
	if !ok {
		return images.Image{}, images.ErrNotFound
	}
	return img, nil
}

func TestService_CreateAssignsIDAndTime(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo(), nil)
	svc.now = func() time.Time { return t0 }

	in, _ := NewDiaper(DiaperInput{Type: details.DiaperTypeWet})
	got, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.True(t, got.RecordedAt.Equal(t0))

	in.ID = "already-set"
	_, err = svc.Create(ctx, in)
	assert.ErrorIs(t, err, ErrInvalidInput, "preset id")

	bad := CareEvent{Kind: KindDiaper, Diaper: &details.Diaper{Type: "dry"}}
	_, err = svc.Create(ctx, bad)
	assert.ErrorIs(t, err, ErrInvalidInput, "unclassified")
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo(), nil)

	feed, _ := NewFeed(FeedInput{StartTime: t0, DurationSeconds: 60, Side: details.FeedSideBottle})
	feed, _ = svc.Create(ctx, feed)

	side := "Breast Left"
	note := " after nap "
	got, err := svc.Update(ctx, feed.ID, UpdateInput{FeedSide: &side, Note: &note})
	require.NoError(t, err)
	assert.Equal(t, details.FeedSideBreastLeft, got.Feed.Side)
	assert.Equal(t, "after nap", got.Note)
	assert.True(t, got.RecordedAt.Equal(feed.RecordedAt))

	typ := "wet"
	_, err = svc.Update(ctx, feed.ID, UpdateInput{DiaperType: &typ})
	assert.ErrorIs(t, err, ErrInvalidInput, "diaper type on feed")

	_, err = svc.Update(ctx, "missing", UpdateInput{Note: &note})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Images(t *testing.T) {
	ctx := context.Background()

	noImages := NewService(newFakeRepo(), nil)
	_, err := noImages.AttachImage(ctx, "x", []byte("a"), "image/png")
	assert.ErrorIs(t, err, ErrImagesUnavailable)

	svc := NewService(newFakeRepo(), &fakeImages{data: map[string]images.Image{}})
	d, _ := NewDiaper(DiaperInput{Type: details.DiaperTypeWetDirty})
	d, _ = svc.Create(ctx, d)

	_, err = svc.OpenImage(ctx, d.ID)
	assert.ErrorIs(t, err, images.ErrNotFound, "before upload")

	got, err := svc.AttachImage(ctx, d.ID, []byte("png"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "img-1", got.Diaper.ImageRef)

	img, err := svc.OpenImage(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "png", string(img.Data))
	assert.Equal(t, "image/png", img.ContentType)

	s, _ := NewSleep(SleepInput{StartTime: t0, DurationSeconds: 60})
	s, _ = svc.Create(ctx, s)
	_, err = svc.AttachImage(ctx, s.ID, []byte("png"), "image/png")
	assert.ErrorIs(t, err, ErrInvalidInput, "sleep image")
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo(), nil)

	d, _ := NewDiaper(DiaperInput{Type: details.DiaperTypeWet})
	d, _ = svc.Create(ctx, d)

	require.NoError(t, svc.Delete(ctx, d.ID))
	assert.ErrorIs(t, svc.Delete(ctx, d.ID), ErrNotFound, "second delete")
	assert.ErrorIs(t, svc.Delete(ctx, " "), ErrInvalidInput, "blank id")
}

func TestService_AttachImage_ReplacesPrevious(t *testing.T) {
	ctx := context.Background()
	store := &fakeImages{data: map[string]images.Image{}}
	svc := NewService(newFakeRepo(), store)

	d, _ := NewDiaper(DiaperInput{Type: details.DiaperTypeWet})
	d, _ = svc.Create(ctx, d)

	first, err := svc.AttachImage(ctx, d.ID, []byte("one"), "image/png")
	require.NoError(t, err)
	second, err := svc.AttachImage(ctx, d.ID, []byte("two"), "image/png")
	require.NoError(t, err)

	assert.NotContains(t, store.data, first.Diaper.ImageRef)
	assert.Len(t, store.data, 1)
	assert.Equal(t, "img-2", second.Diaper.ImageRef)
}

func TestService_AttachImage_RemovesUploadWhenSaveFails(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	store := &fakeImages{data: map[string]images.Image{}}
	svc := NewService(repo, store)

	d, _ := NewDiaper(DiaperInput{Type: details.DiaperTypeWet})
	d, _ = svc.Create(ctx, d)

	boom := errors.New("store offline")
	repo.updateErr = boom

	_, err := svc.AttachImage(ctx, d.ID, []byte("png"), "image/png")
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, store.data)
}
