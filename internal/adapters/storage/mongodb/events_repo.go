package mongodb

import (
	"context"
	"errors"
	"time"

	"babylog/internal/domain/events"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// eventDoc es el documento guardado en la colección events. Los campos de
// cada variante quedan ausentes cuando no aplican.
type eventDoc struct {
	ID         string    `bson:"_id"`
	Kind       string    `bson:"kind"`
	RecordedAt time.Time `bson:"recorded_at"`
	InsertedAt time.Time `bson:"inserted_at"`
	Note       string    `bson:"note,omitempty"`

	StartTime       *time.Time `bson:"start_time,omitempty"`
	EndTime         *time.Time `bson:"end_time,omitempty"`
	DurationSeconds int        `bson:"duration_seconds,omitempty"`

	FeedSide   string `bson:"feed_side,omitempty"`
	DiaperType string `bson:"diaper_type,omitempty"`
	ImageRef   string `bson:"image_ref,omitempty"`
}

type EventsRepo struct {
	c   *mongo.Collection
	now func() time.Time
}

func NewEventsRepo(db *mongo.Database) *EventsRepo {
	return &EventsRepo{
		c:   db.Collection(eventsCollection),
		now: time.Now,
	}
}

func (r *EventsRepo) Create(ctx context.Context, e events.CareEvent) error {
	doc := toDoc(events.ToRecord(e))
	doc.InsertedAt = r.now().UTC()
	_, err := r.c.InsertOne(ctx, doc)
	return err
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (events.CareEvent, error) {
	var doc eventDoc
	err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return events.CareEvent{}, events.ErrNotFound
	}
	if err != nil {
		return events.CareEvent{}, err
	}
	return events.FromRecord(doc.record()), nil
}

// List devuelve en orden de inserción.
func (r *EventsRepo) List(ctx context.Context) ([]events.CareEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "inserted_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]events.CareEvent, 0)
	for cur.Next(ctx) {
		var doc eventDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, events.FromRecord(doc.record()))
	}
	return out, cur.Err()
}

func (r *EventsRepo) Update(ctx context.Context, id string, p events.Patch) error {
	set := bson.M{}
	if p.Note != nil {
		set["note"] = *p.Note
	}
	if p.FeedSide != nil {
		set["feed_side"] = string(*p.FeedSide)
	}
	if p.DiaperType != nil {
		set["diaper_type"] = string(*p.DiaperType)
	}
	if p.ImageRef != nil {
		set["image_ref"] = *p.ImageRef
	}
	if len(set) == 0 {
		_, err := r.GetByID(ctx, id)
		return err
	}

	res, err := r.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return events.ErrNotFound
	}
	return nil
}

func (r *EventsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return events.ErrNotFound
	}
	return nil
}

func toDoc(r events.Record) eventDoc {
	d := eventDoc{
		ID:              r.ID,
		Kind:            r.Kind,
		RecordedAt:      r.RecordedAt.UTC(),
		Note:            r.Note,
		DurationSeconds: r.DurationSeconds,
		FeedSide:        r.FeedSide,
		DiaperType:      r.DiaperType,
		ImageRef:        r.ImageRef,
	}
	if !r.StartTime.IsZero() {
		t := r.StartTime.UTC()
		d.StartTime = &t
	}
	if !r.EndTime.IsZero() {
		t := r.EndTime.UTC()
		d.EndTime = &t
	}
	return d
}

func (d eventDoc) record() events.Record {
	r := events.Record{
		ID:              d.ID,
		Kind:            d.Kind,
		RecordedAt:      d.RecordedAt,
		Note:            d.Note,
		DurationSeconds: d.DurationSeconds,
		FeedSide:        d.FeedSide,
		DiaperType:      d.DiaperType,
		ImageRef:        d.ImageRef,
	}
	if d.StartTime != nil {
		r.StartTime = *d.StartTime
	}
	if d.EndTime != nil {
		r.EndTime = *d.EndTime
	}
	return r
}
