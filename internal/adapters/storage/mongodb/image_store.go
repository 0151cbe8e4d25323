package mongodb

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"babylog/internal/ports/images"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ImageStore guarda las fotos en el bucket GridFS "images".
// La referencia es el ObjectID en hex.
type ImageStore struct {
	db *mongo.Database
}

func NewImageStore(db *mongo.Database) *ImageStore {
	return &ImageStore{db: db}
}

type fileMeta struct {
	Metadata struct {
		ContentType string `bson:"content_type"`
	} `bson:"metadata"`
}

// bucket arma un bucket por llamada: los deadlines de GridFS son por
// bucket, así cada request usa el de su propio ctx.
func (s *ImageStore) bucket(ctx context.Context) (*gridfs.Bucket, error) {
	b, err := gridfs.NewBucket(s.db, options.GridFSBucket().SetName(imagesBucket))
	if err != nil {
		return nil, err
	}
	if dl, ok := ctx.Deadline(); ok {
		_ = b.SetReadDeadline(dl)
		_ = b.SetWriteDeadline(dl)
	}
	return b, nil
}

func (s *ImageStore) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return "", err
	}

	id := primitive.NewObjectID()
	opts := options.GridFSUpload().SetMetadata(bson.M{"content_type": contentType})
	if err := b.UploadFromStreamWithID(id, id.Hex(), bytes.NewReader(data), opts); err != nil {
		return "", fmt.Errorf("gridfs upload: %w", err)
	}
	return id.Hex(), nil
}

func (s *ImageStore) Open(ctx context.Context, ref string) (images.Image, error) {
	id, err := primitive.ObjectIDFromHex(ref)
	if err != nil {
		return images.Image{}, images.ErrNotFound
	}

	b, err := s.bucket(ctx)
	if err != nil {
		return images.Image{}, err
	}

	var buf bytes.Buffer
	if _, err := b.DownloadToStream(id, &buf); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return images.Image{}, images.ErrNotFound
		}
		return images.Image{}, fmt.Errorf("gridfs download: %w", err)
	}

	img := images.Image{Data: buf.Bytes()}

	cur, err := b.Find(bson.M{"_id": id})
	if err != nil {
		return img, nil
	}
	defer cur.Close(ctx)
	if cur.Next(ctx) {
		var meta fileMeta
		if err := cur.Decode(&meta); err == nil {
			img.ContentType = meta.Metadata.ContentType
		}
	}
	return img, nil
}

func (s *ImageStore) Delete(ctx context.Context, ref string) error {
	id, err := primitive.ObjectIDFromHex(ref)
	if err != nil {
		return images.ErrNotFound
	}

	b, err := s.bucket(ctx)
	if err != nil {
		return err
	}
	if err := b.Delete(id); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return images.ErrNotFound
		}
		return fmt.Errorf("gridfs delete: %w", err)
	}
	return nil
}
