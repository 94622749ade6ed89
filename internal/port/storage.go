package port

import (
	"context"
	"io"
	"time"
)

// StoredObject is an object to place in the report archive.
type StoredObject struct {
	Key         string
	Body        io.Reader
	ContentType string
	Metadata    map[string]string
}

// StoredLocation identifies an archived object.
type StoredLocation struct {
	Bucket   string
	Key      string
	Location string
	ETag     string
}

// ObjectStorage abstracts the bucket anomaly reports are archived to. Keys are relative
// to the configured bucket and prefix.
type ObjectStorage interface {
	Put(ctx context.Context, obj StoredObject) (*StoredLocation, error)
	Delete(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
