package storage

import (
	"context"
	"errors"

	sent "github.com/kobun-yomi/refmap/sentence"
)

// ErrNotFound is returned when a document location does not exist.
var ErrNotFound = errors.New("document not found")

// DocReader defines read operations for document storage
type DocReader interface {
	// Exists reports whether a document is stored at location.
	Exists(ctx context.Context, location string) (bool, error)

	// Read returns the document stored at location. It returns an error
	// wrapping ErrNotFound if there is none.
	Read(ctx context.Context, location string) (*sent.Doc, error)
}

// DocWriter defines write operations for document storage
type DocWriter interface {
	// Write replaces the document stored at location.
	Write(ctx context.Context, location string, doc *sent.Doc) error
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}
