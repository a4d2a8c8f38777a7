package filesystem

import (
	"bytes"
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/file"

	sent "github.com/kobun-yomi/refmap/sentence"
	"github.com/kobun-yomi/refmap/storage"
)

// DocStore reads and writes documents through afs, so a location can be a
// plain path or any URL afs understands.
type DocStore struct {
	fs afs.Service
}

var _ storage.DocRepository = (*DocStore)(nil)

// NewDocStore creates a document store backed by the default afs service.
func NewDocStore() *DocStore {
	return &DocStore{fs: afs.New()}
}

func (s *DocStore) Exists(ctx context.Context, location string) (bool, error) {
	ok, err := s.fs.Exists(ctx, location)
	if err != nil {
		return false, fmt.Errorf("IO error: %w", err)
	}
	return ok, nil
}

func (s *DocStore) Read(ctx context.Context, location string) (*sent.Doc, error) {
	ok, err := s.Exists(ctx, location)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, location)
	}

	data, err := s.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	doc, err := sent.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", location, err)
	}

	return doc, nil
}

// Write overwrites the document in place. No backup is kept.
func (s *DocStore) Write(ctx context.Context, location string, doc *sent.Doc) error {
	data, err := doc.Marshal()
	if err != nil {
		return fmt.Errorf("JSON encoding error: %w", err)
	}

	if err := s.fs.Upload(ctx, location, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("IO error: %w", err)
	}

	return nil
}
