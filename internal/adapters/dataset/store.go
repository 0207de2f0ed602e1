// Package dataset loads puzzle inputs from a file tree.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/okian/advent/internal/domain/model"
)

// Store provides read access to puzzle inputs.
type Store interface {
	// Load reads the whole dataset for day and label.
	// Returns ErrNotFound if no such dataset exists.
	Load(ctx context.Context, day int, label model.Label) (model.Dataset, error)
}

// FSStore reads datasets laid out as <layout>/<label>.dat in an fs.FS,
// where layout defaults to "day-%d".
type FSStore struct {
	fsys   fs.FS
	layout string
	source string
}

var _ Store = (*FSStore)(nil)

// NewFSStore creates a store over fsys.
func NewFSStore(fsys fs.FS, opts ...Option) *FSStore {
	s := &FSStore{
		fsys:   fsys,
		layout: "day-%d",
		source: "fs",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the slash-separated path of a dataset inside the store.
func (s *FSStore) Path(day int, label model.Label) string {
	return path.Join(fmt.Sprintf(s.layout, day), label.File())
}

// Source returns the name the store was created with.
func (s *FSStore) Source() string { return s.source }

// Load reads the dataset for day and label in full.
func (s *FSStore) Load(ctx context.Context, day int, label model.Label) (model.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return model.Dataset{}, err
	}
	p := s.Path(day, label)
	b, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.Dataset{}, fmt.Errorf("%w: %s:%s", ErrNotFound, s.source, p)
		}
		return model.Dataset{}, fmt.Errorf("%w: %s:%s: %w", ErrRead, s.source, p, err)
	}
	return model.Dataset{Day: day, Label: label, Text: string(b)}, nil
}
