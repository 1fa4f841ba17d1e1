// Package gallery stores generated textures so they can be browsed,
// re-exported and deleted later.
//
// This package defines the Store interface with implementations for
// different backends:
//   - memory: in-memory storage for development/testing
//   - file: file-based storage for CLI usage
//   - mongo: MongoDB-backed storage for server deployments
//
// # Usage
//
// Create a store:
//
//	// CLI
//	store, err := gallery.NewFileStore("")  // uses ~/.config/camo/gallery/
//
//	// Server
//	store, err := gallery.NewMongoStore(ctx, gallery.MongoConfig{
//	    URI: "mongodb://localhost:27017",
//	})
//
// Save a result:
//
//	entry := gallery.NewEntry("woodland", opts, seamless, pngData)
//	if err := store.Put(ctx, entry); err != nil {
//	    return err
//	}
package gallery

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/andreaperaltro/camo/pkg/pattern"
)

// ErrNotFound is returned when an entry does not exist.
var ErrNotFound = errors.New("not found")

// Entry is a saved texture with the parameters that produced it. The
// stored options always carry the resolved seed, so re-rendering an entry
// reproduces it pixel for pixel.
type Entry struct {
	ID        string          `json:"id" bson:"_id"`
	Family    string          `json:"family" bson:"family"`
	Options   pattern.Options `json:"options" bson:"options"`
	Seamless  bool            `json:"seamless" bson:"seamless"`
	PNG       []byte          `json:"png" bson:"png"`
	CreatedAt time.Time       `json:"created_at" bson:"created_at"`
}

// NewEntry creates an entry with a fresh ID and timestamp.
func NewEntry(family string, opts pattern.Options, seamless bool, png []byte) *Entry {
	return &Entry{
		ID:        uuid.NewString(),
		Family:    family,
		Options:   opts,
		Seamless:  seamless,
		PNG:       png,
		CreatedAt: time.Now().UTC(),
	}
}

// Store is the interface for gallery storage backends.
type Store interface {
	// Get retrieves an entry by ID. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id string) (*Entry, error)

	// List returns all entries, newest first.
	List(ctx context.Context) ([]*Entry, error)

	// Put stores an entry, overwriting any entry with the same ID.
	Put(ctx context.Context, entry *Entry) error

	// Delete removes an entry. Deleting a missing entry returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close(ctx context.Context) error
}
