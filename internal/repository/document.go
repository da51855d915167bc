package repository

import (
	"context"
	"errors"

	"docdash/internal/model"
)

var (
	ErrNotFound    = errors.New("document not found")
	ErrDuplicateID = errors.New("document id already exists")
)

// DocumentRepository holds an ordered document collection.
// Implementations keep insertion order; Update never moves a record.
type DocumentRepository interface {
	// Create appends doc. The caller assigns ID and CreatedAt.
	// Returns ErrDuplicateID when the id is already taken.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// List returns a copy of the collection in insertion order.
	List(ctx context.Context) ([]model.Document, error)

	// Update replaces the record with doc.ID in place or returns ErrNotFound.
	Update(ctx context.Context, doc *model.Document) (*model.Document, error)

	// Delete removes a document by ID or returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Len reports the collection size.
	Len(ctx context.Context) (int, error)
}
