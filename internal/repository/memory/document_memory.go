package memory

import (
	"context"
	"sync"

	"docdash/internal/model"
	"docdash/internal/repository"
)

// DocumentMemory is an in-memory, order-preserving implementation of
// repository.DocumentRepository. It is safe for concurrent use.
type DocumentMemory struct {
	mu   sync.RWMutex
	docs []model.Document
}

// NewDocumentMemory creates an empty repository.
func NewDocumentMemory() *DocumentMemory {
	return &DocumentMemory{}
}

var _ repository.DocumentRepository = (*DocumentMemory)(nil)

// Create appends a copy of doc to the end of the collection.
func (r *DocumentMemory) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(doc.ID) >= 0 {
		return nil, repository.ErrDuplicateID
	}
	r.docs = append(r.docs, *doc)
	out := *doc
	return &out, nil
}

// FindByID returns a copy of the matching document.
func (r *DocumentMemory) FindByID(ctx context.Context, id string) (*model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	out := r.docs[i]
	return &out, nil
}

// List returns the collection in insertion order. The slice is never nil.
func (r *DocumentMemory) List(ctx context.Context) ([]model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Document, len(r.docs))
	copy(out, r.docs)
	return out, nil
}

// Update overwrites the record at its current position.
func (r *DocumentMemory) Update(ctx context.Context, doc *model.Document) (*model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(doc.ID)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	r.docs[i] = *doc
	out := *doc
	return &out, nil
}

// Delete removes the record and closes the gap, keeping relative order.
func (r *DocumentMemory) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.docs = append(r.docs[:i], r.docs[i+1:]...)
	return nil
}

// Len reports how many documents are held.
func (r *DocumentMemory) Len(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.docs), nil
}

// caller holds mu
func (r *DocumentMemory) indexOf(id string) int {
	for i := range r.docs {
		if r.docs[i].ID == id {
			return i
		}
	}
	return -1
}
