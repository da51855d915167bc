package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"docdash/internal/metrics"
	"docdash/internal/model"
	"docdash/internal/query"
	"docdash/internal/repository"
	"docdash/internal/seed"
)

var (
	ErrAlreadyInitialized = errors.New("store already initialized")
	ErrNotFound           = errors.New("document not found")
)

var tracer = otel.Tracer("docdash/internal/service")

// DocumentStore is the single source of truth for a session's documents and the
// active filter criteria. It is the only component that mutates either.
type DocumentStore interface {
	// Initialize loads the seed source. It must be called once before anything else.
	Initialize(ctx context.Context) error

	// Criteria returns the active filter criteria.
	Criteria() model.FilterCriteria

	// SetFilter replaces one criteria field, leaving the others untouched.
	SetFilter(ctx context.Context, field model.FilterField, raw string) (model.FilterCriteria, error)

	// ResetFilters restores wildcard criteria.
	ResetFilters(ctx context.Context) model.FilterCriteria

	// Add stores a new document under a fresh id at the end of the collection.
	Add(ctx context.Context, in model.DocumentInput) (model.Document, error)

	// Update replaces the editable fields of the document with id in place.
	// ok is false, with a nil error, when no such document exists.
	Update(ctx context.Context, id string, in model.DocumentInput) (doc model.Document, ok bool, err error)

	// Remove deletes the document with id. ok is false when it was absent.
	Remove(ctx context.Context, id string) (ok bool, err error)

	// Get returns one document or ErrNotFound.
	Get(ctx context.Context, id string) (*model.Document, error)

	// All returns the whole collection in order.
	All(ctx context.Context) ([]model.Document, error)

	// Filtered returns the collection narrowed by the active criteria.
	Filtered(ctx context.Context) ([]model.Document, error)

	// Stats aggregates the whole collection.
	Stats(ctx context.Context) (query.Stats, error)
}

// Option customizes a store.
type Option func(*documentStore)

// WithClock overrides the time source used for creation dates.
func WithClock(now func() time.Time) Option {
	return func(s *documentStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides the id generator. The default is a random UUID.
func WithIDGenerator(gen func() string) Option {
	return func(s *documentStore) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithLogger attaches a logger; the default discards.
func WithLogger(log *zap.Logger) Option {
	return func(s *documentStore) {
		if log != nil {
			s.log = log
		}
	}
}

type documentStore struct {
	repo   repository.DocumentRepository
	source seed.Source
	now    func() time.Time
	newID  func() string
	log    *zap.Logger

	mu          sync.RWMutex
	criteria    model.FilterCriteria
	initialized bool
}

// NewDocumentStore constructs a DocumentStore over repo, seeded from source.
func NewDocumentStore(repo repository.DocumentRepository, source seed.Source, opts ...Option) DocumentStore {
	s := &documentStore{
		repo:     repo,
		source:   source,
		now:      time.Now,
		newID:    uuid.NewString,
		log:      zap.NewNop(),
		criteria: model.DefaultCriteria(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *documentStore) Initialize(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "DocumentStore.Initialize")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return ErrAlreadyInitialized
	}

	docs, err := s.source.Documents(ctx)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}
	today := model.Today(s.now())
	prepared := make([]model.Document, 0, len(docs))
	seen := make(map[string]bool, len(docs))
	for _, d := range docs {
		if d.ID == "" {
			d.ID = s.newID()
		}
		if seen[d.ID] {
			return fmt.Errorf("seed document %q: %w", d.ID, repository.ErrDuplicateID)
		}
		seen[d.ID] = true
		if d.CreatedAt.IsZero() {
			d.CreatedAt = today
		}
		prepared = append(prepared, d)
	}
	for i := range prepared {
		if _, err := s.repo.Create(ctx, &prepared[i]); err != nil {
			for _, done := range prepared[:i] {
				_ = s.repo.Delete(ctx, done.ID)
			}
			return fmt.Errorf("seed document %q: %w", prepared[i].ID, err)
		}
	}
	s.initialized = true
	span.SetAttributes(attribute.Int("documents.seeded", len(docs)))
	s.log.Debug("store initialized", zap.Int("documents", len(docs)))
	return nil
}

func (s *documentStore) Criteria() model.FilterCriteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria
}

func (s *documentStore) SetFilter(ctx context.Context, field model.FilterField, raw string) (model.FilterCriteria, error) {
	_, span := tracer.Start(ctx, "DocumentStore.SetFilter", trace.WithAttributes(
		attribute.String("filter.field", string(field)),
	))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := s.criteria.With(field, raw)
	if err != nil {
		return s.criteria, err
	}
	s.criteria = next
	return next, nil
}

func (s *documentStore) ResetFilters(ctx context.Context) model.FilterCriteria {
	_, span := tracer.Start(ctx, "DocumentStore.ResetFilters")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = model.DefaultCriteria()
	return s.criteria
}

func (s *documentStore) Add(ctx context.Context, in model.DocumentInput) (model.Document, error) {
	ctx, span := tracer.Start(ctx, "DocumentStore.Add")
	defer span.End()

	created := in.CreatedAt
	if created.IsZero() {
		created = model.Today(s.now())
	}
	doc := model.Document{ID: s.newID(), CreatedAt: created}.Apply(in)

	stored, err := s.repo.Create(ctx, &doc)
	if err != nil {
		metrics.DocumentMutations.WithLabelValues("add", "error").Inc()
		return model.Document{}, fmt.Errorf("add document: %w", err)
	}
	span.SetAttributes(attribute.String("document.id", stored.ID))
	metrics.DocumentMutations.WithLabelValues("add", "applied").Inc()
	s.log.Info("document added", zap.String("id", stored.ID), zap.String("number", stored.Number))
	return *stored, nil
}

func (s *documentStore) Update(ctx context.Context, id string, in model.DocumentInput) (model.Document, bool, error) {
	ctx, span := tracer.Start(ctx, "DocumentStore.Update", trace.WithAttributes(
		attribute.String("document.id", id),
	))
	defer span.End()

	cur, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.DocumentMutations.WithLabelValues("update", "noop").Inc()
			s.log.Debug("update of unknown document ignored", zap.String("id", id))
			return model.Document{}, false, nil
		}
		return model.Document{}, false, err
	}

	next := cur.Apply(in)
	stored, err := s.repo.Update(ctx, &next)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// removed between lookup and write
			metrics.DocumentMutations.WithLabelValues("update", "noop").Inc()
			return model.Document{}, false, nil
		}
		metrics.DocumentMutations.WithLabelValues("update", "error").Inc()
		return model.Document{}, false, fmt.Errorf("update document: %w", err)
	}
	metrics.DocumentMutations.WithLabelValues("update", "applied").Inc()
	s.log.Info("document updated", zap.String("id", id))
	return *stored, true, nil
}

func (s *documentStore) Remove(ctx context.Context, id string) (bool, error) {
	ctx, span := tracer.Start(ctx, "DocumentStore.Remove", trace.WithAttributes(
		attribute.String("document.id", id),
	))
	defer span.End()

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.DocumentMutations.WithLabelValues("remove", "noop").Inc()
			s.log.Debug("remove of unknown document ignored", zap.String("id", id))
			return false, nil
		}
		metrics.DocumentMutations.WithLabelValues("remove", "error").Inc()
		return false, fmt.Errorf("remove document: %w", err)
	}
	metrics.DocumentMutations.WithLabelValues("remove", "applied").Inc()
	s.log.Info("document removed", zap.String("id", id))
	return true, nil
}

func (s *documentStore) Get(ctx context.Context, id string) (*model.Document, error) {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentStore) All(ctx context.Context) ([]model.Document, error) {
	return s.repo.List(ctx)
}

func (s *documentStore) Filtered(ctx context.Context) ([]model.Document, error) {
	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(docs, s.Criteria()), nil
}

func (s *documentStore) Stats(ctx context.Context) (query.Stats, error) {
	docs, err := s.repo.List(ctx)
	if err != nil {
		return query.Stats{}, err
	}
	return query.Aggregate(docs), nil
}
