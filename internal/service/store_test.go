package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docdash/internal/model"
	"docdash/internal/query"
	"docdash/internal/repository"
	"docdash/internal/repository/memory"
	repoMocks "docdash/internal/repository/mocks"
	"docdash/internal/seed"
)

var fixedNow = time.Date(2024, 6, 30, 14, 5, 0, 0, time.UTC)

func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}
}

func newSeededStore(t *testing.T) DocumentStore {
	t.Helper()
	s := NewDocumentStore(memory.NewDocumentMemory(), seed.Static(),
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(counterIDs()),
	)
	require.NoError(t, s.Initialize(context.Background()))
	return s
}

func ids(docs []model.Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.ID)
	}
	return out
}

func input(name string) model.DocumentInput {
	return model.DocumentInput{
		Name:     name,
		Number:   "NUM-" + name,
		Division: model.DivisionOperations,
		Category: model.CategoryInvoice,
		Status:   model.StatusInReview,
		Link:     "https://example.com/" + name,
	}
}

func TestDocumentStore_SeedScenario(t *testing.T) {
	ctx := context.Background()
	s := newSeededStore(t)

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, query.Stats{Total: 4, Draft: 2, InReview: 1, Approved: 1}, st)

	_, err = s.SetFilter(ctx, model.FilterStatus, "Draft")
	require.NoError(t, err)
	got, err := s.Filtered(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"doc-1", "doc-4"}, ids(got))
	for _, d := range got {
		assert.Equal(t, model.StatusDraft, d.Status)
	}
}

func TestDocumentStore_InitializeTwice(t *testing.T) {
	ctx := context.Background()
	s := newSeededStore(t)

	assert.ErrorIs(t, s.Initialize(ctx), ErrAlreadyInitialized)
	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestDocumentStore_InitializeFillsMissingFields(t *testing.T) {
	ctx := context.Background()
	src := seed.SourceFunc(func(ctx context.Context) ([]model.Document, error) {
		return []model.Document{{Name: "no id"}, {ID: "keep", Name: "has id"}}, nil
	})
	s := NewDocumentStore(memory.NewDocumentMemory(), src,
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(counterIDs()),
	)
	require.NoError(t, s.Initialize(ctx))

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"gen-1", "keep"}, ids(all))
	for _, d := range all {
		assert.Equal(t, model.Today(fixedNow), d.CreatedAt)
	}
}

func TestDocumentStore_InitializeErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("source error", func(t *testing.T) {
		src := seed.SourceFunc(func(ctx context.Context) ([]model.Document, error) {
			return nil, errors.New("boom")
		})
		s := NewDocumentStore(memory.NewDocumentMemory(), src)
		err := s.Initialize(ctx)
		assert.ErrorContains(t, err, "load seed: boom")
	})

	t.Run("duplicate seed ids", func(t *testing.T) {
		src := seed.SourceFunc(func(ctx context.Context) ([]model.Document, error) {
			return []model.Document{{ID: "a"}, {ID: "a"}}, nil
		})
		repo := memory.NewDocumentMemory()
		s := NewDocumentStore(repo, src)
		err := s.Initialize(ctx)
		assert.ErrorIs(t, err, repository.ErrDuplicateID)
		n, err := repo.Len(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("repository failure rolls back", func(t *testing.T) {
		src := seed.SourceFunc(func(ctx context.Context) ([]model.Document, error) {
			return []model.Document{{ID: "a"}, {ID: "b"}}, nil
		})
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("Create", mock.Anything, mock.MatchedBy(func(d *model.Document) bool { return d.ID == "a" })).
			Return(&model.Document{ID: "a"}, nil).Once()
		mRepo.On("Create", mock.Anything, mock.MatchedBy(func(d *model.Document) bool { return d.ID == "b" })).
			Return(nil, errors.New("disk full")).Once()
		mRepo.On("Delete", mock.Anything, "a").Return(nil).Once()

		s := NewDocumentStore(mRepo, src)
		err := s.Initialize(ctx)
		assert.ErrorContains(t, err, "disk full")
		mRepo.AssertExpectations(t)
	})

	t.Run("retry after failure", func(t *testing.T) {
		calls := 0
		src := seed.SourceFunc(func(ctx context.Context) ([]model.Document, error) {
			calls++
			if calls == 1 {
				return []model.Document{{ID: "a"}, {ID: "a"}}, nil
			}
			return []model.Document{{ID: "a"}, {ID: "b"}}, nil
		})
		repo := memory.NewDocumentMemory()
		s := NewDocumentStore(repo, src)
		require.Error(t, s.Initialize(ctx))
		require.NoError(t, s.Initialize(ctx))
		n, err := repo.Len(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}

func TestDocumentStore_Add(t *testing.T) {
	ctx := context.Background()
	s := newSeededStore(t)

	doc, err := s.Add(ctx, input("policy"))
	require.NoError(t, err)
	assert.Equal(t, "gen-1", doc.ID)
	assert.Equal(t, model.Today(fixedNow), doc.CreatedAt)
	assert.Equal(t, "policy", doc.Name)

	all, err := s.Filtered(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, doc, all[4], "new document is appended at the end")

	count := 0
	for _, d := range all {
		if d.ID == doc.ID {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestDocumentStore_AddKeepsSuppliedDate(t *testing.T) {
	ctx := context.Background()
	s := newSeededStore(t)

	in := input("dated")
	in.CreatedAt = time.Date(2020, 2, 2, 0, 0, 0, 0, time.UTC)
	doc, err := s.Add(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, in.CreatedAt, doc.CreatedAt)
}

func TestDocumentStore_AddGeneratesUniqueIDs(t *testing.T) {
	ctx := context.Background()
	s := NewDocumentStore(memory.NewDocumentMemory(), seed.Static())
	require.NoError(t, s.Initialize(ctx))

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		doc, err := s.Add(ctx, input("rapid"))
		require.NoError(t, err)
		require.False(t, seen[doc.ID], "id %s reused", doc.ID)
		seen[doc.ID] = true
	}
}

func TestDocumentStore_Update(t *testing.T) {
	ctx := context.Background()
	s := newSeededStore(t)

	before, err := s.Get(ctx, "doc-2")
	require.NoError(t, err)

	in := input("renamed")
	in.CreatedAt = fixedNow
	doc, ok, err := s.Update(ctx, "doc-2", in)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "doc-2", doc.ID)
	assert.Equal(t, "renamed", doc.Name)
	assert.Equal(t, before.CreatedAt, doc.CreatedAt, "createdAt is never recomputed")

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"doc-1", "doc-2", "doc-3", "doc-4"}, ids(all))
	assert.Equal(t, "renamed", all[1].Name)
}

func TestDocumentStore_UpdateMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	s := newSeededStore(t)
	before, err := s.All(ctx)
	require.NoError(t, err)

	_, ok, err := s.Update(ctx, "nope", input("x"))
	require.NoError(t, err)
	assert.False(t, ok)

	after, err := s.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDocumentStore_Remove(t *testing.T) {
	ctx := context.Background()
	s := newSeededStore(t)

	ok, err := s.Remove(ctx, "doc-3")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := s.Filtered(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"doc-1", "doc-2", "doc-4"}, ids(got))

	_, err = s.Get(ctx, "doc-3")
	assert.ErrorIs(t, err, ErrNotFound)

	before, err := s.All(ctx)
	require.NoError(t, err)
	ok, err = s.Remove(ctx, "doc-3")
	require.NoError(t, err)
	assert.False(t, ok)
	after, err := s.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDocumentStore_Filters(t *testing.T) {
	ctx := context.Background()
	s := newSeededStore(t)

	c, err := s.SetFilter(ctx, model.FilterDivision, "Finance")
	require.NoError(t, err)
	assert.Equal(t, "Finance", c.Get(model.FilterDivision))

	c, err = s.SetFilter(ctx, model.FilterSearch, "q3")
	require.NoError(t, err)
	assert.Equal(t, "Finance", c.Get(model.FilterDivision), "other fields untouched")

	got, err := s.Filtered(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"doc-2"}, ids(got))

	_, err = s.SetFilter(ctx, model.FilterStatus, "Published")
	assert.ErrorIs(t, err, model.ErrInvalidFilterValue)
	assert.Equal(t, c, s.Criteria(), "criteria unchanged after rejected value")

	c = s.ResetFilters(ctx)
	assert.Equal(t, model.DefaultCriteria(), c)
	got, err = s.Filtered(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestDocumentStore_MutationVisibleToNextRead(t *testing.T) {
	ctx := context.Background()
	s := newSeededStore(t)

	_, err := s.Add(ctx, model.DocumentInput{Name: "A", Number: "1", Status: model.StatusArchived, Link: "https://x.y"})
	require.NoError(t, err)
	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, st.Total)
	assert.Equal(t, 1, st.Archived)
}

func TestDocumentStore_RepositoryErrors(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("repo failure")

	tests := []struct {
		name       string
		setupMocks func(m *repoMocks.MockDocumentRepository)
		run        func(s DocumentStore) error
		wantErrMsg string
	}{
		{
			name: "add",
			setupMocks: func(m *repoMocks.MockDocumentRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(d *model.Document) bool {
					return d.ID == "gen-1" && d.Name == "x"
				})).Return(nil, dbErr)
			},
			run: func(s DocumentStore) error {
				_, err := s.Add(ctx, input("x"))
				return err
			},
			wantErrMsg: "add document: repo failure",
		},
		{
			name: "update lookup",
			setupMocks: func(m *repoMocks.MockDocumentRepository) {
				m.On("FindByID", mock.Anything, "a").Return(nil, dbErr)
			},
			run: func(s DocumentStore) error {
				_, _, err := s.Update(ctx, "a", input("x"))
				return err
			},
			wantErrMsg: "repo failure",
		},
		{
			name: "update write",
			setupMocks: func(m *repoMocks.MockDocumentRepository) {
				m.On("FindByID", mock.Anything, "a").Return(&model.Document{ID: "a"}, nil)
				m.On("Update", mock.Anything, mock.Anything).Return(nil, dbErr)
			},
			run: func(s DocumentStore) error {
				_, _, err := s.Update(ctx, "a", input("x"))
				return err
			},
			wantErrMsg: "update document: repo failure",
		},
		{
			name: "remove",
			setupMocks: func(m *repoMocks.MockDocumentRepository) {
				m.On("Delete", mock.Anything, "a").Return(dbErr)
			},
			run: func(s DocumentStore) error {
				_, err := s.Remove(ctx, "a")
				return err
			},
			wantErrMsg: "remove document: repo failure",
		},
		{
			name: "filtered",
			setupMocks: func(m *repoMocks.MockDocumentRepository) {
				m.On("List", mock.Anything).Return(nil, dbErr)
			},
			run: func(s DocumentStore) error {
				_, err := s.Filtered(ctx)
				return err
			},
			wantErrMsg: "repo failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockDocumentRepository)
			tt.setupMocks(mRepo)
			s := NewDocumentStore(mRepo, seed.Static(), WithIDGenerator(counterIDs()))

			err := tt.run(s)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErrMsg)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestDocumentStore_UpdateRaceWithRemoveIsNoop(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockDocumentRepository)
	mRepo.On("FindByID", mock.Anything, "a").Return(&model.Document{ID: "a"}, nil)
	mRepo.On("Update", mock.Anything, mock.Anything).Return(nil, repository.ErrNotFound)

	s := NewDocumentStore(mRepo, seed.Static())
	_, ok, err := s.Update(ctx, "a", input("x"))
	require.NoError(t, err)
	assert.False(t, ok)
	mRepo.AssertExpectations(t)
}
