package mocks

import (
	"context"

	"docdash/internal/model"
	"docdash/internal/query"
	"github.com/stretchr/testify/mock"
)

type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Initialize(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDocumentStore) Criteria() model.FilterCriteria {
	args := m.Called()
	return args.Get(0).(model.FilterCriteria)
}

func (m *MockDocumentStore) SetFilter(ctx context.Context, field model.FilterField, raw string) (model.FilterCriteria, error) {
	args := m.Called(ctx, field, raw)
	return args.Get(0).(model.FilterCriteria), args.Error(1)
}

func (m *MockDocumentStore) ResetFilters(ctx context.Context) model.FilterCriteria {
	args := m.Called(ctx)
	return args.Get(0).(model.FilterCriteria)
}

func (m *MockDocumentStore) Add(ctx context.Context, in model.DocumentInput) (model.Document, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.Document), args.Error(1)
}

func (m *MockDocumentStore) Update(ctx context.Context, id string, in model.DocumentInput) (model.Document, bool, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(model.Document), args.Bool(1), args.Error(2)
}

func (m *MockDocumentStore) Remove(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockDocumentStore) Get(ctx context.Context, id string) (*model.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentStore) All(ctx context.Context) ([]model.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentStore) Filtered(ctx context.Context) ([]model.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentStore) Stats(ctx context.Context) (query.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(query.Stats), args.Error(1)
}
