package mocks

import (
	"context"

	"github.com/salesacademy/academy-api/internal/domain"
	"github.com/salesacademy/academy-api/internal/store"
)

// MockResultStore is a configurable mock implementation of store.ResultStore.
type MockResultStore struct {
	RecordFn      func(ctx context.Context, result *domain.Result) error
	ListByUIDFn   func(ctx context.Context, uid string) ([]*domain.Result, error)
	ListAllFn     func(ctx context.Context) ([]*domain.Result, error)
	DeleteByUIDFn func(ctx context.Context, uid string) error
}

var _ store.ResultStore = (*MockResultStore)(nil)

func (m *MockResultStore) Record(ctx context.Context, result *domain.Result) error {
	if m.RecordFn != nil {
		return m.RecordFn(ctx, result)
	}
	return nil
}

func (m *MockResultStore) ListByUID(ctx context.Context, uid string) ([]*domain.Result, error) {
	if m.ListByUIDFn != nil {
		return m.ListByUIDFn(ctx, uid)
	}
	return nil, nil
}

func (m *MockResultStore) ListAll(ctx context.Context) ([]*domain.Result, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}

func (m *MockResultStore) DeleteByUID(ctx context.Context, uid string) error {
	if m.DeleteByUIDFn != nil {
		return m.DeleteByUIDFn(ctx, uid)
	}
	return nil
}
