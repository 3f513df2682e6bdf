package mocks

import (
	"context"

	"github.com/salesacademy/academy-api/internal/domain"
	"github.com/salesacademy/academy-api/internal/store"
)

// MockStrikeStore is a configurable mock implementation of store.StrikeStore.
type MockStrikeStore struct {
	AddFn         func(ctx context.Context, uid, reason string) error
	AddBulkFn     func(ctx context.Context, entries []domain.StrikeEntry, defaultReason string) (int, error)
	RemoveFn      func(ctx context.Context, id int64, reason string) error
	ListActiveFn  func(ctx context.Context, uid string) ([]*domain.Strike, error)
	ListAllFn     func(ctx context.Context, uid string) ([]*domain.Strike, error)
	SummarizeFn   func(ctx context.Context) ([]*domain.StrikeSummary, error)
	CountActiveFn func(ctx context.Context) (map[string]int, error)
	DeleteByUIDFn func(ctx context.Context, uid string) error
}

var _ store.StrikeStore = (*MockStrikeStore)(nil)

func (m *MockStrikeStore) Add(ctx context.Context, uid, reason string) error {
	if m.AddFn != nil {
		return m.AddFn(ctx, uid, reason)
	}
	return nil
}

func (m *MockStrikeStore) AddBulk(ctx context.Context, entries []domain.StrikeEntry, defaultReason string) (int, error) {
	if m.AddBulkFn != nil {
		return m.AddBulkFn(ctx, entries, defaultReason)
	}
	return len(entries), nil
}

func (m *MockStrikeStore) Remove(ctx context.Context, id int64, reason string) error {
	if m.RemoveFn != nil {
		return m.RemoveFn(ctx, id, reason)
	}
	return nil
}

func (m *MockStrikeStore) ListActive(ctx context.Context, uid string) ([]*domain.Strike, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx, uid)
	}
	return nil, nil
}

func (m *MockStrikeStore) ListAll(ctx context.Context, uid string) ([]*domain.Strike, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx, uid)
	}
	return nil, nil
}

func (m *MockStrikeStore) Summarize(ctx context.Context) ([]*domain.StrikeSummary, error) {
	if m.SummarizeFn != nil {
		return m.SummarizeFn(ctx)
	}
	return nil, nil
}

func (m *MockStrikeStore) CountActive(ctx context.Context) (map[string]int, error) {
	if m.CountActiveFn != nil {
		return m.CountActiveFn(ctx)
	}
	return map[string]int{}, nil
}

func (m *MockStrikeStore) DeleteByUID(ctx context.Context, uid string) error {
	if m.DeleteByUIDFn != nil {
		return m.DeleteByUIDFn(ctx, uid)
	}
	return nil
}
