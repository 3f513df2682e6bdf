package mocks

import (
	"context"

	"github.com/salesacademy/academy-api/internal/domain"
	"github.com/salesacademy/academy-api/internal/store"
)

// MockProgressStore is a configurable mock implementation of
// store.ProgressStore.
type MockProgressStore struct {
	GetFn    func(ctx context.Context, uid string) (domain.ProgressDocument, error)
	SaveFn   func(ctx context.Context, uid string, doc domain.ProgressDocument) error
	EnsureFn func(ctx context.Context, uid string) error
	ResetFn  func(ctx context.Context, uid string) error
	DeleteFn func(ctx context.Context, uid string) error
}

var _ store.ProgressStore = (*MockProgressStore)(nil)

func (m *MockProgressStore) Get(ctx context.Context, uid string) (domain.ProgressDocument, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, uid)
	}
	return domain.EmptyProgress(), nil
}

func (m *MockProgressStore) Save(ctx context.Context, uid string, doc domain.ProgressDocument) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, uid, doc)
	}
	return nil
}

func (m *MockProgressStore) Ensure(ctx context.Context, uid string) error {
	if m.EnsureFn != nil {
		return m.EnsureFn(ctx, uid)
	}
	return nil
}

func (m *MockProgressStore) Reset(ctx context.Context, uid string) error {
	if m.ResetFn != nil {
		return m.ResetFn(ctx, uid)
	}
	return nil
}

func (m *MockProgressStore) Delete(ctx context.Context, uid string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, uid)
	}
	return nil
}
