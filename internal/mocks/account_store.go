package mocks

import (
	"context"

	"github.com/salesacademy/academy-api/internal/domain"
	"github.com/salesacademy/academy-api/internal/store"
)

// MockAccountStore is a configurable mock implementation of
// store.AccountStore.
type MockAccountStore struct {
	CreateFn            func(ctx context.Context, account *domain.Account) error
	VerifyCredentialsFn func(ctx context.Context, username, password string) (*domain.Account, error)
	ListFn              func(ctx context.Context) ([]*domain.Account, error)
	DeleteFn            func(ctx context.Context, uid string) error
}

var _ store.AccountStore = (*MockAccountStore)(nil)

func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, account)
	}
	return nil
}

func (m *MockAccountStore) VerifyCredentials(ctx context.Context, username, password string) (*domain.Account, error) {
	if m.VerifyCredentialsFn != nil {
		return m.VerifyCredentialsFn(ctx, username, password)
	}
	return nil, store.ErrInvalidCredentials
}

func (m *MockAccountStore) List(ctx context.Context) ([]*domain.Account, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *MockAccountStore) Delete(ctx context.Context, uid string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, uid)
	}
	return nil
}
