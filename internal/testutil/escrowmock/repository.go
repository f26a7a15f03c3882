package escrowmock

import (
	"context"
	"errors"

	domain "loan-escrow-service/internal/domain/escrow"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("escrowmock: method not implemented")

// Repo is a function-backed mock satisfying escrow.Repository. Fill in the
// fields a test needs; unfilled getters return errUnimplemented and unfilled
// writers succeed.
type Repo struct {
	CreateFn                 func(ctx context.Context, e *domain.Escrow) error
	GetByEscrowIDFn          func(ctx context.Context, escrowID string) (*domain.Escrow, error)
	GetByEscrowIDForUpdateFn func(ctx context.Context, escrowID string) (*domain.Escrow, error)
	SaveFn                   func(ctx context.Context, e *domain.Escrow) error
}

func (m *Repo) Create(ctx context.Context, e *domain.Escrow) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) GetByEscrowID(ctx context.Context, escrowID string) (*domain.Escrow, error) {
	if m.GetByEscrowIDFn != nil {
		return m.GetByEscrowIDFn(ctx, escrowID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByEscrowIDForUpdate(ctx context.Context, escrowID string) (*domain.Escrow, error) {
	if m.GetByEscrowIDForUpdateFn != nil {
		return m.GetByEscrowIDForUpdateFn(ctx, escrowID)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, e *domain.Escrow) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}
