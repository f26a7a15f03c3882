package uowmock

import (
	"context"
	"errors"

	"loan-escrow-service/internal/domain/escrow"
	"loan-escrow-service/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock satisfying uow.UnitOfWork. The zero value
// returns errUnimplemented from every method; Passthrough builds one that
// simply invokes the callback against fixed repos, which is what most
// usecase tests want.
type UoW struct {
	WithinTxFn       func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinEscrowTxFn func(ctx context.Context, escrowID string, fn func(r uow.Repos, e *escrow.Escrow) error) error
}

// Passthrough runs callbacks directly against r, loading the escrow through
// r.Escrows.GetByEscrowIDForUpdate. No transactional rollback is simulated.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(r)
		},
		WithinEscrowTxFn: func(ctx context.Context, escrowID string, fn func(uow.Repos, *escrow.Escrow) error) error {
			e, err := r.Escrows.GetByEscrowIDForUpdate(ctx, escrowID)
			if err != nil {
				return err
			}
			return fn(r, e)
		},
	}
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinEscrowTx(ctx context.Context, escrowID string, fn func(r uow.Repos, e *escrow.Escrow) error) error {
	if m.WithinEscrowTxFn != nil {
		return m.WithinEscrowTxFn(ctx, escrowID, fn)
	}
	return errUnimplemented
}
