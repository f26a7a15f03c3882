package uow

import (
	"context"

	"loan-escrow-service/internal/domain/escrow"
	"loan-escrow-service/internal/domain/ledger"
)

type Repos struct {
	Escrows  escrow.Repository
	Accounts ledger.AccountRepository
	Events   ledger.EventRepository
}

// UnitOfWork binds all repositories to one all-or-nothing transaction.
// The transaction is what makes an escrow operation atomic: state flags,
// balance moves and the notification row commit together or not at all.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the escrow row first, then pass it in
	WithinEscrowTx(ctx context.Context, escrowID string, fn func(r Repos, e *escrow.Escrow) error) error
}
