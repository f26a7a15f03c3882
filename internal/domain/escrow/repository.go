package escrow

import "context"

type Repository interface {
	Create(ctx context.Context, e *Escrow) error
	GetByEscrowID(ctx context.Context, escrowID string) (*Escrow, error)
	// GetByEscrowIDForUpdate locks the row for the duration of the
	// enclosing transaction.
	GetByEscrowIDForUpdate(ctx context.Context, escrowID string) (*Escrow, error)
	Save(ctx context.Context, e *Escrow) error
}
