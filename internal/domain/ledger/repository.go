package ledger

import "context"

type AccountRepository interface {
	Create(ctx context.Context, a *Account) error
	GetByAccountID(ctx context.Context, accountID string) (*Account, error)
	Save(ctx context.Context, a *Account) error

	// Debit removes amount from the account, failing with
	// ErrInsufficientFunds when the balance does not cover it.
	Debit(ctx context.Context, accountID string, amount uint64) error
	// Credit adds amount to the account, failing with ErrAccountFrozen
	// when the account rejects incoming transfers.
	Credit(ctx context.Context, accountID string, amount uint64) error
}

type EventRepository interface {
	Append(ctx context.Context, ev *Event) error
	ListByEscrowID(ctx context.Context, escrowID string) ([]Event, error)
}
