package ledgermock

import (
	"context"
	"errors"

	"loan-escrow-service/internal/domain/ledger"
)

var (
	_ ledger.AccountRepository = (*Accounts)(nil)
	_ ledger.EventRepository   = (*Events)(nil)
)

var errUnimplemented = errors.New("ledgermock: method not implemented")

// Accounts is a function-backed mock satisfying ledger.AccountRepository.
type Accounts struct {
	CreateFn         func(ctx context.Context, a *ledger.Account) error
	GetByAccountIDFn func(ctx context.Context, accountID string) (*ledger.Account, error)
	SaveFn           func(ctx context.Context, a *ledger.Account) error
	DebitFn          func(ctx context.Context, accountID string, amount uint64) error
	CreditFn         func(ctx context.Context, accountID string, amount uint64) error
}

func (m *Accounts) Create(ctx context.Context, a *ledger.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Accounts) GetByAccountID(ctx context.Context, accountID string) (*ledger.Account, error) {
	if m.GetByAccountIDFn != nil {
		return m.GetByAccountIDFn(ctx, accountID)
	}
	return nil, errUnimplemented
}

func (m *Accounts) Save(ctx context.Context, a *ledger.Account) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Accounts) Debit(ctx context.Context, accountID string, amount uint64) error {
	if m.DebitFn != nil {
		return m.DebitFn(ctx, accountID, amount)
	}
	return nil
}

func (m *Accounts) Credit(ctx context.Context, accountID string, amount uint64) error {
	if m.CreditFn != nil {
		return m.CreditFn(ctx, accountID, amount)
	}
	return nil
}

// Events is a function-backed mock satisfying ledger.EventRepository.
type Events struct {
	AppendFn         func(ctx context.Context, ev *ledger.Event) error
	ListByEscrowIDFn func(ctx context.Context, escrowID string) ([]ledger.Event, error)
}

func (m *Events) Append(ctx context.Context, ev *ledger.Event) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, ev)
	}
	return nil
}

func (m *Events) ListByEscrowID(ctx context.Context, escrowID string) ([]ledger.Event, error) {
	if m.ListByEscrowIDFn != nil {
		return m.ListByEscrowIDFn(ctx, escrowID)
	}
	return nil, errUnimplemented
}
