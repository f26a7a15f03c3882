package account

import (
	"context"
	"errors"
	"time"

	"loan-escrow-service/internal/domain/ledger"
	"loan-escrow-service/pkg/id"
)

var ErrInvalidAccountID = errors.New("account_id must be 32-char lowercase hex")

// Usecase opens and reads ledger accounts. This is the minimal harness for
// the value-transfer boundary, not wallet management: no transfers are
// exposed here, only the escrow operations move money.
type Usecase struct{ accounts ledger.AccountRepository }

func NewUsecase(r ledger.AccountRepository) *Usecase { return &Usecase{accounts: r} }

type OpenAccountInput struct {
	AccountID string
	Balance   uint64
}

type AccountDTO struct {
	AccountID string    `json:"account_id"`
	Balance   uint64    `json:"balance"`
	Frozen    bool      `json:"frozen"`
	CreatedAt time.Time `json:"created_at"`
}

// Open creates an account with an opening balance. An empty AccountID gets
// a generated one.
func (u *Usecase) Open(ctx context.Context, in OpenAccountInput) (*AccountDTO, error) {
	if in.AccountID == "" {
		in.AccountID = id.NewID32()
	}
	if !id.Valid32(in.AccountID) {
		return nil, ErrInvalidAccountID
	}
	a := &ledger.Account{AccountID: in.AccountID, Balance: in.Balance}
	if err := u.accounts.Create(ctx, a); err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

func (u *Usecase) Get(ctx context.Context, accountID string) (*AccountDTO, error) {
	a, err := u.accounts.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

func toDTO(a *ledger.Account) *AccountDTO {
	return &AccountDTO{AccountID: a.AccountID, Balance: a.Balance, Frozen: a.Frozen, CreatedAt: a.CreatedAt}
}
