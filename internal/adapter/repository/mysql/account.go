package mysql

import (
	"context"
	"errors"

	"loan-escrow-service/internal/domain/ledger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AccountRepository struct{ db *gorm.DB }

func NewAccountRepository(db *gorm.DB) *AccountRepository { return &AccountRepository{db: db} }

func (r *AccountRepository) Create(ctx context.Context, a *ledger.Account) error {
	err := r.db.WithContext(ctx).Create(a).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ledger.ErrAccountExists
	}
	return err
}

func (r *AccountRepository) Save(ctx context.Context, a *ledger.Account) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AccountRepository) GetByAccountID(ctx context.Context, accountID string) (*ledger.Account, error) {
	var out ledger.Account
	res := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, ledger.ErrAccountNotFound
	}
	return &out, res.Error
}

func (r *AccountRepository) getForUpdate(ctx context.Context, accountID string) (*ledger.Account, error) {
	q := r.db.WithContext(ctx)
	if r.db.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out ledger.Account
	res := q.Where("account_id = ?", accountID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, ledger.ErrAccountNotFound
	}
	return &out, res.Error
}

func (r *AccountRepository) Debit(ctx context.Context, accountID string, amount uint64) error {
	a, err := r.getForUpdate(ctx, accountID)
	if err != nil {
		return err
	}
	if a.Balance < amount {
		return ledger.ErrInsufficientFunds
	}
	a.Balance -= amount
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AccountRepository) Credit(ctx context.Context, accountID string, amount uint64) error {
	a, err := r.getForUpdate(ctx, accountID)
	if err != nil {
		return err
	}
	if a.Frozen {
		return ledger.ErrAccountFrozen
	}
	a.Balance += amount
	return r.db.WithContext(ctx).Save(a).Error
}
