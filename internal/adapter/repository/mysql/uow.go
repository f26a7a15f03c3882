package mysql

import (
	"context"

	"loan-escrow-service/internal/domain/escrow"
	"loan-escrow-service/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Escrows:  &EscrowRepository{db: tx},
		Accounts: &AccountRepository{db: tx},
		Events:   &EventRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinEscrowTx(ctx context.Context, escrowID string, fn func(r uow.Repos, e *escrow.Escrow) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the escrow row up-front to prevent races
		e, err := r.Escrows.GetByEscrowIDForUpdate(ctx, escrowID)
		if err != nil {
			return err
		}
		return fn(r, e)
	})
}
