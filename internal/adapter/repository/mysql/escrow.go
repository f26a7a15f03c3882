package mysql

import (
	"context"
	"errors"

	escrowDomain "loan-escrow-service/internal/domain/escrow"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EscrowRepository struct{ db *gorm.DB }

func NewEscrowRepository(db *gorm.DB) *EscrowRepository { return &EscrowRepository{db: db} }

func (r *EscrowRepository) Create(ctx context.Context, e *escrowDomain.Escrow) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EscrowRepository) Save(ctx context.Context, e *escrowDomain.Escrow) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EscrowRepository) GetByEscrowID(ctx context.Context, escrowID string) (*escrowDomain.Escrow, error) {
	var out escrowDomain.Escrow
	res := r.db.WithContext(ctx).Where("escrow_id = ?", escrowID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, escrowDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *EscrowRepository) GetByEscrowIDForUpdate(ctx context.Context, escrowID string) (*escrowDomain.Escrow, error) {
	q := r.db.WithContext(ctx)
	// sqlite (tests) has no row locks; its single writer serializes anyway.
	if r.db.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out escrowDomain.Escrow
	res := q.Where("escrow_id = ?", escrowID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, escrowDomain.ErrNotFound
	}
	return &out, res.Error
}
