package mysql

import (
	"context"

	"loan-escrow-service/internal/domain/ledger"

	"gorm.io/gorm"
)

type EventRepository struct{ db *gorm.DB }

func NewEventRepository(db *gorm.DB) *EventRepository { return &EventRepository{db: db} }

func (r *EventRepository) Append(ctx context.Context, ev *ledger.Event) error {
	return r.db.WithContext(ctx).Create(ev).Error
}

func (r *EventRepository) ListByEscrowID(ctx context.Context, escrowID string) ([]ledger.Event, error) {
	var out []ledger.Event
	res := r.db.WithContext(ctx).
		Where("escrow_id = ?", escrowID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
