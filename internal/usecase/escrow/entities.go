package escrow

import (
	"time"
)

type CreateEscrowInput struct {
	LenderID   string
	BorrowerID string
	Amount     uint64
}

type EscrowDTO struct {
	EscrowID    string    `json:"escrow_id"`
	LenderID    string    `json:"lender_id"`
	BorrowerID  string    `json:"borrower_id"`
	Amount      uint64    `json:"amount"`
	State       string    `json:"state"`
	HeldBalance uint64    `json:"held_balance"`
	CreatedAt   time.Time `json:"created_at"`
}

type EventDTO struct {
	EventID    string    `json:"event_id"`
	EscrowID   string    `json:"escrow_id"`
	Type       string    `json:"type"`
	Actor      string    `json:"actor"`
	Amount     uint64    `json:"amount"`
	OccurredAt time.Time `json:"occurred_at"`
}
