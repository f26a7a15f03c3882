package ledger

import (
	"errors"
	"time"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountExists     = errors.New("account already exists")
	ErrInsufficientFunds = errors.New("insufficient balance")
	// ErrAccountFrozen is returned when crediting an account that
	// rejects incoming transfers.
	ErrAccountFrozen = errors.New("account rejects transfers")
)

// Account is one balance row of the in-process ledger. Escrow instances
// hold their custody balance in an account keyed by their escrow id, so
// every value move is a row-to-row transfer inside one transaction.
type Account struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	AccountID string    `gorm:"size:32;uniqueIndex:ux_accounts_account_id" json:"account_id"`
	Balance   uint64    `gorm:"not null;default:0" json:"balance"`
	Frozen    bool      `gorm:"not null;default:false" json:"frozen"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Account) TableName() string { return "accounts" }

// Notification types appended to the event log.
const (
	EventLoanFunded    = "loan_funded"
	EventLoanRepaid    = "loan_repaid"
	EventLoanWithdrawn = "loan_withdrawn"
)

// Event is one append-only notification row, written in the same
// transaction as the state change it describes.
type Event struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	EventID  string `gorm:"size:32;uniqueIndex:ux_escrow_events_event_id" json:"event_id"`
	EscrowID string `gorm:"size:32;index:idx_escrow_events_escrow" json:"escrow_id"`
	Type     string `gorm:"size:32;not null" json:"type"`
	// Actor is the identity the notification names: the lender for
	// loan_funded, the borrower for loan_repaid and loan_withdrawn.
	Actor     string    `gorm:"size:32;not null" json:"actor"`
	Amount    uint64    `gorm:"not null" json:"amount"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Event) TableName() string { return "escrow_events" }
