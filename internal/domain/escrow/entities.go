package escrow

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Sentinel errors surfaced by escrow operations. Handlers map these to
// HTTP statuses; nothing below the adapter layer wraps or swallows them.
var (
	ErrNotFound = errors.New("escrow not found")

	// Authorization failures.
	ErrOnlyLender   = errors.New("only the lender may fund")
	ErrOnlyBorrower = errors.New("only the borrower may repay or withdraw")

	// State failures.
	ErrAlreadyFunded    = errors.New("escrow already funded")
	ErrNotFunded        = errors.New("escrow not funded yet")
	ErrAlreadyRepaid    = errors.New("loan already repaid")
	ErrAlreadyWithdrawn = errors.New("loan already withdrawn")

	// Amount / transfer failures.
	ErrWrongAmount    = errors.New("attached value must equal the loan amount")
	ErrTransferFailed = errors.New("transfer to counterparty failed")
)

type State string

const (
	StateCreated   State = "created"
	StateFunded    State = "funded"
	StateRepaid    State = "repaid"
	StateWithdrawn State = "withdrawn"
)

// Escrow is a single-loan agreement between one lender and one borrower,
// fixed at creation. The three flags are each one-way false→true; Repaid
// and Withdrawn imply Funded and are mutually exclusive.
type Escrow struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	EscrowID   string `gorm:"size:32;uniqueIndex:ux_escrows_escrow_id" json:"escrow_id"`
	LenderID   string `gorm:"size:32;index:idx_escrows_lender" json:"lender_id"`
	BorrowerID string `gorm:"size:32;index:idx_escrows_borrower" json:"borrower_id"`
	// Amount in minor currency units. Immutable after creation.
	Amount uint64 `gorm:"not null" json:"amount"`
	Funded bool   `gorm:"not null;default:false" json:"funded"`
	Repaid bool   `gorm:"not null;default:false" json:"repaid"`
	// Withdrawn marks the borrower having taken custody of the funded
	// amount. It is a distinct flag so a withdrawn loan can never be
	// funded a second time.
	Withdrawn      bool           `gorm:"not null;default:false" json:"withdrawn"`
	StateUpdatedAt time.Time      `gorm:"autoCreateTime" json:"state_updated_at"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Escrow) TableName() string { return "escrows" }

// State folds the flags into the public lifecycle state.
func (e *Escrow) State() State {
	switch {
	case e.Repaid:
		return StateRepaid
	case e.Withdrawn:
		return StateWithdrawn
	case e.Funded:
		return StateFunded
	default:
		return StateCreated
	}
}

// Terminal reports whether no further state transition is possible.
func (e *Escrow) Terminal() bool { return e.Repaid || e.Withdrawn }
