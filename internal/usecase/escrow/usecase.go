package escrow

import (
	"context"
	"errors"
	"time"

	domainEscrow "loan-escrow-service/internal/domain/escrow"
	"loan-escrow-service/internal/domain/ledger"
	"loan-escrow-service/internal/domain/uow"
	"loan-escrow-service/pkg/id"
)

// Creation validation errors. The source contract accepted zero-amount and
// self-loans silently; both are rejected here because neither has a
// meaningful lifecycle.
var (
	ErrInvalidBorrowerID = errors.New("borrower_id must be 32-char lowercase hex")
	ErrInvalidLenderID   = errors.New("lender identity must be 32-char lowercase hex")
	ErrZeroAmount        = errors.New("amount must be greater than zero")
	ErrSelfLoan          = errors.New("borrower must differ from lender")
)

type Usecase struct {
	escrows  domainEscrow.Repository
	accounts ledger.AccountRepository
	events   ledger.EventRepository
	uow      uow.UnitOfWork
}

func NewUsecase(escrows domainEscrow.Repository, accounts ledger.AccountRepository, events ledger.EventRepository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{escrows: escrows, accounts: accounts, events: events, uow: tx}
}

// Create registers a new single-loan escrow. The caller becomes the lender;
// both parties and the amount are immutable afterwards. The escrow's custody
// account is opened in the same transaction, keyed by the escrow id.
func (u *Usecase) Create(ctx context.Context, in CreateEscrowInput) (*EscrowDTO, error) {
	if !id.Valid32(in.LenderID) {
		return nil, ErrInvalidLenderID
	}
	if !id.Valid32(in.BorrowerID) {
		return nil, ErrInvalidBorrowerID
	}
	if in.Amount == 0 {
		return nil, ErrZeroAmount
	}
	if in.BorrowerID == in.LenderID {
		return nil, ErrSelfLoan
	}

	e := &domainEscrow.Escrow{
		EscrowID:       id.NewID32(),
		LenderID:       in.LenderID,
		BorrowerID:     in.BorrowerID,
		Amount:         in.Amount,
		StateUpdatedAt: time.Now().UTC(),
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Escrows.Create(ctx, e); err != nil {
			return err
		}
		return r.Accounts.Create(ctx, &ledger.Account{AccountID: e.EscrowID})
	})
	if err != nil {
		return nil, err
	}
	return toDTO(e, 0), nil
}

// Fund moves the agreed amount from the lender into escrow custody.
// Checks run in a fixed order so the failure a caller sees is stable:
// authorization, then state, then amount.
func (u *Usecase) Fund(ctx context.Context, escrowID, callerID string, attachedValue uint64) (*EscrowDTO, error) {
	var dto *EscrowDTO
	err := u.uow.WithinEscrowTx(ctx, escrowID, func(r uow.Repos, e *domainEscrow.Escrow) error {
		if callerID != e.LenderID {
			return domainEscrow.ErrOnlyLender
		}
		if e.Funded {
			return domainEscrow.ErrAlreadyFunded
		}
		if attachedValue != e.Amount {
			return domainEscrow.ErrWrongAmount
		}

		// The attached value travels with the call: debit the caller and
		// credit escrow custody inside the same transaction.
		if err := r.Accounts.Debit(ctx, callerID, attachedValue); err != nil {
			return err
		}
		if err := r.Accounts.Credit(ctx, e.EscrowID, attachedValue); err != nil {
			return err
		}

		e.Funded = true
		e.StateUpdatedAt = time.Now().UTC()
		if err := r.Escrows.Save(ctx, e); err != nil {
			return err
		}
		if err := r.Events.Append(ctx, &ledger.Event{
			EventID:  id.NewID32(),
			EscrowID: e.EscrowID,
			Type:     ledger.EventLoanFunded,
			Actor:    e.LenderID,
			Amount:   e.Amount,
		}); err != nil {
			return err
		}
		dto = toDTO(e, attachedValue)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Repay returns the exact amount from the borrower to the lender. The
// repaid flag is committed ahead of the outbound transfer; a rejected
// lender account fails the whole transaction, so the flag never survives
// a failed transfer.
func (u *Usecase) Repay(ctx context.Context, escrowID, callerID string, attachedValue uint64) (*EscrowDTO, error) {
	var dto *EscrowDTO
	err := u.uow.WithinEscrowTx(ctx, escrowID, func(r uow.Repos, e *domainEscrow.Escrow) error {
		if !e.Funded {
			return domainEscrow.ErrNotFunded
		}
		if e.Repaid {
			return domainEscrow.ErrAlreadyRepaid
		}
		if e.Withdrawn {
			return domainEscrow.ErrAlreadyWithdrawn
		}
		if callerID != e.BorrowerID {
			return domainEscrow.ErrOnlyBorrower
		}
		if attachedValue != e.Amount {
			return domainEscrow.ErrWrongAmount
		}

		if err := r.Accounts.Debit(ctx, callerID, attachedValue); err != nil {
			return err
		}
		if err := r.Accounts.Credit(ctx, e.EscrowID, attachedValue); err != nil {
			return err
		}

		e.Repaid = true
		e.StateUpdatedAt = time.Now().UTC()
		if err := r.Escrows.Save(ctx, e); err != nil {
			return err
		}
		if err := r.Events.Append(ctx, &ledger.Event{
			EventID:  id.NewID32(),
			EscrowID: e.EscrowID,
			Type:     ledger.EventLoanRepaid,
			Actor:    e.BorrowerID,
			Amount:   e.Amount,
		}); err != nil {
			return err
		}

		// Outbound transfer last; a frozen lender account rolls back
		// everything above.
		if err := r.Accounts.Debit(ctx, e.EscrowID, e.Amount); err != nil {
			return err
		}
		if err := r.Accounts.Credit(ctx, e.LenderID, e.Amount); err != nil {
			if errors.Is(err, ledger.ErrAccountFrozen) || errors.Is(err, ledger.ErrAccountNotFound) {
				return domainEscrow.ErrTransferFailed
			}
			return err
		}

		held, err := r.Accounts.GetByAccountID(ctx, e.EscrowID)
		if err != nil {
			return err
		}
		dto = toDTO(e, held.Balance)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Withdraw hands escrow custody of the funded amount to the borrower.
// A withdrawn loan keeps its funded flag, so funding cannot be reopened.
func (u *Usecase) Withdraw(ctx context.Context, escrowID, callerID string) (*EscrowDTO, error) {
	var dto *EscrowDTO
	err := u.uow.WithinEscrowTx(ctx, escrowID, func(r uow.Repos, e *domainEscrow.Escrow) error {
		if !e.Funded {
			return domainEscrow.ErrNotFunded
		}
		if e.Repaid {
			return domainEscrow.ErrAlreadyRepaid
		}
		if e.Withdrawn {
			return domainEscrow.ErrAlreadyWithdrawn
		}
		if callerID != e.BorrowerID {
			return domainEscrow.ErrOnlyBorrower
		}

		e.Withdrawn = true
		e.StateUpdatedAt = time.Now().UTC()
		if err := r.Escrows.Save(ctx, e); err != nil {
			return err
		}
		if err := r.Events.Append(ctx, &ledger.Event{
			EventID:  id.NewID32(),
			EscrowID: e.EscrowID,
			Type:     ledger.EventLoanWithdrawn,
			Actor:    e.BorrowerID,
			Amount:   e.Amount,
		}); err != nil {
			return err
		}

		if err := r.Accounts.Debit(ctx, e.EscrowID, e.Amount); err != nil {
			return err
		}
		if err := r.Accounts.Credit(ctx, e.BorrowerID, e.Amount); err != nil {
			if errors.Is(err, ledger.ErrAccountFrozen) || errors.Is(err, ledger.ErrAccountNotFound) {
				return domainEscrow.ErrTransferFailed
			}
			return err
		}

		dto = toDTO(e, 0)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, escrowID string) (*EscrowDTO, error) {
	e, err := u.escrows.GetByEscrowID(ctx, escrowID)
	if err != nil {
		return nil, err
	}
	var held uint64
	if a, err := u.accounts.GetByAccountID(ctx, e.EscrowID); err == nil {
		held = a.Balance
	}
	return toDTO(e, held), nil
}

func (u *Usecase) Events(ctx context.Context, escrowID string) ([]EventDTO, error) {
	if _, err := u.escrows.GetByEscrowID(ctx, escrowID); err != nil {
		return nil, err
	}
	evs, err := u.events.ListByEscrowID(ctx, escrowID)
	if err != nil {
		return nil, err
	}
	out := make([]EventDTO, 0, len(evs))
	for _, ev := range evs {
		out = append(out, EventDTO{
			EventID:    ev.EventID,
			EscrowID:   ev.EscrowID,
			Type:       ev.Type,
			Actor:      ev.Actor,
			Amount:     ev.Amount,
			OccurredAt: ev.CreatedAt,
		})
	}
	return out, nil
}

func toDTO(e *domainEscrow.Escrow, held uint64) *EscrowDTO {
	return &EscrowDTO{
		EscrowID:    e.EscrowID,
		LenderID:    e.LenderID,
		BorrowerID:  e.BorrowerID,
		Amount:      e.Amount,
		State:       string(e.State()),
		HeldBalance: held,
		CreatedAt:   e.CreatedAt,
	}
}
