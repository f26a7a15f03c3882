package mysql

import (
	"context"
	"errors"
	"testing"

	escrowDomain "loan-escrow-service/internal/domain/escrow"
	"loan-escrow-service/internal/domain/ledger"
	"loan-escrow-service/internal/domain/uow"
	"loan-escrow-service/pkg/id"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	escrowID := id.NewID32()

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Escrows.Create(ctx, makeEscrow(escrowID, id.NewID32(), id.NewID32())); err != nil {
			return err
		}
		return r.Accounts.Create(ctx, &ledger.Account{AccountID: escrowID})
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	if _, err := NewEscrowRepository(db).GetByEscrowID(ctx, escrowID); err != nil {
		t.Fatalf("escrow not committed: %v", err)
	}
	if _, err := NewAccountRepository(db).GetByAccountID(ctx, escrowID); err != nil {
		t.Fatalf("custody account not committed: %v", err)
	}
}

func TestGormUoW_WithinTx_RollbackOnError(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	escrowID := id.NewID32()
	boom := errors.New("boom")

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Escrows.Create(ctx, makeEscrow(escrowID, id.NewID32(), id.NewID32())); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	if _, err := NewEscrowRepository(db).GetByEscrowID(ctx, escrowID); !errors.Is(err, escrowDomain.ErrNotFound) {
		t.Fatalf("escrow survived rollback: %v", err)
	}
}

func TestGormUoW_WithinEscrowTx_PassesLockedRow(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	escrowID := id.NewID32()
	lender := id.NewID32()

	if err := NewEscrowRepository(db).Create(ctx, makeEscrow(escrowID, lender, id.NewID32())); err != nil {
		t.Fatalf("seed: %v", err)
	}

	err := guow.WithinEscrowTx(ctx, escrowID, func(r uow.Repos, e *escrowDomain.Escrow) error {
		if e.LenderID != lender {
			t.Fatalf("wrong row passed in: %+v", e)
		}
		e.Funded = true
		return r.Escrows.Save(ctx, e)
	})
	if err != nil {
		t.Fatalf("WithinEscrowTx: %v", err)
	}

	got, err := NewEscrowRepository(db).GetByEscrowID(ctx, escrowID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !got.Funded {
		t.Fatalf("flag update not committed")
	}
}

func TestGormUoW_WithinEscrowTx_UnknownEscrow(t *testing.T) {
	db := openTestDB(t)
	guow := NewGormUoW(db)

	err := guow.WithinEscrowTx(context.Background(), id.NewID32(), func(uow.Repos, *escrowDomain.Escrow) error {
		t.Fatal("callback must not run for unknown escrow")
		return nil
	})
	if !errors.Is(err, escrowDomain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
