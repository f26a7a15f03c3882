package mysql

import (
	"testing"
	"time"

	escrowDomain "loan-escrow-service/internal/domain/escrow"
	"loan-escrow-service/internal/domain/ledger"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB with all three tables migrated.
// The domain models carry no MySQL-only column types, so they migrate as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&escrowDomain.Escrow{}, &ledger.Account{}, &ledger.Event{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeEscrow(escrowID, lenderID, borrowerID string) *escrowDomain.Escrow {
	return &escrowDomain.Escrow{
		EscrowID:       escrowID,
		LenderID:       lenderID,
		BorrowerID:     borrowerID,
		Amount:         100,
		StateUpdatedAt: time.Now().UTC(),
	}
}
