package store

import (
	"context"

	"gorm.io/gorm"

	"tacash/internal/domain"
	"tacash/internal/ledger"
)

// LedgerStore applies two-leg balance movements atomically.
type LedgerStore struct {
	db *gorm.DB
}

// NewLedgerStore wraps a gorm handle.
func NewLedgerStore(db *gorm.DB) *LedgerStore {
	return &LedgerStore{db: db}
}

// Move debits one account, credits another and appends the history
// record inside a single DB transaction. The debit is conditional on
// the balance still covering it, which closes the read-modify-write
// race: a concurrent writer that got there first leaves zero rows for
// this UPDATE and the whole movement rolls back.
func (s *LedgerStore) Move(ctx context.Context, debitID string, debit float64, creditID string, credit float64, rec *domain.Transaction) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Account{}).
			Where("id = ? AND balance >= ?", debitID, debit).
			Update("balance", gorm.Expr("balance - ?", debit))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ledger.ErrInsufficientBalance
		}
		res = tx.Model(&domain.Account{}).
			Where("id = ?", creditID).
			Update("balance", gorm.Expr("balance + ?", credit))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ledger.ErrTransactionFailed
		}
		if err := tx.Create(rec).Error; err != nil {
			return err
		}
		return nil
	})
}
