package store

import (
	"context"

	"gorm.io/gorm"

	"tacash/internal/domain"
)

// TransactionStore reads the append-only history.
type TransactionStore struct {
	db *gorm.DB
}

// NewTransactionStore wraps a gorm handle.
func NewTransactionStore(db *gorm.DB) *TransactionStore {
	return &TransactionStore{db: db}
}

// ByEmail returns all transactions where the email appears on either
// side, newest first.
func (s *TransactionStore) ByEmail(ctx context.Context, email string) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	err := s.db.WithContext(ctx).
		Where("sender_email = ? OR recipient_email = ?", email, email).
		Order("created_at desc").
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// All returns every transaction on record, newest first.
func (s *TransactionStore) All(ctx context.Context) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}
