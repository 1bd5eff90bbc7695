// Package store implements the ledger's store interfaces on gorm/MySQL.
package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tacash/internal/domain"
	"tacash/internal/ledger"
)

// AccountStore is the gorm-backed account storage.
type AccountStore struct {
	db *gorm.DB
}

// NewAccountStore wraps a gorm handle.
func NewAccountStore(db *gorm.DB) *AccountStore {
	return &AccountStore{db: db}
}

// FindByID returns the account with the given ID.
func (s *AccountStore) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	var acct domain.Account
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&acct).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrNotFound
		}
		return nil, err
	}
	return &acct, nil
}

// FindByEmail returns the account with the given email.
func (s *AccountStore) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var acct domain.Account
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&acct).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrNotFound
		}
		return nil, err
	}
	return &acct, nil
}

// Create inserts a new account. The unique index on email turns a
// duplicate insert into ErrDuplicateEmail.
func (s *AccountStore) Create(ctx context.Context, acct *domain.Account) error {
	if err := s.db.WithContext(ctx).Create(acct).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ledger.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// Search returns accounts whose name or email contains q; an empty q
// returns everything.
func (s *AccountStore) Search(ctx context.Context, q string) ([]domain.Account, error) {
	var accts []domain.Account
	query := s.db.WithContext(ctx)
	if q != "" {
		like := "%" + q + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", like, like)
	}
	if err := query.Find(&accts).Error; err != nil {
		return nil, err
	}
	return accts, nil
}

// Approve applies the approval patch in one DB transaction. The credit
// update is guarded by the previous status in its WHERE clause, so two
// concurrent approvals can credit at most once regardless of what each
// read beforehand. Role and status are then set unconditionally.
func (s *AccountStore) Approve(ctx context.Context, email, role, status string, credit float64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var acct domain.Account
		if err := tx.Where("email = ?", email).First(&acct).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ledger.ErrNotFound
			}
			return err
		}
		if credit > 0 {
			res := tx.Model(&domain.Account{}).
				Where("email = ? AND status <> ?", email, domain.StatusApproved).
				Update("balance", gorm.Expr("balance + ?", credit))
			if res.Error != nil {
				return res.Error
			}
		}
		res := tx.Model(&domain.Account{}).
			Where("email = ?", email).
			Updates(map[string]any{"role": role, "status": status})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ledger.ErrUpdateFailed
		}
		return nil
	})
}
