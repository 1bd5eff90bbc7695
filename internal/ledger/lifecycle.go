package ledger

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tacash/internal/domain"
)

// Register creates a pending account with a zero balance and the
// default user role. The secret is hashed before it ever reaches the
// store. Returns ErrDuplicateEmail if the email is taken.
func (s *Service) Register(ctx context.Context, name, email, phone, secret string) (*domain.Account, error) {
	hash, err := s.Hash(secret)
	if err != nil {
		return nil, err
	}
	acct := &domain.Account{
		ID:       uuid.NewString(),
		Email:    email,
		Name:     name,
		Phone:    phone,
		Password: hash,
		Role:     domain.RoleUser,
		Status:   domain.StatusPending,
		Balance:  0,
	}
	if err := s.Accounts.Create(ctx, acct); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"email": email,
		"role":  acct.Role,
	}).Info("Account registered")
	return acct, nil
}

// Approve sets the target account's role and status from input and, on
// the pending-to-approved edge only, grants the role-keyed onboarding
// credit. Re-approving an already approved account never re-grants the
// credit; the store enforces the guard atomically.
func (s *Service) Approve(ctx context.Context, email, role, status string) (*domain.Account, error) {
	var credit float64
	if status == domain.StatusApproved {
		credit = s.Policy.OnboardingCredit(role)
	}
	if err := s.Accounts.Approve(ctx, email, role, status, credit); err != nil {
		return nil, err
	}
	acct, err := s.Accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"email":  email,
		"role":   role,
		"status": status,
	}).Info("Account updated")
	return acct, nil
}

// Login resolves the account by email and verifies the secret. A wrong
// secret on an existing email is ErrInvalidCredential, never
// ErrNotFound, so the response does not reveal more than the email
// lookup already does.
func (s *Service) Login(ctx context.Context, email, secret string) (*domain.Account, error) {
	acct, err := s.Accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !s.Verify(secret, acct.Password) {
		return nil, ErrInvalidCredential
	}
	return acct, nil
}
