package ledger

// Test doubles for the store interfaces. The fake mirrors the real
// store's contract: the debit leg is conditional under one lock, both
// legs apply together or not at all, and the approval credit is
// guarded by the previous status.

import (
	"context"
	"strings"
	"sync"

	"tacash/internal/domain"
)

type memStore struct {
	mu    sync.Mutex
	accts map[string]*domain.Account // keyed by ID
	txs   []domain.Transaction
}

func newMemStore(accts ...*domain.Account) *memStore {
	m := &memStore{accts: make(map[string]*domain.Account)}
	for _, a := range accts {
		cp := *a
		m.accts[a.ID] = &cp
	}
	return m
}

func (m *memStore) FindByID(_ context.Context, id string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accts[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memStore) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accts {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memStore) Create(_ context.Context, acct *domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accts {
		if a.Email == acct.Email {
			return ErrDuplicateEmail
		}
	}
	cp := *acct
	m.accts[acct.ID] = &cp
	return nil
}

func (m *memStore) Search(_ context.Context, q string) ([]domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Account
	for _, a := range m.accts {
		if q == "" || strings.Contains(a.Name, q) || strings.Contains(a.Email, q) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memStore) Approve(_ context.Context, email, role, status string, credit float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accts {
		if a.Email == email {
			if credit > 0 && a.Status != domain.StatusApproved {
				a.Balance += credit
			}
			a.Role = role
			a.Status = status
			return nil
		}
	}
	return ErrNotFound
}

func (m *memStore) Move(_ context.Context, debitID string, debit float64, creditID string, credit float64, rec *domain.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	from, ok := m.accts[debitID]
	if !ok {
		return ErrTransactionFailed
	}
	to, ok := m.accts[creditID]
	if !ok {
		return ErrTransactionFailed
	}
	// Conditional debit: the balance is re-checked under the lock, not
	// trusted from the caller's earlier read.
	if from.Balance < debit {
		return ErrInsufficientBalance
	}
	from.Balance -= debit
	to.Balance += credit
	m.txs = append(m.txs, *rec)
	return nil
}

func (m *memStore) ByEmail(_ context.Context, email string) ([]domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Transaction
	for _, tx := range m.txs {
		if tx.SenderEmail == email || tx.RecipientEmail == email {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (m *memStore) All(_ context.Context) ([]domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Transaction, len(m.txs))
	copy(out, m.txs)
	return out, nil
}

// balance reads an account's current balance directly from the fake.
func (m *memStore) balance(id string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.accts[id].Balance
}

// newTestService wires a Service to the fake with plain-text credential
// checks, so fixtures can store secrets directly.
func newTestService(m *memStore) *Service {
	verify := func(secret, hash string) bool { return secret == hash }
	hash := func(secret string) (string, error) { return "hashed:" + secret, nil }
	return NewService(m, m, m, verify, hash)
}
