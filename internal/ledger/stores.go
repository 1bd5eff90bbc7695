package ledger

import (
	"context"

	"tacash/internal/domain"
)

// AccountStore is the durable keyed storage of accounts. Implementations
// must map a missing record to ErrNotFound and a unique-key conflict on
// Create to ErrDuplicateEmail.
type AccountStore interface {
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, acct *domain.Account) error
	// Search returns accounts whose name or email contains q;
	// an empty q returns all accounts.
	Search(ctx context.Context, q string) ([]domain.Account, error)
	// Approve sets role and status unconditionally and applies credit
	// only if the account's status was not yet approved. The guard and
	// the field update must be atomic so a concurrent re-approval can
	// never grant the credit twice. Returns ErrNotFound if the account
	// is absent and ErrUpdateFailed if the store modified zero records.
	Approve(ctx context.Context, email, role, status string, credit float64) error
}

// MoveStore applies a two-leg balance movement. Both legs and the
// history record must commit atomically: the debit is conditional on
// the account still holding at least debit, and a failed condition
// returns ErrInsufficientBalance with nothing applied. Any other
// partial outcome must return ErrTransactionFailed with nothing
// applied.
type MoveStore interface {
	Move(ctx context.Context, debitID string, debit float64, creditID string, credit float64, rec *domain.Transaction) error
}

// TransactionStore retrieves the append-only history written by Move.
type TransactionStore interface {
	ByEmail(ctx context.Context, email string) ([]domain.Transaction, error)
	All(ctx context.Context) ([]domain.Transaction, error)
}
