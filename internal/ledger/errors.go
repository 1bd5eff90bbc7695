// Package ledger holds the balance-mutation core: account lifecycle
// (register, approve, login) and the money-moving transitions (peer
// transfer, agent cash-out). It is pure decision logic; persistence is
// delegated to the store interfaces so the package can be tested
// against in-memory doubles.
package ledger

import "errors"

// Domain errors. The API layer maps these to HTTP status codes; the
// core never reports partial success as success.
var (
	// ErrNotFound means no account exists for the given identifier.
	ErrNotFound = errors.New("account not found")

	// ErrSenderNotFound means the authenticated sender could not be
	// resolved or has no credential set.
	ErrSenderNotFound = errors.New("sender not found or pin is missing")

	// ErrRecipientNotFound means the transfer recipient email resolves
	// to no account.
	ErrRecipientNotFound = errors.New("recipient not found")

	// ErrAgentNotFound means the cash-out recipient is missing or is
	// not an agent.
	ErrAgentNotFound = errors.New("agent not found")

	// ErrDuplicateEmail means an account with that email already exists.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredential means the presented login secret does not
	// verify. Deliberately distinct from ErrNotFound so a wrong
	// password on an existing email never reads as a missing account.
	ErrInvalidCredential = errors.New("invalid credentials")

	// ErrIncorrectPIN means the transaction PIN does not verify.
	ErrIncorrectPIN = errors.New("incorrect pin")

	// ErrInvalidAmount means the amount is not a valid number or is
	// below the transaction floor.
	ErrInvalidAmount = errors.New("invalid transaction amount")

	// ErrInsufficientBalance means the debit would take the sender
	// below zero.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrUpdateFailed means the store reported zero records modified.
	ErrUpdateFailed = errors.New("update failed")

	// ErrTransactionFailed means the store could not commit both legs
	// of a balance movement; no leg was applied.
	ErrTransactionFailed = errors.New("transaction failed")
)
