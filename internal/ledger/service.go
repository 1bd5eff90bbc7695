package ledger

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tacash/internal/domain"
)

// VerifyFunc checks a presented secret against a stored hash. It never
// errors on a mismatch; it simply reports false. The same capability
// verifies both login passwords and transaction PINs.
type VerifyFunc func(secret, hash string) bool

// HashFunc hashes a secret for storage.
type HashFunc func(secret string) (string, error)

// Service is the ledger core. All store access goes through the
// injected interfaces; the service itself holds no mutable state, so
// it is safe for concurrent use.
type Service struct {
	Accounts AccountStore
	Moves    MoveStore
	History  TransactionStore
	Verify   VerifyFunc
	Hash     HashFunc
	Policy   Policy
}

// NewService builds a Service with the default fee policy.
func NewService(accounts AccountStore, moves MoveStore, history TransactionStore, verify VerifyFunc, hash HashFunc) *Service {
	return &Service{
		Accounts: accounts,
		Moves:    moves,
		History:  history,
		Verify:   verify,
		Hash:     hash,
		Policy:   DefaultPolicy(),
	}
}

// MoveResult reports a committed balance movement.
type MoveResult struct {
	Transaction   *domain.Transaction `json:"transaction"`
	SenderBalance float64             `json:"sender_balance"`
	RecipientID   string              `json:"-"`
}

// SendMoney executes a peer transfer. The sender is the authenticated
// account; the amount arrives as a raw untrusted string and must parse
// to an integer of at least the policy floor. The fee is charged
// against the sender's gross deduction: the sender is debited amount,
// the recipient is credited amount minus fee.
func (s *Service) SendMoney(ctx context.Context, senderID, recipientEmail, rawAmount, pin string) (*MoveResult, error) {
	sender, err := s.Accounts.FindByID(ctx, senderID)
	if err != nil || sender.Password == "" {
		return nil, ErrSenderNotFound
	}
	if !s.Verify(pin, sender.Password) {
		return nil, ErrIncorrectPIN
	}
	amount, err := strconv.Atoi(rawAmount)
	if err != nil || amount < s.Policy.MinTransferAmount {
		return nil, ErrInvalidAmount
	}
	fee := s.Policy.TransferFee(amount)
	net := float64(amount) - fee

	// Pre-check; the store re-checks atomically at the debit.
	if sender.Balance < float64(amount) {
		return nil, ErrInsufficientBalance
	}
	recipient, err := s.Accounts.FindByEmail(ctx, recipientEmail)
	if err != nil {
		return nil, ErrRecipientNotFound
	}

	rec := &domain.Transaction{
		ID:             uuid.NewString(),
		SenderEmail:    sender.Email,
		RecipientEmail: recipient.Email,
		Amount:         float64(amount),
		Fee:            fee,
		Type:           domain.TypeTransfer,
		Status:         domain.StatusCompleted,
	}
	if err := s.Moves.Move(ctx, sender.ID, float64(amount), recipient.ID, net, rec); err != nil {
		logrus.WithFields(logrus.Fields{
			"sender":    sender.Email,
			"recipient": recipient.Email,
			"amount":    amount,
			"error":     err.Error(),
		}).Error("Transfer failed")
		return nil, s.moveError(err)
	}
	logrus.WithFields(logrus.Fields{
		"sender":    sender.Email,
		"recipient": recipient.Email,
		"amount":    amount,
		"fee":       fee,
		"type":      domain.TypeTransfer,
	}).Info("Transfer transaction")
	return &MoveResult{Transaction: rec, SenderBalance: sender.Balance - float64(amount), RecipientID: recipient.ID}, nil
}

// CashOut executes a cash-out through an agent. The fee is proportional
// and charged on top of the principal: the sender is debited amount
// plus fee, and the agent is credited amount plus fee.
func (s *Service) CashOut(ctx context.Context, senderID, agentEmail, rawAmount, pin string) (*MoveResult, error) {
	sender, err := s.Accounts.FindByID(ctx, senderID)
	if err != nil || sender.Password == "" {
		return nil, ErrSenderNotFound
	}
	if !s.Verify(pin, sender.Password) {
		return nil, ErrIncorrectPIN
	}
	amount, err := strconv.Atoi(rawAmount)
	if err != nil || amount <= 0 {
		return nil, ErrInvalidAmount
	}
	fee := s.Policy.CashOutFee(amount)
	total := float64(amount) + fee

	agent, err := s.Accounts.FindByEmail(ctx, agentEmail)
	if err != nil || agent.Role != domain.RoleAgent {
		return nil, ErrAgentNotFound
	}
	if sender.Balance < total {
		return nil, ErrInsufficientBalance
	}

	rec := &domain.Transaction{
		ID:             uuid.NewString(),
		SenderEmail:    sender.Email,
		RecipientEmail: agent.Email,
		Amount:         float64(amount),
		Fee:            fee,
		Type:           domain.TypeCashOut,
		Status:         domain.StatusCompleted,
	}
	if err := s.Moves.Move(ctx, sender.ID, total, agent.ID, total, rec); err != nil {
		logrus.WithFields(logrus.Fields{
			"sender": sender.Email,
			"agent":  agent.Email,
			"amount": amount,
			"error":  err.Error(),
		}).Error("Cash-out failed")
		return nil, s.moveError(err)
	}
	logrus.WithFields(logrus.Fields{
		"sender": sender.Email,
		"agent":  agent.Email,
		"amount": amount,
		"fee":    fee,
		"type":   domain.TypeCashOut,
	}).Info("Cash-out transaction")
	return &MoveResult{Transaction: rec, SenderBalance: sender.Balance - total, RecipientID: agent.ID}, nil
}

// HistoryFor returns all transactions touching the given email.
func (s *Service) HistoryFor(ctx context.Context, email string) ([]domain.Transaction, error) {
	return s.History.ByEmail(ctx, email)
}

// AllHistory returns every transaction on record.
func (s *Service) AllHistory(ctx context.Context) ([]domain.Transaction, error) {
	return s.History.All(ctx)
}

// ListAccounts returns accounts matching the search string, or all
// accounts when it is empty.
func (s *Service) ListAccounts(ctx context.Context, search string) ([]domain.Account, error) {
	return s.Accounts.Search(ctx, search)
}

// moveError keeps the domain sentinels and degrades anything else
// (store connectivity, timeouts) to ErrTransactionFailed: the failed
// request is local, nothing was applied, and the caller may retry the
// whole operation.
func (s *Service) moveError(err error) error {
	if errors.Is(err, ErrInsufficientBalance) || errors.Is(err, ErrTransactionFailed) {
		return err
	}
	return ErrTransactionFailed
}
