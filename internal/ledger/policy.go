package ledger

import "tacash/internal/domain"

// Policy bundles the fee and onboarding-credit rules so the amounts can
// be tuned without touching the transition logic. The defaults mirror
// production behavior, including the asymmetric fee handling: the peer
// transfer fee leaves the modeled system entirely, while the cash-out
// fee is credited to the agent on top of the principal.
type Policy struct {
	MinTransferAmount    int     // Floor for peer transfers
	TransferFeeThreshold int     // Transfers above this pay the flat fee
	TransferFlatFee      float64 // Flat fee per qualifying transfer
	CashOutFeeRate       float64 // Proportional cash-out fee rate
	AgentCredit          float64 // One-time onboarding credit for agents
	UserCredit           float64 // One-time onboarding credit for users
}

// DefaultPolicy returns the production fee schedule.
func DefaultPolicy() Policy {
	return Policy{
		MinTransferAmount:    50,
		TransferFeeThreshold: 100,
		TransferFlatFee:      5,
		CashOutFeeRate:       0.015,
		AgentCredit:          10000,
		UserCredit:           40,
	}
}

// TransferFee returns the flat fee for a peer transfer of amount.
func (p Policy) TransferFee(amount int) float64 {
	if amount > p.TransferFeeThreshold {
		return p.TransferFlatFee
	}
	return 0
}

// CashOutFee returns the proportional fee for a cash-out of amount.
// Fractional fees are allowed; balances carry them as-is.
func (p Policy) CashOutFee(amount int) float64 {
	return float64(amount) * p.CashOutFeeRate
}

// OnboardingCredit returns the one-time credit granted when an account
// of the given role transitions from pending to approved.
func (p Policy) OnboardingCredit(role string) float64 {
	switch role {
	case domain.RoleAgent:
		return p.AgentCredit
	case domain.RoleUser:
		return p.UserCredit
	default:
		return 0
	}
}
