package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tacash/internal/domain"
)

func TestTransferFeeBoundary(t *testing.T) {
	p := DefaultPolicy()

	assert.Equal(t, float64(0), p.TransferFee(50))
	assert.Equal(t, float64(0), p.TransferFee(100))
	assert.Equal(t, float64(5), p.TransferFee(101))
	assert.Equal(t, float64(5), p.TransferFee(10000))
}

func TestCashOutFeeIsProportional(t *testing.T) {
	p := DefaultPolicy()

	assert.InDelta(t, 1.5, p.CashOutFee(100), 1e-9)
	assert.InDelta(t, 0.75, p.CashOutFee(50), 1e-9)
	assert.InDelta(t, 150, p.CashOutFee(10000), 1e-9)
}

func TestOnboardingCreditByRole(t *testing.T) {
	p := DefaultPolicy()

	assert.Equal(t, float64(10000), p.OnboardingCredit(domain.RoleAgent))
	assert.Equal(t, float64(40), p.OnboardingCredit(domain.RoleUser))
	assert.Equal(t, float64(0), p.OnboardingCredit(domain.RoleAdmin))
	assert.Equal(t, float64(0), p.OnboardingCredit("other"))
}
