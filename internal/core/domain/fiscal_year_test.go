package domain_test

import (
	"testing"
	"time"

	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBudgetTotalAvailable(t *testing.T) {
	b := domain.Budget{
		CurrentAmount:     decimal.NewFromInt(10000),
		CarryoverPrevYear: decimal.NewFromInt(2500),
		CarryoverNextYear: decimal.NewFromInt(999), // never part of the envelope
	}
	assert.True(t, b.TotalAvailable().Equal(decimal.NewFromInt(12500)))
}

func TestPaymentMethodRequiresBankTransfer(t *testing.T) {
	assert.True(t, domain.Cash.RequiresBankTransfer())
	assert.True(t, domain.Cheque.RequiresBankTransfer())
	assert.False(t, domain.BankWire.RequiresBankTransfer())
}

func TestIncomeIsTransferred(t *testing.T) {
	income := domain.Income{PaymentMethod: domain.Cash, Status: domain.Approved}
	assert.False(t, income.IsTransferred())

	now := time.Now()
	income.TransferredAt = &now
	assert.True(t, income.IsTransferred())
}
