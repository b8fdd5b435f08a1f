package dto

import (
	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ClosingStatusResponse is the lightweight closability status of a fiscal year.
type ClosingStatusResponse struct {
	FiscalYearID         string `json:"fiscalYearID"`
	Year                 int    `json:"year"`
	IsActive             bool   `json:"isActive"`
	PendingApprovals     int    `json:"pendingApprovals"`
	PendingBankTransfers int    `json:"pendingBankTransfers"`
	CanClose             bool   `json:"canClose"`
}

// ClosingSummaryResponse is the full closing summary of a fiscal year.
type ClosingSummaryResponse struct {
	FiscalYearID         string          `json:"fiscalYearID"`
	Year                 int             `json:"year"`
	IsActive             bool            `json:"isActive"`
	UnapprovedIncomes    int             `json:"unapprovedIncomes"`
	UnapprovedExpenses   int             `json:"unapprovedExpenses"`
	UnapprovedTransfers  int             `json:"unapprovedTransfers"`
	UntransferredIncomes int             `json:"untransferredIncomes"`
	UntransferredAmount  decimal.Decimal `json:"untransferredAmount"`
	BankTotal            decimal.Decimal `json:"bankTotal"`
	CurrentCash          decimal.Decimal `json:"currentCash"`
	CashIsValid          bool            `json:"cashIsValid"`
	CanClose             bool            `json:"canClose"`
	ValidationMessages   []string        `json:"validationMessages"`
}

// TransferIncomeToBankRequest defines the body of the income bank deposit call.
type TransferIncomeToBankRequest struct {
	BankAccountID string `json:"bankAccountID" binding:"required,uuid"`
	Remarks       string `json:"remarks"`
}

// ToClosingStatusResponse converts a domain.ClosingStatus to its DTO.
func ToClosingStatusResponse(s *domain.ClosingStatus) ClosingStatusResponse {
	return ClosingStatusResponse{
		FiscalYearID:         s.FiscalYearID,
		Year:                 s.Year,
		IsActive:             s.IsActive,
		PendingApprovals:     s.PendingApprovals,
		PendingBankTransfers: s.PendingBankTransfers,
		CanClose:             s.CanClose,
	}
}

// ToClosingSummaryResponse converts a domain.ClosingSummary to its DTO.
func ToClosingSummaryResponse(s *domain.ClosingSummary) ClosingSummaryResponse {
	return ClosingSummaryResponse{
		FiscalYearID:         s.FiscalYearID,
		Year:                 s.Year,
		IsActive:             s.IsActive,
		UnapprovedIncomes:    s.UnapprovedIncomes,
		UnapprovedExpenses:   s.UnapprovedExpenses,
		UnapprovedTransfers:  s.UnapprovedTransfers,
		UntransferredIncomes: s.UntransferredIncomes,
		UntransferredAmount:  s.UntransferredAmount,
		BankTotal:            s.BankTotal,
		CurrentCash:          s.CurrentCash,
		CashIsValid:          s.CashIsValid,
		CanClose:             s.CanClose,
		ValidationMessages:   s.ValidationMessages,
	}
}
