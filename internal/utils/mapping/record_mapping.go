package mapping

import (
	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
	"github.com/assocamal/charity_mgmt_app/internal/models"
)

// ToModelIncome converts a domain Income to a model Income
func ToModelIncome(d domain.Income) models.Income {
	return models.Income{
		IncomeID:      d.IncomeID,
		FiscalYearID:  d.FiscalYearID,
		SubBudget:     d.SubBudget,
		Category:      d.Category,
		DonorRef:      d.DonorRef,
		Amount:        d.Amount,
		PaymentMethod: models.PaymentMethod(d.PaymentMethod),
		Status:        models.RecordStatus(d.Status),
		ApprovedBy:    d.ApprovedBy,
		ApprovedAt:    d.ApprovedAt,
		BankAccountID: d.BankAccountID,
		TransferredAt: d.TransferredAt,
		Remarks:       d.Remarks,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainIncome converts a model Income to a domain Income
func ToDomainIncome(m models.Income) domain.Income {
	return domain.Income{
		IncomeID:      m.IncomeID,
		FiscalYearID:  m.FiscalYearID,
		SubBudget:     m.SubBudget,
		Category:      m.Category,
		DonorRef:      m.DonorRef,
		Amount:        m.Amount,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		Status:        domain.RecordStatus(m.Status),
		ApprovedBy:    m.ApprovedBy,
		ApprovedAt:    m.ApprovedAt,
		BankAccountID: m.BankAccountID,
		TransferredAt: m.TransferredAt,
		Remarks:       m.Remarks,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainIncomeSlice converts a slice of model Incomes to domain Incomes
func ToDomainIncomeSlice(ms []models.Income) []domain.Income {
	ds := make([]domain.Income, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainIncome(m)
	}
	return ds
}

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:      d.ExpenseID,
		FiscalYearID:   d.FiscalYearID,
		SubBudget:      d.SubBudget,
		Category:       d.Category,
		BeneficiaryRef: d.BeneficiaryRef,
		Amount:         d.Amount,
		PaymentMethod:  models.PaymentMethod(d.PaymentMethod),
		Status:         models.RecordStatus(d.Status),
		ApprovedBy:     d.ApprovedBy,
		ApprovedAt:     d.ApprovedAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:      m.ExpenseID,
		FiscalYearID:   m.FiscalYearID,
		SubBudget:      m.SubBudget,
		Category:       m.Category,
		BeneficiaryRef: m.BeneficiaryRef,
		Amount:         m.Amount,
		PaymentMethod:  domain.PaymentMethod(m.PaymentMethod),
		Status:         domain.RecordStatus(m.Status),
		ApprovedBy:     m.ApprovedBy,
		ApprovedAt:     m.ApprovedAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}

// ToModelTransfer converts a domain Transfer to a model Transfer
func ToModelTransfer(d domain.Transfer) models.Transfer {
	return models.Transfer{
		TransferID:    d.TransferID,
		FiscalYearID:  d.FiscalYearID,
		FromAccountID: d.FromAccountID,
		ToAccountID:   d.ToAccountID,
		Amount:        d.Amount,
		Status:        models.RecordStatus(d.Status),
		ApprovedBy:    d.ApprovedBy,
		ApprovedAt:    d.ApprovedAt,
		Remarks:       d.Remarks,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransfer converts a model Transfer to a domain Transfer
func ToDomainTransfer(m models.Transfer) domain.Transfer {
	return domain.Transfer{
		TransferID:    m.TransferID,
		FiscalYearID:  m.FiscalYearID,
		FromAccountID: m.FromAccountID,
		ToAccountID:   m.ToAccountID,
		Amount:        m.Amount,
		Status:        domain.RecordStatus(m.Status),
		ApprovedBy:    m.ApprovedBy,
		ApprovedAt:    m.ApprovedAt,
		Remarks:       m.Remarks,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransferSlice converts a slice of model Transfers to domain Transfers
func ToDomainTransferSlice(ms []models.Transfer) []domain.Transfer {
	ds := make([]domain.Transfer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransfer(m)
	}
	return ds
}
