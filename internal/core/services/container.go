package services

import (
	portsrepo "github.com/assocamal/charity_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/assocamal/charity_mgmt_app/internal/core/ports/services"
)

// NewContainer creates the service container with properly wired dependencies.
// A nil closePolicy falls back to the allow-all policy.
func NewContainer(repos *portsrepo.RepositoryProvider, closePolicy portssvc.ClosePolicy) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		FiscalYear:  NewFiscalYearService(repos.FiscalYearRepo),
		Closing:     NewFiscalYearClosingService(repos.FiscalYearRepo, repos.IncomeRepo, repos.BankAccountRepo, closePolicy),
		Income:      NewIncomeService(repos.IncomeRepo, repos.FiscalYearRepo, repos.BankAccountRepo),
		Expense:     NewExpenseService(repos.ExpenseRepo, repos.FiscalYearRepo),
		Transfer:    NewTransferService(repos.TransferRepo, repos.FiscalYearRepo, repos.BankAccountRepo),
		BankAccount: NewBankAccountService(repos.BankAccountRepo),
	}
}
