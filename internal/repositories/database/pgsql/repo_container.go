package pgsql

import (
	portsrepo "github.com/assocamal/charity_mgmt_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		FiscalYearRepo:  newPgxFiscalYearRepository(dbPool),
		IncomeRepo:      newPgxIncomeRepository(dbPool),
		ExpenseRepo:     newPgxExpenseRepository(dbPool),
		TransferRepo:    newPgxTransferRepository(dbPool),
		BankAccountRepo: newPgxBankAccountRepository(dbPool),
	}
}
