package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	FiscalYearRepo  FiscalYearRepositoryFacade
	IncomeRepo      IncomeRepositoryFacade
	ExpenseRepo     ExpenseRepositoryFacade
	TransferRepo    TransferRepositoryFacade
	BankAccountRepo BankAccountRepositoryFacade
}
