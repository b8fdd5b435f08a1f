package services

import (
	"fmt"

	"github.com/assocamal/charity_mgmt_app/internal/apperrors"
)

// Service-level sentinels. Each wraps an apperrors sentinel so that handlers
// can map them to HTTP statuses with a single errors.Is check while keeping
// the message specific.

var (
	// ErrYearNotActive is returned when an operation requires the fiscal year
	// to be the active one and it is not.
	ErrYearNotActive = fmt.Errorf("fiscal year is not active: %w", apperrors.ErrConflict)

	// ErrYearNotClosable is returned when a close is attempted while drafts
	// remain, cash/cheque incomes are unbanked or the cash position is invalid.
	ErrYearNotClosable = fmt.Errorf("fiscal year cannot be closed: %w", apperrors.ErrConflict)

	// ErrAlreadyApproved is returned on a second approval of the same record.
	ErrAlreadyApproved = fmt.Errorf("record is already approved: %w", apperrors.ErrConflict)

	// ErrAlreadyTransferred is returned when an income was already deposited
	// into a bank account.
	ErrAlreadyTransferred = fmt.Errorf("income is already transferred to a bank account: %w", apperrors.ErrConflict)

	// ErrIncomeNotApproved is returned when a bank deposit is attempted on a
	// draft income.
	ErrIncomeNotApproved = fmt.Errorf("income is not approved: %w", apperrors.ErrConflict)

	// ErrNotBankTransferable is returned when a bank deposit is attempted on
	// an income whose payment method never passes through the cash box.
	ErrNotBankTransferable = fmt.Errorf("income payment method does not require a bank transfer: %w", apperrors.ErrConflict)

	// ErrInsufficientBalance is returned when a transfer approval would
	// overdraw the source account.
	ErrInsufficientBalance = fmt.Errorf("insufficient balance on source account: %w", apperrors.ErrConflict)

	// ErrSameAccount is returned when a transfer names the same account on
	// both sides.
	ErrSameAccount = fmt.Errorf("source and destination accounts must differ: %w", apperrors.ErrValidation)

	// ErrNonPositiveAmount is returned when a monetary amount is zero or negative.
	ErrNonPositiveAmount = fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)

	// ErrBankAccountRequired is returned when a bank-wire income is created
	// without a destination bank account.
	ErrBankAccountRequired = fmt.Errorf("bank account is required for bank wire incomes: %w", apperrors.ErrValidation)

	// ErrBankAccountNotAllowed is returned when a cash/cheque income names a
	// bank account at creation time; the account is chosen at deposit time.
	ErrBankAccountNotAllowed = fmt.Errorf("bank account must not be set for cash or cheque incomes: %w", apperrors.ErrValidation)
)
