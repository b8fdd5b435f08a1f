package services

import (
	"context"
	"fmt"
	"time"

	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
	portsrepo "github.com/assocamal/charity_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/assocamal/charity_mgmt_app/internal/core/ports/services"
	"github.com/assocamal/charity_mgmt_app/internal/dto"
	"github.com/google/uuid"
)

// transferService implements the TransferSvcFacade interface
type transferService struct {
	BaseService
	transferRepo    portsrepo.TransferRepositoryFacade
	fiscalYearRepo  portsrepo.FiscalYearReader
	bankAccountRepo portsrepo.BankAccountReader
}

// NewTransferService creates the inter-account transfer service.
func NewTransferService(
	transferRepo portsrepo.TransferRepositoryFacade,
	fiscalYearRepo portsrepo.FiscalYearReader,
	bankAccountRepo portsrepo.BankAccountReader,
) portssvc.TransferSvcFacade {
	return &transferService{
		transferRepo:    transferRepo,
		fiscalYearRepo:  fiscalYearRepo,
		bankAccountRepo: bankAccountRepo,
	}
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// CreateTransfer creates a new draft transfer between two distinct bank accounts.
func (s *transferService) CreateTransfer(ctx context.Context, req dto.CreateTransferRequest, creatorUserID string) (*domain.Transfer, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	if req.FromAccountID == req.ToAccountID {
		return nil, ErrSameAccount
	}

	fy, err := s.fiscalYearRepo.FindFiscalYearByID(ctx, req.FiscalYearID)
	if err != nil {
		s.LogError(ctx, err, "Fiscal year not found for transfer", "fiscal_year_id", req.FiscalYearID)
		return nil, err
	}
	if !fy.IsActive {
		return nil, ErrYearNotActive
	}

	if _, err := s.bankAccountRepo.FindBankAccountByID(ctx, req.FromAccountID); err != nil {
		s.LogError(ctx, err, "Source account not found", "bank_account_id", req.FromAccountID)
		return nil, fmt.Errorf("invalid source account: %w", err)
	}
	if _, err := s.bankAccountRepo.FindBankAccountByID(ctx, req.ToAccountID); err != nil {
		s.LogError(ctx, err, "Destination account not found", "bank_account_id", req.ToAccountID)
		return nil, fmt.Errorf("invalid destination account: %w", err)
	}

	now := time.Now()
	transfer := domain.Transfer{
		TransferID:    uuid.NewString(),
		FiscalYearID:  req.FiscalYearID,
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        req.Amount,
		Status:        domain.Draft,
		Remarks:       req.Remarks,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.transferRepo.SaveTransfer(ctx, transfer); err != nil {
		s.LogError(ctx, err, "Failed to save transfer", "fiscal_year_id", req.FiscalYearID)
		return nil, fmt.Errorf("failed to save transfer: %w", err)
	}

	s.LogInfo(ctx, "Transfer created", "transfer_id", transfer.TransferID, "amount", transfer.Amount.String())
	return &transfer, nil
}

// GetTransferByID retrieves a transfer.
func (s *transferService) GetTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error) {
	transfer, err := s.transferRepo.FindTransferByID(ctx, transferID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find transfer", "transfer_id", transferID)
		return nil, err
	}
	return transfer, nil
}

// ListTransfers lists transfers of a fiscal year, cursor-paginated.
func (s *transferService) ListTransfers(ctx context.Context, params dto.ListRecordsParams) (*dto.ListTransfersResponse, error) {
	transfers, nextToken, err := s.transferRepo.ListTransfersByFiscalYear(ctx, params.FiscalYearID, clampLimit(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transfers", "fiscal_year_id", params.FiscalYearID)
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	return &dto.ListTransfersResponse{
		Transfers: dto.ToTransferResponses(transfers),
		NextToken: nextToken,
	}, nil
}

// ApproveTransfer transitions a draft transfer to approved and moves the
// money. The balance pre-check here gives a clean message; the repository
// re-checks the source balance under row locks before committing.
func (s *transferService) ApproveTransfer(ctx context.Context, transferID string, actorUserID string) (*domain.Transfer, error) {
	transfer, err := s.transferRepo.FindTransferByID(ctx, transferID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find transfer for approval", "transfer_id", transferID)
		return nil, err
	}
	if transfer.Status != domain.Draft {
		return nil, ErrAlreadyApproved
	}

	fy, err := s.fiscalYearRepo.FindFiscalYearByID(ctx, transfer.FiscalYearID)
	if err != nil {
		return nil, err
	}
	if !fy.IsActive {
		return nil, ErrYearNotActive
	}

	source, err := s.bankAccountRepo.FindBankAccountByID(ctx, transfer.FromAccountID)
	if err != nil {
		s.LogError(ctx, err, "Source account not found for transfer approval", "bank_account_id", transfer.FromAccountID)
		return nil, fmt.Errorf("invalid source account: %w", err)
	}
	if source.Balance.LessThan(transfer.Amount) {
		return nil, ErrInsufficientBalance
	}

	now := time.Now()
	if err := s.transferRepo.ApproveTransfer(ctx, *transfer, actorUserID, now); err != nil {
		s.LogError(ctx, err, "Failed to approve transfer", "transfer_id", transferID)
		return nil, err
	}

	transfer.Status = domain.Approved
	transfer.ApprovedBy = actorUserID
	transfer.ApprovedAt = &now
	transfer.LastUpdatedAt = now
	transfer.LastUpdatedBy = actorUserID

	s.LogInfo(ctx, "Transfer approved", "transfer_id", transferID, "amount", transfer.Amount.String())
	return transfer, nil
}
