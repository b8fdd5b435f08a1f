package services

import (
	"context"

	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
	portssvc "github.com/assocamal/charity_mgmt_app/internal/core/ports/services"
)

// AllowAllClosePolicy authorizes every authenticated user to close fiscal
// years. Deployments with a treasurer role swap in their own policy.
type AllowAllClosePolicy struct{}

// NewAllowAllClosePolicy creates the default close policy.
func NewAllowAllClosePolicy() portssvc.ClosePolicy {
	return AllowAllClosePolicy{}
}

func (AllowAllClosePolicy) CanCloseFiscalYear(_ context.Context, _ string, _ domain.FiscalYear) bool {
	return true
}

var _ portssvc.ClosePolicy = (*AllowAllClosePolicy)(nil)
