package handlers

import (
	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// paymentMethodValidator accepts the known payment method values.
func paymentMethodValidator(fl validator.FieldLevel) bool {
	switch domain.PaymentMethod(fl.Field().String()) {
	case domain.Cash, domain.Cheque, domain.BankWire:
		return true
	}
	return false
}

// RegisterCustomValidators wires custom binding validators into Gin's
// validator engine. Must be called once before the router handles requests.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("paymentmethod", paymentMethodValidator)
	}
}
