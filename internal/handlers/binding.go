package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/ecomkit/prices/pkg/money"
)

// RegisterValidators installs the custom binding validators used by the
// request DTOs. It must run once before routes are served.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// currencycode accepts only codes present in the currency registry.
		_ = v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
			return money.IsSupported(fl.Field().String())
		})
	}
}
