package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/zakatify/zakat_backend/internal/utils"
)

// RegisterValidations installs the custom "amount" rule on gin's validator so
// request tags can reject malformed monetary strings at bind time.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		raw := fl.Field().String()
		if raw == "" {
			return true
		}
		_, err := utils.ParseAmount(raw)
		return err == nil
	})
}
