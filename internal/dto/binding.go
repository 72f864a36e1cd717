package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/bigborda/caixa_backend/internal/core/domain"
)

// RegisterValidations installs the custom binding validators used by the
// request types. Call once at startup, before routes are served.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return domain.ValidDate(fl.Field().String())
	})
}
