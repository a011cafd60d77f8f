package dto

import (
	"github.com/bizledger/journal_entry_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// entryTypeValidator accepts the five enumerated entry types.
var entryTypeValidator validator.Func = func(fl validator.FieldLevel) bool {
	return domain.ValidEntryType(domain.EntryType(fl.Field().String()))
}

// RegisterCustomValidators wires engine-specific binding rules into gin's
// validator instance. Call once at startup before routes are registered.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("entrytype", entryTypeValidator)
}
