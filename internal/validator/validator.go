// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	monthRegex   = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
	isoDateRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("month", validateMonth)
		_ = v.RegisterValidation("iso_date", validateISODate)
		_ = v.RegisterValidation("category_type", validateCategoryType)
		_ = v.RegisterValidation("debt_type", validateDebtType)
	}
}

func validateMonth(fl validator.FieldLevel) bool {
	return monthRegex.MatchString(fl.Field().String())
}

func validateISODate(fl validator.FieldLevel) bool {
	return isoDateRegex.MatchString(fl.Field().String())
}

func validateCategoryType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateDebtType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "credit-card", "loan", "other":
		return true
	}
	return false
}
