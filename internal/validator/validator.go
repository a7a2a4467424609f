// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validCurrencies contains the ISO 4217 currency codes the dashboard accepts.
var validCurrencies = map[string]bool{
	"AUD": true, "BRL": true, "CAD": true, "CHF": true, "CNY": true,
	"CZK": true, "DKK": true, "EUR": true, "GBP": true, "HKD": true,
	"HUF": true, "IDR": true, "ILS": true, "INR": true, "JPY": true,
	"KRW": true, "MXN": true, "NOK": true, "NZD": true, "PLN": true,
	"RON": true, "SEK": true, "SGD": true, "THB": true, "TRY": true,
	"TWD": true, "USD": true, "ZAR": true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("iso4217", validateISO4217)
		_ = v.RegisterValidation("asset_type", validateAssetType)
		_ = v.RegisterValidation("risk_tolerance", validateRiskTolerance)
		_ = v.RegisterValidation("investment_horizon", validateInvestmentHorizon)
		_ = v.RegisterValidation("experience_level", validateExperienceLevel)
	}
}

func validateISO4217(fl validator.FieldLevel) bool {
	return validCurrencies[fl.Field().String()]
}

func validateAssetType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "stock", "etf", "crypto", "real_estate", "savings":
		return true
	}
	return false
}

func validateRiskTolerance(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "conservative", "moderate", "aggressive", "very_aggressive":
		return true
	}
	return false
}

func validateInvestmentHorizon(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "short", "medium", "long", "very_long":
		return true
	}
	return false
}

func validateExperienceLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "beginner", "intermediate", "advanced", "expert":
		return true
	}
	return false
}
