// Package validator provides struct validation for Agrix.
//
// This package wraps go-playground/validator to provide:
//   - Consistent validation across all handlers
//   - Human-readable error messages
//   - Structured validation error responses
//
// # Usage
//
// Use validator.Validate() directly or through dto.ParseAndValidate():
//
//	if err := validator.Validate(myStruct); err != nil {
//	    // err is a validator.ValidationErrors
//	}
//
// # Custom Validations
//
// The init() function registers:
//   - notblank: the string must contain a non-whitespace character
//   - a custom type func for domain.Date, so "required" rejects unset dates
//
// The validator instance is package-level and thread-safe.
package validator
