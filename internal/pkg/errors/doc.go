// Package errors provides application error types for Agrix.
//
// This package defines:
//   - AppError type with error classification
//   - Error constructors for common error types
//   - Error type checking helpers
//   - HTTP status code mapping
//
// # Error Types
//
//   - NotFound: Resource does not exist (404)
//   - Validation: Invalid input data (400)
//   - BadRequest: Malformed request parameters (400)
//   - RateLimited: Too many requests (429)
//
// # Usage
//
// Create errors using constructor functions:
//
//	return apperrors.NotFound("farm")
//	return apperrors.Validation("name is required")
//
// Check error types:
//
//	if apperrors.IsNotFound(err) {
//	    // Handle not found
//	}
//
// Two AppErrors with the same code and message match under errors.Is, so
// package-level sentinels can be compared against errors created elsewhere:
//
//	var ErrFarmNotFound = apperrors.NotFound("farm")
//	errors.Is(repo.GetByID(ctx, id), ErrFarmNotFound)
//
// # Error Wrapping
//
// Errors support wrapping with fmt.Errorf:
//
//	return fmt.Errorf("operation failed: %w", apperrors.NotFound("crop"))
package errors
