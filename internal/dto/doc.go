// Package dto contains Data Transfer Objects for HTTP request/response handling.
//
// Request bodies decode straight into the domain input types, which carry
// their own validation tags. This package adds the parsing helper and the
// few wire shapes that have no domain counterpart.
//
// # Usage
//
// Use dto.ParseAndValidate() in handlers to parse and validate requests:
//
//	var input domain.FarmInput
//	if err := dto.ParseAndValidate(c, &input); err != nil {
//	    return respondError(c, h.logger, err, "create farm")
//	}
//
// The returned error is either an *apperrors.AppError (malformed body) or
// validator.ValidationErrors (field failures).
package dto
