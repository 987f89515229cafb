// Package handler contains the HTTP handlers of the Agrix API.
//
// Each handler parses path parameters and bodies, calls one service
// method and renders the result as JSON. Errors go through respondError:
// NotFound and BadRequest errors keep their status and message, validation
// failures become a 400 with per-field details, and anything else is logged
// and answered with a generic 500.
//
// # Routes
//
//   - /farms and /farms/:id/crops
//   - /crops, /crops/search and the crop farm and fertilizer sub-resources
//   - /fertilizers
//   - /health, /livez, /readyz and /version
//   - /openapi.yaml and /docs
package handler
