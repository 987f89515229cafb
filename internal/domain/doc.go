// Package domain contains the core business entities and types for Agrix.
//
// This package defines:
//   - Entity types (Farm, Crop, Fertilizer)
//   - The calendar Date value type
//   - Input types for create and merge-patch update operations
//   - The not-found faults raised by the service layer
//
// # Design Philosophy
//
// Domain types are persistence-agnostic and represent the core
// business concepts independent of how they are stored or transmitted.
//
// # Relationships
//
//   - Farm 1..n Crop: a Crop owns an optional FarmID foreign key. A Farm
//     never holds its crops; the reverse side is derived by querying crops
//     by farm ID.
//   - Crop n..m Fertilizer: a Crop carries the fertilizers associated with
//     it when loaded by ID. The association may contain the same fertilizer
//     more than once.
//
// # Naming Conventions
//
// Types ending in "Input" are used for create operations.
// Types ending in "UpdateInput" carry optional fields for merge-patch updates:
// a nil field leaves the stored value untouched.
package domain
