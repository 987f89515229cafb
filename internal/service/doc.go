// Package service contains the business logic layer for Agrix.
//
// Services coordinate between handlers and repositories. FarmService and
// FertilizerService own their entities; CropService is the hub for every
// crop-farm and crop-fertilizer association and resolves the referenced
// entities through the other two.
//
// Services depend on repository interfaces defined in this package, so a
// storage backend is injected through the constructors.
//
// # Errors
//
// Lookups fail with errors matching domain.ErrFarmNotFound,
// domain.ErrCropNotFound or domain.ErrFertilizerNotFound. Operations that
// touch several entities always resolve the crop first. Services do not log.
//
// # Updates
//
// Updates are merge-patches: a field is written only when it is present in
// the input and holds a usable value. Blank names and NaN numbers are
// ignored, never rejected.
//
// # Thread Safety
//
// All services are stateless and safe for concurrent use. Concurrent writes
// to the same entity are last-write-wins at the storage layer.
package service
