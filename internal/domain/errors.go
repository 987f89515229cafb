package domain

import (
	apperrors "github.com/agrix/agrix/internal/pkg/errors"
)

// Not-found faults. Repositories return errors that match these under
// errors.Is; services propagate them unchanged.
var (
	ErrFarmNotFound       = apperrors.NotFound("farm")
	ErrCropNotFound       = apperrors.NotFound("crop")
	ErrFertilizerNotFound = apperrors.NotFound("fertilizer")
)
