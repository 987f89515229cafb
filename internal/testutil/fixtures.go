// Package testutil provides shared test utilities for the Agrix API.
package testutil

import (
	"github.com/agrix/agrix/internal/domain"
)

// NewTestFarmInput creates a farm input with default values.
func NewTestFarmInput() *domain.FarmInput {
	return &domain.FarmInput{
		Name: "Green Valley",
		Size: 120.0,
	}
}

// NewTestCropInput creates a crop input planted on 2024-03-01 and harvested
// on 2024-07-01.
func NewTestCropInput() *domain.CropInput {
	return &domain.CropInput{
		Name:        "Corn",
		PlantedArea: 30.0,
		PlantedDate: domain.MustParseDate("2024-03-01"),
		HarvestDate: domain.MustParseDate("2024-07-01"),
	}
}

// NewTestFertilizerInput creates a fertilizer input with default values.
func NewTestFertilizerInput() *domain.FertilizerInput {
	return &domain.FertilizerInput{
		Name:        "Compost",
		Brand:       "Nature's Best",
		Composition: "organic matter",
	}
}
