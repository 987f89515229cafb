package domain

// Crop is a planting, optionally located on a farm, with the fertilizers
// applied to it
type Crop struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	PlantedArea float64 `json:"plantedArea"`
	PlantedDate Date    `json:"plantedDate"`
	HarvestDate Date    `json:"harvestDate"`
	FarmID      *int64  `json:"farmId"`

	// Populated when the crop is loaded by ID; nil when it has never been
	// associated or was loaded as part of a list.
	Fertilizers []Fertilizer `json:"-"`
}

// HasFarm reports whether the crop is bound to a farm
func (c *Crop) HasFarm() bool {
	return c.FarmID != nil
}

// CropInput represents input for creating a crop
type CropInput struct {
	Name        string  `json:"name" validate:"required,notblank,max=255"`
	PlantedArea float64 `json:"plantedArea" validate:"gt=0"`
	PlantedDate Date    `json:"plantedDate" validate:"required"`
	HarvestDate Date    `json:"harvestDate" validate:"required"`
}

// CropUpdateInput represents a merge-patch of a crop.
//
// Planted and harvest dates cannot be changed through an update.
type CropUpdateInput struct {
	Name        *string  `json:"name,omitempty"`
	PlantedArea *float64 `json:"plantedArea,omitempty"`
	FarmID      *int64   `json:"farmId,omitempty"`
}

// CropFilter represents filter options for querying crops
type CropFilter struct {
	HarvestStart Date
	HarvestEnd   Date
}

// Matches reports whether the crop's harvest date falls within the filter's
// inclusive interval
func (f CropFilter) Matches(c *Crop) bool {
	return c.HarvestDate.Between(f.HarvestStart, f.HarvestEnd)
}
