package sqlite

import (
	"github.com/agrix/agrix/internal/domain"
)

type farmRow struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"size:255;not null"`
	Size float64
}

func (farmRow) TableName() string { return "farms" }

func (r farmRow) toDomain() *domain.Farm {
	return &domain.Farm{ID: r.ID, Name: r.Name, Size: r.Size}
}

func newFarmRow(f *domain.Farm) farmRow {
	return farmRow{ID: f.ID, Name: f.Name, Size: f.Size}
}

type cropRow struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:255;not null"`
	PlantedArea float64
	PlantedDate domain.Date `gorm:"type:date"`
	HarvestDate domain.Date `gorm:"type:date"`
	FarmID      *int64      `gorm:"index"`
	Farm        *farmRow    `gorm:"constraint:OnDelete:SET NULL"`
}

func (cropRow) TableName() string { return "crops" }

func (r cropRow) toDomain() *domain.Crop {
	return &domain.Crop{
		ID:          r.ID,
		Name:        r.Name,
		PlantedArea: r.PlantedArea,
		PlantedDate: r.PlantedDate,
		HarvestDate: r.HarvestDate,
		FarmID:      r.FarmID,
	}
}

func newCropRow(c *domain.Crop) cropRow {
	return cropRow{
		ID:          c.ID,
		Name:        c.Name,
		PlantedArea: c.PlantedArea,
		PlantedDate: c.PlantedDate,
		HarvestDate: c.HarvestDate,
		FarmID:      c.FarmID,
	}
}

type fertilizerRow struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:255;not null"`
	Brand       string `gorm:"size:255"`
	Composition string
}

func (fertilizerRow) TableName() string { return "fertilizers" }

func (r fertilizerRow) toDomain() *domain.Fertilizer {
	return &domain.Fertilizer{ID: r.ID, Name: r.Name, Brand: r.Brand, Composition: r.Composition}
}

func newFertilizerRow(f *domain.Fertilizer) fertilizerRow {
	return fertilizerRow{ID: f.ID, Name: f.Name, Brand: f.Brand, Composition: f.Composition}
}

// cropFertilizerRow is one application of a fertilizer to a crop. It has its
// own key so the same pair can appear more than once.
type cropFertilizerRow struct {
	ID           int64          `gorm:"primaryKey;autoIncrement"`
	CropID       int64          `gorm:"index;not null"`
	FertilizerID int64          `gorm:"not null"`
	Crop         *cropRow       `gorm:"constraint:OnDelete:CASCADE"`
	Fertilizer   *fertilizerRow `gorm:"constraint:OnDelete:CASCADE"`
}

func (cropFertilizerRow) TableName() string { return "crop_fertilizers" }
