package domain

// Fertilizer is a product that can be applied to crops
type Fertilizer struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Composition string `json:"composition"`
}

// FertilizerInput represents input for creating a fertilizer
type FertilizerInput struct {
	Name        string `json:"name" validate:"required,notblank,max=255"`
	Brand       string `json:"brand" validate:"max=255"`
	Composition string `json:"composition"`
}
