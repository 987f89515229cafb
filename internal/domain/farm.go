package domain

// Farm is a piece of land that crops can be planted on
type Farm struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Size float64 `json:"size"`
}

// FarmInput represents input for creating a farm
type FarmInput struct {
	Name string  `json:"name" validate:"required,notblank,max=255"`
	Size float64 `json:"size" validate:"gt=0"`
}

// FarmUpdateInput represents a merge-patch of a farm. Only non-nil fields
// are considered.
type FarmUpdateInput struct {
	Name *string  `json:"name,omitempty"`
	Size *float64 `json:"size,omitempty"`
}
