package model

// Regulation là quy định hệ thống (tỷ lệ đặt cọc, phụ thu...), admin chỉnh được
type Regulation struct {
	DTO
	Key         string  `gorm:"not null;uniqueIndex;size:64" json:"key"`
	Value       float64 `gorm:"not null" json:"value"`
	Description string  `json:"description"`
}

type Regulations []Regulation

type UpdateRegulationInput struct {
	Value       float64 `validate:"required" json:"value"`
	Description *string `json:"description"`
}
