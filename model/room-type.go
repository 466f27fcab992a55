package model

type RoomType struct {
	DTO
	Name           string  `gorm:"not null;uniqueIndex" validate:"required" json:"name"`
	Slug           string  `gorm:"uniqueIndex;size:100" json:"slug"`
	Description    string  `json:"description"`
	BasePrice      float64 `gorm:"not null" validate:"required,gt=0" json:"basePrice"` // VND/đêm
	MaxGuests      int     `gorm:"not null;default:2" validate:"required,min=1" json:"maxGuests"`
	SurchargeRatio float64 `gorm:"not null;default:0.25" validate:"gte=0,lte=1" json:"surchargeRatio"`
	ImageUrl       string  `json:"imageUrl"`
	Rooms          []Room  `gorm:"foreignKey:RoomTypeId" json:"rooms,omitempty"`
}

type RoomTypes []RoomType

type CreateRoomTypeInput struct {
	Name           string  `validate:"required" json:"name"`
	Description    string  `json:"description"`
	BasePrice      float64 `validate:"required,gt=0" json:"basePrice"`
	MaxGuests      int     `validate:"required,min=1" json:"maxGuests"`
	SurchargeRatio float64 `validate:"gte=0,lte=1" json:"surchargeRatio"`
	ImageUrl       string  `json:"imageUrl"`
}

type EditRoomTypeInput struct {
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	BasePrice      *float64 `json:"basePrice" validate:"omitempty,gt=0"`
	MaxGuests      *int     `json:"maxGuests" validate:"omitempty,min=1"`
	SurchargeRatio *float64 `json:"surchargeRatio" validate:"omitempty,gte=0,lte=1"`
	ImageUrl       *string  `json:"imageUrl"`
}
