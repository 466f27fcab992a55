package model

const (
	RoomAvailable   = "available"
	RoomOccupied    = "occupied"
	RoomCleaning    = "cleaning"
	RoomMaintenance = "maintenance"
)

type Room struct {
	DTO
	RoomNumber string   `gorm:"not null;uniqueIndex" validate:"required" json:"roomNumber"`
	Floor      int      `json:"floor"`
	Status     string   `gorm:"not null;default:available" json:"status"`
	RoomTypeId uint     `gorm:"not null" json:"roomTypeId"`
	RoomType   RoomType `gorm:"foreignKey:RoomTypeId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"roomType"`
}

type Rooms []Room

type CreateRoomInput struct {
	RoomNumber string `validate:"required" json:"roomNumber"`
	Floor      int    `json:"floor"`
	RoomTypeId uint   `validate:"required" json:"roomTypeId"`
}

type EditRoomInput struct {
	RoomNumber *string `json:"roomNumber"`
	Floor      *int    `json:"floor"`
	RoomTypeId *uint   `json:"roomTypeId"`
}

type UpdateRoomStatusInput struct {
	Status string `validate:"required,oneof=available cleaning maintenance" json:"status"`
}

type FilterRoom struct {
	Pagination
	Status     *string `json:"status"`
	RoomTypeId *uint   `json:"roomTypeId"`
	Floor      *int    `json:"floor"`
}
