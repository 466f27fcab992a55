package model

import "time"

const (
	RentalActive = "active"
	RentalClosed = "closed"
)

type Rental struct {
	DTO
	PublicCode string   `gorm:"uniqueIndex;size:20" json:"publicCode"` // RT-XXXXXX
	BookingId  *uint    `json:"bookingId"`                             // null với khách vãng lai
	Booking    *Booking `gorm:"foreignKey:BookingId" json:"booking,omitempty"`
	RoomId     uint     `gorm:"not null" json:"roomId"`
	Room       Room     `gorm:"foreignKey:RoomId" json:"room"`

	StartDate time.Time `gorm:"not null" json:"startDate"`
	EndDate   time.Time `gorm:"not null" json:"endDate"`
	Status    string    `gorm:"not null;default:active" json:"status"`

	// Giá chốt tại thời điểm nhận phòng, không đổi khi RoomType đổi giá
	PriceAtRental     float64 `gorm:"not null" json:"priceAtRental"`     // tổng tiền phòng cả kỳ
	BasePriceAtRental float64 `gorm:"not null" json:"basePriceAtRental"` // giá gốc 1 đêm đã chốt

	NumGuests int   `gorm:"not null;default:1" json:"numGuests"`
	StaffId   uint  `json:"staffId"`
	Staff     Staff `gorm:"foreignKey:StaffId" json:"staff,omitempty"`

	CheckedOutAt *time.Time    `json:"checkedOutAt"`
	Guests       []RentalGuest `gorm:"foreignKey:RentalId" json:"guests"`
}

type Rentals []Rental

type RentalGuest struct {
	DTO
	RentalId   uint     `gorm:"not null;index" json:"rentalId"`
	CustomerId uint     `gorm:"not null" json:"customerId"`
	Customer   Customer `gorm:"foreignKey:CustomerId" json:"customer"`
	IsPrimary  bool     `gorm:"not null;default:false" json:"isPrimary"`
}

type CheckInBookingInput struct {
	DepositAmount *float64 `json:"depositAmount" validate:"omitempty,gte=0"`
}

type WalkInCheckInInput struct {
	RoomId       uint   `validate:"required" json:"roomId"`
	CustomerIds  []uint `validate:"required,min=1,dive,required" json:"customerIds"`
	CheckOutDate string `validate:"required" json:"checkOutDate"` // YYYY-MM-DD
	NumGuests    int    `validate:"omitempty,min=1" json:"numGuests"`
}

type WalkInPriceInput struct {
	RoomId       uint   `validate:"required" json:"roomId"`
	CheckOutDate string `validate:"required" json:"checkOutDate"`
	CustomerIds  []uint `json:"customerIds"`
	NumGuests    int    `validate:"omitempty,min=1" json:"numGuests"`
}

type ExtendRentalInput struct {
	NewEndDate string `validate:"required" json:"newEndDate"` // YYYY-MM-DD
}
