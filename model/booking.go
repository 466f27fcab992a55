package model

import "time"

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCheckedIn = "checked_in"
	BookingCancelled = "cancelled"
)

type Booking struct {
	DTO
	PublicCode    string     `gorm:"uniqueIndex;size:20" json:"publicCode"` // BK-XXXXXX
	CustomerId    uint       `gorm:"not null" json:"customerId"`
	Customer      Customer   `gorm:"foreignKey:CustomerId" json:"customer"`
	RoomId        *uint      `json:"roomId"`
	Room          *Room      `gorm:"foreignKey:RoomId" json:"room,omitempty"`
	CheckInDate   time.Time  `gorm:"not null" json:"checkInDate"`
	CheckOutDate  time.Time  `gorm:"not null" json:"checkOutDate"`
	NumGuests     int        `gorm:"not null;default:1" json:"numGuests"`
	Status        string     `gorm:"not null;default:pending" json:"status"`
	DepositAmount float64    `gorm:"not null;default:0" json:"depositAmount"`
	CreatedBy     *uint      `json:"createdBy"` // staff id, null nếu khách tự đặt
	CancelledAt   *time.Time `json:"cancelledAt"`
}

type Bookings []Booking

type CreateBookingInput struct {
	RoomId       uint          `validate:"required" json:"roomId"`
	CheckInDate  string        `validate:"required" json:"checkInDate"`  // YYYY-MM-DD
	CheckOutDate string        `validate:"required" json:"checkOutDate"` // YYYY-MM-DD
	NumGuests    int           `validate:"omitempty,min=1" json:"numGuests"`
	Customer     CustomerInput `validate:"required" json:"customer"`
}

type FilterBooking struct {
	Pagination
	Status     *string `json:"status"`
	RoomId     *uint   `json:"roomId"`
	CustomerId *uint   `json:"customerId"`
	SearchKey  string  `json:"searchKey"`
	FromDate   *string `json:"fromDate"`
	ToDate     *string `json:"toDate"`
}

type SearchAvailableRoomsInput struct {
	CheckInDate  string `validate:"required" json:"checkInDate"`
	CheckOutDate string `validate:"required" json:"checkOutDate"`
	NumGuests    int    `validate:"omitempty,min=1" json:"numGuests"`
}
