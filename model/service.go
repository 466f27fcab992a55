package model

import "time"

type Service struct {
	DTO
	Name     string  `gorm:"not null;uniqueIndex" validate:"required" json:"name"`
	Price    float64 `gorm:"not null" validate:"required,gt=0" json:"price"`
	Unit     string  `json:"unit"` // lần, suất, chai...
	IsActive bool    `gorm:"not null;default:true" json:"isActive"`
}

type Services []Service

// ServiceUsage ghi nhận dịch vụ đã dùng trong kỳ thuê, chỉ thêm không sửa
type ServiceUsage struct {
	DTO
	RentalId   uint      `gorm:"not null;index" json:"rentalId"`
	ServiceId  uint      `gorm:"not null" json:"serviceId"`
	Service    Service   `gorm:"foreignKey:ServiceId" json:"service"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	TotalPrice float64   `gorm:"not null" json:"totalPrice"`
	UsedAt     time.Time `gorm:"not null" json:"usedAt"`
}

type CreateServiceInput struct {
	Name  string  `validate:"required" json:"name"`
	Price float64 `validate:"required,gt=0" json:"price"`
	Unit  string  `json:"unit"`
}

type AddServiceUsageInput struct {
	ServiceId uint `validate:"required" json:"serviceId"`
	Quantity  int  `validate:"required,min=1" json:"quantity"`
}
