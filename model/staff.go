package model

type Staff struct {
	DTO
	FullName     string   `gorm:"not null" validate:"required" json:"fullName"`
	PhoneNumber  string   `gorm:"not null" json:"phoneNumber"`
	Email        string   `json:"email"`
	Address      string   `json:"address"`
	IdentityCard string   `gorm:"not null;uniqueIndex" validate:"required,min=9,max=12" json:"identityCard"`
	IsActive     bool     `gorm:"not null;default:true" json:"isActive"`
	Note         string   `json:"note"`
	AccountId    *uint    `json:"accountId"`
	Account      *Account `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:AccountId" json:"account"`
}

type Staffs []Staff

type CreateStaffInput struct {
	FullName     string `validate:"required" json:"fullName"`
	PhoneNumber  string `validate:"required" json:"phoneNumber"`
	Email        string `validate:"omitempty,email" json:"email"`
	Address      string `json:"address"`
	IdentityCard string `validate:"required,min=9,max=12" json:"identityCard"`
	Note         string `json:"note"`
	AccountId    *uint  `json:"accountId"`
}

type EditStaffInput struct {
	FullName    *string `json:"fullName"`
	PhoneNumber *string `json:"phoneNumber"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Address     *string `json:"address"`
	Note        *string `json:"note"`
	IsActive    *bool   `json:"isActive"`
}

type FilterStaff struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Active    *bool  `json:"active"`
}
