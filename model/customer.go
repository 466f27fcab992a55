package model

const (
	CustomerDomestic = "domestic"
	CustomerForeign  = "foreign"
)

type Customer struct {
	DTO
	IdentityCard string  `gorm:"not null;uniqueIndex" validate:"required" json:"identityCard"`
	FullName     string  `gorm:"not null" validate:"required" json:"fullName"`
	PhoneNumber  string  `json:"phoneNumber"`
	Email        *string `gorm:"uniqueIndex" json:"email"`
	Address      string  `json:"address"`
	Type         string  `gorm:"not null;default:domestic" validate:"oneof=domestic foreign" json:"type"`
}

type Customers []Customer

type CustomerInput struct {
	IdentityCard string `validate:"required" json:"identityCard"`
	FullName     string `validate:"required" json:"fullName"`
	PhoneNumber  string `json:"phoneNumber"`
	Email        string `validate:"omitempty,email" json:"email"`
	Address      string `json:"address"`
	Type         string `validate:"omitempty,oneof=domestic foreign" json:"type"`
}

type EditCustomerInput struct {
	FullName    *string `json:"fullName"`
	PhoneNumber *string `json:"phoneNumber"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Address     *string `json:"address"`
	Type        *string `json:"type" validate:"omitempty,oneof=domestic foreign"`
}

type FilterCustomer struct {
	Pagination
	SearchKey    string  `json:"searchKey"`
	IdentityCard *string `json:"identityCard"`
	Type         *string `json:"type"`
}
