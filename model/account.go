package model

type Account struct {
	DTO
	Username string `gorm:"uniqueIndex;not null" validate:"required,min=3,max=50" json:"username"`
	Password string `gorm:"not null" validate:"required,min=6,max=50" json:"-"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
	Role     string `json:"role"`
	Staff    *Staff `gorm:"foreignKey:AccountId" json:"staff"`
}

type Accounts []Account

type CreateAccountInput struct {
	Username string `validate:"required,min=3,max=50" json:"username"`
	Password string `validate:"required,min=6,max=50" json:"password"`
	Role     string `validate:"required,oneof=ADMIN MANAGER RECEPTIONIST ACCOUNTANT" json:"role"`
}

type UpdateAccountInput struct {
	Active *bool   `json:"active,omitempty"`
	Role   *string `json:"role,omitempty" validate:"omitempty,oneof=ADMIN MANAGER RECEPTIONIST ACCOUNTANT"`
}

type FilterAccount struct {
	Pagination
	SearchKey string  `json:"searchKey"`
	Active    *bool   `json:"active"`
	Role      *string `json:"role"`
}
