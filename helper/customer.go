package helper

import (
	"errors"

	"hotel_manager/model"
	"hotel_manager/utils"

	"gorm.io/gorm"
)

func GetCustomerByIdentityCard(db *gorm.DB, identityCard string) (*model.Customer, error) {
	var customer model.Customer
	if err := db.Where("identity_card = ?", identityCard).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// FindOrMergeCustomer tìm khách theo CMND/CCCD; nếu đã có thì cập nhật
// thông tin mới vào bản ghi cũ thay vì tạo trùng
func FindOrMergeCustomer(db *gorm.DB, input model.CustomerInput) (*model.Customer, *utils.AppError) {
	existing, err := GetCustomerByIdentityCard(db, input.IdentityCard)
	if err != nil {
		return nil, utils.NewAppError(utils.KindStore, "Lỗi truy vấn khách hàng", err)
	}

	customerType := input.Type
	if customerType == "" {
		customerType = model.CustomerDomestic
	}

	if existing != nil {
		updates := map[string]interface{}{
			"full_name": input.FullName,
			"type":      customerType,
		}
		if input.PhoneNumber != "" {
			updates["phone_number"] = input.PhoneNumber
		}
		if input.Email != "" {
			updates["email"] = input.Email
		}
		if input.Address != "" {
			updates["address"] = input.Address
		}
		if err := db.Model(&model.Customer{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
			return nil, utils.NewAppError(utils.KindStore, "Không thể cập nhật khách hàng", err)
		}
		if err := db.First(existing, existing.ID).Error; err != nil {
			return nil, utils.NewAppError(utils.KindStore, "Lỗi truy vấn khách hàng", err)
		}
		return existing, nil
	}

	customer := model.Customer{
		IdentityCard: input.IdentityCard,
		FullName:     input.FullName,
		PhoneNumber:  input.PhoneNumber,
		Email:        utils.StringPtr(input.Email),
		Address:      input.Address,
		Type:         customerType,
	}
	if err := db.Create(&customer).Error; err != nil {
		return nil, utils.NewAppError(utils.KindStore, "Không thể tạo khách hàng", err)
	}
	return &customer, nil
}
