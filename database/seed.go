package database

import (
	"log"

	"hotel_manager/constants"
	"hotel_manager/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("123456hm"), 10)
	HashPassword := string(bytes)
	if err != nil {
		HashPassword = "123456hm"
	}
	accounts := []model.Account{
		{Username: "Administration", Password: HashPassword, Active: true, Role: constants.ROLE_ADMIN},
	}

	for _, account := range accounts {
		// Tạo mới nếu không tồn tại
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed data for account:", account.Username, "error:", err)
		}
	}

	regulations := []model.Regulation{
		{Key: constants.REGULATION_DEPOSIT_PERCENTAGE, Value: constants.DEFAULT_DEPOSIT_PERCENTAGE, Description: "Tỷ lệ đặt cọc (% tổng tiền dự kiến)"},
		{Key: constants.REGULATION_SURCHARGE_RATE, Value: constants.DEFAULT_SURCHARGE_RATE, Description: "Tỷ lệ phụ thu mỗi khách vượt sức chứa tiêu chuẩn"},
		{Key: constants.REGULATION_FOREIGN_COEFFICIENT, Value: constants.DEFAULT_FOREIGN_COEFFICIENT, Description: "Hệ số nhân khi có khách nước ngoài"},
		{Key: constants.REGULATION_STANDARD_CAPACITY, Value: constants.DEFAULT_STANDARD_CAPACITY, Description: "Sức chứa tiêu chuẩn mặc định của một phòng"},
	}
	for _, regulation := range regulations {
		if err := db.Where(model.Regulation{Key: regulation.Key}).FirstOrCreate(&regulation).Error; err != nil {
			log.Println("failed to seed regulation:", regulation.Key, "error:", err)
		}
	}

	roomTypes := []model.RoomType{
		{Name: "Phòng đơn tiêu chuẩn", Slug: "phong-don-tieu-chuan", BasePrice: 500000, MaxGuests: 1, SurchargeRatio: 0.25},
		{Name: "Phòng đôi tiêu chuẩn", Slug: "phong-doi-tieu-chuan", BasePrice: 800000, MaxGuests: 2, SurchargeRatio: 0.25},
		{Name: "Phòng gia đình", Slug: "phong-gia-dinh", BasePrice: 1200000, MaxGuests: 4, SurchargeRatio: 0.25},
		{Name: "Phòng VIP", Slug: "phong-vip", BasePrice: 2000000, MaxGuests: 2, SurchargeRatio: 0.5},
	}
	for _, roomType := range roomTypes {
		if err := db.Where(model.RoomType{Name: roomType.Name}).FirstOrCreate(&roomType).Error; err != nil {
			log.Println("failed to seed room type:", roomType.Name, "error:", err)
		}
	}

	services := []model.Service{
		{Name: "Giặt ủi", Price: 50000, Unit: "kg"},
		{Name: "Nước suối", Price: 15000, Unit: "chai"},
		{Name: "Ăn sáng", Price: 80000, Unit: "suất"},
		{Name: "Đưa đón sân bay", Price: 300000, Unit: "lượt"},
	}
	for _, service := range services {
		if err := db.Where(model.Service{Name: service.Name}).FirstOrCreate(&service).Error; err != nil {
			log.Println("failed to seed service:", service.Name, "error:", err)
		}
	}
}
