package helper

import (
	"log"

	"hotel_manager/constants"
	"hotel_manager/model"

	"gorm.io/gorm"
)

// RegulationSettings là snapshot quy định hệ thống tại thời điểm gọi.
// Đọc mới mỗi thao tác, không cache: admin đổi quy định là áp dụng ngay
// ở lần gọi sau.
type RegulationSettings struct {
	DepositPercentage  float64
	SurchargeRate      float64
	ForeignCoefficient float64
	StandardCapacity   int
}

func LoadSettings(db *gorm.DB) RegulationSettings {
	settings := RegulationSettings{
		DepositPercentage:  constants.DEFAULT_DEPOSIT_PERCENTAGE,
		SurchargeRate:      constants.DEFAULT_SURCHARGE_RATE,
		ForeignCoefficient: constants.DEFAULT_FOREIGN_COEFFICIENT,
		StandardCapacity:   constants.DEFAULT_STANDARD_CAPACITY,
	}

	var regulations []model.Regulation
	if err := db.Find(&regulations).Error; err != nil {
		log.Printf("Lỗi đọc bảng quy định, dùng giá trị mặc định: %v", err)
		return settings
	}

	for _, regulation := range regulations {
		switch regulation.Key {
		case constants.REGULATION_DEPOSIT_PERCENTAGE:
			settings.DepositPercentage = regulation.Value
		case constants.REGULATION_SURCHARGE_RATE:
			settings.SurchargeRate = regulation.Value
		case constants.REGULATION_FOREIGN_COEFFICIENT:
			settings.ForeignCoefficient = regulation.Value
		case constants.REGULATION_STANDARD_CAPACITY:
			if regulation.Value >= 1 {
				settings.StandardCapacity = int(regulation.Value)
			}
		}
	}

	return settings
}

// StandardCapacityFor lấy sức chứa tiêu chuẩn của loại phòng, rơi về quy
// định chung khi loại phòng chưa cấu hình
func StandardCapacityFor(roomType model.RoomType, settings RegulationSettings) int {
	if roomType.MaxGuests >= 1 {
		return roomType.MaxGuests
	}
	return settings.StandardCapacity
}

// SurchargeRatioFor lấy tỷ lệ phụ thu của loại phòng, rơi về quy định chung
func SurchargeRatioFor(roomType model.RoomType, settings RegulationSettings) float64 {
	if roomType.SurchargeRatio > 0 {
		return roomType.SurchargeRatio
	}
	return settings.SurchargeRate
}
