package helper

import (
	"math"
	"time"
)

// PriceBreakdown là kết quả tính giá một kỳ lưu trú
type PriceBreakdown struct {
	Nights                int     `json:"nights"`
	RoomCharge            float64 `json:"roomCharge"`
	OvercapacitySurcharge float64 `json:"overcapacitySurcharge"`
	ForeignSurcharge      float64 `json:"foreignSurcharge"`
	Total                 float64 `json:"total"`
}

// Nights tính số đêm = ceil(số ngày giữa hai mốc). Caller phải đảm bảo
// checkOut sau checkIn.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// NightsMin1 như Nights nhưng tối thiểu 1 đêm, dùng cho khách vãng lai
// nhận trả phòng trong ngày
func NightsMin1(checkIn, checkOut time.Time) int {
	n := Nights(checkIn, checkOut)
	if n < 1 {
		return 1
	}
	return n
}

func RoomCharge(basePrice float64, nights int) float64 {
	return basePrice * float64(nights)
}

// OvercapacitySurcharge phụ thu vượt sức chứa tiêu chuẩn:
// basePrice * surchargeRatio * số khách vượt * số đêm.
// Công thức áp dụng thống nhất cho cả nhận phòng, vãng lai và xem giá.
func OvercapacitySurcharge(basePrice float64, numGuests, standardCapacity int, surchargeRatio float64, nights int) float64 {
	extra := numGuests - standardCapacity
	if extra <= 0 {
		return 0
	}
	return basePrice * surchargeRatio * float64(extra) * float64(nights)
}

// ForeignSurcharge phụ thu khách nước ngoài: chỉ cần 1 khách trong đoàn
// là khách nước ngoài thì cả đoàn chịu hệ số
func ForeignSurcharge(subtotal float64, anyGuestForeign bool, foreignCoefficient float64) float64 {
	if !anyGuestForeign {
		return 0
	}
	return subtotal * (foreignCoefficient - 1)
}

// Deposit tiền đặt cọc = round(total * pct / 100)
func Deposit(total float64, depositPercentage float64) float64 {
	return math.Round(total * depositPercentage / 100)
}

// CalculateStayPrice gộp các khoản thành bảng giá. Chỉ làm tròn một lần
// ở tổng cuối, không làm tròn từng khoản trung gian.
func CalculateStayPrice(basePrice float64, nights, numGuests, standardCapacity int, surchargeRatio, foreignCoefficient float64, anyGuestForeign bool) PriceBreakdown {
	roomCharge := RoomCharge(basePrice, nights)
	overcapacity := OvercapacitySurcharge(basePrice, numGuests, standardCapacity, surchargeRatio, nights)
	subtotal := roomCharge + overcapacity
	foreign := ForeignSurcharge(subtotal, anyGuestForeign, foreignCoefficient)

	return PriceBreakdown{
		Nights:                nights,
		RoomCharge:            roomCharge,
		OvercapacitySurcharge: overcapacity,
		ForeignSurcharge:      foreign,
		Total:                 math.Round(subtotal + foreign),
	}
}
