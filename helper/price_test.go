package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	t.Run("mot dem", func(t *testing.T) {
		assert.Equal(t, 1, Nights(date(2026, 3, 1), date(2026, 3, 2)))
	})

	t.Run("hai dem", func(t *testing.T) {
		assert.Equal(t, 2, Nights(date(2026, 3, 1), date(2026, 3, 3)))
	})

	t.Run("chua tron ngay lam tron len", func(t *testing.T) {
		checkIn := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)
		checkOut := time.Date(2026, 3, 2, 23, 59, 59, 0, time.UTC)
		assert.Equal(t, 2, Nights(checkIn, checkOut))
	})

	t.Run("nhan tra cung ngay toi thieu mot dem", func(t *testing.T) {
		checkIn := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)
		checkOut := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
		assert.Equal(t, 1, NightsMin1(checkIn, checkOut))
	})

	// Khách vãng lai nhận phòng giữa ngày với ngày trả đã parse về 00:00
	// phải trả đúng số đêm như khách đặt trước cùng khoảng ngày
	t.Run("vang lai giua ngay tinh dem nhu dat truoc", func(t *testing.T) {
		arrival := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)

		assert.Equal(t, Nights(date(2026, 3, 1), date(2026, 3, 2)), NightsMin1(arrival, date(2026, 3, 2)))
		assert.Equal(t, 1, NightsMin1(arrival, date(2026, 3, 2)))
		assert.Equal(t, Nights(date(2026, 3, 1), date(2026, 3, 4)), NightsMin1(arrival, date(2026, 3, 4)))
	})
}

func TestRoomCharge(t *testing.T) {
	assert.Equal(t, float64(1500000), RoomCharge(500000, 3))
	assert.Equal(t, float64(0), RoomCharge(500000, 0))
}

func TestOvercapacitySurcharge(t *testing.T) {
	t.Run("dung suc chua khong phu thu", func(t *testing.T) {
		assert.Equal(t, float64(0), OvercapacitySurcharge(800000, 2, 2, 0.25, 3))
	})

	t.Run("it khach hon suc chua khong phu thu", func(t *testing.T) {
		assert.Equal(t, float64(0), OvercapacitySurcharge(800000, 1, 2, 0.25, 3))
	})

	t.Run("vuot mot khach", func(t *testing.T) {
		// 800000 * 0.25 * 1 khach * 2 dem
		assert.Equal(t, float64(400000), OvercapacitySurcharge(800000, 3, 2, 0.25, 2))
	})

	t.Run("vuot hai khach", func(t *testing.T) {
		assert.Equal(t, float64(800000), OvercapacitySurcharge(800000, 4, 2, 0.25, 2))
	})
}

func TestForeignSurcharge(t *testing.T) {
	t.Run("khach noi dia", func(t *testing.T) {
		assert.Equal(t, float64(0), ForeignSurcharge(1000000, false, 1.5))
	})

	t.Run("co khach nuoc ngoai", func(t *testing.T) {
		assert.Equal(t, float64(500000), ForeignSurcharge(1000000, true, 1.5))
	})
}

func TestDeposit(t *testing.T) {
	assert.Equal(t, float64(300000), Deposit(1000000, 30))
	assert.Equal(t, float64(0), Deposit(1000000, 0))
}

func TestCalculateStayPrice(t *testing.T) {
	t.Run("khach noi dia khong phu thu", func(t *testing.T) {
		got := CalculateStayPrice(800000, 3, 2, 2, 0.25, 1.5, false)

		assert.Equal(t, 3, got.Nights)
		assert.Equal(t, float64(2400000), got.RoomCharge)
		assert.Equal(t, float64(0), got.OvercapacitySurcharge)
		assert.Equal(t, float64(0), got.ForeignSurcharge)
		assert.Equal(t, float64(2400000), got.Total)
	})

	t.Run("vuot suc chua", func(t *testing.T) {
		got := CalculateStayPrice(800000, 3, 3, 2, 0.25, 1.5, false)

		// 2400000 tien phong + 800000*0.25*1*3 = 600000 phu thu
		assert.Equal(t, float64(600000), got.OvercapacitySurcharge)
		assert.Equal(t, float64(3000000), got.Total)
	})

	t.Run("co khach nuoc ngoai nhan he so tren ca phu thu", func(t *testing.T) {
		got := CalculateStayPrice(800000, 3, 3, 2, 0.25, 1.5, true)

		// (2400000 + 600000) * 0.5 = 1500000 phu thu nuoc ngoai
		assert.Equal(t, float64(1500000), got.ForeignSurcharge)
		assert.Equal(t, float64(4500000), got.Total)
	})

	t.Run("tien coc tu tong da chot", func(t *testing.T) {
		got := CalculateStayPrice(800000, 3, 2, 2, 0.25, 1.5, false)
		assert.Equal(t, float64(720000), Deposit(got.Total, 30))
	})
}
