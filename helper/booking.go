package helper

import (
	"log"
	"time"

	"hotel_manager/database"
	"hotel_manager/model"

	"github.com/robfig/cron/v3"
)

var bookingSweeper *cron.Cron

// StartBookingSweeper quét phiếu đặt quá hạn nhận phòng (no-show) mỗi 10 phút
func StartBookingSweeper() {
	bookingSweeper = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := bookingSweeper.AddFunc("*/10 * * * *", cancelNoShowBookings)
	if err != nil {
		log.Printf("Lỗi khởi tạo scheduler: %v", err)
		return
	}

	bookingSweeper.Start()
	log.Println("Scheduler quét phiếu đặt no-show đã khởi động (mỗi 10 phút)")
}

// Phiếu đặt pending/confirmed mà đã qua ngày nhận phòng 1 ngày thì hủy
func cancelNoShowBookings() {
	cutoff := time.Now().AddDate(0, 0, -1)
	now := time.Now()
	result := database.DB.Model(&model.Booking{}).
		Where("status IN ? AND check_in_date < ?", []string{model.BookingPending, model.BookingConfirmed}, cutoff).
		Updates(map[string]interface{}{"status": model.BookingCancelled, "cancelled_at": now})

	if result.Error != nil {
		log.Printf("Lỗi hủy phiếu đặt no-show: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Đã hủy %d phiếu đặt no-show", result.RowsAffected)
	}
}

// Dừng scheduler khi tắt server
func StopBookingSweeper() {
	if bookingSweeper != nil {
		bookingSweeper.Stop()
	}
}
