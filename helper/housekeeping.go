package helper

import (
	"log"
	"time"

	"hotel_manager/database"
	"hotel_manager/model"

	"github.com/go-co-op/gocron/v2"
)

var housekeepingScheduler gocron.Scheduler

// Phòng đang dọn dẹp được trả về trạng thái sẵn sàng lúc 12:00 trưa hàng ngày
func resetCleaningRooms() {
	result := database.DB.Model(&model.Room{}).
		Where("status = ?", model.RoomCleaning).
		Update("status", model.RoomAvailable)

	if result.Error != nil {
		log.Printf("Lỗi cập nhật phòng dọn dẹp: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Đã chuyển %d phòng dọn dẹp sang sẵn sàng", result.RowsAffected)
	}
}

func StartHousekeepingScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("ICT", 7*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	housekeepingScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(12, 0, 0),
			),
		),
		gocron.NewTask(resetCleaningRooms),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("✅ Housekeeping scheduler started (12:00 ICT)")
}

func StopHousekeepingScheduler() {
	if housekeepingScheduler != nil {
		_ = housekeepingScheduler.Shutdown()
	}
}
