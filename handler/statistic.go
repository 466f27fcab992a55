package handler

import (
	"errors"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardStats tổng quan vận hành: tình trạng phòng, doanh thu hôm
// nay so với hôm qua, phiếu đặt sắp đến
func GetDashboardStats(c *fiber.Ctx) error {
	_, isAdmin, isManager, isReceptionist := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager && !isReceptionist {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB

	type Stats struct {
		TotalRooms       int64 `json:"totalRooms"`
		AvailableRooms   int64 `json:"availableRooms"`
		OccupiedRooms    int64 `json:"occupiedRooms"`
		CleaningRooms    int64 `json:"cleaningRooms"`
		MaintenanceRooms int64 `json:"maintenanceRooms"`

		ActiveRentals    int64 `json:"activeRentals"`
		PendingBookings  int64 `json:"pendingBookings"`
		ArrivalsToday    int64 `json:"arrivalsToday"`
		DeparturesToday  int64 `json:"departuresToday"`

		TodayRevenue  float64 `json:"todayRevenue"`
		RevenueGrowth float64 `json:"revenueGrowth"` // %
	}

	var stats Stats
	today := time.Now().In(time.Local)
	todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	todayEnd := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, today.Location())

	db.Model(&model.Room{}).Count(&stats.TotalRooms)
	db.Model(&model.Room{}).Where("status = ?", model.RoomAvailable).Count(&stats.AvailableRooms)
	db.Model(&model.Room{}).Where("status = ?", model.RoomOccupied).Count(&stats.OccupiedRooms)
	db.Model(&model.Room{}).Where("status = ?", model.RoomCleaning).Count(&stats.CleaningRooms)
	db.Model(&model.Room{}).Where("status = ?", model.RoomMaintenance).Count(&stats.MaintenanceRooms)

	db.Model(&model.Rental{}).Where("status = ?", model.RentalActive).Count(&stats.ActiveRentals)
	db.Model(&model.Booking{}).
		Where("status IN ?", []string{model.BookingPending, model.BookingConfirmed}).
		Count(&stats.PendingBookings)
	db.Model(&model.Booking{}).
		Where("status IN ? AND check_in_date BETWEEN ? AND ?",
			[]string{model.BookingPending, model.BookingConfirmed}, todayStart, todayEnd).
		Count(&stats.ArrivalsToday)
	db.Model(&model.Rental{}).
		Where("status = ? AND end_date BETWEEN ? AND ?", model.RentalActive, todayStart, todayEnd).
		Count(&stats.DeparturesToday)

	// Doanh thu = tiền phòng + dịch vụ của các phiếu trả trong ngày
	db.Raw(`
        SELECT COALESCE(SUM(r.price_at_rental + COALESCE(s.service_total, 0)), 0)
        FROM rentals r
        LEFT JOIN (
            SELECT rental_id, SUM(total_price) AS service_total
            FROM service_usages
            GROUP BY rental_id
        ) s ON s.rental_id = r.id
        WHERE r.status = 'closed'
          AND r.checked_out_at BETWEEN ? AND ?
    `, todayStart, todayEnd).Scan(&stats.TodayRevenue)

	yesterdayStart := todayStart.AddDate(0, 0, -1)
	yesterdayEnd := todayEnd.AddDate(0, 0, -1)

	var yesterdayRevenue float64
	db.Raw(`
        SELECT COALESCE(SUM(r.price_at_rental + COALESCE(s.service_total, 0)), 0)
        FROM rentals r
        LEFT JOIN (
            SELECT rental_id, SUM(total_price) AS service_total
            FROM service_usages
            GROUP BY rental_id
        ) s ON s.rental_id = r.id
        WHERE r.status = 'closed'
          AND r.checked_out_at BETWEEN ? AND ?
    `, yesterdayStart, yesterdayEnd).Scan(&yesterdayRevenue)

	stats.RevenueGrowth = utils.CalculateGrowth(stats.TodayRevenue, yesterdayRevenue)

	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}
