package helper

import (
	"time"

	"hotel_manager/model"

	"gorm.io/gorm"
)

// RangesOverlap kiểm tra hai khoảng ngày chồng nhau theo biên bao gồm:
// existing.start <= proposed.end AND existing.end >= proposed.start.
// Trả phòng và nhận phòng cùng ngày vẫn tính là trùng.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// IsRoomAvailable kiểm tra phòng trống trong [checkIn, checkOut):
// không có booking pending/confirmed và không có rental active chồng lấn.
// excludeBookingId/excludeRentalId > 0 để bỏ qua chính phiếu đang gia hạn.
func IsRoomAvailable(db *gorm.DB, roomId uint, checkIn, checkOut time.Time, excludeBookingId, excludeRentalId uint) (bool, error) {
	var bookingCount int64
	query := db.Model(&model.Booking{}).
		Where("room_id = ? AND status IN ?", roomId, []string{model.BookingPending, model.BookingConfirmed}).
		Where("check_in_date <= ? AND check_out_date >= ?", checkOut, checkIn)
	if excludeBookingId > 0 {
		query = query.Where("id <> ?", excludeBookingId)
	}
	if err := query.Count(&bookingCount).Error; err != nil {
		return false, err
	}
	if bookingCount > 0 {
		return false, nil
	}

	var rentalCount int64
	query = db.Model(&model.Rental{}).
		Where("room_id = ? AND status = ?", roomId, model.RentalActive).
		Where("start_date <= ? AND end_date >= ?", checkOut, checkIn)
	if excludeRentalId > 0 {
		query = query.Where("id <> ?", excludeRentalId)
	}
	if err := query.Count(&rentalCount).Error; err != nil {
		return false, err
	}

	return rentalCount == 0, nil
}

// RoomTypeAvailability gom phòng trống theo loại phòng để hiển thị
type RoomTypeAvailability struct {
	RoomType       model.RoomType `json:"roomType"`
	AvailableCount int            `json:"availableCount"`
	Rooms          []model.Room   `json:"rooms"`
}

// SearchAvailableRooms liệt kê phòng trống trong khoảng ngày, lọc theo số
// khách nếu có, gom nhóm theo loại phòng
func SearchAvailableRooms(db *gorm.DB, checkIn, checkOut time.Time, numGuests int) ([]RoomTypeAvailability, error) {
	var rooms []model.Room
	query := db.Preload("RoomType").Where("status <> ?", model.RoomMaintenance)
	if err := query.Find(&rooms).Error; err != nil {
		return nil, err
	}

	grouped := map[uint]*RoomTypeAvailability{}
	order := []uint{}

	for _, room := range rooms {
		if numGuests > 0 && room.RoomType.MaxGuests < numGuests {
			continue
		}
		available, err := IsRoomAvailable(db, room.ID, checkIn, checkOut, 0, 0)
		if err != nil {
			return nil, err
		}
		if !available {
			continue
		}
		entry, ok := grouped[room.RoomTypeId]
		if !ok {
			entry = &RoomTypeAvailability{RoomType: room.RoomType}
			grouped[room.RoomTypeId] = entry
			order = append(order, room.RoomTypeId)
		}
		room.RoomType = model.RoomType{} // tránh lặp dữ liệu loại phòng trong từng phòng
		entry.Rooms = append(entry.Rooms, room)
		entry.AvailableCount++
	}

	result := make([]RoomTypeAvailability, 0, len(order))
	for _, roomTypeId := range order {
		result = append(result, *grouped[roomTypeId])
	}
	return result, nil
}
