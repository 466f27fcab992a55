package helper

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func NewPublicCode(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.New().String()[:8])
}

// CheckInFromBooking nhận phòng từ phiếu đặt có sẵn. Toàn bộ các bước
// (tạo rental, tạo khách thuê, đổi trạng thái phòng, cập nhật booking)
// nằm trong một transaction, hàng phòng bị khóa FOR UPDATE trước khi ghi.
func CheckInFromBooking(db *gorm.DB, bookingId uint, staffId uint, depositOverride *float64) (*model.Rental, float64, *utils.AppError) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, 0, utils.NewAppError(utils.KindStore, "Không thể mở transaction", tx.Error)
	}

	var booking model.Booking
	if err := tx.First(&booking, bookingId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, utils.NewAppError(utils.KindNotFound, "Không tìm thấy phiếu đặt phòng", err)
		}
		return nil, 0, utils.NewAppError(utils.KindStore, "Lỗi truy vấn phiếu đặt phòng", err)
	}

	switch booking.Status {
	case model.BookingCheckedIn:
		tx.Rollback()
		return nil, 0, utils.NewAppError(utils.KindInvalidState, "Phiếu đặt phòng đã nhận phòng trước đó", nil)
	case model.BookingCancelled:
		tx.Rollback()
		return nil, 0, utils.NewAppError(utils.KindInvalidState, "Phiếu đặt phòng đã bị hủy", nil)
	case model.BookingPending, model.BookingConfirmed:
		// hợp lệ
	default:
		tx.Rollback()
		return nil, 0, utils.NewAppError(utils.KindInvalidState, "Trạng thái phiếu đặt không cho phép nhận phòng", fmt.Errorf("status %q", booking.Status))
	}

	if booking.RoomId == nil || *booking.RoomId == 0 {
		tx.Rollback()
		return nil, 0, utils.NewAppError(utils.KindInvalidState, "Phiếu đặt chưa được gán phòng", nil)
	}

	var room model.Room
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, *booking.RoomId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, utils.NewAppError(utils.KindNotFound, "Không tìm thấy phòng của phiếu đặt", err)
		}
		return nil, 0, utils.NewAppError(utils.KindStore, "Lỗi truy vấn phòng", err)
	}

	var roomType model.RoomType
	if err := tx.First(&roomType, room.RoomTypeId).Error; err != nil {
		tx.Rollback()
		return nil, 0, utils.NewAppError(utils.KindStore, "Lỗi truy vấn loại phòng", err)
	}

	var customer model.Customer
	if err := tx.First(&customer, booking.CustomerId).Error; err != nil {
		tx.Rollback()
		return nil, 0, utils.NewAppError(utils.KindStore, "Lỗi truy vấn khách hàng", err)
	}

	nights := Nights(booking.CheckInDate, booking.CheckOutDate)
	if nights < 1 {
		tx.Rollback()
		return nil, 0, utils.NewAppError(utils.KindValidation, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	settings := LoadSettings(tx)
	numGuests := booking.NumGuests
	if numGuests < 1 {
		numGuests = 1
	}
	anyForeign := customer.Type == model.CustomerForeign

	breakdown := CalculateStayPrice(
		roomType.BasePrice,
		nights,
		numGuests,
		StandardCapacityFor(roomType, settings),
		SurchargeRatioFor(roomType, settings),
		settings.ForeignCoefficient,
		anyForeign,
	)

	// Cọc đã có trên phiếu đặt không bị tính lại, chỉ dẫn xuất khi còn trống
	deposit := booking.DepositAmount
	if depositOverride != nil {
		deposit = *depositOverride
	} else if deposit <= 0 {
		deposit = Deposit(breakdown.Total, settings.DepositPercentage)
	}

	now := time.Now()
	rental := model.Rental{
		PublicCode:        NewPublicCode("RT"),
		BookingId:         &booking.ID,
		RoomId:            room.ID,
		StartDate:         now,
		EndDate:           booking.CheckOutDate,
		Status:            model.RentalActive,
		PriceAtRental:     breakdown.Total,
		BasePriceAtRental: roomType.BasePrice,
		NumGuests:         numGuests,
		StaffId:           staffId,
	}
	if err := tx.Create(&rental).Error; err != nil {
		tx.Rollback()
		return nil, 0, utils.NewAppError(utils.KindStore, "Không thể tạo phiếu thuê phòng", err)
	}

	guest := model.RentalGuest{
		RentalId:   rental.ID,
		CustomerId: customer.ID,
		IsPrimary:  true,
	}
	if err := tx.Create(&guest).Error; err != nil {
		tx.Rollback()
		return nil, 0, utils.NewAppError(utils.KindStore, "Không thể ghi nhận khách thuê phòng", err)
	}

	if err := tx.Model(&model.Room{}).Where("id = ?", room.ID).Update("status", model.RoomOccupied).Error; err != nil {
		tx.Rollback()
		return nil, 0, utils.NewAppError(utils.KindStore, "Không thể cập nhật trạng thái phòng", err)
	}

	if err := tx.Model(&model.Booking{}).Where("id = ?", booking.ID).
		Updates(map[string]interface{}{"status": model.BookingCheckedIn, "deposit_amount": deposit}).Error; err != nil {
		tx.Rollback()
		return nil, 0, utils.NewAppError(utils.KindStore, "Không thể cập nhật phiếu đặt phòng", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, 0, utils.NewAppError(utils.KindStore, "Không thể hoàn tất nhận phòng", err)
	}

	rental.Guests = []model.RentalGuest{guest}
	return &rental, deposit, nil
}

// CheckInWalkIn nhận phòng cho khách vãng lai, không qua phiếu đặt.
// Khách đầu tiên trong danh sách là khách chính.
func CheckInWalkIn(db *gorm.DB, input model.WalkInCheckInInput, checkOutDate time.Time, staffId uint) (*model.Rental, *utils.AppError) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, utils.NewAppError(utils.KindStore, "Không thể mở transaction", tx.Error)
	}

	var room model.Room
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, input.RoomId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewAppError(utils.KindNotFound, "Không tìm thấy phòng", err)
		}
		return nil, utils.NewAppError(utils.KindStore, "Lỗi truy vấn phòng", err)
	}
	if room.Status != model.RoomAvailable {
		tx.Rollback()
		return nil, utils.NewAppError(utils.KindInvalidState, "Phòng không sẵn sàng để nhận khách", fmt.Errorf("room status %q", room.Status))
	}

	var roomType model.RoomType
	if err := tx.First(&roomType, room.RoomTypeId).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewAppError(utils.KindStore, "Lỗi truy vấn loại phòng", err)
	}

	var customers []model.Customer
	if err := tx.Where("id IN ?", input.CustomerIds).Find(&customers).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewAppError(utils.KindStore, "Lỗi truy vấn khách hàng", err)
	}
	if len(customers) != len(input.CustomerIds) {
		tx.Rollback()
		return nil, utils.NewAppError(utils.KindNotFound, "Một số khách hàng không tồn tại", nil)
	}

	now := time.Now()
	available, err := IsRoomAvailable(tx, room.ID, now, checkOutDate, 0, 0)
	if err != nil {
		tx.Rollback()
		return nil, utils.NewAppError(utils.KindStore, "Lỗi kiểm tra phòng trống", err)
	}
	if !available {
		tx.Rollback()
		return nil, utils.NewAppError(utils.KindConflict, "Phòng đã có phiếu đặt trong khoảng thời gian này", nil)
	}

	settings := LoadSettings(tx)
	nights := NightsMin1(now, checkOutDate)
	numGuests := input.NumGuests
	if numGuests < 1 {
		numGuests = len(input.CustomerIds)
	}
	anyForeign := false
	for _, customer := range customers {
		if customer.Type == model.CustomerForeign {
			anyForeign = true
			break
		}
	}

	breakdown := CalculateStayPrice(
		roomType.BasePrice,
		nights,
		numGuests,
		StandardCapacityFor(roomType, settings),
		SurchargeRatioFor(roomType, settings),
		settings.ForeignCoefficient,
		anyForeign,
	)

	rental := model.Rental{
		PublicCode:        NewPublicCode("RT"),
		RoomId:            room.ID,
		StartDate:         now,
		EndDate:           checkOutDate,
		Status:            model.RentalActive,
		PriceAtRental:     breakdown.Total,
		BasePriceAtRental: roomType.BasePrice,
		NumGuests:         numGuests,
		StaffId:           staffId,
	}
	if err := tx.Create(&rental).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewAppError(utils.KindStore, "Không thể tạo phiếu thuê phòng", err)
	}

	guests := make([]model.RentalGuest, 0, len(input.CustomerIds))
	for i, customerId := range input.CustomerIds {
		guests = append(guests, model.RentalGuest{
			RentalId:   rental.ID,
			CustomerId: customerId,
			IsPrimary:  i == 0,
		})
	}
	if err := tx.Create(&guests).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewAppError(utils.KindStore, "Không thể ghi nhận khách thuê phòng", err)
	}

	// Cập nhật có điều kiện: phòng phải còn available ngay tại thời điểm ghi
	result := tx.Model(&model.Room{}).
		Where("id = ? AND status = ?", room.ID, model.RoomAvailable).
		Update("status", model.RoomOccupied)
	if result.Error != nil {
		tx.Rollback()
		return nil, utils.NewAppError(utils.KindStore, "Không thể cập nhật trạng thái phòng", result.Error)
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, utils.NewAppError(utils.KindConflict, "Phòng vừa được nhận bởi thao tác khác", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, utils.NewAppError(utils.KindStore, "Không thể hoàn tất nhận phòng", err)
	}

	rental.Guests = guests
	return &rental, nil
}

// WalkInPricePreview là bảng giá tham khảo, chưa phát sinh đặt cọc
type WalkInPricePreview struct {
	PriceBreakdown
	BasePrice         float64 `json:"basePrice"`
	NumGuests         int     `json:"numGuests"`
	DepositAmount     float64 `json:"depositAmount"`
	DepositPercentage float64 `json:"depositPercentage"`
}

// CalculateWalkInPrice xem giá trước khi nhận phòng vãng lai, chỉ đọc.
// depositAmount/depositPercentage luôn bằng 0: xem giá không tạo cam kết cọc.
func CalculateWalkInPrice(db *gorm.DB, input model.WalkInPriceInput, checkOutDate time.Time) (*WalkInPricePreview, *utils.AppError) {
	var room model.Room
	if err := db.First(&room, input.RoomId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewAppError(utils.KindNotFound, "Không tìm thấy phòng", err)
		}
		return nil, utils.NewAppError(utils.KindStore, "Lỗi truy vấn phòng", err)
	}

	var roomType model.RoomType
	if err := db.First(&roomType, room.RoomTypeId).Error; err != nil {
		return nil, utils.NewAppError(utils.KindStore, "Lỗi truy vấn loại phòng", err)
	}

	anyForeign := false
	numGuests := input.NumGuests
	if len(input.CustomerIds) > 0 {
		var customers []model.Customer
		if err := db.Where("id IN ?", input.CustomerIds).Find(&customers).Error; err != nil {
			return nil, utils.NewAppError(utils.KindStore, "Lỗi truy vấn khách hàng", err)
		}
		for _, customer := range customers {
			if customer.Type == model.CustomerForeign {
				anyForeign = true
				break
			}
		}
		if numGuests < 1 {
			numGuests = len(input.CustomerIds)
		}
	}
	if numGuests < 1 {
		numGuests = 1
	}

	settings := LoadSettings(db)
	nights := NightsMin1(time.Now(), checkOutDate)

	breakdown := CalculateStayPrice(
		roomType.BasePrice,
		nights,
		numGuests,
		StandardCapacityFor(roomType, settings),
		SurchargeRatioFor(roomType, settings),
		settings.ForeignCoefficient,
		anyForeign,
	)

	return &WalkInPricePreview{
		PriceBreakdown:    breakdown,
		BasePrice:         roomType.BasePrice,
		NumGuests:         numGuests,
		DepositAmount:     0,
		DepositPercentage: 0,
	}, nil
}

// ActiveRentals liệt kê phiếu thuê đang hoạt động kèm phòng, loại phòng và
// khách thuê, dùng cho màn trả phòng và dashboard
func ActiveRentals(db *gorm.DB) ([]model.Rental, *utils.AppError) {
	var rentals []model.Rental
	if err := db.
		Preload("Room").
		Preload("Room.RoomType").
		Preload("Guests").
		Preload("Guests.Customer").
		Preload("Booking").
		Where("status = ?", model.RentalActive).
		Order("start_date desc").
		Find(&rentals).Error; err != nil {
		return nil, utils.NewAppError(utils.KindStore, "Lỗi tải danh sách phiếu thuê", err)
	}
	return rentals, nil
}

// ExtendRental gia hạn phiếu thuê đang hoạt động. Kiểm tra lại phòng trống
// cho khoảng [ngày trả cũ, ngày trả mới), bỏ qua chính phiếu đặt/phiếu thuê
// hiện tại. Tiền phòng tính lại theo giá đã chốt lúc nhận phòng.
func ExtendRental(db *gorm.DB, rentalId uint, newEndDate time.Time) (*model.Rental, *utils.AppError) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, utils.NewAppError(utils.KindStore, "Không thể mở transaction", tx.Error)
	}

	var rental model.Rental
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&rental, rentalId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewAppError(utils.KindNotFound, "Không tìm thấy phiếu thuê phòng", err)
		}
		return nil, utils.NewAppError(utils.KindStore, "Lỗi truy vấn phiếu thuê", err)
	}
	if rental.Status != model.RentalActive {
		tx.Rollback()
		return nil, utils.NewAppError(utils.KindInvalidState, "Chỉ gia hạn được phiếu thuê đang hoạt động", fmt.Errorf("rental status %q", rental.Status))
	}
	if !newEndDate.After(rental.EndDate) {
		tx.Rollback()
		return nil, utils.NewAppError(utils.KindValidation, "Ngày trả mới phải sau ngày trả hiện tại", nil)
	}

	excludeBookingId := uint(0)
	if rental.BookingId != nil {
		excludeBookingId = *rental.BookingId
	}
	available, err := IsRoomAvailable(tx, rental.RoomId, rental.EndDate, newEndDate, excludeBookingId, rental.ID)
	if err != nil {
		tx.Rollback()
		return nil, utils.NewAppError(utils.KindStore, "Lỗi kiểm tra phòng trống", err)
	}
	if !available {
		tx.Rollback()
		return nil, utils.NewAppError(utils.KindConflict, "Phòng đã có khách đặt trong khoảng gia hạn", nil)
	}

	var room model.Room
	if err := tx.First(&room, rental.RoomId).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewAppError(utils.KindStore, "Lỗi truy vấn phòng", err)
	}
	var roomType model.RoomType
	if err := tx.First(&roomType, room.RoomTypeId).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewAppError(utils.KindStore, "Lỗi truy vấn loại phòng", err)
	}

	var foreignCount int64
	if err := tx.Model(&model.RentalGuest{}).
		Joins("JOIN customers ON customers.id = rental_guests.customer_id").
		Where("rental_guests.rental_id = ? AND customers.type = ?", rental.ID, model.CustomerForeign).
		Count(&foreignCount).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewAppError(utils.KindStore, "Lỗi truy vấn khách thuê", err)
	}

	settings := LoadSettings(tx)
	nights := NightsMin1(rental.StartDate, newEndDate)
	breakdown := CalculateStayPrice(
		rental.BasePriceAtRental,
		nights,
		rental.NumGuests,
		StandardCapacityFor(roomType, settings),
		SurchargeRatioFor(roomType, settings),
		settings.ForeignCoefficient,
		foreignCount > 0,
	)

	if err := tx.Model(&model.Rental{}).Where("id = ?", rental.ID).
		Updates(map[string]interface{}{"end_date": newEndDate, "price_at_rental": breakdown.Total}).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewAppError(utils.KindStore, "Không thể gia hạn phiếu thuê", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, utils.NewAppError(utils.KindStore, "Không thể hoàn tất gia hạn", err)
	}

	rental.EndDate = newEndDate
	rental.PriceAtRental = breakdown.Total
	return &rental, nil
}

// CheckoutInvoice là hóa đơn trả phòng
type CheckoutInvoice struct {
	RentalId      uint      `json:"rentalId"`
	PublicCode    string    `json:"publicCode"`
	RoomCharge    float64   `json:"roomCharge"` // giá chốt cả kỳ, gồm phụ thu
	ServiceTotal  float64   `json:"serviceTotal"`
	DepositAmount float64   `json:"depositAmount"`
	Total         float64   `json:"total"`
	AmountDue     float64   `json:"amountDue"`
	CheckedOutAt  time.Time `json:"checkedOutAt"`
}

// CheckoutRental trả phòng: chốt hóa đơn gồm tiền phòng đã khóa giá cộng
// dịch vụ đã dùng trừ tiền cọc; phiếu thuê đóng lại, phòng chuyển sang dọn dẹp
func CheckoutRental(db *gorm.DB, rentalId uint, staffId uint) (*CheckoutInvoice, *utils.AppError) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, utils.NewAppError(utils.KindStore, "Không thể mở transaction", tx.Error)
	}

	var rental model.Rental
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&rental, rentalId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewAppError(utils.KindNotFound, "Không tìm thấy phiếu thuê phòng", err)
		}
		return nil, utils.NewAppError(utils.KindStore, "Lỗi truy vấn phiếu thuê", err)
	}
	if rental.Status != model.RentalActive {
		tx.Rollback()
		return nil, utils.NewAppError(utils.KindInvalidState, "Phiếu thuê đã được trả phòng", fmt.Errorf("rental status %q", rental.Status))
	}

	var serviceTotal float64
	if err := tx.Model(&model.ServiceUsage{}).
		Where("rental_id = ?", rental.ID).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&serviceTotal).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewAppError(utils.KindStore, "Lỗi tổng hợp dịch vụ đã dùng", err)
	}

	deposit := float64(0)
	if rental.BookingId != nil {
		var booking model.Booking
		if err := tx.First(&booking, *rental.BookingId).Error; err != nil {
			tx.Rollback()
			return nil, utils.NewAppError(utils.KindStore, "Lỗi truy vấn phiếu đặt phòng", err)
		}
		deposit = booking.DepositAmount
	}

	now := time.Now()
	if err := tx.Model(&model.Rental{}).Where("id = ?", rental.ID).
		Updates(map[string]interface{}{"status": model.RentalClosed, "checked_out_at": now}).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewAppError(utils.KindStore, "Không thể đóng phiếu thuê", err)
	}

	if err := tx.Model(&model.Room{}).Where("id = ?", rental.RoomId).
		Update("status", model.RoomCleaning).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewAppError(utils.KindStore, "Không thể cập nhật trạng thái phòng", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, utils.NewAppError(utils.KindStore, "Không thể hoàn tất trả phòng", err)
	}

	total := rental.PriceAtRental + serviceTotal
	return &CheckoutInvoice{
		RentalId:      rental.ID,
		PublicCode:    rental.PublicCode,
		RoomCharge:    rental.PriceAtRental,
		ServiceTotal:  serviceTotal,
		DepositAmount: deposit,
		Total:         total,
		AmountDue:     total - deposit,
		CheckedOutAt:  now,
	}, nil
}
