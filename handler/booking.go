package handler

import (
	"encoding/base64"
	"errors"
	"log"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// SearchAvailableRooms màn đặt phòng công khai: liệt kê phòng trống theo
// khoảng ngày, gom nhóm theo loại phòng
func SearchAvailableRooms(c *fiber.Ctx) error {
	db := database.DB

	checkIn := c.Locals("checkInDate").(time.Time)
	checkOut := c.Locals("checkOutDate").(time.Time)
	numGuests := c.Locals("numGuests").(int)

	result, err := helper.SearchAvailableRooms(db, checkIn, checkOut, numGuests)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"checkInDate":  utils.FormatDate(checkIn),
		"checkOutDate": utils.FormatDate(checkOut),
		"numGuests":    numGuests,
		"roomTypes":    result,
	})
}

// CreateBooking đặt phòng trước. Khách nhận diện theo CMND/CCCD nên đặt
// nhiều lần không sinh bản ghi khách trùng. Tiền cọc ở bước này mới là
// ước tính, chốt thật khi nhận phòng.
func CreateBooking(c *fiber.Ctx) error {
	db := database.DB

	bookingInput, ok := c.Locals("input").(model.CreateBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, errors.New("parse data to locals fail"))
	}
	checkIn := c.Locals("checkInDate").(time.Time)
	checkOut := c.Locals("checkOutDate").(time.Time)

	var room model.Room
	if err := db.Preload("RoomType").First(&room, bookingInput.RoomId).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, "Phòng không tồn tại", err, "roomId")
	}
	if room.Status == model.RoomMaintenance {
		return utils.ErrorResponseHaveKey(c, fiber.StatusUnprocessableEntity, "Phòng đang bảo trì, không nhận đặt", nil, "roomId")
	}

	numGuests := bookingInput.NumGuests
	if numGuests < 1 {
		numGuests = 1
	}
	if numGuests > room.RoomType.MaxGuests {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Số khách vượt sức chứa tối đa của loại phòng", nil, "numGuests")
	}

	available, err := helper.IsRoomAvailable(db, room.ID, checkIn, checkOut, 0, 0)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if !available {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Phòng đã có khách đặt trong khoảng thời gian này", nil)
	}

	customer, appErr := helper.FindOrMergeCustomer(db, bookingInput.Customer)
	if appErr != nil {
		return utils.AppErrorResponse(c, appErr)
	}

	// Ước tính giá và cọc để hiển thị, chưa phải giá chốt
	settings := helper.LoadSettings(db)
	nights := helper.Nights(checkIn, checkOut)
	breakdown := helper.CalculateStayPrice(
		room.RoomType.BasePrice,
		nights,
		numGuests,
		helper.StandardCapacityFor(room.RoomType, settings),
		helper.SurchargeRatioFor(room.RoomType, settings),
		settings.ForeignCoefficient,
		customer.Type == model.CustomerForeign,
	)
	depositEstimate := helper.Deposit(breakdown.Total, settings.DepositPercentage)

	var createdBy *uint
	if accountInfo, _, _, _ := helper.GetInfoAccountFromToken(c); accountInfo.StaffId > 0 {
		createdBy = utils.Ptr(accountInfo.StaffId)
	}

	booking := model.Booking{
		PublicCode:   helper.NewPublicCode("BK"),
		CustomerId:   customer.ID,
		RoomId:       &room.ID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		NumGuests:    numGuests,
		Status:       model.BookingPending,
		CreatedBy:    createdBy,
	}
	if err := db.Create(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	// QR chứa mã đặt phòng, lễ tân quét khi khách đến
	qrBytes, err := utils.GenerateQRCode(booking.PublicCode, 400)
	qrBase64 := ""
	if err != nil {
		log.Println("Lỗi tạo QR:", err)
	} else {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	if customer.Email != nil && *customer.Email != "" {
		utils.SendBookingConfirmationEmail(*customer.Email, utils.BookingConfirmationData{
			BookingCode:   booking.PublicCode,
			CustomerName:  customer.FullName,
			RoomNumber:    room.RoomNumber,
			RoomTypeName:  room.RoomType.Name,
			CheckInDate:   utils.FormatDate(checkIn),
			CheckOutDate:  utils.FormatDate(checkOut),
			Nights:        nights,
			TotalAmount:   breakdown.Total,
			DepositAmount: depositEstimate,
			DetailLink:    "/booking/" + booking.PublicCode,
		})
	}

	booking.Customer = *customer
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"booking":         booking,
		"priceEstimate":   breakdown,
		"depositEstimate": depositEstimate,
		"qrCode":          qrBase64,
	})
}

// GetBookingByCode tra cứu công khai theo mã BK-XXXXXX
func GetBookingByCode(c *fiber.Ctx) error {
	db := database.DB

	code := c.Params("code")
	var booking model.Booking
	if err := db.Preload("Customer").Preload("Room").Preload("Room.RoomType").
		Where("public_code = ?", code).First(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy phiếu đặt phòng", err)
	}

	qrBytes, err := utils.GenerateQRCode(booking.PublicCode, 400)
	qrBase64 := ""
	if err == nil {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"booking": booking,
		"qrCode":  qrBase64,
	})
}

func GetBookings(c *fiber.Ctx) error {
	db := database.DB

	filterInput := new(model.FilterBooking)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	condition := db.Model(&model.Booking{})
	if filterInput.Status != nil {
		condition = condition.Where("status = ?", filterInput.Status)
	}
	if filterInput.RoomId != nil {
		condition = condition.Where("room_id = ?", filterInput.RoomId)
	}
	if filterInput.CustomerId != nil {
		condition = condition.Where("customer_id = ?", filterInput.CustomerId)
	}
	if filterInput.SearchKey != "" {
		condition = condition.Where("public_code ILIKE ?", "%"+filterInput.SearchKey+"%")
	}
	if filterInput.FromDate != nil {
		if fromDate, err := utils.ParseDate(*filterInput.FromDate); err == nil {
			condition = condition.Where("check_in_date >= ?", fromDate)
		}
	}
	if filterInput.ToDate != nil {
		if toDate, err := utils.ParseDate(*filterInput.ToDate); err == nil {
			condition = condition.Where("check_in_date <= ?", utils.EndOfDay(toDate))
		}
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var bookings model.Bookings
	condition.Preload("Customer").Preload("Room").Preload("Room.RoomType").
		Order("check_in_date ASC").Find(&bookings)

	response := &model.ResponseCustom{
		Rows:       bookings,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// ConfirmBooking lễ tân xác nhận phiếu đặt (ví dụ sau khi khách chuyển cọc)
func ConfirmBooking(c *fiber.Ctx) error {
	db := database.DB

	bookingId := c.Locals("inputId").(int)
	var booking model.Booking
	if err := db.First(&booking, bookingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy phiếu đặt phòng", err)
	}
	if booking.Status != model.BookingPending {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Chỉ xác nhận được phiếu đặt đang chờ", nil)
	}

	type ConfirmInput struct {
		DepositAmount *float64 `json:"depositAmount"`
	}
	var input ConfirmInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
	}

	updates := map[string]interface{}{"status": model.BookingConfirmed}
	if input.DepositAmount != nil && *input.DepositAmount >= 0 {
		updates["deposit_amount"] = *input.DepositAmount
	}
	if err := db.Model(&booking).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func cancelBooking(c *fiber.Ctx, booking *model.Booking) error {
	switch booking.Status {
	case model.BookingCheckedIn:
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Phiếu đặt đã nhận phòng, hãy dùng chức năng trả phòng", nil)
	case model.BookingCancelled:
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Phiếu đặt đã bị hủy trước đó", nil)
	}

	now := time.Now()
	if err := database.DB.Model(booking).
		Updates(map[string]interface{}{"status": model.BookingCancelled, "cancelled_at": now}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

// CancelBooking hủy phiếu đặt chưa nhận phòng, phòng tự trống lại cho
// khoảng ngày đó vì kiểm tra trùng chỉ đếm pending/confirmed
func CancelBooking(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(int)
	var booking model.Booking
	if err := database.DB.First(&booking, bookingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy phiếu đặt phòng", err)
	}
	return cancelBooking(c, &booking)
}

// CancelBookingByCode khách tự hủy qua mã đặt phòng công khai
func CancelBookingByCode(c *fiber.Ctx) error {
	code := c.Params("code")
	var booking model.Booking
	if err := database.DB.Where("public_code = ?", code).First(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy phiếu đặt phòng", err)
	}
	return cancelBooking(c, &booking)
}
