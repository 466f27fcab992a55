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

func reloadRental(rentalId uint) (*model.Rental, error) {
	var rental model.Rental
	err := database.DB.
		Preload("Room").
		Preload("Room.RoomType").
		Preload("Guests").
		Preload("Guests.Customer").
		Preload("Booking").
		First(&rental, rentalId).Error
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

// CheckInBooking nhận phòng từ phiếu đặt: POST /bookings/:id/check-in
func CheckInBooking(c *fiber.Ctx) error {
	accountInfo, _, _, _ := helper.GetInfoAccountFromToken(c)

	bookingId := c.Locals("inputId").(int)
	checkInInput, ok := c.Locals("input").(model.CheckInBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, errors.New("parse data to locals fail"))
	}

	rental, deposit, appErr := helper.CheckInFromBooking(database.DB, uint(bookingId), accountInfo.StaffId, checkInInput.DepositAmount)
	if appErr != nil {
		return utils.AppErrorResponse(c, appErr)
	}

	full, err := reloadRental(rental.ID)
	if err == nil {
		rental = full
	}

	BroadcastRoomStatus(rental.RoomId, model.RoomOccupied)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"rental":        rental,
		"depositAmount": deposit,
	})
}

// WalkInCheckIn nhận phòng khách vãng lai, không qua phiếu đặt
func WalkInCheckIn(c *fiber.Ctx) error {
	accountInfo, _, _, _ := helper.GetInfoAccountFromToken(c)

	walkInInput, ok := c.Locals("input").(model.WalkInCheckInInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, errors.New("parse data to locals fail"))
	}
	checkOutDate := c.Locals("checkOutDate").(time.Time)

	rental, appErr := helper.CheckInWalkIn(database.DB, walkInInput, checkOutDate, accountInfo.StaffId)
	if appErr != nil {
		return utils.AppErrorResponse(c, appErr)
	}

	full, err := reloadRental(rental.ID)
	if err == nil {
		rental = full
	}

	BroadcastRoomStatus(rental.RoomId, model.RoomOccupied)
	return utils.SuccessResponse(c, fiber.StatusOK, rental)
}

// WalkInPrice xem giá trước khi nhận phòng vãng lai, không ghi gì
func WalkInPrice(c *fiber.Ctx) error {
	priceInput, ok := c.Locals("input").(model.WalkInPriceInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, errors.New("parse data to locals fail"))
	}
	checkOutDate := c.Locals("checkOutDate").(time.Time)

	preview, appErr := helper.CalculateWalkInPrice(database.DB, priceInput, checkOutDate)
	if appErr != nil {
		return utils.AppErrorResponse(c, appErr)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, preview)
}

func GetActiveRentals(c *fiber.Ctx) error {
	rentals, appErr := helper.ActiveRentals(database.DB)
	if appErr != nil {
		return utils.AppErrorResponse(c, appErr)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rentals)
}

func GetRentalById(c *fiber.Ctx) error {
	rentalId := c.Locals("inputId").(int)

	rental, err := reloadRental(uint(rentalId))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Phiếu thuê không tồn tại", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rental)
}

// ExtendRental gia hạn ngày trả của phiếu thuê đang hoạt động
func ExtendRental(c *fiber.Ctx) error {
	rentalId := c.Locals("inputId").(int)
	newEndDate := c.Locals("newEndDate").(time.Time)

	rental, appErr := helper.ExtendRental(database.DB, uint(rentalId), newEndDate)
	if appErr != nil {
		return utils.AppErrorResponse(c, appErr)
	}

	full, err := reloadRental(rental.ID)
	if err == nil {
		rental = full
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rental)
}

// CheckoutRental trả phòng và chốt hóa đơn
func CheckoutRental(c *fiber.Ctx) error {
	accountInfo, _, _, _ := helper.GetInfoAccountFromToken(c)

	rentalId := c.Locals("inputId").(int)
	invoice, appErr := helper.CheckoutRental(database.DB, uint(rentalId), accountInfo.StaffId)
	if appErr != nil {
		return utils.AppErrorResponse(c, appErr)
	}

	rental, err := reloadRental(invoice.RentalId)
	if err == nil {
		BroadcastRoomStatus(rental.RoomId, model.RoomCleaning)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"invoice": invoice,
		"rental":  rental,
	})
}
