package validate

import (
	"fmt"
	"time"

	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Không thể phân tích yêu cầu: %s", err.Error()),
			})
		}

		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		checkIn, err := utils.ParseDate(input.CheckInDate)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày nhận phòng không hợp lệ (YYYY-MM-DD)", err, "checkInDate")
		}
		checkOut, err := utils.ParseDate(input.CheckOutDate)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày trả phòng không hợp lệ (YYYY-MM-DD)", err, "checkOutDate")
		}
		if !checkOut.After(checkIn) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày trả phòng phải sau ngày nhận phòng", nil, "checkOutDate")
		}
		today := utils.StartOfDay(time.Now())
		if checkIn.Before(today) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày nhận phòng không được ở quá khứ", nil, "checkInDate")
		}

		c.Locals("input", input)
		c.Locals("checkInDate", checkIn)
		c.Locals("checkOutDate", checkOut)
		return c.Next()
	}
}

func SearchAvailableRooms() fiber.Handler {
	return func(c *fiber.Ctx) error {
		checkInStr := c.Query("checkIn")
		checkOutStr := c.Query("checkOut")

		checkIn, err := utils.ParseDate(checkInStr)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày nhận phòng không hợp lệ (YYYY-MM-DD)", err, "checkIn")
		}
		checkOut, err := utils.ParseDate(checkOutStr)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày trả phòng không hợp lệ (YYYY-MM-DD)", err, "checkOut")
		}
		if !checkOut.After(checkIn) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày trả phòng phải sau ngày nhận phòng", nil, "checkOut")
		}

		numGuests := c.QueryInt("guests", 0)
		if numGuests < 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Số khách không hợp lệ", nil, "guests")
		}

		c.Locals("checkInDate", checkIn)
		c.Locals("checkOutDate", checkOut)
		c.Locals("numGuests", numGuests)
		return c.Next()
	}
}
