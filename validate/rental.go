package validate

import (
	"fmt"
	"time"

	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CheckInBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CheckInBookingInput
		// Body rỗng vẫn hợp lệ: cọc sẽ lấy từ phiếu đặt hoặc quy định
		if len(c.Body()) > 0 {
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
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func WalkInCheckIn() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.WalkInCheckInInput
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

		checkOut, err := utils.ParseDate(input.CheckOutDate)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày trả phòng không hợp lệ (YYYY-MM-DD)", err, "checkOutDate")
		}
		today := utils.StartOfDay(time.Now())
		if checkOut.Before(today) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày trả phòng không được ở quá khứ", nil, "checkOutDate")
		}

		c.Locals("input", input)
		c.Locals("checkOutDate", checkOut)
		return c.Next()
	}
}

func WalkInPrice() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.WalkInPriceInput
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

		checkOut, err := utils.ParseDate(input.CheckOutDate)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày trả phòng không hợp lệ (YYYY-MM-DD)", err, "checkOutDate")
		}

		c.Locals("input", input)
		c.Locals("checkOutDate", checkOut)
		return c.Next()
	}
}

func ExtendRental() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ExtendRentalInput
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

		newEnd, err := utils.ParseDate(input.NewEndDate)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày trả mới không hợp lệ (YYYY-MM-DD)", err, "newEndDate")
		}

		c.Locals("newEndDate", newEnd)
		return c.Next()
	}
}

func AddServiceUsage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AddServiceUsageInput
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

		c.Locals("input", input)
		return c.Next()
	}
}
