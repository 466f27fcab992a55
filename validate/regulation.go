package validate

import (
	"fmt"

	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func UpdateRegulation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Params("key")
		if key == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Thiếu khóa quy định", nil, "key")
		}

		var input model.UpdateRegulationInput
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
		if input.Value < 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Giá trị quy định không được âm", nil, "value")
		}

		c.Locals("regulationKey", key)
		c.Locals("input", input)
		return c.Next()
	}
}
