package handler

import (
	"errors"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetRegulations(c *fiber.Ctx) error {
	db := database.DB

	var regulations model.Regulations
	if err := db.Order("key ASC").Find(&regulations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, regulations)
}

// UpdateRegulation đổi quy định theo key. Áp dụng cho thao tác sau đó,
// các phiếu thuê đã chốt giá không bị tính lại.
func UpdateRegulation(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB
	key := c.Locals("regulationKey").(string)
	regulationInput, ok := c.Locals("input").(model.UpdateRegulationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, errors.New("parse data to locals fail"))
	}

	var regulation model.Regulation
	if err := db.Where("key = ?", key).First(&regulation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Quy định không tồn tại", err)
	}

	updates := map[string]interface{}{"value": regulationInput.Value}
	if regulationInput.Description != nil {
		updates["description"] = *regulationInput.Description
	}
	if err := db.Model(&regulation).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, regulation)
}
