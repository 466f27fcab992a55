package handler

import (
	"errors"
	"strings"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateRoomType(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB
	roomTypeInput, ok := c.Locals("input").(model.CreateRoomTypeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, errors.New("parse data to locals fail"))
	}

	tx := db.Begin()

	newRoomType := model.RoomType{
		Name:           roomTypeInput.Name,
		Slug:           helper.GenerateUniqueRoomTypeSlug(tx, roomTypeInput.Name),
		Description:    roomTypeInput.Description,
		BasePrice:      roomTypeInput.BasePrice,
		MaxGuests:      roomTypeInput.MaxGuests,
		SurchargeRatio: roomTypeInput.SurchargeRatio,
		ImageUrl:       roomTypeInput.ImageUrl,
	}
	if err := tx.Create(&newRoomType).Error; err != nil {
		tx.Rollback()
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Tên loại phòng đã tồn tại", nil, "name")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusOK, newRoomType)
}

func GetRoomTypes(c *fiber.Ctx) error {
	db := database.DB

	var roomTypes model.RoomTypes
	if err := db.Preload("Rooms").Order("id ASC").Find(&roomTypes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, roomTypes)
}

func GetRoomTypeBySlug(c *fiber.Ctx) error {
	db := database.DB

	slug := c.Params("slug")
	var roomType model.RoomType
	if err := db.Preload("Rooms").Where("slug = ?", slug).First(&roomType).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Loại phòng không tồn tại", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, roomType)
}

// EditRoomType đổi giá loại phòng không ảnh hưởng các phiếu thuê đang
// hoạt động: giá đã chốt nằm trên rental
func EditRoomType(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB
	roomTypeId := c.Locals("inputId").(int)
	roomTypeInput, ok := c.Locals("input").(model.EditRoomTypeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, errors.New("parse data to locals fail"))
	}

	tx := db.Begin()

	var roomType model.RoomType
	if err := tx.First(&roomType, roomTypeId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Loại phòng không tồn tại", err)
	}

	updates := map[string]interface{}{}
	if roomTypeInput.Name != nil && *roomTypeInput.Name != roomType.Name {
		updates["name"] = *roomTypeInput.Name
		updates["slug"] = helper.GenerateUniqueRoomTypeSlug(tx, *roomTypeInput.Name)
	}
	if roomTypeInput.Description != nil {
		updates["description"] = *roomTypeInput.Description
	}
	if roomTypeInput.BasePrice != nil {
		updates["base_price"] = *roomTypeInput.BasePrice
	}
	if roomTypeInput.MaxGuests != nil {
		updates["max_guests"] = *roomTypeInput.MaxGuests
	}
	if roomTypeInput.SurchargeRatio != nil {
		updates["surcharge_ratio"] = *roomTypeInput.SurchargeRatio
	}
	if roomTypeInput.ImageUrl != nil {
		updates["image_url"] = *roomTypeInput.ImageUrl
	}

	if len(updates) > 0 {
		if err := tx.Model(&roomType).Updates(updates).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusOK, roomType)
}

func DeleteRoomTypes(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB
	deleteIds, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, errors.New("parse data to locals fail"))
	}

	// Không xóa loại phòng còn phòng trực thuộc
	var roomCount int64
	db.Model(&model.Room{}).Where("room_type_id IN ?", deleteIds.IDs).Count(&roomCount)
	if roomCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Loại phòng đang có phòng trực thuộc, không thể xóa", nil)
	}

	if err := db.Delete(&model.RoomType{}, deleteIds.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": deleteIds.IDs})
}
