package handler

import (
	"errors"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func CreateRoom(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB
	roomInput, ok := c.Locals("input").(model.CreateRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, errors.New("parse data to locals fail"))
	}

	newRoom := model.Room{
		RoomNumber: roomInput.RoomNumber,
		Floor:      roomInput.Floor,
		Status:     model.RoomAvailable,
		RoomTypeId: roomInput.RoomTypeId,
	}
	if err := db.Create(&newRoom).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	db.Preload("RoomType").First(&newRoom, newRoom.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, newRoom)
}

func GetRooms(c *fiber.Ctx) error {
	db := database.DB

	filterInput := new(model.FilterRoom)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	condition := db.Model(&model.Room{})
	if filterInput.Status != nil {
		condition = condition.Where("status = ?", filterInput.Status)
	}
	if filterInput.RoomTypeId != nil {
		condition = condition.Where("room_type_id = ?", filterInput.RoomTypeId)
	}
	if filterInput.Floor != nil {
		condition = condition.Where("floor = ?", filterInput.Floor)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var rooms model.Rooms
	condition.Preload("RoomType").Order("room_number ASC").Find(&rooms)

	response := &model.ResponseCustom{
		Rows:       rooms,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetRoomById(c *fiber.Ctx) error {
	db := database.DB

	roomId := c.Locals("inputId").(int)
	var room model.Room
	if err := db.Preload("RoomType").First(&room, roomId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Phòng không tồn tại", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

func EditRoom(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB
	roomId := c.Locals("inputId").(int)
	roomInput, ok := c.Locals("input").(model.EditRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, errors.New("parse data to locals fail"))
	}

	tx := db.Begin()

	var room model.Room
	if err := tx.First(&room, roomId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Phòng không tồn tại", err)
	}
	copier.Copy(&room, &roomInput)

	if err := tx.Model(&model.Room{DTO: model.DTO{ID: uint(roomId)}}).Updates(room).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

// UpdateRoomStatus chuyển trạng thái vận hành (dọn dẹp, bảo trì, sẵn sàng).
// Trạng thái occupied chỉ do luồng nhận/trả phòng quản lý, không đổi tay.
func UpdateRoomStatus(c *fiber.Ctx) error {
	db := database.DB

	roomId := c.Locals("inputId").(int)
	statusInput, ok := c.Locals("input").(model.UpdateRoomStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, errors.New("parse data to locals fail"))
	}

	var room model.Room
	if err := db.First(&room, roomId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Phòng không tồn tại", err)
	}

	if room.Status == model.RoomOccupied {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Phòng đang có khách, trả phòng trước khi đổi trạng thái", nil)
	}

	if err := db.Model(&room).Update("status", statusInput.Status).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	BroadcastRoomStatus(room.ID, statusInput.Status)
	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

func DeleteRooms(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB
	deleteIds, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, errors.New("parse data to locals fail"))
	}

	// Phòng còn phiếu thuê đang hoạt động thì không xóa
	var activeCount int64
	db.Model(&model.Rental{}).
		Where("room_id IN ? AND status = ?", deleteIds.IDs, model.RentalActive).
		Count(&activeCount)
	if activeCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Phòng đang có khách thuê, không thể xóa", nil)
	}

	if err := db.Delete(&model.Room{}, deleteIds.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": deleteIds.IDs})
}
