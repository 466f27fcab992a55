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
	"github.com/jinzhu/copier"
)

func CreateStaff(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB
	staffInput, ok := c.Locals("input").(model.CreateStaffInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, errors.New("parse data to locals fail"))
	}

	newStaff := new(model.Staff)
	copier.Copy(&newStaff, &staffInput)
	newStaff.IsActive = true

	if err := db.Create(&newStaff).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "CMND/CCCD đã tồn tại", nil, "identityCard")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, newStaff)
}

func GetStaffs(c *fiber.Ctx) error {
	db := database.DB

	filterInput := new(model.FilterStaff)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	condition := db.Model(&model.Staff{})
	if filterInput.SearchKey != "" {
		searchKey := "%" + strings.ToLower(filterInput.SearchKey) + "%"
		condition = condition.Where(
			db.Where("LOWER(full_name) LIKE ?", searchKey).
				Or("LOWER(phone_number) LIKE ?", searchKey).
				Or("LOWER(identity_card) LIKE ?", searchKey),
		)
	}
	if filterInput.Active != nil {
		condition = condition.Where("is_active = ?", filterInput.Active)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var staffs model.Staffs
	condition.Preload("Account").Order("id ASC").Find(&staffs)

	response := &model.ResponseCustom{
		Rows:       staffs,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetStaffById(c *fiber.Ctx) error {
	db := database.DB

	staffId := c.Locals("inputId").(int)
	var staff model.Staff
	if err := db.Preload("Account").First(&staff, staffId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Nhân viên không tồn tại", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, staff)
}

func EditStaff(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB
	staffId := c.Locals("inputId").(int)
	staffInput, ok := c.Locals("input").(model.EditStaffInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, errors.New("parse data to locals fail"))
	}

	tx := db.Begin()

	var staff model.Staff
	if err := tx.First(&staff, staffId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Nhân viên không tồn tại", err)
	}
	copier.Copy(&staff, &staffInput)

	if err := tx.Model(&model.Staff{DTO: model.DTO{ID: uint(staffId)}}).Updates(staff).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusOK, staff)
}
