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

// CreateCustomer tạo mới hoặc cập nhật khách theo CMND/CCCD. Lễ tân quét
// giấy tờ nhiều lần không tạo bản ghi trùng.
func CreateCustomer(c *fiber.Ctx) error {
	db := database.DB

	customerInput, ok := c.Locals("input").(model.CustomerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, errors.New("parse data to locals fail"))
	}

	customer, appErr := helper.FindOrMergeCustomer(db, customerInput)
	if appErr != nil {
		return utils.AppErrorResponse(c, appErr)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func GetCustomers(c *fiber.Ctx) error {
	db := database.DB

	filterInput := new(model.FilterCustomer)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	condition := db.Model(&model.Customer{})
	if filterInput.SearchKey != "" {
		searchKey := "%" + strings.ToLower(filterInput.SearchKey) + "%"
		condition = condition.Where(
			db.Where("LOWER(full_name) LIKE ?", searchKey).
				Or("LOWER(phone_number) LIKE ?", searchKey).
				Or("LOWER(identity_card) LIKE ?", searchKey),
		)
	}
	if filterInput.IdentityCard != nil {
		condition = condition.Where("identity_card = ?", filterInput.IdentityCard)
	}
	if filterInput.Type != nil {
		condition = condition.Where("type = ?", filterInput.Type)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var customers model.Customers
	condition.Order("id ASC").Find(&customers)

	response := &model.ResponseCustom{
		Rows:       customers,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetCustomerById(c *fiber.Ctx) error {
	db := database.DB

	customerId := c.Locals("inputId").(int)
	var customer model.Customer
	if err := db.First(&customer, customerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Khách hàng không tồn tại", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

// GetCustomerByIdentityCard tra cứu nhanh khi lễ tân quét giấy tờ
func GetCustomerByIdentityCard(c *fiber.Ctx) error {
	identityCard := c.Params("identityCard")
	if identityCard == "" {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Thiếu CMND/CCCD", nil, "identityCard")
	}

	customer, err := helper.GetCustomerByIdentityCard(database.DB, identityCard)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if customer == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Khách hàng không tồn tại", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func EditCustomer(c *fiber.Ctx) error {
	db := database.DB

	customerId := c.Locals("inputId").(int)
	customerInput, ok := c.Locals("input").(model.EditCustomerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, errors.New("parse data to locals fail"))
	}

	tx := db.Begin()

	var customer model.Customer
	if err := tx.First(&customer, customerId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Khách hàng không tồn tại", err)
	}
	copier.Copy(&customer, &customerInput)

	if err := tx.Model(&model.Customer{DTO: model.DTO{ID: uint(customerId)}}).Updates(customer).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}
