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

func CreateService(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB
	serviceInput, ok := c.Locals("input").(model.CreateServiceInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, errors.New("parse data to locals fail"))
	}

	newService := model.Service{
		Name:     serviceInput.Name,
		Price:    serviceInput.Price,
		Unit:     serviceInput.Unit,
		IsActive: true,
	}
	if err := db.Create(&newService).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, newService)
}

func GetServices(c *fiber.Ctx) error {
	db := database.DB

	var services model.Services
	if err := db.Where("is_active = ?", true).Order("id ASC").Find(&services).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, services)
}

// AddServiceUsage ghi nhận dịch vụ cho phiếu thuê đang hoạt động. Đơn giá
// chốt ngay lúc ghi, đổi giá dịch vụ sau đó không ảnh hưởng.
func AddServiceUsage(c *fiber.Ctx) error {
	db := database.DB

	rentalId := c.Locals("inputId").(int)
	usageInput, ok := c.Locals("input").(model.AddServiceUsageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, errors.New("parse data to locals fail"))
	}

	var rental model.Rental
	if err := db.First(&rental, rentalId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Phiếu thuê không tồn tại", err)
	}
	if rental.Status != model.RentalActive {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Phiếu thuê đã trả phòng, không thể thêm dịch vụ", nil)
	}

	var service model.Service
	if err := db.First(&service, usageInput.ServiceId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Dịch vụ không tồn tại", err)
	}
	if !service.IsActive {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Dịch vụ đã ngừng cung cấp", nil)
	}

	usage := model.ServiceUsage{
		RentalId:   rental.ID,
		ServiceId:  service.ID,
		Quantity:   usageInput.Quantity,
		TotalPrice: service.Price * float64(usageInput.Quantity),
		UsedAt:     time.Now(),
	}
	if err := db.Create(&usage).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	db.Preload("Service").First(&usage, usage.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, usage)
}

func GetRentalServiceUsages(c *fiber.Ctx) error {
	db := database.DB

	rentalId := c.Locals("inputId").(int)
	var usages []model.ServiceUsage
	if err := db.Preload("Service").
		Where("rental_id = ?", rentalId).
		Order("used_at ASC").
		Find(&usages).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var total float64
	for _, usage := range usages {
		total += usage.TotalPrice
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"rows":  usages,
		"total": total,
	})
}
