package router

import (
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/handler"
	"hotel_manager/middleware"
	"hotel_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	staffRoles := middleware.RequireRoles(
		constants.ROLE_ADMIN,
		constants.ROLE_MANAGER,
		constants.ROLE_RECEPTIONIST,
	)

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", middleware.Protected(), handler.GetCurrentAccount)

	// Public: khách tự tra phòng trống và đặt phòng, có rate limit
	publicLimit := middleware.RateLimit(database.RedisClient, 30, time.Minute)
	datphong := v1.Group("/dat-phong")
	datphong.Get("/phong-trong", publicLimit, validate.SearchAvailableRooms(), handler.SearchAvailableRooms)
	datphong.Post("/", publicLimit, validate.CreateBooking(), handler.CreateBooking)
	datphong.Get("/:code", publicLimit, handler.GetBookingByCode)
	datphong.Patch("/:code/cancel", publicLimit, handler.CancelBookingByCode)

	account := v1.Group("/account", logger.New())
	account.Get("/", middleware.Protected(), middleware.RequireRoles(constants.ROLE_ADMIN), handler.GetAccounts)
	account.Post("/", middleware.Protected(), validate.CreateAccount(), handler.CreateAccount)
	account.Post("/change-password", middleware.Protected(), validate.ChangePassword(), handler.AdminChangePassword)
	account.Patch("/:accountId", middleware.Protected(), validate.UpdateAccount("accountId"), handler.UpdateAccount)

	staff := v1.Group("/staff", logger.New())
	staff.Get("/", middleware.Protected(), staffRoles, handler.GetStaffs)
	staff.Get("/:staffId", middleware.Protected(), staffRoles, validate.GetById("staffId"), handler.GetStaffById)
	staff.Post("/", middleware.Protected(), validate.CreateStaff(), handler.CreateStaff)
	staff.Put("/:staffId", middleware.Protected(), validate.EditStaff("staffId"), handler.EditStaff)

	customer := v1.Group("/customer", logger.New())
	customer.Get("/", middleware.Protected(), staffRoles, handler.GetCustomers)
	customer.Get("/identity/:identityCard", middleware.Protected(), staffRoles, handler.GetCustomerByIdentityCard)
	customer.Get("/:customerId", middleware.Protected(), staffRoles, validate.GetById("customerId"), handler.GetCustomerById)
	customer.Post("/", middleware.Protected(), staffRoles, validate.CreateCustomer(), handler.CreateCustomer)
	customer.Put("/:customerId", middleware.Protected(), staffRoles, validate.EditCustomer("customerId"), handler.EditCustomer)

	roomType := v1.Group("/room-type", logger.New())
	roomType.Get("/", handler.GetRoomTypes)
	roomType.Get("/:slug", handler.GetRoomTypeBySlug)
	roomType.Post("/", middleware.Protected(), validate.CreateRoomType(), handler.CreateRoomType)
	roomType.Put("/:roomTypeId", middleware.Protected(), validate.EditRoomType("roomTypeId"), handler.EditRoomType)
	roomType.Post("/:roomTypeId/image", middleware.Protected(), validate.GetById("roomTypeId"), handler.UploadRoomTypeImage)
	roomType.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteRoomTypes)

	room := v1.Group("/room", logger.New())
	room.Get("/", middleware.Protected(), staffRoles, handler.GetRooms)
	room.Get("/:roomId", middleware.Protected(), staffRoles, validate.GetById("roomId"), handler.GetRoomById)
	room.Post("/", middleware.Protected(), validate.CreateRoom(), handler.CreateRoom)
	room.Put("/:roomId", middleware.Protected(), validate.EditRoom("roomId"), handler.EditRoom)
	room.Patch("/:roomId/status", middleware.Protected(), staffRoles, validate.UpdateRoomStatus("roomId"), handler.UpdateRoomStatus)
	room.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteRooms)

	booking := v1.Group("/booking", logger.New())
	booking.Get("/", middleware.Protected(), staffRoles, handler.GetBookings)
	booking.Post("/", middleware.Protected(), staffRoles, validate.CreateBooking(), handler.CreateBooking)
	booking.Patch("/:bookingId/confirm", middleware.Protected(), staffRoles, validate.GetById("bookingId"), handler.ConfirmBooking)
	booking.Patch("/:bookingId/cancel", middleware.Protected(), staffRoles, validate.GetById("bookingId"), handler.CancelBooking)
	booking.Post("/:bookingId/check-in", middleware.Protected(), staffRoles, validate.GetById("bookingId"), validate.CheckInBooking(), handler.CheckInBooking)

	rental := v1.Group("/rental", logger.New())
	rental.Get("/", middleware.Protected(), staffRoles, handler.GetActiveRentals)
	rental.Post("/walk-in", middleware.Protected(), staffRoles, validate.WalkInCheckIn(), handler.WalkInCheckIn)
	rental.Post("/walk-in/price", middleware.Protected(), staffRoles, validate.WalkInPrice(), handler.WalkInPrice)
	rental.Get("/:rentalId", middleware.Protected(), staffRoles, validate.GetById("rentalId"), handler.GetRentalById)
	rental.Patch("/:rentalId/extend", middleware.Protected(), staffRoles, validate.GetById("rentalId"), validate.ExtendRental(), handler.ExtendRental)
	rental.Post("/:rentalId/check-out", middleware.Protected(), staffRoles, validate.GetById("rentalId"), handler.CheckoutRental)
	rental.Get("/:rentalId/services", middleware.Protected(), staffRoles, validate.GetById("rentalId"), handler.GetRentalServiceUsages)
	rental.Post("/:rentalId/services", middleware.Protected(), staffRoles, validate.GetById("rentalId"), validate.AddServiceUsage(), handler.AddServiceUsage)

	service := v1.Group("/service", logger.New())
	service.Get("/", middleware.Protected(), staffRoles, handler.GetServices)
	service.Post("/", middleware.Protected(), validate.CreateService(), handler.CreateService)

	regulation := v1.Group("/regulation", logger.New())
	regulation.Get("/", middleware.Protected(), staffRoles, handler.GetRegulations)
	regulation.Put("/:key", middleware.Protected(), validate.UpdateRegulation(), handler.UpdateRegulation)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/", middleware.Protected(), handler.GetDashboardStats)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)

	// Sơ đồ phòng realtime
	v1.Get("/ws/rooms", websocket.New(handler.RoomStatusSocket))
}
