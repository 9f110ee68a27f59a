package bookingRoutes

import (
	bookingController "evrental/controllers/booking"
	"evrental/middleware"
	bookingValidator "evrental/validators/booking"

	"github.com/gofiber/fiber/v2"
)

func SetupBookingRoutes(app *fiber.App) {
	bookings := app.Group("/api/bookings", middleware.JWTMiddleware)

	bookings.Post("/", bookingValidator.CreateBookingValidator, bookingController.CreateBooking)
	bookings.Get("/my-bookings", bookingController.MyBookings)
	bookings.Get("/:id", bookingController.GetBooking)
	bookings.Put("/:id/cancel", bookingController.CancelBooking)

	bookings.Get("/", middleware.RequireRole("ADMIN", "STAFF"), bookingController.ListBookings)
	bookings.Put("/:id/confirm", middleware.RequireRole("ADMIN", "STAFF"), bookingController.ConfirmBooking)
}
