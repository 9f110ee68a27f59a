package rentalRoutes

import (
	rentalController "evrental/controllers/rental"
	"evrental/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupRentalRoutes(app *fiber.App) {
	rentals := app.Group("/api/rentals", middleware.JWTMiddleware)

	rentals.Get("/my-rentals", rentalController.MyRentals)
	rentals.Get("/:id", rentalController.GetRental)

	rentals.Post("/start", middleware.RequireRole("ADMIN", "STAFF"), rentalController.StartRental)
	rentals.Put("/:id/complete", middleware.RequireRole("ADMIN", "STAFF"), rentalController.CompleteRental)
	rentals.Get("/", middleware.RequireRole("ADMIN", "STAFF"), rentalController.ListRentals)
}
