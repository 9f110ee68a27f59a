package vehicleRoutes

import (
	vehicleController "evrental/controllers/vehicle"
	"evrental/middleware"
	vehicleValidator "evrental/validators/vehicle"

	"github.com/gofiber/fiber/v2"
)

func SetupVehicleRoutes(app *fiber.App) {
	vehicles := app.Group("/api/vehicles")

	vehicles.Get("/", vehicleController.ListVehicles)
	vehicles.Get("/:id", vehicleController.GetVehicle)

	vehicles.Post("/", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), vehicleValidator.CreateVehicleValidator, vehicleController.CreateVehicle)
	vehicles.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN", "STAFF"), vehicleController.UpdateVehicle)
	vehicles.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), vehicleController.DeleteVehicle)
}
