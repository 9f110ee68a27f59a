package stationRoutes

import (
	stationController "evrental/controllers/station"
	"evrental/middleware"
	stationValidator "evrental/validators/station"

	"github.com/gofiber/fiber/v2"
)

func SetupStationRoutes(app *fiber.App) {
	stations := app.Group("/api/stations")

	// Browsing is open; management is admin-only
	stations.Get("/", stationController.ListStations)
	stations.Get("/:id", stationController.GetStation)

	stations.Post("/", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), stationValidator.CreateStationValidator, stationController.CreateStation)
	stations.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), stationController.UpdateStation)
	stations.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), stationController.DeleteStation)
}
