package statsRoutes

import (
	statsController "evrental/controllers/stats"
	"evrental/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupStatsRoutes(app *fiber.App) {
	stats := app.Group("/api/stats", middleware.JWTMiddleware)

	stats.Get("/me", statsController.MyStats)
}
