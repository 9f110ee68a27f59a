package contractRoutes

import (
	contractController "evrental/controllers/contract"
	"evrental/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupContractRoutes(app *fiber.App) {
	contracts := app.Group("/api/contracts", middleware.JWTMiddleware)

	contracts.Get("/my-contracts", contractController.MyContracts)
	contracts.Get("/:id", contractController.GetContract)
	contracts.Put("/:id/sign", contractController.SignContract)

	contracts.Get("/", middleware.RequireRole("ADMIN", "STAFF"), contractController.ListContracts)
}
