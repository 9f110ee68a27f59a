package kycRoutes

import (
	kycController "evrental/controllers/kyc"
	"evrental/middleware"
	kycValidator "evrental/validators/kyc"

	"github.com/gofiber/fiber/v2"
)

func SetupKycRoutes(app *fiber.App) {
	kyc := app.Group("/api/kyc", middleware.JWTMiddleware)

	kyc.Post("/:document/:side", kycController.UploadDocument)
	kyc.Get("/status", kycController.Status)

	kyc.Get("/pending", middleware.RequireRole("ADMIN", "STAFF"), kycController.PendingList)
	kyc.Post("/verify", middleware.RequireRole("ADMIN", "STAFF"), kycValidator.VerifyValidator, kycController.Verify)
}
