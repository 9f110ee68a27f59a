package authRoutes

import (
	authController "evrental/controllers/auth"
	"evrental/middleware"
	authValidator "evrental/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/register", authValidator.RegisterValidator, authController.Register)
	auth.Post("/login", authController.Login)
	auth.Post("/refresh-token", authController.RefreshToken)
	auth.Post("/forgot-password", authController.ForgotPassword)
	auth.Post("/reset-password", authValidator.ResetPasswordValidator, authController.ResetPassword)

	auth.Post("/logout", middleware.JWTMiddleware, authController.Logout)
	auth.Get("/profile", middleware.JWTMiddleware, authController.Profile)
	auth.Put("/profile", middleware.JWTMiddleware, authController.UpdateProfile)
	auth.Post("/change-password", middleware.JWTMiddleware, authValidator.ChangePasswordValidator, authController.ChangePassword)
	auth.Get("/login/history", middleware.JWTMiddleware, authController.LoginHistoryList)
}
