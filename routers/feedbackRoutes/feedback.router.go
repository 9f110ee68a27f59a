package feedbackRoutes

import (
	feedbackController "evrental/controllers/feedback"
	"evrental/middleware"
	feedbackValidator "evrental/validators/feedback"

	"github.com/gofiber/fiber/v2"
)

func SetupFeedbackRoutes(app *fiber.App) {
	feedback := app.Group("/api/feedback")

	// Public listing, but staff see hidden entries when they send a token
	feedback.Get("/", optionalAuth, feedbackController.ListFeedback)

	feedback.Post("/", middleware.JWTMiddleware, feedbackValidator.CreateFeedbackValidator, feedbackController.CreateFeedback)
	feedback.Get("/my-feedback", middleware.JWTMiddleware, feedbackController.MyFeedback)

	feedback.Put("/:id/hide", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), feedbackController.HideFeedback)
	feedback.Put("/:id/unhide", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), feedbackController.UnhideFeedback)
}

// optionalAuth runs the JWT middleware only when a token was sent
func optionalAuth(c *fiber.Ctx) error {
	if c.Get("Authorization") != "" {
		return middleware.JWTMiddleware(c)
	}
	return c.Next()
}
