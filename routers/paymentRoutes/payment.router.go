package paymentRoutes

import (
	paymentController "evrental/controllers/payment"
	"evrental/middleware"
	paymentValidator "evrental/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	payments := app.Group("/api/payments")

	// The gateway redirects the browser here, so no auth on the callback
	payments.Get("/vnpay/callback", paymentController.VNPayCallback)

	payments.Post("/", middleware.JWTMiddleware, paymentValidator.CreatePaymentValidator, paymentController.CreatePayment)
	payments.Get("/my-payments", middleware.JWTMiddleware, paymentController.MyPayments)
	payments.Get("/:id", middleware.JWTMiddleware, paymentController.GetPayment)
	payments.Put("/:id/cancel", middleware.JWTMiddleware, paymentController.CancelPayment)

	payments.Get("/", middleware.JWTMiddleware, middleware.RequireRole("ADMIN", "STAFF"), paymentController.ListPayments)
	payments.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN", "STAFF"), paymentController.UpdatePayment)
	payments.Put("/:id/confirm", middleware.JWTMiddleware, middleware.RequireRole("ADMIN", "STAFF"), paymentController.ConfirmPayment)
	payments.Post("/:id/refund", middleware.JWTMiddleware, middleware.RequireRole("ADMIN", "STAFF"), paymentController.RefundPayment)
}
