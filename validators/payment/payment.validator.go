package paymentValidator

import (
	"evrental/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreatePaymentValidator checks the payment creation payload
func CreatePaymentValidator(c *fiber.Ctx) error {
	reqData := new(struct {
		BookingID     uint    `json:"booking_id" validate:"required,gt=0"`
		PaymentType   string  `json:"payment_type" validate:"required,oneof=deposit rental_fee additional_fee"`
		PaymentMethod string  `json:"payment_method" validate:"required,oneof=cash qr_code bank_transfer vnpay"`
		Amount        float64 `json:"amount" validate:"gte=0"`
		Reason        string  `json:"reason"`
		Notes         string  `json:"notes"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	if err := validate.Struct(reqData); err != nil {
		errors := make(map[string]string)
		for _, fieldErr := range err.(validator.ValidationErrors) {
			switch fieldErr.Field() {
			case "BookingID":
				errors["booking_id"] = "booking_id is required"
			case "PaymentType":
				errors["payment_type"] = "payment_type must be deposit, rental_fee or additional_fee"
			case "PaymentMethod":
				errors["payment_method"] = "payment_method must be cash, qr_code, bank_transfer or vnpay"
			case "Amount":
				errors["amount"] = "amount cannot be negative"
			}
		}
		return middleware.ValidationErrorResponse(c, errors)
	}

	c.Locals("validatedPayment", reqData)
	return c.Next()
}
