package kycValidator

import (
	"evrental/middleware"

	"github.com/gofiber/fiber/v2"
)

// VerifyValidator checks the approve/reject payload for a KYC review
func VerifyValidator(c *fiber.Ctx) error {
	reqData := new(struct {
		UserID          uint   `json:"userId"`
		Action          string `json:"action"`
		RejectionReason string `json:"rejectionReason"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	errors := make(map[string]string)

	if reqData.UserID == 0 {
		errors["userId"] = "userId is required"
	}
	if reqData.Action != "approve" && reqData.Action != "reject" {
		errors["action"] = "Action must be approve or reject"
	}
	if reqData.Action == "reject" && reqData.RejectionReason == "" {
		errors["rejectionReason"] = "A rejection reason is required"
	}

	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	c.Locals("validatedVerify", reqData)
	return c.Next()
}
