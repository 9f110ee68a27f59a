package authValidator

import (
	"evrental/middleware"
	"regexp"

	"github.com/gofiber/fiber/v2"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
var mobileRegex = regexp.MustCompile(`^[0-9+\-\s]{8,15}$`)

// RegisterValidator checks the registration payload before the controller runs
func RegisterValidator(c *fiber.Ctx) error {
	reqData := new(struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Mobile   string `json:"mobile"`
		Password string `json:"password"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	errors := make(map[string]string)

	if len(reqData.Name) < 2 || len(reqData.Name) > 100 {
		errors["name"] = "Name must be between 2 and 100 characters"
	}
	if !emailRegex.MatchString(reqData.Email) {
		errors["email"] = "A valid email address is required"
	}
	if reqData.Mobile != "" && !mobileRegex.MatchString(reqData.Mobile) {
		errors["mobile"] = "Mobile number format is invalid"
	}
	if len(reqData.Password) < 8 {
		errors["password"] = "Password must be at least 8 characters"
	}

	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	c.Locals("validatedUser", reqData)
	return c.Next()
}

// ChangePasswordValidator checks the change-password payload
func ChangePasswordValidator(c *fiber.Ctx) error {
	reqData := new(struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
		CnfPassword     string `json:"cnfPassword"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	errors := make(map[string]string)

	if reqData.CurrentPassword == "" {
		errors["currentPassword"] = "Current password is required"
	}
	if len(reqData.NewPassword) < 8 {
		errors["newPassword"] = "New password must be at least 8 characters"
	}
	if reqData.NewPassword != reqData.CnfPassword {
		errors["cnfPassword"] = "Passwords do not match"
	}
	if reqData.NewPassword == reqData.CurrentPassword {
		errors["newPassword"] = "New password must differ from the current one"
	}

	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	c.Locals("validatedUser", reqData)
	return c.Next()
}

// ResetPasswordValidator checks the OTP reset payload
func ResetPasswordValidator(c *fiber.Ctx) error {
	reqData := new(struct {
		Email    string `json:"email"`
		Code     string `json:"code"`
		Password string `json:"password"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	errors := make(map[string]string)

	if !emailRegex.MatchString(reqData.Email) {
		errors["email"] = "A valid email address is required"
	}
	if len(reqData.Code) != 6 {
		errors["code"] = "OTP code must be 6 digits"
	}
	if len(reqData.Password) < 8 {
		errors["password"] = "Password must be at least 8 characters"
	}

	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	c.Locals("validatedUser", reqData)
	return c.Next()
}
