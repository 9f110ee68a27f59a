package contractController

import (
	"evrental/database"
	"evrental/middleware"
	"evrental/models"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ListContracts godoc
// @Summary  Paginated contract list (staff)
// @Tags     contracts
// @Security BearerAuth
// @Router   /api/contracts [get]
func ListContracts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 || limit < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid pagination params!", nil)
	}
	offset := (page - 1) * limit

	query := database.Database.Db.Model(&models.Contract{}).Where("is_deleted = false")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var contracts []models.Contract
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&contracts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch contracts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contract list.", fiber.Map{
		"contracts": contracts,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// MyContracts godoc
// @Summary  Contracts belonging to the caller
// @Tags     contracts
// @Security BearerAuth
// @Router   /api/contracts/my-contracts [get]
func MyContracts(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var contracts []models.Contract
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = false", userId).
		Order("created_at DESC").
		Find(&contracts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch contracts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "My contracts.", contracts)
}

// GetContract godoc
// @Summary  Contract detail (owner or staff)
// @Tags     contracts
// @Security BearerAuth
// @Router   /api/contracts/{id} [get]
func GetContract(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid contract id!", nil)
	}

	var contract models.Contract
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", id).First(&contract).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Contract not found!", nil)
	}

	if contract.UserID != userId && !middleware.IsStaff(c) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have access to this contract!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contract detail.", contract)
}

// SignContract godoc
// @Summary  Renter signs the active contract
// @Tags     contracts
// @Security BearerAuth
// @Router   /api/contracts/{id}/sign [put]
func SignContract(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid contract id!", nil)
	}

	var contract models.Contract
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", id).First(&contract).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Contract not found!", nil)
	}

	if contract.UserID != userId {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only the renter can sign this contract!", nil)
	}
	if contract.Status != models.ContractActive {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Contract is not open for signing!", nil)
	}

	now := time.Now()
	contract.Status = models.ContractSigned
	contract.SignedAt = &now

	if err := database.Database.Db.Save(&contract).Error; err != nil {
		log.Printf("Error signing contract: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign contract!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contract signed.", contract)
}
