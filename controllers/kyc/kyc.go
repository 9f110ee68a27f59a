package kycController

import (
	"evrental/config"
	"evrental/database"
	"evrental/middleware"
	"evrental/models"
	"evrental/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// document kinds accepted by the upload endpoints
const (
	docIdentityCard = "identity-card"
	docLicense      = "license"
)

// UploadDocument godoc
// @Summary  Upload one side of the identity card or driver's license
// @Tags     kyc
// @Accept   multipart/form-data
// @Security BearerAuth
// @Router   /api/kyc/{document}/{side} [post]
func UploadDocument(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	document := c.Params("document")
	side := c.Params("side")
	if (document != docIdentityCard && document != docLicense) || (side != "front" && side != "back") {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown document or side!", nil)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Image file is required!", nil)
	}
	if !utils.IsAllowedImage(file) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Image must be jpg, jpeg or png!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}
	if user.KYCStatus == models.KYCApproved {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "KYC already approved!", nil)
	}
	if user.KYCStatus == models.KYCPending {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "KYC is pending review, documents are locked!", nil)
	}

	path, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir+"/kyc")
	if err != nil {
		log.Printf("Error saving KYC document: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save document!", nil)
	}

	// Find or create the user's KYC record
	var kyc models.UserKYC
	result := database.Database.Db.Where("user_id = ? AND is_deleted = false", userId).First(&kyc)
	if result.Error != nil {
		kyc = models.UserKYC{UserID: userId, Status: models.KYCNotSubmitted}
	}

	number := c.FormValue("number")
	switch document {
	case docIdentityCard:
		if number != "" {
			kyc.IdentityCard.Number = number
		}
		if side == "front" {
			kyc.IdentityCard.FrontImage = path
		} else {
			kyc.IdentityCard.BackImage = path
		}
	case docLicense:
		if number != "" {
			kyc.DriverLicense.Number = number
		}
		if side == "front" {
			kyc.DriverLicense.FrontImage = path
		} else {
			kyc.DriverLicense.BackImage = path
		}
	}

	// All four images present -> submit for review
	submitted := false
	if kyc.Complete() {
		kyc.Status = models.KYCPending
		kyc.RejectionReason = ""
		submitted = true
	}

	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&kyc).Error; err != nil {
			return err
		}
		if submitted {
			return tx.Model(&user).Update("kyc_status", models.KYCPending).Error
		}
		return nil
	})
	if err != nil {
		log.Printf("Error saving KYC record: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save KYC record!", nil)
	}

	message := "Document uploaded."
	if submitted {
		message = "Document uploaded. KYC submitted for review."
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"document": document,
		"side":     side,
		"url":      utils.GetFileURL(path),
		"status":   kyc.Status,
	})
}

// Status godoc
// @Summary  Current KYC status and uploaded documents for the caller
// @Tags     kyc
// @Security BearerAuth
// @Router   /api/kyc/status [get]
func Status(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var kyc models.UserKYC
	result := database.Database.Db.Where("user_id = ? AND is_deleted = false", userId).First(&kyc)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "KYC status.", fiber.Map{
			"status": models.KYCNotSubmitted,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "KYC status.", fiber.Map{
		"status":          kyc.Status,
		"rejectionReason": kyc.RejectionReason,
		"identityCard": fiber.Map{
			"number": kyc.IdentityCard.Number,
			"front":  utils.GetFileURL(kyc.IdentityCard.FrontImage),
			"back":   utils.GetFileURL(kyc.IdentityCard.BackImage),
		},
		"driverLicense": fiber.Map{
			"number": kyc.DriverLicense.Number,
			"front":  utils.GetFileURL(kyc.DriverLicense.FrontImage),
			"back":   utils.GetFileURL(kyc.DriverLicense.BackImage),
		},
	})
}

// PendingList godoc
// @Summary  Paginated queue of KYC submissions awaiting review
// @Tags     kyc
// @Security BearerAuth
// @Router   /api/kyc/pending [get]
func PendingList(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 || limit < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid pagination params!", nil)
	}
	offset := (page - 1) * limit

	var pending []models.UserKYC
	var total int64

	if err := database.Database.Db.
		Where("status = ? AND is_deleted = false", models.KYCPending).
		Order("updated_at ASC"). // Oldest submissions first
		Offset(offset).
		Limit(limit).
		Find(&pending).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch pending KYC list!", nil)
	}

	database.Database.Db.Model(&models.UserKYC{}).
		Where("status = ? AND is_deleted = false", models.KYCPending).
		Count(&total)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending KYC list.", fiber.Map{
		"submissions": pending,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// Verify godoc
// @Summary  Approve or reject a pending KYC submission
// @Tags     kyc
// @Security BearerAuth
// @Router   /api/kyc/verify [post]
func Verify(c *fiber.Ctx) error {
	staffId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedVerify").(*struct {
		UserID          uint   `json:"userId"`
		Action          string `json:"action"`
		RejectionReason string `json:"rejectionReason"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var kyc models.UserKYC
	result := database.Database.Db.Where("user_id = ? AND is_deleted = false", reqData.UserID).First(&kyc)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "KYC record not found!", nil)
	}
	if kyc.Status != models.KYCPending {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "KYC is not pending review!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", reqData.UserID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	now := time.Now()
	newStatus := models.KYCApproved
	if reqData.Action == "reject" {
		newStatus = models.KYCRejected
	}

	kyc.Status = newStatus
	kyc.RejectionReason = reqData.RejectionReason
	kyc.VerifiedBy = staffId
	kyc.VerifiedAt = &now

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&kyc).Error; err != nil {
			return err
		}
		return tx.Model(&user).Update("kyc_status", newStatus).Error
	})
	if err != nil {
		log.Printf("Error saving KYC verdict: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save verdict!", nil)
	}

	if newStatus == models.KYCApproved {
		utils.SendKYCApprovedEmail(user.Email, user.Name)
	} else {
		utils.SendKYCRejectedEmail(user.Email, user.Name, reqData.RejectionReason)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "KYC "+newStatus+".", fiber.Map{
		"userId": reqData.UserID,
		"status": newStatus,
	})
}
