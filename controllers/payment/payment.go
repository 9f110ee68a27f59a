package paymentController

import (
	"encoding/json"
	"evrental/config"
	"evrental/database"
	"evrental/middleware"
	"evrental/models"
	"evrental/utils"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreatePayment godoc
// @Summary  Create a payment for a booking
// @Tags     payments
// @Security BearerAuth
// @Router   /api/payments [post]
func CreatePayment(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedPayment").(*struct {
		BookingID     uint    `json:"booking_id" validate:"required,gt=0"`
		PaymentType   string  `json:"payment_type" validate:"required,oneof=deposit rental_fee additional_fee"`
		PaymentMethod string  `json:"payment_method" validate:"required,oneof=cash qr_code bank_transfer vnpay"`
		Amount        float64 `json:"amount" validate:"gte=0"`
		Reason        string  `json:"reason"`
		Notes         string  `json:"notes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var booking models.Booking
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", reqData.BookingID).First(&booking).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Booking not found!", nil)
	}
	if booking.UserID != userId && !middleware.IsStaff(c) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have access to this booking!", nil)
	}

	// Amount defaults from the booking unless given explicitly
	amount := reqData.Amount
	switch models.PaymentType(reqData.PaymentType) {
	case models.PaymentTypeDeposit:
		if amount == 0 {
			amount = booking.DepositAmount
		}
	case models.PaymentTypeRentalFee:
		if amount == 0 {
			amount = booking.RentalAmount
		}
	case models.PaymentTypeAdditionalFee:
		if amount <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Amount is required for additional fees!", nil)
		}
		if reqData.Reason == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Reason is required for additional fees!", nil)
		}
	}
	if amount <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment amount must be positive!", nil)
	}

	payment := models.Payment{
		BookingID:   booking.ID,
		UserID:      booking.UserID,
		PaymentType: models.PaymentType(reqData.PaymentType),
		Method:      models.PaymentMethod(reqData.PaymentMethod),
		Amount:      amount,
		Status:      models.PaymentPending,
		Reason:      reqData.Reason,
		Notes:       reqData.Notes,
		TxnRef:      uuid.NewString(),
	}

	if err := database.Database.Db.Create(&payment).Error; err != nil {
		log.Printf("Error creating payment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment!", nil)
	}

	response := fiber.Map{"payment": payment}

	// VNPay payments redirect the user through the gateway
	if payment.Method == models.PaymentMethodVNPay {
		orderInfo := fmt.Sprintf("VoltRide %s for booking %s", payment.PaymentType, booking.Code)
		response["payUrl"] = utils.BuildVNPayURL(payment.TxnRef, payment.Amount, orderInfo, c.IP())
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment created.", response)
}

// ListPayments godoc
// @Summary  Paginated payment list with filters (staff)
// @Tags     payments
// @Security BearerAuth
// @Router   /api/payments [get]
func ListPayments(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 || limit < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid pagination params!", nil)
	}
	offset := (page - 1) * limit

	query := database.Database.Db.Model(&models.Payment{}).Where("is_deleted = false")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if paymentType := c.Query("type"); paymentType != "" {
		query = query.Where("payment_type = ?", paymentType)
	}
	if method := c.Query("method"); method != "" {
		query = query.Where("method = ?", method)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("txn_ref LIKE ? OR gateway_txn_no LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	sort := "created_at DESC"
	switch c.Query("sort") {
	case "amount_asc":
		sort = "amount ASC"
	case "amount_desc":
		sort = "amount DESC"
	case "oldest":
		sort = "created_at ASC"
	}

	var total int64
	query.Count(&total)

	var payments []models.Payment
	if err := query.Order(sort).Offset(offset).Limit(limit).Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment list.", fiber.Map{
		"payments": payments,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// MyPayments godoc
// @Summary  Payments belonging to the caller
// @Tags     payments
// @Security BearerAuth
// @Router   /api/payments/my-payments [get]
func MyPayments(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var payments []models.Payment
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = false", userId).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "My payments.", payments)
}

// GetPayment godoc
// @Summary  Payment detail (owner or staff)
// @Tags     payments
// @Security BearerAuth
// @Router   /api/payments/{id} [get]
func GetPayment(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payment id!", nil)
	}

	var payment models.Payment
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", id).First(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found!", nil)
	}

	if payment.UserID != userId && !middleware.IsStaff(c) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have access to this payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment detail.", payment)
}

// UpdatePayment godoc
// @Summary  Update notes/method on a pending payment (staff)
// @Tags     payments
// @Security BearerAuth
// @Router   /api/payments/{id} [put]
func UpdatePayment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payment id!", nil)
	}

	var payment models.Payment
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", id).First(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found!", nil)
	}
	if payment.Status != models.PaymentPending {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only pending payments can be updated!", nil)
	}

	reqData := new(struct {
		Method *string `json:"payment_method"`
		Notes  *string `json:"notes"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Method != nil {
		switch models.PaymentMethod(*reqData.Method) {
		case models.PaymentMethodCash, models.PaymentMethodQRCode, models.PaymentMethodBankTransfer, models.PaymentMethodVNPay:
			payment.Method = models.PaymentMethod(*reqData.Method)
		default:
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown payment method!", nil)
		}
	}
	if reqData.Notes != nil {
		payment.Notes = *reqData.Notes
	}

	if err := database.Database.Db.Save(&payment).Error; err != nil {
		log.Printf("Error updating payment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment updated.", payment)
}

// ConfirmPayment godoc
// @Summary  Confirm a pending payment (staff, manual methods)
// @Tags     payments
// @Security BearerAuth
// @Router   /api/payments/{id}/confirm [put]
func ConfirmPayment(c *fiber.Ctx) error {
	staffId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payment id!", nil)
	}

	var payment models.Payment
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", id).First(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found!", nil)
	}

	// Status guard makes a replayed confirm a no-op failure, not a double-apply
	if payment.Status != models.PaymentPending {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only pending payments can be confirmed!", nil)
	}

	now := time.Now()
	payment.Status = models.PaymentCompleted
	payment.ConfirmedBy = staffId
	payment.PaidAt = &now

	if err := database.Database.Db.Save(&payment).Error; err != nil {
		log.Printf("Error confirming payment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to confirm payment!", nil)
	}

	var user models.User
	if database.Database.Db.First(&user, payment.UserID).Error == nil {
		utils.SendPaymentReceiptEmail(user.Email, user.Name, payment.Amount, string(payment.PaymentType))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment confirmed.", payment)
}

// CancelPayment godoc
// @Summary  Cancel a pending payment (owner or staff)
// @Tags     payments
// @Security BearerAuth
// @Router   /api/payments/{id}/cancel [put]
func CancelPayment(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payment id!", nil)
	}

	var payment models.Payment
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", id).First(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found!", nil)
	}

	if payment.UserID != userId && !middleware.IsStaff(c) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have access to this payment!", nil)
	}
	if payment.Status != models.PaymentPending {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only pending payments can be cancelled!", nil)
	}

	payment.Status = models.PaymentCancelled
	if err := database.Database.Db.Save(&payment).Error; err != nil {
		log.Printf("Error cancelling payment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to cancel payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment cancelled.", payment)
}

// RefundPayment godoc
// @Summary  Refund a completed payment (staff)
// @Tags     payments
// @Security BearerAuth
// @Router   /api/payments/{id}/refund [post]
func RefundPayment(c *fiber.Ctx) error {
	staffId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payment id!", nil)
	}

	reqData := new(struct {
		Reason string `json:"reason"`
	})
	c.BodyParser(reqData) // Reason is optional

	var payment models.Payment
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", id).First(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found!", nil)
	}

	// Refunds apply to completed payments only, so a replay cannot double-refund
	if payment.Status != models.PaymentCompleted {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only completed payments can be refunded!", nil)
	}

	// Gateway payments must be refunded at the gateway before we flip status
	if payment.Method == models.PaymentMethodVNPay {
		if err := utils.RefundVNPayTransaction(payment.TxnRef, payment.GatewayTxnNo, payment.Amount,
			strconv.FormatUint(uint64(staffId), 10)); err != nil {
			log.Printf("VNPay refund failed for payment %d: %v", payment.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Gateway refund failed!", nil)
		}
	}

	now := time.Now()
	payment.Status = models.PaymentRefunded
	payment.RefundedAt = &now
	payment.RefundReason = reqData.Reason

	if err := database.Database.Db.Save(&payment).Error; err != nil {
		log.Printf("Error saving refund: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save refund!", nil)
	}

	var user models.User
	if database.Database.Db.First(&user, payment.UserID).Error == nil {
		utils.SendRefundEmail(user.Email, user.Name, payment.Amount)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment refunded.", payment)
}

// VNPayCallback godoc
// @Summary  Gateway redirect target after a VNPay payment attempt
// @Tags     payments
// @Router   /api/payments/vnpay/callback [get]
func VNPayCallback(c *fiber.Ctx) error {
	params := map[string]string{}
	for key, value := range c.Queries() {
		params[key] = value
	}

	if !utils.VerifyVNPayCallback(params, config.AppConfig.VNPayHashSecret) {
		log.Printf("VNPay callback with invalid signature, txnRef=%s", params["vnp_TxnRef"])
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid gateway signature!", nil)
	}

	txnRef := params["vnp_TxnRef"]
	var payment models.Payment
	if err := database.Database.Db.Where("txn_ref = ? AND is_deleted = false", txnRef).First(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No payment matches this transaction!", nil)
	}

	redirect := func(outcome string) error {
		return c.Redirect(fmt.Sprintf("%s/payment-result?status=%s&txnRef=%s",
			config.AppConfig.FrontendURL, outcome, txnRef), fiber.StatusFound)
	}

	// Gateways retry callbacks; a payment already out of pending is left untouched
	if payment.Status != models.PaymentPending {
		if payment.Status == models.PaymentCompleted {
			return redirect("success")
		}
		return redirect("failed")
	}

	// The gateway reports the amount in minor units (x100)
	gatewayAmount, err := strconv.ParseInt(params["vnp_Amount"], 10, 64)
	if err != nil || gatewayAmount != utils.MinorUnits(payment.Amount) {
		log.Printf("VNPay callback amount mismatch for %s: got %s, want %d", txnRef, params["vnp_Amount"], utils.MinorUnits(payment.Amount))
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Callback amount mismatch!", nil)
	}

	rawParams, _ := json.Marshal(params)
	payment.GatewayTxnNo = params["vnp_TransactionNo"]
	payment.GatewayResponse = rawParams

	if params["vnp_ResponseCode"] == utils.VNPayCodeSuccess {
		now := time.Now()
		payment.Status = models.PaymentCompleted
		payment.PaidAt = &now
	} else {
		payment.Status = models.PaymentCancelled
		payment.Notes = "Gateway response code " + params["vnp_ResponseCode"]
	}

	if err := database.Database.Db.Save(&payment).Error; err != nil {
		log.Printf("Error saving VNPay callback result: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record callback!", nil)
	}

	if payment.Status == models.PaymentCompleted {
		var user models.User
		if database.Database.Db.First(&user, payment.UserID).Error == nil {
			utils.SendPaymentReceiptEmail(user.Email, user.Name, payment.Amount, string(payment.PaymentType))
		}
		return redirect("success")
	}

	return redirect("failed")
}
