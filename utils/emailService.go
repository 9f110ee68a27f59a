package utils

import (
	"evrental/config"
	"fmt"
	"net/smtp"
	"strings"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: VoltRide <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all notification mails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #0B3D2E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #0B3D2E; line-height: 1.6; }
			.content h2 { color: #0B3D2E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #2EB872; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F5EE; padding: 15px; border-radius: 4px; border-left: 4px solid #2EB872; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>VOLTRIDE</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 VoltRide. All rights reserved.<br>
				Ride safe. Charge often.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Register
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to VoltRide"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>VoltRide</strong>! Your account has been created.</p>
		<p>Complete your KYC verification to start booking electric vehicles at any of our stations.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// 2. Password reset OTP
func SendOTPEmail(otp, email string) error {
	subject := "Your VoltRide Password Reset Code"
	body := fmt.Sprintf(`
		<p>Your One Time Password (OTP) is:</p>
		<h1 style="text-align: center; color: #2EB872; font-size: 40px; margin: 20px 0;">%s</h1>
		<p>The code expires in 5 minutes. Do not share this OTP with anyone.</p>
	`, otp)

	return SendEmail([]string{email}, subject, getEmailTemplate("Password Reset", body))
}

// 3. KYC approved
func SendKYCApprovedEmail(email, name string) {
	subject := "KYC Verification Approved"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your identity documents have been <strong>approved</strong>.</p>
		<p>You can now book any available vehicle.</p>
		<a href="#" class="btn">Browse Vehicles</a>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("KYC Approved", body))
}

// 4. KYC rejected
func SendKYCRejectedEmail(email, name, reason string) {
	subject := "KYC Verification Rejected"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Unfortunately, your identity verification was rejected.</p>
		<div style="color: #DC3545; font-weight: bold;">Reason: %s</div>
		<p>Please upload corrected documents and submit again.</p>
	`, name, reason)

	go SendEmail([]string{email}, subject, getEmailTemplate("KYC Rejected", body))
}

// 5. Booking confirmed
func SendBookingConfirmedEmail(email, name, code, vehicleName, startDate string) {
	subject := "Booking Confirmed: " + code
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your booking <strong>%s</strong> for <strong>%s</strong> is confirmed.</p>
		<div class="info-box">
			<strong>Pickup:</strong> %s — bring your ID and driver's license to the station.
		</div>
	`, name, code, vehicleName, startDate)

	go SendEmail([]string{email}, subject, getEmailTemplate("Booking Confirmed", body))
}

// 6. Payment receipt
func SendPaymentReceiptEmail(email, name string, amount float64, paymentType string) {
	subject := "Payment Received"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We have received your %s payment of <strong>%.0f VND</strong>.</p>
		<p>Thank you for riding with VoltRide.</p>
	`, name, paymentType, amount)

	go SendEmail([]string{email}, subject, getEmailTemplate("Payment Receipt", body))
}

// 7. Refund processed
func SendRefundEmail(email, name string, amount float64) {
	subject := "Refund Processed"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>A refund of <strong>%.0f VND</strong> has been issued to you.</p>
		<p>Depending on your payment method it may take a few business days to arrive.</p>
	`, name, amount)

	go SendEmail([]string{email}, subject, getEmailTemplate("Refund Processed", body))
}
