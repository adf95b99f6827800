// services/notification_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"beautybar-backend/models"
	"beautybar-backend/utils"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

type NotificationService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	var client *twilio.RestClient
	if accountSid != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	}

	return &NotificationService{db: db, client: client}
}

// SendSMS delivers a message to a Nigerian mobile number via Twilio.
// Returns true only when the gateway accepted the message. Failures are
// logged and recorded, never returned: a missed text must not fail the
// request that triggered it.
func (s *NotificationService) SendSMS(phone, kind, message string) bool {
	to := "+" + utils.FormatNigerianPhone(phone)

	if s.client == nil {
		log.Println("Twilio not configured, skipping SMS")
		s.logAttempt("sms", kind, to, message, "skipped", "twilio not configured")
		return false
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send SMS to %s: %v", to, err)
		s.logAttempt("sms", kind, to, message, "failed", err.Error())
		return false
	}
	if resp.Sid != nil {
		log.Printf("SMS sent to %s, SID: %s", to, *resp.Sid)
	}
	s.logAttempt("sms", kind, to, message, "sent", "")
	return true
}

// SendPasswordResetEmail mails the reset link. The token only ever leaves
// the server through this channel.
func (s *NotificationService) SendPasswordResetEmail(toEmail, userName, resetToken string) bool {
	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "https://beautybar609.com"
	}
	resetLink := fmt.Sprintf("%s/admin?reset_token=%s", frontendURL, resetToken)

	body := fmt.Sprintf(`<html><body style="font-family:Arial,sans-serif;background:#050505;color:#F9F1D8;padding:40px;">
<div style="max-width:600px;margin:0 auto;background:#0F0F0F;padding:40px;border:1px solid #333;">
<h1 style="color:#D4AF37;">BeautyBar609</h1>
<h2>Password Reset Request</h2>
<p style="color:#ccc;">Hi %s,</p>
<p style="color:#ccc;">We received a request to reset your password. Click the button below to create a new password:</p>
<div style="text-align:center;margin:30px 0;">
<a href="%s" style="background:#D4AF37;color:#050505;padding:15px 30px;text-decoration:none;font-weight:bold;">Reset Password</a>
</div>
<p style="color:#888;font-size:14px;">This link expires in 1 hour. If you didn't request this reset, you can safely ignore this email.</p>
</div></body></html>`, userName, resetLink)

	return s.sendEmail(toEmail, "Reset Your BeautyBar609 Password", body, "password_reset")
}

// SendBookingAlertEmail notifies the salon inbox about a new home booking.
func (s *NotificationService) SendBookingAlertEmail(booking models.HomeBooking, smsSent bool) bool {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = os.Getenv("SMTP_FROM")
	}
	if adminEmail == "" {
		log.Println("No admin email configured, skipping booking alert")
		s.logAttempt("email", "booking_alert", "", "", "skipped", "no admin email configured")
		return false
	}

	smsNote := "No"
	if smsSent {
		smsNote = "Yes"
	}
	email := booking.Email
	if email == "" {
		email = "Not provided"
	}
	notes := booking.Notes
	if notes == "" {
		notes = "None"
	}

	body := fmt.Sprintf(`<html><body style="font-family:Arial,sans-serif;background:#050505;color:#F9F1D8;padding:20px;">
<div style="max-width:600px;margin:0 auto;background:#0F0F0F;padding:30px;border:1px solid #333;">
<h1 style="color:#D4AF37;">New Home Service Booking!</h1>
<p><strong>Client:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Service:</strong> %s</p>
<p><strong>Date:</strong> %s</p>
<p><strong>Time:</strong> %s</p>
<p><strong>Address:</strong> %s</p>
<p><strong>Notes:</strong> %s</p>
<p><strong>SMS Sent:</strong> %s</p>
</div></body></html>`,
		booking.Name, booking.Phone, email, booking.Service,
		booking.PreferredDate, booking.PreferredTime, booking.Address, notes, smsNote)

	subject := "New Home Service Booking - " + booking.Name
	return s.sendEmail(adminEmail, subject, body, "booking_alert")
}

func (s *NotificationService) sendEmail(to, subject, htmlBody, kind string) bool {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Println("SMTP not configured, skipping email")
		s.logAttempt("email", kind, to, subject, "skipped", "smtp not configured")
		return false
	}

	port := 587
	if env := os.Getenv("SMTP_PORT"); env != "" {
		if p, err := strconv.Atoi(env); err == nil {
			port = p
		}
	}
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@beautybar609.com"
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(host, port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
	if err := dialer.DialAndSend(msg); err != nil {
		log.Printf("Failed to send %s email to %s: %v", kind, to, err)
		s.logAttempt("email", kind, to, subject, "failed", err.Error())
		return false
	}

	log.Printf("Email sent to %s (%s)", to, kind)
	s.logAttempt("email", kind, to, subject, "sent", "")
	return true
}

func (s *NotificationService) logAttempt(channel, kind, recipient, message, status, errorMsg string) {
	if s.db == nil {
		return
	}
	entry := models.NotificationLog{
		Channel:      channel,
		Kind:         kind,
		Recipient:    recipient,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now().UTC(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("Failed to log %s notification: %v", channel, err)
	}
}
