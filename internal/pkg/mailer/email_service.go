package mailer

import (
	"fmt"
	"time"

	"legal-assist-be/internal/entity"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendConsultationConfirmation(toEmail, fullName string, consultation *entity.Consultation) error
	SendConsultationCancellation(toEmail, fullName string, consultation *entity.Consultation) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: username,
		senderName:  senderName,
	}
}

func (s *emailService) SendConsultationConfirmation(toEmail, fullName string, consultation *entity.Consultation) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Consultation Request Was Received")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Consultation Request Received</h2>
			<p>Hi %s,</p>
			<p>We have received your consultation request with the following details:</p>
			<ul>
				<li><strong>Lawyer:</strong> %s</li>
				<li><strong>Practice Area:</strong> %s</li>
				<li><strong>Scheduled At:</strong> %s</li>
			</ul>
			<p>You will be notified once the lawyer confirms the appointment.</p>
			<p>This email is informational; no action is required.</p>
		</div>
	`, fullName, consultation.LawyerName, consultation.PracticeArea,
		consultation.ScheduledAt.Format(time.RFC1123))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return err
	}
	return nil
}

func (s *emailService) SendConsultationCancellation(toEmail, fullName string, consultation *entity.Consultation) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Consultation Was Cancelled")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Consultation Cancelled</h2>
			<p>Hi %s,</p>
			<p>Your consultation with %s (%s) scheduled for %s has been cancelled.</p>
			<p>You can book a new consultation at any time.</p>
		</div>
	`, fullName, consultation.LawyerName, consultation.PracticeArea,
		consultation.ScheduledAt.Format(time.RFC1123))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return err
	}
	return nil
}
