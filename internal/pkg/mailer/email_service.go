package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendOrderConfirmation(toEmail, orderId string, total float64, currency string) error
	SendSwapApproved(toEmail string, weekStart string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendOrderConfirmation(toEmail, orderId string, total float64, currency string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your FreshSprout order is confirmed")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Thanks for your order!</h2>
			<p>Order <strong>%s</strong> is confirmed.</p>
			<p>Total: <strong>%.2f %s</strong></p>
			<p>Your greens will be harvested fresh and delivered on the next delivery day.</p>
		</div>
	`, orderId, total, currency)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send order confirmation to %s: %w", toEmail, err)
	}
	return nil
}

func (s *emailService) SendSwapApproved(toEmail string, weekStart string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Fresh Swap was approved")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Fresh Swap approved</h2>
			<p>Your replacement pack for the week of %s is on the way with your next delivery.</p>
		</div>
	`, weekStart)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send swap approval to %s: %w", toEmail, err)
	}
	return nil
}
