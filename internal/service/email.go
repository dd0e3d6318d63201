package service

import (
	"context"
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host, port, username, password, from string) EmailService {
	p, _ := strconv.Atoi(port)
	return &emailService{
		host:     host,
		port:     p,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendContactConfirmation(ctx context.Context, email, name, subject string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Grey Stone - Message received")

	body := fmt.Sprintf("Hello %s,\n\nWe received your message:\nSubject: %s\n\nWe will reply soon.\n\n- Grey Stone", name, subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send contact confirmation: %w", err)
	}

	return nil
}

func (s *emailService) SendPaymentReminder(ctx context.Context, email, name string, orderID int32, amount int64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Grey Stone - Payment reminder for order #%d", orderID))

	body := fmt.Sprintf("Hello %s,\n\nOrder #%d has an outstanding payment of %d MNT.\n\nPlease complete the payment from the checkout page, or reply to this email if you have already paid.\n\n- Grey Stone", name, orderID, amount)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send payment reminder: %w", err)
	}

	return nil
}
