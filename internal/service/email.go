package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
}

func NewEmailService(apiKey, from, fromName string) EmailService {
	return &emailService{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
	}
}

func (s *emailService) SendRentalReminder(ctx context.Context, email, name, carName string) error {
	subject := "Rental Reminder: Your Car Rental Starts Today"
	body := fmt.Sprintf("Hello %s,\n\nYour rental for the car \"%s\" starts today.\n\nEnjoy your ride!\n\nBest regards,\nCarRental350 Service", name, carName)
	return s.send(email, name, subject, body)
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.from)
	recipient := mail.NewEmail(toName, to)

	message := mail.NewSingleEmailPlainText(from, subject, recipient, plainText)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
