package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{apiKey: apiKey, fromEmail: fromEmail, fromName: fromName}
}

func (s *emailService) SendMoneyRequestNotice(ctx context.Context, email, username, teamName string, amountCents int64, reason string) error {
	subject := fmt.Sprintf("Contribution requested by %s", teamName)
	body := fmt.Sprintf("Hello %s,\n\nYour team %s asks you to contribute %.2f to the team wallet.", username, teamName, float64(amountCents)/100)
	if reason != "" {
		body += fmt.Sprintf("\n\nReason: %s", reason)
	}
	body += "\n\nOpen your dashboard to approve or reject the request."
	return s.send(email, username, subject, body)
}

func (s *emailService) SendRequestResolvedNotice(ctx context.Context, email, username, memberName string, approved bool, amountCents int64) error {
	verdict := "approved"
	if !approved {
		verdict = "rejected"
	}
	subject := fmt.Sprintf("Contribution request %s", verdict)
	body := fmt.Sprintf("Hello %s,\n\n%s %s your request for %.2f.", username, memberName, verdict, float64(amountCents)/100)
	return s.send(email, username, subject, body)
}

func (s *emailService) SendFriendRequestNotice(ctx context.Context, email, username, fromName string) error {
	subject := fmt.Sprintf("%s sent you a friend request", fromName)
	body := fmt.Sprintf("Hello %s,\n\n%s wants to add you as a friend. Open your dashboard to respond.", username, fromName)
	return s.send(email, username, subject, body)
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

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
