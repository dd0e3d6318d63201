package service

import (
	"context"
	"strings"

	"greystone-backend/internal/domain"
	"greystone-backend/internal/logger"
	"greystone-backend/internal/repository"
)

type contactService struct {
	contactRepo repository.ContactRepository
	emailSvc    EmailService
}

func NewContactService(contactRepo repository.ContactRepository, emailSvc EmailService) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		emailSvc:    emailSvc,
	}
}

// SubmitMessage stores a contact/quote message and sends a confirmation
// email. The email is best effort: a failed send is logged and the stored
// message is still returned, since the submission itself succeeded.
func (s *contactService) SubmitMessage(ctx context.Context, name, email, subject, message string) (*domain.ContactMessage, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	subject = strings.TrimSpace(subject)
	message = strings.TrimSpace(message)

	if name == "" || email == "" || message == "" {
		return nil, ErrInvalidInput
	}

	record := &domain.ContactMessage{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}
	if err := s.contactRepo.Create(ctx, record); err != nil {
		return nil, persistenceError(err)
	}

	if err := s.emailSvc.SendContactConfirmation(ctx, record.Email, record.Name, record.Subject); err != nil {
		logger.Warn("contact confirmation email not sent", "email", record.Email, "error", err)
	}

	return record, nil
}
