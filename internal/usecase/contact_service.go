package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/contact"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/store"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

type SubmitContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type ContactService struct {
	contactRepo contact.Repository
	validate    *validator.Validate
	status      store.Status
	logger      *logging.Logger
}

func NewContactService(contactRepo contact.Repository, status store.Status, logger *logging.Logger) *ContactService {
	if logger == nil {
		logger = logging.Default()
	}
	if status == nil {
		status = store.Attached()
	}
	return &ContactService{
		contactRepo: contactRepo,
		validate:    validator.New(),
		status:      status,
		logger:      logger,
	}
}

func (s *ContactService) Submit(ctx context.Context, input SubmitContactInput) (contact.Message, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContactService.Submit")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Subject = strings.TrimSpace(input.Subject)
	input.Message = strings.TrimSpace(input.Message)

	if input.Name == "" || input.Message == "" {
		return contact.Message{}, fmt.Errorf("%w: name and message are required", ErrInvalidInput)
	}
	if err := s.validate.Var(input.Email, "required,email,max=320"); err != nil {
		return contact.Message{}, fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}
	if !s.status.Available() {
		s.logger.ErrorContext(ctx, "cannot store contact message without store")
		return contact.Message{}, fmt.Errorf("submit contact message: %w", store.ErrUnavailable)
	}

	created, err := s.contactRepo.Create(ctx, contact.Message{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
		Status:  contact.StatusNew,
	})
	if err != nil {
		markUsecaseSpanError(span, err)
		s.logger.ErrorContext(ctx, "store contact message failed", "error", err)
		return contact.Message{}, fmt.Errorf("submit contact message: %w", err)
	}

	s.logger.InfoContext(ctx, "contact message received", "message_id", created.ID)
	return created, nil
}
