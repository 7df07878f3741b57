package services

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"modernwebagency.com/internal/models"
	"modernwebagency.com/internal/storage"
	"modernwebagency.com/internal/validation"
)

// FormError carries the per-field messages of a rejected contact form
type FormError struct {
	Errors map[string]string
}

func (e *FormError) Error() string {
	fields := slices.Sorted(maps.Keys(e.Errors))
	return "invalid contact form: " + strings.Join(fields, ", ")
}

// ContactService validates and stores contact form submissions
type ContactService struct {
	store     storage.InquiryStore
	validator *validation.Validator
	logger    *zap.Logger
	now       func() time.Time
}

// NewContactService creates a new ContactService
func NewContactService(store storage.InquiryStore, v *validation.Validator, logger *zap.Logger) *ContactService {
	return &ContactService{store: store, validator: v, logger: logger, now: time.Now}
}

// Submit validates form and stores it as a new inquiry. An invalid form
// yields a *FormError and nothing is stored.
func (s *ContactService) Submit(ctx context.Context, form models.ContactForm) (models.Inquiry, error) {
	if res := s.validator.ValidateContactForm(form); !res.Valid {
		return models.Inquiry{}, &FormError{Errors: res.Errors}
	}

	inquiry := models.Inquiry{
		ID:        uuid.NewString(),
		Form:      form,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}
	if err := s.store.CreateInquiry(ctx, inquiry); err != nil {
		return models.Inquiry{}, fmt.Errorf("store inquiry: %w", err)
	}
	s.logger.Info("inquiry received",
		zap.String("id", inquiry.ID),
		zap.String("project_type", string(form.ProjectType)),
		zap.String("budget", form.Budget.Label()),
	)
	return inquiry, nil
}

// Get returns a stored inquiry
func (s *ContactService) Get(ctx context.Context, id string) (models.Inquiry, error) {
	inquiry, err := s.store.GetInquiry(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return models.Inquiry{}, fmt.Errorf("inquiry %q: %w", id, ErrNotFound)
	}
	return inquiry, err
}

// List returns one page of stored inquiries, newest first
func (s *ContactService) List(ctx context.Context, pageSize int, pageToken string) (storage.InquiryPage, error) {
	return s.store.ListInquiries(ctx, pageSize, pageToken)
}
