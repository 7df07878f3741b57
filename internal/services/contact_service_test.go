package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"modernwebagency.com/internal/models"
	"modernwebagency.com/internal/storage"
	"modernwebagency.com/internal/storage/sqlite"
	"modernwebagency.com/internal/validation"
)

type failingStore struct{ err error }

func (f failingStore) CreateInquiry(context.Context, models.Inquiry) error { return f.err }

func (f failingStore) GetInquiry(context.Context, string) (models.Inquiry, error) {
	return models.Inquiry{}, f.err
}

func (f failingStore) ListInquiries(context.Context, int, string) (storage.InquiryPage, error) {
	return storage.InquiryPage{}, f.err
}

func goodForm() models.ContactForm {
	return models.ContactForm{
		Name:        "Jane Smith",
		Email:       "jane@example.com",
		ProjectType: models.CategoryMobile,
		Budget:      models.Budget50KPlus,
		Message:     "We want a banking app for our members.",
		Timeline:    "6 months",
	}
}

func newContactService(t *testing.T) (*ContactService, *observer.ObservedLogs) {
	t.Helper()
	store, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	core, logs := observer.New(zapcore.InfoLevel)
	svc := NewContactService(store, validation.New(), zap.New(core))
	svc.now = func() time.Time { return time.Date(2026, time.May, 4, 10, 0, 0, 0, time.UTC) }
	return svc, logs
}

func TestContactServiceSubmit(t *testing.T) {
	svc, logs := newContactService(t)
	ctx := context.Background()

	inquiry, err := svc.Submit(ctx, goodForm())
	require.NoError(t, err)
	_, err = uuid.Parse(inquiry.ID)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.May, 4, 10, 0, 0, 0, time.UTC), inquiry.CreatedAt)

	stored, err := svc.Get(ctx, inquiry.ID)
	require.NoError(t, err)
	assert.Equal(t, inquiry, stored)

	page, err := svc.List(ctx, 10, "")
	require.NoError(t, err)
	assert.Len(t, page.Inquiries, 1)

	require.Equal(t, 1, logs.FilterMessage("inquiry received").Len())
	assert.Equal(t, "$50,000+", logs.All()[0].ContextMap()["budget"])
}

func TestContactServiceSubmitRejectsInvalidForm(t *testing.T) {
	svc, _ := newContactService(t)
	ctx := context.Background()

	form := goodForm()
	form.Email = "not-an-email"
	form.Message = "short"
	_, err := svc.Submit(ctx, form)

	var formErr *FormError
	require.True(t, errors.As(err, &formErr))
	assert.Equal(t, map[string]string{
		"email":   "Please enter a valid email address",
		"message": "Message must be at least 10 characters",
	}, formErr.Errors)
	assert.Equal(t, "invalid contact form: email, message", err.Error())

	page, err := svc.List(ctx, 10, "")
	require.NoError(t, err)
	assert.Empty(t, page.Inquiries)
}

func TestContactServiceGetMissing(t *testing.T) {
	svc, _ := newContactService(t)
	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContactServiceSubmitStoreFailure(t *testing.T) {
	boom := errors.New("disk full")
	svc := NewContactService(failingStore{err: boom}, validation.New(), zap.NewNop())

	_, err := svc.Submit(context.Background(), goodForm())
	assert.ErrorIs(t, err, boom)
}
