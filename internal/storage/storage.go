// Package storage defines persistence contracts for contact inquiries.
package storage

import (
	"context"
	"errors"

	"modernwebagency.com/internal/models"
)

var (
	// ErrNotFound indicates a requested inquiry is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates an inquiry with the same id was stored before.
	ErrAlreadyExists = errors.New("record already exists")
)

// InquiryPage is one page of inquiries, newest first.
type InquiryPage struct {
	Inquiries     []models.Inquiry `json:"inquiries"`
	NextPageToken string           `json:"next_page_token,omitempty"`
}

// InquiryStore persists contact form submissions.
type InquiryStore interface {
	CreateInquiry(ctx context.Context, inquiry models.Inquiry) error
	GetInquiry(ctx context.Context, id string) (models.Inquiry, error)
	ListInquiries(ctx context.Context, pageSize int, pageToken string) (InquiryPage, error)
}
