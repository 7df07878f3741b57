package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"modernwebagency.com/internal/models"
	"modernwebagency.com/internal/services"
)

const maxContactBody = 64 << 10

// ContactHandler accepts contact form submissions
type ContactHandler struct {
	contactService *services.ContactService
	logger         *zap.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(cs *services.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{contactService: cs, logger: logger}
}

type contactResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type validationResponse struct {
	Error  string            `json:"error"`
	Errors map[string]string `json:"errors"`
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var form models.ContactForm
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inquiry, err := h.contactService.Submit(r.Context(), form)
	var formErr *services.FormError
	switch {
	case errors.As(err, &formErr):
		respondJSON(w, http.StatusUnprocessableEntity, validationResponse{
			Error:  "Validation failed",
			Errors: formErr.Errors,
		})
		return
	case err != nil:
		h.logger.Error("submit contact form", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to send message. Please try again.")
		return
	}

	respondJSON(w, http.StatusCreated, contactResponse{
		ID:      inquiry.ID,
		Message: "Thank you for your message! We'll get back to you within 24 hours.",
	})
}
