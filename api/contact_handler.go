package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/mail"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/services"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	send      func(ctx context.Context, msg services.ContactMessage) error
}

func newContactHandler(send func(ctx context.Context, msg services.ContactMessage) error) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		send:      send,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// submit validates the contact form and relays it by email. Fire and forget:
// the reply only reflects whether the send call itself succeeded.
func (h contactHandler) submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("contact", err))
			return
		}

		if req.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if req.Message == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("message"))
			return
		}
		if _, err := mail.ParseAddress(req.Email); err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("email", "invalid email address"))
			return
		}

		msg := services.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Message: req.Message,
		}

		if err := h.send(r.Context(), msg); err != nil {
			h.logger.Error().Err(err).Msg("failed to send contact email")
			h.responder.WriteError(w, errs.NewInternalError("Failed to send message. Please try again."))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"message": "Message sent successfully! I'll get back to you soon.",
		})
	}
}
