package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/errs"
)

const tokenTTL = 24 * time.Hour

type authHandler struct {
	responder    Responder
	logger       zerolog.Logger
	username     string
	passwordHash []byte
	secret       []byte
}

func newAuthHandler(cfg map[string]string) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		username:     config.GetString(cfg, "ADMIN_USERNAME", ""),
		passwordHash: []byte(config.GetString(cfg, "ADMIN_PASSWORD_HASH", "")),
		secret:       []byte(config.GetString(cfg, "JWT_SECRET", "")),
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login verifies the admin credentials and issues a signed bearer token that
// the auth middleware accepts on mutating routes.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.username == "" || len(h.passwordHash) == 0 || len(h.secret) == 0 {
			h.logger.Error().Msg("admin credentials or JWT secret not configured")
			h.responder.WriteError(w, errs.NewInternalError("authentication is not configured"))
			return
		}

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("login", err))
			return
		}

		usernameMatch := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.username)) == 1
		passwordErr := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(req.Password))
		if !usernameMatch || passwordErr != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		now := time.Now()
		claims := jwt.RegisteredClaims{
			Subject:   req.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		}

		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to issue token"))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"token": signed})
	}
}
