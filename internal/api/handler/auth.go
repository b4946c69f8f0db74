package handler

import (
	"encoding/json"
	"net/http"

	"github.com/squadhelper/tryouts/internal/api/middleware"
	"github.com/squadhelper/tryouts/internal/api/request"
	"github.com/squadhelper/tryouts/internal/api/response"
	"github.com/squadhelper/tryouts/internal/model"
	"github.com/squadhelper/tryouts/internal/services/credstore"
	"github.com/squadhelper/tryouts/internal/services/otp"
	"github.com/squadhelper/tryouts/internal/services/session"
)

// AuthHandler handles account and session endpoints
type AuthHandler struct {
	sessions *session.Manager
	otp      *otp.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessions *session.Manager, otpService *otp.Service) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		otp:      otpService,
	}
}

// Register handles POST /api/v1/auth/register
//
// A successful registration logs the new account in immediately.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	sess, err := h.sessions.Register(r.Context(), credstore.RegisterParams{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     model.Role(req.Role),
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AuthResponseFromSession(sess))
}

// Login handles POST /api/v1/auth/login
//
// Valid credentials do not create a session yet; the caller receives a
// challenge to complete via Verify.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	challenge, err := h.otp.Begin(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ChallengeFromModel(challenge))
}

// Verify handles POST /api/v1/auth/verify
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.ChallengeID == "" {
		WriteError(w, NewInvalidRequestError("challenge_id is required"))
		return
	}

	sess, err := h.otp.Verify(r.Context(), req.ChallengeID, req.Code)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponseFromSession(sess))
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context()); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// GetMe handles GET /api/v1/auth/me
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())
	response.JSON(w, http.StatusOK, response.UserFromIdentity(sess.Identity))
}
