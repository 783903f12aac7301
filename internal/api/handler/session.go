package handler

import (
	"net/http"

	"github.com/mcoot/foundry/internal/api/request"
	"github.com/mcoot/foundry/internal/api/response"
	"github.com/mcoot/foundry/internal/model"
	"github.com/mcoot/foundry/internal/services/identity"
)

// SessionHandler handles login, registration and the current session
type SessionHandler struct {
	identity *identity.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(identityService *identity.Service) *SessionHandler {
	return &SessionHandler{identity: identityService}
}

// Login handles POST /api/v1/session/login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decode(w, r, &req) {
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

	ok, err := h.identity.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}
	if !ok {
		WriteError(w, model.ErrInvalidCredentials)
		return
	}

	response.OK(w, response.SessionFromModel(h.identity.CurrentUser()))
}

// Register handles POST /api/v1/session/register. The new account is not
// signed in.
func (h *SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if !decode(w, r, &req) {
		return
	}

	user, err := h.identity.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, response.UserFromModel(user.Session()))
}

// Logout handles DELETE /api/v1/session
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.identity.Logout(r.Context()); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// Get handles GET /api/v1/session
func (h *SessionHandler) Get(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, response.SessionFromModel(h.identity.CurrentUser()))
}
