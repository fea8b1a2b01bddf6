package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/talentdesk/internal/config"
	"github.com/jonathan/talentdesk/internal/logging"
	"github.com/jonathan/talentdesk/internal/types"
)

// AuthHandler exchanges admin credentials for a session token.
type AuthHandler struct {
	admin      *config.AdminConfig
	jwtService *JWTService
	log        *logging.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(admin *config.AdminConfig, jwtService *JWTService, log *logging.Logger) *AuthHandler {
	return &AuthHandler{admin: admin, jwtService: jwtService, log: log}
}

// Login handles admin login requests.
//
// @Summary      Log in as the admin reviewer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      types.LoginRequest  true  "Credentials"
// @Success      200   {object}  types.LoginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.write(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		h.write(w, http.StatusBadRequest, map[string]string{"error": errorMessage(err)})
		return
	}

	if !h.admin.Authenticate(req.Username, req.Password) {
		h.log.Warn("failed login", "username", req.Username, "remote", r.RemoteAddr)
		err := &ErrInvalidCredentials{}
		h.write(w, HTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}

	token, expiresAt, err := h.jwtService.GenerateToken(h.admin.Username, types.RoleAdmin)
	if err != nil {
		h.log.Error("failed to generate token", "error", err)
		h.write(w, http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
		return
	}

	h.write(w, http.StatusOK, types.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Username:  h.admin.Username,
		Role:      types.RoleAdmin,
	})
}

func (h *AuthHandler) write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error("failed to encode JSON response", "error", err)
	}
}
