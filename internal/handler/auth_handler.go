package handler

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/yusufkecer/wellness-backend/internal/domain"
	"github.com/yusufkecer/wellness-backend/internal/middleware"
	"github.com/yusufkecer/wellness-backend/internal/repository"
)

const minPasswordLength = 6

type AuthHandler struct {
	jwtSecret string
	repo      *repository.AccountRepository
	logger    *zap.Logger
}

func NewAuthHandler(jwtSecret string, repo *repository.AccountRepository, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{jwtSecret: jwtSecret, repo: repo, logger: logger}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.TokenRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email, ok := h.validCredentials(w, req)
	if !ok {
		return
	}
	if len(req.Password) < minPasswordLength {
		writeError(w, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	userID, err := h.repo.Create(r.Context(), email, string(passwordHash))
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			writeError(w, http.StatusConflict, "email already exists")
			return
		}
		h.logger.Error("failed to create account", zap.Error(err))
		writeServiceError(w, err, "failed to create account")
		return
	}

	h.issueToken(w, http.StatusCreated, userID, email)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.TokenRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email, ok := h.validCredentials(w, req)
	if !ok {
		return
	}

	account, err := h.repo.GetByEmail(r.Context(), email)
	if err != nil {
		h.logger.Error("failed to look up account", zap.Error(err))
		writeServiceError(w, err, "failed to login")
		return
	}
	if account == nil {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	h.issueToken(w, http.StatusOK, account.ID, account.Email)
}

func (h *AuthHandler) validCredentials(w http.ResponseWriter, req domain.TokenRequest) (string, bool) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return "", false
	}
	at := strings.Index(email, "@")
	if at <= 0 || !strings.Contains(email[at:], ".") {
		writeError(w, http.StatusBadRequest, "invalid email format")
		return "", false
	}
	return email, true
}

func (h *AuthHandler) issueToken(w http.ResponseWriter, status int, userID, email string) {
	token, err := middleware.GenerateToken(userID, email, h.jwtSecret)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	writeJSON(w, status, domain.TokenResponse{Token: token, UserID: userID})
}
