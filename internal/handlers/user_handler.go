package handlers

import (
	"DocKeeper/internal/auth"
	"DocKeeper/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию и вход.
type UserHandler struct {
	UserService *service.UserService
	Tokens      *auth.TokenManager
	Logger      *zap.SugaredLogger
}

// NewUserHandler создаёт хендлер auth-маршрутов
func NewUserHandler(userService *service.UserService, tokens *auth.TokenManager, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{UserService: userService, Tokens: tokens, Logger: logger}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullname"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// Register регистрация нового пользователя, в ответе токен
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if req.Email == "" || req.Password == "" || req.FullName == "" {
		writeError(w, http.StatusBadRequest, "all fields (email, password, fullname) are required.")
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeError(w, http.StatusBadRequest, "user with this email already exists.")
			return
		}
		h.Logger.Errorw("Register: service error", "error", err)
		writeError(w, http.StatusInternalServerError, "server error during registration.")
		return
	}

	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		h.Logger.Errorw("Register: failed to issue token", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "server error during registration.")
		return
	}

	h.Logger.Infow("user registered", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, authResponse{Token: token, Message: "User registered successfully!"})
}

// Login вход по email и паролю, в ответе токен
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required.")
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// единый ответ для неизвестного email и неверного пароля
			writeError(w, http.StatusBadRequest, "invalid credentials.")
			return
		}
		h.Logger.Errorw("Login: service error", "error", err)
		writeError(w, http.StatusInternalServerError, "server error during login.")
		return
	}

	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		h.Logger.Errorw("Login: failed to issue token", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "server error during login.")
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Token: token, Message: "Logged in successfully!"})
}
