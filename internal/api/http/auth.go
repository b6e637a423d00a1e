package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/skillforge/backend/internal/api/service"
	"github.com/skillforge/backend/pkg/httpx"
)

type AuthHandler struct {
	Auth *service.AuthService
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type sessionResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	verrs, err := httpx.DecodeJSON(r, &req)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if verrs != nil {
		httpx.WriteValidationError(w, verrs)
		return
	}

	user, token, err := h.Auth.Register(r.Context(), req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		httpx.WriteError(w, http.StatusBadRequest, "User already exists with this email")
		return
	case err != nil:
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpx.WriteData(w, http.StatusCreated, sessionResponse{
		User:  toUserResponse(user),
		Token: token,
	})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	verrs, err := httpx.DecodeJSON(r, &req)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if verrs != nil {
		httpx.WriteValidationError(w, verrs)
		return
	}

	user, token, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	case err != nil:
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpx.WriteData(w, http.StatusOK, sessionResponse{
		User:  toUserResponse(user),
		Token: token,
	})
}

func (h *AuthHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserID(r.Context())

	user, err := h.Auth.Profile(r.Context(), userID)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteError(w, http.StatusNotFound, "User not found")
		return
	case err != nil:
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpx.WriteData(w, http.StatusOK, map[string]any{"user": toUserResponse(user)})
}

type updateProfileRequest struct {
	Name            string `json:"name" validate:"omitempty,min=2,max=50"`
	Email           string `json:"email" validate:"omitempty,email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword" validate:"omitempty,min=6"`
}

func (h *AuthHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserID(r.Context())

	var req updateProfileRequest
	verrs, err := httpx.DecodeJSON(r, &req)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if verrs != nil {
		httpx.WriteValidationError(w, verrs)
		return
	}

	user, err := h.Auth.UpdateProfile(r.Context(), userID, service.UpdateProfileParams{
		Name:            req.Name,
		Email:           req.Email,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	switch {
	case errors.Is(err, service.ErrCurrentPasswordRequired):
		httpx.WriteError(w, http.StatusBadRequest, "Current password is required to change password")
		return
	case errors.Is(err, service.ErrIncorrectPassword):
		httpx.WriteError(w, http.StatusBadRequest, "Current password is incorrect")
		return
	case errors.Is(err, service.ErrEmailTaken):
		httpx.WriteError(w, http.StatusBadRequest, "User already exists with this email")
		return
	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteError(w, http.StatusNotFound, "User not found")
		return
	case err != nil:
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpx.WriteDataMessage(w, http.StatusOK, "Profile updated successfully", map[string]any{
		"user": toUserResponse(user),
	})
}

type exportResponse struct {
	User       userResponse    `json:"user"`
	Skills     []skillResponse `json:"skills"`
	Goals      []goalResponse  `json:"goals"`
	ExportedAt time.Time       `json:"exportedAt"`
}

// HandleExport streams the full account snapshot as a downloadable JSON
// document. This endpoint intentionally skips the response envelope so the
// file is usable as-is.
func (h *AuthHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserID(r.Context())

	export, err := h.Auth.Export(r.Context(), userID)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="skillforge-data.json"`)
	httpx.WriteJSON(w, http.StatusOK, exportResponse{
		User:       toUserResponse(export.User),
		Skills:     toSkillResponses(export.Skills),
		Goals:      toGoalResponses(export.Goals),
		ExportedAt: export.ExportedAt,
	})
}

func (h *AuthHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserID(r.Context())

	if err := h.Auth.ResetProgress(r.Context(), userID); err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "All skills and learning goals have been deleted")
}

type deleteAccountRequest struct {
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserID(r.Context())

	var req deleteAccountRequest
	verrs, err := httpx.DecodeJSON(r, &req)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if verrs != nil {
		httpx.WriteValidationError(w, verrs)
		return
	}

	err = h.Auth.DeleteAccount(r.Context(), userID, req.Password)
	switch {
	case errors.Is(err, service.ErrIncorrectPassword):
		httpx.WriteError(w, http.StatusBadRequest, "Incorrect password")
		return
	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteError(w, http.StatusNotFound, "User not found")
		return
	case err != nil:
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Account deleted successfully")
}
