package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/raushankrgupta/intern-guide-backend/models"
	"github.com/raushankrgupta/intern-guide-backend/service"
	"github.com/raushankrgupta/intern-guide-backend/utils"
)

const storeTimeout = 10 * time.Second

// LoginRequest represents the payload for user login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupHandler handles user registration
func (h *Handler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Signup API]")

	var req service.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	userID, err := h.auth.Signup(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrValidation):
			utils.RespondError(w, &logMessageBuilder, "Name, email, and password are required", http.StatusBadRequest)
		case errors.Is(err, models.ErrEmailTaken):
			utils.RespondError(w, &logMessageBuilder, "Email already registered", http.StatusBadRequest)
		default:
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Signup error: %v", err))
			utils.RespondError(w, &logMessageBuilder, "Signup failed", http.StatusInternalServerError)
		}
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("User created with ID: %s", userID))
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"userId":  userID,
		"message": "User created successfully",
	})
}

// LoginHandler handles user login
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Login API]")

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		utils.RespondError(w, &logMessageBuilder, "Email and password are required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	userID, userName, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			utils.RespondError(w, &logMessageBuilder, "User not found", http.StatusNotFound)
		case errors.Is(err, models.ErrUnauthorized):
			utils.RespondError(w, &logMessageBuilder, "Incorrect password", http.StatusUnauthorized)
		default:
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Login error: %v", err))
			utils.RespondError(w, &logMessageBuilder, "Login failed", http.StatusInternalServerError)
		}
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Login successful for user %s", userID))
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"userId":   userID,
		"userName": userName,
		"message":  "Login successful",
	})
}
