package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/raushankrgupta/intern-guide-backend/models"
	"github.com/raushankrgupta/intern-guide-backend/service"
	"github.com/raushankrgupta/intern-guide-backend/utils"
)

// ChatbotUserHandler returns the profile data the widget grounds its
// system prompt on. Failures come back as {success:false} envelopes so the
// widget can degrade to placeholder context.
func (h *Handler) ChatbotUserHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Chatbot User API]")

	userID := r.PathValue("userId")

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	user, err := h.chat.UserContext(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("User not found: %s", userID))
			utils.RespondJSON(w, http.StatusNotFound, map[string]interface{}{
				"success": false,
				"message": "User not found",
			})
		} else {
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Chatbot get user error: %v", err))
			utils.RespondJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"success": false,
				"message": "Failed to fetch user data",
			})
		}
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Fetched chatbot context for user %s", userID))
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"userData": user,
	})
}

// AskHandler relays the chat-completion payload to the LLM API. The
// response is always a {reply} envelope; upstream failures map to a 500
// with a fixed human-readable reply string.
func (h *Handler) AskHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Chatbot Ask API]")

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to read request body: %v", err))
		utils.RespondJSON(w, http.StatusInternalServerError, map[string]string{"reply": service.FallbackUpstreamError})
		return
	}

	// Parsed for logging only; the payload itself is relayed untouched.
	var chatReq models.ChatRequest
	if err := json.Unmarshal(payload, &chatReq); err == nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Relaying %d message(s) for model %s", len(chatReq.Messages), chatReq.Model))
	}

	result := h.chat.Ask(r.Context(), payload)
	switch result.Kind {
	case service.ReplyUpstreamError:
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Upstream failure: %v", result.Err))
		utils.RespondJSON(w, http.StatusInternalServerError, map[string]string{"reply": result.Reply})
	case service.ReplyEmpty:
		utils.AddToLogMessage(&logMessageBuilder, "Upstream returned no reply content")
		utils.RespondJSON(w, http.StatusOK, map[string]string{"reply": result.Reply})
	default:
		utils.AddToLogMessage(&logMessageBuilder, "Relayed reply to client")
		utils.RespondJSON(w, http.StatusOK, map[string]string{"reply": result.Reply})
	}
}
