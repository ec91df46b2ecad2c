package api

import (
	"github.com/raushankrgupta/intern-guide-backend/service"
)

// Handler bundles the services the HTTP routes depend on.
type Handler struct {
	auth    *service.AuthService
	profile *service.ProfileService
	chat    *service.ChatProxy
}

// NewHandler creates a Handler with its service dependencies injected.
func NewHandler(auth *service.AuthService, profile *service.ProfileService, chat *service.ChatProxy) *Handler {
	return &Handler{auth: auth, profile: profile, chat: chat}
}
