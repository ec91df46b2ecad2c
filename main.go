package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/raushankrgupta/intern-guide-backend/api"
	"github.com/raushankrgupta/intern-guide-backend/config"
	"github.com/raushankrgupta/intern-guide-backend/service"
	"github.com/raushankrgupta/intern-guide-backend/store"
	"github.com/raushankrgupta/intern-guide-backend/utils"
	"github.com/raushankrgupta/intern-guide-backend/web"
)

func main() {
	config.LoadConfig()

	// Initialize MongoDB
	client, err := store.ConnectMongo(config.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	users := store.NewMongo(client, config.MongoDatabase)

	// The unique email index is what makes signup's check-then-insert safe.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	authService := service.NewAuthService(users, utils.SendEmail)
	profileService := service.NewProfileService(users)
	chatProxy := service.NewChatProxy(users, config.GroqAPIURL, config.GroqAPIKey)
	handler := api.NewHandler(authService, profileService, chatProxy)

	// CORS Middleware
	corsMiddleware := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", config.FrontendURL)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next(w, r)
		}
	}

	mux := http.NewServeMux()

	// Auth routes
	mux.HandleFunc("POST /api/auth/signup", corsMiddleware(handler.SignupHandler))
	mux.HandleFunc("POST /api/auth/login", corsMiddleware(handler.LoginHandler))

	// User data routes
	mux.HandleFunc("GET /api/user/{userId}", corsMiddleware(handler.GetUserHandler))
	mux.HandleFunc("PUT /api/user/{userId}", corsMiddleware(handler.UpdateUserHandler))
	mux.HandleFunc("DELETE /api/user/{userId}", corsMiddleware(handler.DeleteUserHandler))

	// Chatbot routes
	mux.HandleFunc("GET /api/chatbot/user/{userId}", corsMiddleware(handler.ChatbotUserHandler))
	mux.HandleFunc("POST /api/chatbot/ask", corsMiddleware(handler.AskHandler))

	// Preflight for all API routes
	mux.HandleFunc("OPTIONS /api/", corsMiddleware(func(w http.ResponseWriter, r *http.Request) {}))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Serve the embedded chatbot widget
	mux.Handle("GET /widget/", http.StripPrefix("/widget/", http.FileServerFS(web.Assets)))

	port := config.Port
	fmt.Printf("Server starting on port %s...\n", port)
	if err := http.ListenAndServe(":"+port, utils.LatencyMiddleware(mux)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
