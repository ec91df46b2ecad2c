package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	MongoURI          string
	MongoDatabase     string
	Port              string
	GroqAPIKey        string
	GroqAPIURL        string
	SendGridAPIKey    string
	SendGridFromEmail string
	FrontendURL       string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	MongoURI = os.Getenv("MONGO_URI")
	if MongoURI == "" {
		MongoURI = "mongodb://localhost:27017/"
	}

	MongoDatabase = os.Getenv("MONGO_DB")
	if MongoDatabase == "" {
		MongoDatabase = "internguide"
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "5000"
	}

	GroqAPIKey = os.Getenv("GROQ_API_KEY")

	GroqAPIURL = os.Getenv("GROQ_API_URL")
	if GroqAPIURL == "" {
		GroqAPIURL = "https://api.groq.com/openai/v1/chat/completions"
	}

	SendGridAPIKey = os.Getenv("SENDGRID_API_KEY")

	SendGridFromEmail = os.Getenv("SENDGRID_FROM_EMAIL")
	if SendGridFromEmail == "" {
		SendGridFromEmail = "no-reply@internguide.app"
	}

	FrontendURL = os.Getenv("FRONTEND_URL")
	if FrontendURL == "" {
		FrontendURL = "*"
	}
}
