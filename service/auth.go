package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/raushankrgupta/intern-guide-backend/models"
	"github.com/raushankrgupta/intern-guide-backend/store"
)

// EmailSender sends a transactional email. utils.SendEmail satisfies this;
// tests substitute a recorder.
type EmailSender func(toName, toEmail, subject, textContent, htmlContent string) error

// AuthService implements signup and login over a UserStore.
type AuthService struct {
	store     store.UserStore
	sendEmail EmailSender // optional welcome email, nil disables
}

func NewAuthService(s store.UserStore, sendEmail EmailSender) *AuthService {
	return &AuthService{store: s, sendEmail: sendEmail}
}

// SignupInput is the payload for AuthService.Signup.
type SignupInput struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Academics []string `json:"academics"`
	Hobbies   []string `json:"hobbies"`
	Skills    []string `json:"skills"`
}

// Signup validates the input, checks email uniqueness, hashes the password
// and stores the new user. Returns the new user's id.
//
// The uniqueness pre-check only exists to produce a friendly error; the
// store's unique email index is what actually prevents duplicates, so a
// concurrent signup racing past the check still fails with ErrEmailTaken.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (string, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return "", fmt.Errorf("%w: name, email, and password are required", models.ErrValidation)
	}

	if _, err := s.store.FindByEmail(ctx, in.Email); err == nil {
		return "", models.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		Name:      in.Name,
		Email:     in.Email,
		Password:  string(hash),
		Academics: emptyIfNil(in.Academics),
		Hobbies:   emptyIfNil(in.Hobbies),
		Skills:    emptyIfNil(in.Skills),
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.store.Insert(ctx, user)
	if err != nil {
		return "", err
	}

	// Welcome email is best-effort; signup already succeeded.
	if s.sendEmail != nil {
		if emailErr := s.sendEmail(in.Name, in.Email, "Welcome to Intern Guide",
			fmt.Sprintf("Hi %s, your account is ready. Log in and ask the assistant about internships that fit your profile.", in.Name),
			fmt.Sprintf("<p>Hi <strong>%s</strong>, your account is ready. Log in and ask the assistant about internships that fit your profile.</p>", in.Name),
		); emailErr != nil {
			log.Printf("Failed to send welcome email to %s: %v", in.Email, emailErr)
		}
	}

	return id, nil
}

// Login verifies the credentials and returns the user's id and display name.
func (s *AuthService) Login(ctx context.Context, email, password string) (id, name string, err error) {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", models.ErrUnauthorized
	}

	return user.ID.Hex(), user.Name, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
