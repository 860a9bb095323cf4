package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"contas/internal/models"
)

var (
	ErrWrongPassword = errors.New("senha inválida")
	ErrUserNotFound  = errors.New("usuário não encontrado")
	ErrEmailExists   = errors.New("e-mail já cadastrado")
)

// hashCost is the bcrypt work factor applied to every new password.
const hashCost = 12

// UserStorage defines the persistence operations the authenticator needs.
// This keeps the authenticator independent of the storage implementation.
type UserStorage interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// PasswordAuthenticator implements password-based authentication using bcrypt.
type PasswordAuthenticator struct {
	storage UserStorage
}

// NewPasswordAuthenticator creates a new password-based authenticator.
func NewPasswordAuthenticator(storage UserStorage) *PasswordAuthenticator {
	return &PasswordAuthenticator{storage: storage}
}

// HashPassword hashes the plaintext with a random per-call salt.
// Two hashes of the same plaintext are never equal.
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plaintext matches the stored hash.
// A mismatch is a normal negative result, not an error path.
func VerifyPassword(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}

// Register hashes the password and persists a new user account.
// Returns ErrEmailExists if the email already has an account.
func (a *PasswordAuthenticator) Register(ctx context.Context, name, email string, age int, image, password string) (*models.User, error) {
	existing, err := a.storage.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.NewUser(name, email, age, image, hashed)
	if err := a.storage.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Authenticate verifies the email and password, returning the user if valid.
// ErrUserNotFound and ErrWrongPassword are distinguished so the HTTP layer
// can map them to different status codes.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := a.storage.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !VerifyPassword(password, user.PasswordHash) {
		return nil, ErrWrongPassword
	}
	return user, nil
}
