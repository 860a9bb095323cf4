package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
//
// PasswordHash is write-only from the API's perspective: it is stored and
// compared server-side but never serialized into a response body.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"_id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the user's email address (unique, used as the login key).
	Email string `json:"email"`

	// Age in years.
	Age int `json:"age"`

	// Image is the filename of the uploaded profile picture.
	Image string `json:"image"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"createdAt"`
}

// NewUser builds a User with a generated ID and creation timestamp.
func NewUser(name, email string, age int, image, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Age:          age,
		Image:        image,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}
