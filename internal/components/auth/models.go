package auth

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
)

type (
	User struct {
		ID           uuid.UUID `json:"id"`
		Username     string    `json:"username"`
		PasswordHash string    `json:"-"` // Never serialize password hash
		CreatedAt    time.Time `json:"created_at"`
	}

	RegisterRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	LoginResponse struct {
		Token   string `json:"token"`
		Message string `json:"message"`
	}

	MessageResponse struct {
		Message string `json:"message"`
	}
)

// Validate normalizes and enforces the registration contract. The username
// is trimmed first, so the length rule checks exactly the value that gets
// stored. Username must be 3-32 chars, password 8-72 chars (bcrypt ignores
// input past 72 bytes, so longer passwords would silently truncate).
func (r *RegisterRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	return validation.ValidateStruct(r,
		validation.Field(&r.Username, validation.Required, validation.Length(3, 32)),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 72)),
	)
}

// Validate rejects blank login payloads before any store lookup happens.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}
