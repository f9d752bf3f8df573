package auth

import (
	"time"

	"github.com/google/uuid"
)

// Identity is a sign-in credential. Roles live elsewhere (admin profiles,
// super admins); an identity alone grants nothing.
type Identity struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `validate:"required,email"`
	PasswordHash string    `validate:"required"`
	CreatedAt    time.Time
}

func (Identity) TableName() string { return "identities" }
