package domain

import (
	"time"

	"github.com/google/uuid"
)

type ExperienceLevel string

const (
	EntryLevel   ExperienceLevel = "entry-level"
	Intermediate ExperienceLevel = "intermediate"
	Advanced     ExperienceLevel = "advanced"
)

func (l ExperienceLevel) Valid() bool {
	switch l {
	case EntryLevel, Intermediate, Advanced:
		return true
	}
	return false
}

type User struct {
	ID              uuid.UUID       `json:"id"`
	Email           string          `json:"email"`
	PasswordHash    string          `json:"-"`
	GoogleID        string          `json:"-"`
	Name            string          `json:"name,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel,omitempty"`
	ResetTokenHash  string          `json:"-"`
	ResetExpires    *time.Time      `json:"-"`
	LastLogin       time.Time       `json:"lastLogin"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// GoogleOnly reports whether the account can only sign in through Google.
func (u *User) GoogleOnly() bool { return u.PasswordHash == "" }

// PublicProfile is the user representation returned to clients.
type PublicProfile struct {
	ID              uuid.UUID       `json:"id"`
	Email           string          `json:"email"`
	Name            string          `json:"name,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastLogin       time.Time       `json:"lastLogin"`
}

func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		ExperienceLevel: u.ExperienceLevel,
		CreatedAt:       u.CreatedAt,
		LastLogin:       u.LastLogin,
	}
}
