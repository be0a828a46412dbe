package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/auth"
	"resume-builder/internal/domain"
	"resume-builder/internal/mail"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

// Renderer turns a resume into PDF bytes. Implemented by render.Generator
// and render.HTMLRenderer.
type Renderer interface {
	GeneratePDF(ctx context.Context, rec *model.Resume, layout render.Layout) ([]byte, error)
}

// UserStore persists accounts. Lookups return domain.ErrNotFound when
// nothing matches; Create returns domain.ErrConflict for a taken e-mail.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
	ByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ByEmail(ctx context.Context, email string) (*domain.User, error)
	ByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
	// ByResetToken finds the user holding digest with an expiry after now.
	ByResetToken(ctx context.Context, digest string, now time.Time) (*domain.User, error)
}

// ResumeStore persists resumes. Every call is scoped to the owner; a
// resume of another user behaves as missing.
type ResumeStore interface {
	Create(ctx context.Context, r *domain.Resume) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Resume, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.Resume, error)
	Update(ctx context.Context, r *domain.Resume) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Stats(ctx context.Context, userID uuid.UUID, recent int) (domain.ResumeStats, error)
}

type Mailer interface {
	SendPasswordReset(ctx context.Context, p mail.PasswordReset) error
}

type GoogleProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (auth.GoogleProfile, error)
}
