package http

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"resume-builder/internal/catalog"
	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
)

// Accounts is the account use case the handlers drive.
type Accounts interface {
	Signup(ctx context.Context, email, password string) (usecase.Session, error)
	Login(ctx context.Context, email, password string) (usecase.Session, error)
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	SetExperienceLevel(ctx context.Context, u *domain.User, level domain.ExperienceLevel) (*domain.User, error)
	Logout(ctx context.Context, u *domain.User) error
	GoogleAuthURL() (string, error)
	GoogleCallback(ctx context.Context, state, code string) string
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
	VerifyResetToken(ctx context.Context, token string) (string, error)
}

// Resumes is the resume use case the handlers drive.
type Resumes interface {
	Create(ctx context.Context, userID uuid.UUID, content model.Resume) (*domain.Resume, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Resume, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.Resume, error)
	Update(ctx context.Context, userID, id uuid.UUID, content model.Resume) (*domain.Resume, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Duplicate(ctx context.Context, userID, id uuid.UUID) (*domain.Resume, error)
	Stats(ctx context.Context, userID uuid.UUID) (domain.ResumeStats, error)
	Download(ctx context.Context, owner *domain.User, id uuid.UUID) (usecase.Document, error)
}

type Handler struct {
	accounts  Accounts
	resumes   Resumes
	templates *catalog.Catalog
	logger    *slog.Logger
}

func NewHandler(a Accounts, r Resumes, templates *catalog.Catalog) *Handler {
	return &Handler{accounts: a, resumes: r, templates: templates, logger: slog.Default()}
}
