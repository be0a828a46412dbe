package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/catalog"
	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

const recentResumes = 5

type ResumeService struct {
	resumes  ResumeStore
	renderer Renderer
	catalog  *catalog.Catalog
	now      func() time.Time
	logger   *slog.Logger
}

func NewResumeService(resumes ResumeStore, renderer Renderer, cat *catalog.Catalog) *ResumeService {
	return &ResumeService{
		resumes:  resumes,
		renderer: renderer,
		catalog:  cat,
		now:      time.Now,
		logger:   slog.Default(),
	}
}

func (s *ResumeService) Create(ctx context.Context, userID uuid.UUID, content model.Resume) (*domain.Resume, error) {
	now := s.now()
	r := &domain.Resume{
		ID:        uuid.New(),
		UserID:    userID,
		Resume:    content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.Name = strings.TrimSpace(r.Name)
	if err := s.resumes.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create resume: %w", err)
	}
	return r, nil
}

// List returns the user's resumes, most recently updated first.
func (s *ResumeService) List(ctx context.Context, userID uuid.UUID) ([]domain.Resume, error) {
	return s.resumes.ListByUser(ctx, userID)
}

func (s *ResumeService) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Resume, error) {
	return s.resumes.Get(ctx, userID, id)
}

// Update replaces the content of a resume.
func (s *ResumeService) Update(ctx context.Context, userID, id uuid.UUID, content model.Resume) (*domain.Resume, error) {
	r, err := s.resumes.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	r.Resume = content
	r.Name = strings.TrimSpace(r.Name)
	r.UpdatedAt = s.now()
	if err := s.resumes.Update(ctx, r); err != nil {
		return nil, fmt.Errorf("update resume: %w", err)
	}
	return r, nil
}

func (s *ResumeService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.resumes.Delete(ctx, userID, id)
}

// Duplicate stores a copy of a resume named "<name> (Copy)".
func (s *ResumeService) Duplicate(ctx context.Context, userID, id uuid.UUID) (*domain.Resume, error) {
	src, err := s.resumes.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	content := src.Resume.Clone()
	content.Name += " (Copy)"
	return s.Create(ctx, userID, content)
}

func (s *ResumeService) Stats(ctx context.Context, userID uuid.UUID) (domain.ResumeStats, error) {
	return s.resumes.Stats(ctx, userID, recentResumes)
}

// Document is a rendered resume ready to be sent as a file.
type Document struct {
	Filename string
	PDF      []byte
}

// Download renders a resume of owner. The owner's e-mail fills in a
// missing contact e-mail on the rendered copy only.
func (s *ResumeService) Download(ctx context.Context, owner *domain.User, id uuid.UUID) (Document, error) {
	r, err := s.resumes.Get(ctx, owner.ID, id)
	if err != nil {
		return Document{}, err
	}

	content := r.Resume.Clone()
	if strings.TrimSpace(content.Contact.Email) == "" {
		content.Contact.Email = owner.Email
	}
	layout := s.layoutFor(content.TemplateID)

	start := s.now()
	pdf, err := s.renderer.GeneratePDF(ctx, &content, layout)
	if err != nil {
		return Document{}, err
	}
	s.logger.Info("resume rendered", "resume_id", r.ID, "layout", string(layout), "bytes", len(pdf), "took", s.now().Sub(start))
	return Document{Filename: PDFFilename(r.Name), PDF: pdf}, nil
}

func (s *ResumeService) layoutFor(templateID string) render.Layout {
	if s.catalog != nil {
		if t, ok := s.catalog.Lookup(templateID); ok {
			return render.ParseLayout(t.Layout)
		}
	}
	return render.Classic
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	unsafeInName  = regexp.MustCompile(`["\\/]`)
)

// PDFFilename derives the download file name from a resume name: runs of
// whitespace become underscores.
func PDFFilename(name string) string {
	base := unsafeInName.ReplaceAllString(name, "")
	base = whitespaceRun.ReplaceAllString(base, "_")
	if strings.Trim(base, "_") == "" {
		base = "resume"
	}
	return base + ".pdf"
}
