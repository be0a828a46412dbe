package http

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
)

type fakeAccounts struct {
	mu        sync.Mutex
	byToken   map[string]*domain.User
	signupErr error
	loginErr  error
	forgotErr error
	googleURL string
	resetOK   string
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{byToken: map[string]*domain.User{}}
}

func (f *fakeAccounts) add(token string, u *domain.User) *domain.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byToken[token] = u
	return u
}

func (f *fakeAccounts) session(email string) usecase.Session {
	u := &domain.User{ID: uuid.New(), Email: email}
	return usecase.Session{User: u.Public(), Token: "tok-" + email}
}

func (f *fakeAccounts) Signup(_ context.Context, email, _ string) (usecase.Session, error) {
	if f.signupErr != nil {
		return usecase.Session{}, f.signupErr
	}
	return f.session(email), nil
}

func (f *fakeAccounts) Login(_ context.Context, email, _ string) (usecase.Session, error) {
	if f.loginErr != nil {
		return usecase.Session{}, f.loginErr
	}
	return f.session(email), nil
}

func (f *fakeAccounts) Authenticate(_ context.Context, token string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byToken[token]
	if !ok {
		return nil, usecase.ErrUnauthorized
	}
	return u, nil
}

func (f *fakeAccounts) SetExperienceLevel(_ context.Context, u *domain.User, level domain.ExperienceLevel) (*domain.User, error) {
	u.ExperienceLevel = level
	return u, nil
}

func (f *fakeAccounts) Logout(context.Context, *domain.User) error { return nil }

func (f *fakeAccounts) GoogleAuthURL() (string, error) {
	if f.googleURL == "" {
		return "", usecase.ErrGoogleDisabled
	}
	return f.googleURL, nil
}

func (f *fakeAccounts) GoogleCallback(_ context.Context, state, code string) string {
	return "http://localhost:3000/auth/callback?token=" + state + "-" + code
}

func (f *fakeAccounts) ForgotPassword(context.Context, string) error { return f.forgotErr }

func (f *fakeAccounts) ResetPassword(_ context.Context, token, _ string) error {
	if token != f.resetOK {
		return usecase.ErrInvalidResetToken
	}
	return nil
}

func (f *fakeAccounts) VerifyResetToken(_ context.Context, token string) (string, error) {
	if token != f.resetOK {
		return "", usecase.ErrInvalidResetToken
	}
	return "ada@example.com", nil
}

type fakeResumes struct {
	mu          sync.Mutex
	rows        map[uuid.UUID]*domain.Resume
	downloadErr error
	listErr     error
}

func newFakeResumes() *fakeResumes {
	return &fakeResumes{rows: map[uuid.UUID]*domain.Resume{}}
}

func (f *fakeResumes) Create(_ context.Context, userID uuid.UUID, content model.Resume) (*domain.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	r := &domain.Resume{ID: uuid.New(), UserID: userID, Resume: content, CreatedAt: now, UpdatedAt: now}
	f.rows[r.ID] = r
	return r, nil
}

func (f *fakeResumes) List(_ context.Context, userID uuid.UUID) ([]domain.Resume, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.Resume{}
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeResumes) Get(_ context.Context, userID, id uuid.UUID) (*domain.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rows[id]
	if !ok || r.UserID != userID {
		return nil, domain.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeResumes) Update(ctx context.Context, userID, id uuid.UUID, content model.Resume) (*domain.Resume, error) {
	r, err := f.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	r.Resume = content
	f.rows[id] = r
	return r, nil
}

func (f *fakeResumes) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := f.Get(ctx, userID, id); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, id)
	return nil
}

func (f *fakeResumes) Duplicate(ctx context.Context, userID, id uuid.UUID) (*domain.Resume, error) {
	r, err := f.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	content := r.Resume.Clone()
	content.Name += " (Copy)"
	return f.Create(ctx, userID, content)
}

func (f *fakeResumes) Stats(ctx context.Context, userID uuid.UUID) (domain.ResumeStats, error) {
	list, _ := f.List(ctx, userID)
	return domain.ResumeStats{TotalResumes: len(list), RecentResumes: []domain.ResumeSummary{}}, nil
}

func (f *fakeResumes) Download(ctx context.Context, owner *domain.User, id uuid.UUID) (usecase.Document, error) {
	r, err := f.Get(ctx, owner.ID, id)
	if err != nil {
		return usecase.Document{}, err
	}
	if f.downloadErr != nil {
		return usecase.Document{}, f.downloadErr
	}
	return usecase.Document{Filename: usecase.PDFFilename(r.Name), PDF: []byte("%PDF-1.4 fake")}, nil
}

var errBoom = errors.New("boom")
