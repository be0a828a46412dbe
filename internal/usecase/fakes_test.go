package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/auth"
	"resume-builder/internal/domain"
	"resume-builder/internal/mail"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

type memUsers struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]domain.User
	fails error
}

func newMemUsers() *memUsers { return &memUsers{byID: map[uuid.UUID]domain.User{}} }

func (m *memUsers) Create(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, other := range m.byID {
		if other.Email == u.Email {
			return domain.ErrConflict
		}
	}
	m.byID[u.ID] = *u
	return nil
}

func (m *memUsers) Update(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fails != nil {
		return m.fails
	}
	if _, ok := m.byID[u.ID]; !ok {
		return domain.ErrNotFound
	}
	m.byID[u.ID] = *u
	return nil
}

func (m *memUsers) find(match func(domain.User) bool) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if match(u) {
			u := u
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memUsers) ByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	return m.find(func(u domain.User) bool { return u.ID == id })
}

func (m *memUsers) ByEmail(_ context.Context, email string) (*domain.User, error) {
	return m.find(func(u domain.User) bool { return u.Email == email })
}

func (m *memUsers) ByGoogleID(_ context.Context, id string) (*domain.User, error) {
	return m.find(func(u domain.User) bool { return u.GoogleID != "" && u.GoogleID == id })
}

func (m *memUsers) ByResetToken(_ context.Context, digest string, now time.Time) (*domain.User, error) {
	return m.find(func(u domain.User) bool {
		return u.ResetTokenHash != "" && u.ResetTokenHash == digest && u.ResetExpires != nil && u.ResetExpires.After(now)
	})
}

type memResumes struct {
	mu   sync.Mutex
	rows map[uuid.UUID]domain.Resume
}

func newMemResumes() *memResumes { return &memResumes{rows: map[uuid.UUID]domain.Resume{}} }

func (m *memResumes) Create(_ context.Context, r *domain.Resume) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[r.ID] = *r
	return nil
}

func (m *memResumes) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Resume{}
	for _, r := range m.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (m *memResumes) Get(_ context.Context, userID, id uuid.UUID) (*domain.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok || r.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return &r, nil
}

func (m *memResumes) Update(_ context.Context, r *domain.Resume) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.rows[r.ID]
	if !ok || cur.UserID != r.UserID {
		return domain.ErrNotFound
	}
	m.rows[r.ID] = *r
	return nil
}

func (m *memResumes) Delete(_ context.Context, userID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok || r.UserID != userID {
		return domain.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memResumes) Stats(ctx context.Context, userID uuid.UUID, recent int) (domain.ResumeStats, error) {
	all, _ := m.ListByUser(ctx, userID)
	stats := domain.ResumeStats{TotalResumes: len(all), RecentResumes: []domain.ResumeSummary{}}
	for i, r := range all {
		if i == recent {
			break
		}
		stats.RecentResumes = append(stats.RecentResumes, domain.ResumeSummary{
			ID: r.ID, Name: r.Name, TemplateID: r.TemplateID, UpdatedAt: r.UpdatedAt,
		})
	}
	return stats, nil
}

type sentMail struct {
	mu   sync.Mutex
	msgs []mail.PasswordReset
	err  error
}

func (s *sentMail) SendPasswordReset(_ context.Context, p mail.PasswordReset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.msgs = append(s.msgs, p)
	return nil
}

type fakeGoogle struct {
	profile auth.GoogleProfile
	err     error
}

func (g fakeGoogle) AuthCodeURL(state string) string {
	return "https://accounts.example.com/o/oauth2/auth?state=" + state
}

func (g fakeGoogle) Exchange(context.Context, string) (auth.GoogleProfile, error) {
	return g.profile, g.err
}

type renderCall struct {
	rec    model.Resume
	layout render.Layout
}

type fakeRenderer struct {
	calls []renderCall
	err   error
}

func (f *fakeRenderer) GeneratePDF(_ context.Context, rec *model.Resume, layout render.Layout) ([]byte, error) {
	f.calls = append(f.calls, renderCall{rec: rec.Clone(), layout: layout})
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4 test"), nil
}

func mustUUID() uuid.UUID { return uuid.New() }
