package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/auth"
	"resume-builder/internal/domain"
	"resume-builder/internal/mail"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrGoogleAccount      = errors.New("this account was created with Google, please use Google login")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrGoogleDisabled     = errors.New("google login is not configured")
	ErrMailDelivery       = errors.New("failed to send reset email, please try again later")
)

// Session is returned after a successful sign up or login.
type Session struct {
	User  domain.PublicProfile `json:"user"`
	Token string               `json:"token"`
}

type AuthService struct {
	users       UserStore
	tokens      *auth.Tokens
	google      GoogleProvider
	mailer      Mailer
	frontendURL string
	now         func() time.Time
	logger      *slog.Logger
}

// NewAuthService wires the account flows. google may be nil when Google
// login is not configured.
func NewAuthService(users UserStore, tokens *auth.Tokens, google GoogleProvider, mailer Mailer, frontendURL string) *AuthService {
	return &AuthService{
		users:       users,
		tokens:      tokens,
		google:      google,
		mailer:      mailer,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		now:         time.Now,
		logger:      slog.Default(),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) session(u *domain.User) (Session, error) {
	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return Session{}, err
	}
	return Session{User: u.Public(), Token: token}, nil
}

func (s *AuthService) Signup(ctx context.Context, email, password string) (Session, error) {
	email = normalizeEmail(email)
	if _, err := s.users.ByEmail(ctx, email); err == nil {
		return Session{}, fmt.Errorf("user with this email %w", domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return Session{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return Session{}, err
	}
	now := s.now()
	u := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		LastLogin:    now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return Session{}, err
	}
	s.logger.Info("user signed up", "user_id", u.ID)
	return s.session(u)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	u, err := s.users.ByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, domain.ErrNotFound) {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, err
	}
	if u.GoogleOnly() {
		return Session{}, ErrGoogleAccount
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return Session{}, ErrInvalidCredentials
	}
	if err := s.touch(ctx, u); err != nil {
		return Session{}, err
	}
	return s.session(u)
}

// Authenticate resolves a bearer token to its user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	id, err := s.tokens.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	u, err := s.users.ByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: user no longer exists", ErrUnauthorized)
	}
	return u, err
}

func (s *AuthService) SetExperienceLevel(ctx context.Context, u *domain.User, level domain.ExperienceLevel) (*domain.User, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("invalid experience level %q", level)
	}
	u.ExperienceLevel = level
	u.UpdatedAt = s.now()
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Logout only records activity; tokens are discarded by the client.
func (s *AuthService) Logout(ctx context.Context, u *domain.User) error {
	return s.touch(ctx, u)
}

func (s *AuthService) touch(ctx context.Context, u *domain.User) error {
	now := s.now()
	u.LastLogin = now
	u.UpdatedAt = now
	return s.users.Update(ctx, u)
}

// GoogleAuthURL returns the consent page URL with a signed state value.
func (s *AuthService) GoogleAuthURL() (string, error) {
	if s.google == nil {
		return "", ErrGoogleDisabled
	}
	state, err := s.tokens.IssueState()
	if err != nil {
		return "", err
	}
	return s.google.AuthCodeURL(state), nil
}

// GoogleCallback completes the OAuth flow and returns the frontend URL to
// redirect to, carrying either a token or an error code.
func (s *AuthService) GoogleCallback(ctx context.Context, state, code string) string {
	token, reason := s.googleLogin(ctx, state, code)
	q := url.Values{}
	if reason != "" {
		q.Set("error", reason)
	} else {
		q.Set("token", token)
	}
	return s.frontendURL + "/auth/callback?" + q.Encode()
}

func (s *AuthService) googleLogin(ctx context.Context, state, code string) (token, reason string) {
	if s.google == nil {
		return "", "google_auth_failed"
	}
	if err := s.tokens.VerifyState(state); err != nil || code == "" {
		s.logger.Warn("google callback rejected", "error", err)
		return "", "google_auth_failed"
	}
	profile, err := s.google.Exchange(ctx, code)
	if err != nil {
		s.logger.Error("google exchange failed", "error", err)
		return "", "google_auth_failed"
	}
	u, err := s.findOrCreateGoogleUser(ctx, profile)
	if err != nil {
		s.logger.Error("google user lookup failed", "error", err)
		return "", "callback_processing_failed"
	}
	token, err = s.tokens.Issue(u.ID)
	if err != nil {
		return "", "callback_processing_failed"
	}
	return token, ""
}

// findOrCreateGoogleUser matches by Google id, then links an account with
// the same e-mail, then creates a new one.
func (s *AuthService) findOrCreateGoogleUser(ctx context.Context, p auth.GoogleProfile) (*domain.User, error) {
	u, err := s.users.ByGoogleID(ctx, p.ID)
	if err == nil {
		return u, s.touch(ctx, u)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	email := normalizeEmail(p.Email)
	u, err = s.users.ByEmail(ctx, email)
	if err == nil {
		u.GoogleID = p.ID
		if u.Name == "" {
			u.Name = p.Name
		}
		s.logger.Info("linked google account", "user_id", u.ID)
		return u, s.touch(ctx, u)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := s.now()
	u = &domain.User{
		ID:        uuid.New(),
		Email:     email,
		GoogleID:  p.ID,
		Name:      p.Name,
		LastLogin: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	s.logger.Info("created google user", "user_id", u.ID)
	return u, nil
}

// ForgotPassword sends a reset link when the account exists. Unknown
// addresses succeed silently so callers cannot tell which accounts exist.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	u, err := s.users.ByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if u.GoogleOnly() {
		return ErrGoogleAccount
	}

	token, digest, err := auth.NewResetToken()
	if err != nil {
		return err
	}
	expires := s.now().Add(auth.ResetTokenTTL)
	u.ResetTokenHash = digest
	u.ResetExpires = &expires
	if err := s.users.Update(ctx, u); err != nil {
		return err
	}

	err = s.mailer.SendPasswordReset(ctx, mail.PasswordReset{
		To:        u.Email,
		Name:      u.Name,
		ResetURL:  s.frontendURL + "/reset-password?token=" + url.QueryEscape(token),
		ExpiresIn: auth.ResetTokenTTL,
	})
	if err != nil {
		s.logger.Error("password reset email failed", "user_id", u.ID, "error", err)
		u.ResetTokenHash, u.ResetExpires = "", nil
		if uerr := s.users.Update(ctx, u); uerr != nil {
			s.logger.Error("clear reset token", "user_id", u.ID, "error", uerr)
		}
		return fmt.Errorf("%w: %w", ErrMailDelivery, err)
	}
	return nil
}

func (s *AuthService) userByResetToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, ErrInvalidResetToken
	}
	u, err := s.users.ByResetToken(ctx, auth.HashResetToken(token), s.now())
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrInvalidResetToken
	}
	return u, err
}

func (s *AuthService) ResetPassword(ctx context.Context, token, password string) error {
	u, err := s.userByResetToken(ctx, token)
	if err != nil {
		return err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	u.ResetTokenHash, u.ResetExpires = "", nil
	u.UpdatedAt = s.now()
	if err := s.users.Update(ctx, u); err != nil {
		return err
	}
	s.logger.Info("password reset", "user_id", u.ID)
	return nil
}

// VerifyResetToken returns the e-mail of the account a token belongs to.
func (s *AuthService) VerifyResetToken(ctx context.Context, token string) (string, error) {
	u, err := s.userByResetToken(ctx, token)
	if err != nil {
		return "", err
	}
	return u.Email, nil
}
