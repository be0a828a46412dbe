package usecase

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/auth"
	"resume-builder/internal/domain"
)

type authFixture struct {
	svc    *AuthService
	users  *memUsers
	mail   *sentMail
	tokens *auth.Tokens
	now    time.Time
}

func newAuthFixture(t *testing.T, google GoogleProvider) *authFixture {
	t.Helper()
	f := &authFixture{
		users:  newMemUsers(),
		mail:   &sentMail{},
		tokens: auth.NewTokens("test-secret", time.Hour),
		now:    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	f.svc = NewAuthService(f.users, f.tokens, google, f.mail, "http://localhost:3000/")
	f.svc.now = func() time.Time { return f.now }
	return f
}

func TestSignupAndLogin(t *testing.T) {
	f := newAuthFixture(t, nil)
	ctx := context.Background()

	sess, err := f.svc.Signup(ctx, "  Ada@Example.com ", "engine42")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", sess.User.Email)
	assert.NotEmpty(t, sess.Token)

	id, err := f.tokens.Parse(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.User.ID, id)

	_, err = f.svc.Signup(ctx, "ada@example.com", "another1")
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.EqualError(t, err, "user with this email already exists")

	f.now = f.now.Add(time.Hour)
	sess, err = f.svc.Login(ctx, "ADA@example.com", "engine42")
	require.NoError(t, err)
	assert.Equal(t, f.now, sess.User.LastLogin)

	_, err = f.svc.Login(ctx, "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.svc.Login(ctx, "nobody@example.com", "engine42")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginGoogleOnlyAccount(t *testing.T) {
	f := newAuthFixture(t, nil)
	require.NoError(t, f.users.Create(context.Background(), &domain.User{
		ID: mustUUID(), Email: "g@example.com", GoogleID: "g-1", Name: "G",
	}))
	_, err := f.svc.Login(context.Background(), "g@example.com", "whatever")
	assert.ErrorIs(t, err, ErrGoogleAccount)
}

func TestAuthenticate(t *testing.T) {
	f := newAuthFixture(t, nil)
	ctx := context.Background()
	sess, err := f.svc.Signup(ctx, "ada@example.com", "engine42")
	require.NoError(t, err)

	u, err := f.svc.Authenticate(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", u.Email)

	_, err = f.svc.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, ErrUnauthorized)

	orphan, err := f.tokens.Issue(mustUUID())
	require.NoError(t, err)
	_, err = f.svc.Authenticate(ctx, orphan)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSetExperienceLevel(t *testing.T) {
	f := newAuthFixture(t, nil)
	ctx := context.Background()
	sess, err := f.svc.Signup(ctx, "ada@example.com", "engine42")
	require.NoError(t, err)
	u, err := f.users.ByID(ctx, sess.User.ID)
	require.NoError(t, err)

	u, err = f.svc.SetExperienceLevel(ctx, u, domain.Advanced)
	require.NoError(t, err)
	assert.Equal(t, domain.Advanced, u.ExperienceLevel)

	stored, err := f.users.ByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Advanced, stored.ExperienceLevel)

	_, err = f.svc.SetExperienceLevel(ctx, u, "guru")
	assert.Error(t, err)
}

func TestGoogleCallback(t *testing.T) {
	profile := auth.GoogleProfile{ID: "g-42", Email: "Ada@Example.com", Name: "Ada Lovelace"}

	t.Run("creates user", func(t *testing.T) {
		f := newAuthFixture(t, fakeGoogle{profile: profile})
		ctx := context.Background()

		authURL, err := f.svc.GoogleAuthURL()
		require.NoError(t, err)
		u, err := url.Parse(authURL)
		require.NoError(t, err)
		state := u.Query().Get("state")
		require.NoError(t, f.tokens.VerifyState(state))

		target := f.svc.GoogleCallback(ctx, state, "code")
		token := callbackParam(t, target, "token")
		id, err := f.tokens.Parse(token)
		require.NoError(t, err)

		user, err := f.users.ByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.Equal(t, "g-42", user.GoogleID)
		assert.True(t, user.GoogleOnly())
	})

	t.Run("links existing account", func(t *testing.T) {
		f := newAuthFixture(t, fakeGoogle{profile: profile})
		ctx := context.Background()
		sess, err := f.svc.Signup(ctx, "ada@example.com", "engine42")
		require.NoError(t, err)

		state, err := f.tokens.IssueState()
		require.NoError(t, err)
		token := callbackParam(t, f.svc.GoogleCallback(ctx, state, "code"), "token")
		id, err := f.tokens.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, sess.User.ID, id)

		user, err := f.users.ByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "g-42", user.GoogleID)
		assert.Equal(t, "Ada Lovelace", user.Name)
		assert.False(t, user.GoogleOnly())
	})

	t.Run("bad state", func(t *testing.T) {
		f := newAuthFixture(t, fakeGoogle{profile: profile})
		target := f.svc.GoogleCallback(context.Background(), "forged", "code")
		assert.Equal(t, "google_auth_failed", callbackParam(t, target, "error"))
	})

	t.Run("exchange failure", func(t *testing.T) {
		f := newAuthFixture(t, fakeGoogle{err: errors.New("denied")})
		state, err := f.tokens.IssueState()
		require.NoError(t, err)
		target := f.svc.GoogleCallback(context.Background(), state, "code")
		assert.Equal(t, "google_auth_failed", callbackParam(t, target, "error"))
	})

	t.Run("disabled", func(t *testing.T) {
		f := newAuthFixture(t, nil)
		_, err := f.svc.GoogleAuthURL()
		assert.ErrorIs(t, err, ErrGoogleDisabled)
	})
}

func callbackParam(t *testing.T, target, key string) string {
	t.Helper()
	require.True(t, strings.HasPrefix(target, "http://localhost:3000/auth/callback?"), target)
	u, err := url.Parse(target)
	require.NoError(t, err)
	v := u.Query().Get(key)
	require.NotEmpty(t, v, "missing %s in %s", key, target)
	return v
}

func TestPasswordReset(t *testing.T) {
	f := newAuthFixture(t, nil)
	ctx := context.Background()
	_, err := f.svc.Signup(ctx, "ada@example.com", "engine42")
	require.NoError(t, err)

	require.NoError(t, f.svc.ForgotPassword(ctx, "nobody@example.com"))
	assert.Empty(t, f.mail.msgs)

	require.NoError(t, f.svc.ForgotPassword(ctx, "ADA@example.com"))
	require.Len(t, f.mail.msgs, 1)
	msg := f.mail.msgs[0]
	assert.Equal(t, "ada@example.com", msg.To)
	assert.Equal(t, auth.ResetTokenTTL, msg.ExpiresIn)

	link, err := url.Parse(msg.ResetURL)
	require.NoError(t, err)
	assert.Equal(t, "/reset-password", link.Path)
	token := link.Query().Get("token")
	require.Len(t, token, 64)

	stored, err := f.users.ByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, auth.HashResetToken(token), stored.ResetTokenHash)
	assert.NotEqual(t, token, stored.ResetTokenHash)

	email, err := f.svc.VerifyResetToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", email)

	require.NoError(t, f.svc.ResetPassword(ctx, token, "newpass1"))
	_, err = f.svc.Login(ctx, "ada@example.com", "newpass1")
	require.NoError(t, err)
	_, err = f.svc.Login(ctx, "ada@example.com", "engine42")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// single use
	assert.ErrorIs(t, f.svc.ResetPassword(ctx, token, "again123"), ErrInvalidResetToken)
	_, err = f.svc.VerifyResetToken(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestPasswordResetExpires(t *testing.T) {
	f := newAuthFixture(t, nil)
	ctx := context.Background()
	_, err := f.svc.Signup(ctx, "ada@example.com", "engine42")
	require.NoError(t, err)
	require.NoError(t, f.svc.ForgotPassword(ctx, "ada@example.com"))
	link, err := url.Parse(f.mail.msgs[0].ResetURL)
	require.NoError(t, err)

	f.now = f.now.Add(auth.ResetTokenTTL + time.Second)
	_, err = f.svc.VerifyResetToken(ctx, link.Query().Get("token"))
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestForgotPasswordMailFailureClearsToken(t *testing.T) {
	f := newAuthFixture(t, nil)
	ctx := context.Background()
	_, err := f.svc.Signup(ctx, "ada@example.com", "engine42")
	require.NoError(t, err)

	f.mail.err = errors.New("smtp down")
	err = f.svc.ForgotPassword(ctx, "ada@example.com")
	assert.ErrorIs(t, err, ErrMailDelivery)

	stored, err := f.users.ByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Empty(t, stored.ResetTokenHash)
	assert.Nil(t, stored.ResetExpires)
}

func TestForgotPasswordGoogleOnly(t *testing.T) {
	f := newAuthFixture(t, nil)
	require.NoError(t, f.users.Create(context.Background(), &domain.User{
		ID: mustUUID(), Email: "g@example.com", GoogleID: "g-1",
	}))
	assert.ErrorIs(t, f.svc.ForgotPassword(context.Background(), "g@example.com"), ErrGoogleAccount)
	assert.Empty(t, f.mail.msgs)
}
