package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

const (
	stateTTL     = 10 * time.Minute
	statePurpose = "oauth-state"
)

type accessClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256 signed JWTs.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns an access token carrying the user id in the userId claim.
func (t *Tokens) Issue(userID uuid.UUID) (string, error) {
	now := t.now()
	claims := accessClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies an access token and returns its user id.
func (t *Tokens) Parse(signed string) (uuid.UUID, error) {
	var claims accessClaims
	if err := t.parse(signed, &claims); err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad userId claim", ErrInvalidToken)
	}
	return id, nil
}

// IssueState returns a short-lived signed value for the OAuth state
// parameter, so the callback can be checked without server-side sessions.
func (t *Tokens) IssueState() (string, error) {
	now := t.now()
	claims := jwt.RegisteredClaims{
		Subject:   statePurpose,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(stateTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *Tokens) VerifyState(state string) error {
	var claims jwt.RegisteredClaims
	if err := t.parse(state, &claims); err != nil {
		return err
	}
	if claims.Subject != statePurpose {
		return fmt.Errorf("%w: not a state token", ErrInvalidToken)
	}
	return nil
}

func (t *Tokens) parse(signed string, claims jwt.Claims) error {
	_, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now), jwt.WithExpirationRequired())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return nil
}
