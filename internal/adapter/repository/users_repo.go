package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"resume-builder/internal/domain"
)

type UsersRepo struct {
	pool *pgxpool.Pool
}

func NewUsersRepo(pool *pgxpool.Pool) *UsersRepo {
	return &UsersRepo{pool: pool}
}

const (
	userColumns = `id, email, password_hash, google_id, name, experience_level,
	reset_token_hash, reset_expires, last_login, created_at, updated_at`

	insertUserSQL = `INSERT INTO users (` + userColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`
	updateUserSQL = `UPDATE users SET email = $2, password_hash = $3, google_id = $4, name = $5,
		experience_level = $6, reset_token_hash = $7, reset_expires = $8, last_login = $9, updated_at = $10
		WHERE id = $1`
)

func (r *UsersRepo) Create(ctx context.Context, u *domain.User) error {
	_, err := r.pool.Exec(ctx, insertUserSQL,
		u.ID, u.Email, nullable(u.PasswordHash), nullable(u.GoogleID), u.Name, nullable(string(u.ExperienceLevel)),
		nullable(u.ResetTokenHash), u.ResetExpires, u.LastLogin, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert user: %w", mapErr(err))
	}
	return nil
}

func (r *UsersRepo) Update(ctx context.Context, u *domain.User) error {
	tag, err := r.pool.Exec(ctx, updateUserSQL,
		u.ID, u.Email, nullable(u.PasswordHash), nullable(u.GoogleID), u.Name, nullable(string(u.ExperienceLevel)),
		nullable(u.ResetTokenHash), u.ResetExpires, u.LastLogin, u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update user: %w", mapErr(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) ByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.one(ctx, `WHERE id = $1`, id)
}

func (r *UsersRepo) ByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.one(ctx, `WHERE email = $1`, email)
}

func (r *UsersRepo) ByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	return r.one(ctx, `WHERE google_id = $1`, googleID)
}

func (r *UsersRepo) ByResetToken(ctx context.Context, digest string, now time.Time) (*domain.User, error) {
	return r.one(ctx, `WHERE reset_token_hash = $1 AND reset_expires > $2`, digest, now)
}

func (r *UsersRepo) one(ctx context.Context, where string, args ...interface{}) (*domain.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users `+where+` LIMIT 1`, args...))
	if err != nil {
		return nil, mapErr(err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u                                  domain.User
		password, google, level, resetHash *string
	)
	err := row.Scan(&u.ID, &u.Email, &password, &google, &u.Name, &level,
		&resetHash, &u.ResetExpires, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = deref(password)
	u.GoogleID = deref(google)
	u.ExperienceLevel = domain.ExperienceLevel(deref(level))
	u.ResetTokenHash = deref(resetHash)
	return &u, nil
}
