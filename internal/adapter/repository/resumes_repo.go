package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"resume-builder/internal/domain"
)

// ResumesRepo stores resume documents. The editable content lives in a
// JSONB column; name and template id are copied out for listing.
type ResumesRepo struct {
	pool *pgxpool.Pool
}

func NewResumesRepo(pool *pgxpool.Pool) *ResumesRepo {
	return &ResumesRepo{pool: pool}
}

const (
	resumeColumns = `id, user_id, content, created_at, updated_at`

	insertResumeSQL = `INSERT INTO resumes (id, user_id, name, template_id, content, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`
	listResumesSQL = `SELECT ` + resumeColumns + ` FROM resumes
		WHERE user_id = $1 ORDER BY updated_at DESC`
	getResumeSQL = `SELECT ` + resumeColumns + ` FROM resumes
		WHERE id = $1 AND user_id = $2`
	updateResumeSQL = `UPDATE resumes SET name = $3, template_id = $4, content = $5, updated_at = $6
		WHERE id = $1 AND user_id = $2`
	deleteResumeSQL = `DELETE FROM resumes WHERE id = $1 AND user_id = $2`
)

func (r *ResumesRepo) Create(ctx context.Context, res *domain.Resume) error {
	content, err := json.Marshal(res.Resume)
	if err != nil {
		return fmt.Errorf("encode resume: %w", err)
	}
	_, err = r.pool.Exec(ctx, insertResumeSQL,
		res.ID, res.UserID, res.Name, res.TemplateID, content, res.CreatedAt, res.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert resume: %w", mapErr(err))
	}
	return nil
}

func (r *ResumesRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Resume, error) {
	rows, err := r.pool.Query(ctx, listResumesSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	defer rows.Close()

	out := []domain.Resume{}
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *res)
	}
	return out, rows.Err()
}

func (r *ResumesRepo) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Resume, error) {
	res, err := scanResume(r.pool.QueryRow(ctx, getResumeSQL, id, userID))
	if err != nil {
		return nil, mapErr(err)
	}
	return res, nil
}

func (r *ResumesRepo) Update(ctx context.Context, res *domain.Resume) error {
	content, err := json.Marshal(res.Resume)
	if err != nil {
		return fmt.Errorf("encode resume: %w", err)
	}
	tag, err := r.pool.Exec(ctx, updateResumeSQL,
		res.ID, res.UserID, res.Name, res.TemplateID, content, res.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ResumesRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, deleteResumeSQL, id, userID)
	if err != nil {
		return fmt.Errorf("delete resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanResume(row pgx.Row) (*domain.Resume, error) {
	var (
		res     domain.Resume
		content []byte
	)
	if err := row.Scan(&res.ID, &res.UserID, &content, &res.CreatedAt, &res.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(content, &res.Resume); err != nil {
		return nil, fmt.Errorf("decode resume %s: %w", res.ID, err)
	}
	return &res, nil
}
