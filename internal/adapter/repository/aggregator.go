package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"

	"resume-builder/internal/domain"
)

// queryJSON runs a SQL that returns a single json value and unmarshals it
// into out.
func queryJSON(ctx context.Context, pool *pgxpool.Pool, out interface{}, sql string, args ...interface{}) error {
	var raw []byte
	if err := pool.QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// statsSQL builds the dashboard numbers in one round trip.
const statsSQL = `SELECT json_build_object(
	'totalResumes', (SELECT count(*) FROM resumes WHERE user_id = $1),
	'recentResumes', coalesce((
		SELECT json_agg(row_to_json(r))
		FROM (
			SELECT id, name, template_id AS "templateId", updated_at AS "updatedAt"
			FROM resumes WHERE user_id = $1
			ORDER BY updated_at DESC
			LIMIT $2
		) r
	), '[]'::json)
)`

// Stats counts a user's resumes and lists the most recently updated ones.
func (r *ResumesRepo) Stats(ctx context.Context, userID uuid.UUID, recent int) (domain.ResumeStats, error) {
	var stats domain.ResumeStats
	if err := queryJSON(ctx, r.pool, &stats, statsSQL, userID, recent); err != nil {
		return domain.ResumeStats{}, fmt.Errorf("resume stats: %w", err)
	}
	if stats.RecentResumes == nil {
		stats.RecentResumes = []domain.ResumeSummary{}
	}
	return stats, nil
}
