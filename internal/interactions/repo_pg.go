package interactions

import (
	"context"
	"database/sql"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Insert appends one interaction record.
func (r *PGRepo) Insert(ctx context.Context, rec Interaction) error {
	const query = `
INSERT INTO interactions (
    id,
    tenant_id,
    user_id,
    course_id,
    interaction_type,
    algorithm_used,
    recommendation_score,
    reason,
    session_id,
    page_context,
    position_in_list,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	var score sql.NullFloat64
	if rec.Score != nil {
		score = sql.NullFloat64{Float64: *rec.Score, Valid: true}
	}
	var position sql.NullInt32
	if rec.PositionInList != nil {
		position = sql.NullInt32{Int32: int32(*rec.PositionInList), Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		rec.ID,
		nullableString(rec.TenantID),
		rec.UserID,
		rec.CourseID,
		rec.Type,
		nullableString(rec.AlgorithmUsed),
		score,
		rec.Reason,
		rec.SessionID,
		rec.PageContext,
		position,
		rec.CreatedAt,
	)
	return err
}

// ListSince returns records created at or after since, oldest first. An empty
// tenantID matches all tenants.
func (r *PGRepo) ListSince(ctx context.Context, tenantID string, since time.Time) ([]Interaction, error) {
	const query = `
SELECT id, tenant_id, user_id, course_id, interaction_type, algorithm_used,
       recommendation_score, reason, session_id, page_context, position_in_list, created_at
FROM interactions
WHERE created_at >= $1
  AND ($2 = '' OR tenant_id = $2)
ORDER BY created_at, id`

	rows, err := r.DB.QueryContext(ctx, query, since, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Interaction
	for rows.Next() {
		var rec Interaction
		var tenant sql.NullString
		var algorithm sql.NullString
		var score sql.NullFloat64
		var position sql.NullInt32
		if err := rows.Scan(
			&rec.ID,
			&tenant,
			&rec.UserID,
			&rec.CourseID,
			&rec.Type,
			&algorithm,
			&score,
			&rec.Reason,
			&rec.SessionID,
			&rec.PageContext,
			&position,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		if tenant.Valid {
			rec.TenantID = tenant.String
		}
		if algorithm.Valid {
			rec.AlgorithmUsed = algorithm.String
		}
		if score.Valid {
			rec.Score = &score.Float64
		}
		if position.Valid {
			p := int(position.Int32)
			rec.PositionInList = &p
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)
