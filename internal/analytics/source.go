package analytics

import (
	"context"
	"database/sql"
	"time"

	"edurise-backend/internal/interactions"
)

// Source supplies interaction counts for a window. Implementations are
// read-only; the analytics layer never mutates interaction records.
type Source interface {
	BucketsSince(ctx context.Context, tenantID string, since time.Time) ([]Bucket, error)
}

// PGSource aggregates interaction counts in Postgres.
type PGSource struct {
	DB *sql.DB
}

// BucketsSince returns (algorithm, type) counts for records created at or
// after since. An empty tenantID matches all tenants.
func (s *PGSource) BucketsSince(ctx context.Context, tenantID string, since time.Time) ([]Bucket, error) {
	const query = `
SELECT COALESCE(algorithm_used, ''), interaction_type, COUNT(*)
FROM interactions
WHERE created_at >= $1
  AND ($2 = '' OR tenant_id = $2)
GROUP BY 1, 2
ORDER BY 1, 2`

	rows, err := s.DB.QueryContext(ctx, query, since, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Bucket
	for rows.Next() {
		var b Bucket
		if err := rows.Scan(&b.Algorithm, &b.Type, &b.Count); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// RepoSource adapts an interaction repo into a Source, counting in memory.
// Used in dev mode when no database is configured.
type RepoSource struct {
	Repo interactions.Repo
}

// BucketsSince counts records grouped by (algorithm, type).
func (s *RepoSource) BucketsSince(ctx context.Context, tenantID string, since time.Time) ([]Bucket, error) {
	records, err := s.Repo.ListSince(ctx, tenantID, since)
	if err != nil {
		return nil, err
	}
	type key struct{ algorithm, typ string }
	counts := make(map[key]int)
	for _, rec := range records {
		counts[key{rec.AlgorithmUsed, rec.Type}]++
	}
	out := make([]Bucket, 0, len(counts))
	for k, n := range counts {
		out = append(out, Bucket{Algorithm: k.algorithm, Type: k.typ, Count: n})
	}
	return out, nil
}

var (
	_ Source = (*PGSource)(nil)
	_ Source = (*RepoSource)(nil)
)
