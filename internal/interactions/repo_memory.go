package interactions

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory append-only implementation of Repo.
type MemoryRepo struct {
	mu      sync.RWMutex
	records []Interaction
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Insert appends one interaction record.
func (r *MemoryRepo) Insert(ctx context.Context, rec Interaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
	return nil
}

// ListSince returns records created at or after since, in insertion order.
func (r *MemoryRepo) ListSince(ctx context.Context, tenantID string, since time.Time) ([]Interaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Interaction
	for _, rec := range r.records {
		if rec.CreatedAt.Before(since) {
			continue
		}
		if tenantID != "" && rec.TenantID != tenantID {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
