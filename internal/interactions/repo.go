package interactions

import (
	"context"
	"time"
)

// Repo defines persistence for interaction records. Insert is the only write;
// the store is append-only from this engine's point of view.
type Repo interface {
	Insert(ctx context.Context, rec Interaction) error
	ListSince(ctx context.Context, tenantID string, since time.Time) ([]Interaction, error)
}
