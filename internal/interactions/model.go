package interactions

import "time"

// Interaction types. The set is closed; anything else is rejected at the
// Record boundary because a malformed type corrupts downstream analytics.
const (
	TypeView     = "view"
	TypeClick    = "click"
	TypeWishlist = "wishlist"
	TypeEnroll   = "enroll"
	TypeDismiss  = "dismiss"
)

var validTypes = map[string]bool{
	TypeView:     true,
	TypeClick:    true,
	TypeWishlist: true,
	TypeEnroll:   true,
	TypeDismiss:  true,
}

// ValidType reports whether t is a recognized interaction type.
func ValidType(t string) bool {
	return validTypes[t]
}

// Interaction is one append-only record of a user acting on a shown
// recommendation. Once written it is never mutated or deleted by this engine.
type Interaction struct {
	ID             string    `json:"id"`
	TenantID       string    `json:"tenantId,omitempty"`
	UserID         string    `json:"userId"`
	CourseID       string    `json:"courseId"`
	Type           string    `json:"interactionType"`
	AlgorithmUsed  string    `json:"algorithmUsed,omitempty"`
	Score          *float64  `json:"recommendationScore,omitempty"`
	Reason         string    `json:"reason,omitempty"`
	SessionID      string    `json:"sessionId,omitempty"`
	PageContext    string    `json:"pageContext,omitempty"`
	PositionInList *int      `json:"positionInList,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
