package users

import "time"

type User struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenantId,omitempty"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	PictureURL string    `json:"pictureUrl"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
