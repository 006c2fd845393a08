package courses

import "time"

// Course is a catalog entry. Rating is nil until the course has review data.
type Course struct {
	ID              string    `json:"id"`
	TenantID        string    `json:"tenantId,omitempty"`
	Title           string    `json:"title"`
	Category        string    `json:"category"`
	InstructorID    string    `json:"instructorId"`
	Level           string    `json:"level"`
	Price           float64   `json:"price"`
	Rating          *float64  `json:"rating,omitempty"`
	EnrollmentCount int       `json:"enrollmentCount"`
	Published       bool      `json:"published"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Enrollment is one user-course enrollment with course attributes joined in,
// so the recommendation layer never re-fetches per course.
type Enrollment struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	CourseID     string     `json:"courseId"`
	Status       string     `json:"status"`
	Progress     float64    `json:"progress"`
	Category     string     `json:"category"`
	InstructorID string     `json:"instructorId"`
	Level        string     `json:"level"`
	EnrolledAt   time.Time  `json:"enrolledAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

// Enrollment statuses.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusDropped   = "dropped"
)
