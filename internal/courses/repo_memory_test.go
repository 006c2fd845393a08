package courses

import (
	"context"
	"errors"
	"testing"
	"time"
)

func seededMemoryRepo() *MemoryRepo {
	repo := NewMemoryRepo()
	repo.PutCourse(Course{ID: "a", Category: "data", InstructorID: "i1", Level: "beginner", Published: true, CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)})
	repo.PutCourse(Course{ID: "b", Category: "web", InstructorID: "i2", Level: "intermediate", Published: true, CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)})
	repo.PutCourse(Course{ID: "draft", Category: "web", Published: false})
	repo.PutEnrollment(Enrollment{ID: "e1", UserID: "u1", CourseID: "a", Status: StatusCompleted, Progress: 100})
	repo.PutEnrollment(Enrollment{ID: "e2", UserID: "u2", CourseID: "a", Status: StatusActive, Progress: 40})
	repo.PutEnrollment(Enrollment{ID: "e3", UserID: "u2", CourseID: "b", Status: StatusActive, Progress: 60})
	repo.PutEnrollment(Enrollment{ID: "e4", UserID: "u3", CourseID: "b", Status: StatusActive, Progress: 20})
	return repo
}

func TestMemoryRepoListPublishedNewestFirst(t *testing.T) {
	repo := seededMemoryRepo()

	got, err := repo.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 published courses, got %d", len(got))
	}
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("expected newest first, got %s, %s", got[0].ID, got[1].ID)
	}
}

func TestMemoryRepoGetByID(t *testing.T) {
	repo := seededMemoryRepo()

	course, err := repo.GetByID(context.Background(), "a")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if course.Category != "data" {
		t.Fatalf("unexpected course: %+v", course)
	}

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepoJoinsCourseAttributes(t *testing.T) {
	repo := seededMemoryRepo()

	got, err := repo.ListUserEnrollments(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListUserEnrollments: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 enrollment, got %d", len(got))
	}
	if got[0].Category != "data" || got[0].InstructorID != "i1" || got[0].Level != "beginner" {
		t.Fatalf("expected joined course attributes, got %+v", got[0])
	}
}

func TestMemoryRepoPeerEnrollments(t *testing.T) {
	repo := seededMemoryRepo()

	got, err := repo.ListPeerEnrollments(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListPeerEnrollments: %v", err)
	}
	// u2 shares course a, so all of u2's rows come back. u3 shares nothing
	// with u1 and is excluded.
	if len(got) != 2 {
		t.Fatalf("expected 2 peer enrollments, got %d", len(got))
	}
	for _, e := range got {
		if e.UserID != "u2" {
			t.Fatalf("unexpected peer %s", e.UserID)
		}
	}
}
