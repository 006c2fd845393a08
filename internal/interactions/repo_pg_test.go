package interactions

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	score := 0.87
	position := 3
	rec := Interaction{
		ID:             "int-1",
		TenantID:       "tenant-a",
		UserID:         "u1",
		CourseID:       "c1",
		Type:           TypeClick,
		AlgorithmUsed:  "hybrid_multi",
		Score:          &score,
		Reason:         "Students with similar interests also enrolled in this course.",
		SessionID:      "s1",
		PageContext:    "home",
		PositionInList: &position,
		CreatedAt:      time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO interactions").
		WithArgs(
			rec.ID,
			rec.TenantID,
			rec.UserID,
			rec.CourseID,
			rec.Type,
			rec.AlgorithmUsed,
			sqlmock.AnyArg(), // recommendation_score
			rec.Reason,
			rec.SessionID,
			rec.PageContext,
			sqlmock.AnyArg(), // position_in_list
			rec.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Insert(context.Background(), rec); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListSince(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	since := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	created := since.Add(time.Hour)

	rows := sqlmock.NewRows([]string{
		"id", "tenant_id", "user_id", "course_id", "interaction_type", "algorithm_used",
		"recommendation_score", "reason", "session_id", "page_context", "position_in_list", "created_at",
	}).
		AddRow("int-1", "tenant-a", "u1", "c1", TypeView, "popularity_based", 0.5, "", "", "", nil, created).
		AddRow("int-2", nil, "u2", "c2", TypeEnroll, nil, nil, "", "", "", 2, created.Add(time.Minute))

	mock.ExpectQuery("SELECT id, tenant_id, user_id, course_id").
		WithArgs(since, "").
		WillReturnRows(rows)

	got, err := repo.ListSince(context.Background(), "", since)
	if err != nil {
		t.Fatalf("ListSince: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].AlgorithmUsed != "popularity_based" || got[0].Score == nil || *got[0].Score != 0.5 {
		t.Fatalf("unexpected first record: %+v", got[0])
	}
	if got[1].AlgorithmUsed != "" || got[1].Score != nil {
		t.Fatalf("null columns must map to zero values: %+v", got[1])
	}
	if got[1].PositionInList == nil || *got[1].PositionInList != 2 {
		t.Fatalf("expected position 2, got %v", got[1].PositionInList)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
