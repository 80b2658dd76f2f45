// internal/recommend/service_test.go
package recommend

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seifbadreldinx/futureintern/internal/common/logger"
	"github.com/seifbadreldinx/futureintern/internal/matching"
	"github.com/seifbadreldinx/futureintern/internal/storage"
)

func newTestService(t *testing.T) (*Service, sqlmock.Sqlmock, *miniredis.Miniredis) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	engine, err := matching.New(matching.StrategyFuzzy, matching.DefaultWeights())
	require.NoError(t, err)

	log := logger.NewTestLogger(t)
	svc := NewService(storage.New(db, log), cache, engine, log, time.Minute, 10)
	return svc, mock, mr
}

func expectStudentQuery(mock sqlmock.Sqlmock, id string) {
	mock.ExpectQuery(`FROM students WHERE id`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "skills", "interests", "major", "location", "availability_hours",
		}).AddRow(id, `["python", "react", "sql"]`, "", "Computer Science", "cairo", 40.0))
}

func expectListingsQuery(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`FROM listings WHERE is_active = true`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "description", "requirements", "required_skills",
			"major", "location", "required_availability_hours",
		}).
			AddRow("l1", "Backend Intern", "python apis", "python, sql", `["python", "react"]`, "Computer Science", "cairo", 30.0).
			AddRow("l2", "Design Intern", "figma", "", `["figma"]`, "Design", "oslo", 20.0))
}

func TestRecommend(t *testing.T) {
	svc, mock, _ := newTestService(t)
	expectStudentQuery(mock, "s1")
	expectListingsQuery(mock)

	recs, err := svc.Recommend(context.Background(), "s1", matching.RankOptions{})
	require.NoError(t, err)

	require.Len(t, recs.Results, 2)
	assert.Equal(t, "l1", recs.Results[0].ListingID)
	assert.Greater(t, recs.Results[0].Score, recs.Results[1].Score)
	assert.Equal(t, 2, recs.Total)
	assert.NotEmpty(t, recs.RequestID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecommend_ProfileCaching(t *testing.T) {
	svc, mock, mr := newTestService(t)
	expectStudentQuery(mock, "s1")
	expectListingsQuery(mock)

	_, err := svc.Recommend(context.Background(), "s1", matching.RankOptions{})
	require.NoError(t, err)

	// Second pass must hit the cache: only the listings query is expected.
	cached, err := mr.Get("student:profile:s1")
	require.NoError(t, err)
	var profile matching.StudentProfile
	require.NoError(t, json.Unmarshal([]byte(cached), &profile))
	assert.Equal(t, "s1", profile.ID)

	expectListingsQuery(mock)
	_, err = svc.Recommend(context.Background(), "s1", matching.RankOptions{})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecommend_StudentNotFound(t *testing.T) {
	svc, mock, _ := newTestService(t)
	mock.ExpectQuery(`FROM students WHERE id`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := svc.Recommend(context.Background(), "ghost", matching.RankOptions{})
	assert.Error(t, err)
}

func TestRecommend_MinScoreAndLimitPassThrough(t *testing.T) {
	svc, mock, _ := newTestService(t)
	expectStudentQuery(mock, "s1")
	expectListingsQuery(mock)

	minScore := 50.0
	recs, err := svc.Recommend(context.Background(), "s1", matching.RankOptions{
		MinScore: &minScore,
		Limit:    1,
	})
	require.NoError(t, err)
	require.Len(t, recs.Results, 1)
	assert.GreaterOrEqual(t, recs.Results[0].Score, minScore)
}

func TestRecommendFromPayload(t *testing.T) {
	svc, _, _ := newTestService(t)

	student := matching.StudentProfile{
		ID:                "s1",
		Skills:            []string{"python", "react", "sql"},
		Major:             "Computer Science",
		Location:          "cairo",
		AvailabilityHours: 40,
	}
	payload := []byte(`[
		{"id": "l1", "title": "Backend Intern", "required_skills": ["python", "react"], "major": "Computer Science", "location": "cairo", "required_availability": 30},
		{"title": "broken, no id"},
		{"id": "l3", "required_skills": "cobol", "major": "History", "location": "oslo"}
	]`)

	recs, err := svc.RecommendFromPayload(context.Background(), student, payload, matching.RankOptions{})
	require.NoError(t, err)

	require.Len(t, recs.Results, 2)
	assert.Equal(t, "l1", recs.Results[0].ListingID)
	require.Len(t, recs.Skipped, 1)
	assert.Contains(t, recs.Skipped[0], "listing[1]")
}
