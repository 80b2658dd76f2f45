// internal/storage/store.go

// Package storage reads the student and listing rows the matching engine is
// fed with. It is read-side plumbing only; writes belong to the upstream
// account and listing services.
package storage

import (
	"context"
	"database/sql"

	"github.com/seifbadreldinx/futureintern/internal/common/errors"
	"github.com/seifbadreldinx/futureintern/internal/common/logger"
	"github.com/seifbadreldinx/futureintern/internal/ingest"
)

type Store struct {
	db     *sql.DB
	logger logger.Logger
}

func New(db *sql.DB, log logger.Logger) *Store {
	return &Store{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "storage"}),
	}
}

// StudentByID loads one raw student row. Skills and interests come back in
// whatever representation the row holds; the ingest package resolves them.
func (s *Store) StudentByID(ctx context.Context, studentID string) (*ingest.StudentRecord, error) {
	var rec ingest.StudentRecord
	var skills, interests, major, location sql.NullString
	var availability sql.NullFloat64

	err := s.db.QueryRowContext(ctx, `
		SELECT id, skills, interests, major, location, availability_hours
		FROM students WHERE id = $1`, studentID).Scan(
		&rec.ID, &skills, &interests, &major, &location, &availability,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewStudentNotFoundError(studentID)
	}
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("student_by_id", err)
	}

	rec.Skills = skills.String
	rec.Interests = interests.String
	rec.Major = major.String
	rec.Location = location.String
	rec.AvailabilityHours = availability.Float64
	return &rec, nil
}

// ActiveListings loads every listing row currently open for applications.
func (s *Store) ActiveListings(ctx context.Context) ([]ingest.ListingRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, requirements, required_skills,
		       major, location, required_availability_hours
		FROM listings WHERE is_active = true`)
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("active_listings", err)
	}
	defer rows.Close()

	var records []ingest.ListingRecord
	for rows.Next() {
		var rec ingest.ListingRecord
		var title, description, requirements, skills, major, location sql.NullString
		var availability sql.NullFloat64

		if err := rows.Scan(&rec.ID, &title, &description, &requirements,
			&skills, &major, &location, &availability); err != nil {
			// One unreadable row degrades to a skipped listing, not a failed pass.
			s.logger.Warn("skipping unreadable listing row", map[string]interface{}{
				"error": err,
			})
			continue
		}

		rec.Title = title.String
		rec.Description = description.String
		rec.Requirements = requirements.String
		rec.RequiredSkills = skills.String
		rec.Major = major.String
		rec.Location = location.String
		rec.RequiredAvailabilityHours = availability.Float64
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewQueryExecutionFailedError("active_listings", err)
	}
	return records, nil
}
