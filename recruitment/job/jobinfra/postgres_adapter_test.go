package jobinfra

import (
	"context"
	"testing"
	"time"

	"github.com/Abraxas-365/conecta/recruitment/job"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*PostgresJobRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPostgresJobRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func jobRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "job_title", "job_description", "required_skills",
		"required_experience_years", "location", "remote",
		"required_education_level", "salary_range", "benefits",
		"posted_by", "status", "published_at", "archived_at",
		"created_at", "updated_at",
	})
}

// Search requests arrive as JSON bodies, so pagination may be missing
// entirely; the repository must fall back to the first page of 20 instead
// of dividing by a zero page size.
func TestSearch_AppliesDefaultPagination(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM jobs`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(41))
	mock.ExpectQuery(`(?s)SELECT .* FROM jobs`).
		WithArgs(20, 0).
		WillReturnRows(jobRows().AddRow(
			"job-1", "Backend Developer", "Build services", []byte(`["Go"]`),
			nil, nil, false, nil, nil, nil,
			"user-1", "PUBLISHED", nil, nil, time.Now(), time.Now(),
		))

	result, err := repo.Search(context.Background(), job.SearchJobsRequest{})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Page.Number)
	assert.Equal(t, 20, result.Page.Size)
	assert.Equal(t, 41, result.Page.Total)
	assert.Equal(t, 3, result.Page.Pages)
	assert.Len(t, result.Items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
