package jobinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Abraxas-365/conecta/pkg/kernel"
	"github.com/Abraxas-365/conecta/recruitment/job"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresJobRepository implements job.Repository using PostgreSQL
type PostgresJobRepository struct {
	db *sqlx.DB
}

// NewPostgresJobRepository creates a new PostgreSQL job repository
func NewPostgresJobRepository(db *sqlx.DB) *PostgresJobRepository {
	return &PostgresJobRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type jobModel struct {
	ID                      string          `db:"id"`
	JobTitle                string          `db:"job_title"`
	JobDescription          string          `db:"job_description"`
	RequiredSkills          json.RawMessage `db:"required_skills"`
	RequiredExperienceYears *float64        `db:"required_experience_years"`
	Location                json.RawMessage `db:"location"`
	Remote                  bool            `db:"remote"`
	RequiredEducationLevel  *string         `db:"required_education_level"`
	SalaryRange             json.RawMessage `db:"salary_range"`
	Benefits                json.RawMessage `db:"benefits"`
	PostedBy                string          `db:"posted_by"`
	Status                  string          `db:"status"`
	PublishedAt             *time.Time      `db:"published_at"`
	ArchivedAt              *time.Time      `db:"archived_at"`
	CreatedAt               time.Time       `db:"created_at"`
	UpdatedAt               time.Time       `db:"updated_at"`
}

// toEntity converts database model to domain entity
func (m *jobModel) toEntity() (*job.Job, error) {
	var skills []kernel.Skill
	if len(m.RequiredSkills) > 0 {
		if err := json.Unmarshal(m.RequiredSkills, &skills); err != nil {
			return nil, fmt.Errorf("failed to unmarshal required skills: %w", err)
		}
	}

	var location *kernel.Location
	if len(m.Location) > 0 {
		location = &kernel.Location{}
		if err := json.Unmarshal(m.Location, location); err != nil {
			return nil, fmt.Errorf("failed to unmarshal location: %w", err)
		}
	}

	var salary *kernel.SalaryRange
	if len(m.SalaryRange) > 0 {
		salary = &kernel.SalaryRange{}
		if err := json.Unmarshal(m.SalaryRange, salary); err != nil {
			return nil, fmt.Errorf("failed to unmarshal salary range: %w", err)
		}
	}

	var benefits []kernel.JobBenefit
	if len(m.Benefits) > 0 {
		if err := json.Unmarshal(m.Benefits, &benefits); err != nil {
			return nil, fmt.Errorf("failed to unmarshal benefits: %w", err)
		}
	}

	var education kernel.EducationLevel
	if m.RequiredEducationLevel != nil {
		education = kernel.EducationLevel(*m.RequiredEducationLevel)
	}

	return &job.Job{
		ID:                      kernel.JobID(m.ID),
		Title:                   kernel.JobTitle(m.JobTitle),
		Description:             kernel.JobDescription(m.JobDescription),
		RequiredSkills:          skills,
		RequiredExperienceYears: m.RequiredExperienceYears,
		Location:                location,
		Remote:                  m.Remote,
		RequiredEducation:       education,
		Salary:                  salary,
		Benefits:                benefits,
		PostedBy:                kernel.UserID(m.PostedBy),
		Status:                  job.JobStatus(m.Status),
		PublishedAt:             m.PublishedAt,
		ArchivedAt:              m.ArchivedAt,
		CreatedAt:               m.CreatedAt,
		UpdatedAt:               m.UpdatedAt,
	}, nil
}

// fromEntity converts domain entity to database model
func fromEntity(j *job.Job) (*jobModel, error) {
	skills, err := json.Marshal(j.RequiredSkills)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal required skills: %w", err)
	}

	var location json.RawMessage
	if j.Location != nil {
		location, err = json.Marshal(j.Location)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal location: %w", err)
		}
	}

	var salary json.RawMessage
	if j.Salary != nil {
		salary, err = json.Marshal(j.Salary)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal salary range: %w", err)
		}
	}

	benefits, err := json.Marshal(j.Benefits)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal benefits: %w", err)
	}

	var education *string
	if !j.RequiredEducation.IsEmpty() {
		level := string(j.RequiredEducation)
		education = &level
	}

	return &jobModel{
		ID:                      string(j.ID),
		JobTitle:                string(j.Title),
		JobDescription:          string(j.Description),
		RequiredSkills:          skills,
		RequiredExperienceYears: j.RequiredExperienceYears,
		Location:                location,
		Remote:                  j.Remote,
		RequiredEducationLevel:  education,
		SalaryRange:             salary,
		Benefits:                benefits,
		PostedBy:                string(j.PostedBy),
		Status:                  string(j.Status),
		PublishedAt:             j.PublishedAt,
		ArchivedAt:              j.ArchivedAt,
		CreatedAt:               j.CreatedAt,
		UpdatedAt:               j.UpdatedAt,
	}, nil
}

// ============================================================================
// Repository Implementation
// ============================================================================

const jobColumns = `
	id, job_title, job_description, required_skills,
	required_experience_years, location, remote, required_education_level,
	salary_range, benefits, posted_by, status,
	published_at, archived_at, created_at, updated_at
`

// Create creates a new job
func (r *PostgresJobRepository) Create(ctx context.Context, jobEntity *job.Job) error {
	model, err := fromEntity(jobEntity)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO jobs (
			id, job_title, job_description, required_skills,
			required_experience_years, location, remote, required_education_level,
			salary_range, benefits, posted_by, status,
			published_at, archived_at, created_at, updated_at
		) VALUES (
			:id, :job_title, :job_description, :required_skills,
			:required_experience_years, :location, :remote, :required_education_level,
			:salary_range, :benefits, :posted_by, :status,
			:published_at, :archived_at, :created_at, :updated_at
		)
	`

	_, err = r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return job.ErrJobAlreadyExists()
			}
			if pqErr.Code == "23503" { // foreign_key_violation
				return fmt.Errorf("invalid posted_by user_id: %w", err)
			}
		}
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

// Update updates an existing job
func (r *PostgresJobRepository) Update(ctx context.Context, id kernel.JobID, jobEntity *job.Job) error {
	model, err := fromEntity(jobEntity)
	if err != nil {
		return err
	}

	query := `
		UPDATE jobs SET
			job_title = :job_title,
			job_description = :job_description,
			required_skills = :required_skills,
			required_experience_years = :required_experience_years,
			location = :location,
			remote = :remote,
			required_education_level = :required_education_level,
			salary_range = :salary_range,
			benefits = :benefits,
			status = :status,
			published_at = :published_at,
			archived_at = :archived_at,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}

// GetByID retrieves a job by ID
func (r *PostgresJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE id = $1`, jobColumns)

	var model jobModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrJobNotFound()
		}
		return nil, fmt.Errorf("failed to get job by id: %w", err)
	}

	return model.toEntity()
}

// Delete deletes a job by ID
func (r *PostgresJobRepository) Delete(ctx context.Context, id kernel.JobID) error {
	query := `DELETE FROM jobs WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}

// List retrieves all jobs with pagination
func (r *PostgresJobRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	return r.paginatedList(ctx, pagination, "", nil, "created_at DESC")
}

// ListPublished retrieves only published jobs
func (r *PostgresJobRepository) ListPublished(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	return r.paginatedList(ctx, pagination, "WHERE status = 'PUBLISHED'", nil, "published_at DESC")
}

// ListArchived retrieves archived jobs with pagination
func (r *PostgresJobRepository) ListArchived(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	return r.paginatedList(ctx, pagination, "WHERE status = 'ARCHIVED'", nil, "archived_at DESC")
}

// Search searches jobs by various criteria
func (r *PostgresJobRepository) Search(ctx context.Context, req job.SearchJobsRequest) (*kernel.Paginated[job.Job], error) {
	// Build dynamic query
	whereConditions := []string{}
	args := []interface{}{}
	argCount := 1

	if req.Query != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("(job_title ILIKE $%d OR job_description ILIKE $%d)", argCount, argCount))
		args = append(args, "%"+req.Query+"%")
		argCount++
	}

	if req.Title != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("job_title ILIKE $%d", argCount))
		args = append(args, "%"+req.Title+"%")
		argCount++
	}

	if req.City != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("location->>'city' ILIKE $%d", argCount))
		args = append(args, req.City)
		argCount++
	}

	if req.State != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("location->>'state' ILIKE $%d", argCount))
		args = append(args, req.State)
		argCount++
	}

	if req.Remote != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("remote = $%d", argCount))
		args = append(args, *req.Remote)
		argCount++
	}

	if req.PostedBy != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("posted_by = $%d", argCount))
		args = append(args, req.PostedBy)
		argCount++
	}

	whereClause := ""
	if len(whereConditions) > 0 {
		whereClause = "WHERE " + whereConditions[0]
		for i := 1; i < len(whereConditions); i++ {
			whereClause += " AND " + whereConditions[i]
		}
	}

	return r.paginatedList(ctx, req.Pagination, whereClause, args, "created_at DESC")
}

// Exists checks if a job exists by ID
func (r *PostgresJobRepository) Exists(ctx context.Context, id kernel.JobID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, string(id))
	if err != nil {
		return false, fmt.Errorf("failed to check job existence: %w", err)
	}

	return exists, nil
}

// Publish marks a job as published/active
func (r *PostgresJobRepository) Publish(ctx context.Context, id kernel.JobID) error {
	query := `
		UPDATE jobs
		SET status = 'PUBLISHED',
		    published_at = $1,
		    updated_at = $1
		WHERE id = $2 AND status = 'DRAFT'
	`

	return r.execExpectingRow(ctx, query, time.Now(), string(id))
}

// Unpublish marks a job as unpublished/draft
func (r *PostgresJobRepository) Unpublish(ctx context.Context, id kernel.JobID) error {
	query := `
		UPDATE jobs
		SET status = 'DRAFT',
		    updated_at = $1
		WHERE id = $2
	`

	return r.execExpectingRow(ctx, query, time.Now(), string(id))
}

// Archive archives a job
func (r *PostgresJobRepository) Archive(ctx context.Context, id kernel.JobID) error {
	query := `
		UPDATE jobs
		SET status = 'ARCHIVED',
		    archived_at = $1,
		    updated_at = $1
		WHERE id = $2
	`

	return r.execExpectingRow(ctx, query, time.Now(), string(id))
}

// Unarchive unarchives a job
func (r *PostgresJobRepository) Unarchive(ctx context.Context, id kernel.JobID) error {
	query := `
		UPDATE jobs
		SET status = 'DRAFT',
		    archived_at = NULL,
		    updated_at = $1
		WHERE id = $2
	`

	return r.execExpectingRow(ctx, query, time.Now(), string(id))
}

// ============================================================================
// Helpers
// ============================================================================

func (r *PostgresJobRepository) execExpectingRow(ctx context.Context, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}

func (r *PostgresJobRepository) paginatedList(ctx context.Context, pagination kernel.PaginationOptions, whereClause string, args []interface{}, orderBy string) (*kernel.Paginated[job.Job], error) {
	pagination = pagination.Normalize()

	// Count total
	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM jobs %s", whereClause)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	// Calculate pagination
	offset := (pagination.Page - 1) * pagination.PageSize
	totalPages := (total + pagination.PageSize - 1) / pagination.PageSize

	// Get paginated results
	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs
		%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, jobColumns, whereClause, orderBy, len(args)+1, len(args)+2)

	args = append(args, pagination.PageSize, offset)

	var models []jobModel
	err := r.db.SelectContext(ctx, &models, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	// Convert to entities
	entities := make([]job.Job, 0, len(models))
	for _, model := range models {
		entity, err := model.toEntity()
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}

	return &kernel.Paginated[job.Job]{
		Items: entities,
		Page: kernel.Page{
			Number: pagination.Page,
			Size:   pagination.PageSize,
			Total:  total,
			Pages:  totalPages,
		},
		Empty: len(entities) == 0,
	}, nil
}
