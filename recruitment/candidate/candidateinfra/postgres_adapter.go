package candidateinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Abraxas-365/conecta/pkg/kernel"
	"github.com/Abraxas-365/conecta/recruitment/candidate"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresCandidateRepository implements candidate.Repository using PostgreSQL
type PostgresCandidateRepository struct {
	db *sqlx.DB
}

// NewPostgresCandidateRepository creates a new PostgreSQL candidate repository
func NewPostgresCandidateRepository(db *sqlx.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type candidateModel struct {
	ID              string          `db:"id"`
	Email           string          `db:"email"`
	FirstName       string          `db:"first_name"`
	LastName        string          `db:"last_name"`
	Skills          json.RawMessage `db:"skills"`
	ExperienceYears *float64        `db:"experience_years"`
	Location        json.RawMessage `db:"location"`
	EducationLevel  *string         `db:"education_level"`
	ExpectedSalary  *float64        `db:"expected_salary"`
	Status          string          `db:"status"`
	ArchivedAt      *time.Time      `db:"archived_at"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// toEntity converts database model to domain entity
func (m *candidateModel) toEntity() (*candidate.Candidate, error) {
	var skills []kernel.Skill
	if len(m.Skills) > 0 {
		if err := json.Unmarshal(m.Skills, &skills); err != nil {
			return nil, fmt.Errorf("failed to unmarshal skills: %w", err)
		}
	}

	var location *kernel.Location
	if len(m.Location) > 0 {
		location = &kernel.Location{}
		if err := json.Unmarshal(m.Location, location); err != nil {
			return nil, fmt.Errorf("failed to unmarshal location: %w", err)
		}
	}

	var education kernel.EducationLevel
	if m.EducationLevel != nil {
		education = kernel.EducationLevel(*m.EducationLevel)
	}

	return &candidate.Candidate{
		ID:              kernel.CandidateID(m.ID),
		Email:           m.Email,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Skills:          skills,
		ExperienceYears: m.ExperienceYears,
		Location:        location,
		Education:       education,
		ExpectedSalary:  m.ExpectedSalary,
		Status:          candidate.CandidateStatus(m.Status),
		ArchivedAt:      m.ArchivedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}, nil
}

// fromEntity converts domain entity to database model
func fromEntity(c *candidate.Candidate) (*candidateModel, error) {
	skills, err := json.Marshal(c.Skills)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal skills: %w", err)
	}

	var location json.RawMessage
	if c.Location != nil {
		location, err = json.Marshal(c.Location)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal location: %w", err)
		}
	}

	var education *string
	if !c.Education.IsEmpty() {
		level := string(c.Education)
		education = &level
	}

	return &candidateModel{
		ID:              string(c.ID),
		Email:           c.Email,
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		Skills:          skills,
		ExperienceYears: c.ExperienceYears,
		Location:        location,
		EducationLevel:  education,
		ExpectedSalary:  c.ExpectedSalary,
		Status:          string(c.Status),
		ArchivedAt:      c.ArchivedAt,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}, nil
}

// ============================================================================
// Repository Implementation
// ============================================================================

const candidateColumns = `
	id, email, first_name, last_name, skills,
	experience_years, location, education_level, expected_salary,
	status, archived_at, created_at, updated_at
`

// Create creates a new candidate
func (r *PostgresCandidateRepository) Create(ctx context.Context, entity *candidate.Candidate) error {
	model, err := fromEntity(entity)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO candidates (
			id, email, first_name, last_name, skills,
			experience_years, location, education_level, expected_salary,
			status, archived_at, created_at, updated_at
		) VALUES (
			:id, :email, :first_name, :last_name, :skills,
			:experience_years, :location, :education_level, :expected_salary,
			:status, :archived_at, :created_at, :updated_at
		)
	`

	_, err = r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return candidate.ErrCandidateAlreadyExists()
			}
		}
		return fmt.Errorf("failed to create candidate: %w", err)
	}

	return nil
}

// Update updates an existing candidate
func (r *PostgresCandidateRepository) Update(ctx context.Context, id kernel.CandidateID, entity *candidate.Candidate) error {
	model, err := fromEntity(entity)
	if err != nil {
		return err
	}

	query := `
		UPDATE candidates SET
			email = :email,
			first_name = :first_name,
			last_name = :last_name,
			skills = :skills,
			experience_years = :experience_years,
			location = :location,
			education_level = :education_level,
			expected_salary = :expected_salary,
			status = :status,
			archived_at = :archived_at,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return candidate.ErrCandidateNotFound()
	}

	return nil
}

// GetByID retrieves a candidate by ID
func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	query := fmt.Sprintf(`SELECT %s FROM candidates WHERE id = $1`, candidateColumns)

	var model candidateModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, candidate.ErrCandidateNotFound()
		}
		return nil, fmt.Errorf("failed to get candidate by id: %w", err)
	}

	return model.toEntity()
}

// GetByEmail retrieves a candidate by email
func (r *PostgresCandidateRepository) GetByEmail(ctx context.Context, email string) (*candidate.Candidate, error) {
	query := fmt.Sprintf(`SELECT %s FROM candidates WHERE email = $1`, candidateColumns)

	var model candidateModel
	err := r.db.GetContext(ctx, &model, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, candidate.ErrCandidateNotFound()
		}
		return nil, fmt.Errorf("failed to get candidate by email: %w", err)
	}

	return model.toEntity()
}

// Delete deletes a candidate by ID
func (r *PostgresCandidateRepository) Delete(ctx context.Context, id kernel.CandidateID) error {
	query := `DELETE FROM candidates WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return candidate.ErrCandidateNotFound()
	}

	return nil
}

// List retrieves all candidates with pagination
func (r *PostgresCandidateRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[candidate.Candidate], error) {
	return r.paginatedList(ctx, pagination, "", nil)
}

// ListActive retrieves only active candidates
func (r *PostgresCandidateRepository) ListActive(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[candidate.Candidate], error) {
	return r.paginatedList(ctx, pagination, "WHERE status = $1", []interface{}{string(candidate.CandidateStatusActive)})
}

// Search searches candidates by various criteria
func (r *PostgresCandidateRepository) Search(ctx context.Context, req candidate.SearchCandidatesRequest) (*kernel.Paginated[candidate.Candidate], error) {
	whereConditions := []string{}
	args := []interface{}{}
	argCount := 1

	if req.Query != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d)", argCount, argCount, argCount))
		args = append(args, "%"+req.Query+"%")
		argCount++
	}

	if req.Skill != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("skills::text ILIKE $%d", argCount))
		args = append(args, "%"+req.Skill+"%")
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

	whereClause := ""
	if len(whereConditions) > 0 {
		whereClause = "WHERE " + whereConditions[0]
		for i := 1; i < len(whereConditions); i++ {
			whereClause += " AND " + whereConditions[i]
		}
	}

	return r.paginatedList(ctx, req.Pagination, whereClause, args)
}

// Exists checks if a candidate exists by ID
func (r *PostgresCandidateRepository) Exists(ctx context.Context, id kernel.CandidateID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM candidates WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, string(id))
	if err != nil {
		return false, fmt.Errorf("failed to check candidate existence: %w", err)
	}

	return exists, nil
}

// Archive archives a candidate
func (r *PostgresCandidateRepository) Archive(ctx context.Context, id kernel.CandidateID) error {
	query := `
		UPDATE candidates
		SET status = 'ARCHIVED',
		    archived_at = $1,
		    updated_at = $1
		WHERE id = $2
	`

	now := time.Now()
	result, err := r.db.ExecContext(ctx, query, now, string(id))
	if err != nil {
		return fmt.Errorf("failed to archive candidate: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return candidate.ErrCandidateNotFound()
	}

	return nil
}

// Unarchive unarchives a candidate
func (r *PostgresCandidateRepository) Unarchive(ctx context.Context, id kernel.CandidateID) error {
	query := `
		UPDATE candidates
		SET status = 'ACTIVE',
		    archived_at = NULL,
		    updated_at = $1
		WHERE id = $2
	`

	now := time.Now()
	result, err := r.db.ExecContext(ctx, query, now, string(id))
	if err != nil {
		return fmt.Errorf("failed to unarchive candidate: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return candidate.ErrCandidateNotFound()
	}

	return nil
}

// ============================================================================
// Helpers
// ============================================================================

func (r *PostgresCandidateRepository) paginatedList(ctx context.Context, pagination kernel.PaginationOptions, whereClause string, args []interface{}) (*kernel.Paginated[candidate.Candidate], error) {
	pagination = pagination.Normalize()

	// Count total
	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM candidates %s", whereClause)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to count candidates: %w", err)
	}

	// Calculate pagination
	offset := (pagination.Page - 1) * pagination.PageSize
	totalPages := (total + pagination.PageSize - 1) / pagination.PageSize

	// Get paginated results
	query := fmt.Sprintf(`
		SELECT %s
		FROM candidates
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, candidateColumns, whereClause, len(args)+1, len(args)+2)

	args = append(args, pagination.PageSize, offset)

	var models []candidateModel
	err := r.db.SelectContext(ctx, &models, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	// Convert to entities
	entities := make([]candidate.Candidate, 0, len(models))
	for _, model := range models {
		entity, err := model.toEntity()
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}

	return &kernel.Paginated[candidate.Candidate]{
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
