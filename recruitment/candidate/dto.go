package candidate

import (
	"time"

	"github.com/Abraxas-365/conecta/pkg/kernel"
)

// CreateCandidateRequest - DTO for registering a new candidate
type CreateCandidateRequest struct {
	Email           string                `json:"email" validate:"required,email"`
	FirstName       string                `json:"first_name" validate:"required"`
	LastName        string                `json:"last_name" validate:"required"`
	Skills          []kernel.Skill        `json:"skills,omitempty"`
	ExperienceYears *float64              `json:"experience_years,omitempty"`
	Location        *kernel.Location      `json:"location,omitempty"`
	Education       kernel.EducationLevel `json:"education_level,omitempty"`
	ExpectedSalary  *float64              `json:"expected_salary,omitempty"`
}

// UpdateCandidateRequest - DTO for updating an existing candidate
type UpdateCandidateRequest struct {
	Email           *string                `json:"email,omitempty"`
	FirstName       *string                `json:"first_name,omitempty"`
	LastName        *string                `json:"last_name,omitempty"`
	Skills          *[]kernel.Skill        `json:"skills,omitempty"`
	ExperienceYears *float64               `json:"experience_years,omitempty"`
	Location        *kernel.Location       `json:"location,omitempty"`
	Education       *kernel.EducationLevel `json:"education_level,omitempty"`
	ExpectedSalary  *float64               `json:"expected_salary,omitempty"`
}

// SearchCandidatesRequest - DTO for searching candidates
type SearchCandidatesRequest struct {
	Query      string                   `json:"query,omitempty"`
	Skill      string                   `json:"skill,omitempty"`
	City       string                   `json:"city,omitempty"`
	State      string                   `json:"state,omitempty"`
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// Response type alias for paginated candidates
type PaginatedCandidatesResponse = kernel.Paginated[CandidateResponse]

// CandidateResponse - DTO for returning candidate data
type CandidateResponse struct {
	ID              kernel.CandidateID    `json:"id"`
	Email           string                `json:"email"`
	FirstName       string                `json:"first_name"`
	LastName        string                `json:"last_name"`
	Skills          []kernel.Skill        `json:"skills"`
	ExperienceYears *float64              `json:"experience_years,omitempty"`
	Location        *kernel.Location      `json:"location,omitempty"`
	Education       kernel.EducationLevel `json:"education_level,omitempty"`
	ExpectedSalary  *float64              `json:"expected_salary,omitempty"`
	Status          CandidateStatus       `json:"status"`
	ArchivedAt      *time.Time            `json:"archived_at,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}
