package job

import (
	"time"

	"github.com/Abraxas-365/conecta/pkg/kernel"
)

// CreateJobRequest - DTO for creating a new job
type CreateJobRequest struct {
	Title                   kernel.JobTitle       `json:"job_title" validate:"required"`
	Description             kernel.JobDescription `json:"job_description" validate:"required"`
	RequiredSkills          []kernel.Skill        `json:"required_skills,omitempty"`
	RequiredExperienceYears *float64              `json:"required_experience_years,omitempty"`
	Location                *kernel.Location      `json:"location,omitempty"`
	Remote                  bool                  `json:"remote"`
	RequiredEducation       kernel.EducationLevel `json:"required_education_level,omitempty"`
	Salary                  *kernel.SalaryRange   `json:"salary_range,omitempty"`
	Benefits                []kernel.JobBenefit   `json:"benefits,omitempty"`
	PostedBy                kernel.UserID         `json:"posted_by" validate:"required"`
}

// UpdateJobRequest - DTO for updating an existing job
type UpdateJobRequest struct {
	Title                   *kernel.JobTitle       `json:"job_title,omitempty"`
	Description             *kernel.JobDescription `json:"job_description,omitempty"`
	RequiredSkills          *[]kernel.Skill        `json:"required_skills,omitempty"`
	RequiredExperienceYears *float64               `json:"required_experience_years,omitempty"`
	Location                *kernel.Location       `json:"location,omitempty"`
	Remote                  *bool                  `json:"remote,omitempty"`
	RequiredEducation       *kernel.EducationLevel `json:"required_education_level,omitempty"`
	Salary                  *kernel.SalaryRange    `json:"salary_range,omitempty"`
	Benefits                *[]kernel.JobBenefit   `json:"benefits,omitempty"`
}

// SearchJobsRequest - DTO for searching jobs
type SearchJobsRequest struct {
	Query      string                   `json:"query,omitempty"`
	Title      string                   `json:"title,omitempty"`
	City       string                   `json:"city,omitempty"`
	State      string                   `json:"state,omitempty"`
	Remote     *bool                    `json:"remote,omitempty"`
	PostedBy   string                   `json:"posted_by,omitempty"`
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// Response type alias for paginated jobs
type PaginatedJobsResponse = kernel.Paginated[JobResponse]

// JobResponse - DTO for returning job data
type JobResponse struct {
	ID                      kernel.JobID          `json:"id"`
	Title                   kernel.JobTitle       `json:"job_title"`
	Description             kernel.JobDescription `json:"job_description"`
	RequiredSkills          []kernel.Skill        `json:"required_skills"`
	RequiredExperienceYears *float64              `json:"required_experience_years,omitempty"`
	Location                *kernel.Location      `json:"location,omitempty"`
	Remote                  bool                  `json:"remote"`
	RequiredEducation       kernel.EducationLevel `json:"required_education_level,omitempty"`
	Salary                  *kernel.SalaryRange   `json:"salary_range,omitempty"`
	Benefits                []kernel.JobBenefit   `json:"benefits"`
	PostedBy                kernel.UserID         `json:"posted_by"`
	Status                  JobStatus             `json:"status"`
	PublishedAt             *time.Time            `json:"published_at,omitempty"`
	ArchivedAt              *time.Time            `json:"archived_at,omitempty"`
	CreatedAt               time.Time             `json:"created_at"`
	UpdatedAt               time.Time             `json:"updated_at"`
}
