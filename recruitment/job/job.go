package job

import (
	"time"

	"github.com/Abraxas-365/conecta/pkg/kernel"
)

// JobStatus represents the status of a job posting
type JobStatus string

const (
	JobStatusDraft     JobStatus = "DRAFT"     // Created but not published
	JobStatusPublished JobStatus = "PUBLISHED" // Active and accepting applications
	JobStatusClosed    JobStatus = "CLOSED"    // No longer accepting applications
	JobStatusArchived  JobStatus = "ARCHIVED"  // Archived
)

type Job struct {
	ID                      kernel.JobID          `db:"id" json:"id"`
	Title                   kernel.JobTitle       `db:"job_title" json:"job_title"`
	Description             kernel.JobDescription `db:"job_description" json:"job_description"`
	RequiredSkills          []kernel.Skill        `db:"required_skills" json:"required_skills"`
	RequiredExperienceYears *float64              `db:"required_experience_years" json:"required_experience_years,omitempty"`
	Location                *kernel.Location      `db:"location" json:"location,omitempty"`
	Remote                  bool                  `db:"remote" json:"remote"`
	RequiredEducation       kernel.EducationLevel `db:"required_education_level" json:"required_education_level,omitempty"`
	Salary                  *kernel.SalaryRange   `db:"salary_range" json:"salary_range,omitempty"`
	Benefits                []kernel.JobBenefit   `db:"benefits" json:"benefits"`
	PostedBy                kernel.UserID         `db:"posted_by" json:"posted_by"`
	Status                  JobStatus             `db:"status" json:"status"`
	PublishedAt             *time.Time            `db:"published_at" json:"published_at,omitempty"`
	ArchivedAt              *time.Time            `db:"archived_at" json:"archived_at,omitempty"`
	CreatedAt               time.Time             `db:"created_at" json:"created_at"`
	UpdatedAt               time.Time             `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsPublished checks if the job is currently published
func (j *Job) IsPublished() bool {
	return j.Status == JobStatusPublished
}

// IsArchived checks if the job is archived
func (j *Job) IsArchived() bool {
	return j.Status == JobStatusArchived
}

// IsDraft checks if the job is in draft status
func (j *Job) IsDraft() bool {
	return j.Status == JobStatusDraft
}

// IsClosed checks if the job is closed
func (j *Job) IsClosed() bool {
	return j.Status == JobStatusClosed
}

// CanBePublished checks if a job can be published
func (j *Job) CanBePublished() bool {
	return j.Status == JobStatusDraft && !j.IsArchived()
}

// CanBeEdited checks if a job can be edited
func (j *Job) CanBeEdited() bool {
	return !j.IsArchived()
}

// Publish marks the job as published
func (j *Job) Publish() error {
	if !j.CanBePublished() {
		return ErrCannotPublish().WithDetail("current_status", j.Status)
	}

	now := time.Now()
	j.Status = JobStatusPublished
	j.PublishedAt = &now
	j.UpdatedAt = now
	return nil
}

// Unpublish marks the job as draft
func (j *Job) Unpublish() {
	j.Status = JobStatusDraft
	j.UpdatedAt = time.Now()
}

// Close marks the job as closed
func (j *Job) Close() {
	j.Status = JobStatusClosed
	j.UpdatedAt = time.Now()
}

// Archive marks the job as archived
func (j *Job) Archive() error {
	if j.IsArchived() {
		return ErrJobAlreadyArchived()
	}

	now := time.Now()
	j.Status = JobStatusArchived
	j.ArchivedAt = &now
	j.UpdatedAt = now
	return nil
}

// Unarchive removes archived status
func (j *Job) Unarchive() error {
	if !j.IsArchived() {
		return ErrJobNotArchived()
	}

	j.Status = JobStatusDraft
	j.ArchivedAt = nil
	j.UpdatedAt = time.Now()
	return nil
}

// UpdateDetails updates job details
func (j *Job) UpdateDetails(title kernel.JobTitle, description kernel.JobDescription) {
	if title != "" {
		j.Title = title
	}
	if description != "" {
		j.Description = description
	}
	j.UpdatedAt = time.Now()
}

// UpdateRequirements replaces the posting's matching requirements
func (j *Job) UpdateRequirements(skills []kernel.Skill, experienceYears *float64, education *kernel.EducationLevel) {
	if skills != nil {
		j.RequiredSkills = skills
	}
	if experienceYears != nil {
		j.RequiredExperienceYears = experienceYears
	}
	if education != nil {
		j.RequiredEducation = *education
	}
	j.UpdatedAt = time.Now()
}

// UpdateConditions updates location, remote flag and salary range
func (j *Job) UpdateConditions(location *kernel.Location, remote *bool, salary *kernel.SalaryRange) {
	if location != nil {
		j.Location = location
	}
	if remote != nil {
		j.Remote = *remote
	}
	if salary != nil {
		j.Salary = salary
	}
	j.UpdatedAt = time.Now()
}
