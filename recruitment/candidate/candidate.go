package candidate

import (
	"fmt"
	"time"

	"github.com/Abraxas-365/conecta/pkg/kernel"
)

// CandidateStatus represents the status of a candidate
type CandidateStatus string

const (
	CandidateStatusActive   CandidateStatus = "ACTIVE"   // Active in the system
	CandidateStatusInactive CandidateStatus = "INACTIVE" // Deactivated
	CandidateStatusArchived CandidateStatus = "ARCHIVED" // Archived
)

type Candidate struct {
	ID              kernel.CandidateID    `db:"id" json:"id"`
	Email           string                `db:"email" json:"email"`
	FirstName       string                `db:"first_name" json:"first_name"`
	LastName        string                `db:"last_name" json:"last_name"`
	Skills          []kernel.Skill        `db:"skills" json:"skills"`
	ExperienceYears *float64              `db:"experience_years" json:"experience_years,omitempty"`
	Location        *kernel.Location      `db:"location" json:"location,omitempty"`
	Education       kernel.EducationLevel `db:"education_level" json:"education_level,omitempty"`
	ExpectedSalary  *float64              `db:"expected_salary" json:"expected_salary,omitempty"`
	Status          CandidateStatus       `db:"status" json:"status"`
	ArchivedAt      *time.Time            `db:"archived_at" json:"archived_at,omitempty"`
	CreatedAt       time.Time             `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time             `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsActive checks if the candidate is active
func (c *Candidate) IsActive() bool {
	return c.Status == CandidateStatusActive
}

// IsArchived checks if the candidate is archived
func (c *Candidate) IsArchived() bool {
	return c.Status == CandidateStatusArchived
}

// GetFullName returns the candidate's full name
func (c *Candidate) GetFullName() string {
	return fmt.Sprintf("%s %s", c.FirstName, c.LastName)
}

// Archive marks the candidate as archived
func (c *Candidate) Archive() error {
	if c.IsArchived() {
		return ErrCandidateAlreadyArchived()
	}

	now := time.Now()
	c.Status = CandidateStatusArchived
	c.ArchivedAt = &now
	c.UpdatedAt = now
	return nil
}

// Unarchive removes archived status
func (c *Candidate) Unarchive() error {
	if !c.IsArchived() {
		return ErrCandidateNotArchived()
	}

	c.Status = CandidateStatusActive
	c.ArchivedAt = nil
	c.UpdatedAt = time.Now()
	return nil
}

// Deactivate marks the candidate as inactive
func (c *Candidate) Deactivate() {
	c.Status = CandidateStatusInactive
	c.UpdatedAt = time.Now()
}

// Activate marks the candidate as active
func (c *Candidate) Activate() {
	c.Status = CandidateStatusActive
	c.UpdatedAt = time.Now()
}

// UpdatePersonalInfo updates the candidate's personal information
func (c *Candidate) UpdatePersonalInfo(firstName, lastName, email string) {
	if firstName != "" {
		c.FirstName = firstName
	}
	if lastName != "" {
		c.LastName = lastName
	}
	if email != "" {
		c.Email = email
	}
	c.UpdatedAt = time.Now()
}

// UpdateSkills replaces the candidate's skill set
func (c *Candidate) UpdateSkills(skills []kernel.Skill) {
	c.Skills = skills
	c.UpdatedAt = time.Now()
}

// UpdateEducation sets the candidate's education level
func (c *Candidate) UpdateEducation(level kernel.EducationLevel) error {
	if !level.IsValid() {
		return ErrInvalidEducationLevel().WithDetail("education_level", string(level))
	}
	c.Education = level
	c.UpdatedAt = time.Now()
	return nil
}

// UpdateJobPreferences updates location and salary expectations
func (c *Candidate) UpdateJobPreferences(location *kernel.Location, expectedSalary *float64) {
	if location != nil {
		c.Location = location
	}
	if expectedSalary != nil {
		c.ExpectedSalary = expectedSalary
	}
	c.UpdatedAt = time.Now()
}

// CanApplyToJob checks if candidate can apply to jobs
func (c *Candidate) CanApplyToJob() bool {
	return c.IsActive() && !c.IsArchived()
}
