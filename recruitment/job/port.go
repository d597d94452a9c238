package job

import (
	"context"

	"github.com/Abraxas-365/conecta/pkg/kernel"
)

type Repository interface {
	// Create creates a new job
	Create(ctx context.Context, job *Job) error

	// Update updates an existing job
	Update(ctx context.Context, id kernel.JobID, job *Job) error

	// GetByID retrieves a job by ID
	GetByID(ctx context.Context, id kernel.JobID) (*Job, error)

	// Delete deletes a job by ID
	Delete(ctx context.Context, id kernel.JobID) error

	// List retrieves all jobs with pagination
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Job], error)

	// ListPublished retrieves only published jobs
	ListPublished(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Job], error)

	// ListArchived retrieves archived jobs with pagination
	ListArchived(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Job], error)

	// Search searches jobs by various criteria
	Search(ctx context.Context, req SearchJobsRequest) (*kernel.Paginated[Job], error)

	// Exists checks if a job exists by ID
	Exists(ctx context.Context, id kernel.JobID) (bool, error)

	// Publish marks a job as published/active
	Publish(ctx context.Context, id kernel.JobID) error

	// Unpublish marks a job as unpublished/draft
	Unpublish(ctx context.Context, id kernel.JobID) error

	// Archive archives a job (soft delete alternative)
	Archive(ctx context.Context, id kernel.JobID) error

	// Unarchive unarchives a job
	Unarchive(ctx context.Context, id kernel.JobID) error
}
