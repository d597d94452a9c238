package jobsrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/conecta/pkg/errx"
	"github.com/Abraxas-365/conecta/pkg/kernel"
	"github.com/Abraxas-365/conecta/recruitment/job"
	"github.com/google/uuid"
)

// JobService provides business operations for jobs
type JobService struct {
	jobRepo job.Repository
}

// NewJobService creates a new instance of the job service
func NewJobService(jobRepo job.Repository) *JobService {
	return &JobService{
		jobRepo: jobRepo,
	}
}

// CreateJob creates a new job posting
func (s *JobService) CreateJob(ctx context.Context, req job.CreateJobRequest) (*job.Job, error) {
	if req.Salary != nil && req.Salary.Min > req.Salary.Max {
		return nil, job.ErrInvalidSalaryRange().
			WithDetail("min", req.Salary.Min).
			WithDetail("max", req.Salary.Max)
	}

	if !req.RequiredEducation.IsEmpty() && !req.RequiredEducation.IsValid() {
		return nil, job.ErrInvalidPayload().WithDetail("required_education_level", string(req.RequiredEducation))
	}

	// Create new job entity
	newJob := &job.Job{
		ID:                      kernel.NewJobID(uuid.NewString()),
		Title:                   req.Title,
		Description:             req.Description,
		RequiredSkills:          req.RequiredSkills,
		RequiredExperienceYears: req.RequiredExperienceYears,
		Location:                req.Location,
		Remote:                  req.Remote,
		RequiredEducation:       req.RequiredEducation,
		Salary:                  req.Salary,
		Benefits:                req.Benefits,
		PostedBy:                req.PostedBy,
		Status:                  job.JobStatusDraft, // Start as draft
		CreatedAt:               time.Now(),
		UpdatedAt:               time.Now(),
	}

	if err := s.jobRepo.Create(ctx, newJob); err != nil {
		return nil, errx.Wrap(err, "failed to create job", errx.TypeInternal)
	}

	return newJob, nil
}

// GetJobByID retrieves a job by ID
func (s *JobService) GetJobByID(ctx context.Context, jobID kernel.JobID) (*job.JobResponse, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	resp := s.toJobResponse(jobEntity)
	return &resp, nil
}

// ListJobs retrieves all jobs with pagination
func (s *JobService) ListJobs(ctx context.Context, pagination kernel.PaginationOptions) (*job.PaginatedJobsResponse, error) {
	jobs, err := s.jobRepo.List(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list jobs", errx.TypeInternal)
	}

	responses := make([]job.JobResponse, 0, len(jobs.Items))
	for _, j := range jobs.Items {
		responses = append(responses, s.toJobResponse(&j))
	}

	return &kernel.Paginated[job.JobResponse]{
		Items: responses,
		Page:  jobs.Page,
		Empty: jobs.Empty,
	}, nil
}

// ListPublishedJobs retrieves only published/active jobs
func (s *JobService) ListPublishedJobs(ctx context.Context, pagination kernel.PaginationOptions) (*job.PaginatedJobsResponse, error) {
	jobs, err := s.jobRepo.ListPublished(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list published jobs", errx.TypeInternal)
	}

	responses := make([]job.JobResponse, 0, len(jobs.Items))
	for _, j := range jobs.Items {
		responses = append(responses, s.toJobResponse(&j))
	}

	return &kernel.Paginated[job.JobResponse]{
		Items: responses,
		Page:  jobs.Page,
		Empty: jobs.Empty,
	}, nil
}

// ListArchivedJobs retrieves archived jobs
func (s *JobService) ListArchivedJobs(ctx context.Context, pagination kernel.PaginationOptions) (*job.PaginatedJobsResponse, error) {
	jobs, err := s.jobRepo.ListArchived(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list archived jobs", errx.TypeInternal)
	}

	responses := make([]job.JobResponse, 0, len(jobs.Items))
	for _, j := range jobs.Items {
		responses = append(responses, s.toJobResponse(&j))
	}

	return &kernel.Paginated[job.JobResponse]{
		Items: responses,
		Page:  jobs.Page,
		Empty: jobs.Empty,
	}, nil
}

// SearchJobs searches jobs by various criteria
func (s *JobService) SearchJobs(ctx context.Context, req job.SearchJobsRequest) (*job.PaginatedJobsResponse, error) {
	jobs, err := s.jobRepo.Search(ctx, req)
	if err != nil {
		return nil, errx.Wrap(err, "failed to search jobs", errx.TypeInternal)
	}

	responses := make([]job.JobResponse, 0, len(jobs.Items))
	for _, j := range jobs.Items {
		responses = append(responses, s.toJobResponse(&j))
	}

	return &kernel.Paginated[job.JobResponse]{
		Items: responses,
		Page:  jobs.Page,
		Empty: jobs.Empty,
	}, nil
}

// UpdateJob updates an existing job
func (s *JobService) UpdateJob(ctx context.Context, jobID kernel.JobID, req job.UpdateJobRequest) (*job.Job, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	// Verify job is not archived
	if jobEntity.IsArchived() {
		return nil, job.ErrJobArchived().WithDetail("job_id", jobID.String())
	}

	if req.Salary != nil && req.Salary.Min > req.Salary.Max {
		return nil, job.ErrInvalidSalaryRange().
			WithDetail("min", req.Salary.Min).
			WithDetail("max", req.Salary.Max)
	}

	// Update fields if provided
	updated := false

	if req.Title != nil && *req.Title != jobEntity.Title {
		jobEntity.Title = *req.Title
		updated = true
	}

	if req.Description != nil && *req.Description != jobEntity.Description {
		jobEntity.Description = *req.Description
		updated = true
	}

	if req.RequiredSkills != nil {
		jobEntity.RequiredSkills = *req.RequiredSkills
		updated = true
	}

	if req.RequiredExperienceYears != nil {
		jobEntity.RequiredExperienceYears = req.RequiredExperienceYears
		updated = true
	}

	if req.RequiredEducation != nil {
		jobEntity.RequiredEducation = *req.RequiredEducation
		updated = true
	}

	if req.Location != nil {
		jobEntity.Location = req.Location
		updated = true
	}

	if req.Remote != nil {
		jobEntity.Remote = *req.Remote
		updated = true
	}

	if req.Salary != nil {
		jobEntity.Salary = req.Salary
		updated = true
	}

	if req.Benefits != nil {
		jobEntity.Benefits = *req.Benefits
		updated = true
	}

	if updated {
		jobEntity.UpdatedAt = time.Now()

		if err := s.jobRepo.Update(ctx, jobID, jobEntity); err != nil {
			return nil, errx.Wrap(err, "failed to update job", errx.TypeInternal)
		}
	}

	return jobEntity, nil
}

// PublishJob marks a job as published/active
func (s *JobService) PublishJob(ctx context.Context, jobID kernel.JobID) error {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	// Business rule: Can't publish archived jobs
	if jobEntity.IsArchived() {
		return job.ErrJobArchived().
			WithDetail("job_id", jobID.String()).
			WithDetail("message", "Cannot publish an archived job")
	}

	// Business rule: Can't publish already published jobs
	if jobEntity.IsPublished() {
		return job.ErrJobAlreadyPublished().WithDetail("job_id", jobID.String())
	}

	return s.jobRepo.Publish(ctx, jobID)
}

// UnpublishJob marks a job as unpublished/draft
func (s *JobService) UnpublishJob(ctx context.Context, jobID kernel.JobID) error {
	if _, err := s.jobRepo.GetByID(ctx, jobID); err != nil {
		return job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	return s.jobRepo.Unpublish(ctx, jobID)
}

// ArchiveJob archives a job
func (s *JobService) ArchiveJob(ctx context.Context, jobID kernel.JobID) error {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	// Business rule: Can't archive already archived jobs
	if jobEntity.IsArchived() {
		return job.ErrJobAlreadyArchived().WithDetail("job_id", jobID.String())
	}

	return s.jobRepo.Archive(ctx, jobID)
}

// UnarchiveJob unarchives a job
func (s *JobService) UnarchiveJob(ctx context.Context, jobID kernel.JobID) error {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	// Business rule: Can only unarchive archived jobs
	if !jobEntity.IsArchived() {
		return job.ErrJobNotArchived().WithDetail("job_id", jobID.String())
	}

	return s.jobRepo.Unarchive(ctx, jobID)
}

// DeleteJob deletes a job
func (s *JobService) DeleteJob(ctx context.Context, jobID kernel.JobID) error {
	if _, err := s.jobRepo.GetByID(ctx, jobID); err != nil {
		return job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		return errx.Wrap(err, "failed to delete job", errx.TypeInternal)
	}

	return nil
}

// ============================================================================
// Helper Methods
// ============================================================================

// toJobResponse converts a Job entity to JobResponse DTO
func (s *JobService) toJobResponse(j *job.Job) job.JobResponse {
	return job.JobResponse{
		ID:                      j.ID,
		Title:                   j.Title,
		Description:             j.Description,
		RequiredSkills:          j.RequiredSkills,
		RequiredExperienceYears: j.RequiredExperienceYears,
		Location:                j.Location,
		Remote:                  j.Remote,
		RequiredEducation:       j.RequiredEducation,
		Salary:                  j.Salary,
		Benefits:                j.Benefits,
		PostedBy:                j.PostedBy,
		Status:                  j.Status,
		PublishedAt:             j.PublishedAt,
		ArchivedAt:              j.ArchivedAt,
		CreatedAt:               j.CreatedAt,
		UpdatedAt:               j.UpdatedAt,
	}
}
