package candidatesrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/conecta/pkg/errx"
	"github.com/Abraxas-365/conecta/pkg/kernel"
	"github.com/Abraxas-365/conecta/recruitment/candidate"
	"github.com/google/uuid"
)

// CandidateService provides business operations for candidates
type CandidateService struct {
	candidateRepo candidate.Repository
}

// NewCandidateService creates a new instance of the candidate service
func NewCandidateService(candidateRepo candidate.Repository) *CandidateService {
	return &CandidateService{
		candidateRepo: candidateRepo,
	}
}

// CreateCandidate registers a new candidate profile
func (s *CandidateService) CreateCandidate(ctx context.Context, req candidate.CreateCandidateRequest) (*candidate.Candidate, error) {
	// Reject duplicated emails up front
	if existing, err := s.candidateRepo.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, candidate.ErrCandidateAlreadyExists().WithDetail("email", req.Email)
	}

	if !req.Education.IsEmpty() && !req.Education.IsValid() {
		return nil, candidate.ErrInvalidEducationLevel().WithDetail("education_level", string(req.Education))
	}

	newCandidate := &candidate.Candidate{
		ID:              kernel.NewCandidateID(uuid.NewString()),
		Email:           req.Email,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Skills:          req.Skills,
		ExperienceYears: req.ExperienceYears,
		Location:        req.Location,
		Education:       req.Education,
		ExpectedSalary:  req.ExpectedSalary,
		Status:          candidate.CandidateStatusActive,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := s.candidateRepo.Create(ctx, newCandidate); err != nil {
		return nil, errx.Wrap(err, "failed to create candidate", errx.TypeInternal)
	}

	return newCandidate, nil
}

// GetCandidateByID retrieves a candidate by ID
func (s *CandidateService) GetCandidateByID(ctx context.Context, id kernel.CandidateID) (*candidate.CandidateResponse, error) {
	entity, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, candidate.ErrCandidateNotFound().WithDetail("candidate_id", id.String())
	}

	resp := s.toCandidateResponse(entity)
	return &resp, nil
}

// ListCandidates retrieves all candidates with pagination
func (s *CandidateService) ListCandidates(ctx context.Context, pagination kernel.PaginationOptions) (*candidate.PaginatedCandidatesResponse, error) {
	candidates, err := s.candidateRepo.List(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list candidates", errx.TypeInternal)
	}

	responses := make([]candidate.CandidateResponse, 0, len(candidates.Items))
	for _, c := range candidates.Items {
		responses = append(responses, s.toCandidateResponse(&c))
	}

	return &kernel.Paginated[candidate.CandidateResponse]{
		Items: responses,
		Page:  candidates.Page,
		Empty: candidates.Empty,
	}, nil
}

// ListActiveCandidates retrieves only active candidates
func (s *CandidateService) ListActiveCandidates(ctx context.Context, pagination kernel.PaginationOptions) (*candidate.PaginatedCandidatesResponse, error) {
	candidates, err := s.candidateRepo.ListActive(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list active candidates", errx.TypeInternal)
	}

	responses := make([]candidate.CandidateResponse, 0, len(candidates.Items))
	for _, c := range candidates.Items {
		responses = append(responses, s.toCandidateResponse(&c))
	}

	return &kernel.Paginated[candidate.CandidateResponse]{
		Items: responses,
		Page:  candidates.Page,
		Empty: candidates.Empty,
	}, nil
}

// SearchCandidates searches candidates by various criteria
func (s *CandidateService) SearchCandidates(ctx context.Context, req candidate.SearchCandidatesRequest) (*candidate.PaginatedCandidatesResponse, error) {
	candidates, err := s.candidateRepo.Search(ctx, req)
	if err != nil {
		return nil, errx.Wrap(err, "failed to search candidates", errx.TypeInternal)
	}

	responses := make([]candidate.CandidateResponse, 0, len(candidates.Items))
	for _, c := range candidates.Items {
		responses = append(responses, s.toCandidateResponse(&c))
	}

	return &kernel.Paginated[candidate.CandidateResponse]{
		Items: responses,
		Page:  candidates.Page,
		Empty: candidates.Empty,
	}, nil
}

// UpdateCandidate updates an existing candidate
func (s *CandidateService) UpdateCandidate(ctx context.Context, id kernel.CandidateID, req candidate.UpdateCandidateRequest) (*candidate.Candidate, error) {
	entity, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, candidate.ErrCandidateNotFound().WithDetail("candidate_id", id.String())
	}

	if entity.IsArchived() {
		return nil, candidate.ErrCandidateAlreadyArchived().WithDetail("candidate_id", id.String())
	}

	updated := false

	if req.FirstName != nil || req.LastName != nil || req.Email != nil {
		firstName, lastName, email := "", "", ""
		if req.FirstName != nil {
			firstName = *req.FirstName
		}
		if req.LastName != nil {
			lastName = *req.LastName
		}
		if req.Email != nil {
			email = *req.Email
		}
		entity.UpdatePersonalInfo(firstName, lastName, email)
		updated = true
	}

	if req.Skills != nil {
		entity.UpdateSkills(*req.Skills)
		updated = true
	}

	if req.ExperienceYears != nil {
		entity.ExperienceYears = req.ExperienceYears
		updated = true
	}

	if req.Education != nil {
		if err := entity.UpdateEducation(*req.Education); err != nil {
			return nil, err
		}
		updated = true
	}

	if req.Location != nil || req.ExpectedSalary != nil {
		entity.UpdateJobPreferences(req.Location, req.ExpectedSalary)
		updated = true
	}

	if updated {
		entity.UpdatedAt = time.Now()

		if err := s.candidateRepo.Update(ctx, id, entity); err != nil {
			return nil, errx.Wrap(err, "failed to update candidate", errx.TypeInternal)
		}
	}

	return entity, nil
}

// ArchiveCandidate archives a candidate
func (s *CandidateService) ArchiveCandidate(ctx context.Context, id kernel.CandidateID) error {
	entity, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return candidate.ErrCandidateNotFound().WithDetail("candidate_id", id.String())
	}

	if entity.IsArchived() {
		return candidate.ErrCandidateAlreadyArchived().WithDetail("candidate_id", id.String())
	}

	return s.candidateRepo.Archive(ctx, id)
}

// UnarchiveCandidate unarchives a candidate
func (s *CandidateService) UnarchiveCandidate(ctx context.Context, id kernel.CandidateID) error {
	entity, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return candidate.ErrCandidateNotFound().WithDetail("candidate_id", id.String())
	}

	if !entity.IsArchived() {
		return candidate.ErrCandidateNotArchived().WithDetail("candidate_id", id.String())
	}

	return s.candidateRepo.Unarchive(ctx, id)
}

// DeleteCandidate deletes a candidate
func (s *CandidateService) DeleteCandidate(ctx context.Context, id kernel.CandidateID) error {
	if err := s.candidateRepo.Delete(ctx, id); err != nil {
		if _, ok := err.(*errx.Error); ok {
			return err
		}
		return errx.Wrap(err, "failed to delete candidate", errx.TypeInternal)
	}
	return nil
}

// ============================================================================
// Helper Methods
// ============================================================================

// toCandidateResponse converts a Candidate entity to CandidateResponse DTO
func (s *CandidateService) toCandidateResponse(c *candidate.Candidate) candidate.CandidateResponse {
	return candidate.CandidateResponse{
		ID:              c.ID,
		Email:           c.Email,
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		Skills:          c.Skills,
		ExperienceYears: c.ExperienceYears,
		Location:        c.Location,
		Education:       c.Education,
		ExpectedSalary:  c.ExpectedSalary,
		Status:          c.Status,
		ArchivedAt:      c.ArchivedAt,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
