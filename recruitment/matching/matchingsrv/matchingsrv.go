package matchingsrv

import (
	"context"
	"sort"

	"github.com/Abraxas-365/conecta/pkg/errx"
	"github.com/Abraxas-365/conecta/pkg/kernel"
	"github.com/Abraxas-365/conecta/recruitment/candidate"
	"github.com/Abraxas-365/conecta/recruitment/job"
	"github.com/Abraxas-365/conecta/recruitment/matching"
)

// MatchingService scores persisted candidates against persisted jobs
type MatchingService struct {
	scorer        *matching.Scorer
	candidateRepo candidate.Repository
	jobRepo       job.Repository
}

// NewMatchingService creates a new instance of the matching service
func NewMatchingService(candidateRepo candidate.Repository, jobRepo job.Repository) *MatchingService {
	return &MatchingService{
		scorer:        matching.NewScorer(),
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
	}
}

// ScorePreview scores raw candidate/job payloads without touching storage
func (s *MatchingService) ScorePreview(req matching.ScorePreviewRequest) matching.MatchResponse {
	return s.buildMatch("", "", req.Candidate, req.Job)
}

// ScorePair scores a stored candidate against a stored job. Only published
// jobs can be scored, matching the ranking endpoints.
func (s *MatchingService) ScorePair(ctx context.Context, candidateID kernel.CandidateID, jobID kernel.JobID) (*matching.MatchResponse, error) {
	candidateEntity, err := s.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, matching.ErrCandidateNotFound().WithDetail("candidate_id", candidateID.String())
	}

	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, matching.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	if !jobEntity.IsPublished() {
		return nil, matching.ErrJobNotPublished().WithDetail("job_id", jobID.String())
	}

	match := s.buildMatch(candidateID, jobID, toCandidateProfile(candidateEntity), toJobPosting(jobEntity))
	return &match, nil
}

// RankJobsForCandidate scores the published jobs of one page against a
// candidate and returns them ordered best first
func (s *MatchingService) RankJobsForCandidate(ctx context.Context, candidateID kernel.CandidateID, pagination kernel.PaginationOptions) ([]matching.RankedJobResponse, error) {
	candidateEntity, err := s.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, matching.ErrCandidateNotFound().WithDetail("candidate_id", candidateID.String())
	}

	jobs, err := s.jobRepo.ListPublished(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list published jobs", errx.TypeInternal)
	}

	profile := toCandidateProfile(candidateEntity)

	ranked := make([]matching.RankedJobResponse, 0, len(jobs.Items))
	for _, j := range jobs.Items {
		score := s.scorer.Score(profile, toJobPosting(&j))
		ranked = append(ranked, matching.RankedJobResponse{
			JobID: j.ID,
			Title: j.Title,
			Score: score,
			Badge: matching.Classify(score),
		})
	}

	sort.SliceStable(ranked, func(i, k int) bool {
		return ranked[i].Score > ranked[k].Score
	})

	return ranked, nil
}

// RankCandidatesForJob scores the active candidates of one page against a
// job and returns them ordered best first
func (s *MatchingService) RankCandidatesForJob(ctx context.Context, jobID kernel.JobID, pagination kernel.PaginationOptions) ([]matching.RankedCandidateResponse, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, matching.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	candidates, err := s.candidateRepo.ListActive(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list active candidates", errx.TypeInternal)
	}

	posting := toJobPosting(jobEntity)

	ranked := make([]matching.RankedCandidateResponse, 0, len(candidates.Items))
	for _, c := range candidates.Items {
		score := s.scorer.Score(toCandidateProfile(&c), posting)
		ranked = append(ranked, matching.RankedCandidateResponse{
			CandidateID: c.ID,
			FullName:    c.GetFullName(),
			Score:       score,
			Badge:       matching.Classify(score),
		})
	}

	sort.SliceStable(ranked, func(i, k int) bool {
		return ranked[i].Score > ranked[k].Score
	})

	return ranked, nil
}

// ============================================================================
// Helper Methods
// ============================================================================

func (s *MatchingService) buildMatch(candidateID kernel.CandidateID, jobID kernel.JobID, profile matching.CandidateProfile, posting matching.JobPosting) matching.MatchResponse {
	score := s.scorer.Score(profile, posting)

	return matching.MatchResponse{
		CandidateID: candidateID,
		JobID:       jobID,
		Score:       score,
		Badge:       matching.Classify(score),
		Breakdown: matching.ScoreBreakdown{
			Skills:     s.scorer.SkillsScore(profile.Skills, posting.RequiredSkills),
			Experience: s.scorer.ExperienceScore(profile.ExperienceYears, posting.RequiredExperienceYears),
			Location:   s.scorer.LocationScore(profile.Location, posting.Location, posting.Remote),
			Education:  s.scorer.EducationScore(profile.Education, posting.RequiredEducation),
			Salary:     s.scorer.SalaryScore(profile.ExpectedSalary, posting.Salary),
		},
	}
}

// toCandidateProfile projects the candidate entity onto the scoring input
func toCandidateProfile(c *candidate.Candidate) matching.CandidateProfile {
	return matching.CandidateProfile{
		Skills:          c.Skills,
		ExperienceYears: c.ExperienceYears,
		Location:        c.Location,
		Education:       c.Education,
		ExpectedSalary:  c.ExpectedSalary,
	}
}

// toJobPosting projects the job entity onto the scoring input
func toJobPosting(j *job.Job) matching.JobPosting {
	return matching.JobPosting{
		RequiredSkills:          j.RequiredSkills,
		RequiredExperienceYears: j.RequiredExperienceYears,
		Location:                j.Location,
		Remote:                  j.Remote,
		RequiredEducation:       j.RequiredEducation,
		Salary:                  j.Salary,
	}
}
