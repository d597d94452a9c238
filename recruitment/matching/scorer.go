package matching

import (
	"math"
	"strings"

	"github.com/Abraxas-365/conecta/pkg/kernel"
)

// Fixed sub-score weights, must sum to 1.0
const (
	WeightSkills     = 0.35
	WeightExperience = 0.25
	WeightLocation   = 0.15
	WeightEducation  = 0.15
	WeightSalary     = 0.10
)

// Scorer computes candidate-to-job compatibility. It is stateless; all
// methods are pure functions of their inputs.
type Scorer struct{}

// NewScorer creates a new compatibility scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score computes the overall 0-100 compatibility between a candidate and a
// job posting as the weighted sum of the five sub-scores.
func (s *Scorer) Score(candidate CandidateProfile, job JobPosting) int {
	total := s.SkillsScore(candidate.Skills, job.RequiredSkills)*WeightSkills +
		s.ExperienceScore(candidate.ExperienceYears, job.RequiredExperienceYears)*WeightExperience +
		s.LocationScore(candidate.Location, job.Location, job.Remote)*WeightLocation +
		s.EducationScore(candidate.Education, job.RequiredEducation)*WeightEducation +
		s.SalaryScore(candidate.ExpectedSalary, job.Salary)*WeightSalary

	return int(math.Round(total * 100))
}

// SkillsScore is the fraction of required skills the candidate covers,
// compared case-insensitively. A nil set on either side scores 0. A job
// that declares an empty (non-nil) requirement list scores 1.0: there is
// nothing to fail.
func (s *Scorer) SkillsScore(candidateSkills, requiredSkills []kernel.Skill) float64 {
	if candidateSkills == nil || requiredSkills == nil {
		return 0
	}
	if len(requiredSkills) == 0 {
		return 1.0
	}

	have := make(map[string]struct{}, len(candidateSkills))
	for _, skill := range candidateSkills {
		have[strings.ToLower(string(skill))] = struct{}{}
	}

	matched := 0
	for _, required := range requiredSkills {
		if _, ok := have[strings.ToLower(string(required))]; ok {
			matched++
		}
	}

	return float64(matched) / float64(len(requiredSkills))
}

// ExperienceScore compares candidate years against the requirement in
// stepped tiers. Missing values on either side score the neutral 0.5.
func (s *Scorer) ExperienceScore(candidateYears, requiredYears *float64) float64 {
	if candidateYears == nil || requiredYears == nil {
		return 0.5
	}

	switch {
	case *candidateYears >= *requiredYears:
		return 1.0
	case *candidateYears >= 0.7*(*requiredYears):
		return 0.8
	case *candidateYears >= 0.5*(*requiredYears):
		return 0.6
	default:
		return 0.3
	}
}

// LocationScore is 1.0 for remote jobs regardless of locations. Otherwise
// a missing location on either side scores 0.5, same city 1.0, same state
// 0.7, anything else 0.3.
func (s *Scorer) LocationScore(candidateLocation, jobLocation *kernel.Location, remote bool) float64 {
	if remote {
		return 1.0
	}
	if candidateLocation == nil || jobLocation == nil {
		return 0.5
	}

	switch {
	case candidateLocation.SameCity(*jobLocation):
		return 1.0
	case candidateLocation.SameState(*jobLocation):
		return 0.7
	default:
		return 0.3
	}
}

// EducationScore compares enum ranks. A job with no requirement scores
// 1.0, a candidate with no education 0.3. Meeting or exceeding the
// required rank scores 1.0; below it the credit is candRank/reqRank,
// so an unknown level (rank 0) against any requirement yields 0.
func (s *Scorer) EducationScore(candidateLevel, requiredLevel kernel.EducationLevel) float64 {
	if requiredLevel.IsEmpty() {
		return 1.0
	}
	if candidateLevel.IsEmpty() {
		return 0.3
	}

	candidateRank := candidateLevel.Rank()
	requiredRank := requiredLevel.Rank()
	if requiredRank == 0 {
		return 1.0
	}
	if candidateRank >= requiredRank {
		return 1.0
	}

	return float64(candidateRank) / float64(requiredRank)
}

// SalaryScore checks the expectation against the offered range. Missing
// values score the lenient 0.8. Within [min,max] scores 1.0; otherwise the
// tiers compare against multiples of min only, so expectations far below
// the range still pass the 1.2x check and score 0.8. That asymmetry is
// intentional and kept as-is.
func (s *Scorer) SalaryScore(expectedSalary *float64, salaryRange *kernel.SalaryRange) float64 {
	if expectedSalary == nil || salaryRange == nil {
		return 0.8
	}

	expected := *expectedSalary
	switch {
	case salaryRange.Contains(expected):
		return 1.0
	case expected <= 1.2*salaryRange.Min:
		return 0.8
	case expected <= 1.5*salaryRange.Min:
		return 0.6
	default:
		return 0.3
	}
}
