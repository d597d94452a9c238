package matching

import (
	"github.com/Abraxas-365/conecta/pkg/kernel"
)

// ScorePreviewRequest - DTO for scoring raw candidate/job payloads without persistence
type ScorePreviewRequest struct {
	Candidate CandidateProfile `json:"candidate" validate:"required"`
	Job       JobPosting       `json:"job" validate:"required"`
}

// MatchResponse - DTO for a scored candidate/job pair
type MatchResponse struct {
	CandidateID kernel.CandidateID `json:"candidate_id,omitempty"`
	JobID       kernel.JobID       `json:"job_id,omitempty"`
	Score       int                `json:"score"`
	Badge       Badge              `json:"badge"`
	Breakdown   ScoreBreakdown     `json:"breakdown"`
}

// ScoreBreakdown exposes the five weighted sub-scores behind a match
type ScoreBreakdown struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Location   float64 `json:"location"`
	Education  float64 `json:"education"`
	Salary     float64 `json:"salary"`
}

// RankedJobResponse - DTO for a job entry in a candidate's ranking
type RankedJobResponse struct {
	JobID kernel.JobID    `json:"job_id"`
	Title kernel.JobTitle `json:"job_title"`
	Score int             `json:"score"`
	Badge Badge           `json:"badge"`
}

// RankedCandidateResponse - DTO for a candidate entry in a job's ranking
type RankedCandidateResponse struct {
	CandidateID kernel.CandidateID `json:"candidate_id"`
	FullName    string             `json:"full_name"`
	Score       int                `json:"score"`
	Badge       Badge              `json:"badge"`
}
