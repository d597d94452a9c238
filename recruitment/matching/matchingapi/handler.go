package matchingapi

import (
	"github.com/Abraxas-365/conecta/pkg/kernel"
	"github.com/Abraxas-365/conecta/recruitment/matching"
	"github.com/Abraxas-365/conecta/recruitment/matching/matchingsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for compatibility scoring
type Handlers struct {
	service *matchingsrv.MatchingService
}

// NewHandlers creates a new matching handlers instance
func NewHandlers(service *matchingsrv.MatchingService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ScorePreview scores a raw candidate/job payload without persistence
// POST /api/matching/preview
func (h *Handlers) ScorePreview(c *fiber.Ctx) error {
	var req matching.ScorePreviewRequest
	if err := c.BodyParser(&req); err != nil {
		return matching.ErrInvalidPayload().WithDetail("parse_error", err.Error())
	}

	return c.JSON(h.service.ScorePreview(req))
}

// ScorePair scores a stored candidate against a stored job
// GET /api/matching/candidates/:candidateId/jobs/:jobId
func (h *Handlers) ScorePair(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("candidateId"))
	if candidateID.IsEmpty() {
		return matching.ErrCandidateNotFound().WithDetail("candidate_id", "missing or empty")
	}

	jobID := kernel.JobID(c.Params("jobId"))
	if jobID.IsEmpty() {
		return matching.ErrJobNotFound().WithDetail("job_id", "missing or empty")
	}

	match, err := h.service.ScorePair(c.Context(), candidateID, jobID)
	if err != nil {
		return err
	}

	return c.JSON(match)
}

// RankJobsForCandidate ranks published jobs for a candidate, best first
// GET /api/matching/candidates/:candidateId/jobs
func (h *Handlers) RankJobsForCandidate(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("candidateId"))
	if candidateID.IsEmpty() {
		return matching.ErrCandidateNotFound().WithDetail("candidate_id", "missing or empty")
	}

	ranked, err := h.service.RankJobsForCandidate(c.Context(), candidateID, parsePaginationOptions(c))
	if err != nil {
		return err
	}

	return c.JSON(ranked)
}

// RankCandidatesForJob ranks active candidates for a job, best first
// GET /api/matching/jobs/:jobId/candidates
func (h *Handlers) RankCandidatesForJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("jobId"))
	if jobID.IsEmpty() {
		return matching.ErrJobNotFound().WithDetail("job_id", "missing or empty")
	}

	ranked, err := h.service.RankCandidatesForJob(c.Context(), jobID, parsePaginationOptions(c))
	if err != nil {
		return err
	}

	return c.JSON(ranked)
}

// ============================================================================
// Helper Functions
// ============================================================================

// parsePaginationOptions extracts pagination options from query parameters
func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	// Ensure valid values
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return kernel.PaginationOptions{
		Page:     page,
		PageSize: pageSize,
	}
}

// RegisterRoutes registers all matching routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/matching")

	api.Post("/preview", handlers.ScorePreview)
	api.Get("/candidates/:candidateId/jobs/:jobId", handlers.ScorePair)
	api.Get("/candidates/:candidateId/jobs", handlers.RankJobsForCandidate)
	api.Get("/jobs/:jobId/candidates", handlers.RankCandidatesForJob)
}
