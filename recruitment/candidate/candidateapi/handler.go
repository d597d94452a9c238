package candidateapi

import (
	"github.com/Abraxas-365/conecta/pkg/kernel"
	"github.com/Abraxas-365/conecta/recruitment/candidate"
	"github.com/Abraxas-365/conecta/recruitment/candidate/candidatesrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for candidate operations
type Handlers struct {
	service *candidatesrv.CandidateService
}

// NewHandlers creates a new candidate handlers instance
func NewHandlers(service *candidatesrv.CandidateService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateCandidate registers a new candidate
// POST /api/candidates
func (h *Handlers) CreateCandidate(c *fiber.Ctx) error {
	var req candidate.CreateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return candidate.ErrInvalidPayload().WithDetail("parse_error", err.Error())
	}

	newCandidate, err := h.service.CreateCandidate(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newCandidate)
}

// GetCandidateByID retrieves a candidate by ID
// GET /api/candidates/:id
func (h *Handlers) GetCandidateByID(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID == "" {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	resp, err := h.service.GetCandidateByID(c.Context(), candidateID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ListCandidates retrieves all candidates with pagination
// GET /api/candidates
func (h *Handlers) ListCandidates(c *fiber.Ctx) error {
	pagination := parsePaginationOptions(c)

	candidates, err := h.service.ListCandidates(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(candidates)
}

// ListActiveCandidates retrieves only active candidates
// GET /api/candidates/active
func (h *Handlers) ListActiveCandidates(c *fiber.Ctx) error {
	pagination := parsePaginationOptions(c)

	candidates, err := h.service.ListActiveCandidates(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(candidates)
}

// SearchCandidates searches candidates by various criteria
// POST /api/candidates/search
func (h *Handlers) SearchCandidates(c *fiber.Ctx) error {
	var req candidate.SearchCandidatesRequest
	if err := c.BodyParser(&req); err != nil {
		return candidate.ErrInvalidPayload().WithDetail("parse_error", err.Error())
	}

	candidates, err := h.service.SearchCandidates(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(candidates)
}

// UpdateCandidate updates an existing candidate
// PUT /api/candidates/:id
func (h *Handlers) UpdateCandidate(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID == "" {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	var req candidate.UpdateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return candidate.ErrInvalidPayload().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateCandidate(c.Context(), candidateID, req)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// DeleteCandidate deletes a candidate
// DELETE /api/candidates/:id
func (h *Handlers) DeleteCandidate(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID == "" {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteCandidate(c.Context(), candidateID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// ArchiveCandidate archives a candidate
// POST /api/candidates/:id/archive
func (h *Handlers) ArchiveCandidate(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID == "" {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.ArchiveCandidate(c.Context(), candidateID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Candidate archived successfully",
	})
}

// UnarchiveCandidate unarchives a candidate
// POST /api/candidates/:id/unarchive
func (h *Handlers) UnarchiveCandidate(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID == "" {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.UnarchiveCandidate(c.Context(), candidateID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Candidate unarchived successfully",
	})
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

// RegisterRoutes registers all candidate routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/candidates")

	api.Get("/", handlers.ListCandidates)
	api.Get("/active", handlers.ListActiveCandidates)
	api.Get("/:id", handlers.GetCandidateByID)
	api.Post("/search", handlers.SearchCandidates)
	api.Post("/", handlers.CreateCandidate)
	api.Put("/:id", handlers.UpdateCandidate)
	api.Post("/:id/archive", handlers.ArchiveCandidate)
	api.Post("/:id/unarchive", handlers.UnarchiveCandidate)
	api.Delete("/:id", handlers.DeleteCandidate)
}
