package personalizationapi

import (
	"github.com/Abraxas-365/conecta/personalization"
	"github.com/Abraxas-365/conecta/personalization/personalizationsrv"
	"github.com/Abraxas-365/conecta/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for personalization operations
type Handlers struct {
	service *personalizationsrv.PersonalizationService
}

// NewHandlers creates a new personalization handlers instance
func NewHandlers(service *personalizationsrv.PersonalizationService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// RecordEvent enqueues a behavior event
// POST /api/personalization/events
func (h *Handlers) RecordEvent(c *fiber.Ctx) error {
	var req personalization.RecordEventRequest
	if err := c.BodyParser(&req); err != nil {
		return personalization.ErrInvalidPayload().WithDetail("parse_error", err.Error())
	}

	if err := h.service.RecordEvent(c.Context(), req); err != nil {
		return err
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "Event accepted",
	})
}

// GetProfile returns a user's personalization state
// GET /api/personalization/users/:userId/profile
func (h *Handlers) GetProfile(c *fiber.Ctx) error {
	userID := kernel.UserID(c.Params("userId"))
	if userID.IsEmpty() {
		return personalization.ErrInvalidPayload().WithDetail("user_id", "missing or empty")
	}

	profile, err := h.service.GetProfile(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(profile)
}

// ResetProfile drops a user's personalization state
// DELETE /api/personalization/users/:userId/profile
func (h *Handlers) ResetProfile(c *fiber.Ctx) error {
	userID := kernel.UserID(c.Params("userId"))
	if userID.IsEmpty() {
		return personalization.ErrInvalidPayload().WithDetail("user_id", "missing or empty")
	}

	if err := h.service.ResetProfile(c.Context(), userID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// RankContent scores and orders content items for a user
// POST /api/personalization/users/:userId/rank
func (h *Handlers) RankContent(c *fiber.Ctx) error {
	userID := kernel.UserID(c.Params("userId"))
	if userID.IsEmpty() {
		return personalization.ErrInvalidPayload().WithDetail("user_id", "missing or empty")
	}

	var req personalization.RankContentRequest
	if err := c.BodyParser(&req); err != nil {
		return personalization.ErrInvalidPayload().WithDetail("parse_error", err.Error())
	}

	ranked, err := h.service.RankContent(c.Context(), userID, req)
	if err != nil {
		return err
	}

	return c.JSON(ranked)
}

// NavigationOrder returns a user's sections ordered by time spent
// GET /api/personalization/users/:userId/navigation
func (h *Handlers) NavigationOrder(c *fiber.Ctx) error {
	userID := kernel.UserID(c.Params("userId"))
	if userID.IsEmpty() {
		return personalization.ErrInvalidPayload().WithDetail("user_id", "missing or empty")
	}

	order, err := h.service.NavigationOrder(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(order)
}

// RegisterRoutes registers all personalization routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/personalization")

	api.Post("/events", handlers.RecordEvent)
	api.Get("/users/:userId/profile", handlers.GetProfile)
	api.Delete("/users/:userId/profile", handlers.ResetProfile)
	api.Post("/users/:userId/rank", handlers.RankContent)
	api.Get("/users/:userId/navigation", handlers.NavigationOrder)
}
