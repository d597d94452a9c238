package personalization

import (
	"time"

	"github.com/Abraxas-365/conecta/pkg/kernel"
)

// RecordEventRequest - DTO for submitting a behavior event
type RecordEventRequest struct {
	UserID     kernel.UserID `json:"user_id" validate:"required"`
	Type       EventType     `json:"type" validate:"required"`
	Term       string        `json:"term,omitempty"`
	Page       string        `json:"page,omitempty"`
	Seconds    float64       `json:"seconds,omitempty"`
	OccurredAt *time.Time    `json:"occurred_at,omitempty"`
}

// ProfileResponse - DTO for a user's personalization state
type ProfileResponse struct {
	UserID        kernel.UserID      `json:"user_id"`
	Interests     []Interest         `json:"interests"`
	Frequencies   map[string]float64 `json:"frequencies"`
	SearchHistory []string           `json:"search_history"`
}

// RankContentRequest - DTO for scoring and ordering content items
type RankContentRequest struct {
	UserType UserType      `json:"user_type,omitempty"`
	Items    []ContentItem `json:"items" validate:"required"`
}

// RankedContentResponse - DTO for one scored content item
type RankedContentResponse struct {
	Item      ContentItem `json:"item"`
	Relevance float64     `json:"relevance"`
	Category  Category    `json:"category"`
}

// NavigationOrderResponse - DTO for frequency-driven navigation ordering
type NavigationOrderResponse struct {
	UserID   kernel.UserID `json:"user_id"`
	Sections []string      `json:"sections"`
}
