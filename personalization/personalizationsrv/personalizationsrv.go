package personalizationsrv

import (
	"context"
	"sort"
	"time"

	"github.com/Abraxas-365/conecta/personalization"
	"github.com/Abraxas-365/conecta/pkg/kernel"
	"github.com/Abraxas-365/conecta/pkg/logx"
)

// PersonalizationService folds behavior events into per-user profiles and
// scores content relevance against them
type PersonalizationService struct {
	store           personalization.ProfileStore
	queue           personalization.EventQueue
	engine          *personalization.Engine
	pageEventWindow time.Duration
}

// NewPersonalizationService creates a new instance of the personalization service
func NewPersonalizationService(
	store personalization.ProfileStore,
	queue personalization.EventQueue,
	engine *personalization.Engine,
	pageEventWindow time.Duration,
) *PersonalizationService {
	return &PersonalizationService{
		store:           store,
		queue:           queue,
		engine:          engine,
		pageEventWindow: pageEventWindow,
	}
}

// RecordEvent validates and enqueues a behavior event for asynchronous
// processing by the worker pool
func (s *PersonalizationService) RecordEvent(ctx context.Context, req personalization.RecordEventRequest) error {
	event := personalization.BehaviorEvent{
		UserID:  req.UserID,
		Type:    req.Type,
		Term:    req.Term,
		Page:    req.Page,
		Seconds: req.Seconds,
	}

	if req.OccurredAt != nil {
		event.OccurredAt = *req.OccurredAt
	} else {
		event.OccurredAt = time.Now()
	}

	if !event.IsValid() {
		return personalization.ErrInvalidEvent().
			WithDetail("user_id", req.UserID.String()).
			WithDetail("type", string(req.Type))
	}

	if err := s.queue.Enqueue(ctx, event); err != nil {
		return personalization.ErrQueueFailure().WithCause(err)
	}

	return nil
}

// ApplyEvent folds one dequeued event into the user's stored profile.
// Callers must serialize invocations per user; the read-modify-write on
// the interest profile is not safe under concurrent writers.
func (s *PersonalizationService) ApplyEvent(ctx context.Context, event personalization.BehaviorEvent) error {
	switch event.Type {
	case personalization.EventTypeSearch:
		if err := s.store.PushSearch(ctx, event.UserID, event.Term); err != nil {
			return err
		}
		return s.observeInterest(ctx, event.UserID, event.Term)

	case personalization.EventTypeContentView:
		return s.observeInterest(ctx, event.UserID, event.Term)

	case personalization.EventTypePageView:
		// Page-time events outside the recency window are dropped before
		// they reach the frequency map
		if time.Since(event.OccurredAt) > s.pageEventWindow {
			logx.Debugf("Dropping stale page event for user %s (page %s)", event.UserID, event.Page)
			return nil
		}

		frequencies, err := s.store.GetFrequencies(ctx, event.UserID)
		if err != nil {
			return err
		}
		frequencies.Accumulate(event.Page, event.Seconds)
		return s.store.SaveFrequencies(ctx, event.UserID, frequencies)

	default:
		return personalization.ErrInvalidEvent().WithDetail("type", string(event.Type))
	}
}

// GetProfile returns the full personalization state of a user
func (s *PersonalizationService) GetProfile(ctx context.Context, userID kernel.UserID) (*personalization.ProfileResponse, error) {
	profile, err := s.store.GetInterests(ctx, userID)
	if err != nil {
		return nil, personalization.ErrStoreFailure().WithCause(err)
	}

	frequencies, err := s.store.GetFrequencies(ctx, userID)
	if err != nil {
		return nil, personalization.ErrStoreFailure().WithCause(err)
	}

	history, err := s.store.GetSearchHistory(ctx, userID)
	if err != nil {
		return nil, personalization.ErrStoreFailure().WithCause(err)
	}

	return &personalization.ProfileResponse{
		UserID:        userID,
		Interests:     profile.Interests(),
		Frequencies:   frequencies,
		SearchHistory: history,
	}, nil
}

// ResetProfile drops all personalization state of a user
func (s *PersonalizationService) ResetProfile(ctx context.Context, userID kernel.UserID) error {
	if err := s.store.Reset(ctx, userID); err != nil {
		return personalization.ErrStoreFailure().WithCause(err)
	}
	return nil
}

// RankContent scores the given items against the user's profile and
// returns them ordered most relevant first
func (s *PersonalizationService) RankContent(ctx context.Context, userID kernel.UserID, req personalization.RankContentRequest) ([]personalization.RankedContentResponse, error) {
	profile, err := s.store.GetInterests(ctx, userID)
	if err != nil {
		return nil, personalization.ErrStoreFailure().WithCause(err)
	}

	history, err := s.store.GetSearchHistory(ctx, userID)
	if err != nil {
		return nil, personalization.ErrStoreFailure().WithCause(err)
	}

	userCtx := personalization.UserContext{Type: req.UserType}

	ranked := make([]personalization.RankedContentResponse, 0, len(req.Items))
	for _, item := range req.Items {
		ranked = append(ranked, personalization.RankedContentResponse{
			Item:      item,
			Relevance: s.engine.Score(item, profile, history, userCtx),
			Category:  personalization.InferCategory(item.Text()),
		})
	}

	sort.SliceStable(ranked, func(i, k int) bool {
		return ranked[i].Relevance > ranked[k].Relevance
	})

	return ranked, nil
}

// NavigationOrder returns the user's sections ordered by accumulated
// time, most visited first
func (s *PersonalizationService) NavigationOrder(ctx context.Context, userID kernel.UserID) (*personalization.NavigationOrderResponse, error) {
	frequencies, err := s.store.GetFrequencies(ctx, userID)
	if err != nil {
		return nil, personalization.ErrStoreFailure().WithCause(err)
	}

	return &personalization.NavigationOrderResponse{
		UserID:   userID,
		Sections: frequencies.SectionsByTime(),
	}, nil
}

// observeInterest applies one observation of a term to the stored profile
func (s *PersonalizationService) observeInterest(ctx context.Context, userID kernel.UserID, term string) error {
	profile, err := s.store.GetInterests(ctx, userID)
	if err != nil {
		return err
	}

	profile.Observe(term, personalization.DefaultInterestIncrement)

	return s.store.SaveInterests(ctx, userID, profile)
}
