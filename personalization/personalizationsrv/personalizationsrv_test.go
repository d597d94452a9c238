package personalizationsrv

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Abraxas-365/conecta/personalization"
	"github.com/Abraxas-365/conecta/personalization/personalizationinfra"
	"github.com/Abraxas-365/conecta/pkg/errx"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*PersonalizationService, personalization.EventQueue) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	store := personalizationinfra.NewRedisProfileStore(client, 30*24*time.Hour)
	queue := personalizationinfra.NewRedisEventQueue(client, "personalization:events")
	engine := personalization.NewEngine()

	return NewPersonalizationService(store, queue, engine, 24*time.Hour), queue
}

func TestPersonalizationService_RecordEvent_Enqueues(t *testing.T) {
	service, queue := newTestService(t)
	ctx := context.Background()

	err := service.RecordEvent(ctx, personalization.RecordEventRequest{
		UserID: "user-1",
		Type:   personalization.EventTypeSearch,
		Term:   "golang",
	})
	require.NoError(t, err)

	data, err := queue.Dequeue(ctx, time.Second)
	require.NoError(t, err)

	var event personalization.BehaviorEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, personalization.EventTypeSearch, event.Type)
	assert.Equal(t, "golang", event.Term)
	assert.False(t, event.OccurredAt.IsZero())
}

func TestPersonalizationService_RecordEvent_RejectsInvalid(t *testing.T) {
	service, _ := newTestService(t)

	err := service.RecordEvent(context.Background(), personalization.RecordEventRequest{
		UserID: "user-1",
		Type:   personalization.EventTypeSearch,
		// missing term
	})
	require.Error(t, err)

	var domainErr *errx.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, personalization.CodeInvalidEvent, domainErr.Code)
}

func TestPersonalizationService_ApplyEvent_Search(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	event := personalization.BehaviorEvent{
		UserID:     "user-1",
		Type:       personalization.EventTypeSearch,
		Term:       "kubernetes",
		OccurredAt: time.Now(),
	}

	require.NoError(t, service.ApplyEvent(ctx, event))
	require.NoError(t, service.ApplyEvent(ctx, event))
	require.NoError(t, service.ApplyEvent(ctx, event))

	profile, err := service.GetProfile(ctx, "user-1")
	require.NoError(t, err)

	require.Len(t, profile.Interests, 1)
	assert.Equal(t, "kubernetes", profile.Interests[0].Term)
	assert.Equal(t, 0.3, profile.Interests[0].Weight)

	require.Len(t, profile.SearchHistory, 3)
	assert.Equal(t, "kubernetes", profile.SearchHistory[0])
}

func TestPersonalizationService_ApplyEvent_PageView(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, service.ApplyEvent(ctx, personalization.BehaviorEvent{
		UserID:     "user-1",
		Type:       personalization.EventTypePageView,
		Page:       "jobs",
		Seconds:    30,
		OccurredAt: time.Now(),
	}))
	require.NoError(t, service.ApplyEvent(ctx, personalization.BehaviorEvent{
		UserID:     "user-1",
		Type:       personalization.EventTypePageView,
		Page:       "jobs",
		Seconds:    15,
		OccurredAt: time.Now(),
	}))

	profile, err := service.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 45.0, profile.Frequencies["jobs"])
}

func TestPersonalizationService_ApplyEvent_StalePageViewDropped(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, service.ApplyEvent(ctx, personalization.BehaviorEvent{
		UserID:     "user-1",
		Type:       personalization.EventTypePageView,
		Page:       "jobs",
		Seconds:    30,
		OccurredAt: time.Now().Add(-48 * time.Hour),
	}))

	profile, err := service.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, profile.Frequencies)
}

func TestPersonalizationService_RankContent(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	// Build up interest in golang
	for i := 0; i < 5; i++ {
		require.NoError(t, service.ApplyEvent(ctx, personalization.BehaviorEvent{
			UserID:     "user-1",
			Type:       personalization.EventTypeContentView,
			Term:       "golang",
			OccurredAt: time.Now(),
		}))
	}

	ranked, err := service.RankContent(ctx, "user-1", personalization.RankContentRequest{
		UserType: personalization.UserTypeCandidate,
		Items: []personalization.ContentItem{
			{ID: "c1", Title: "Receitas de cozinha", Body: "nada a ver"},
			{ID: "c2", Title: "Vaga golang sênior", Body: "trabalhe com golang"},
			{ID: "c3", Title: "Curso de fotografia", Body: ""},
		},
	})
	require.NoError(t, err)

	require.Len(t, ranked, 3)
	assert.Equal(t, "c2", ranked[0].Item.ID.String())
	// golang interest 0.5 + candidate/job affinity 0.3
	assert.InDelta(t, 0.8, ranked[0].Relevance, 1e-9)
	assert.Equal(t, personalization.CategoryJob, ranked[0].Category)

	for _, r := range ranked {
		assert.GreaterOrEqual(t, r.Relevance, 0.0)
		assert.LessOrEqual(t, r.Relevance, 1.0)
	}
}

func TestPersonalizationService_NavigationOrder(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	pages := map[string]float64{"jobs": 300, "messages": 50, "courses": 120}
	for page, seconds := range pages {
		require.NoError(t, service.ApplyEvent(ctx, personalization.BehaviorEvent{
			UserID:     "user-1",
			Type:       personalization.EventTypePageView,
			Page:       page,
			Seconds:    seconds,
			OccurredAt: time.Now(),
		}))
	}

	order, err := service.NavigationOrder(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"jobs", "courses", "messages"}, order.Sections)
}

func TestPersonalizationService_ResetProfile(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, service.ApplyEvent(ctx, personalization.BehaviorEvent{
		UserID:     "user-1",
		Type:       personalization.EventTypeSearch,
		Term:       "golang",
		OccurredAt: time.Now(),
	}))

	require.NoError(t, service.ResetProfile(ctx, "user-1"))

	profile, err := service.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, profile.Interests)
	assert.Empty(t, profile.SearchHistory)
	assert.Empty(t, profile.Frequencies)
}
