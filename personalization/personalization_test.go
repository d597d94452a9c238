package personalization

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterestProfile_Observe_AccumulatesExactly(t *testing.T) {
	profile := NewInterestProfile()

	profile.Observe("golang", 0)
	profile.Observe("golang", 0)
	profile.Observe("golang", 0)

	weight, ok := profile.Weight("golang")
	require.True(t, ok)
	assert.Equal(t, 0.3, weight)
}

func TestInterestProfile_Observe_CapsAtOne(t *testing.T) {
	profile := NewInterestProfile()

	for i := 0; i < 15; i++ {
		profile.Observe("redis", 0)
	}

	weight, ok := profile.Weight("redis")
	require.True(t, ok)
	assert.Equal(t, 1.0, weight)
}

func TestInterestProfile_Observe_CustomIncrement(t *testing.T) {
	profile := NewInterestProfile()

	profile.Observe("kafka", 0.25)
	profile.Observe("kafka", 0.25)

	weight, ok := profile.Weight("kafka")
	require.True(t, ok)
	assert.Equal(t, 0.5, weight)
}

func TestInterestProfile_Observe_CaseInsensitiveTermIdentity(t *testing.T) {
	profile := NewInterestProfile()

	profile.Observe("React", 0)
	profile.Observe("react", 0)

	assert.Equal(t, 1, profile.Len())

	weight, ok := profile.Weight("REACT")
	require.True(t, ok)
	assert.Equal(t, 0.2, weight)
}

func TestInterestProfile_BoundedAtTwenty(t *testing.T) {
	profile := NewInterestProfile()

	// 20 interests, increasing weight so term-0 is the weakest
	for i := 0; i < MaxInterests; i++ {
		profile.Observe(fmt.Sprintf("term-%d", i), 0.1+float64(i)*0.02)
	}
	require.Equal(t, MaxInterests, profile.Len())

	// The 21st pushes out the lowest-weighted entry
	profile.Observe("newcomer", 0.5)

	assert.Equal(t, MaxInterests, profile.Len())

	_, dropped := profile.Weight("term-0")
	assert.False(t, dropped, "lowest-weighted interest should be gone")

	_, kept := profile.Weight("newcomer")
	assert.True(t, kept)
}

func TestInterestProfile_SortedDescending(t *testing.T) {
	profile := NewInterestProfile()
	profile.Observe("weak", 0.1)
	profile.Observe("strong", 0.9)
	profile.Observe("middle", 0.5)

	interests := profile.Interests()
	require.Len(t, interests, 3)
	assert.Equal(t, "strong", interests[0].Term)
	assert.Equal(t, "middle", interests[1].Term)
	assert.Equal(t, "weak", interests[2].Term)
}

func TestFrequencyMap_Accumulate(t *testing.T) {
	m := FrequencyMap{}

	m.Accumulate("jobs", 30)
	m.Accumulate("jobs", 15)
	m.Accumulate("courses", 60)
	m.Accumulate("", 10)
	m.Accumulate("profile", -5)

	assert.Equal(t, 45.0, m["jobs"])
	assert.Equal(t, 60.0, m["courses"])
	assert.NotContains(t, m, "")
	assert.NotContains(t, m, "profile")
}

func TestFrequencyMap_SectionsByTime(t *testing.T) {
	m := FrequencyMap{
		"jobs":     120,
		"courses":  300,
		"messages": 45,
	}

	assert.Equal(t, []string{"courses", "jobs", "messages"}, m.SectionsByTime())
}

func TestBehaviorEvent_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		event BehaviorEvent
		valid bool
	}{
		{"search with term", BehaviorEvent{UserID: "u1", Type: EventTypeSearch, Term: "go"}, true},
		{"search without term", BehaviorEvent{UserID: "u1", Type: EventTypeSearch}, false},
		{"content view with term", BehaviorEvent{UserID: "u1", Type: EventTypeContentView, Term: "go"}, true},
		{"page view", BehaviorEvent{UserID: "u1", Type: EventTypePageView, Page: "jobs", Seconds: 12}, true},
		{"page view without seconds", BehaviorEvent{UserID: "u1", Type: EventTypePageView, Page: "jobs"}, false},
		{"missing user", BehaviorEvent{Type: EventTypeSearch, Term: "go"}, false},
		{"unknown type", BehaviorEvent{UserID: "u1", Type: "click"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.event.IsValid())
		})
	}
}
