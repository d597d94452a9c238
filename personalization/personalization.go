package personalization

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Abraxas-365/conecta/pkg/kernel"
)

const (
	// MaxInterests caps the interest profile; lower-weighted entries beyond
	// the cap are dropped permanently.
	MaxInterests = 20

	// MaxInterestWeight is the ceiling any single interest can reach
	MaxInterestWeight = 1.0

	// DefaultInterestIncrement is added per observation of a term
	DefaultInterestIncrement = 0.1

	// SearchHistoryLimit is how many recent searches are retained and
	// consulted during relevance scoring
	SearchHistoryLimit = 10
)

// Interest is one weighted topic of a user's profile
type Interest struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// InterestProfile is a bounded list of interests, unique by term and kept
// sorted descending by weight. The top-20 invariant is structural: every
// mutation re-ranks and truncates before returning.
type InterestProfile struct {
	interests []Interest
}

// NewInterestProfile builds a profile from existing interests, normalizing
// them to the sorted, truncated representation
func NewInterestProfile(interests ...Interest) *InterestProfile {
	p := &InterestProfile{interests: append([]Interest(nil), interests...)}
	p.rerank()
	return p
}

// Observe registers one observation of a term. An existing term grows by
// increment up to the weight ceiling; a new term is inserted at increment.
// Pass 0 to use the default increment.
func (p *InterestProfile) Observe(term string, increment float64) {
	if term == "" {
		return
	}
	if increment <= 0 {
		increment = DefaultInterestIncrement
	}

	for i := range p.interests {
		if strings.EqualFold(p.interests[i].Term, term) {
			p.interests[i].Weight = roundWeight(math.Min(p.interests[i].Weight+increment, MaxInterestWeight))
			p.rerank()
			return
		}
	}

	p.interests = append(p.interests, Interest{
		Term:   term,
		Weight: roundWeight(math.Min(increment, MaxInterestWeight)),
	})
	p.rerank()
}

// Interests returns a copy of the entries, strongest first
func (p *InterestProfile) Interests() []Interest {
	out := make([]Interest, len(p.interests))
	copy(out, p.interests)
	return out
}

// Weight returns the current weight of a term
func (p *InterestProfile) Weight(term string) (float64, bool) {
	for _, it := range p.interests {
		if strings.EqualFold(it.Term, term) {
			return it.Weight, true
		}
	}
	return 0, false
}

// Len returns the number of tracked interests, always <= MaxInterests
func (p *InterestProfile) Len() int {
	return len(p.interests)
}

func (p *InterestProfile) rerank() {
	sort.SliceStable(p.interests, func(i, k int) bool {
		return p.interests[i].Weight > p.interests[k].Weight
	})
	if len(p.interests) > MaxInterests {
		p.interests = p.interests[:MaxInterests]
	}
}

// Weights accumulate in 0.1 steps; rounding keeps repeated increments on
// exact decimal values instead of drifting float sums.
func roundWeight(w float64) float64 {
	return math.Round(w*1e4) / 1e4
}

// FrequencyMap accumulates seconds spent per page or section key. It is
// monotone in memory; retention is enforced at the persistence boundary.
type FrequencyMap map[string]float64

// Accumulate adds seconds to a key
func (m FrequencyMap) Accumulate(key string, seconds float64) {
	if key == "" || seconds <= 0 {
		return
	}
	m[key] += seconds
}

// SectionsByTime returns the keys ordered by accumulated seconds, most
// visited first. Ties break alphabetically so the order is stable.
func (m FrequencyMap) SectionsByTime() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, k int) bool {
		if m[keys[i]] != m[keys[k]] {
			return m[keys[i]] > m[keys[k]]
		}
		return keys[i] < keys[k]
	})
	return keys
}

// UserType is the role a user navigates the portal as
type UserType string

const (
	UserTypeCandidate   UserType = "candidate"
	UserTypeCompany     UserType = "company"
	UserTypeInstitution UserType = "institution"
)

// UserContext carries the per-request user signals relevance scoring uses
type UserContext struct {
	Type        UserType `json:"type"`
	RecentPages []string `json:"recent_pages,omitempty"`
}

// Category is the inferred content category of an item
type Category string

const (
	CategoryJob       Category = "job"
	CategoryCompany   Category = "company"
	CategoryCourse    Category = "course"
	CategoryCandidate Category = "candidate"
	CategoryGeneral   Category = "general"
)

// ContentItem is a scoreable piece of portal content
type ContentItem struct {
	ID    kernel.ContentID `json:"id"`
	Title string           `json:"title"`
	Body  string           `json:"body"`
}

// Text returns the combined searchable text of the item
func (c ContentItem) Text() string {
	return c.Title + " " + c.Body
}

// EventType classifies behavior events
type EventType string

const (
	EventTypeSearch      EventType = "search"
	EventTypePageView    EventType = "page_view"
	EventTypeContentView EventType = "content_view"
)

// BehaviorEvent is one observed user action, queued and folded into the
// user's long-lived profile by the worker pool. Attempts counts how often
// a worker has tried to apply the event; retries carry it back through
// the delayed queue.
type BehaviorEvent struct {
	UserID     kernel.UserID `json:"user_id"`
	Type       EventType     `json:"type"`
	Term       string        `json:"term,omitempty"`
	Page       string        `json:"page,omitempty"`
	Seconds    float64       `json:"seconds,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
	Attempts   int           `json:"attempts,omitempty"`
}

// IsValid checks the event carries what its type requires
func (e BehaviorEvent) IsValid() bool {
	if e.UserID.IsEmpty() {
		return false
	}
	switch e.Type {
	case EventTypeSearch, EventTypeContentView:
		return e.Term != ""
	case EventTypePageView:
		return e.Page != "" && e.Seconds > 0
	default:
		return false
	}
}
