package personalization

import (
	"strings"
)

const (
	// searchMatchBonus is added per matching recent search
	searchMatchBonus = 0.2

	// affinityBonus is added when the user's role pairs with the item's
	// inferred category
	affinityBonus = 0.3

	// staticInterestWeight is the contribution of seed interests that carry
	// no learned weight
	staticInterestWeight = 0.3
)

// categoryRules map keyword substrings to categories. Evaluated in order,
// first match wins; text containing both "vaga" and "curso" is a job
// because the job rule runs first.
var categoryRules = []struct {
	keyword  string
	category Category
}{
	{"vaga", CategoryJob},
	{"emprego", CategoryJob},
	{"empresa", CategoryCompany},
	{"company", CategoryCompany},
	{"curso", CategoryCourse},
	{"educação", CategoryCourse},
	{"candidato", CategoryCandidate},
	{"perfil", CategoryCandidate},
}

// InferCategory classifies content text by keyword, first match wins
func InferCategory(text string) Category {
	lower := strings.ToLower(text)
	for _, rule := range categoryRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.category
		}
	}
	return CategoryGeneral
}

// categoryAffinity pairs a user role with the content category that earns
// the affinity bonus
var categoryAffinity = map[UserType]Category{
	UserTypeCandidate:   CategoryJob,
	UserTypeCompany:     CategoryCandidate,
	UserTypeInstitution: CategoryCourse,
}

// Engine scores content relevance against a user's interest profile. A
// fixed list of static seed interests can bias scoring for all users.
type Engine struct {
	staticInterests []string
}

// NewEngine creates a relevance engine with optional static seed interests
func NewEngine(staticInterests ...string) *Engine {
	return &Engine{staticInterests: staticInterests}
}

// Score computes the 0-1 relevance of an item for a user. Contributions
// are summed then clamped; nothing is normalized by match count, so an
// item matching many interests reaches the cap quickly.
func (e *Engine) Score(item ContentItem, profile *InterestProfile, searchHistory []string, userCtx UserContext) float64 {
	text := strings.ToLower(item.Text())

	score := 0.0

	if profile != nil {
		for _, interest := range profile.Interests() {
			if strings.Contains(text, strings.ToLower(interest.Term)) {
				score += interest.Weight
			}
		}
	}

	for _, seed := range e.staticInterests {
		if seed != "" && strings.Contains(text, strings.ToLower(seed)) {
			score += staticInterestWeight
		}
	}

	history := searchHistory
	if len(history) > SearchHistoryLimit {
		history = history[:SearchHistoryLimit]
	}
	for _, search := range history {
		if search != "" && strings.Contains(text, strings.ToLower(search)) {
			score += searchMatchBonus
		}
	}

	if categoryAffinity[userCtx.Type] == InferCategory(item.Text()) {
		score += affinityBonus
	}

	if score > 1 {
		return 1
	}
	if score < 0 {
		return 0
	}
	return score
}
