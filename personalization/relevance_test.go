package personalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Category
	}{
		{"vaga resolves to job", "Nova vaga de backend", CategoryJob},
		{"emprego resolves to job", "Oportunidade de emprego em TI", CategoryJob},
		{"empresa resolves to company", "A empresa cresceu 40%", CategoryCompany},
		{"company keyword", "Company culture handbook", CategoryCompany},
		{"curso resolves to course", "Curso de Go avançado", CategoryCourse},
		{"educação resolves to course", "Plataforma de educação continuada", CategoryCourse},
		{"candidato resolves to candidate", "O candidato ideal para sua equipe", CategoryCandidate},
		{"perfil resolves to candidate", "Atualize seu perfil profissional", CategoryCandidate},
		{"no keyword", "Notícias do mercado financeiro", CategoryGeneral},
		{"case insensitive", "VAGA URGENTE", CategoryJob},
		// Order matters: job rules run before course rules
		{"vaga and curso resolves to job", "Vaga para instrutor de curso", CategoryJob},
		{"curso and candidato resolves to course", "Curso para candidato iniciante", CategoryCourse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InferCategory(tt.text))
		})
	}
}

func TestEngine_Score_InterestContributions(t *testing.T) {
	engine := NewEngine()

	profile := NewInterestProfile(
		Interest{Term: "golang", Weight: 0.4},
		Interest{Term: "redis", Weight: 0.3},
		Interest{Term: "kafka", Weight: 0.2},
	)

	item := ContentItem{Title: "Novidades de Golang", Body: "Integração com Redis na prática"}

	// golang 0.4 + redis 0.3, kafka absent from text
	score := engine.Score(item, profile, nil, UserContext{})
	assert.InDelta(t, 0.7, score, 1e-9)
}

func TestEngine_Score_StaticInterests(t *testing.T) {
	engine := NewEngine("tecnologia")

	item := ContentItem{Title: "Tendências de tecnologia", Body: "panorama do setor"}

	score := engine.Score(item, NewInterestProfile(), nil, UserContext{})
	assert.InDelta(t, 0.3, score, 1e-9)
}

func TestEngine_Score_SearchHistoryBonus(t *testing.T) {
	engine := NewEngine()

	item := ContentItem{Title: "Trabalho remoto em alta", Body: "home office veio para ficar"}
	history := []string{"remoto", "home office", "presencial"}

	// two matches at 0.2 each
	score := engine.Score(item, NewInterestProfile(), history, UserContext{})
	assert.InDelta(t, 0.4, score, 1e-9)
}

func TestEngine_Score_HistoryLimitedToTen(t *testing.T) {
	engine := NewEngine()

	item := ContentItem{Title: "assunto antigo", Body: ""}

	// The matching term sits beyond the last-10 window
	history := make([]string, 0, SearchHistoryLimit+1)
	for i := 0; i < SearchHistoryLimit; i++ {
		history = append(history, "sem-correspondencia")
	}
	history = append(history, "antigo")

	score := engine.Score(item, NewInterestProfile(), history, UserContext{})
	assert.InDelta(t, 0.0, score, 1e-9)
}

func TestEngine_Score_CategoryAffinity(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name     string
		userType UserType
		item     ContentItem
		expected float64
	}{
		{"candidate sees job", UserTypeCandidate, ContentItem{Title: "vaga de backend"}, 0.3},
		{"company sees candidate", UserTypeCompany, ContentItem{Title: "perfil em destaque"}, 0.3},
		{"institution sees course", UserTypeInstitution, ContentItem{Title: "curso novo"}, 0.3},
		{"candidate sees course", UserTypeCandidate, ContentItem{Title: "curso novo"}, 0.0},
		{"no user type", "", ContentItem{Title: "vaga de backend"}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := engine.Score(tt.item, NewInterestProfile(), nil, UserContext{Type: tt.userType})
			assert.InDelta(t, tt.expected, score, 1e-9)
		})
	}
}

func TestEngine_Score_ClampedToOne(t *testing.T) {
	engine := NewEngine()

	profile := NewInterestProfile(
		Interest{Term: "vaga", Weight: 0.9},
		Interest{Term: "backend", Weight: 0.8},
	)
	item := ContentItem{Title: "Vaga backend", Body: "vaga para backend sênior"}
	history := []string{"vaga", "backend"}

	// raw sum 0.9+0.8+0.2+0.2+0.3 clamps to 1
	score := engine.Score(item, profile, history, UserContext{Type: UserTypeCandidate})
	assert.Equal(t, 1.0, score)
}

func TestEngine_Score_NilProfile(t *testing.T) {
	engine := NewEngine()

	item := ContentItem{Title: "qualquer coisa"}
	score := engine.Score(item, nil, nil, UserContext{})
	assert.Equal(t, 0.0, score)
}
