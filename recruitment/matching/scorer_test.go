package matching

import (
	"testing"

	"github.com/Abraxas-365/conecta/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestScorer_Score_PerfectMatch(t *testing.T) {
	scorer := NewScorer()

	candidate := CandidateProfile{
		Skills:          []kernel.Skill{"React", "TypeScript", "Node.js", "Go"},
		ExperienceYears: floatPtr(6),
		Location:        &kernel.Location{City: "São Paulo", State: "SP"},
		Education:       kernel.EducationMestrado,
		ExpectedSalary:  floatPtr(10000),
	}
	job := JobPosting{
		RequiredSkills:          []kernel.Skill{"React", "Node.js"},
		RequiredExperienceYears: floatPtr(3),
		Location:                &kernel.Location{City: "São Paulo", State: "SP"},
		Remote:                  false,
		RequiredEducation:       kernel.EducationSuperior,
		Salary:                  &kernel.SalaryRange{Min: 8000, Max: 12000},
	}

	assert.Equal(t, 100, scorer.Score(candidate, job))
}

func TestScorer_Score_ReferenceCase(t *testing.T) {
	scorer := NewScorer()

	candidate := CandidateProfile{
		Skills:          []kernel.Skill{"React", "Node.js"},
		ExperienceYears: floatPtr(5),
		Location:        &kernel.Location{City: "São Paulo", State: "SP"},
		Education:       kernel.EducationSuperior,
		ExpectedSalary:  floatPtr(9000),
	}
	job := JobPosting{
		RequiredSkills:          []kernel.Skill{"React", "TypeScript", "Node.js"},
		RequiredExperienceYears: floatPtr(3),
		Location:                &kernel.Location{City: "São Paulo", State: "SP"},
		Remote:                  false,
		RequiredEducation:       kernel.EducationSuperior,
		Salary:                  &kernel.SalaryRange{Min: 8000, Max: 12000},
	}

	// skills 2/3*0.35 + experience 0.25 + location 0.15 + education 0.15 +
	// salary 0.10 = 0.8833 -> 88
	score := scorer.Score(candidate, job)
	require.Equal(t, 88, score)

	badge := Classify(score)
	assert.Equal(t, "Alta Compatibilidade", badge.Label)
}

func TestScorer_Score_Bounds(t *testing.T) {
	scorer := NewScorer()

	tests := []struct {
		name      string
		candidate CandidateProfile
		job       JobPosting
	}{
		{
			name:      "both empty",
			candidate: CandidateProfile{},
			job:       JobPosting{},
		},
		{
			name: "total mismatch",
			candidate: CandidateProfile{
				Skills:          []kernel.Skill{"COBOL"},
				ExperienceYears: floatPtr(0),
				Location:        &kernel.Location{City: "Manaus", State: "AM"},
				Education:       kernel.EducationFundamental,
				ExpectedSalary:  floatPtr(50000),
			},
			job: JobPosting{
				RequiredSkills:          []kernel.Skill{"Go", "Kubernetes"},
				RequiredExperienceYears: floatPtr(10),
				Location:                &kernel.Location{City: "São Paulo", State: "SP"},
				RequiredEducation:       kernel.EducationDoutorado,
				Salary:                  &kernel.SalaryRange{Min: 5000, Max: 7000},
			},
		},
		{
			name: "everything missing on candidate side",
			job: JobPosting{
				RequiredSkills:          []kernel.Skill{"Go"},
				RequiredExperienceYears: floatPtr(2),
				Location:                &kernel.Location{City: "Recife", State: "PE"},
				RequiredEducation:       kernel.EducationMedio,
				Salary:                  &kernel.SalaryRange{Min: 3000, Max: 5000},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := scorer.Score(tt.candidate, tt.job)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		})
	}
}

func TestScorer_WeightsSumToOne(t *testing.T) {
	sum := WeightSkills + WeightExperience + WeightLocation + WeightEducation + WeightSalary
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestScorer_SkillsScore(t *testing.T) {
	scorer := NewScorer()

	tests := []struct {
		name      string
		candidate []kernel.Skill
		required  []kernel.Skill
		expected  float64
	}{
		{"nil candidate skills", nil, []kernel.Skill{"Go"}, 0},
		{"nil required skills", []kernel.Skill{"Go"}, nil, 0},
		{"empty required set is trivially met", []kernel.Skill{"Go"}, []kernel.Skill{}, 1.0},
		{"full coverage", []kernel.Skill{"Go", "SQL"}, []kernel.Skill{"Go", "SQL"}, 1.0},
		{"partial coverage", []kernel.Skill{"React", "Node.js"}, []kernel.Skill{"React", "TypeScript", "Node.js"}, 2.0 / 3.0},
		{"case insensitive", []kernel.Skill{"react", "NODE.JS"}, []kernel.Skill{"React", "Node.js"}, 1.0},
		{"no overlap", []kernel.Skill{"Java"}, []kernel.Skill{"Go", "Rust"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, scorer.SkillsScore(tt.candidate, tt.required), 1e-9)
		})
	}
}

func TestScorer_ExperienceScore(t *testing.T) {
	scorer := NewScorer()

	tests := []struct {
		name      string
		candidate *float64
		required  *float64
		expected  float64
	}{
		{"missing candidate years", nil, floatPtr(3), 0.5},
		{"missing required years", floatPtr(5), nil, 0.5},
		{"meets requirement", floatPtr(5), floatPtr(3), 1.0},
		{"exactly at requirement", floatPtr(3), floatPtr(3), 1.0},
		{"at 70 percent", floatPtr(2.1), floatPtr(3), 0.8},
		{"at 50 percent", floatPtr(1.5), floatPtr(3), 0.6},
		{"below half", floatPtr(1), floatPtr(3), 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, scorer.ExperienceScore(tt.candidate, tt.required), 1e-9)
		})
	}
}

func TestScorer_LocationScore(t *testing.T) {
	scorer := NewScorer()

	saoPaulo := &kernel.Location{City: "São Paulo", State: "SP"}
	campinas := &kernel.Location{City: "Campinas", State: "SP"}
	recife := &kernel.Location{City: "Recife", State: "PE"}

	tests := []struct {
		name      string
		candidate *kernel.Location
		job       *kernel.Location
		remote    bool
		expected  float64
	}{
		{"remote ignores mismatched locations", saoPaulo, recife, true, 1.0},
		{"remote ignores missing locations", nil, nil, true, 1.0},
		{"missing candidate location", nil, saoPaulo, false, 0.5},
		{"missing job location", saoPaulo, nil, false, 0.5},
		{"same city", saoPaulo, &kernel.Location{City: "são paulo", State: "SP"}, false, 1.0},
		{"same state only", campinas, saoPaulo, false, 0.7},
		{"different state", recife, saoPaulo, false, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, scorer.LocationScore(tt.candidate, tt.job, tt.remote), 1e-9)
		})
	}
}

func TestScorer_EducationScore(t *testing.T) {
	scorer := NewScorer()

	tests := []struct {
		name      string
		candidate kernel.EducationLevel
		required  kernel.EducationLevel
		expected  float64
	}{
		{"job requires nothing", kernel.EducationFundamental, "", 1.0},
		{"candidate missing", "", kernel.EducationSuperior, 0.3},
		{"meets requirement", kernel.EducationSuperior, kernel.EducationSuperior, 1.0},
		{"exceeds requirement", kernel.EducationDoutorado, kernel.EducationMedio, 1.0},
		{"below requirement gets rank fraction", kernel.EducationMedio, kernel.EducationSuperior, 2.0 / 4.0},
		{"tecnico against mestrado", kernel.EducationTecnico, kernel.EducationMestrado, 3.0 / 6.0},
		{"unknown candidate level ranks zero", kernel.EducationLevel("bootcamp"), kernel.EducationSuperior, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, scorer.EducationScore(tt.candidate, tt.required), 1e-9)
		})
	}
}

func TestScorer_SalaryScore(t *testing.T) {
	scorer := NewScorer()

	rng := &kernel.SalaryRange{Min: 8000, Max: 12000}

	tests := []struct {
		name     string
		expected *float64
		rng      *kernel.SalaryRange
		want     float64
	}{
		{"missing expectation", nil, rng, 0.8},
		{"missing range", floatPtr(9000), nil, 0.8},
		{"within range", floatPtr(9000), rng, 1.0},
		{"at min", floatPtr(8000), rng, 1.0},
		{"at max", floatPtr(12000), rng, 1.0},
		{"far below min still passes 1.2x check", floatPtr(2000), rng, 0.8},
		{"slightly above via 1.5x min", floatPtr(11000), &kernel.SalaryRange{Min: 8000, Max: 9000}, 0.6},
		{"way above range", floatPtr(20000), rng, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, scorer.SalaryScore(tt.expected, tt.rng), 1e-9)
		})
	}
}

func TestClassify_Bands(t *testing.T) {
	tests := []struct {
		score int
		level string
	}{
		{100, "perfeita"},
		{90, "perfeita"},
		{89, "alta"},
		{75, "alta"},
		{74, "boa"},
		{60, "boa"},
		{59, "potencial"},
		{40, "potencial"},
		{39, "baixa"},
		{0, "baixa"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, Classify(tt.score).Level, "score %d", tt.score)
	}
}

func TestClassify_Monotonic(t *testing.T) {
	rank := func(level string) int {
		switch level {
		case "baixa":
			return 0
		case "potencial":
			return 1
		case "boa":
			return 2
		case "alta":
			return 3
		case "perfeita":
			return 4
		}
		return -1
	}

	prev := rank(Classify(0).Level)
	for score := 1; score <= 100; score++ {
		cur := rank(Classify(score).Level)
		require.GreaterOrEqual(t, cur, prev, "badge rank dropped at score %d", score)
		prev = cur
	}
}
