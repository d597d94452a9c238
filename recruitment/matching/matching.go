package matching

import (
	"github.com/Abraxas-365/conecta/pkg/kernel"
)

// CandidateProfile is the immutable candidate-side input of a scoring call.
// Optional fields are pointers; a nil pointer means the candidate never
// provided the value and the corresponding sub-score falls back to its
// documented default.
type CandidateProfile struct {
	Skills          []kernel.Skill        `json:"skills,omitempty"`
	ExperienceYears *float64              `json:"experience_years,omitempty"`
	Location        *kernel.Location      `json:"location,omitempty"`
	Education       kernel.EducationLevel `json:"education_level,omitempty"`
	ExpectedSalary  *float64              `json:"expected_salary,omitempty"`
}

// JobPosting is the immutable job-side input of a scoring call
type JobPosting struct {
	RequiredSkills          []kernel.Skill        `json:"required_skills,omitempty"`
	RequiredExperienceYears *float64              `json:"required_experience_years,omitempty"`
	Location                *kernel.Location      `json:"location,omitempty"`
	Remote                  bool                  `json:"remote"`
	RequiredEducation       kernel.EducationLevel `json:"required_education_level,omitempty"`
	Salary                  *kernel.SalaryRange   `json:"salary_range,omitempty"`
}

// Badge is the discrete compatibility label shown on match cards
type Badge struct {
	Level    string `json:"level"`
	Label    string `json:"label"`
	Color    string `json:"color"`
	MinScore int    `json:"min_score"`
}

// Badge bands evaluated high to low; the first band whose MinScore the
// final score reaches wins.
var badgeBands = []Badge{
	{Level: "perfeita", Label: "Compatibilidade Perfeita", Color: "#059669", MinScore: 90},
	{Level: "alta", Label: "Alta Compatibilidade", Color: "#10b981", MinScore: 75},
	{Level: "boa", Label: "Boa Compatibilidade", Color: "#f59e0b", MinScore: 60},
	{Level: "potencial", Label: "Compatibilidade Potencial", Color: "#f97316", MinScore: 40},
	{Level: "baixa", Label: "Baixa Compatibilidade", Color: "#ef4444", MinScore: 0},
}

// Classify maps a 0-100 score to its badge band, first match wins
func Classify(score int) Badge {
	for _, band := range badgeBands {
		if score >= band.MinScore {
			return band
		}
	}
	return badgeBands[len(badgeBands)-1]
}
