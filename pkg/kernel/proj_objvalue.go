package kernel

import "strings"

type JobTitle string

type JobDescription string

type Skill string

type JobBenefit string

type SectionKey string

func (s SectionKey) String() string { return string(s) }

// EducationLevel níveis de formação usados no portal (sistema educacional brasileiro)
type EducationLevel string

const (
	// EducationFundamental - Ensino Fundamental
	EducationFundamental EducationLevel = "fundamental"

	// EducationMedio - Ensino Médio
	EducationMedio EducationLevel = "medio"

	// EducationTecnico - Curso Técnico
	EducationTecnico EducationLevel = "tecnico"

	// EducationSuperior - Ensino Superior (graduação)
	EducationSuperior EducationLevel = "superior"

	// EducationPos - Pós-graduação (lato sensu)
	EducationPos EducationLevel = "pos"

	// EducationMestrado - Mestrado
	EducationMestrado EducationLevel = "mestrado"

	// EducationDoutorado - Doutorado
	EducationDoutorado EducationLevel = "doutorado"
)

var educationRanks = map[EducationLevel]int{
	EducationFundamental: 1,
	EducationMedio:       2,
	EducationTecnico:     3,
	EducationSuperior:    4,
	EducationPos:         5,
	EducationMestrado:    6,
	EducationDoutorado:   7,
}

// Rank returns the position of the level in the total order. Unknown strings rank 0.
func (e EducationLevel) Rank() int {
	return educationRanks[e]
}

// IsValid checks if the level is one of the known enum values
func (e EducationLevel) IsValid() bool {
	return e.Rank() > 0
}

func (e EducationLevel) IsEmpty() bool { return string(e) == "" }

// AtLeast reports whether the level meets or exceeds the required level
func (e EducationLevel) AtLeast(required EducationLevel) bool {
	return e.Rank() >= required.Rank()
}

// GetDisplayName retorna o nome legível do nível de formação
func (e EducationLevel) GetDisplayName() string {
	switch e {
	case EducationFundamental:
		return "Ensino Fundamental"
	case EducationMedio:
		return "Ensino Médio"
	case EducationTecnico:
		return "Curso Técnico"
	case EducationSuperior:
		return "Ensino Superior"
	case EducationPos:
		return "Pós-graduação"
	case EducationMestrado:
		return "Mestrado"
	case EducationDoutorado:
		return "Doutorado"
	default:
		return "Desconhecido"
	}
}

// Location representa a localização de um candidato ou de uma vaga
type Location struct {
	City  string `db:"city" json:"city"`
	State string `db:"state" json:"state"`
}

// SameCity compares cities case-insensitively
func (l Location) SameCity(other Location) bool {
	return strings.EqualFold(l.City, other.City)
}

// SameState compares states case-insensitively
func (l Location) SameState(other Location) bool {
	return strings.EqualFold(l.State, other.State)
}

// SalaryRange faixa salarial de uma vaga
type SalaryRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether expected falls within [Min, Max] inclusive
func (r SalaryRange) Contains(expected float64) bool {
	return expected >= r.Min && expected <= r.Max
}
