package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEducationLevel_TotalOrder(t *testing.T) {
	ordered := []EducationLevel{
		EducationFundamental,
		EducationMedio,
		EducationTecnico,
		EducationSuperior,
		EducationPos,
		EducationMestrado,
		EducationDoutorado,
	}

	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, ordered[i].Rank(), ordered[i-1].Rank())
		assert.True(t, ordered[i].AtLeast(ordered[i-1]))
		assert.False(t, ordered[i-1].AtLeast(ordered[i]))
	}
}

func TestEducationLevel_UnknownRanksZero(t *testing.T) {
	assert.Equal(t, 0, EducationLevel("bootcamp").Rank())
	assert.False(t, EducationLevel("bootcamp").IsValid())
	assert.True(t, EducationSuperior.IsValid())
}

func TestLocation_CaseInsensitiveComparison(t *testing.T) {
	a := Location{City: "São Paulo", State: "SP"}
	b := Location{City: "são paulo", State: "sp"}
	c := Location{City: "Campinas", State: "SP"}

	assert.True(t, a.SameCity(b))
	assert.True(t, a.SameState(b))
	assert.False(t, a.SameCity(c))
	assert.True(t, a.SameState(c))
}

func TestSalaryRange_ContainsInclusive(t *testing.T) {
	r := SalaryRange{Min: 8000, Max: 12000}

	assert.True(t, r.Contains(8000))
	assert.True(t, r.Contains(12000))
	assert.True(t, r.Contains(10000))
	assert.False(t, r.Contains(7999.99))
	assert.False(t, r.Contains(12000.01))
}
