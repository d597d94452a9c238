package candidate

import (
	"testing"

	"github.com/Abraxas-365/conecta/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidate_ArchiveUnarchive(t *testing.T) {
	c := &Candidate{
		ID:     kernel.NewCandidateID("cand-1"),
		Status: CandidateStatusActive,
	}

	require.NoError(t, c.Archive())
	assert.True(t, c.IsArchived())
	assert.NotNil(t, c.ArchivedAt)
	assert.False(t, c.CanApplyToJob())

	// Archiving twice is rejected
	require.Error(t, c.Archive())

	require.NoError(t, c.Unarchive())
	assert.True(t, c.IsActive())
	assert.Nil(t, c.ArchivedAt)
	assert.True(t, c.CanApplyToJob())
}

func TestCandidate_UnarchiveNotArchivedFails(t *testing.T) {
	c := &Candidate{Status: CandidateStatusActive}
	require.Error(t, c.Unarchive())
}

func TestCandidate_UpdateEducation(t *testing.T) {
	c := &Candidate{Status: CandidateStatusActive}

	require.NoError(t, c.UpdateEducation(kernel.EducationMestrado))
	assert.Equal(t, kernel.EducationMestrado, c.Education)

	err := c.UpdateEducation(kernel.EducationLevel("bootcamp"))
	require.Error(t, err)
	assert.Equal(t, kernel.EducationMestrado, c.Education)
}

func TestCandidate_GetFullName(t *testing.T) {
	c := &Candidate{FirstName: "Ana", LastName: "Souza"}
	assert.Equal(t, "Ana Souza", c.GetFullName())
}

func TestCandidate_DeactivateActivate(t *testing.T) {
	c := &Candidate{Status: CandidateStatusActive}

	c.Deactivate()
	assert.False(t, c.IsActive())
	assert.False(t, c.CanApplyToJob())

	c.Activate()
	assert.True(t, c.IsActive())
}
