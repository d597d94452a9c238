package job

import (
	"testing"

	"github.com/Abraxas-365/conecta/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJob_PublishLifecycle(t *testing.T) {
	j := &Job{
		ID:     kernel.NewJobID("job-1"),
		Title:  "Backend Developer",
		Status: JobStatusDraft,
	}

	require.True(t, j.CanBePublished())
	require.NoError(t, j.Publish())

	assert.Equal(t, JobStatusPublished, j.Status)
	assert.NotNil(t, j.PublishedAt)
	assert.True(t, j.IsPublished())

	j.Unpublish()
	assert.Equal(t, JobStatusDraft, j.Status)
}

func TestJob_PublishArchivedFails(t *testing.T) {
	j := &Job{Status: JobStatusArchived}

	err := j.Publish()
	require.Error(t, err)
	assert.False(t, j.IsPublished())
}

func TestJob_ArchiveUnarchive(t *testing.T) {
	j := &Job{Status: JobStatusPublished}

	require.NoError(t, j.Archive())
	assert.True(t, j.IsArchived())
	assert.NotNil(t, j.ArchivedAt)

	// Archiving twice is rejected
	require.Error(t, j.Archive())

	require.NoError(t, j.Unarchive())
	assert.Equal(t, JobStatusDraft, j.Status)
	assert.Nil(t, j.ArchivedAt)
}

func TestJob_UpdateRequirements(t *testing.T) {
	j := &Job{Status: JobStatusDraft}

	years := 3.0
	education := kernel.EducationSuperior
	j.UpdateRequirements([]kernel.Skill{"Go", "SQL"}, &years, &education)

	assert.Equal(t, []kernel.Skill{"Go", "SQL"}, j.RequiredSkills)
	assert.Equal(t, 3.0, *j.RequiredExperienceYears)
	assert.Equal(t, kernel.EducationSuperior, j.RequiredEducation)
}
