package cachekey_test

import (
	"testing"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/cachekey"

	"github.com/stretchr/testify/assert"
)

func TestEntityKeys(t *testing.T) {
	t.Run("Should embed resource, id and user", func(t *testing.T) {
		assert.Equal(t, "resume.skills.list.u1", cachekey.EntityListKey(domain.ResourceSkills, "u1"))
		assert.Equal(t, "resume.skills.item.e1.u1", cachekey.EntityItemKey(domain.ResourceSkills, "e1", "u1"))
		assert.Equal(t, "resume.list.skills.u1", cachekey.EntityListTag(domain.ResourceSkills, "u1"))
		assert.Equal(t, "resume.item.skills.e1.u1", cachekey.EntityItemTag(domain.ResourceSkills, "e1", "u1"))
	})

	t.Run("Should fall back to the global segment without a user", func(t *testing.T) {
		assert.Equal(t, "resume.projects.list.global", cachekey.EntityListKey(domain.ResourceProjects, ""))
		assert.Equal(t, "resume.list.projects.global", cachekey.EntityListTag(domain.ResourceProjects, ""))
	})
}

func TestJobListKey(t *testing.T) {
	t.Run("Should be insensitive to filter map ordering", func(t *testing.T) {
		a := cachekey.JobListKey(map[string]string{"page": "1", "page_size": "10"})
		b := cachekey.JobListKey(map[string]string{"page_size": "10", "page": "1"})
		assert.Equal(t, a, b)
	})

	t.Run("Should differ for different filters", func(t *testing.T) {
		a := cachekey.JobListKey(map[string]string{"page": "1"})
		b := cachekey.JobListKey(map[string]string{"page": "2"})
		assert.NotEqual(t, a, b)
	})

	t.Run("Should keep jobs and job items under distinct prefixes", func(t *testing.T) {
		assert.Equal(t, "job_j1", cachekey.JobItemKey("j1"))
		assert.Equal(t, "job_item_j1", cachekey.JobItemTag("j1"))
	})
}
