package registry_test

import (
	"testing"

	"go-resume-backend/internal/domain"
	"go-resume-backend/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	r := registry.New()

	t.Run("Should list every resource exactly once", func(t *testing.T) {
		assert.Equal(t, []domain.ResourceName{
			domain.ResourceSkills,
			domain.ResourceLanguages,
			domain.ResourceHobbies,
			domain.ResourceExperiences,
			domain.ResourceEducations,
			domain.ResourceReferences,
			domain.ResourceProjects,
		}, r.Resources())
	})

	t.Run("Should reject names outside the catalog", func(t *testing.T) {
		_, err := r.Definition("certificates")
		var uerr *domain.UnknownResourceError
		assert.ErrorAs(t, err, &uerr)
	})

	t.Run("Should scope everything except projects", func(t *testing.T) {
		for _, name := range r.Resources() {
			def, err := r.Definition(name)
			require.NoError(t, err)
			assert.Equal(t, name != domain.ResourceProjects, def.ScopedByUser, string(name))
		}
	})

	t.Run("Should construct the matching entity type", func(t *testing.T) {
		def, err := r.Definition(domain.ResourceSkills)
		require.NoError(t, err)
		_, ok := def.New().(*domain.Skill)
		assert.True(t, ok)
	})
}

func TestCloneIsolation(t *testing.T) {
	r := registry.New()

	t.Run("Should not leak field writes back to the original", func(t *testing.T) {
		def, err := r.Definition(domain.ResourceSkills)
		require.NoError(t, err)

		original := &domain.Skill{Name: "Go", Type: "backend", Level: 5}
		clone := def.Clone(original)
		require.NoError(t, def.Apply(clone, "level", 9))

		assert.Equal(t, 5, original.Level)
		assert.Equal(t, 9, clone.(*domain.Skill).Level)
	})

	t.Run("Should copy the media slice, not alias it", func(t *testing.T) {
		def, err := r.Definition(domain.ResourceReferences)
		require.NoError(t, err)

		original := &domain.Reference{MediaItems: []domain.Media{{Path: "a.pdf"}}}
		clone := def.Clone(original).(*domain.Reference)
		clone.MediaItems[0].Path = "b.pdf"

		assert.Equal(t, "a.pdf", original.MediaItems[0].Path)
	})

	t.Run("Should copy the git link pointer", func(t *testing.T) {
		def, err := r.Definition(domain.ResourceProjects)
		require.NoError(t, err)

		link := "https://example.org/a.git"
		original := &domain.Project{Name: "site", GitLink: &link}
		clone := def.Clone(original).(*domain.Project)
		require.NoError(t, def.Apply(clone, "gitLink", "https://example.org/b.git"))

		assert.Equal(t, "https://example.org/a.git", *original.GitLink)
		assert.Equal(t, "https://example.org/b.git", *clone.GitLink)
	})
}

func TestApplyMedias(t *testing.T) {
	r := registry.New()
	def, err := r.Definition(domain.ResourceReferences)
	require.NoError(t, err)

	ref := &domain.Reference{MediaItems: []domain.Media{{Path: "old.pdf"}}}
	require.NoError(t, def.Apply(ref, "medias", []domain.Media{{Path: "a.pdf"}, {Path: "b.pdf"}}))

	require.Len(t, ref.MediaItems, 2)
	assert.Equal(t, "a.pdf", ref.MediaItems[0].Path)
	assert.Equal(t, "b.pdf", ref.MediaItems[1].Path)
}

func TestApplyUnknownField(t *testing.T) {
	r := registry.New()
	def, err := r.Definition(domain.ResourceHobbies)
	require.NoError(t, err)

	assert.Error(t, def.Apply(&domain.Hobby{}, "color", "red"))
}
