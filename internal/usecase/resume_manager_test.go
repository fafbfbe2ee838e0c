package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-resume-backend/internal/domain"
	"go-resume-backend/internal/registry"
	"go-resume-backend/internal/repository/memory"
	"go-resume-backend/internal/usecase"
	"go-resume-backend/pkg/cachekey"
	"go-resume-backend/pkg/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUserID  = "0192aaaa-0000-7000-8000-000000000001"
	otherUserID = "0192aaaa-0000-7000-8000-000000000002"
)

func newManager() (*usecase.ResumeManager, *memory.ResourceStore) {
	store := memory.NewResourceStore()
	return usecase.NewResumeManager(registry.New(), store, validation.New()), store
}

func TestCreateSkill(t *testing.T) {
	manager, _ := newManager()
	ctx := context.Background()

	t.Run("Should persist a valid skill scoped to the user", func(t *testing.T) {
		entity, inv, err := manager.Create(ctx, domain.ResourceSkills, testUserID, map[string]any{
			"name":  "Go",
			"type":  "backend",
			"level": float64(8),
		})
		require.NoError(t, err)

		skill := entity.(*domain.Skill)
		assert.Equal(t, "Go", skill.Name)
		assert.Equal(t, 8, skill.Level)
		assert.Equal(t, testUserID, skill.UserID.String())
		assert.NotEqual(t, uuid.Nil, skill.ID)
		assert.False(t, skill.CreatedAt.IsZero())

		assert.Empty(t, inv.Keys)
		assert.Equal(t, []string{cachekey.EntityListTag(domain.ResourceSkills, testUserID)}, inv.Tags)

		got, err := manager.Get(ctx, domain.ResourceSkills, skill.ID.String(), testUserID)
		require.NoError(t, err)
		assert.Equal(t, skill.ID, got.GetID())
	})

	t.Run("Should collect all violations on an invalid payload", func(t *testing.T) {
		_, _, err := manager.Create(ctx, domain.ResourceSkills, testUserID, map[string]any{
			"level": float64(0),
		})
		require.Error(t, err)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Violations, 3)
		assert.Contains(t, verr.Violations, "name")
		assert.Contains(t, verr.Violations, "type")
		assert.Contains(t, verr.Violations, "level")
	})

	t.Run("Should reject an unknown resource", func(t *testing.T) {
		_, _, err := manager.Create(ctx, domain.ResourceName("certificates"), testUserID, map[string]any{})
		var uerr *domain.UnknownResourceError
		assert.ErrorAs(t, err, &uerr)
	})

	t.Run("Should require a user for scoped resources", func(t *testing.T) {
		_, _, err := manager.Create(ctx, domain.ResourceSkills, "", map[string]any{"name": "Go", "type": "backend", "level": 5})
		var merr *domain.MissingUserContextError
		assert.ErrorAs(t, err, &merr)
	})
}

func TestOwnerScoping(t *testing.T) {
	manager, _ := newManager()
	ctx := context.Background()

	entity, _, err := manager.Create(ctx, domain.ResourceSkills, testUserID, map[string]any{
		"name": "Go", "type": "backend", "level": float64(5),
	})
	require.NoError(t, err)
	id := entity.GetID().String()

	t.Run("Should hide another user's entity", func(t *testing.T) {
		_, err := manager.Get(ctx, domain.ResourceSkills, id, otherUserID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Should not delete another user's entity", func(t *testing.T) {
		_, _, err := manager.Delete(ctx, domain.ResourceSkills, id, otherUserID)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = manager.Get(ctx, domain.ResourceSkills, id, testUserID)
		assert.NoError(t, err)
	})

	t.Run("Should treat a malformed id as absent", func(t *testing.T) {
		_, err := manager.Get(ctx, domain.ResourceSkills, "not-a-uuid", testUserID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Should list only the user's own entities", func(t *testing.T) {
		_, _, err := manager.Create(ctx, domain.ResourceSkills, otherUserID, map[string]any{
			"name": "Rust", "type": "backend", "level": float64(4),
		})
		require.NoError(t, err)

		mine, err := manager.List(ctx, domain.ResourceSkills, testUserID)
		require.NoError(t, err)
		assert.Len(t, mine, 1)

		theirs, err := manager.List(ctx, domain.ResourceSkills, otherUserID)
		require.NoError(t, err)
		assert.Len(t, theirs, 1)
	})
}

func TestUpdate(t *testing.T) {
	manager, _ := newManager()
	ctx := context.Background()

	created, _, err := manager.Create(ctx, domain.ResourceSkills, testUserID, map[string]any{
		"name": "Go", "type": "backend", "level": float64(5),
	})
	require.NoError(t, err)
	id := created.GetID().String()

	t.Run("Should leave absent fields untouched", func(t *testing.T) {
		updated, inv, err := manager.Update(ctx, domain.ResourceSkills, id, testUserID, map[string]any{
			"level": float64(9),
		})
		require.NoError(t, err)

		skill := updated.(*domain.Skill)
		assert.Equal(t, "Go", skill.Name)
		assert.Equal(t, "backend", skill.Type)
		assert.Equal(t, 9, skill.Level)

		assert.Equal(t, []string{cachekey.EntityItemKey(domain.ResourceSkills, id, testUserID)}, inv.Keys)
		assert.ElementsMatch(t, []string{
			cachekey.EntityListTag(domain.ResourceSkills, testUserID),
			cachekey.EntityItemTag(domain.ResourceSkills, id, testUserID),
		}, inv.Tags)
	})

	t.Run("Should not persist anything when the staged entity is invalid", func(t *testing.T) {
		_, _, err := manager.Update(ctx, domain.ResourceSkills, id, testUserID, map[string]any{
			"name":  "",
			"level": float64(0),
		})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Violations, "name")
		assert.Contains(t, verr.Violations, "level")

		stored, err := manager.Get(ctx, domain.ResourceSkills, id, testUserID)
		require.NoError(t, err)
		skill := stored.(*domain.Skill)
		assert.Equal(t, "Go", skill.Name)
		assert.Equal(t, 9, skill.Level)
	})

	t.Run("Should fail on an unknown entity", func(t *testing.T) {
		_, _, err := manager.Update(ctx, domain.ResourceSkills, uuid.NewString(), testUserID, map[string]any{
			"level": float64(3),
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDateCoercion(t *testing.T) {
	manager, _ := newManager()
	ctx := context.Background()

	t.Run("Should accept plain dates and clear a nullable end date", func(t *testing.T) {
		entity, _, err := manager.Create(ctx, domain.ResourceEducations, testUserID, map[string]any{
			"name":        "MSc",
			"school":      "ULB",
			"gradeLevel":  float64(5),
			"description": "Computer science",
			"startedAt":   "2018-09-01",
			"endedAt":     "2020-06-30 12:00:00",
		})
		require.NoError(t, err)

		edu := entity.(*domain.Education)
		assert.Equal(t, time.Date(2018, 9, 1, 0, 0, 0, 0, time.UTC), edu.StartedAt)
		require.NotNil(t, edu.EndedAt)

		updated, _, err := manager.Update(ctx, domain.ResourceEducations, edu.ID.String(), testUserID, map[string]any{
			"endedAt": "",
		})
		require.NoError(t, err)
		assert.Nil(t, updated.(*domain.Education).EndedAt)
	})

	t.Run("Should reject a null non-nullable date", func(t *testing.T) {
		_, _, err := manager.Create(ctx, domain.ResourceEducations, testUserID, map[string]any{
			"name":        "BSc",
			"school":      "ULB",
			"description": "Computer science",
			"startedAt":   "",
		})
		var derr *domain.InvalidDateError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "startedAt", derr.Field)
	})

	t.Run("Should reject an unparseable date", func(t *testing.T) {
		_, _, err := manager.Create(ctx, domain.ResourceEducations, testUserID, map[string]any{
			"name":        "BSc",
			"school":      "ULB",
			"description": "Computer science",
			"startedAt":   "not a date",
		})
		var derr *domain.InvalidDateError
		assert.ErrorAs(t, err, &derr)
	})
}

func TestMediaCollection(t *testing.T) {
	manager, _ := newManager()
	ctx := context.Background()

	created, _, err := manager.Create(ctx, domain.ResourceReferences, testUserID, map[string]any{
		"title":       "Lead developer",
		"company":     "Acme",
		"description": "Backend work",
		"startedAt":   "2021-01-01",
		"medias": []any{
			map[string]any{"path": "uploads/ref-a.pdf"},
			map[string]any{"path": "uploads/ref-b.pdf"},
		},
	})
	require.NoError(t, err)

	ref := created.(*domain.Reference)
	require.Len(t, ref.MediaItems, 2)

	t.Run("Should stamp ids and back-references on save", func(t *testing.T) {
		for _, media := range ref.MediaItems {
			assert.NotEqual(t, uuid.Nil, media.ID)
			assert.Equal(t, ref.ID, media.ReferenceID)
		}
	})

	t.Run("Should replace the whole collection on update", func(t *testing.T) {
		updated, _, err := manager.Update(ctx, domain.ResourceReferences, ref.ID.String(), testUserID, map[string]any{
			"medias": []any{
				map[string]any{"path": "uploads/ref-c.pdf"},
			},
		})
		require.NoError(t, err)

		items := updated.(*domain.Reference).MediaItems
		require.Len(t, items, 1)
		assert.Equal(t, "uploads/ref-c.pdf", items[0].Path)
	})

	t.Run("Should reject an empty collection", func(t *testing.T) {
		_, _, err := manager.Update(ctx, domain.ResourceReferences, ref.ID.String(), testUserID, map[string]any{
			"medias": []any{},
		})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Violations, "medias")
	})

	t.Run("Should ignore payload keys the resource does not declare", func(t *testing.T) {
		entity, _, err := manager.Create(ctx, domain.ResourceSkills, testUserID, map[string]any{
			"name": "Go", "type": "backend", "level": float64(5),
			"medias": []any{map[string]any{"path": "uploads/x.pdf"}},
			"color":  "green",
		})
		require.NoError(t, err)
		assert.Equal(t, "Go", entity.(*domain.Skill).Name)
	})
}

func TestUnscopedProjects(t *testing.T) {
	manager, _ := newManager()
	ctx := context.Background()

	t.Run("Should create without any user", func(t *testing.T) {
		entity, _, err := manager.Create(ctx, domain.ResourceProjects, "", map[string]any{
			"name":        "resume-builder",
			"description": "Personal site",
			"gitLink":     "https://example.org/repo.git",
		})
		require.NoError(t, err)

		project := entity.(*domain.Project)
		require.NotNil(t, project.GitLink)
		assert.Equal(t, "https://example.org/repo.git", *project.GitLink)
	})

	t.Run("Should be visible to every user", func(t *testing.T) {
		all, err := manager.List(ctx, domain.ResourceProjects, testUserID)
		require.NoError(t, err)
		assert.Len(t, all, 1)

		anonymous, err := manager.List(ctx, domain.ResourceProjects, "")
		require.NoError(t, err)
		assert.Len(t, anonymous, 1)
	})

	t.Run("Should clear a nullable link with null", func(t *testing.T) {
		all, err := manager.List(ctx, domain.ResourceProjects, "")
		require.NoError(t, err)
		id := all[0].GetID().String()

		updated, _, err := manager.Update(ctx, domain.ResourceProjects, id, "", map[string]any{
			"gitLink": nil,
		})
		require.NoError(t, err)
		assert.Nil(t, updated.(*domain.Project).GitLink)
	})
}

func TestDelete(t *testing.T) {
	manager, _ := newManager()
	ctx := context.Background()

	created, _, err := manager.Create(ctx, domain.ResourceHobbies, testUserID, map[string]any{
		"name": "Climbing",
		"icon": "mountain",
	})
	require.NoError(t, err)
	id := created.GetID().String()

	t.Run("Should return the snapshot and invalidation on delete", func(t *testing.T) {
		deleted, inv, err := manager.Delete(ctx, domain.ResourceHobbies, id, testUserID)
		require.NoError(t, err)
		assert.Equal(t, created.GetID(), deleted.GetID())
		assert.Contains(t, inv.Keys, cachekey.EntityItemKey(domain.ResourceHobbies, id, testUserID))

		_, err = manager.Get(ctx, domain.ResourceHobbies, id, testUserID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Should fail on a second delete", func(t *testing.T) {
		_, _, err := manager.Delete(ctx, domain.ResourceHobbies, id, testUserID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
