package usecase

import (
	"testing"

	"go-resume-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

// A media field can only be declared on an entity carrying a media
// collection; a definition that breaks that contract surfaces as
// UnsupportedMediaError instead of a silent drop.
func TestMediaFieldRequiresMediaOwner(t *testing.T) {
	def := domain.Definition{
		Resource: "badges",
		Fields:   []domain.FieldSpec{{Name: "medias", Kind: domain.FieldMediaCollection}},
	}

	m := &ResumeManager{}
	err := m.applyPayload(def, &domain.Skill{}, map[string]any{
		"medias": []any{map[string]any{"path": "uploads/x.pdf"}},
	})

	var merr *domain.UnsupportedMediaError
	assert.ErrorAs(t, err, &merr)
}
