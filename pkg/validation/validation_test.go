package validation_test

import (
	"errors"
	"testing"

	"go-resume-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string       `json:"name" validate:"required"`
	Level int          `json:"level" validate:"required,min=1,max=10"`
	Items []sampleItem `json:"items" validate:"min=1,dive"`
}

type sampleItem struct {
	Path string `json:"path" validate:"required"`
}

func TestViolations(t *testing.T) {
	v := validation.New()

	t.Run("Should key violations by json field name", func(t *testing.T) {
		err := v.Struct(sample{Items: []sampleItem{{Path: "ok"}}})
		require.Error(t, err)

		violations := validation.Violations(err)
		assert.Contains(t, violations, "name")
		assert.Contains(t, violations, "level")
		assert.Equal(t, []string{"This value should not be blank."}, violations["name"])
	})

	t.Run("Should report every violation, not just the first", func(t *testing.T) {
		err := v.Struct(sample{})
		require.Error(t, err)
		assert.Len(t, validation.Violations(err), 3)
	})

	t.Run("Should keep nested paths", func(t *testing.T) {
		err := v.Struct(sample{Name: "a", Level: 5, Items: []sampleItem{{}}})
		require.Error(t, err)

		violations := validation.Violations(err)
		assert.Contains(t, violations, "items[0].path")
	})

	t.Run("Should phrase range constraints", func(t *testing.T) {
		err := v.Struct(sample{Name: "a", Level: 42, Items: []sampleItem{{Path: "ok"}}})
		require.Error(t, err)

		violations := validation.Violations(err)
		assert.Equal(t, []string{"This value should be 10 or less."}, violations["level"])
	})

	t.Run("Should wrap non-validator errors in a catch-all entry", func(t *testing.T) {
		violations := validation.Violations(errors.New("boom"))
		assert.Equal(t, []string{"boom"}, violations["_"])
	})
}
