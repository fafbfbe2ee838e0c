package command_test

import (
	"context"
	"errors"
	"testing"

	"go-resume-backend/internal/command"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommand struct{ name string }

func (c fakeCommand) Name() string { return c.name }

func TestBus(t *testing.T) {
	ctx := context.Background()

	t.Run("Should route a command to its handler", func(t *testing.T) {
		bus := command.NewBus()
		bus.Register("noop", func(_ context.Context, cmd command.Command) (any, error) {
			return cmd.Name(), nil
		})

		result, err := bus.Dispatch(ctx, fakeCommand{name: "noop"})
		require.NoError(t, err)
		assert.Equal(t, "noop", result)
	})

	t.Run("Should fail on an unregistered command", func(t *testing.T) {
		bus := command.NewBus()
		_, err := bus.Dispatch(ctx, fakeCommand{name: "ghost"})
		assert.Error(t, err)
	})

	t.Run("Should propagate handler errors", func(t *testing.T) {
		bus := command.NewBus()
		boom := errors.New("boom")
		bus.Register("failing", func(context.Context, command.Command) (any, error) {
			return nil, boom
		})

		_, err := bus.Dispatch(ctx, fakeCommand{name: "failing"})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("Should panic on duplicate registration", func(t *testing.T) {
		bus := command.NewBus()
		h := func(context.Context, command.Command) (any, error) { return nil, nil }
		bus.Register("dup", h)
		assert.Panics(t, func() { bus.Register("dup", h) })
	})
}
