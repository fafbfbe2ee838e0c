// Package command contains the thin command/handler pairs wrapping the
// resume manager and the job repository, dispatched through a small
// in-process bus. Handlers perform cache invalidation after a successful
// commit; the core stays cache-free.
package command

import (
	"context"
	"fmt"
)

// Command is a message carried by the bus. Name identifies the handler.
type Command interface {
	Name() string
}

// HandlerFunc executes one command and returns its result for unwrapping.
type HandlerFunc func(ctx context.Context, cmd Command) (any, error)

// Bus is a minimal synchronous dispatcher: one handler per command name.
type Bus struct {
	handlers map[string]HandlerFunc
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string]HandlerFunc)}
}

// Register binds a handler to a command name. Registering a name twice is a
// wiring bug and panics at startup.
func (b *Bus) Register(name string, h HandlerFunc) {
	if _, exists := b.handlers[name]; exists {
		panic(fmt.Sprintf("command: handler for %q registered twice", name))
	}
	b.handlers[name] = h
}

// Dispatch runs the command's handler and returns its result.
func (b *Bus) Dispatch(ctx context.Context, cmd Command) (any, error) {
	h, ok := b.handlers[cmd.Name()]
	if !ok {
		return nil, fmt.Errorf("command: no handler registered for %q", cmd.Name())
	}
	return h(ctx, cmd)
}
