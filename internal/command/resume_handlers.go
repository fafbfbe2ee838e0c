package command

import (
	"context"

	"go-resume-backend/internal/usecase"
	"go-resume-backend/pkg/cache"
	"go-resume-backend/pkg/logger"
)

// ResumeHandlers wires the generic manager to the bus and applies the
// cache invalidations its mutations report.
type ResumeHandlers struct {
	manager *usecase.ResumeManager
	cache   cache.TagCache
}

func NewResumeHandlers(manager *usecase.ResumeManager, tagCache cache.TagCache) *ResumeHandlers {
	return &ResumeHandlers{manager: manager, cache: tagCache}
}

// Register binds the three resource commands to the bus.
func (h *ResumeHandlers) Register(bus *Bus) {
	bus.Register(CreateResourceName, h.handleCreate)
	bus.Register(UpdateResourceName, h.handleUpdate)
	bus.Register(DeleteResourceName, h.handleDelete)
}

func (h *ResumeHandlers) handleCreate(ctx context.Context, cmd Command) (any, error) {
	c := cmd.(CreateResourceCommand)
	entity, inv, err := h.manager.Create(ctx, c.Resource, c.UserID, c.Payload)
	if err != nil {
		return nil, err
	}
	h.applyInvalidation(ctx, inv)
	return entity, nil
}

func (h *ResumeHandlers) handleUpdate(ctx context.Context, cmd Command) (any, error) {
	c := cmd.(UpdateResourceCommand)
	entity, inv, err := h.manager.Update(ctx, c.Resource, c.EntityID, c.UserID, c.Payload)
	if err != nil {
		return nil, err
	}
	h.applyInvalidation(ctx, inv)
	return entity, nil
}

func (h *ResumeHandlers) handleDelete(ctx context.Context, cmd Command) (any, error) {
	c := cmd.(DeleteResourceCommand)
	entity, inv, err := h.manager.Delete(ctx, c.Resource, c.EntityID, c.UserID)
	if err != nil {
		return nil, err
	}
	h.applyInvalidation(ctx, inv)
	return entity, nil
}

// applyInvalidation runs after the persist committed. The persisted write
// is the source of truth; a stale cache entry is a lesser failure than a
// lost write, so cache errors are logged and swallowed.
func (h *ResumeHandlers) applyInvalidation(ctx context.Context, inv usecase.Invalidation) {
	for _, key := range inv.Keys {
		if err := h.cache.Delete(ctx, key); err != nil {
			logger.Log.Warn("cache key delete failed", "key", key, "error", err)
		}
	}
	if len(inv.Tags) == 0 {
		return
	}
	if err := h.cache.InvalidateTags(ctx, inv.Tags...); err != nil {
		logger.Log.Warn("cache tag invalidation failed", "tags", inv.Tags, "error", err)
	}
}
