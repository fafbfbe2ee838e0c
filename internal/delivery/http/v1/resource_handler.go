package v1

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go-resume-backend/internal/command"
	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"
	"go-resume-backend/internal/usecase"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/cache"
	"go-resume-backend/pkg/cachekey"
	"go-resume-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// resourceCacheTTL bounds staleness of list/item reads that slip past tag
// invalidation.
const resourceCacheTTL = 300 * time.Second

// ResourceHandler is the single dispatcher serving every resume resource:
// the resource name in the URL selects the definition, commands carry the
// mutations, GETs are read-through cached.
type ResourceHandler struct {
	manager *usecase.ResumeManager
	bus     *command.Bus
	cache   cache.TagCache
}

func NewResourceHandler(protected *gin.RouterGroup, manager *usecase.ResumeManager, bus *command.Bus, tagCache cache.TagCache) {
	handler := &ResourceHandler{manager: manager, bus: bus, cache: tagCache}

	resources := protected.Group("/resume")
	{
		resources.POST("/:resource", handler.Create)
		resources.GET("/:resource", handler.List)
		resources.GET("/:resource/:id", handler.GetItem)
		resources.PUT("/:resource/:id", handler.Update)
		resources.DELETE("/:resource/:id", handler.Delete)
	}
}

// Create godoc
// @Summary      Create a resume resource
// @Description  Create one entity of the given resource kind
// @Tags         resume
// @Accept       json
// @Produce      json
// @Param        resource  path      string          true  "Resource name"
// @Param        payload   body      map[string]any  true  "Resource fields"
// @Success      201       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Router       /resume/{resource} [post]
// @Security     BearerAuth
func (h *ResourceHandler) Create(c *gin.Context) {
	def, err := h.manager.Definition(domain.ResourceName(c.Param("resource")))
	if err != nil {
		c.Error(err)
		return
	}

	payload, err := decodePayload(c)
	if err != nil {
		c.Error(err)
		return
	}

	result, err := h.bus.Dispatch(c.Request.Context(), command.CreateResourceCommand{
		Resource: def.Resource,
		UserID:   h.scopedUserID(c, def),
		Payload:  payload,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, def.Label+" created", result)
}

// GetItem godoc
// @Summary      Get one resume resource entity
// @Tags         resume
// @Produce      json
// @Param        resource  path      string  true  "Resource name"
// @Param        id        path      string  true  "Entity id"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /resume/{resource}/{id} [get]
// @Security     BearerAuth
func (h *ResourceHandler) GetItem(c *gin.Context) {
	def, err := h.manager.Definition(domain.ResourceName(c.Param("resource")))
	if err != nil {
		c.Error(err)
		return
	}
	id := c.Param("id")
	userID := h.scopedUserID(c, def)

	data, err := h.readThrough(c,
		cachekey.EntityItemKey(def.Resource, id, userID),
		[]string{cachekey.EntityItemTag(def.Resource, id, userID)},
		func() (any, error) {
			return h.manager.Get(c.Request.Context(), def.Resource, id, userID)
		},
	)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, def.Label+" details", data)
}

// List godoc
// @Summary      List resume resource entities
// @Tags         resume
// @Produce      json
// @Param        resource  path      string  true  "Resource name"
// @Success      200       {object}  response.Response
// @Router       /resume/{resource} [get]
// @Security     BearerAuth
func (h *ResourceHandler) List(c *gin.Context) {
	def, err := h.manager.Definition(domain.ResourceName(c.Param("resource")))
	if err != nil {
		c.Error(err)
		return
	}
	userID := h.scopedUserID(c, def)

	data, err := h.readThrough(c,
		cachekey.EntityListKey(def.Resource, userID),
		[]string{cachekey.EntityListTag(def.Resource, userID)},
		func() (any, error) {
			entities, err := h.manager.List(c.Request.Context(), def.Resource, userID)
			if err != nil {
				return nil, err
			}
			if entities == nil {
				entities = []domain.Entity{}
			}
			return entities, nil
		},
	)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, def.Label+" list", data)
}

// Update godoc
// @Summary      Update a resume resource entity
// @Description  Partial update; absent payload fields stay untouched
// @Tags         resume
// @Accept       json
// @Produce      json
// @Param        resource  path      string          true  "Resource name"
// @Param        id        path      string          true  "Entity id"
// @Param        payload   body      map[string]any  true  "Changed fields"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /resume/{resource}/{id} [put]
// @Security     BearerAuth
func (h *ResourceHandler) Update(c *gin.Context) {
	def, err := h.manager.Definition(domain.ResourceName(c.Param("resource")))
	if err != nil {
		c.Error(err)
		return
	}

	payload, err := decodePayload(c)
	if err != nil {
		c.Error(err)
		return
	}

	result, err := h.bus.Dispatch(c.Request.Context(), command.UpdateResourceCommand{
		Resource: def.Resource,
		EntityID: c.Param("id"),
		UserID:   h.scopedUserID(c, def),
		Payload:  payload,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, def.Label+" updated", result)
}

// Delete godoc
// @Summary      Delete a resume resource entity
// @Tags         resume
// @Produce      json
// @Param        resource  path      string  true  "Resource name"
// @Param        id        path      string  true  "Entity id"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /resume/{resource}/{id} [delete]
// @Security     BearerAuth
func (h *ResourceHandler) Delete(c *gin.Context) {
	def, err := h.manager.Definition(domain.ResourceName(c.Param("resource")))
	if err != nil {
		c.Error(err)
		return
	}

	result, err := h.bus.Dispatch(c.Request.Context(), command.DeleteResourceCommand{
		Resource: def.Resource,
		EntityID: c.Param("id"),
		UserID:   h.scopedUserID(c, def),
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, def.Label+" deleted", result)
}

// scopedUserID returns the authenticated user id for scoped resources and
// the empty string for global ones, so unscoped caches are shared.
func (h *ResourceHandler) scopedUserID(c *gin.Context, def domain.Definition) string {
	if !def.ScopedByUser {
		return ""
	}
	return c.GetString(string(domain.KeyUserID))
}

// readThrough returns the cached serialization when present; on a miss it
// loads, tags and stores. Hits are returned verbatim, byte for byte.
func (h *ResourceHandler) readThrough(c *gin.Context, key string, tags []string, load func() (any, error)) (json.RawMessage, error) {
	ctx := c.Request.Context()

	cached, hit, err := h.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if hit {
		return cached, nil
	}

	value, err := load()
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	if err := h.cache.Set(ctx, key, data, resourceCacheTTL, tags...); err != nil {
		logger.Log.Warn("cache store failed", "key", key, "error", err)
	}
	return data, nil
}

// decodePayload reads the raw request body into a field map. An empty body
// is an empty payload; malformed JSON is rejected before any entity logic
// runs.
func decodePayload(c *gin.Context) (map[string]any, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, apperror.BadRequest("Unable to read request body")
	}
	if len(body) == 0 {
		return map[string]any{}, nil
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apperror.Invalid("Invalid JSON payload", map[string]string{"body": err.Error()})
	}
	return payload, nil
}
