package usecase

import (
	"context"
	"strconv"
	"time"

	"go-resume-backend/internal/domain"
	"go-resume-backend/internal/registry"
	"go-resume-backend/pkg/cachekey"
	"go-resume-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Invalidation lists the cache keys and tags a committed mutation makes
// stale. The manager never touches the cache itself; the command handlers
// apply the invalidation after the persist succeeds, so a failed persist
// never purges valid entries.
type Invalidation struct {
	Keys []string
	Tags []string
}

// ResumeManager is the generic create/update/delete engine shared by all
// resume resources. All typing decisions come from the registry's
// definitions; the manager itself knows no concrete entity type.
type ResumeManager struct {
	registry *registry.Registry
	store    domain.ResourceStore
	validate *validator.Validate
}

func NewResumeManager(reg *registry.Registry, store domain.ResourceStore, validate *validator.Validate) *ResumeManager {
	return &ResumeManager{
		registry: reg,
		store:    store,
		validate: validate,
	}
}

// Definition exposes registry lookups to the transport layer.
func (m *ResumeManager) Definition(resource domain.ResourceName) (domain.Definition, error) {
	return m.registry.Definition(resource)
}

// Create instantiates, fills, validates and persists a new entity.
func (m *ResumeManager) Create(ctx context.Context, resource domain.ResourceName, userID string, payload map[string]any) (domain.Entity, Invalidation, error) {
	def, err := m.registry.Definition(resource)
	if err != nil {
		return nil, Invalidation{}, err
	}

	entity := def.New()

	owner, err := m.resolveOwner(def, userID)
	if err != nil {
		return nil, Invalidation{}, err
	}
	if owner != nil {
		entity.(domain.UserScoped).SetOwnerID(*owner)
	}

	if err := m.applyPayload(def, entity, payload); err != nil {
		return nil, Invalidation{}, err
	}
	if err := m.validateEntity(entity); err != nil {
		return nil, Invalidation{}, err
	}

	entity.BeforeSave()
	if err := m.store.Insert(ctx, resource, entity); err != nil {
		return nil, Invalidation{}, err
	}

	return entity, Invalidation{
		Tags: []string{cachekey.EntityListTag(resource, userID)},
	}, nil
}

// Update applies a partial payload onto a clone of the stored entity,
// validates the clone and persists it. On validation failure neither the
// store nor the loaded entity is mutated.
func (m *ResumeManager) Update(ctx context.Context, resource domain.ResourceName, entityID, userID string, payload map[string]any) (domain.Entity, Invalidation, error) {
	def, err := m.registry.Definition(resource)
	if err != nil {
		return nil, Invalidation{}, err
	}

	entity, err := m.findEntity(ctx, def, entityID, userID)
	if err != nil {
		return nil, Invalidation{}, err
	}

	staged := def.Clone(entity)
	if err := m.applyPayload(def, staged, payload); err != nil {
		return nil, Invalidation{}, err
	}
	if err := m.validateEntity(staged); err != nil {
		return nil, Invalidation{}, err
	}

	staged.BeforeSave()
	if err := m.store.Update(ctx, resource, staged); err != nil {
		return nil, Invalidation{}, err
	}

	return staged, m.itemInvalidation(resource, entityID, userID), nil
}

// Delete removes the entity and returns its pre-deletion snapshot.
func (m *ResumeManager) Delete(ctx context.Context, resource domain.ResourceName, entityID, userID string) (domain.Entity, Invalidation, error) {
	def, err := m.registry.Definition(resource)
	if err != nil {
		return nil, Invalidation{}, err
	}

	entity, err := m.findEntity(ctx, def, entityID, userID)
	if err != nil {
		return nil, Invalidation{}, err
	}

	owner, err := m.resolveOwner(def, userID)
	if err != nil {
		return nil, Invalidation{}, err
	}
	if err := m.store.Delete(ctx, resource, entity.GetID(), owner); err != nil {
		return nil, Invalidation{}, err
	}

	return entity, m.itemInvalidation(resource, entityID, userID), nil
}

// Get loads one entity, scoped by owner where applicable.
func (m *ResumeManager) Get(ctx context.Context, resource domain.ResourceName, entityID, userID string) (domain.Entity, error) {
	def, err := m.registry.Definition(resource)
	if err != nil {
		return nil, err
	}
	return m.findEntity(ctx, def, entityID, userID)
}

// List loads all entities of a resource, scoped by owner where applicable.
func (m *ResumeManager) List(ctx context.Context, resource domain.ResourceName, userID string) ([]domain.Entity, error) {
	def, err := m.registry.Definition(resource)
	if err != nil {
		return nil, err
	}
	owner, err := m.resolveOwner(def, userID)
	if err != nil {
		return nil, err
	}
	return m.store.FindAll(ctx, resource, owner)
}

func (m *ResumeManager) itemInvalidation(resource domain.ResourceName, entityID, userID string) Invalidation {
	return Invalidation{
		Keys: []string{cachekey.EntityItemKey(resource, entityID, userID)},
		Tags: []string{
			cachekey.EntityListTag(resource, userID),
			cachekey.EntityItemTag(resource, entityID, userID),
		},
	}
}

func (m *ResumeManager) findEntity(ctx context.Context, def domain.Definition, entityID, userID string) (domain.Entity, error) {
	id, err := uuid.Parse(entityID)
	if err != nil {
		// A malformed id can never match a row; indistinguishable from absent.
		return nil, domain.ErrNotFound
	}

	owner, err := m.resolveOwner(def, userID)
	if err != nil {
		return nil, err
	}

	return m.store.FindByID(ctx, def.Resource, id, owner)
}

// resolveOwner parses the owning user identity. Unscoped resources carry no
// owner at all; scoped ones require a present, parseable user id.
func (m *ResumeManager) resolveOwner(def domain.Definition, userID string) (*uuid.UUID, error) {
	if !def.ScopedByUser {
		return nil, nil
	}
	if userID == "" {
		return nil, &domain.MissingUserContextError{Resource: def.Resource}
	}
	owner, err := uuid.Parse(userID)
	if err != nil {
		return nil, &domain.MissingUserContextError{Resource: def.Resource}
	}
	return &owner, nil
}

// applyPayload walks the definition's fields in declared order and sets
// every field present in the payload. Absent fields stay untouched, which
// is what makes partial updates work.
func (m *ResumeManager) applyPayload(def domain.Definition, entity domain.Entity, payload map[string]any) error {
	for _, spec := range def.Fields {
		raw, present := payload[spec.Name]
		if !present {
			continue
		}

		if spec.Kind == domain.FieldMediaCollection {
			owner, ok := entity.(domain.MediaOwner)
			if !ok {
				return &domain.UnsupportedMediaError{Resource: def.Resource}
			}
			owner.ReplaceMedias(buildMedias(raw))
			continue
		}

		value, err := coerceField(spec, raw)
		if err != nil {
			return err
		}
		if err := def.Apply(entity, spec.Name, value); err != nil {
			return err
		}
	}
	return nil
}

// coerceField turns a decoded JSON value into the typed value the Apply
// functions expect: string, int or *time.Time.
func coerceField(spec domain.FieldSpec, raw any) (any, error) {
	switch spec.Kind {
	case domain.FieldString:
		if raw == nil {
			if spec.Nullable {
				return nil, nil
			}
			return "", nil
		}
		s, ok := raw.(string)
		if !ok {
			return nil, &domain.FieldTypeError{Field: spec.Name, Want: "string"}
		}
		return s, nil

	case domain.FieldInt:
		return coerceInt(spec, raw)

	case domain.FieldDate:
		return coerceDate(spec, raw)
	}
	return nil, &domain.FieldTypeError{Field: spec.Name, Want: "supported"}
}

func coerceInt(spec domain.FieldSpec, raw any) (any, error) {
	switch v := raw.(type) {
	case nil:
		if spec.Nullable {
			return nil, nil
		}
		return nil, &domain.FieldTypeError{Field: spec.Name, Want: "integer"}
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, &domain.FieldTypeError{Field: spec.Name, Want: "integer"}
		}
		return n, nil
	default:
		return nil, &domain.FieldTypeError{Field: spec.Name, Want: "integer"}
	}
}

// dateLayouts accepted for date fields, tried in order.
var dateLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

func coerceDate(spec domain.FieldSpec, raw any) (any, error) {
	s, isString := raw.(string)
	if raw == nil || (isString && s == "") {
		if spec.Nullable {
			return (*time.Time)(nil), nil
		}
		return nil, &domain.InvalidDateError{Field: spec.Name, Reason: "value cannot be null"}
	}
	if !isString {
		return nil, &domain.InvalidDateError{Field: spec.Name, Reason: "value must be a string"}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, &domain.InvalidDateError{Field: spec.Name, Reason: "unparseable date"}
}

// buildMedias keeps array entries carrying a non-empty path, in order.
// Anything else in the payload, including a non-array value, contributes
// nothing.
func buildMedias(raw any) []domain.Media {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}

	medias := make([]domain.Media, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		path, _ := entry["path"].(string)
		if path == "" {
			continue
		}
		medias = append(medias, domain.Media{Path: path})
	}
	return medias
}

func (m *ResumeManager) validateEntity(entity domain.Entity) error {
	if err := m.validate.Struct(entity); err != nil {
		return &domain.ValidationError{Violations: validation.Violations(err)}
	}
	return nil
}
