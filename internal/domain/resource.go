package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ResourceName identifies one of the fixed resume resource kinds.
type ResourceName string

const (
	ResourceSkills      ResourceName = "skills"
	ResourceLanguages   ResourceName = "languages"
	ResourceHobbies     ResourceName = "hobbies"
	ResourceExperiences ResourceName = "experiences"
	ResourceEducations  ResourceName = "educations"
	ResourceReferences  ResourceName = "references"
	ResourceProjects    ResourceName = "projects"
)

// FieldKind is the payload typing of a single definition field.
type FieldKind int

const (
	FieldString FieldKind = iota
	FieldInt
	FieldDate
	FieldMediaCollection
)

// FieldSpec describes how one payload field is coerced before it is handed
// to the definition's Apply function.
type FieldSpec struct {
	Name     string
	Kind     FieldKind
	Nullable bool
}

// Entity is the common surface of all resume sub-entities. BeforeSave fills
// in the identity and timestamps for rows about to be persisted.
type Entity interface {
	GetID() uuid.UUID
	BeforeSave()
}

// UserScoped is implemented by entities that belong to exactly one user.
type UserScoped interface {
	Entity
	OwnerID() uuid.UUID
	SetOwnerID(uuid.UUID)
}

// MediaOwner is implemented by entities carrying a media collection. The
// collection is always replaced wholesale, never patched.
type MediaOwner interface {
	Entity
	Medias() []Media
	ReplaceMedias([]Media)
}

// Definition is the immutable metadata record for one resource kind. New,
// Clone and Apply bind the generic manager algorithm to the concrete entity
// type without reflection.
type Definition struct {
	Resource     ResourceName
	Label        string
	Fields       []FieldSpec
	ScopedByUser bool

	New   func() Entity
	Clone func(Entity) Entity
	Apply func(e Entity, field string, value any) error
}

// Field looks up a declared field by payload name.
func (d Definition) Field(name string) (FieldSpec, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// ResourceStore is the persistence boundary for resume resources: a
// key-value-by-criteria store, one logical table per resource. Owner is nil
// for unscoped resources; for scoped ones a mismatching owner must surface
// as ErrNotFound, never as a distinct error.
type ResourceStore interface {
	Insert(ctx context.Context, res ResourceName, e Entity) error
	FindByID(ctx context.Context, res ResourceName, id uuid.UUID, owner *uuid.UUID) (Entity, error)
	FindAll(ctx context.Context, res ResourceName, owner *uuid.UUID) ([]Entity, error)
	Update(ctx context.Context, res ResourceName, e Entity) error
	Delete(ctx context.Context, res ResourceName, id uuid.UUID, owner *uuid.UUID) error
}

// NewID returns a time-ordered unique identifier. V7 keeps ids sortable by
// creation time, matching the ordered-uuid storage scheme of the resume
// tables.
func NewID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source is broken; fall back to v4
		// rather than panicking inside entity constructors.
		return uuid.New()
	}
	return id
}

// stampTimestamps is shared by the entities' BeforeSave implementations.
func stampTimestamps(id *uuid.UUID, createdAt *time.Time, updatedAt *time.Time) {
	now := time.Now().UTC()
	if *id == uuid.Nil {
		*id = NewID()
	}
	if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}
