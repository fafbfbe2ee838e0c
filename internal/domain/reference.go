package domain

import (
	"time"

	"github.com/google/uuid"
)

// Media is a file attachment owned by a reference. The whole set is
// replaced on every update that touches it.
type Media struct {
	ID          uuid.UUID `json:"id"`
	ReferenceID uuid.UUID `json:"-"`
	Path        string    `json:"path" validate:"required"`
}

// Reference is a work reference with an attached media collection.
type Reference struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title" validate:"required"`
	Company     string     `json:"company" validate:"required"`
	Description string     `json:"description" validate:"required"`
	StartedAt   time.Time  `json:"startedAt" validate:"required"`
	EndedAt     *time.Time `json:"endedAt"`
	MediaItems  []Media    `json:"medias" validate:"min=1,dive"`
	UserID      uuid.UUID  `json:"user"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (r *Reference) GetID() uuid.UUID { return r.ID }

func (r *Reference) BeforeSave() {
	stampTimestamps(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	for i := range r.MediaItems {
		if r.MediaItems[i].ID == uuid.Nil {
			r.MediaItems[i].ID = NewID()
		}
		r.MediaItems[i].ReferenceID = r.ID
	}
}

func (r *Reference) OwnerID() uuid.UUID      { return r.UserID }
func (r *Reference) SetOwnerID(id uuid.UUID) { r.UserID = id }

func (r *Reference) Medias() []Media { return r.MediaItems }

// ReplaceMedias drops the current collection and installs the given one in
// order. The store is responsible for deleting the replaced rows.
func (r *Reference) ReplaceMedias(medias []Media) {
	r.MediaItems = medias
}
