package domain

import (
	"time"

	"github.com/google/uuid"
)

// Hobby is a leisure activity shown on the resume with an icon.
type Hobby struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Icon      string    `json:"icon"`
	UserID    uuid.UUID `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (h *Hobby) GetID() uuid.UUID { return h.ID }

func (h *Hobby) BeforeSave() {
	stampTimestamps(&h.ID, &h.CreatedAt, &h.UpdatedAt)
}

func (h *Hobby) OwnerID() uuid.UUID      { return h.UserID }
func (h *Hobby) SetOwnerID(id uuid.UUID) { h.UserID = id }
