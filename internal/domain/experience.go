package domain

import (
	"time"

	"github.com/google/uuid"
)

// Experience is a past or current position. EndedAt stays nil while the
// position is ongoing.
type Experience struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Company     string     `json:"company"`
	StartedAt   time.Time  `json:"startedAt" validate:"required"`
	EndedAt     *time.Time `json:"endedAt"`
	UserID      uuid.UUID  `json:"user"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (e *Experience) GetID() uuid.UUID { return e.ID }

func (e *Experience) BeforeSave() {
	stampTimestamps(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (e *Experience) OwnerID() uuid.UUID      { return e.UserID }
func (e *Experience) SetOwnerID(id uuid.UUID) { e.UserID = id }
