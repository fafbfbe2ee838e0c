package domain

import (
	"time"

	"github.com/google/uuid"
)

// Language is a spoken language with a proficiency level and a flag icon.
type Language struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Level     int       `json:"level" validate:"omitempty,min=1,max=10"`
	Flag      string    `json:"flag"`
	UserID    uuid.UUID `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (l *Language) GetID() uuid.UUID { return l.ID }

func (l *Language) BeforeSave() {
	stampTimestamps(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

func (l *Language) OwnerID() uuid.UUID      { return l.UserID }
func (l *Language) SetOwnerID(id uuid.UUID) { l.UserID = id }
