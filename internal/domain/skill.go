package domain

import (
	"time"

	"github.com/google/uuid"
)

// Skill is a named competency with a 1-10 proficiency level.
type Skill struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Type      string    `json:"type" validate:"required"`
	Level     int       `json:"level" validate:"required,min=1,max=10"`
	UserID    uuid.UUID `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Skill) GetID() uuid.UUID { return s.ID }

func (s *Skill) BeforeSave() {
	stampTimestamps(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (s *Skill) OwnerID() uuid.UUID      { return s.UserID }
func (s *Skill) SetOwnerID(id uuid.UUID) { s.UserID = id }
