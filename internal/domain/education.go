package domain

import (
	"time"

	"github.com/google/uuid"
)

// Education is a degree or formation entry. GradeLevel is a coarse ranking
// of the obtained degree.
type Education struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name" validate:"required"`
	School      string     `json:"school" validate:"required"`
	GradeLevel  int        `json:"gradeLevel"`
	Description string     `json:"description" validate:"required"`
	StartedAt   time.Time  `json:"startedAt" validate:"required"`
	EndedAt     *time.Time `json:"endedAt"`
	UserID      uuid.UUID  `json:"user"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (e *Education) GetID() uuid.UUID { return e.ID }

func (e *Education) BeforeSave() {
	stampTimestamps(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (e *Education) OwnerID() uuid.UUID      { return e.UserID }
func (e *Education) SetOwnerID(id uuid.UUID) { e.UserID = id }
