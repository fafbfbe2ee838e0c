package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project is a portfolio project. Projects are the one resource not scoped
// to an owning user.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	GitLink     *string   `json:"gitLink"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p *Project) GetID() uuid.UUID { return p.ID }

func (p *Project) BeforeSave() {
	stampTimestamps(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}
