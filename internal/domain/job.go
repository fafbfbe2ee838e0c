package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is a posting published by a company. It mirrors the resume resources
// in caching behavior but keeps its own repository and handlers.
type Job struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title" validate:"required"`
	Description    string    `json:"description" validate:"required"`
	RequiredSkills []string  `json:"requiredSkills"`
	Experience     string    `json:"experience"`
	CompanyID      uuid.UUID `json:"companyId" validate:"required"`
	UserID         uuid.UUID `json:"user"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (j *Job) GetID() uuid.UUID { return j.ID }

func (j *Job) BeforeSave() {
	stampTimestamps(&j.ID, &j.CreatedAt, &j.UpdatedAt)
}

func (j *Job) OwnerID() uuid.UUID      { return j.UserID }
func (j *Job) SetOwnerID(id uuid.UUID) { j.UserID = id }

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id uuid.UUID) (*Job, error)
	Fetch(ctx context.Context, limit, offset int) ([]Job, int64, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id uuid.UUID) error
}
