package command

import "go-resume-backend/internal/domain"

const (
	CreateResourceName = "resume.resource.create"
	UpdateResourceName = "resume.resource.update"
	DeleteResourceName = "resume.resource.delete"

	CreateJobName = "job.create"
	UpdateJobName = "job.update"
	DeleteJobName = "job.delete"
)

type CreateResourceCommand struct {
	Resource domain.ResourceName
	UserID   string
	Payload  map[string]any
}

func (CreateResourceCommand) Name() string { return CreateResourceName }

type UpdateResourceCommand struct {
	Resource domain.ResourceName
	EntityID string
	UserID   string
	Payload  map[string]any
}

func (UpdateResourceCommand) Name() string { return UpdateResourceName }

type DeleteResourceCommand struct {
	Resource domain.ResourceName
	EntityID string
	UserID   string
}

func (DeleteResourceCommand) Name() string { return DeleteResourceName }

type CreateJobCommand struct {
	Title          string
	Description    string
	RequiredSkills []string
	Experience     string
	CompanyID      string
	UserID         string
}

func (CreateJobCommand) Name() string { return CreateJobName }

type UpdateJobCommand struct {
	JobID          string
	Title          string
	Description    string
	RequiredSkills []string
	Experience     string
}

func (UpdateJobCommand) Name() string { return UpdateJobName }

type DeleteJobCommand struct {
	JobID string
}

func (DeleteJobCommand) Name() string { return DeleteJobName }
