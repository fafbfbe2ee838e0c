package command

import (
	"context"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/cache"
	"go-resume-backend/pkg/cachekey"
	"go-resume-backend/pkg/logger"
	"go-resume-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// JobHandlers mirrors the resume handlers for the job domain: mutate,
// validate, persist, then invalidate the shared job_list tag (and the item
// tag on update/delete).
type JobHandlers struct {
	jobs     domain.JobRepository
	validate *validator.Validate
	cache    cache.TagCache
}

func NewJobHandlers(jobs domain.JobRepository, validate *validator.Validate, tagCache cache.TagCache) *JobHandlers {
	return &JobHandlers{jobs: jobs, validate: validate, cache: tagCache}
}

func (h *JobHandlers) Register(bus *Bus) {
	bus.Register(CreateJobName, h.handleCreate)
	bus.Register(UpdateJobName, h.handleUpdate)
	bus.Register(DeleteJobName, h.handleDelete)
}

func (h *JobHandlers) handleCreate(ctx context.Context, cmd Command) (any, error) {
	c := cmd.(CreateJobCommand)

	companyID, err := uuid.Parse(c.CompanyID)
	if err != nil {
		return nil, &domain.ValidationError{Violations: map[string][]string{
			"companyId": {"This value is not a valid identifier."},
		}}
	}
	userID, err := uuid.Parse(c.UserID)
	if err != nil {
		return nil, &domain.MissingUserContextError{Resource: "jobs"}
	}

	job := &domain.Job{
		Title:          c.Title,
		Description:    c.Description,
		RequiredSkills: c.RequiredSkills,
		Experience:     c.Experience,
		CompanyID:      companyID,
		UserID:         userID,
	}
	if err := h.validate.Struct(job); err != nil {
		return nil, &domain.ValidationError{Violations: validation.Violations(err)}
	}

	job.BeforeSave()
	if err := h.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	h.invalidate(ctx, nil, cachekey.JobListTag)
	return job, nil
}

func (h *JobHandlers) handleUpdate(ctx context.Context, cmd Command) (any, error) {
	c := cmd.(UpdateJobCommand)

	id, err := uuid.Parse(c.JobID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	job, err := h.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	job.Title = c.Title
	job.Description = c.Description
	job.RequiredSkills = c.RequiredSkills
	job.Experience = c.Experience
	if err := h.validate.Struct(job); err != nil {
		return nil, &domain.ValidationError{Violations: validation.Violations(err)}
	}

	job.BeforeSave()
	if err := h.jobs.Update(ctx, job); err != nil {
		return nil, err
	}

	h.invalidate(ctx,
		[]string{cachekey.JobItemKey(c.JobID)},
		cachekey.JobListTag, cachekey.JobItemTag(c.JobID),
	)
	return job, nil
}

func (h *JobHandlers) handleDelete(ctx context.Context, cmd Command) (any, error) {
	c := cmd.(DeleteJobCommand)

	id, err := uuid.Parse(c.JobID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	job, err := h.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := h.jobs.Delete(ctx, id); err != nil {
		return nil, err
	}

	h.invalidate(ctx,
		[]string{cachekey.JobItemKey(c.JobID)},
		cachekey.JobListTag, cachekey.JobItemTag(c.JobID),
	)
	return job, nil
}

func (h *JobHandlers) invalidate(ctx context.Context, keys []string, tags ...string) {
	for _, key := range keys {
		if err := h.cache.Delete(ctx, key); err != nil {
			logger.Log.Warn("cache key delete failed", "key", key, "error", err)
		}
	}
	if err := h.cache.InvalidateTags(ctx, tags...); err != nil {
		logger.Log.Warn("cache tag invalidation failed", "tags", tags, "error", err)
	}
}
