package v1

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go-resume-backend/internal/command"
	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/cache"
	"go-resume-backend/pkg/cachekey"
	"go-resume-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const jobCacheTTL = 300 * time.Second

// JobHandler mirrors the resume resource caching pattern for job postings:
// reads are cached under the shared job_list tag, mutations go through the
// command bus which invalidates it.
type JobHandler struct {
	jobs  domain.JobRepository
	bus   *command.Bus
	cache cache.TagCache
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobs domain.JobRepository, bus *command.Bus, tagCache cache.TagCache) {
	handler := &JobHandler{jobs: jobs, bus: bus, cache: tagCache}

	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.List)
		publicJobs.GET("/:id", handler.GetDetails)
	}

	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.POST("", handler.Create)
		protectedJobs.PUT("/:id", handler.Update)
		protectedJobs.DELETE("/:id", handler.Delete)
	}
}

type CreateJobRequest struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description" binding:"required"`
	RequiredSkills []string `json:"requiredSkills"`
	Experience     string   `json:"experience"`
	CompanyID      string   `json:"companyId" binding:"required,uuid"`
}

type UpdateJobRequest struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description" binding:"required"`
	RequiredSkills []string `json:"requiredSkills"`
	Experience     string   `json:"experience"`
}

// Create godoc
// @Summary      Create a new job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON payload", nil)
		return
	}

	result, err := h.bus.Dispatch(c.Request.Context(), command.CreateJobCommand{
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		Experience:     req.Experience,
		CompanyID:      req.CompanyID,
		UserID:         c.GetString(string(domain.KeyUserID)),
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", result)
}

// List godoc
// @Summary      List jobs
// @Tags         jobs
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	key := cachekey.JobListKey(map[string]string{
		"page":      strconv.Itoa(page),
		"page_size": strconv.Itoa(pageSize),
	})

	data, err := h.cachedJSON(c, key, []string{cachekey.JobListTag}, func() (any, error) {
		jobs, total, err := h.jobs.Fetch(c.Request.Context(), pageSize, (page-1)*pageSize)
		if err != nil {
			return nil, err
		}
		if jobs == nil {
			jobs = []domain.Job{}
		}
		return gin.H{"jobs": jobs, "total": total, "page": page, "pageSize": pageSize}, nil
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", data)
}

// GetDetails godoc
// @Summary      Get job details
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id := c.Param("id")

	data, err := h.cachedJSON(c,
		cachekey.JobItemKey(id),
		[]string{cachekey.JobItemTag(id)},
		func() (any, error) {
			jobID, err := parseJobID(id)
			if err != nil {
				return nil, err
			}
			return h.jobs.GetByID(c.Request.Context(), jobID)
		},
	)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", data)
}

// Update godoc
// @Summary      Update a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      string            true  "Job id"
// @Param        job  body      UpdateJobRequest  true  "Job JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON payload", nil)
		return
	}

	result, err := h.bus.Dispatch(c.Request.Context(), command.UpdateJobCommand{
		JobID:          c.Param("id"),
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		Experience:     req.Experience,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", result)
}

// Delete godoc
// @Summary      Delete a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	result, err := h.bus.Dispatch(c.Request.Context(), command.DeleteJobCommand{
		JobID: c.Param("id"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", result)
}

// parseJobID treats a malformed id the same as a missing row so the route
// never leaks parser internals.
func parseJobID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ErrNotFound
	}
	return id, nil
}

func (h *JobHandler) cachedJSON(c *gin.Context, key string, tags []string, load func() (any, error)) (json.RawMessage, error) {
	ctx := c.Request.Context()

	cached, hit, err := h.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if hit {
		return cached, nil
	}

	value, err := load()
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	if err := h.cache.Set(ctx, key, data, jobCacheTTL, tags...); err != nil {
		logger.Log.Warn("cache store failed", "key", key, "error", err)
	}
	return data, nil
}
