package v1

import (
	"net/http"
	"strconv"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

// NewJobHandler registers job routes. Listing and detail are public with
// optional auth; mutations require a token.
func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase, optionalAuth gin.HandlerFunc) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := public.Group("/jobs")
	{
		jobs.GET("", optionalAuth, handler.List)
		jobs.GET("/:id", optionalAuth, handler.Detail)
	}

	pjobs := protected.Group("/jobs")
	{
		pjobs.POST("", handler.Create)
		pjobs.PUT("/:id", handler.Update)
		pjobs.DELETE("/:id", handler.Delete)
	}
}

type JobRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Company     string `json:"company" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required,max=200"`
}

// List godoc
// @Summary      List jobs
// @Description  Paginated job listing, newest first. Keyword matches title, description and company.
// @Tags         jobs
// @Produce      json
// @Param        q         query     string  false  "Keyword filter"
// @Param        location  query     string  false  "Location filter"
// @Param        page      query     int     false  "Page number (1-based)"
// @Success      200       {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	filter := domain.JobFilter{
		Keyword:  c.Query("q"),
		Location: c.Query("location"),
	}

	jobs, total, err := h.jobUC.ListJobs(c.Request.Context(), filter, page)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", gin.H{
		"jobs":  jobs,
		"total": total,
		"page":  page,
	})
}

// Detail godoc
// @Summary      Job detail
// @Description  Job detail with the caller's application status; the poster also sees all applications
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.JobDetail}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) Detail(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("invalid job id"))
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))

	detail, err := h.jobUC.GetJobDetail(c.Request.Context(), actorID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job retrieved", detail)
}

// Create godoc
// @Summary      Post a job
// @Description  Create a job posting. Employer accounts only.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      JobRequest  true  "Job fields"
// @Success      201   {object}  response.Response{data=domain.Job}
// @Failure      403   {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))

	job := &domain.Job{
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
		Location:    req.Location,
	}
	if err := h.jobUC.CreateJob(c.Request.Context(), actorID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// Update godoc
// @Summary      Update a job
// @Description  Update a job posting. Poster only.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      int         true  "Job ID"
// @Param        body  body      JobRequest  true  "Job fields"
// @Success      200   {object}  response.Response{data=domain.Job}
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("invalid job id"))
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))

	job := &domain.Job{
		ID:          jobID,
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
		Location:    req.Location,
	}
	if err := h.jobUC.UpdateJob(c.Request.Context(), actorID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

// Delete godoc
// @Summary      Delete a job
// @Description  Delete a job posting and its applications. Poster only.
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("invalid job id"))
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))

	if err := h.jobUC.DeleteJob(c.Request.Context(), actorID, jobID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", nil)
}
