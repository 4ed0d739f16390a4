package v1

import (
	"io"
	"net/http"
	"strconv"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	appUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes. All of them require
// a token.
func NewApplicationHandler(protected *gin.RouterGroup, appUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{appUC: appUC}

	protected.POST("/jobs/:id/apply", handler.Apply)

	apps := protected.Group("/applications")
	{
		apps.GET("", handler.Mine)
		apps.POST("/:id/withdraw", handler.Withdraw)
		apps.POST("/:id/shortlist", handler.Shortlist)
		apps.PATCH("/:id/status", handler.UpdateStatus)
	}
}

type StatusRequest struct {
	Action string `json:"action" binding:"required,oneof=review accept reject"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Submit a resume (PDF, DOC or DOCX, max 5 MB) and optional cover letter as multipart form data
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Param        id            path      int     true   "Job ID"
// @Param        resume        formData  file    true   "Resume file"
// @Param        cover_letter  formData  string  false  "Cover letter"
// @Success      201           {object}  response.Response{data=domain.Application}
// @Failure      400           {object}  response.Response
// @Failure      409           {object}  response.Response
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("invalid job id"))
		return
	}

	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		c.Error(apperror.BadRequest("please upload your resume"))
		return
	}
	defer file.Close()

	// Read one byte past the limit so oversized uploads fail validation
	// instead of being silently truncated.
	data, err := io.ReadAll(io.LimitReader(file, validation.MaxResumeSize+1))
	if err != nil {
		c.Error(apperror.BadRequest("could not read resume file"))
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))

	resume := domain.ResumeUpload{
		Filename: header.Filename,
		Size:     int64(len(data)),
		Data:     data,
	}
	app, err := h.appUC.Apply(c.Request.Context(), actorID, jobID, resume, c.PostForm("cover_letter"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// Mine godoc
// @Summary      My applications
// @Description  List the caller's applications, newest first
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) Mine(c *gin.Context) {
	actorID := c.GetInt64(string(domain.KeyUserID))

	apps, err := h.appUC.GetMyApplications(c.Request.Context(), actorID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// Withdraw godoc
// @Summary      Withdraw an application
// @Description  Mark the caller's application as withdrawn. Safe to repeat.
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id}/withdraw [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	appID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("invalid application id"))
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))

	if err := h.appUC.Withdraw(c.Request.Context(), actorID, appID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application withdrawn", nil)
}

// Shortlist godoc
// @Summary      Shortlist an application
// @Description  Move an application to shortlisted and notify the candidate. Job poster only.
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id}/shortlist [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Shortlist(c *gin.Context) {
	appID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("invalid application id"))
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))

	if err := h.appUC.Shortlist(c.Request.Context(), actorID, appID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application shortlisted", nil)
}

// UpdateStatus godoc
// @Summary      Update application status
// @Description  Apply a review, accept or reject action to an application. Job poster only.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "Application ID"
// @Param        body  body      StatusRequest  true  "Action to apply"
// @Success      200   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	appID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("invalid application id"))
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))

	if err := h.appUC.UpdateStatus(c.Request.Context(), actorID, appID, domain.Action(req.Action)); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", nil)
}
