package v1

import (
	"net/http"
	"strconv"
	"time"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	ivUC domain.InterviewUsecase
}

// NewInterviewHandler registers interview routes. All require a token.
func NewInterviewHandler(protected *gin.RouterGroup, ivUC domain.InterviewUsecase) {
	handler := &InterviewHandler{ivUC: ivUC}

	protected.POST("/applications/:id/interviews", handler.Schedule)
	protected.GET("/applications/:id/interviews", handler.List)

	ivs := protected.Group("/interviews")
	{
		ivs.PUT("/:id", handler.Update)
		ivs.POST("/:id/cancel", handler.Cancel)
	}
}

type InterviewRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Mode        string    `json:"mode" binding:"required,oneof=video phone onsite"`
	Location    string    `json:"location"`
	MeetLink    string    `json:"meet_link"`
	Notes       string    `json:"notes"`
	Status      string    `json:"status" binding:"omitempty,oneof=completed"`
}

func (r InterviewRequest) toInput() domain.InterviewInput {
	return domain.InterviewInput{
		ScheduledAt: r.ScheduledAt,
		Mode:        r.Mode,
		Location:    r.Location,
		MeetLink:    r.MeetLink,
		Notes:       r.Notes,
		Status:      r.Status,
	}
}

// Schedule godoc
// @Summary      Schedule an interview
// @Description  Schedule an interview for an application and email both parties. Job poster only.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "Application ID"
// @Param        body  body      InterviewRequest  true  "Interview details"
// @Success      201   {object}  response.Response{data=domain.Interview}
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/{id}/interviews [post]
// @Security     BearerAuth
func (h *InterviewHandler) Schedule(c *gin.Context) {
	appID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("invalid application id"))
		return
	}

	var req InterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))

	iv, err := h.ivUC.Schedule(c.Request.Context(), actorID, appID, req.toInput())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Interview scheduled", iv)
}

// List godoc
// @Summary      List interviews
// @Description  List interviews for an application, newest first. Applicant or job poster only.
// @Tags         interviews
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response{data=[]domain.Interview}
// @Failure      403  {object}  response.Response
// @Router       /applications/{id}/interviews [get]
// @Security     BearerAuth
func (h *InterviewHandler) List(c *gin.Context) {
	appID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("invalid application id"))
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))

	ivs, err := h.ivUC.ListByApplication(c.Request.Context(), actorID, appID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interviews retrieved", ivs)
}

// Update godoc
// @Summary      Update an interview
// @Description  Reschedule, edit or mark an interview completed. Job poster only.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "Interview ID"
// @Param        body  body      InterviewRequest  true  "Interview details"
// @Success      200   {object}  response.Response{data=domain.Interview}
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /interviews/{id} [put]
// @Security     BearerAuth
func (h *InterviewHandler) Update(c *gin.Context) {
	ivID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("invalid interview id"))
		return
	}

	var req InterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))

	iv, err := h.ivUC.Update(c.Request.Context(), actorID, ivID, req.toInput())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview updated", iv)
}

// Cancel godoc
// @Summary      Cancel an interview
// @Description  Mark an interview as canceled and notify the candidate. Job poster only.
// @Tags         interviews
// @Produce      json
// @Param        id   path      int  true  "Interview ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id}/cancel [post]
// @Security     BearerAuth
func (h *InterviewHandler) Cancel(c *gin.Context) {
	ivID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("invalid interview id"))
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))

	if err := h.ivUC.Cancel(c.Request.Context(), actorID, ivID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview canceled", nil)
}
