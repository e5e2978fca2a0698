package v1

import (
	"net/http"
	"time"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

func NewInterviewHandler(protected, jobseeker, recruiter *gin.RouterGroup, interviewUC domain.InterviewUsecase) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	interviews := protected.Group("/interviews")
	{
		interviews.GET("", handler.ListMine)
		interviews.GET("/:id", handler.Get)
		interviews.POST("/:id/cancel", handler.Cancel)
	}

	jobseekerIvs := jobseeker.Group("/interviews")
	{
		jobseekerIvs.POST("/:id/confirm", handler.Confirm)
		jobseekerIvs.POST("/:id/reschedule", handler.RequestReschedule)
	}

	recruiterIvs := recruiter.Group("/interviews")
	{
		recruiterIvs.POST("", handler.Schedule)
		recruiterIvs.PUT("/:id", handler.Update)
		recruiterIvs.POST("/:id/complete", handler.Complete)
		recruiterIvs.POST("/:id/no-show", handler.MarkNoShow)
		recruiterIvs.DELETE("/:id", handler.Delete)
	}
}

type ScheduleInterviewRequest struct {
	ApplicationID   int64     `json:"application_id" binding:"required"`
	Type            string    `json:"type" binding:"required,oneof=Online Offline Phone"`
	ScheduledAt     time.Time `json:"scheduled_at" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"omitempty,gt=0"`
	MeetingLink     string    `json:"meeting_link" binding:"omitempty,http_url"`
	Location        string    `json:"location"`
	Notes           string    `json:"notes"`
}

type UpdateInterviewRequest struct {
	Type            *string    `json:"type" binding:"omitempty,oneof=Online Offline Phone"`
	ScheduledAt     *time.Time `json:"scheduled_at"`
	DurationMinutes *int       `json:"duration_minutes" binding:"omitempty,gt=0"`
	MeetingLink     *string    `json:"meeting_link"`
	Location        *string    `json:"location"`
	Notes           *string    `json:"notes"`
	Status          *string    `json:"status"`
}

type RescheduleRequest struct {
	Reason     string     `json:"reason" binding:"required"`
	ProposedAt *time.Time `json:"proposed_at"`
}

type CancelInterviewRequest struct {
	Reason string `json:"reason"`
}

type CompleteInterviewRequest struct {
	Feedback string `json:"feedback"`
	Rating   int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Notes    string `json:"notes"`
}

// Schedule godoc
// @Summary      Schedule an interview
// @Description  Create a Scheduled interview for an application (recruiter only)
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        interview  body      ScheduleInterviewRequest  true  "Interview JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews [post]
// @Security     BearerAuth
func (h *InterviewHandler) Schedule(c *gin.Context) {
	var req ScheduleInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	iv, err := h.interviewUC.Schedule(c.Request.Context(), actorFrom(c), domain.ScheduleInterviewInput{
		ApplicationID:   req.ApplicationID,
		Type:            req.Type,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		MeetingLink:     req.MeetingLink,
		Location:        req.Location,
		Notes:           req.Notes,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Interview scheduled", iv)
}

// ListMine godoc
// @Summary      List own interviews
// @Description  Recruiters see interviews they scheduled, job seekers the ones they are invited to
// @Tags         interviews
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /interviews [get]
// @Security     BearerAuth
func (h *InterviewHandler) ListMine(c *gin.Context) {
	ivs, err := h.interviewUC.ListMyInterviews(c.Request.Context(), actorFrom(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "My interviews", ivs)
}

// Get godoc
// @Summary      Get interview details
// @Tags         interviews
// @Produce      json
// @Param        id   path      int  true  "Interview ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id} [get]
// @Security     BearerAuth
func (h *InterviewHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	iv, err := h.interviewUC.GetInterview(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview details", iv)
}

// Update godoc
// @Summary      Update an interview
// @Description  Overwrite interview fields (recruiter only). Omitted fields keep their value.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id         path      int                     true  "Interview ID"
// @Param        interview  body      UpdateInterviewRequest  true  "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id} [put]
// @Security     BearerAuth
func (h *InterviewHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	iv, err := h.interviewUC.UpdateInterview(c.Request.Context(), actorFrom(c), id, domain.UpdateInterviewInput{
		Type:            req.Type,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		MeetingLink:     req.MeetingLink,
		Location:        req.Location,
		Notes:           req.Notes,
		Status:          req.Status,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview updated", iv)
}

// Confirm godoc
// @Summary      Confirm attendance
// @Description  Candidate confirms they will attend the interview
// @Tags         interviews
// @Produce      json
// @Param        id   path      int  true  "Interview ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id}/confirm [post]
// @Security     BearerAuth
func (h *InterviewHandler) Confirm(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	iv, err := h.interviewUC.Confirm(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview confirmed", iv)
}

// RequestReschedule godoc
// @Summary      Request a reschedule
// @Description  Candidate asks the recruiter for a different time
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id       path      int                true  "Interview ID"
// @Param        request  body      RescheduleRequest  true  "Reason and optional proposed time"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id}/reschedule [post]
// @Security     BearerAuth
func (h *InterviewHandler) RequestReschedule(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	iv, err := h.interviewUC.RequestReschedule(c.Request.Context(), actorFrom(c), id, req.Reason, req.ProposedAt)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Reschedule requested", iv)
}

// Cancel godoc
// @Summary      Cancel an interview
// @Description  Either party cancels; the other side is notified
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id       path      int                     true  "Interview ID"
// @Param        request  body      CancelInterviewRequest  false  "Optional reason"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id}/cancel [post]
// @Security     BearerAuth
func (h *InterviewHandler) Cancel(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req CancelInterviewRequest
	// Body is optional for cancellation
	_ = c.ShouldBindJSON(&req)

	iv, err := h.interviewUC.Cancel(c.Request.Context(), actorFrom(c), id, req.Reason)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview cancelled", iv)
}

// Complete godoc
// @Summary      Complete an interview
// @Description  Mark the interview as held, with optional feedback and rating
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id       path      int                       true  "Interview ID"
// @Param        outcome  body      CompleteInterviewRequest  false  "Outcome fields"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id}/complete [post]
// @Security     BearerAuth
func (h *InterviewHandler) Complete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req CompleteInterviewRequest
	_ = c.ShouldBindJSON(&req)

	iv, err := h.interviewUC.Complete(c.Request.Context(), actorFrom(c), id, domain.CompleteInterviewInput{
		Feedback: req.Feedback,
		Rating:   req.Rating,
		Notes:    req.Notes,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview completed", iv)
}

// MarkNoShow godoc
// @Summary      Mark a no-show
// @Description  Record that the candidate did not attend
// @Tags         interviews
// @Produce      json
// @Param        id   path      int  true  "Interview ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id}/no-show [post]
// @Security     BearerAuth
func (h *InterviewHandler) MarkNoShow(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	iv, err := h.interviewUC.MarkNoShow(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview marked as no-show", iv)
}

// Delete godoc
// @Summary      Delete an interview record
// @Tags         interviews
// @Produce      json
// @Param        id   path      int  true  "Interview ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id} [delete]
// @Security     BearerAuth
func (h *InterviewHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.interviewUC.DeleteInterview(c.Request.Context(), actorFrom(c), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview deleted", nil)
}
