package v1

import (
	"net/http"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SavedJobHandler struct {
	savedJobUC domain.SavedJobUsecase
}

func NewSavedJobHandler(jobseeker *gin.RouterGroup, savedJobUC domain.SavedJobUsecase) {
	handler := &SavedJobHandler{savedJobUC: savedJobUC}

	saved := jobseeker.Group("/saved-jobs")
	{
		saved.POST("/:jobId", handler.Save)
		saved.GET("", handler.List)
		saved.DELETE("/:jobId", handler.Unsave)
	}
}

// Save godoc
// @Summary      Save a job
// @Description  Bookmark a job for later. Saving twice is rejected.
// @Tags         saved-jobs
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /saved-jobs/{jobId} [post]
// @Security     BearerAuth
func (h *SavedJobHandler) Save(c *gin.Context) {
	jobID, err := parseIDParam(c, "jobId")
	if err != nil {
		c.Error(err)
		return
	}

	saved, err := h.savedJobUC.SaveJob(c.Request.Context(), actorFrom(c), jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job saved", saved)
}

// List godoc
// @Summary      List saved jobs
// @Tags         saved-jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /saved-jobs [get]
// @Security     BearerAuth
func (h *SavedJobHandler) List(c *gin.Context) {
	saved, err := h.savedJobUC.ListSavedJobs(c.Request.Context(), actorFrom(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Saved jobs", saved)
}

// Unsave godoc
// @Summary      Remove a saved job
// @Tags         saved-jobs
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /saved-jobs/{jobId} [delete]
// @Security     BearerAuth
func (h *SavedJobHandler) Unsave(c *gin.Context) {
	jobID, err := parseIDParam(c, "jobId")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.savedJobUC.UnsaveJob(c.Request.Context(), actorFrom(c), jobID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job removed from saved", nil)
}
