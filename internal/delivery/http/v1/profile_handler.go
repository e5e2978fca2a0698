package v1

import (
	"net/http"
	"time"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
	store     storage.Store
}

func NewProfileHandler(jobseeker *gin.RouterGroup, profileUC domain.ProfileUsecase, store storage.Store) {
	handler := &ProfileHandler{profileUC: profileUC, store: store}

	profile := jobseeker.Group("/profile")
	{
		profile.GET("", handler.Get)
		profile.PUT("", handler.Update)
		profile.POST("/photo", handler.UploadPhoto)
		profile.POST("/resume", handler.UploadResume)

		profile.POST("/educations", handler.AddEducation)
		profile.PUT("/educations/:entryId", handler.UpdateEducation)
		profile.DELETE("/educations/:entryId", handler.RemoveEducation)

		profile.POST("/experiences", handler.AddExperience)
		profile.PUT("/experiences/:entryId", handler.UpdateExperience)
		profile.DELETE("/experiences/:entryId", handler.RemoveExperience)
	}
}

type UpdateProfileRequest struct {
	Headline string   `json:"headline" binding:"omitempty,max=160"`
	Bio      string   `json:"bio"`
	Phone    string   `json:"phone" binding:"omitempty,valid_phone"`
	Location string   `json:"location"`
	Skills   []string `json:"skills"`
	Links    []string `json:"links" binding:"omitempty,dive,http_url"`
}

type EducationRequest struct {
	School       string `json:"school" binding:"required"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	StartYear    int    `json:"start_year" binding:"required,gt=1900"`
	EndYear      *int   `json:"end_year" binding:"omitempty,gt=1900"`
}

type ExperienceRequest struct {
	Company     string     `json:"company" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"start_date" binding:"required"`
	EndDate     *time.Time `json:"end_date"`
}

// Get godoc
// @Summary      Get own profile
// @Description  Returns the job seeker profile with educations and experiences. Empty profile when none exists yet.
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileUC.GetProfile(c.Request.Context(), actorFrom(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile", profile)
}

// Update godoc
// @Summary      Update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      UpdateProfileRequest  true  "Profile JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.UpdateProfile(c.Request.Context(), actorFrom(c), &domain.Profile{
		Headline: req.Headline,
		Bio:      req.Bio,
		Phone:    req.Phone,
		Location: req.Location,
		Skills:   req.Skills,
		Links:    req.Links,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// UploadPhoto godoc
// @Summary      Upload profile photo
// @Description  Accepts jpg/png/webp up to 5 MB; the image is downscaled server-side
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Photo file"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profile/photo [post]
// @Security     BearerAuth
func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	url, err := readUpload(c, storage.KindImage, h.store, "profile-photos")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.profileUC.SetPhotoURL(c.Request.Context(), actorFrom(c), url); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Photo uploaded", gin.H{"photo_url": url})
}

// UploadResume godoc
// @Summary      Upload resume
// @Description  Accepts pdf/doc/docx up to 10 MB
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Resume file"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profile/resume [post]
// @Security     BearerAuth
func (h *ProfileHandler) UploadResume(c *gin.Context) {
	url, err := readUpload(c, storage.KindDocument, h.store, "resumes")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.profileUC.SetResumeURL(c.Request.Context(), actorFrom(c), url); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume uploaded", gin.H{"resume_url": url})
}

// AddEducation godoc
// @Summary      Add an education entry
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        education  body      EducationRequest  true  "Education JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profile/educations [post]
// @Security     BearerAuth
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	entry, err := h.profileUC.AddEducation(c.Request.Context(), actorFrom(c), &domain.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartYear:    req.StartYear,
		EndYear:      req.EndYear,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Education added", entry)
}

// UpdateEducation godoc
// @Summary      Update an education entry
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        entryId    path      string            true  "Entry ID"
// @Param        education  body      EducationRequest  true  "Education JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profile/educations/{entryId} [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateEducation(c *gin.Context) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	entry, err := h.profileUC.UpdateEducation(c.Request.Context(), actorFrom(c), &domain.Education{
		ID:           c.Param("entryId"),
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartYear:    req.StartYear,
		EndYear:      req.EndYear,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education updated", entry)
}

// RemoveEducation godoc
// @Summary      Remove an education entry
// @Tags         profile
// @Produce      json
// @Param        entryId  path      string  true  "Entry ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profile/educations/{entryId} [delete]
// @Security     BearerAuth
func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	if err := h.profileUC.RemoveEducation(c.Request.Context(), actorFrom(c), c.Param("entryId")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education removed", nil)
}

// AddExperience godoc
// @Summary      Add a work experience entry
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        experience  body      ExperienceRequest  true  "Experience JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profile/experiences [post]
// @Security     BearerAuth
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	entry, err := h.profileUC.AddExperience(c.Request.Context(), actorFrom(c), &domain.WorkExperience{
		Company:     req.Company,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Experience added", entry)
}

// UpdateExperience godoc
// @Summary      Update a work experience entry
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        entryId     path      string             true  "Entry ID"
// @Param        experience  body      ExperienceRequest  true  "Experience JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profile/experiences/{entryId} [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateExperience(c *gin.Context) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	entry, err := h.profileUC.UpdateExperience(c.Request.Context(), actorFrom(c), &domain.WorkExperience{
		ID:          c.Param("entryId"),
		Company:     req.Company,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience updated", entry)
}

// RemoveExperience godoc
// @Summary      Remove a work experience entry
// @Tags         profile
// @Produce      json
// @Param        entryId  path      string  true  "Entry ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profile/experiences/{entryId} [delete]
// @Security     BearerAuth
func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	if err := h.profileUC.RemoveExperience(c.Request.Context(), actorFrom(c), c.Param("entryId")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience removed", nil)
}
