package v1

import (
	"net/http"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

type RecruiterHandler struct {
	recruiterUC domain.RecruiterUsecase
	store       storage.Store
}

func NewRecruiterHandler(recruiter *gin.RouterGroup, recruiterUC domain.RecruiterUsecase, store storage.Store) {
	handler := &RecruiterHandler{recruiterUC: recruiterUC, store: store}

	group := recruiter.Group("/recruiter")
	{
		group.GET("/profile", handler.GetProfile)
		group.PUT("/profile", handler.UpdateProfile)
		group.GET("/company-profile", handler.GetCompany)
		group.PUT("/company-profile", handler.UpdateCompany)
		group.POST("/company-profile/logo", handler.UploadLogo)
	}
}

type UpdateRecruiterProfileRequest struct {
	Headline string `json:"headline" binding:"omitempty,max=160"`
	Phone    string `json:"phone" binding:"omitempty,valid_phone"`
	Position string `json:"position"`
}

type UpdateCompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	Website     string `json:"website" binding:"omitempty,http_url"`
	Industry    string `json:"industry"`
	Size        string `json:"size"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// GetProfile godoc
// @Summary      Get recruiter profile
// @Tags         recruiter
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /recruiter/profile [get]
// @Security     BearerAuth
func (h *RecruiterHandler) GetProfile(c *gin.Context) {
	profile, err := h.recruiterUC.GetProfile(c.Request.Context(), actorFrom(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recruiter profile", profile)
}

// UpdateProfile godoc
// @Summary      Update recruiter profile
// @Tags         recruiter
// @Accept       json
// @Produce      json
// @Param        profile  body      UpdateRecruiterProfileRequest  true  "Profile JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /recruiter/profile [put]
// @Security     BearerAuth
func (h *RecruiterHandler) UpdateProfile(c *gin.Context) {
	var req UpdateRecruiterProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.recruiterUC.UpdateProfile(c.Request.Context(), actorFrom(c), &domain.RecruiterProfile{
		Headline: req.Headline,
		Phone:    req.Phone,
		Position: req.Position,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recruiter profile updated", profile)
}

// GetCompany godoc
// @Summary      Get company profile
// @Tags         recruiter
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /recruiter/company-profile [get]
// @Security     BearerAuth
func (h *RecruiterHandler) GetCompany(c *gin.Context) {
	company, err := h.recruiterUC.GetCompany(c.Request.Context(), actorFrom(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company profile", company)
}

// UpdateCompany godoc
// @Summary      Update company profile
// @Tags         recruiter
// @Accept       json
// @Produce      json
// @Param        company  body      UpdateCompanyRequest  true  "Company JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /recruiter/company-profile [put]
// @Security     BearerAuth
func (h *RecruiterHandler) UpdateCompany(c *gin.Context) {
	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	company, err := h.recruiterUC.UpdateCompany(c.Request.Context(), actorFrom(c), &domain.Company{
		Name:        req.Name,
		Website:     req.Website,
		Industry:    req.Industry,
		Size:        req.Size,
		Description: req.Description,
		Location:    req.Location,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company profile updated", company)
}

// UploadLogo godoc
// @Summary      Upload company logo
// @Description  Accepts jpg/png/webp up to 5 MB; the image is downscaled server-side
// @Tags         recruiter
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Logo file"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /recruiter/company-profile/logo [post]
// @Security     BearerAuth
func (h *RecruiterHandler) UploadLogo(c *gin.Context) {
	url, err := readUpload(c, storage.KindImage, h.store, "company-logos")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.recruiterUC.SetLogoURL(c.Request.Context(), actorFrom(c), url); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Logo uploaded", gin.H{"logo_url": url})
}
