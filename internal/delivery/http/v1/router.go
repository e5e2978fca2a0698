package v1

import (
	"net/http"

	"jobboard-backend/config"
	"jobboard-backend/internal/delivery/http/middleware"
	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/auth"
	"jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC         domain.AuthUsecase
	JobUC          domain.JobUsecase
	ApplicationUC  domain.ApplicationUsecase
	InterviewUC    domain.InterviewUsecase
	MessageUC      domain.MessageUsecase
	NotificationUC domain.NotificationUsecase
	ProfileUC      domain.ProfileUsecase
	RecruiterUC    domain.RecruiterUsecase
	SavedJobUC     domain.SavedJobUsecase
	Tokens         *auth.TokenManager
	Store          storage.Store
	Redis          *goredis.Client
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middlewares. CORS must run first so error responses carry the
	// headers too.
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimit(deps.Redis, middleware.DefaultRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold, deps.Config.RateLimitWindowSeconds)))

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Stricter limit on credential endpoints
	public := api.Group("")
	public.Use(middleware.RateLimit(deps.Redis, middleware.AuthRateLimitConfig(
		deps.Config.RateLimitAuthThreshold, deps.Config.RateLimitWindowSeconds)))

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))

	jobseeker := protected.Group("")
	jobseeker.Use(middleware.RequireRole(domain.RoleJobSeeker))

	recruiter := protected.Group("")
	recruiter.Use(middleware.RequireRole(domain.RoleRecruiter))

	NewAuthHandler(public, protected, deps.AuthUC)
	NewJobHandler(api, protected, recruiter, deps.JobUC)
	NewApplicationHandler(protected, jobseeker, recruiter, deps.ApplicationUC)
	NewInterviewHandler(protected, jobseeker, recruiter, deps.InterviewUC)
	NewMessageHandler(protected, deps.MessageUC)
	NewNotificationHandler(protected, deps.NotificationUC)
	NewProfileHandler(jobseeker, deps.ProfileUC, deps.Store)
	NewRecruiterHandler(recruiter, deps.RecruiterUC, deps.Store)
	NewSavedJobHandler(jobseeker, deps.SavedJobUC)

	return r
}
