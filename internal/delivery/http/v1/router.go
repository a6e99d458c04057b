package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	UserUC        domain.UserUsecase
	CandidateUC   domain.CandidateUsecase
	CompanyUC     domain.CompanyUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.JobApplicationUsecase
	Presigner     *storage.PresignClient
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middlewares. CORS must run first so even rejected requests get
	// the right headers.
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	userHandler := NewUserHandler(deps.UserUC)
	candidateHandler := NewCandidateHandler(deps.CandidateUC, deps.Presigner)
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Presigner)
	jobHandler := NewJobHandler(deps.JobUC, deps.CompanyUC)
	applicationHandler := NewApplicationHandler(deps.ApplicationUC, deps.JobUC, deps.CandidateUC, deps.CompanyUC)

	auth := api.Group("")
	auth.Use(middleware.AuthMiddleware(deps.Config))
	{
		admin := middleware.RequireRole(domain.RoleAdmin)

		// Users
		auth.PUT("/user", userHandler.Upsert)
		auth.GET("/user", userHandler.Get)
		auth.GET("/userlist", admin, userHandler.List)
		auth.DELETE("/user", admin, userHandler.Delete)

		// Candidates
		auth.PUT("/candidate", middleware.RequireRole(domain.RoleCandidate, domain.RoleAdmin), candidateHandler.Upsert)
		auth.GET("/candidate", candidateHandler.Get)
		auth.GET("/candidatelist", admin, candidateHandler.List)
		auth.DELETE("/candidate", admin, candidateHandler.Delete)
		auth.PUT("/candidate/disable", admin, candidateHandler.Disable)
		auth.PUT("/candidate/enable", admin, candidateHandler.Enable)
		auth.GET("/candidate/photo/upload-url", middleware.RequireRole(domain.RoleCandidate), candidateHandler.PhotoUploadURL)
		auth.GET("/candidate/photo/download-url", middleware.RequireRole(domain.RoleCandidate, domain.RoleAdmin), candidateHandler.PhotoDownloadURL)

		// Companies
		auth.PUT("/company", middleware.RequireRole(domain.RoleCompany, domain.RoleAdmin), companyHandler.Upsert)
		auth.GET("/company", companyHandler.Get)
		auth.GET("/companylist", admin, companyHandler.List)
		auth.DELETE("/company", admin, companyHandler.Delete)
		auth.PUT("/company/disable", admin, companyHandler.Disable)
		auth.PUT("/company/enable", admin, companyHandler.Enable)
		auth.GET("/company/logo/upload-url", middleware.RequireRole(domain.RoleCompany), companyHandler.LogoUploadURL)
		auth.GET("/company/logo/download-url", middleware.RequireRole(domain.RoleCompany, domain.RoleAdmin), companyHandler.LogoDownloadURL)

		// Jobs
		auth.PUT("/job", middleware.RequireRole(domain.RoleCompany, domain.RoleAdmin), jobHandler.Upsert)
		auth.GET("/job", jobHandler.Get)
		auth.GET("/joblist", jobHandler.List)
		auth.DELETE("/job", admin, jobHandler.Delete)

		// Job applications
		auth.PUT("/jobapplication", middleware.RequireRole(domain.RoleCandidate), applicationHandler.Apply)
		auth.GET("/jobapplication", applicationHandler.Get)
		auth.GET("/jobapplicationlist", applicationHandler.List)
		auth.PUT("/jobapplication/status", middleware.RequireRole(domain.RoleCompany, domain.RoleAdmin), applicationHandler.UpdateStatus)
		auth.DELETE("/jobapplication", admin, applicationHandler.Delete)
	}

	return r
}
