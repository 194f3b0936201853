package routes

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/Elliot-87/YOUTHCENTRE/internal/accounts"
	"github.com/Elliot-87/YOUTHCENTRE/internal/advisory"
	"github.com/Elliot-87/YOUTHCENTRE/internal/api/handlers"
	"github.com/Elliot-87/YOUTHCENTRE/internal/api/middleware"
	"github.com/Elliot-87/YOUTHCENTRE/internal/applications"
	"github.com/Elliot-87/YOUTHCENTRE/internal/config"
	"github.com/Elliot-87/YOUTHCENTRE/internal/jobs"
	"github.com/Elliot-87/YOUTHCENTRE/internal/referrals"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/utils"
)

// Services bundles the wired services the routes dispatch to.
type Services struct {
	Accounts     *accounts.Service
	Jobs         *jobs.Service
	Applications *applications.Service
	Advisory     *advisory.Service
	Referrals    *referrals.Service
	Tokens       *accounts.TokenIssuer
	DB           *gorm.DB
	Cache        *utils.RedisClient
}

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, svcs Services) {
	// Global middleware
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	e.Use(middleware.TimeoutConfig(cfg.Server.WriteTimeout))

	authed := middleware.RequireAuth(svcs.Tokens)

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(svcs.DB, svcs.Cache))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Home page section and service status
	e.GET("/", handlers.HomeHandler(svcs.Jobs))
	e.GET("/status", handlers.StatusHandler(svcs.DB, svcs.Cache))

	// Account routes
	accountGroup := e.Group("/accounts")
	{
		accountGroup.POST("/register", handlers.RegisterHandler(svcs.Accounts))
		accountGroup.POST("/login", handlers.LoginHandler(svcs.Accounts))
		accountGroup.GET("/profile", handlers.ProfileHandler(svcs.Accounts), authed)
		accountGroup.GET("/applications", handlers.MyApplicationsHandler(svcs.Applications), authed)
	}

	// Vacancy routes
	jobGroup := e.Group("/jobs")
	{
		jobGroup.GET("", handlers.ListVacanciesHandler(svcs.Jobs))
		jobGroup.GET("/feed", handlers.FeedHandler(svcs.Jobs))
		jobGroup.GET("/vacancy/:id", handlers.GetVacancyHandler(svcs.Jobs))
		jobGroup.POST("/vacancy/new", handlers.CreateVacancyHandler(svcs.Jobs), authed)
		jobGroup.PUT("/vacancy/:id/edit", handlers.EditVacancyHandler(svcs.Jobs), authed)
		jobGroup.POST("/vacancy/:id/delete", handlers.DeleteVacancyHandler(svcs.Jobs), authed)

		// Applications
		jobGroup.POST("/vacancy/:id/apply", handlers.ApplyHandler(svcs.Applications), authed)
		jobGroup.GET("/vacancy/:id/applications", handlers.VacancyApplicationsHandler(svcs.Applications), authed)
	}

	// Advisory routes
	advisoryGroup := e.Group("/advisory")
	{
		advisoryGroup.GET("", handlers.AdvisoryHomeHandler(svcs.Advisory))
		advisoryGroup.GET("/category/:id", handlers.AdvisoryCategoryHandler(svcs.Advisory))
		advisoryGroup.GET("/article/:id", handlers.AdvisoryArticleHandler(svcs.Advisory))
	}

	// Referral routes
	referralGroup := e.Group("/referrals")
	{
		referralGroup.GET("/partners", handlers.ListPartnersHandler(svcs.Referrals))
		referralGroup.GET("/partner/:id", handlers.GetPartnerHandler(svcs.Referrals))
		referralGroup.POST("/partner/:id/request", handlers.RequestReferralHandler(svcs.Referrals), authed)
		referralGroup.GET("/requests", handlers.MyReferralsHandler(svcs.Referrals), authed)
	}

	// Admin routes
	admin := e.Group("/admin", authed, middleware.RequireAdmin())
	{
		admin.PUT("/employers/:id/approve", handlers.ApproveEmployerHandler(svcs.Accounts))
		admin.PUT("/vacancies/:id/feature", handlers.FeatureVacancyHandler(svcs.Jobs))
		admin.PUT("/vacancies/:id/activate", handlers.ActivateVacancyHandler(svcs.Jobs))
		admin.PUT("/applications/:id/status", handlers.UpdateApplicationStatusHandler(svcs.Applications))

		admin.POST("/advisory/categories", handlers.CreateAdvisoryCategoryHandler(svcs.Advisory))
		admin.PUT("/advisory/categories/:id", handlers.UpdateAdvisoryCategoryHandler(svcs.Advisory))
		admin.DELETE("/advisory/categories/:id", handlers.DeleteAdvisoryCategoryHandler(svcs.Advisory))
		admin.POST("/advisory/articles", handlers.CreateAdvisoryArticleHandler(svcs.Advisory))
		admin.PUT("/advisory/articles/:id", handlers.UpdateAdvisoryArticleHandler(svcs.Advisory))
		admin.PUT("/advisory/articles/:id/publish", handlers.PublishAdvisoryArticleHandler(svcs.Advisory))
		admin.DELETE("/advisory/articles/:id", handlers.DeleteAdvisoryArticleHandler(svcs.Advisory))

		admin.POST("/referrals/partners", handlers.CreatePartnerHandler(svcs.Referrals))
		admin.PUT("/referrals/partners/:id", handlers.UpdatePartnerHandler(svcs.Referrals))
		admin.PUT("/referrals/partners/:id/activate", handlers.ActivatePartnerHandler(svcs.Referrals))
		admin.DELETE("/referrals/partners/:id", handlers.DeletePartnerHandler(svcs.Referrals))
		admin.PUT("/referrals/requests/:id/status", handlers.UpdateReferralStatusHandler(svcs.Referrals))
	}
}
