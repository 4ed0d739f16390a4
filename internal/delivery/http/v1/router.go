package v1

import (
	"net/http"
	"time"

	"go-jobportal-backend/config"
	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	InterviewUC   domain.InterviewUsecase
	Metrics       *metrics.Collector
	Gatherer      prometheus.Gatherer
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(middleware.SecurityHeaders())
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	r.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:  deps.Config.RateLimitGlobalThreshold,
		Window: time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
	}))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler(deps.Gatherer)))
	}

	optionalAuth := middleware.OptionalAuth(deps.Config, deps.AuthUC)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config, deps.AuthUC))
	{
		NewAuthHandler(v1, protected, deps.AuthUC)
		NewJobHandler(v1, protected, deps.JobUC, optionalAuth)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewInterviewHandler(protected, deps.InterviewUC)
	}

	return r
}
