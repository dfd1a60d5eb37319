package router

import (
	"time"

	"mindgarden/internal/analysis"
	"mindgarden/internal/config"
	"mindgarden/internal/handlers"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func rateLimitErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.String(429, "Too many requests. Try again later.")
}

func Setup(log *zap.Logger, classifier analysis.Classifier, mlMode string) *gin.Engine {
	// Set up a new Gin router, add recovery middleware and request logging.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	corsConf := cors.DefaultConfig()
	if origins := config.Conf.Server.AllowedOrigins; len(origins) == 1 && origins[0] == "*" {
		corsConf.AllowAllOrigins = true
	} else {
		corsConf.AllowOrigins = origins
	}
	corsConf.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConf.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConf))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		err := secureMiddleware.Process(c.Writer, c.Request)
		if err != nil {
			c.Abort()
			return
		}
	})

	// Handlers
	healthHandler := handlers.NewHealthHandler(mlMode)
	userHandler := handlers.NewUserHandler(log)
	submissionHandler := handlers.NewSubmissionHandler(log, classifier)
	mockHandler := handlers.NewMockDataHandler(log, classifier)
	gamifyHandler := handlers.NewGamificationHandler(log)
	chatHandler := handlers.NewChatHandler(log, classifier)
	analyticsHandler := handlers.NewAnalyticsHandler(log)

	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 60,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: rateLimitErrorHandler,
		KeyFunc:      keyFunc,
	})

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.Check)

		api.POST("/users", limiter, userHandler.Create)
		api.GET("/users/:id/dashboard", userHandler.Dashboard)
		api.POST("/users/:id/energy", limiter, gamifyHandler.UpdateEnergy)
		api.POST("/users/:id/powerups", limiter, gamifyHandler.CompletePowerUp)
		api.GET("/users/:id/analytics", analyticsHandler.Analytics)
		api.GET("/users/:id/analytics/chart", analyticsHandler.Chart)

		api.POST("/text-message", limiter, submissionHandler.TextMessage)
		api.POST("/voice-message", limiter, submissionHandler.VoiceMessage)
		api.POST("/family-feedback", limiter, submissionHandler.FamilyFeedback)
		api.POST("/generate-mock-data/:id", limiter, mockHandler.Generate)

		chat := api.Group("/chat")
		{
			chat.GET("/sessions", chatHandler.ListSessions)
			chat.POST("/session/start", limiter, chatHandler.StartSession)
			chat.GET("/session/:id", chatHandler.SessionDetail)
			chat.POST("/session/:id/message", limiter, chatHandler.SendMessage)
			chat.POST("/session/:id/end", limiter, chatHandler.EndSession)
			chat.POST("/voice-analysis", limiter, chatHandler.VoiceAnalysis)
		}
	}

	return router
}
