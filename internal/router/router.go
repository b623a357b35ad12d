package router

import (
	"AIChatbot_Backend/internal/config"
	"AIChatbot_Backend/internal/handler"
	"AIChatbot_Backend/internal/middleware"

	_ "AIChatbot_Backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Deps struct {
	Sessions middleware.SessionResolver
	Auth     *handler.AuthHandler
	Tools    *handler.ToolsHandler
	Chat     *handler.ChatHandler
}

func SetupRouter(cfg *config.Config, d Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	if len(cfg.Server.AllowedOrigins) == 0 || cfg.Server.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Invite-Code")
	router.Use(cors.New(corsConfig))

	limiter := middleware.RateLimit(cfg.RateLimit)
	toolsAuth := middleware.RequireSession(d.Sessions, "Please login to use this feature")
	chatAuth := middleware.RequireSession(d.Sessions, "Please login to chat")

	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", limiter, middleware.InviteCode(cfg.Session.InviteCode), d.Auth.Register)
		authGroup.POST("/login", limiter, d.Auth.Login)
		authGroup.POST("/logout", d.Auth.Logout)
		authGroup.GET("/validate", d.Auth.Validate)
		authGroup.GET("/test-db", d.Auth.TestDB)
	}

	chatGroup := router.Group("/api/chat")
	{
		chatGroup.POST("/send", limiter, chatAuth, d.Chat.Send)
		chatGroup.POST("/clear", chatAuth, d.Chat.Clear)
		chatGroup.GET("/info", d.Chat.Info)
		chatGroup.GET("/health", d.Chat.Health)
		chatGroup.GET("/openai-status", d.Chat.OpenAIStatus)
		chatGroup.GET("/test", d.Chat.Test)
		chatGroup.GET("/test-openai", limiter, d.Chat.TestOpenAI)
	}

	tools := router.Group("/api/ai-tools")
	{
		protected := tools.Group("", limiter, toolsAuth)
		protected.POST("/salary-prediction", d.Tools.SalaryPrediction)
		protected.POST("/sentiment-analysis", d.Tools.SentimentAnalysis)
		protected.POST("/weather-prediction", d.Tools.WeatherPrediction)
		protected.POST("/car-recognition", d.Tools.CarRecognition)
		protected.POST("/image-analysis", d.Tools.ImageAnalysis)

		tools.GET("/", d.Tools.Home)
		tools.GET("/health", d.Tools.Health)
		tools.GET("/tools", d.Tools.Tools)
		tools.GET("/test-ml", d.Tools.TestTool("salary_prediction"))
		tools.GET("/test-sentiment", d.Tools.TestTool("sentiment_analysis"))
		tools.GET("/test-weather", d.Tools.TestTool("weather_prediction"))
		tools.GET("/test-car", d.Tools.TestTool("car_recognition"))
	}

	router.GET("/ws/chat", d.Chat.HandleChatConnection)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
