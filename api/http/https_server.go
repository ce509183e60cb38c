package http

import (
	"net/http"
	"time"

	"MedLink/internal/config"
	"MedLink/internal/initial"
	jwtMiddleware "MedLink/internal/middleware/jwt"
	assistantService "MedLink/internal/modules/assistant/application/service"
	"MedLink/internal/modules/assistant/infrastructure/llm"
	assistantHandler "MedLink/internal/modules/assistant/interface/http"
	convService "MedLink/internal/modules/conversation/application/service"
	convPersistence "MedLink/internal/modules/conversation/infrastructure/persistence"
	convHandler "MedLink/internal/modules/conversation/interface/http"
	metricsService "MedLink/internal/modules/metrics/application/service"
	metricsHandler "MedLink/internal/modules/metrics/interface/http"
	notifService "MedLink/internal/modules/notification/application/service"
	notifHandler "MedLink/internal/modules/notification/interface/http"
	"MedLink/internal/modules/notification/interface/scheduler"
	sentimentHandler "MedLink/internal/modules/sentiment/interface/http"
	"MedLink/internal/modules/user/application/service"
	"MedLink/internal/modules/user/infrastructure/persistence"
	userHandler "MedLink/internal/modules/user/interface/http"
	"MedLink/pkg/ssl"
	"MedLink/pkg/ws"

	cors "github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var GE *gin.Engine

// NotifGenerator 模拟通知源，main 里随进程生命周期启停
var NotifGenerator *scheduler.Generator

func init() {
	conf := config.GetConfig()

	GE = gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	GE.Use(cors.New(corsConfig))
	GE.Use(ssl.TlsHandler(conf.MainConfig.Host, conf.MainConfig.Port))

	wsHub := ws.NewHub()

	userRepo := persistence.NewUserRepository()
	patientRepo := convPersistence.NewPatientRepository()
	convRepo := convPersistence.NewConversationRepository()

	feed := notifService.NewFeedService(conf.NotificationConfig.MaxFeedSize, wsHub)
	userSvc := service.NewUserService(userRepo)
	conversationSvc := convService.NewConversationService(convRepo, patientRepo, userRepo, feed)
	metricsSvc := metricsService.NewMetricsService(convRepo, initial.DashboardBaseline(), initial.AttendantBaseline())
	suggestionSvc := assistantService.NewSuggestionService(llm.NewClient(
		llm.WithBaseURL(conf.AISuggestionConfig.BaseURL),
		llm.WithModel(conf.AISuggestionConfig.Model),
		llm.WithHTTPClient(&http.Client{Timeout: time.Duration(conf.AISuggestionConfig.TimeoutSeconds) * time.Second}),
	))

	initial.Seed(userRepo, patientRepo, convRepo, feed)

	NotifGenerator = scheduler.NewGenerator(feed,
		time.Duration(conf.NotificationConfig.IntervalSeconds)*time.Second,
		conf.NotificationConfig.UrgentRatio)

	userH := userHandler.NewUserHandler(userSvc)
	conversationH := convHandler.NewConversationHandler(conversationSvc)
	sentimentH := sentimentHandler.NewSentimentHandler()
	notificationH := notifHandler.NewNotificationHandler(feed)
	assistantH := assistantHandler.NewAssistantHandler(suggestionSvc)
	metricsH := metricsHandler.NewMetricsHandler(metricsSvc)
	wsH := notifHandler.NewWsHandler(wsHub, userRepo, feed)

	GE.POST("/login", userH.Login)
	GE.GET("/wss", wsH.Connect)

	authed := GE.Group("/")
	authed.Use(jwtMiddleware.Auth())
	authed.GET("/user/me", userH.GetMe)

	authed.GET("/conversation/list", conversationH.List)
	authed.GET("/conversation/channels", conversationH.ListChannels)
	authed.GET("/conversation/:uuid", conversationH.Get)
	authed.POST("/conversation/inbound", conversationH.Inbound)
	authed.POST("/conversation/reply", conversationH.Reply)
	authed.POST("/conversation/assign", conversationH.Assign)
	authed.POST("/conversation/updateStatus", conversationH.UpdateStatus)
	authed.POST("/conversation/updatePriority", conversationH.UpdatePriority)

	authed.POST("/sentiment/analyze", sentimentH.Analyze)

	authed.GET("/notification/list", notificationH.GetFeed)
	authed.POST("/notification/markAsRead/:uuid", notificationH.MarkAsRead)
	authed.POST("/notification/markAllAsRead", notificationH.MarkAllAsRead)
	authed.POST("/notification/remove/:uuid", notificationH.Remove)

	authed.POST("/assistant/suggestions", assistantH.GenerateSuggestions)

	// 管理端看板仅经理可见
	managed := authed.Group("/metrics")
	managed.Use(jwtMiddleware.RequireRole("manager"))
	managed.GET("/dashboard", metricsH.Dashboard)
	managed.GET("/attendants", metricsH.Attendants)
}
