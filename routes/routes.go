package routes

import (
	"log/slog"
	"net/http"

	"aifit/controllers"
	"aifit/middlewares"
	"aifit/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the services the HTTP layer is built from.
type Dependencies struct {
	Auth         *services.AuthService
	Calculations *services.CalculationService
	Chat         *services.ChatService
	Videos       *services.VideoService
	Hub          *services.RealtimeHub
	ChatLimiter  *middlewares.RateLimiter
	CORSOrigins  []string
	Logger       *slog.Logger
}

func SetupRouter(d Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middlewares.RequestID(),
		middlewares.RequestLogger(d.Logger),
		middlewares.Metrics(),
		middlewares.CORS(d.CORSOrigins),
	)

	authCtl := controllers.NewAuthController(d.Auth, d.Logger)
	calcCtl := controllers.NewCalculatorController(d.Calculations, d.Logger)
	videoCtl := controllers.NewVideoController(d.Videos, d.Logger)
	chatCtl := controllers.NewChatController(d.Chat, d.Logger)
	rtCtl := controllers.NewRealtimeController(d.Hub, d.CORSOrigins)

	requireAuth := middlewares.AuthMiddleware(d.Auth)
	optionalAuth := middlewares.OptionalAuth(d.Auth)

	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/forgot-password", authCtl.ForgotPassword)
		auth.POST("/reset-password", authCtl.ResetPassword)
		auth.GET("/user", requireAuth, authCtl.CurrentUser)
	}

	calc := api.Group("/calculators", optionalAuth)
	{
		calc.POST("/bmi", calcCtl.BMI)
		calc.POST("/calories", calcCtl.Calories)
		calc.POST("/bodyfat", calcCtl.BodyFat)
	}

	api.GET("/videos", videoCtl.List)
	api.GET("/videos/:id", videoCtl.Get)

	chat := api.Group("/chat")
	{
		chatHandlers := []gin.HandlerFunc{optionalAuth}
		if d.ChatLimiter != nil {
			chatHandlers = append(chatHandlers, middlewares.RateLimit(d.ChatLimiter))
		}
		chatHandlers = append(chatHandlers, chatCtl.Ask)
		chat.POST("", chatHandlers...)
		chat.GET("/history", requireAuth, chatCtl.History)
	}

	// Protected user routes
	user := api.Group("/user", requireAuth)
	{
		user.GET("/calculations", calcCtl.History)
	}

	api.GET("/ws", requireAuth, rtCtl.Events)

	return r
}
