package server

import (
	"context"
	"net/http"

	"gympro/internal/auth"
	"gympro/internal/config"
	"gympro/internal/gym"
	"gympro/internal/ledger"
	"gympro/internal/logger"
	"gympro/internal/member"
	"gympro/internal/notify"
	"gympro/internal/settings"
	"gympro/internal/storage"
	"gympro/internal/trainer"

	"github.com/gin-gonic/gin"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	config *config.Config
}

func New(store storage.Store, cfg *config.Config, notifyService *notify.Service) *Server {
	router := gin.Default()
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	gymRepo := gym.NewRepository(store)
	if err := gym.SeedMetrics(context.Background(), gymRepo); err != nil {
		logger.Error("Failed to seed gym metrics", "error", err)
	}
	memberRepo := member.NewRepository(store)
	ledgerSvc := ledger.NewService(ledger.NewRepository(store))
	gymSvc := gym.NewService(gymRepo)
	memberSvc := member.NewService(memberRepo, gymRepo, ledgerSvc)
	settingsRepo := settings.NewRepository(store)
	trainerRepo := trainer.NewRepository(store)

	authHandler := auth.NewHandler(auth.NewService(
		gymRepo, memberRepo, store, cfg.JWTSecret, cfg.SuperAdminUser, cfg.SuperAdminPass))
	gymHandler := gym.NewHandler(gymSvc)
	memberHandler := member.NewHandler(memberSvc)
	ledgerHandler := ledger.NewHandler(ledgerSvc)
	trainerHandler := trainer.NewHandler(trainerRepo)
	notifyHandler := notify.NewHandler(notifyService, memberSvc, gymRepo, settingsRepo)

	public := router.Group("/auth")
	{
		public.POST("/login", authHandler.Login)
		public.POST("/logout", authHandler.Logout)
		public.GET("/session", authHandler.CurrentSession)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)

	manager := router.Group("/manager")
	manager.Use(authMiddleware, auth.RequireRole(auth.RoleManager))
	{
		manager.GET("/members", memberHandler.List)
		manager.POST("/members", memberHandler.Register)
		manager.GET("/members/:memberID", memberHandler.Get)
		manager.PUT("/members/:memberID", memberHandler.UpdateProfile)
		manager.POST("/members/:memberID/extend", memberHandler.ExtendPlan)
		manager.POST("/members/:memberID/supplements", memberHandler.AddSupplement)
		manager.POST("/members/:memberID/photos", memberHandler.UploadPhoto)
		manager.GET("/finance", ledgerHandler.Finance)
		manager.GET("/transactions", ledgerHandler.ListTransactions)
		manager.GET("/terms", gymHandler.GetTerms)
		manager.PUT("/terms", gymHandler.UpdateTerms)
		manager.GET("/trainers", trainerHandler.List)
		manager.POST("/trainers", trainerHandler.Create)
		manager.POST("/reminders", notifyHandler.QueueReminders)
	}

	memberGroup := router.Group("/")
	memberGroup.Use(authMiddleware, auth.RequireRole(auth.RoleMember))
	{
		memberGroup.GET("/me", memberHandler.Me)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole(auth.RoleSuperAdmin))
	{
		admin.GET("/gyms", gymHandler.ListGyms)
		admin.POST("/gyms", gymHandler.CreateGym)
		admin.PUT("/gyms/:gymID", gymHandler.UpdateGym)
		admin.POST("/gyms/:gymID/status", gymHandler.ToggleStatus)
		admin.DELETE("/gyms/:gymID", gymHandler.DeleteGym)
		admin.GET("/stats", gymHandler.Stats)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		config: cfg,
	}
}

// Router exposes the gin engine for in-process tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
