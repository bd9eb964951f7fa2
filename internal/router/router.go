package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Karlyle101/tip-me-api/internal/config"
	"github.com/Karlyle101/tip-me-api/internal/handlers"
	"github.com/Karlyle101/tip-me-api/internal/middleware"
	"github.com/Karlyle101/tip-me-api/internal/repository"
	"github.com/Karlyle101/tip-me-api/internal/services"
)

// Options carries everything Build needs besides config. TemplateGlob exists
// so tests can point at the templates dir from their own working directory.
type Options struct {
	DB           *gorm.DB
	Logger       *zap.Logger
	TemplateGlob string
}

// Build wires repositories, services, middleware and routes into a ready
// gin.Engine.
func Build(cfg *config.Config, opts Options) *gin.Engine {
	userRepo := repository.NewUserRepository(opts.DB)
	tipRepo := repository.NewTipRepository(opts.DB)
	payoutRepo := repository.NewPayoutRepository(opts.DB)

	tokenService := services.NewTokenService(cfg.JWT.Secret)
	authService := services.NewAuthService(userRepo, tokenService, cfg.Auth.BcryptCost)
	tipService := services.NewTipService(tipRepo, userRepo, services.AutoCapture{}, cfg.Fees.ServiceFeeBps)
	payoutService := services.NewPayoutService(payoutRepo)

	authMiddleware := middleware.NewAuthMiddleware(tokenService, userRepo)

	authHandler := handlers.NewAuthHandler(authService, opts.Logger)
	usersHandler := handlers.NewUsersHandler()
	tipsHandler := handlers.NewTipsHandler(tipService, opts.Logger)
	payoutsHandler := handlers.NewPayoutsHandler(payoutService, opts.Logger)
	adminHandler := handlers.NewAdminHandler(userRepo, authService, tipService, payoutService, opts.Logger)
	portalHandler := handlers.NewPortalHandler(userRepo, opts.Logger)
	qrHandler := handlers.NewQRHandler(userRepo, cfg.BaseURL, opts.Logger)

	r := gin.New()
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	glob := opts.TemplateGlob
	if glob == "" {
		glob = "web/templates/*"
	}
	r.LoadHTMLGlob(glob)

	r.GET("/health", handlers.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	users := r.Group("/users", authMiddleware.RequireAuth())
	{
		users.GET("/me", usersHandler.Me)
	}

	tips := r.Group("/tips")
	{
		tips.POST("", authMiddleware.OptionalAuth(), tipsHandler.Create)
		tips.GET("/incoming", authMiddleware.RequireAuth(), tipsHandler.Incoming)
		tips.GET("/outgoing", authMiddleware.RequireAuth(), tipsHandler.Outgoing)
	}

	payouts := r.Group("/payouts", authMiddleware.RequireAuth())
	{
		payouts.POST("/request", payoutsHandler.Request)
		payouts.GET("", payoutsHandler.List)
	}

	admin := r.Group("/admin", authMiddleware.RequireAuth(), middleware.RequireAdmin())
	{
		admin.GET("/users", adminHandler.ListUsers)
		admin.PATCH("/users/:id/role", adminHandler.UpdateUserRole)
		admin.GET("/tips", adminHandler.ListTips)
		admin.PATCH("/tips/:id/status", adminHandler.UpdateTipStatus)
		admin.GET("/payouts", adminHandler.ListPayouts)
		admin.PATCH("/payouts/:id/status", adminHandler.UpdatePayoutStatus)
	}

	r.GET("/portal/:handle", portalHandler.Show)
	r.GET("/qr/:handle", qrHandler.Show)

	return r
}
