package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	_ "github.com/snapcart/marketplace/docs"
	"github.com/snapcart/marketplace/internal/api/handler"
	"github.com/snapcart/marketplace/internal/api/middleware"
	"github.com/snapcart/marketplace/internal/core/domain"
	"github.com/snapcart/marketplace/internal/core/service"
	"github.com/snapcart/marketplace/internal/infrastructure/config"
	mongodb "github.com/snapcart/marketplace/internal/infrastructure/db/mongo"
	redisdb "github.com/snapcart/marketplace/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(client *mongo.Client, db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("snapcart"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	sellerRepo := mongodb.NewSellerRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	tx := mongodb.NewTxRunner(client)
	stateStore := redisdb.NewOAuthStateStore(rdb)

	// --- Services ---
	tokens := service.NewTokenIssuer(cfg.JWTSecret, 24*time.Hour)
	authz := service.NewAuthorizer(sellerRepo)
	authService := service.NewAuthService(userRepo, tokens, log)
	oauthService := service.NewOAuthService(userRepo, log)
	userService := service.NewUserService(userRepo, log)
	sellerService := service.NewSellerService(sellerRepo, productRepo, reviewRepo, userRepo, tx, log)
	productService := service.NewProductService(productRepo, sellerRepo, reviewRepo, userRepo, authz, tx, log)
	reviewService := service.NewReviewService(reviewRepo, productRepo, authz, log)
	adminService := service.NewAdminService(userRepo, productRepo, reviewRepo, tx, log)

	googleOAuth := &oauth2.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	oauthHandler := handler.NewOAuthHandler(googleOAuth, stateStore, oauthService, tokens, cfg.FrontendURL, log)
	userHandler := handler.NewUserHandler(userService)
	sellerHandler := handler.NewSellerHandler(sellerService)
	productHandler := handler.NewProductHandler(productService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	adminHandler := handler.NewAdminHandler(adminService)

	authRequired := middleware.Auth(tokens)
	adminOnly := middleware.RBAC(domain.RolePlatformAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/google", oauthHandler.GoogleRedirect)
	e.GET("/auth/google/callback", oauthHandler.GoogleCallback)

	// --- Profile ---
	e.GET("/profile", userHandler.Profile, authRequired)
	e.PUT("/profile", userHandler.UpdateProfile, authRequired)
	e.DELETE("/profile", userHandler.DeleteAccount, authRequired)

	// --- Sellers ---
	e.POST("/sellers", sellerHandler.Create, authRequired)
	e.POST("/sellers/login", sellerHandler.Login, authRequired)
	e.DELETE("/sellers", sellerHandler.Delete, authRequired)
	e.GET("/sellers/:id", sellerHandler.Get)

	// --- Products (reads public, mutations seller-gated in the service) ---
	e.GET("/products", productHandler.List)
	e.GET("/products/mine", productHandler.Mine, authRequired)
	e.GET("/products/seller/:sellerID", productHandler.ListBySeller)
	e.GET("/products/:id", productHandler.Get)
	e.POST("/products", productHandler.Create, authRequired)
	e.PUT("/products/:id", productHandler.Update, authRequired)
	e.DELETE("/products/:id", productHandler.Delete, authRequired)

	// --- Reviews ---
	e.POST("/products/:id/reviews", reviewHandler.Create, authRequired)
	e.PUT("/products/:id/reviews/:reviewID", reviewHandler.Update, authRequired)
	e.DELETE("/products/:id/reviews/:reviewID", reviewHandler.Delete, authRequired)

	// --- Admin ---
	admin := e.Group("/admin", authRequired, adminOnly)
	admin.GET("/users", adminHandler.ListUsers)
	admin.DELETE("/products/:id", adminHandler.DeleteProduct)
	admin.DELETE("/products/:id/reviews/:reviewID", adminHandler.DeleteReview)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
