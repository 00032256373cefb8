package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "learncast-backend/docs"
	"learncast-backend/internal/common/config"
	"learncast-backend/internal/common/logger"
	"learncast-backend/internal/common/middleware"
	authhttp "learncast-backend/internal/features/auth/delivery/http"
	authservice "learncast-backend/internal/features/auth/service"
	badgehttp "learncast-backend/internal/features/badge/delivery/http"
	badgeservice "learncast-backend/internal/features/badge/service"
	"learncast-backend/internal/features/badge/signer"
	courseconvex "learncast-backend/internal/features/course/repository/convex"
	courseredis "learncast-backend/internal/features/course/repository/redis"
	userconvex "learncast-backend/internal/features/user/repository/convex"
	"learncast-backend/internal/platform/convex"
	redisplatform "learncast-backend/internal/platform/redis"
)

// @title           LearnCast API
// @version         1.0
// @description     Badge mint authorization backend for the LearnCast mini app.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey QuickAuthToken
// @in header
// @name Authorization
// @description Quick Auth session token as 'Bearer <token>'

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger.Init("learncast-backend", cfg.Debug)
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.Convex.URL == "" {
		// Startup proceeds so health checks can report the problem; every
		// sign-mint request fails with a configuration error.
		logger.Error().Msg("CONVEX_URL is not set; store reads will fail")
	}
	convexClient := convex.NewClient(cfg.Convex.URL, time.Duration(cfg.Convex.TimeoutSec)*time.Second)

	rdb, err := redisplatform.Open(ctx, cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Fatal().Err(err).Msg("redis connect failed")
	}
	defer rdb.Close()

	courseRepo := courseredis.NewCourseNumberCache(
		rdb,
		courseconvex.NewCourseRepository(convexClient),
		time.Duration(cfg.Redis.CourseNumberTTLSec)*time.Second,
	)
	userRepo := userconvex.NewUserRepository(convexClient)

	// A missing key is surfaced per-request as a configuration error rather
	// than crashing the process, per the signer's failure contract.
	var mintSigner *signer.Signer
	if cfg.Mint.SignerPrivateKey == "" {
		logger.Error().Msg("MINT_SIGNER_PRIVATE_KEY is not set; sign-mint will reject all requests")
	} else {
		mintSigner, err = signer.New(cfg.Mint.SignerPrivateKey)
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid MINT_SIGNER_PRIVATE_KEY")
		}
		logger.Info().Str("signer_address", mintSigner.Address().Hex()).Msg("mint signer loaded")
	}

	mintService := badgeservice.NewMintService(mintSigner, courseRepo, userRepo)
	authService := authservice.NewAuthService(cfg.QuickAuth.Secret, cfg.QuickAuth.Domain, cfg.QuickAuth.Issuer)

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Recovery(),
		cors.New(cors.Config{
			AllowOrigins: []string{cfg.Server.Origin},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
			MaxAge:       12 * time.Hour,
		}),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":        "ok",
			"signer_loaded": badgeservice.Ready(mintService),
			"store_set":     cfg.Convex.URL != "",
		})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	badgehttp.NewMintHandler(mintService).RegisterRoutes(api)
	authhttp.NewAuthHandler(authService).RegisterRoutes(api)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen failed")
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown")
	}
	logger.Info().Msg("server stopped")
}
