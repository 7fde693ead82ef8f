package app

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bbeualll199/uso-auth/internal/auth/handler"
	"github.com/bbeualll199/uso-auth/internal/auth/provider/kakao"
	"github.com/bbeualll199/uso-auth/internal/auth/token"
	"github.com/bbeualll199/uso-auth/internal/config"
	"github.com/bbeualll199/uso-auth/internal/member"
	"github.com/bbeualll199/uso-auth/internal/middleware"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	store := member.NewPGStore(infra.DB)
	verifier := kakao.New(cfg.KakaoUserInfoURL)
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTTTL)
	reconciler := member.NewReconciler(verifier, store)

	authHandler := handler.NewHandler(verifier, tokens, reconciler, store)
	authMiddleware := middleware.NewAuthMiddleware(tokens)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	authHandler.RegisterRoutes(router, middleware.GinRequireAuth(authMiddleware))

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}

func corsConfig(origins []string) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")

	if len(origins) == 1 && origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		return corsCfg
	}

	corsCfg.AllowOrigins = origins
	return corsCfg
}
