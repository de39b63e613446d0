package app

import (
	"context"
	"time"

	"github.com/Muhammed-Kahraman/Blog-Website/internal/config"
	"github.com/Muhammed-Kahraman/Blog-Website/internal/middleware"
	"github.com/Muhammed-Kahraman/Blog-Website/internal/post"
	"github.com/Muhammed-Kahraman/Blog-Website/internal/session"
	"github.com/Muhammed-Kahraman/Blog-Website/internal/user"
	"github.com/Muhammed-Kahraman/Blog-Website/internal/web"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {
	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	sessionStore := session.NewRedisStore(infra.Redis.Client)
	userService := user.NewService(infra.DB)
	postService := post.NewService(infra.DB)

	auth := middleware.NewAuth(sessionStore)

	handler := web.NewHandler(
		userService,
		postService,
		sessionStore,
		time.Duration(cfg.SessionTTL)*time.Hour,
	)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CSRF(cfg.AllowedOrigins))

	router.LoadHTMLGlob(cfg.TemplateGlob)
	router.Static("/static", cfg.StaticDir)

	handler.RegisterRoutes(router, auth)

	return router, func() error {
		return infra.DB.Close()
	}, nil
}
