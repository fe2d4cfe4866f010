package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/vannda/pencraft/internal/admin"
	"github.com/vannda/pencraft/internal/auth"
	"github.com/vannda/pencraft/internal/config"
	"github.com/vannda/pencraft/internal/database"
	"github.com/vannda/pencraft/internal/logger"
	"github.com/vannda/pencraft/internal/posts"
	"github.com/vannda/pencraft/internal/users"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	appLog, err := logger.New(cfg.GinMode)
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	defer appLog.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		appLog.Fatal("failed to connect to database", "err", err)
	}

	if err := database.Migrate(db, &users.User{}, &posts.Post{}); err != nil {
		appLog.Fatal("migrations failed", "err", err)
	}

	directory := users.NewDirectory(db, appLog)
	repo := posts.NewRepository(db, appLog)
	sessions := auth.NewSessions(cfg.SecretKey, cfg.SecureCookies, directory, appLog)

	authHandlers := auth.NewHandlers(sessions, directory, cfg.SecureCookies)
	postHandlers := posts.NewHandlers(repo, sessions)
	adminHandlers := admin.NewHandlers(repo, sessions, cfg.SecureCookies)

	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")

	// Public routes
	r.GET("/", postHandlers.HomeHandler)
	r.GET("/post/:slug/", postHandlers.DetailHandler)
	r.GET("/login", authHandlers.LoginFormHandler)
	r.POST("/login", authHandlers.LoginPostHandler)
	r.GET("/signup/", authHandlers.SignupFormHandler)
	r.POST("/signup/", authHandlers.SignupPostHandler)

	// Protected routes
	authed := r.Group("/", sessions.RequireAuth())
	authed.GET("/logout", authHandlers.LogoutHandler)
	authed.GET("/admin/post/", adminHandlers.NewPostFormHandler)
	authed.POST("/admin/post/", adminHandlers.CreatePostHandler)
	authed.GET("/admin/post/edit/:slug", adminHandlers.EditPostFormHandler)
	authed.POST("/admin/post/edit/:slug", adminHandlers.UpdatePostHandler)
	authed.POST("/admin/post/delete/:slug", adminHandlers.DeletePostHandler)

	appLog.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		appLog.Fatal("server stopped", "err", err)
	}
}
