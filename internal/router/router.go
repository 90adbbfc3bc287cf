package router

import (
	"time"

	"orderapp/internal/attendee"
	"orderapp/internal/auth"
	"orderapp/internal/bot"
	"orderapp/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(
	botHandler *bot.Handler,
	adminHandler *bot.AdminHandler,
	attendeeHandler *attendee.Handler,
	authHandler *auth.Handler,
) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── BOT ─────────────────────────
	r.POST("/webhook", botHandler.Webhook)
	r.POST("/analyze", botHandler.Analyze)

	// ───────────────────────── ROSTER ─────────────────────────
	r.GET("/roster", attendeeHandler.Roster)

	users := r.Group("/users/:id/attendees")
	{
		users.GET("", attendeeHandler.List)
		users.POST("", attendeeHandler.Add)
		users.DELETE("", attendeeHandler.Clear)
		users.DELETE("/:name", attendeeHandler.Remove)
	}

	// ───────────────────────── AUTH ─────────────────────────
	r.POST("/auth/login", authHandler.Login)

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.GET("/sessions", adminHandler.ListSessions)
		admin.DELETE("/sessions/:user_id", adminHandler.ResetSession)
	}

	return r
}
