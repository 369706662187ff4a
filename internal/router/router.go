// Package router wires the HTTP surface: public endpoints, the auth
// endpoints behind the rate limiter, and the protected /api routes behind
// bearer-token authentication.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/civicdesk/complaint-portal/internal/config"
	"github.com/civicdesk/complaint-portal/internal/handler"
	"github.com/civicdesk/complaint-portal/internal/middleware"
	"github.com/civicdesk/complaint-portal/internal/model"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth        *handler.AuthHandler
	Users       *handler.UserHandler
	Complaints  *handler.ComplaintHandler
	Assignments *handler.AssignmentHandler
	Messages    *handler.MessageHandler
	Admin       *handler.AdminHandler
}

// Register mounts all routes on e. The Redis client may be nil, in which
// case the response cache and rate limiter become pass-throughs.
func Register(e *echo.Echo, cfg config.Config, h Handlers, rdb *redis.Client) {
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.CORS())

	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e.GET("/api/health", handler.Health)

	// Credential endpoints sit behind the rate limiter only.
	auth := e.Group("/api/auth", limit)
	auth.POST("/signup", h.Auth.Signup)
	auth.POST("/login", h.Auth.Login)

	// Everything else requires a bearer token.
	api := e.Group("/api", middleware.JWTAuth(cfg.JWTSecret))

	api.GET("/user/profile", h.Users.Profile)
	api.PUT("/user/profile", h.Users.UpdateProfile)

	api.POST("/complaints", h.Complaints.Create)
	api.GET("/complaints/all", h.Complaints.ListAll, middleware.RequireRole(model.RoleAdmin), cache)
	api.GET("/complaints/user", h.Complaints.ListMine)
	api.GET("/complaints/:id", h.Complaints.GetByID)
	api.PUT("/complaints/:id/status", h.Complaints.UpdateStatus)

	api.POST("/complaints/assign", h.Assignments.Assign)
	api.GET("/complaints/assigned/agent", h.Assignments.ListMine)
	api.GET("/complaints/assigned/all", h.Assignments.ListAll, middleware.RequireRole(model.RoleAdmin), cache)
	api.PUT("/complaints/assigned/:id/status", h.Assignments.UpdateStatus)

	api.POST("/messages", h.Messages.Send)
	api.GET("/messages/:complaintId", h.Messages.ListByComplaint)

	admin := api.Group("/admin", middleware.RequireRole(model.RoleAdmin), cache)
	admin.GET("/users", h.Admin.ListUsers)
	admin.GET("/agents", h.Admin.ListAgents)
	admin.GET("/stats", h.Admin.Stats)
}
