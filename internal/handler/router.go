package handler

import (
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	Auth   *AuthHandler
	Tasks  *TaskHandler
	System *SystemHandler
}

func RegisterRoutes(engine *gin.Engine, deps RouterDeps) {
	engine.GET("/", deps.System.Banner)
	engine.GET("/health", deps.System.Health)

	api := engine.Group("/api")
	api.POST("/auth/register", deps.Auth.Register)
	api.POST("/auth/login", deps.Auth.Login)

	// Task routes are intentionally public: tokens are issued but no route
	// requires one, so any caller may act on any task. middleware.JWTAuth
	// is the mount point if that ever changes.
	api.GET("/tasks", deps.Tasks.List)
	api.POST("/tasks", deps.Tasks.Create)
	api.PUT("/tasks/:id", deps.Tasks.Update)
	api.DELETE("/tasks/:id", deps.Tasks.Delete)
}
