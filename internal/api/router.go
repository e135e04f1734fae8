// Package api exposes the scenario submission/result HTTP surface over
// Echo: a Router/Handlers scaffold narrowed down to the
// run-submission workflow.
package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/j3soon/nurse-scheduling-go/internal/job"
	"github.com/j3soon/nurse-scheduling-go/internal/repository"
)

// Router creates and configures the Echo router.
type Router struct {
	echo     *echo.Echo
	handlers *Handlers
}

// NewRouter creates a new Echo router with all routes registered. db may
// be nil (health/db reports "NOT_CONFIGURED" in that case, matching a
// memory-repository-only deployment).
func NewRouter(runs repository.RunRepository, scheduler *job.JobScheduler, db repository.Database) *Router {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.PATCH},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	r := &Router{
		echo: e,
		handlers: &Handlers{
			runs:      runs,
			scheduler: scheduler,
			db:        db,
		},
	}
	r.registerRoutes()
	return r
}

// registerRoutes configures all API routes.
func (r *Router) registerRoutes() {
	r.echo.GET("/api/health", r.handlers.Health)
	r.echo.GET("/api/health/redis", r.handlers.HealthRedis)
	r.echo.GET("/api/health/db", r.handlers.HealthDB)

	runGroup := r.echo.Group("/api/runs")
	runGroup.POST("", r.handlers.CreateRun)
	runGroup.GET("", r.handlers.ListRuns)
	runGroup.GET("/:id", r.handlers.GetRun)
	runGroup.GET("/:id/result.csv", r.handlers.GetRunResultCSV)
}

// Start starts the HTTP server.
func (r *Router) Start(addr string) error {
	return r.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (r *Router) Shutdown() error {
	return r.echo.Close()
}
