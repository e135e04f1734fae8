package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/j3soon/nurse-scheduling-go/internal/exportcsv"
	"github.com/j3soon/nurse-scheduling-go/internal/extract"
	"github.com/j3soon/nurse-scheduling-go/internal/job"
	"github.com/j3soon/nurse-scheduling-go/internal/loader"
	"github.com/j3soon/nurse-scheduling-go/internal/repository"
	"github.com/j3soon/nurse-scheduling-go/internal/run"
)

// Handlers contains all HTTP request handlers.
type Handlers struct {
	runs      repository.RunRepository
	scheduler *job.JobScheduler
	db        repository.Database
}

// CreateRunRequest is the request body for POST /api/runs. Scenario carries
// the scenario document as raw YAML text, matching how a caller would
// have it in hand (same shape loader.LoadFile reads from disk).
type CreateRunRequest struct {
	Scenario      string `json:"scenario" validate:"required"`
	Deterministic bool   `json:"deterministic,omitempty"`
	TimeoutSec    int    `json:"timeout_seconds,omitempty"`
}

// CreateRun parses, validates, persists, and enqueues a scenario for
// solving. A scenario with only warnings/info still gets queued; one with
// errors is rejected with its validation.Result attached.
func (h *Handlers) CreateRun(c echo.Context) error {
	var req CreateRunRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponseWithCode("INVALID_REQUEST", "invalid request body: "+err.Error()))
	}
	if req.Scenario == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponseWithCode("MISSING_SCENARIO", "scenario is required"))
	}

	doc, result, err := loader.Load(strings.NewReader(req.Scenario), "request body")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponseWithCode("PARSE_FAILED", err.Error()))
	}
	if !result.IsValid() {
		return c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse(result))
	}

	rn := run.New(doc, req.Scenario, run.Options{Deterministic: req.Deterministic, TimeoutSec: req.TimeoutSec})
	if err := h.runs.Create(context.Background(), rn); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponseWithCode("CREATE_FAILED", err.Error()))
	}

	timeout := time.Duration(req.TimeoutSec) * time.Second
	if _, err := h.scheduler.EnqueueScheduleSolve(context.Background(), rn.ID, timeout); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponseWithCode("ENQUEUE_FAILED", err.Error()))
	}

	return c.JSON(http.StatusAccepted, SuccessResponse(map[string]interface{}{
		"id":     rn.ID,
		"status": rn.Status,
	}))
}

// GetRun retrieves a run's current status and (once solved) its summary.
func (h *Handlers) GetRun(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponseWithCode("INVALID_ID", "invalid run id"))
	}

	rn, err := h.runs.GetByID(context.Background(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, ErrorResponseWithCode("NOT_FOUND", "run not found"))
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponseWithCode("LOOKUP_FAILED", err.Error()))
	}

	return c.JSON(http.StatusOK, SuccessResponse(rn))
}

// ListRuns lists the most recently created runs, newest first.
func (h *Handlers) ListRuns(c echo.Context) error {
	limit := 50
	if q := c.QueryParam("limit"); q != "" {
		if n, err := strconv.Atoi(q); err == nil {
			limit = n
		}
	}

	runs, err := h.runs.List(context.Background(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponseWithCode("LIST_FAILED", err.Error()))
	}
	return c.JSON(http.StatusOK, SuccessResponse(runs))
}

// GetRunResultCSV streams a solved run's schedule as CSV.
func (h *Handlers) GetRunResultCSV(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponseWithCode("INVALID_ID", "invalid run id"))
	}

	rn, err := h.runs.GetByID(context.Background(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, ErrorResponseWithCode("NOT_FOUND", "run not found"))
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponseWithCode("LOOKUP_FAILED", err.Error()))
	}
	if rn.Summary == nil || len(rn.Summary.Rows) == 0 {
		return c.JSON(http.StatusConflict, ErrorResponseWithCode("NOT_READY", "run has no result yet"))
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().WriteHeader(http.StatusOK)
	return exportcsv.Write(c.Response(), extract.Table{Rows: rn.Summary.Rows})
}

// Health returns the API's own liveness.
func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse(map[string]interface{}{"status": "UP"}))
}

// HealthDB reports database connectivity ("UP" or "DOWN"), or
// "NOT_CONFIGURED" when running without a database (memory-repository mode).
func (h *Handlers) HealthDB(c echo.Context) error {
	if h.db == nil {
		return c.JSON(http.StatusOK, SuccessResponse(map[string]interface{}{"database": "NOT_CONFIGURED"}))
	}
	status := "UP"
	if err := h.db.Health(context.Background()); err != nil {
		status = "DOWN"
	}
	return c.JSON(http.StatusOK, SuccessResponse(map[string]interface{}{"database": status}))
}

// HealthRedis reports "UP" when a job scheduler is configured and
// "NOT_CONFIGURED" otherwise; it does not probe the Redis connection.
func (h *Handlers) HealthRedis(c echo.Context) error {
	status := "UP"
	if h.scheduler == nil {
		status = "NOT_CONFIGURED"
	}
	return c.JSON(http.StatusOK, SuccessResponse(map[string]interface{}{"redis": status}))
}
