package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lg/macro-plan-api/macro"
)

// Handler holds shared dependencies for all route handlers.
// db is nil when no database is configured; only public routes are served then.
type Handler struct {
	db *pgxpool.Pool
}

/* ─── Database helpers ────────────────────────────────────────────────── */

// queryOne runs a query and scans the first row into T using RowToStructByName.
// Logs query and scan errors for debugging (e.g. struct/column mismatches).
func queryOne[T any](pool *pgxpool.Pool, c *gin.Context, sql string, args pgx.NamedArgs) (T, error) {
	rows, err := pool.Query(c, sql, args)
	if err != nil {
		log.Printf("[queryOne] Query error: %v", err)
		var zero T
		return zero, err
	}
	result, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		log.Printf("[queryOne] Scan error: %v", err)
	}
	return result, err
}

/* ─── Response helpers ────────────────────────────────────────────────── */

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// validationFailed writes a 400 listing every invalid field in err.
// Falls back to a plain 400 when err carries no field details.
func validationFailed(c *gin.Context, err error) {
	errs := macro.ValidationErrors(err)
	if len(errs) == 0 {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}
	fields := make([]fieldError, len(errs))
	for i, e := range errs {
		fields[i] = fieldError{Field: e.Field, Reason: e.Reason}
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": errs[0].Error(), "fields": fields})
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// newDBPool creates a connection pool. A pool (not a single conn) survives
// the server closing idle connections.
func newDBPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DB URL: %w", err)
	}
	// Simple protocol avoids "cached plan must not change result type" after
	// schema migrations on poolers with server-side statement caches.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// registerRoutes registers all API routes on the router. Login and profile
// routes need the database and are skipped without one.
func (h *Handler) registerRoutes(router *gin.Engine) {
	// Public routes
	router.GET("/api/health", h.getHealth)
	router.GET("/api/plan/options", h.getPlanOptions)
	router.POST("/api/plan", h.postPlan)

	if h.db == nil {
		log.Printf("[registerRoutes] no database configured; login and profile routes disabled")
		return
	}
	router.POST("/api/login", h.login)

	// Authenticated routes
	api := router.Group("/api", h.authMiddleware())
	api.GET("/profile", h.getProfile)
	api.PATCH("/profile", h.patchProfile)
	api.GET("/profile/plan", h.getProfilePlan)
}
