package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"lg/macro-plan-api/config"
)

// newRouter builds the gin engine with all routes registered.
func newRouter(h *Handler) *gin.Engine {
	router := gin.Default()
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)
	return router
}

// withCORS wraps the router so a browser front end on another origin can call the API.
func withCORS(next http.Handler, origins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(next)
}

func main() {
	log.SetPrefix("macro-plan-api: ")
	log.SetFlags(log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	h := &Handler{}
	if cfg.DatabaseEnabled() {
		pool, err := newDBPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer pool.Close()
		log.Println("DB pool ready")
		h.db = pool
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           withCORS(newRouter(h), cfg.AllowedOrigins()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("HTTP server listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("HTTP server stopped")
}
