package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/personal-blog/auth"
	"github.com/rpupo63/personal-blog/config"
	"github.com/rpupo63/personal-blog/database"
	"github.com/rpupo63/personal-blog/services"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
	stopRouter  func()
}

func NewServer(database database.Database, c map[string]string, opts ...func(*router)) (Server, error) {
	port := config.GetString(c, "PORT", "3000")
	address := fmt.Sprintf("0.0.0.0:%s", port)

	// Capture startup time
	startupTime := time.Now()

	opts = append([]func(*router){withConfig(c), withStartupTime(startupTime)}, opts...)
	router, stopRouter, err := newRouter(database, opts...)
	if err != nil {
		return Server{}, err
	}

	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 180)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime, stopRouter}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
	jwtSecret   string
	notifier    *services.ContactNotifier
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

// WithJWTSecret overrides JWT_SECRET from the config, e.g. with a value resolved from SSM
func WithJWTSecret(secret string) func(*router) {
	return func(r *router) {
		r.jwtSecret = secret
	}
}

func WithContactNotifier(notifier *services.ContactNotifier) func(*router) {
	return func(r *router) {
		r.notifier = notifier
	}
}

// newRouter wires the routes and returns a func that stops the router's background work
func newRouter(database database.Database, opts ...func(*router)) (*chi.Mux, func(), error) {
	var router router
	for _, opt := range opts {
		opt(&router)
	}
	if router.startupTime.IsZero() {
		router.startupTime = time.Now()
	}
	if router.jwtSecret == "" {
		router.jwtSecret = config.GetString(router.config, "JWT_SECRET", "secret")
	}

	verifier, err := auth.NewVerifier(router.jwtSecret)
	if err != nil {
		return nil, nil, err
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(HTTPLoggingMiddleware)
	chiRouter.Use(metricsMiddleware)

	acceptedOrigins := config.GetList(router.config, "ACCEPTED_ORIGINS", []string{"*"})
	chiRouter.Use(corsMiddleware(acceptedOrigins))

	handlers := initializeHandlers(database, router.notifier, router.startupTime)
	authMiddleware := newAuthMiddleware(verifier)
	contactLimiter := newRateLimiter(
		config.GetInt(router.config, "CONTACT_RATE_PER_MINUTE", 10),
		config.GetInt(router.config, "CONTACT_RATE_BURST", 5),
		time.Duration(config.GetInt(router.config, "CONTACT_RATE_IDLE_MINUTES", 10))*time.Minute,
	)
	contactLimiter.StartCleanup(time.Minute)

	setupRoutes(chiRouter, handlers, authMiddleware, contactLimiter)

	return chiRouter, contactLimiter.Stop, nil
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")
	if s.stopRouter != nil {
		defer s.stopRouter()
	}

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
