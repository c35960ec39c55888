package api

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/wellness/internal/service"
)

const (
	requestTimeout  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
)

type Server struct {
	mx              *chi.Mux
	userService     service.UserServiceI
	activityService service.ActivityServiceI
	pointsService   service.PointsServiceI
	jwtService      JWTServiceI
}

type ServicesList struct {
	UserService     service.UserServiceI
	ActivityService service.ActivityServiceI
	PointsService   service.PointsServiceI
	JwtService      JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	if servicesOptions == nil || servicesOptions.UserService == nil || servicesOptions.ActivityService == nil ||
		servicesOptions.PointsService == nil || servicesOptions.JwtService == nil {
		log.Fatal("api server: every service must be provided")
	}
	s := &Server{
		mx:              chi.NewMux(),
		userService:     servicesOptions.UserService,
		activityService: servicesOptions.ActivityService,
		pointsService:   servicesOptions.PointsService,
		jwtService:      servicesOptions.JwtService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Get("/health", s.Health)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))
		r.Use(s.AuthMiddleware)
		r.Use(s.LoggerExtensionMiddleware)
		r.Route("/activity", func(r chi.Router) {
			r.Post("/log", s.LogActivity)
			r.Post("/water", s.LogWater)
			r.Get("/history", s.GetActivityHistory)
			r.Get("/{date}", s.GetActivity)
		})
		r.Route("/points", func(r chi.Router) {
			r.Get("/me", s.GetMyPoints)
			r.Get("/leaderboard", s.GetLeaderboard)
			r.Post("/recompute", s.RecomputePoints)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	if addr == "" {
		addr = ":8080"
	}
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api server started", slog.String("address", addr))
		errCh <- httpServer.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	slog.Info("api server shutting down")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return errors.New("shutting down server error: " + err.Error())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
