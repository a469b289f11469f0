package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Sumantkumarraj20/KLD/internal/db"
	"github.com/Sumantkumarraj20/KLD/internal/models"
	"github.com/Sumantkumarraj20/KLD/internal/services"
)

type Server struct {
	DB              *db.DB
	GameService     services.GameService
	ProgressService services.ProgressService
	DefaultLocale   models.Locale
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Get("/levels/{domain}/{number}", s.handleGetLevel)

		r.Route("/kids/{kidID}", func(r chi.Router) {
			r.Post("/sessions", s.handleStartSession)
			r.Get("/progress/{domain}", s.handleGetProgress)
			r.Get("/achievements", s.handleGetAchievements)
			r.Get("/skills", s.handleGetSkillMetrics)
			r.Get("/awards", s.handleListAwards)
			r.Get("/levels/{domain}/{number}/lock", s.handleLockStatus)
			r.Post("/levels/{domain}/{number}/reset", s.handleResetLock)
		})

		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Post("/answers", s.handleSubmitAnswer)
			r.Post("/complete", s.handleCompleteSession)
		})
	})

	return r
}
