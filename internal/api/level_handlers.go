package api

import (
	"net/http"

	"github.com/Sumantkumarraj20/KLD/internal/errors"
	"github.com/Sumantkumarraj20/KLD/internal/logger"
	"github.com/Sumantkumarraj20/KLD/internal/models"
	"github.com/Sumantkumarraj20/KLD/internal/scheduler"
)

func (s *Server) handleGetLevel(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	domain, number, err := levelParams(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	locale, err := models.ParseLocale(r.URL.Query().Get("locale"), s.DefaultLocale)
	if err != nil {
		handleError(w, r, errors.NewValidationError("locale", err.Error()))
		return
	}
	kidID := r.URL.Query().Get("kid_id")

	log.Debug("serving level: domain=%s, number=%d, locale=%s", domain, number, locale)

	level, questions, err := s.GameService.GetLevel(r.Context(), kidID, domain, number, locale)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"level":     level,
		"questions": questions,
	})
}

func (s *Server) handleLockStatus(w http.ResponseWriter, r *http.Request) {
	kidID, err := kidIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	domain, number, err := levelParams(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	lock, err := s.GameService.LockStatus(r.Context(), kidID, domain, number)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"level_id":    models.LevelID(domain, number),
		"lock":        lock,
		"unlock_text": scheduler.FormatUnlock(lock),
	})
}

func (s *Server) handleResetLock(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	kidID, err := kidIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	domain, number, err := levelParams(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.GameService.ResetLevelLock(r.Context(), kidID, domain, number); err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("lock reset: kid_id=%s, level=%s", kidID, models.LevelID(domain, number))
	respondJSON(w, http.StatusOK, map[string]any{"reset": true})
}
