package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Sumantkumarraj20/KLD/internal/errors"
	"github.com/Sumantkumarraj20/KLD/internal/game"
	"github.com/Sumantkumarraj20/KLD/internal/logger"
	"github.com/Sumantkumarraj20/KLD/internal/models"
)

type startSessionRequest struct {
	Domain      string `json:"domain"`
	LevelNumber int    `json:"level_number"`
	Locale      string `json:"locale"`
}

type submitAnswerRequest struct {
	Answer           string  `json:"answer"`
	TimeTakenSeconds float64 `json:"time_taken_seconds"`
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	kidID, err := kidIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req startSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	domain, err := models.ParseDomain(req.Domain)
	if err != nil {
		handleError(w, r, errors.NewValidationError("domain", err.Error()))
		return
	}
	if req.LevelNumber < 1 || req.LevelNumber > game.MaxLevelsPerDomain {
		handleError(w, r, errors.NewValidationError("level_number", "out of range"))
		return
	}
	locale, err := models.ParseLocale(req.Locale, s.DefaultLocale)
	if err != nil {
		handleError(w, r, errors.NewValidationError("locale", err.Error()))
		return
	}

	started, err := s.GameService.StartSession(r.Context(), kidID, domain, req.LevelNumber, locale)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("session started via api: session_id=%s", started.Session.SessionID)
	respondJSON(w, http.StatusCreated, started)
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	var req submitAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	outcome, err := s.GameService.SubmitAnswer(r.Context(), sessionID, req.Answer, req.TimeTakenSeconds)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, outcome)
}

func (s *Server) handleCompleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	result, err := s.GameService.CompleteSession(r.Context(), sessionID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
