package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Sumantkumarraj20/KLD/internal/errors"
	"github.com/Sumantkumarraj20/KLD/internal/models"
)

func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	kidID, err := kidIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	domain, err := models.ParseDomain(chi.URLParam(r, "domain"))
	if err != nil {
		handleError(w, r, errors.NewValidationError("domain", err.Error()))
		return
	}

	progress, err := s.ProgressService.GetProgress(r.Context(), kidID, domain)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, progress)
}

func (s *Server) handleGetAchievements(w http.ResponseWriter, r *http.Request) {
	kidID, err := kidIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	summary, err := s.ProgressService.Achievements(r.Context(), kidID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

func (s *Server) handleGetSkillMetrics(w http.ResponseWriter, r *http.Request) {
	kidID, err := kidIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	metrics, err := s.ProgressService.SkillMetrics(r.Context(), kidID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, metrics)
}

func (s *Server) handleListAwards(w http.ResponseWriter, r *http.Request) {
	kidID, err := kidIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	filter := models.AwardFilter{
		KidID:    kidID,
		Limit:    queryInt(r, "limit", 50),
		Offset:   queryInt(r, "offset", 0),
		OrderDir: strings.ToUpper(r.URL.Query().Get("order_dir")),
	}
	if raw := r.URL.Query().Get("domain"); raw != "" {
		domain, err := models.ParseDomain(raw)
		if err != nil {
			handleError(w, r, errors.NewValidationError("domain", err.Error()))
			return
		}
		filter.Domain = domain
	}

	awards, total, err := s.ProgressService.ListAwards(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"awards": awards,
		"total":  total,
	})
}
