package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Sumantkumarraj20/KLD/internal/errors"
	"github.com/Sumantkumarraj20/KLD/internal/game"
	"github.com/Sumantkumarraj20/KLD/internal/models"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.NewBadRequestError("invalid JSON body")
	}
	return nil
}

// levelParams extracts and validates the {domain}/{number} URL pair.
func levelParams(r *http.Request) (models.Domain, int, error) {
	domain, err := models.ParseDomain(chi.URLParam(r, "domain"))
	if err != nil {
		return "", 0, errors.NewValidationError("domain", err.Error())
	}
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		return "", 0, errors.NewValidationError("level_number", "must be an integer")
	}
	if number < 1 || number > game.MaxLevelsPerDomain {
		return "", 0, errors.NewValidationError("level_number",
			"must be between 1 and "+strconv.Itoa(game.MaxLevelsPerDomain))
	}
	return domain, number, nil
}

func kidIDParam(r *http.Request) (string, error) {
	kidID := chi.URLParam(r, "kidID")
	if kidID == "" {
		return "", errors.NewValidationError("kid_id", "must not be empty")
	}
	return kidID, nil
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
