package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/meltforce/liftstrong/internal/models"
	"github.com/meltforce/liftstrong/internal/storage"
)

func (s *Server) handleGetDefaultUser(w http.ResponseWriter, r *http.Request) {
	u, err := s.db.GetOrCreateDefaultUser(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	u, err := s.db.GetUserByID(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if u == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "user not found"})
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) handleUpdateUserSettings(w http.ResponseWriter, r *http.Request) {
	var body struct {
		WeightUnit      models.WeightUnit `json:"weight_unit"`
		DefaultRestTime int               `json:"default_rest_time"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := s.db.UpdateUserSettings(r.Context(), body.WeightUnit, body.DefaultRestTime); err != nil {
		s.writeError(w, err)
		return
	}
	u, err := s.db.GetOrCreateDefaultUser(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// handleListExercises serves the catalog; ?muscle=, ?equipment= and ?q=
// narrow it by substring match.
func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	var (
		exercises []models.Exercise
		err       error
	)
	switch {
	case q.Get("muscle") != "":
		exercises, err = s.db.FetchExercisesByMuscleGroup(ctx, q.Get("muscle"))
	case q.Get("equipment") != "":
		exercises, err = s.db.FetchExercisesByEquipment(ctx, q.Get("equipment"))
	case q.Get("q") != "":
		exercises, err = s.db.SearchExercises(ctx, q.Get("q"))
	default:
		exercises, err = s.db.FetchAllExercises(ctx)
	}
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, exercises)
}

func (s *Server) handleGetExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	e, err := s.db.GetExerciseByID(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if e == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "exercise not found"})
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	var e models.Exercise
	if !decodeJSON(w, r, &e) {
		return
	}
	e.IsCustom = true // user-authored by definition
	id, err := s.db.InsertExercise(r.Context(), e)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (s *Server) handleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var e models.Exercise
	if !decodeJSON(w, r, &e) {
		return
	}
	e.ID = id
	if err := s.db.UpdateExercise(r.Context(), e); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := s.db.DeleteExerciseByID(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the storage error taxonomy onto HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, storage.ErrValidation):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, storage.ErrIntegrity):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		s.log.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

func int64Query(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(r.URL.Query().Get(key), 10, 64)
}

// parseTimeRange reads ?start and ?end (RFC 3339 or YYYY-MM-DD). A date-only
// end is extended to the end of that day so the range stays inclusive.
func parseTimeRange(r *http.Request) (start, end time.Time, err error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" {
		end = time.Now()
		start = end.AddDate(0, 0, -7)
		return
	}

	start, err = time.Parse(time.RFC3339, startStr)
	if err != nil {
		start, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	if endStr == "" {
		end = time.Now()
	} else {
		end, err = time.Parse(time.RFC3339, endStr)
		if err != nil {
			end, err = time.Parse("2006-01-02", endStr)
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
			end = end.Add(24*time.Hour - time.Nanosecond)
		}
	}
	return
}

func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
