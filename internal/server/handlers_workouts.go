package server

import (
	"net/http"
	"time"
)

func (s *Server) handleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID int64      `json:"user_id"`
		Name   string     `json:"name"`
		Date   *time.Time `json:"date,omitempty"`
		Notes  *string    `json:"notes,omitempty"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	date := time.Now()
	if body.Date != nil {
		date = *body.Date
	}
	id, err := s.db.CreateWorkout(r.Context(), body.UserID, body.Name, date, body.Notes)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// handleListWorkouts serves workout history for ?user_id=, or an inclusive
// ?start/?end date range.
func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Get("start") != "" || q.Get("end") != "" {
		start, end, err := parseTimeRange(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		workouts, err := s.db.FetchWorkoutsBetweenDates(r.Context(), start, end)
		if err != nil {
			s.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, workouts)
		return
	}

	userID, err := int64Query(r, "user_id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user_id parameter required"})
		return
	}
	workouts, err := s.db.FetchWorkoutsForUser(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	detail, err := s.db.GetWorkoutDetail(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := s.db.DeleteWorkoutByID(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCompleteWorkout(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var body struct {
		Duration int `json:"duration"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := s.db.CompleteWorkout(r.Context(), id, body.Duration); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddWorkoutExercise(w http.ResponseWriter, r *http.Request) {
	workoutID, ok := idParam(w, r)
	if !ok {
		return
	}
	var body struct {
		ExerciseID int64   `json:"exercise_id"`
		Position   int     `json:"position"`
		Notes      *string `json:"notes,omitempty"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	if body.Position == 0 {
		// Convention: append after the current last exercise.
		existing, err := s.db.GetWorkoutExercisesForWorkout(r.Context(), workoutID)
		if err != nil {
			s.writeError(w, err)
			return
		}
		body.Position = len(existing) + 1
	}
	id, err := s.db.AddExerciseToWorkout(r.Context(), workoutID, body.ExerciseID, body.Position, body.Notes)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (s *Server) handleAddWorkoutSet(w http.ResponseWriter, r *http.Request) {
	workoutExerciseID, ok := idParam(w, r)
	if !ok {
		return
	}
	var body struct {
		Weight   float64 `json:"weight"`
		Reps     int     `json:"reps"`
		RPE      *int    `json:"rpe,omitempty"`
		RestTime *int    `json:"rest_time,omitempty"`
		Notes    *string `json:"notes,omitempty"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	id, err := s.db.AddSetToWorkoutExercise(r.Context(), workoutExerciseID, body.Weight, body.Reps, body.RPE, body.RestTime, body.Notes)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (s *Server) handleDeleteWorkoutExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := s.db.DeleteWorkoutExerciseByID(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteWorkoutSet(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := s.db.DeleteWorkoutSetByID(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLatestWorkoutForExercise(w http.ResponseWriter, r *http.Request) {
	exerciseID, ok := idParam(w, r)
	if !ok {
		return
	}
	workout, err := s.db.GetLatestWorkoutForExercise(r.Context(), exerciseID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if workout == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "exercise has no workout history"})
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleLatestSetsForExercise(w http.ResponseWriter, r *http.Request) {
	exerciseID, ok := idParam(w, r)
	if !ok {
		return
	}
	sets, err := s.db.GetLatestWorkoutSetsForExercise(r.Context(), exerciseID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sets)
}
