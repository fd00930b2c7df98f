package server

import (
	"net/http"

	"github.com/meltforce/liftstrong/internal/models"
)

func (s *Server) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID      int64   `json:"user_id"`
		Name        string  `json:"name"`
		Description *string `json:"description,omitempty"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	id, err := s.db.CreateWorkoutTemplate(r.Context(), body.UserID, body.Name, body.Description)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	userID, err := int64Query(r, "user_id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user_id parameter required"})
		return
	}
	templates, err := s.db.FetchTemplatesForUser(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, templates)
}

// handleGetTemplate serves a template with its exercise prescriptions and
// their sets, plus the exercise count.
func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	t, err := s.db.GetWorkoutTemplateByID(ctx, id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if t == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "template not found"})
		return
	}

	exercises, err := s.db.GetTemplateExercisesForTemplate(ctx, id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	type exerciseDetail struct {
		models.TemplateExercise
		Sets []models.TemplateSet `json:"sets"`
	}
	details := make([]exerciseDetail, 0, len(exercises))
	for _, te := range exercises {
		sets, err := s.db.GetTemplateSetsForTemplateExercise(ctx, te.ID)
		if err != nil {
			s.writeError(w, err)
			return
		}
		details = append(details, exerciseDetail{TemplateExercise: te, Sets: sets})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"template":       t,
		"exercises":      details,
		"exercise_count": len(details),
	})
}

func (s *Server) handleUpdateTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var t models.WorkoutTemplate
	if !decodeJSON(w, r, &t) {
		return
	}
	t.ID = id
	if err := s.db.UpdateWorkoutTemplate(r.Context(), t); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := s.db.DeleteWorkoutTemplateByID(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddTemplateExercise(w http.ResponseWriter, r *http.Request) {
	templateID, ok := idParam(w, r)
	if !ok {
		return
	}
	var body struct {
		ExerciseID int64 `json:"exercise_id"`
		Position   int   `json:"position"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	if body.Position == 0 {
		count, err := s.db.GetExerciseCountForTemplate(r.Context(), templateID)
		if err != nil {
			s.writeError(w, err)
			return
		}
		body.Position = count + 1
	}
	id, err := s.db.AddExerciseToTemplate(r.Context(), templateID, body.ExerciseID, body.Position)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (s *Server) handleAddTemplateSet(w http.ResponseWriter, r *http.Request) {
	templateExerciseID, ok := idParam(w, r)
	if !ok {
		return
	}
	var body struct {
		Weight   *float64 `json:"weight,omitempty"`
		Reps     int      `json:"reps"`
		RestTime *int     `json:"rest_time,omitempty"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	id, err := s.db.AddSetToTemplateExercise(r.Context(), templateExerciseID, body.Weight, body.Reps, body.RestTime)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (s *Server) handleDeleteTemplateExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := s.db.DeleteTemplateExerciseByID(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteTemplateSet(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := s.db.DeleteTemplateSetByID(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleInstantiateTemplate creates a live workout from the template and
// returns the new workout's full detail.
func (s *Server) handleInstantiateTemplate(w http.ResponseWriter, r *http.Request) {
	templateID, ok := idParam(w, r)
	if !ok {
		return
	}
	var body struct {
		UserID int64 `json:"user_id"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	workoutID, err := s.db.CreateWorkoutFromTemplate(r.Context(), templateID, body.UserID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	detail, err := s.db.GetWorkoutDetail(r.Context(), workoutID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, detail)
}
