package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meltforce/liftstrong/internal/storage"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db     *storage.DB
	log    *slog.Logger
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, log *slog.Logger) *Server {
	s := &Server{
		db:     db,
		log:    log,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		// Profile
		r.Get("/user", s.handleGetDefaultUser)
		r.Put("/user/settings", s.handleUpdateUserSettings)
		r.Get("/users/{id}", s.handleGetUser)

		// Exercise catalog
		r.Get("/exercises", s.handleListExercises)
		r.Post("/exercises", s.handleCreateExercise)
		r.Get("/exercises/{id}", s.handleGetExercise)
		r.Put("/exercises/{id}", s.handleUpdateExercise)
		r.Delete("/exercises/{id}", s.handleDeleteExercise)
		r.Get("/exercises/{id}/latest-workout", s.handleLatestWorkoutForExercise)
		r.Get("/exercises/{id}/latest-sets", s.handleLatestSetsForExercise)

		// Workout sessions
		r.Post("/workouts", s.handleCreateWorkout)
		r.Get("/workouts", s.handleListWorkouts)
		r.Get("/workouts/{id}", s.handleGetWorkout)
		r.Delete("/workouts/{id}", s.handleDeleteWorkout)
		r.Post("/workouts/{id}/complete", s.handleCompleteWorkout)
		r.Post("/workouts/{id}/exercises", s.handleAddWorkoutExercise)
		r.Post("/workout-exercises/{id}/sets", s.handleAddWorkoutSet)
		r.Delete("/workout-exercises/{id}", s.handleDeleteWorkoutExercise)
		r.Delete("/workout-sets/{id}", s.handleDeleteWorkoutSet)

		// Templates
		r.Post("/templates", s.handleCreateTemplate)
		r.Get("/templates", s.handleListTemplates)
		r.Get("/templates/{id}", s.handleGetTemplate)
		r.Put("/templates/{id}", s.handleUpdateTemplate)
		r.Delete("/templates/{id}", s.handleDeleteTemplate)
		r.Post("/templates/{id}/exercises", s.handleAddTemplateExercise)
		r.Post("/template-exercises/{id}/sets", s.handleAddTemplateSet)
		r.Delete("/template-exercises/{id}", s.handleDeleteTemplateExercise)
		r.Delete("/template-sets/{id}", s.handleDeleteTemplateSet)
		r.Post("/templates/{id}/instantiate", s.handleInstantiateTemplate)
	})
}
