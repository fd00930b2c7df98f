package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/meltforce/liftstrong/internal/models"
	"github.com/meltforce/liftstrong/internal/storage"
)

// DataSource abstracts the data layer for MCP tools.
type DataSource interface {
	GetOrCreateDefaultUser(ctx context.Context) (*models.User, error)
	FetchAllExercises(ctx context.Context) ([]models.Exercise, error)
	SearchExercises(ctx context.Context, query string) ([]models.Exercise, error)
	FetchExercisesByMuscleGroup(ctx context.Context, muscleGroup string) ([]models.Exercise, error)
	FetchExercisesByEquipment(ctx context.Context, equipment string) ([]models.Exercise, error)
	FetchWorkoutsForUser(ctx context.Context, userID int64) ([]models.Workout, error)
	GetWorkoutDetail(ctx context.Context, id int64) (*storage.WorkoutDetail, error)
	GetLatestWorkoutForExercise(ctx context.Context, exerciseID int64) (*models.Workout, error)
	GetLatestWorkoutSetsForExercise(ctx context.Context, exerciseID int64) ([]models.WorkoutSet, error)
	FetchTemplatesForUser(ctx context.Context, userID int64) ([]models.WorkoutTemplate, error)
	GetExerciseCountForTemplate(ctx context.Context, templateID int64) (int, error)
	CreateWorkoutFromTemplate(ctx context.Context, templateID, userID int64) (int64, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("LiftStrong", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("LiftStrong workout tracker. Browse the exercise catalog, review workout history and last-time performance, and start workouts from saved templates. All data belongs to the local default user."),
	)

	h := &handlers{ds: ds, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolGetWorkoutHistory, Handler: h.getWorkoutHistory},
		server.ServerTool{Tool: toolGetWorkout, Handler: h.getWorkout},
		server.ServerTool{Tool: toolGetLastPerformance, Handler: h.getLastPerformance},
		server.ServerTool{Tool: toolListTemplates, Handler: h.listTemplates},
		server.ServerTool{Tool: toolStartWorkoutFromTemplate, Handler: h.startWorkoutFromTemplate},
	)

	s.AddResources(
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
		server.ServerResource{Resource: resRecentWorkouts, Handler: h.recentWorkouts},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resExerciseCatalog = mcp.NewResource(
	"liftstrong://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("All exercises with muscle groups, equipment, instructions, and difficulty"),
	mcp.WithMIMEType("application/json"),
)

var resRecentWorkouts = mcp.NewResource(
	"liftstrong://recent_workouts",
	"Recent Workouts",
	mcp.WithResourceDescription("The default user's workout history, most recent first"),
	mcp.WithMIMEType("application/json"),
)
