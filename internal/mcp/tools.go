package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/meltforce/liftstrong/internal/models"
)

// --- Tool definitions ---

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("Browse the exercise catalog. Optional filters narrow by name, muscle group, or equipment (substring match)."),
	mcp.WithString("query", mcp.Description("Filter by exercise name (partial match, e.g. 'bench')")),
	mcp.WithString("muscle_group", mcp.Description("Filter by muscle group (e.g. 'Chest', 'Hamstrings')")),
	mcp.WithString("equipment", mcp.Description("Filter by equipment (e.g. 'Barbell', 'Cable Machine')")),
)

var toolGetWorkoutHistory = mcp.NewTool("get_workout_history",
	mcp.WithDescription("List the default user's workouts, most recent first. Each entry has name, date, duration in minutes, and notes."),
)

var toolGetWorkout = mcp.NewTool("get_workout",
	mcp.WithDescription("Get one workout with its exercises in order and every recorded set (weight, reps, RPE, rest time)."),
	mcp.WithNumber("workout_id", mcp.Required(), mcp.Description("Workout id")),
)

var toolGetLastPerformance = mcp.NewTool("get_last_performance",
	mcp.WithDescription("Show how an exercise was last performed: the most recent workout containing it and up to 10 of the most recent sets, for progressive-overload comparison."),
	mcp.WithNumber("exercise_id", mcp.Required(), mcp.Description("Exercise id from the catalog")),
)

var toolListTemplates = mcp.NewTool("list_templates",
	mcp.WithDescription("List the default user's workout templates with their exercise counts."),
)

var toolStartWorkoutFromTemplate = mcp.NewTool("start_workout_from_template",
	mcp.WithDescription("Instantiate a template into a new live workout for the default user. Copies the exercise order and expands every set prescription; unprescribed weights start at 0."),
	mcp.WithNumber("template_id", mcp.Required(), mcp.Description("Template id")),
)

// --- Tool handlers ---

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var (
		exercises []models.Exercise
		err       error
	)
	switch {
	case req.GetString("query", "") != "":
		exercises, err = h.ds.SearchExercises(ctx, req.GetString("query", ""))
	case req.GetString("muscle_group", "") != "":
		exercises, err = h.ds.FetchExercisesByMuscleGroup(ctx, req.GetString("muscle_group", ""))
	case req.GetString("equipment", "") != "":
		exercises, err = h.ds.FetchExercisesByEquipment(ctx, req.GetString("equipment", ""))
	default:
		exercises, err = h.ds.FetchAllExercises(ctx)
	}
	if err != nil {
		h.log.Error("mcp list_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(exercises)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	user, err := h.ds.GetOrCreateDefaultUser(ctx)
	if err != nil {
		h.log.Error("mcp get_workout_history", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	workouts, err := h.ds.FetchWorkoutsForUser(ctx, user.ID)
	if err != nil {
		h.log.Error("mcp get_workout_history", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(workouts)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("workout_id")
	if err != nil {
		return mcp.NewToolResultError("workout_id parameter is required"), nil
	}

	detail, err := h.ds.GetWorkoutDetail(ctx, int64(id))
	if err != nil {
		h.log.Error("mcp get_workout", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(detail)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getLastPerformance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("exercise_id")
	if err != nil {
		return mcp.NewToolResultError("exercise_id parameter is required"), nil
	}
	exerciseID := int64(id)

	workout, err := h.ds.GetLatestWorkoutForExercise(ctx, exerciseID)
	if err != nil {
		h.log.Error("mcp get_last_performance", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if workout == nil {
		return mcp.NewToolResultText("No workout history for this exercise yet."), nil
	}

	sets, err := h.ds.GetLatestWorkoutSetsForExercise(ctx, exerciseID)
	if err != nil {
		h.log.Error("mcp get_last_performance", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"latest_workout": workout,
		"latest_sets":    sets,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listTemplates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	user, err := h.ds.GetOrCreateDefaultUser(ctx)
	if err != nil {
		h.log.Error("mcp list_templates", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	templates, err := h.ds.FetchTemplatesForUser(ctx, user.ID)
	if err != nil {
		h.log.Error("mcp list_templates", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	type templateSummary struct {
		models.WorkoutTemplate
		ExerciseCount int `json:"exercise_count"`
	}
	summaries := make([]templateSummary, 0, len(templates))
	for _, t := range templates {
		count, err := h.ds.GetExerciseCountForTemplate(ctx, t.ID)
		if err != nil {
			h.log.Error("mcp list_templates", "error", err)
			return mcp.NewToolResultError("query failed: " + err.Error()), nil
		}
		summaries = append(summaries, templateSummary{WorkoutTemplate: t, ExerciseCount: count})
	}

	result, err := mcp.NewToolResultJSON(summaries)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) startWorkoutFromTemplate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("template_id")
	if err != nil {
		return mcp.NewToolResultError("template_id parameter is required"), nil
	}

	user, err := h.ds.GetOrCreateDefaultUser(ctx)
	if err != nil {
		h.log.Error("mcp start_workout_from_template", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	workoutID, err := h.ds.CreateWorkoutFromTemplate(ctx, int64(id), user.ID)
	if err != nil {
		h.log.Error("mcp start_workout_from_template", "error", err)
		return mcp.NewToolResultError("instantiation failed: " + err.Error()), nil
	}

	detail, err := h.ds.GetWorkoutDetail(ctx, workoutID)
	if err != nil {
		h.log.Error("mcp start_workout_from_template", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(detail)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
