package storage

import "github.com/meltforce/liftstrong/internal/models"

// defaultExercises is the built-in catalog, spanning chest, back, legs,
// shoulders, and arms. All entries are non-custom.
var defaultExercises = []models.Exercise{
	// Chest
	{
		Name:         "Barbell Bench Press",
		MuscleGroups: "Chest, Triceps, Shoulders",
		Equipment:    "Barbell, Bench",
		Instructions: "Lie on a flat bench with feet on the ground. Grip the barbell with hands slightly wider than shoulder-width. Lower the bar to your chest, then press it back up to the starting position.",
		Difficulty:   models.DifficultyIntermediate,
	},
	{
		Name:         "Dumbbell Bench Press",
		MuscleGroups: "Chest, Triceps, Shoulders",
		Equipment:    "Dumbbells, Bench",
		Instructions: "Lie on a flat bench with feet on the ground. Hold a dumbbell in each hand at chest level. Press the dumbbells up until your arms are extended, then lower them back to the starting position.",
		Difficulty:   models.DifficultyBeginner,
	},
	{
		Name:         "Push-Up",
		MuscleGroups: "Chest, Triceps, Shoulders, Core",
		Equipment:    "None",
		Instructions: "Start in a plank position with hands slightly wider than shoulder-width. Lower your body until your chest nearly touches the floor, then push back up to the starting position.",
		Difficulty:   models.DifficultyBeginner,
	},

	// Back
	{
		Name:         "Pull-Up",
		MuscleGroups: "Back, Biceps",
		Equipment:    "Pull-Up Bar",
		Instructions: "Hang from a pull-up bar with hands slightly wider than shoulder-width. Pull your body up until your chin is over the bar, then lower back to the starting position.",
		Difficulty:   models.DifficultyIntermediate,
	},
	{
		Name:         "Barbell Row",
		MuscleGroups: "Back, Biceps",
		Equipment:    "Barbell",
		Instructions: "Bend at the hips with a slight bend in the knees. Grip the barbell with hands shoulder-width apart. Pull the barbell to your lower chest, then lower it back to the starting position.",
		Difficulty:   models.DifficultyIntermediate,
	},
	{
		Name:         "Lat Pulldown",
		MuscleGroups: "Back, Biceps",
		Equipment:    "Cable Machine",
		Instructions: "Sit at a lat pulldown machine with knees secured under the pads. Grip the bar with hands wider than shoulder-width. Pull the bar down to your upper chest, then slowly release it back to the starting position.",
		Difficulty:   models.DifficultyBeginner,
	},

	// Legs
	{
		Name:         "Barbell Squat",
		MuscleGroups: "Quadriceps, Hamstrings, Glutes",
		Equipment:    "Barbell, Squat Rack",
		Instructions: "Place the barbell on your upper back. Stand with feet shoulder-width apart. Bend at the knees and hips to lower your body, then push through your heels to return to the starting position.",
		Difficulty:   models.DifficultyIntermediate,
	},
	{
		Name:         "Deadlift",
		MuscleGroups: "Hamstrings, Glutes, Lower Back",
		Equipment:    "Barbell",
		Instructions: "Stand with feet hip-width apart and the barbell over your mid-foot. Bend at the hips and knees to grip the barbell. Lift the barbell by extending your hips and knees, then lower it back to the ground.",
		Difficulty:   models.DifficultyAdvanced,
	},
	{
		Name:         "Leg Press",
		MuscleGroups: "Quadriceps, Hamstrings, Glutes",
		Equipment:    "Leg Press Machine",
		Instructions: "Sit in the leg press machine with feet shoulder-width apart on the platform. Release the safety and lower the platform by bending your knees, then push through your heels to extend your legs.",
		Difficulty:   models.DifficultyBeginner,
	},

	// Shoulders
	{
		Name:         "Overhead Press",
		MuscleGroups: "Shoulders, Triceps",
		Equipment:    "Barbell",
		Instructions: "Stand with feet shoulder-width apart. Hold the barbell at shoulder height with hands slightly wider than shoulder-width. Press the barbell overhead, then lower it back to the starting position.",
		Difficulty:   models.DifficultyIntermediate,
	},
	{
		Name:         "Lateral Raise",
		MuscleGroups: "Shoulders",
		Equipment:    "Dumbbells",
		Instructions: "Stand with feet shoulder-width apart. Hold a dumbbell in each hand at your sides. Raise the dumbbells out to the sides until they reach shoulder height, then lower them back to the starting position.",
		Difficulty:   models.DifficultyBeginner,
	},
	{
		Name:         "Face Pull",
		MuscleGroups: "Shoulders, Upper Back",
		Equipment:    "Cable Machine",
		Instructions: "Set a rope attachment at upper chest height. Grip the rope with both hands and pull it toward your face, flaring your elbows out, then slowly return to the starting position.",
		Difficulty:   models.DifficultyBeginner,
	},

	// Arms
	{
		Name:         "Barbell Curl",
		MuscleGroups: "Biceps",
		Equipment:    "Barbell",
		Instructions: "Stand with feet shoulder-width apart. Hold the barbell with hands shoulder-width apart, palms facing forward. Curl the barbell up to your shoulders, then lower it back to the starting position.",
		Difficulty:   models.DifficultyBeginner,
	},
	{
		Name:         "Tricep Pushdown",
		MuscleGroups: "Triceps",
		Equipment:    "Cable Machine",
		Instructions: "Stand facing a cable machine with a rope attachment at head height. Grip the rope with both hands, palms facing each other. Push the rope down until your arms are fully extended, then slowly return to the starting position.",
		Difficulty:   models.DifficultyBeginner,
	},
}
