package generator

import "forja/internal/models"

// StaticFallback serves a canned workout keyed by goal, rotating through
// the goal's list by how many workouts were already completed this week so
// back-to-back fallback days do not repeat.
type StaticFallback struct{}

func (StaticFallback) Default(goal string, completedThisWeek int) *models.GeneratedWorkout {
	workouts, ok := fallbackWorkouts[goal]
	if !ok {
		workouts = fallbackWorkouts["general"]
	}
	if completedThisWeek < 0 {
		completedThisWeek = 0
	}

	w := workouts[completedThisWeek%len(workouts)]
	return &w
}

var fallbackWorkouts = map[string][]models.GeneratedWorkout{
	"strength": {
		{
			Title:       "Heavy Lower",
			DurationMin: 60,
			Intensity:   "high",
			Exercises: []models.ExerciseSpec{
				{Name: "Back Squat", TargetSets: 5, TargetReps: "5", TargetMuscles: []string{"quads", "glutes"}, RestSeconds: 180},
				{Name: "Romanian Deadlift", TargetSets: 3, TargetReps: "8", TargetMuscles: []string{"hamstrings", "glutes"}, RestSeconds: 150},
				{Name: "Leg Press", TargetSets: 3, TargetReps: "10", TargetMuscles: []string{"quads"}, RestSeconds: 120},
				{Name: "Standing Calf Raise", TargetSets: 4, TargetReps: "12", TargetMuscles: []string{"calves"}, RestSeconds: 60},
			},
		},
		{
			Title:       "Heavy Upper",
			DurationMin: 60,
			Intensity:   "high",
			Exercises: []models.ExerciseSpec{
				{Name: "Bench Press", TargetSets: 5, TargetReps: "5", TargetMuscles: []string{"chest", "triceps"}, RestSeconds: 180},
				{Name: "Barbell Row", TargetSets: 4, TargetReps: "6", TargetMuscles: []string{"back", "biceps"}, RestSeconds: 150},
				{Name: "Overhead Press", TargetSets: 3, TargetReps: "8", TargetMuscles: []string{"shoulders", "triceps"}, RestSeconds: 150},
				{Name: "Weighted Pull-up", TargetSets: 3, TargetReps: "6", TargetMuscles: []string{"back", "biceps"}, RestSeconds: 150},
			},
		},
	},
	"hypertrophy": {
		{
			Title:       "Push Volume",
			DurationMin: 55,
			Intensity:   "moderate",
			Exercises: []models.ExerciseSpec{
				{Name: "Incline Dumbbell Press", TargetSets: 4, TargetReps: "8-12", TargetMuscles: []string{"chest", "shoulders"}, RestSeconds: 90},
				{Name: "Machine Chest Fly", TargetSets: 3, TargetReps: "12-15", TargetMuscles: []string{"chest"}, RestSeconds: 75},
				{Name: "Lateral Raise", TargetSets: 4, TargetReps: "12-15", TargetMuscles: []string{"shoulders"}, RestSeconds: 60},
				{Name: "Cable Triceps Pushdown", TargetSets: 3, TargetReps: "10-12", TargetMuscles: []string{"triceps"}, RestSeconds: 60},
				{Name: "Overhead Triceps Extension", TargetSets: 3, TargetReps: "12", TargetMuscles: []string{"triceps"}, RestSeconds: 60},
			},
		},
		{
			Title:       "Pull Volume",
			DurationMin: 55,
			Intensity:   "moderate",
			Exercises: []models.ExerciseSpec{
				{Name: "Lat Pulldown", TargetSets: 4, TargetReps: "10-12", TargetMuscles: []string{"back"}, RestSeconds: 90},
				{Name: "Seated Cable Row", TargetSets: 4, TargetReps: "10-12", TargetMuscles: []string{"back"}, RestSeconds: 90},
				{Name: "Face Pull", TargetSets: 3, TargetReps: "15", TargetMuscles: []string{"shoulders", "back"}, RestSeconds: 60},
				{Name: "Incline Dumbbell Curl", TargetSets: 3, TargetReps: "10-12", TargetMuscles: []string{"biceps"}, RestSeconds: 60},
				{Name: "Hammer Curl", TargetSets: 3, TargetReps: "12", TargetMuscles: []string{"biceps", "forearms"}, RestSeconds: 60},
			},
		},
		{
			Title:       "Leg Volume",
			DurationMin: 60,
			Intensity:   "moderate",
			Exercises: []models.ExerciseSpec{
				{Name: "Hack Squat", TargetSets: 4, TargetReps: "8-12", TargetMuscles: []string{"quads", "glutes"}, RestSeconds: 120},
				{Name: "Seated Leg Curl", TargetSets: 4, TargetReps: "10-12", TargetMuscles: []string{"hamstrings"}, RestSeconds: 90},
				{Name: "Walking Lunge", TargetSets: 3, TargetReps: "12", TargetMuscles: []string{"quads", "glutes"}, RestSeconds: 90},
				{Name: "Leg Extension", TargetSets: 3, TargetReps: "15", TargetMuscles: []string{"quads"}, RestSeconds: 60},
				{Name: "Seated Calf Raise", TargetSets: 4, TargetReps: "15", TargetMuscles: []string{"calves"}, RestSeconds: 45},
			},
		},
	},
	"endurance": {
		{
			Title:       "Full Body Circuit",
			DurationMin: 45,
			Intensity:   "moderate",
			Exercises: []models.ExerciseSpec{
				{Name: "Goblet Squat", TargetSets: 3, TargetReps: "15", TargetMuscles: []string{"quads", "glutes"}, RestSeconds: 60},
				{Name: "Push-up", TargetSets: 3, TargetReps: "15-20", TargetMuscles: []string{"chest", "triceps"}, RestSeconds: 60},
				{Name: "Inverted Row", TargetSets: 3, TargetReps: "12-15", TargetMuscles: []string{"back"}, RestSeconds: 60},
				{Name: "Kettlebell Swing", TargetSets: 4, TargetReps: "20", TargetMuscles: []string{"glutes", "hamstrings"}, RestSeconds: 45},
				{Name: "Plank", TargetSets: 3, TargetReps: "45s", TargetMuscles: []string{"core"}, RestSeconds: 45},
			},
		},
	},
	"general": {
		{
			Title:       "Full Body A",
			DurationMin: 50,
			Intensity:   "moderate",
			Exercises: []models.ExerciseSpec{
				{Name: "Back Squat", TargetSets: 3, TargetReps: "8", TargetMuscles: []string{"quads", "glutes"}, RestSeconds: 120},
				{Name: "Bench Press", TargetSets: 3, TargetReps: "8", TargetMuscles: []string{"chest", "triceps"}, RestSeconds: 120},
				{Name: "Barbell Row", TargetSets: 3, TargetReps: "10", TargetMuscles: []string{"back", "biceps"}, RestSeconds: 90},
				{Name: "Dumbbell Shoulder Press", TargetSets: 3, TargetReps: "10", TargetMuscles: []string{"shoulders"}, RestSeconds: 90},
				{Name: "Plank", TargetSets: 3, TargetReps: "30s", TargetMuscles: []string{"core"}, RestSeconds: 60},
			},
		},
		{
			Title:       "Full Body B",
			DurationMin: 50,
			Intensity:   "moderate",
			Exercises: []models.ExerciseSpec{
				{Name: "Deadlift", TargetSets: 3, TargetReps: "6", TargetMuscles: []string{"hamstrings", "back", "glutes"}, RestSeconds: 150},
				{Name: "Incline Dumbbell Press", TargetSets: 3, TargetReps: "10", TargetMuscles: []string{"chest", "shoulders"}, RestSeconds: 90},
				{Name: "Lat Pulldown", TargetSets: 3, TargetReps: "10", TargetMuscles: []string{"back"}, RestSeconds: 90},
				{Name: "Dumbbell Lunge", TargetSets: 3, TargetReps: "10", TargetMuscles: []string{"quads", "glutes"}, RestSeconds: 90},
				{Name: "Hanging Knee Raise", TargetSets: 3, TargetReps: "12", TargetMuscles: []string{"core"}, RestSeconds: 60},
			},
		},
	},
}
