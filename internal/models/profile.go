package models

type Profile struct {
	Name        string   `json:"name"`
	Goal        string   `json:"goal"`       // strength, hypertrophy, endurance, general.
	Experience  string   `json:"experience"` // beginner, intermediate, advanced.
	DaysPerWeek int      `json:"days_per_week"`
	Equipment   []string `json:"equipment"`
}

// DefaultProfile is what we assume about a user who never filled anything
// in. Every caller that needs a profile and finds none goes through here.
func DefaultProfile() *Profile {
	return &Profile{
		Goal:        "general",
		Experience:  "beginner",
		DaysPerWeek: 3,
		Equipment:   []string{"barbell", "dumbbell", "bodyweight"},
	}
}
