package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"forja/internal/models"
)

const generateTimeout = 60 * time.Second

const systemPrompt = `You are a strength coach. Reply with a single JSON object, no prose:
{"title": string, "duration_min": int, "intensity": "low"|"moderate"|"high",
 "recovery_notes": string,
 "exercises": [{"name": string, "sets": int, "reps": string,
   "target_muscles": [string], "rest_seconds": int, "notes": string}]}
Respect the recovery check-in: low energy or little sleep means lower volume,
and sore muscle groups must not be primary targets. Avoid repeating the
recent workouts.`

// OpenAIService generates workouts via chat completion.
type OpenAIService struct {
	client *openai.Client
	model  string
}

func NewOpenAIService(apiKey, model string) *OpenAIService {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIService{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (s *OpenAIService) Generate(ctx context.Context, profile *models.Profile, recovery *models.RecoveryCheck, recentTitles []string) (*models.GeneratedWorkout, error) {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildUserPrompt(profile, recovery, recentTitles)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	var workout models.GeneratedWorkout
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &workout); err != nil {
		return nil, fmt.Errorf("failed to parse generated workout: %w", err)
	}
	if workout.Title == "" || len(workout.Exercises) == 0 {
		return nil, fmt.Errorf("generated workout is empty")
	}

	return &workout, nil
}

func buildUserPrompt(profile *models.Profile, recovery *models.RecoveryCheck, recentTitles []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Goal: %s. Experience: %s. Training days per week: %d.\n",
		profile.Goal, profile.Experience, profile.DaysPerWeek)
	if len(profile.Equipment) > 0 {
		fmt.Fprintf(&b, "Available equipment: %s.\n", strings.Join(profile.Equipment, ", "))
	}

	fmt.Fprintf(&b, "Recovery check-in: energy %d/5, sleep %.1f hours.\n",
		recovery.EnergyLevel, recovery.SleepHours)
	if len(recovery.SoreAreas) > 0 {
		fmt.Fprintf(&b, "Sore areas: %s.\n", strings.Join(recovery.SoreAreas, ", "))
	}

	if len(recentTitles) > 0 {
		fmt.Fprintf(&b, "Recent workouts: %s.\n", strings.Join(recentTitles, "; "))
	}

	return b.String()
}
