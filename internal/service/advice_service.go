package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fittrack/internal/domain"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

var ErrAdviceUnavailable = errors.New("advice model returned no content")

const geminiModelName = "gemini-1.5-flash"

// AdviceService forwards user context to a hosted generative-language
// model and returns the raw reply text. It never reads or writes the
// record store directly; callers pass in whatever context they want
// the model to see.
type AdviceService interface {
	// SuggestWorkout asks the model for a next-workout suggestion based
	// on the user's goal and recent sessions.
	SuggestWorkout(ctx context.Context, profile *domain.Profile, recent []domain.Workout) (string, error)
	// Chat forwards a free-text question with a short coaching preamble.
	Chat(ctx context.Context, message string) (string, error)
}

// --- Gemini provider ---

type geminiAdviceService struct {
	client *genai.Client
}

// NewGeminiAdviceService creates an AdviceService backed by Gemini.
func NewGeminiAdviceService(ctx context.Context, apiKey string) (AdviceService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiAdviceService{client: client}, nil
}

func (s *geminiAdviceService) SuggestWorkout(ctx context.Context, profile *domain.Profile, recent []domain.Workout) (string, error) {
	return s.generate(ctx, buildSuggestionPrompt(profile, recent))
}

func (s *geminiAdviceService) Chat(ctx context.Context, message string) (string, error) {
	return s.generate(ctx, buildChatPrompt(message))
}

func (s *geminiAdviceService) generate(ctx context.Context, prompt string) (string, error) {
	model := s.client.GenerativeModel(geminiModelName)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrAdviceUnavailable
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", ErrAdviceUnavailable
	}
	return strings.TrimSpace(string(text)), nil
}

// --- OpenAI provider ---

type openAIAdviceService struct {
	client *openai.Client
}

// NewOpenAIAdviceService creates an AdviceService backed by OpenAI chat
// completions.
func NewOpenAIAdviceService(apiKey string) AdviceService {
	return &openAIAdviceService{client: openai.NewClient(apiKey)}
}

func (s *openAIAdviceService) SuggestWorkout(ctx context.Context, profile *domain.Profile, recent []domain.Workout) (string, error) {
	return s.complete(ctx, buildSuggestionPrompt(profile, recent))
}

func (s *openAIAdviceService) Chat(ctx context.Context, message string) (string, error) {
	return s.complete(ctx, buildChatPrompt(message))
}

func (s *openAIAdviceService) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrAdviceUnavailable
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// --- Prompt assembly ---

func buildSuggestionPrompt(profile *domain.Profile, recent []domain.Workout) string {
	var b strings.Builder
	b.WriteString("You are a personal fitness coach. Suggest the next workout for this user.\n\n")
	if profile != nil {
		fmt.Fprintf(&b, "Goal: %s\nWeight: %.1f kg\nHeight: %.1f cm\n", profile.Goal, profile.Weight, profile.Height)
	}
	if len(recent) > 0 {
		b.WriteString("\nRecent workouts (most recent first):\n")
		for _, w := range recent {
			fmt.Fprintf(&b, "- %s on %s, %d min, %d kcal\n", w.Name, w.Date, w.Duration, w.Calories)
		}
	} else {
		b.WriteString("\nNo workouts logged yet.\n")
	}
	b.WriteString("\nAnswer with a short, concrete workout plan for today. Keep it under 120 words.")
	return b.String()
}

func buildChatPrompt(message string) string {
	return "You are a friendly personal fitness coach. Answer the user's question " +
		"briefly and practically, in plain text.\n\nUser: " + message
}
