package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"staymate/models"

	"github.com/sashabaranov/go-openai"
)

// ChatClient is the slice of the OpenAI client we use; *openai.Client
// satisfies it, tests substitute a stub.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Service struct {
	client ChatClient
}

func NewService(client ChatClient) *Service {
	return &Service{client: client}
}

// Extract asks the model to pull structured requirements out of a free-text
// rental query. Any failure returns an error and the caller must leave the
// active filters untouched.
func (s *Service) Extract(ctx context.Context, query string) (models.SmartCriteria, error) {
	if s.client == nil {
		return models.SmartCriteria{}, errors.New("smart search not configured")
	}

	content := fmt.Sprintf(`The user is searching for a rental with this query: %q. `+
		`Extract the key requirements: property type (PG, Hostel, Apartment, Room), `+
		`maximum budget, and preferred area if mentioned. `+
		`Return a JSON object with optional fields "type", "maxBudget", "area".`, query)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4o,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: content},
		},
		MaxTokens: 200,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		log.Println("[search] smart extraction failed:", err)
		return models.SmartCriteria{}, err
	}
	if len(resp.Choices) == 0 {
		return models.SmartCriteria{}, errors.New("empty completion response")
	}

	var criteria models.SmartCriteria
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &criteria); err != nil {
		log.Println("[search] smart extraction unparsable:", err)
		return models.SmartCriteria{}, err
	}
	return criteria, nil
}
