package utils

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// OpenAIClient implements AIClient on the OpenAI chat and embedding endpoints.
type OpenAIClient struct {
	client         *openai.Client
	model          string
	embeddingModel string
}

func NewOpenAIClient(apiKey, model, embeddingModel string) *OpenAIClient {
	return NewOpenAIClientWithConfig(openai.DefaultConfig(apiKey), model, embeddingModel)
}

func NewOpenAIClientWithConfig(cfg openai.ClientConfig, model, embeddingModel string) *OpenAIClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	if embeddingModel == "" {
		embeddingModel = string(openai.SmallEmbedding3)
	}
	return &OpenAIClient{
		client:         openai.NewClientWithConfig(cfg),
		model:          model,
		embeddingModel: embeddingModel,
	}
}

func (c *OpenAIClient) GenerateItineraryJSON(ctx context.Context, in ItineraryPromptInput) (string, error) {
	if in.DayCount < 1 || in.DayCount > MaxItineraryDays {
		return "", fmt.Errorf("bad dayCount %d", in.DayCount)
	}
	return c.generateJSON(ctx, BuildItineraryPrompt(in), "itinerary", ItineraryJSONSchema())
}

func (c *OpenAIClient) GenerateRecommendationsJSON(ctx context.Context, in RecommendationPromptInput) (string, error) {
	return c.generateJSON(ctx, BuildRecommendationPrompt(in), "recommendations", RecommendationJSONSchema())
}

func (c *OpenAIClient) generateJSON(ctx context.Context, prompt, name string, schema *jsonschema.Definition) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a travel planner that answers with JSON only."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   name,
				Schema: schema,
			},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content generated by OpenAI")
	}

	content := CleanJSONResponse(resp.Choices[0].Message.Content)
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("not valid json")
	}
	return content, nil
}

// ItineraryJSONSchema mirrors ItinerarySchema for the OpenAI response format.
func ItineraryJSONSchema() *jsonschema.Definition {
	activity := jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"start_time":     {Type: jsonschema.String, Description: "HH:MM"},
			"end_time":       {Type: jsonschema.String, Description: "HH:MM"},
			"title":          {Type: jsonschema.String},
			"description":    {Type: jsonschema.String},
			"location":       {Type: jsonschema.String},
			"category":       {Type: jsonschema.String},
			"estimated_cost": {Type: jsonschema.Number},
		},
		Required: []string{"start_time", "end_time", "title"},
	}

	day := jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"day":        {Type: jsonschema.Integer},
			"title":      {Type: jsonschema.String},
			"activities": {Type: jsonschema.Array, Items: &activity},
		},
		Required: []string{"day", "activities"},
	}

	return &jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"summary": {Type: jsonschema.String},
			"days":    {Type: jsonschema.Array, Items: &day},
		},
		Required: []string{"days"},
	}
}

func RecommendationJSONSchema() *jsonschema.Definition {
	item := jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"name":               {Type: jsonschema.String},
			"country":            {Type: jsonschema.String},
			"reason":             {Type: jsonschema.String},
			"best_time_to_visit": {Type: jsonschema.String},
			"estimated_budget":   {Type: jsonschema.String},
		},
		Required: []string{"name", "country", "reason"},
	}

	return &jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"recommendations": {Type: jsonschema.Array, Items: &item},
		},
		Required: []string{"recommendations"},
	}
}

func (c *OpenAIClient) EmbeddingModel() string { return "openai/" + c.embeddingModel }

func (c *OpenAIClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(c.embeddingModel),
	})
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("openai embedding: %w", err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("openai embedding: empty result")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}

func (c *OpenAIClient) Close() error { return nil }
