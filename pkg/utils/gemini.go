package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	"google.golang.org/api/option"
)

// GeminiClient implements AIClient on Google's Gemini models.
type GeminiClient struct {
	client         *genai.Client
	model          string
	embeddingModel string
}

func NewGeminiClient(apiKey, model, embeddingModel string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	if embeddingModel == "" {
		embeddingModel = "text-embedding-004"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client:         client,
		model:          model,
		embeddingModel: embeddingModel,
	}, nil
}

func (c *GeminiClient) GenerateItineraryJSON(ctx context.Context, in ItineraryPromptInput) (string, error) {
	if in.DayCount < 1 || in.DayCount > MaxItineraryDays {
		return "", fmt.Errorf("bad dayCount %d", in.DayCount)
	}
	return c.generateJSON(ctx, BuildItineraryPrompt(in), ItinerarySchema())
}

func (c *GeminiClient) GenerateRecommendationsJSON(ctx context.Context, in RecommendationPromptInput) (string, error) {
	return c.generateJSON(ctx, BuildRecommendationPrompt(in), RecommendationSchema())
}

func (c *GeminiClient) generateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = schema
	m.SetTemperature(0.3)
	m.SetTopP(0.8)
	m.SetMaxOutputTokens(8192)

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	content := CleanJSONResponse(sb.String())
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("not valid json")
	}
	return content, nil
}

func (c *GeminiClient) EmbeddingModel() string { return "gemini/" + c.embeddingModel }

func (c *GeminiClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	em := c.client.EmbeddingModel(c.embeddingModel)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("gemini embedding: %w", err)
	}
	if res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return pgvector.Vector{}, fmt.Errorf("gemini embedding: empty result")
	}
	return pgvector.NewVector(res.Embedding.Values), nil
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func ItinerarySchema() *genai.Schema {
	activity := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"start_time":     {Type: genai.TypeString, Description: "HH:MM"},
			"end_time":       {Type: genai.TypeString, Description: "HH:MM"},
			"title":          {Type: genai.TypeString},
			"description":    {Type: genai.TypeString},
			"location":       {Type: genai.TypeString},
			"category":       {Type: genai.TypeString},
			"estimated_cost": {Type: genai.TypeNumber},
		},
		Required: []string{"start_time", "end_time", "title"},
	}

	day := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"day":        {Type: genai.TypeInteger},
			"title":      {Type: genai.TypeString},
			"activities": {Type: genai.TypeArray, Items: activity},
		},
		Required: []string{"day", "activities"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {Type: genai.TypeString},
			"days":    {Type: genai.TypeArray, Items: day},
		},
		Required: []string{"days"},
	}
}

func RecommendationSchema() *genai.Schema {
	item := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":               {Type: genai.TypeString},
			"country":            {Type: genai.TypeString},
			"reason":             {Type: genai.TypeString},
			"best_time_to_visit": {Type: genai.TypeString},
			"estimated_budget":   {Type: genai.TypeString},
		},
		Required: []string{"name", "country", "reason"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"recommendations": {Type: genai.TypeArray, Items: item},
		},
		Required: []string{"recommendations"},
	}
}
