package utils

import (
	"fmt"
	"strings"
)

const (
	MaxItineraryDays      = 14
	MaxRecommendationSize = 10
)

type ItineraryPromptInput struct {
	Destination string
	StartDate   string
	DayCount    int
	Travelers   int
	Budget      float64
	Currency    string
	Interests   []string
	Notes       string
}

type RecommendationPromptInput struct {
	Interests   []string
	Budget      string
	TravelMonth string
	Travelers   int
	Origin      string
	Count       int
}

const itineraryShape = `{
  "summary": "string",
  "days": [
    {
      "day": 1,
      "title": "string",
      "activities": [
        {"start_time":"09:00","end_time":"11:00","title":"string","description":"string","location":"string","category":"sightseeing|food|transport|activity|rest","estimated_cost":0}
      ]
    }
  ]
}`

const recommendationShape = `{
  "recommendations": [
    {"name":"string","country":"string","reason":"string","best_time_to_visit":"string","estimated_budget":"string"}
  ]
}`

func BuildItineraryPrompt(in ItineraryPromptInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are planning a %d-day trip to %s starting %s for %d traveler(s).\n",
		in.DayCount, in.Destination, in.StartDate, in.Travelers)
	if in.Budget > 0 {
		fmt.Fprintf(&b, "Total budget: %.2f %s. Keep estimated costs inside it.\n", in.Budget, in.Currency)
	}
	if len(in.Interests) > 0 {
		fmt.Fprintf(&b, "Interests: %s.\n", strings.Join(in.Interests, ", "))
	}
	if strings.TrimSpace(in.Notes) != "" {
		fmt.Fprintf(&b, "Traveler notes: %s\n", strings.TrimSpace(in.Notes))
	}

	fmt.Fprintf(&b, `
Return JSON only that matches this shape (keys exactly):
%s

Hard constraints:
- Exactly %d entries in "days", day = 1..%d with no gaps.
- 2-6 activities per day, times formatted HH:MM, start_time < end_time, no overlaps.
- estimated_cost is a number in %s per group, 0 when free.
No markdown, no comments.
`, itineraryShape, in.DayCount, in.DayCount, in.Currency)

	return b.String()
}

func BuildRecommendationPrompt(in RecommendationPromptInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Suggest %d travel destinations.\n", in.Count)
	if len(in.Interests) > 0 {
		fmt.Fprintf(&b, "Traveler interests: %s.\n", strings.Join(in.Interests, ", "))
	}
	if in.Budget != "" {
		fmt.Fprintf(&b, "Budget: %s.\n", in.Budget)
	}
	if in.TravelMonth != "" {
		fmt.Fprintf(&b, "Travel month: %s.\n", in.TravelMonth)
	}
	if in.Travelers > 0 {
		fmt.Fprintf(&b, "Group size: %d.\n", in.Travelers)
	}
	if in.Origin != "" {
		fmt.Fprintf(&b, "Departing from: %s.\n", in.Origin)
	}

	fmt.Fprintf(&b, "\nReturn JSON only that matches this shape:\n%s\nExactly %d recommendations.", recommendationShape, in.Count)
	return b.String()
}

// CleanJSONResponse strips markdown fences and any prose around the first JSON object.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	if start == -1 {
		return response
	}
	if end := findMatchingBrace(response, start); end != -1 {
		return response[start : end+1]
	}
	return response[start:]
}

func findMatchingBrace(s string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
