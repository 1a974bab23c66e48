package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const promptVersion = "v1"
const systemPrompt = `You are a financial news analyst. Summarize the article and score its sentiment toward the companies it covers.

Rules:
1. Summary must be under 100 words
2. Keep all facts: numbers, names, dates, percentages
3. Sentiment score is a number between -1.0 (very negative) and 1.0 (very positive); use 0.0 for neutral coverage

Output as JSON only, no other text:
{
  "summary": "summary text",
  "sentiment_score": 0.0
}`

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client:    &client,
		model:     openai.ChatModelGPT4oMini,
		modelName: "gpt-4o-mini",
	}
}

func (c *OpenAIClient) Summarize(input SummarizeInput) (*SummarizeResult, error) {
	userPrompt := fmt.Sprintf("Headline: %s\n\n%s", input.Headline, input.Content)

	resp, err := c.client.Chat.Completions.New(context.Background(), openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from openai")
	}

	return parseSummarizeResponse(resp.Choices[0].Message.Content, c.modelName)
}

func parseSummarizeResponse(content, modelName string) (*SummarizeResult, error) {
	content = cleanJSONResponse(content)

	var parsed struct {
		Summary        string  `json:"summary"`
		SentimentScore float64 `json:"sentiment_score"`
	}

	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w, content: %s", err, content)
	}

	if parsed.SentimentScore > 1.0 {
		parsed.SentimentScore = 1.0
	}
	if parsed.SentimentScore < -1.0 {
		parsed.SentimentScore = -1.0
	}

	return &SummarizeResult{
		Summary:        parsed.Summary,
		SentimentScore: parsed.SentimentScore,
		PromptVersion:  promptVersion,
		ModelUsed:      modelName,
	}, nil
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
