package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"resty.dev/v3"

	"github.com/lwhite702/klutr/internal/inference"
)

// Per-call timeouts. Classification is cheap and latency-sensitive,
// embeddings are mid-weight, summarization produces the longest completions.
const (
	classifyTimeout  = 10 * time.Second
	embedTimeout     = 15 * time.Second
	summarizeTimeout = 30 * time.Second
)

type Client struct {
	httpClient     *resty.Client
	model          string
	embeddingModel string
}

func NewClient(apiKey, model, embeddingModel string) *Client {
	client := resty.New()
	client.SetBaseURL("https://api.openai.com/v1")
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:     client,
		model:          model,
		embeddingModel: embeddingModel,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the chat model name configured for this client
func (client *Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type EmbeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type EmbeddingResponse struct {
	Data  []EmbeddingData `json:"data"`
	Usage Usage           `json:"usage"`
}

type EmbeddingData struct {
	Index     int       `json:"index"`
	Embedding []float64 `json:"embedding"`
}

// Classify implements the inference.Client interface
func (client *Client) Classify(
	ctx context.Context,
	params inference.ClassifyRequest,
) (inference.ClassifyResponse, error) {
	systemPrompt := `You are a note classifier for a personal knowledge capture app.

Given the content of a single note, return ONLY a JSON object:
{"type": "<type>", "tags": ["tag1", "tag2"]}

The type MUST be exactly one of:
idea, task, contact, link, image, voice, misc, nope

Guidance:
- "idea": a thought, plan sketch, or creative fragment
- "task": something actionable the user intends to do
- "contact": a person's name with contact details
- "link": primarily a URL with little other text
- "image": a description or OCR transcript of a picture
- "voice": a transcript of spoken audio
- "misc": readable content that fits no other type
- "nope": spam, gibberish, or content with no value

Tags: 1 to 5 short lowercase tags describing the topic (e.g. "groceries",
"work", "travel"). Use hyphenated words, no spaces.

Return ONLY the JSON, no other text.`

	requestBody := ChatCompletionRequest{
		Model:       client.model,
		Temperature: 0.1,
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: params.Content},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, classifyTimeout)
	defer cancel()

	content, err := client.chatCompletion(ctx, requestBody)
	if err != nil {
		return inference.ClassifyResponse{}, err
	}

	var decoded inference.ClassifyResponse
	if err := json.Unmarshal([]byte(stripCodeFences(content)), &decoded); err != nil {
		return inference.ClassifyResponse{}, fmt.Errorf("json.Unmarshal(%s) > %w", content, err)
	}
	return decoded, nil
}

// Embed implements the inference.Client interface
func (client *Client) Embed(
	ctx context.Context,
	params inference.EmbedRequest,
) (inference.EmbedResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, embedTimeout)
	defer cancel()

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(EmbeddingRequest{
			Model: client.embeddingModel,
			Input: []string{params.Content},
		}).
		SetResult(&EmbeddingResponse{}).
		Post("/embeddings")
	if err != nil {
		return inference.EmbedResponse{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return inference.EmbedResponse{}, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*EmbeddingResponse)
	if responseBody == nil || len(responseBody.Data) == 0 {
		return inference.EmbedResponse{}, fmt.Errorf("empty embedding response: %s", response.String())
	}
	if len(responseBody.Data[0].Embedding) == 0 {
		return inference.EmbedResponse{}, fmt.Errorf("empty embedding vector: %s", response.String())
	}
	return inference.EmbedResponse{Vector: responseBody.Data[0].Embedding}, nil
}

// Summarize implements the inference.Client interface
func (client *Client) Summarize(
	ctx context.Context,
	params inference.SummarizeRequest,
) (inference.SummarizeResponse, error) {
	systemPrompt := `You summarize groups of related personal notes.

Given excerpts of notes that belong to the same thematic group, write ONE
short sentence (at most 20 words) describing what the group is about.
Return ONLY the sentence, no quotes, no markdown.`

	requestBody := ChatCompletionRequest{
		Model:       client.model,
		Temperature: 0.3,
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: params.Digest},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, summarizeTimeout)
	defer cancel()

	content, err := client.chatCompletion(ctx, requestBody)
	if err != nil {
		return inference.SummarizeResponse{}, err
	}
	return inference.SummarizeResponse{Summary: strings.TrimSpace(content)}, nil
}

// AnalyzeWeek implements the inference.Client interface
func (client *Client) AnalyzeWeek(
	ctx context.Context,
	params inference.AnalyzeWeekRequest,
) (inference.AnalyzeWeekResponse, error) {
	systemPrompt := `You review one week of a user's personal notes.

Return ONLY a JSON object:
{"summary": "<2-3 sentence narrative of the week's note activity>", "sentiment": "<positive|neutral|negative>"}

The narrative is written to the user ("You captured...", "Your focus was...").
The sentiment reflects the overall tone of the notes, not their count.
Return ONLY the JSON, no other text.`

	requestBody := ChatCompletionRequest{
		Model:       client.model,
		Temperature: 0.5,
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: params.Digest},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, summarizeTimeout)
	defer cancel()

	content, err := client.chatCompletion(ctx, requestBody)
	if err != nil {
		return inference.AnalyzeWeekResponse{}, err
	}

	var decoded inference.AnalyzeWeekResponse
	if err := json.Unmarshal([]byte(stripCodeFences(content)), &decoded); err != nil {
		return inference.AnalyzeWeekResponse{}, fmt.Errorf("json.Unmarshal(%s) > %w", content, err)
	}
	return decoded, nil
}

func (client *Client) chatCompletion(ctx context.Context, requestBody ChatCompletionRequest) (string, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return "", fmt.Errorf("empty response body or choices: %s", response.String())
	}

	content := responseBody.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty response content: %s", response.String())
	}
	slog.Default().Debug("openai response content",
		"request", requestBody,
		"response", responseBody,
	)
	return content, nil
}

// stripCodeFences removes markdown code fences some models wrap JSON in
func stripCodeFences(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
