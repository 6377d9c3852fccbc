package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"resty.dev/v3"

	"github.com/lwhite702/klutr/internal/inference"
)

func newTestClient(t *testing.T, handler func(t *testing.T, w http.ResponseWriter, r *http.Request)) *Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler(t, w, r)
	}))
	t.Cleanup(server.Close)

	return &Client{
		httpClient:     resty.New().SetBaseURL(server.URL),
		model:          "gpt-4o-mini",
		embeddingModel: "text-embedding-3-small",
	}
}

func chatContentResponse(t *testing.T, w http.ResponseWriter, content string) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	require.NoError(t, json.NewEncoder(w).Encode(ChatCompletionResponse{
		ID:    "chatcmpl-123",
		Model: "gpt-4o-mini",
		Choices: []Choice{
			{
				Index:        0,
				Message:      ChoiceMessage{Role: RoleAssistant, Content: content},
				FinishReason: "stop",
			},
		},
	}))
}

func TestClient_Classify(t *testing.T) {
	tests := []struct {
		name              string
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)
		wantResponse      inference.ClassifyResponse
		wantError         bool
		wantErrorString   string
	}{
		{
			name: "returns type and tags",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/chat/completions", r.URL.Path)

				var reqBody ChatCompletionRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
				assert.Equal(t, "gpt-4o-mini", reqBody.Model)
				require.Len(t, reqBody.Messages, 2)
				assert.Equal(t, RoleSystem, reqBody.Messages[0].Role)
				assert.Equal(t, "buy milk and eggs", reqBody.Messages[1].Content)

				chatContentResponse(t, w, `{"type": "task", "tags": ["groceries"]}`)
			},
			wantResponse: inference.ClassifyResponse{Type: "task", Tags: []string{"groceries"}},
		},
		{
			name: "strips markdown code fences",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				chatContentResponse(t, w, "```json\n{\"type\": \"idea\", \"tags\": [\"apps\"]}\n```")
			},
			wantResponse: inference.ClassifyResponse{Type: "idea", Tags: []string{"apps"}},
		},
		{
			name: "invalid JSON content",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				chatContentResponse(t, w, "this is not json")
			},
			wantError:       true,
			wantErrorString: "json.Unmarshal",
		},
		{
			name: "server error includes the status code",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantError:       true,
			wantErrorString: "response error 500",
		},
		{
			name: "empty choices",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				require.NoError(t, json.NewEncoder(w).Encode(ChatCompletionResponse{ID: "chatcmpl-123"}))
			},
			wantError:       true,
			wantErrorString: "empty response body or choices",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.mockServerHandler)

			gotResponse, gotErr := client.Classify(context.Background(), inference.ClassifyRequest{
				Content: "buy milk and eggs",
			})
			if tt.wantError {
				require.Error(t, gotErr)
				assert.Contains(t, gotErr.Error(), tt.wantErrorString)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tt.wantResponse, gotResponse)
		})
	}
}

func TestClient_Embed(t *testing.T) {
	tests := []struct {
		name              string
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)
		wantVector        []float64
		wantError         bool
		wantErrorString   string
	}{
		{
			name: "returns the embedding vector",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/embeddings", r.URL.Path)

				var reqBody EmbeddingRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
				assert.Equal(t, "text-embedding-3-small", reqBody.Model)
				assert.Equal(t, []string{"buy milk"}, reqBody.Input)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				require.NoError(t, json.NewEncoder(w).Encode(EmbeddingResponse{
					Data: []EmbeddingData{{Index: 0, Embedding: []float64{0.1, -0.2, 0.3}}},
				}))
			},
			wantVector: []float64{0.1, -0.2, 0.3},
		},
		{
			name: "empty data",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				require.NoError(t, json.NewEncoder(w).Encode(EmbeddingResponse{}))
			},
			wantError:       true,
			wantErrorString: "empty embedding response",
		},
		{
			name: "empty vector",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				require.NoError(t, json.NewEncoder(w).Encode(EmbeddingResponse{
					Data: []EmbeddingData{{Index: 0}},
				}))
			},
			wantError:       true,
			wantErrorString: "empty embedding vector",
		},
		{
			name: "rate limited",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			wantError:       true,
			wantErrorString: "response error 429",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.mockServerHandler)

			gotResponse, gotErr := client.Embed(context.Background(), inference.EmbedRequest{
				Content: "buy milk",
			})
			if tt.wantError {
				require.Error(t, gotErr)
				assert.Contains(t, gotErr.Error(), tt.wantErrorString)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tt.wantVector, gotResponse.Vector)
		})
	}
}

func TestClient_Summarize(t *testing.T) {
	client := newTestClient(t, func(t *testing.T, w http.ResponseWriter, r *http.Request) {
		var reqBody ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		require.Len(t, reqBody.Messages, 2)
		assert.Contains(t, reqBody.Messages[1].Content, "Cluster: Ideas")

		chatContentResponse(t, w, "  Ideas for small side projects.\n")
	})

	got, err := client.Summarize(context.Background(), inference.SummarizeRequest{
		Digest: "Cluster: Ideas\n\n- plant watering app\n",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ideas for small side projects.", got.Summary)
}

func TestClient_AnalyzeWeek(t *testing.T) {
	tests := []struct {
		name              string
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)
		wantResponse      inference.AnalyzeWeekResponse
		wantError         bool
		wantErrorString   string
	}{
		{
			name: "returns summary and sentiment",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				chatContentResponse(t, w, `{"summary": "You captured mostly task notes this week.", "sentiment": "neutral"}`)
			},
			wantResponse: inference.AnalyzeWeekResponse{
				Summary:   "You captured mostly task notes this week.",
				Sentiment: "neutral",
			},
		},
		{
			name: "invalid JSON content",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				chatContentResponse(t, w, "a plain sentence instead of JSON")
			},
			wantError:       true,
			wantErrorString: "json.Unmarshal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.mockServerHandler)

			gotResponse, gotErr := client.AnalyzeWeek(context.Background(), inference.AnalyzeWeekRequest{
				Digest: "Week of 2025-06-02: 3 notes",
			})
			if tt.wantError {
				require.Error(t, gotErr)
				assert.Contains(t, gotErr.Error(), tt.wantErrorString)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tt.wantResponse, gotResponse)
		})
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "no fences", content: `{"a": 1}`, want: `{"a": 1}`},
		{name: "json fence", content: "```json\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{name: "bare fence", content: "```\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{name: "surrounding whitespace", content: "  {\"a\": 1}  ", want: `{"a": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFences(tt.content))
		})
	}
}
