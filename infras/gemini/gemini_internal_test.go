package gemini

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"luna/config"
	"luna/infras/otel/mocks"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newTestClient(maxRetry int, generate generateFunc) *clientImpl {
	cfg := &config.Config{}
	cfg.External.Gemini.Model = "gemini-test"
	cfg.External.Gemini.TimeoutSeconds = 1
	cfg.External.Gemini.MaxRetry = maxRetry
	cfg.External.Gemini.RetryWaitMillis = 1

	return &clientImpl{cfg: cfg, otel: mocks.NewOtel(), generate: generate}
}

func TestGenerateJSON_Success(t *testing.T) {
	client := newTestClient(2, func(context.Context, string, *genai.Schema) (string, error) {
		return `{"description":"ok"}`, nil
	})

	res, err := client.GenerateJSON(context.Background(), "prompt", nil)

	assert.NoError(t, err)
	assert.Equal(t, `{"description":"ok"}`, res)
}

func TestGenerateJSON_RetriesTransient(t *testing.T) {
	calls := 0
	client := newTestClient(2, func(context.Context, string, *genai.Schema) (string, error) {
		calls++
		if calls < 3 {
			return "", &googleapi.Error{Code: http.StatusServiceUnavailable}
		}

		return `{}`, nil
	})

	res, err := client.GenerateJSON(context.Background(), "prompt", nil)

	assert.NoError(t, err)
	assert.Equal(t, `{}`, res)
	assert.Equal(t, 3, calls)
}

func TestGenerateJSON_GivesUpAfterMaxRetry(t *testing.T) {
	calls := 0
	client := newTestClient(1, func(context.Context, string, *genai.Schema) (string, error) {
		calls++

		return "", status.Error(codes.Unavailable, "overloaded")
	})

	_, err := client.GenerateJSON(context.Background(), "prompt", nil)

	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestGenerateJSON_DoesNotRetryPermanent(t *testing.T) {
	calls := 0
	client := newTestClient(3, func(context.Context, string, *genai.Schema) (string, error) {
		calls++

		return "", &googleapi.Error{Code: http.StatusBadRequest}
	})

	_, err := client.GenerateJSON(context.Background(), "prompt", nil)

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestGenerateJSON_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	client := newTestClient(3, func(context.Context, string, *genai.Schema) (string, error) {
		calls++
		cancel()

		return "", &googleapi.Error{Code: http.StatusServiceUnavailable}
	})

	_, err := client.GenerateJSON(ctx, "prompt", nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestGenerateJSON_NotConfigured(t *testing.T) {
	cfg := &config.Config{}

	client := New(cfg, mocks.NewOtel())

	_, err := client.GenerateJSON(context.Background(), "prompt", nil)

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "deadline", err: context.DeadlineExceeded, want: true},
		{name: "rate limited", err: &googleapi.Error{Code: http.StatusTooManyRequests}, want: true},
		{name: "server error", err: &googleapi.Error{Code: http.StatusBadGateway}, want: true},
		{name: "bad request", err: &googleapi.Error{Code: http.StatusBadRequest}, want: false},
		{name: "grpc unavailable", err: status.Error(codes.Unavailable, "down"), want: true},
		{name: "grpc invalid argument", err: status.Error(codes.InvalidArgument, "bad"), want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "blocked", err: ErrBlocked, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isTransient(tt.err))
		})
	}
}

func TestResponseText(t *testing.T) {
	_, err := responseText(nil)
	assert.ErrorIs(t, err, ErrEmptyResponse)

	_, err = responseText(&genai.GenerateContentResponse{})
	assert.ErrorIs(t, err, ErrEmptyResponse)

	_, err = responseText(&genai.GenerateContentResponse{
		PromptFeedback: &genai.PromptFeedback{BlockReason: genai.BlockReasonSafety},
	})
	assert.ErrorIs(t, err, ErrBlocked)

	text, err := responseText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"a":`), genai.Text(`1}`)}}},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, `{"a":1}`, text)
}
