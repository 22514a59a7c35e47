package gemini

//go:generate go run go.uber.org/mock/mockgen -source=./gemini.go -destination=./mocks/gemini_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"luna/config"
	"luna/infras/otel"
	"luna/shared/constant"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	otelScopeName       = "gemini"
	otelModelAttribute  = "gemini.model"
	otelAttemptsAttr    = "gemini.attempts"
	responseMIMEType    = "application/json"
	backoffMultiplier   = 2
	backoffRandomFactor = 0.2
)

var (
	ErrNotConfigured = errors.New("gemini api key is not configured")
	ErrEmptyResponse = errors.New("gemini returned no content")
	ErrBlocked       = errors.New("gemini blocked the prompt")
)

// Client sends a prompt to the hosted model and returns the raw JSON text the
// model produced for schema.
type Client interface {
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}

type generateFunc func(ctx context.Context, prompt string, schema *genai.Schema) (string, error)

type clientImpl struct {
	cfg      *config.Config
	otel     otel.Otel
	generate generateFunc
}

func New(cfg *config.Config, otel otel.Otel) Client {
	client := &clientImpl{
		cfg:  cfg,
		otel: otel,
	}

	if cfg.External.Gemini.APIKey == constant.Empty {
		log.Warn().Msg("Gemini API key is empty, assistant flows will fail")

		client.generate = func(context.Context, string, *genai.Schema) (string, error) {
			return constant.Empty, ErrNotConfigured
		}

		return client
	}

	genaiClient, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.External.Gemini.APIKey))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Gemini client")
	}

	log.Info().Str("model", cfg.External.Gemini.Model).Msg("Gemini client initialized")

	client.generate = func(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
		model := genaiClient.GenerativeModel(cfg.External.Gemini.Model)
		model.SetTemperature(cfg.External.Gemini.Temperature)
		model.ResponseMIMEType = responseMIMEType
		model.ResponseSchema = schema

		resp, err := model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			return constant.Empty, fmt.Errorf("gemini generate error: %w", err)
		}

		return responseText(resp)
	}

	return client
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return constant.Empty, ErrEmptyResponse
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
		return constant.Empty, fmt.Errorf("%w: %s", ErrBlocked, resp.PromptFeedback.BlockReason.String())
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return constant.Empty, ErrEmptyResponse
	}

	var sb strings.Builder

	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	if strings.TrimSpace(sb.String()) == constant.Empty {
		return constant.Empty, ErrEmptyResponse
	}

	return sb.String(), nil
}

// GenerateJSON bounds every attempt by the configured timeout and retries
// transient failures with exponential backoff. Cancelling ctx stops the loop.
func (c *clientImpl) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (res string, err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".GenerateJSON")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelModelAttribute, c.cfg.External.Gemini.Model)

	attempts := 0
	timeout := time.Duration(c.cfg.External.Gemini.TimeoutSeconds) * time.Second

	operation := func() (string, error) {
		attempts++

		attemptCtx := ctx
		cancel := context.CancelFunc(func() {})

		if timeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, timeout)
		}
		defer cancel()

		text, err := c.generate(attemptCtx, prompt, schema)
		if err == nil {
			return text, nil
		}

		if ctx.Err() != nil {
			return constant.Empty, backoff.Permanent(ctx.Err())
		}

		if !isTransient(err) && !errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
			return constant.Empty, backoff.Permanent(err)
		}

		log.Warn().Err(err).Int("attempt", attempts).Msg("transient gemini failure")

		return constant.Empty, err
	}

	exponential := backoff.NewExponentialBackOff()
	exponential.InitialInterval = time.Duration(c.cfg.External.Gemini.RetryWaitMillis) * time.Millisecond
	exponential.Multiplier = backoffMultiplier
	exponential.RandomizationFactor = backoffRandomFactor

	res, err = backoff.Retry(ctx, operation,
		backoff.WithBackOff(exponential),
		backoff.WithMaxTries(uint(max(c.cfg.External.Gemini.MaxRetry, 0)+1)),
	)

	scope.SetAttribute(otelAttemptsAttr, attempts)

	if err != nil {
		log.Error().Err(err).Int("attempts", attempts).Msg("failed to generate content")

		return constant.Empty, fmt.Errorf("failed to generate content after %d attempt(s): %w", attempts, err)
	}

	return res, nil
}

// isTransient reports whether err is worth another attempt: timeouts, rate
// limiting and server-side failures.
func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
	}

	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.Unavailable, codes.ResourceExhausted, codes.DeadlineExceeded, codes.Internal, codes.Aborted:
			return true
		default:
			return false
		}
	}

	return false
}
