package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Assistant=MockAssistantService

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"luna/infras/gemini"
	"luna/infras/otel"
	"luna/internal/domains/assistant/model"
	"luna/internal/domains/assistant/model/dto"
	propertyService "luna/internal/domains/property/service"
	"luna/shared/constant"
	gDto "luna/shared/dto"
	"luna/shared/failure"
	"luna/shared/validator"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
)

type Assistant interface {
	ParseSearchQuery(ctx context.Context, req dto.SearchQueryRequest) (dto.SearchQueryResponse, error)
	Search(ctx context.Context, req dto.SearchQueryRequest, params gDto.QueryParams) (dto.SearchResponse, error)
	GenerateDescription(ctx context.Context, req dto.DescriptionRequest) (dto.DescriptionResponse, error)
	Recommend(ctx context.Context, req dto.RecommendationRequest) (dto.RecommendationsResponse, error)
	RecommendForProperty(ctx context.Context, propertyID string) (dto.RecommendationsResponse, error)
}

type serviceImpl struct {
	client          gemini.Client
	propertyService propertyService.Property
	otel            otel.Otel
}

func New(client gemini.Client, propertyService propertyService.Property, otel otel.Otel) Assistant {
	return &serviceImpl{
		client:          client,
		propertyService: propertyService,
		otel:            otel,
	}
}

// flow describes one prompt round trip.
type flow struct {
	name   string
	prompt *template.Template
	schema *genai.Schema
}

var (
	searchQueryFlow    = flow{name: model.FlowSearchQuery, prompt: searchQueryPrompt, schema: searchQuerySchema}
	descriptionFlow    = flow{name: model.FlowDescription, prompt: descriptionPrompt, schema: descriptionSchema}
	recommendationFlow = flow{name: model.FlowRecommendations, prompt: recommendationPrompt, schema: recommendationSchema}
)

// run renders the prompt, calls the model and decodes the reply into T. A reply
// that does not decode or validate is never retried.
func run[T any](ctx context.Context, client gemini.Client, f flow, input any) (out T, err error) {
	prompt, err := render(f.prompt, input)
	if err != nil {
		return out, fmt.Errorf("failed to build %s prompt: %w", f.name, err)
	}

	text, err := client.GenerateJSON(ctx, prompt, f.schema)
	if err != nil {
		log.Error().Err(err).Str("flow", f.name).Msg("model call failed")

		return out, failure.BadGateway(model.MsgUnavailable, err) //nolint:wrapcheck
	}

	if err = json.Unmarshal([]byte(strings.TrimSpace(text)), &out); err != nil {
		log.Error().Err(err).Str("flow", f.name).Msg("failed to decode model output")

		return out, failure.BadGateway(model.MsgSchemaMismatch, fmt.Errorf("%w: %w", model.ErrSchemaMismatch, err)) //nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&out); err != nil {
		log.Error().Err(err).Str("flow", f.name).Msg("model output failed validation")

		return out, failure.BadGateway(model.MsgSchemaMismatch, fmt.Errorf("%w: %w", model.ErrSchemaMismatch, err)) //nolint:wrapcheck
	}

	return out, nil
}

func (s *serviceImpl) ParseSearchQuery(ctx context.Context, req dto.SearchQueryRequest) (res dto.SearchQueryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ParseSearchQuery")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return run[dto.SearchQueryResponse](ctx, s.client, searchQueryFlow, req)
}

// Search turns a free text query into catalogue filters and lists the matches.
func (s *serviceImpl) Search(ctx context.Context, req dto.SearchQueryRequest, params gDto.QueryParams) (res dto.SearchResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	parsed, err := s.ParseSearchQuery(ctx, req)
	if err != nil {
		return res, err
	}

	criteria := parsed.ToCriteria()

	properties, err := s.propertyService.GetAll(ctx, params, criteria.ToFilterGroup())
	if err != nil {
		log.Error().Err(err).Msg("failed to list properties for search")

		return res, fmt.Errorf("failed to list properties: %w", err)
	}

	res.FromResult(parsed, properties)

	return res, nil
}

func (s *serviceImpl) GenerateDescription(ctx context.Context, req dto.DescriptionRequest) (res dto.DescriptionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GenerateDescription")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return run[dto.DescriptionResponse](ctx, s.client, descriptionFlow, req)
}

func (s *serviceImpl) Recommend(ctx context.Context, req dto.RecommendationRequest) (res dto.RecommendationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Recommend")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return run[dto.RecommendationsResponse](ctx, s.client, recommendationFlow, req)
}

func (s *serviceImpl) RecommendForProperty(ctx context.Context, propertyID string) (res dto.RecommendationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecommendForProperty")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	property, err := s.propertyService.Get(ctx, propertyID)
	if err != nil {
		log.Error().Err(err).Str("propertyID", propertyID).Msg("failed to get property for recommendations")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	var req dto.RecommendationRequest
	req.FromProperty(property)

	return s.Recommend(ctx, req)
}
