package assistant

import (
	"net/http"

	"luna/infras/otel"
	"luna/internal/domains/assistant/model/dto"
	"luna/internal/domains/assistant/service"
	propertyDto "luna/internal/domains/property/model/dto"
	"luna/shared/constant"
	gDto "luna/shared/dto"
	"luna/shared/validator"
	"luna/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Assistant
	otel    otel.Otel
}

func New(service service.Assistant, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/assistant", func(routerGroup chi.Router) {
		routerGroup.Post("/search-query", handler.ParseSearchQuery)
		routerGroup.Post("/search", handler.Search)
		routerGroup.Post("/descriptions", handler.GenerateDescription)
		routerGroup.Post("/recommendations", handler.Recommend)
	})
}

// ParseSearchQuery extracts structured criteria from a free text query.
// @Summary Understand a search query
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body dto.SearchQueryRequest true "Search Query"
// @Success 200 {object} response.Data[dto.SearchQueryResponse] "Extracted criteria"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/assistant/search-query [post]
func (handler *Handler) ParseSearchQuery(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ParseSearchQuery")
	defer scope.End()

	req := dto.SearchQueryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ParseSearchQuery(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse search query")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Search runs a free text query against the catalogue.
// @Summary Search properties in plain language
// @Tags Assistant
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param request body dto.SearchQueryRequest true "Search Query"
// @Success 200 {object} response.Data[dto.SearchResponse] "Criteria and matching properties"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/assistant/search [post]
func (handler *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Search")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if err := queryParams.Restrict(propertyDto.SortableFields); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.SearchQueryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Search(ctx, req, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search properties")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GenerateDescription writes listing copy from key features.
// @Summary Generate a property description
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body dto.DescriptionRequest true "Property Features"
// @Success 200 {object} response.Data[dto.DescriptionResponse] "Description"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/assistant/descriptions [post]
func (handler *Handler) GenerateDescription(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateDescription")
	defer scope.End()

	req := dto.DescriptionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.GenerateDescription(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate description")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Recommend lists apartments similar to the given features.
// @Summary Recommend similar apartments
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body dto.RecommendationRequest true "Apartment Features"
// @Success 200 {object} response.Data[dto.RecommendationsResponse] "Recommendations"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/assistant/recommendations [post]
func (handler *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Recommend")
	defer scope.End()

	req := dto.RecommendationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Recommend(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to recommend apartments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
