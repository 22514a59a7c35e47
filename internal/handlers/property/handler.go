package property

import (
	"net/http"

	"luna/infras/otel"
	assistantService "luna/internal/domains/assistant/service"
	"luna/internal/domains/property/model/dto"
	"luna/internal/domains/property/service"
	"luna/shared"
	"luna/shared/constant"
	gDto "luna/shared/dto"
	"luna/shared/failure"
	"luna/shared/validator"
	"luna/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service   service.Property
	assistant assistantService.Assistant
	otel      otel.Otel
}

func New(service service.Property, assistant assistantService.Assistant, otel otel.Otel) Handler {
	return Handler{
		service:   service,
		assistant: assistant,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/properties", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetProperties)
		routerGroup.Post("/", handler.CreateProperty)
		routerGroup.Get("/featured", handler.GetFeaturedProperties)
		routerGroup.Get("/{id}", handler.GetPropertyByID)
		routerGroup.Patch("/{id}", handler.UpdateProperty)
		routerGroup.Delete("/{id}", handler.DeleteProperty)
		routerGroup.Post("/{id}/images", handler.UploadImage)
		routerGroup.Delete("/{id}/images", handler.DeleteImages)
		routerGroup.Get("/{id}/recommendations", handler.GetRecommendations)
	})
}

// CreateProperty handles the creation of a new property.
// @Summary Create a new property
// @Description Create a new shortlet listing.
// @Tags Property
// @Accept json
// @Produce json
// @Param request body dto.CreatePropertyRequest true "Create Property Request"
// @Success 201 {object} response.Data[dto.PropertyResponse] "Property created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties [post]
func (handler *Handler) CreateProperty(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProperty")
	defer scope.End()

	req := dto.CreatePropertyRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	property, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create property")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Property created successfully by " + shared.Actor(ctx))

	response.WithJSON(writer, http.StatusCreated, property)
}

// GetProperties lists the catalogue.
// @Summary Get all properties
// @Description Retrieve properties with optional filters, sorting and pagination.
// @Tags Property
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param location query string false "Location contains"
// @Param type query string false "Property type" Enums(Apartment, Villa, Studio, House)
// @Param min_price query number false "Minimum price per night"
// @Param max_price query number false "Maximum price per night"
// @Param guests query int false "Number of guests"
// @Param amenity query []string false "Required amenities" collectionFormat(multi)
// @Success 200 {object} response.Data[dto.GetPropertiesResponse] "List of properties"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties [get]
func (handler *Handler) GetProperties(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProperties")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if err := queryParams.Restrict(dto.SortableFields); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	criteria := dto.SearchCriteria{}

	if err := criteria.FromRequest(r); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := validator.ValidateStruct(&criteria); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate search criteria")

		response.WithError(w, err)

		return
	}

	properties, err := handler.service.GetAll(ctx, queryParams, criteria.ToFilterGroup())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get properties")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Properties retrieved successfully")

	response.WithJSON(w, http.StatusOK, properties)
}

// GetFeaturedProperties returns the properties shown on the home page.
// @Summary Get featured properties
// @Tags Property
// @Produce json
// @Success 200 {object} response.Data[[]dto.PropertyResponse] "Featured properties"
// @Failure 500 {object} response.Error
// @Router /v1/properties/featured [get]
func (handler *Handler) GetFeaturedProperties(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeaturedProperties")
	defer scope.End()

	properties, err := handler.service.Featured(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get featured properties")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, properties)
}

// GetPropertyByID retrieves a property by its ID.
// @Summary Get a property by ID
// @Tags Property
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Data[dto.PropertyResponse] "Property details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id} [get]
func (handler *Handler) GetPropertyByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPropertyByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	property, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get property by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Property retrieved successfully")

	response.WithJSON(w, http.StatusOK, property)
}

// UpdateProperty updates an existing property by its ID.
// @Summary Update a property by ID
// @Tags Property
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body dto.UpdatePropertyRequest true "Update Property Request"
// @Success 200 {object} response.Message "Property updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id} [patch]
func (handler *Handler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProperty")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePropertyRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update property")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Property updated successfully by " + shared.Actor(ctx))

	response.WithMessage(w, http.StatusOK, "Property updated successfully")
}

// DeleteProperty deletes a property by its ID.
// @Summary Delete a property by ID
// @Tags Property
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Message "Property deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id} [delete]
func (handler *Handler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteProperty")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete property")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Property deleted successfully by " + shared.Actor(ctx))

	response.WithMessage(w, http.StatusOK, "Property deleted successfully")
}

// UploadImage appends an uploaded image to a property.
// @Summary Upload a property image
// @Description Upload a png or jpeg to object storage and append its URL to the property images.
// @Tags Property
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Property ID"
// @Param file formData file true "Image file to upload"
// @Success 201 {object} response.Data[dto.UploadImageResponse] "Image uploaded"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/images [post]
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, failure.FieldError(constant.FormFile, "file is required"))

		return
	}
	defer file.Close()

	req := dto.UploadImageRequest{
		Image:     fileHeader,
		ImageFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate uploaded image")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadImage(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload property image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Image uploaded successfully by " + shared.Actor(ctx))

	response.WithJSON(w, http.StatusCreated, res)
}

// DeleteImages removes images from a property and from object storage.
// @Summary Delete property images
// @Tags Property
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body dto.DeleteImagesRequest true "Delete Images Request"
// @Success 200 {object} response.Data[[]string] "Remaining images"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/images [delete]
func (handler *Handler) DeleteImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteImages")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.DeleteImagesRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	images, err := handler.service.DeleteImages(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete property images")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Images deleted successfully by " + shared.Actor(ctx))

	response.WithJSON(w, http.StatusOK, images)
}

// GetRecommendations asks the assistant for listings similar to a stored property.
// @Summary Recommend similar properties
// @Tags Property
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Data[any] "Recommendations"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/properties/{id}/recommendations [get]
func (handler *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecommendations")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.assistant.RecommendForProperty(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to recommend similar properties")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
