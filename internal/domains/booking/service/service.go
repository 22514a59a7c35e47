package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"

	"luna/config"
	"luna/infras/kafka"
	"luna/infras/otel"
	"luna/internal/domains/booking/model"
	"luna/internal/domains/booking/model/dto"
	"luna/internal/domains/booking/repository"
	propertyService "luna/internal/domains/property/service"
	"luna/shared"
	"luna/shared/cache"
	"luna/shared/constant"
	gDto "luna/shared/dto"
	"luna/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Price(ctx context.Context, form dto.BookingForm) (dto.PricedBooking, error)
	Create(ctx context.Context, form dto.BookingForm) (dto.BookingResponse, error)
	Place(ctx context.Context, req dto.PlaceBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo            repository.Booking
	propertyService propertyService.Property
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
	kafka           kafka.Client
}

func New(repo repository.Booking, propertyService propertyService.Property, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Booking {
	return &serviceImpl{
		repo:            repo,
		propertyService: propertyService,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
		kafka:           kafka,
	}
}

// Price completes a form with the stored property and the derived stay. The
// guest count is capped by the property's capacity.
func (s *serviceImpl) Price(ctx context.Context, form dto.BookingForm) (res dto.PricedBooking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Price")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	property, err := s.propertyService.Get(ctx, form.PropertyID)
	if err != nil {
		log.Error().Err(err).Str("propertyID", form.PropertyID).Msg("failed to get property for booking")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	if form.NumGuests > property.MaxGuests {
		msg := fmt.Sprintf("This property accommodates at most %d guests.", property.MaxGuests)

		return res, failure.FieldError("num_guests", msg) // nolint:wrapcheck
	}

	checkIn, checkOut := form.Dates()

	stay, ok := model.CalculateStay(checkIn, checkOut, property.PricePerNight)
	if !ok {
		return res, failure.FieldError("check_out_date", "Check-out date must be after check-in date.") // nolint:wrapcheck
	}

	res.BookingForm = form
	res.PropertyName = property.Name
	res.PricePerNight = property.PricePerNight
	res.NumberOfNights = stay.Nights
	res.TotalPrice = stay.Total

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, form dto.BookingForm) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	priced, err := s.Price(ctx, form)
	if err != nil {
		return res, err
	}

	return s.Place(ctx, dto.PlaceBookingRequest{
		Booking: priced,
		Status:  model.StatusPending,
	})
}

// Place stores a priced booking and announces it on the booking topic.
func (s *serviceImpl) Place(ctx context.Context, req dto.PlaceBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Place")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Status == constant.Empty {
		req.Status = model.StatusPending
	}

	booking := req.ToModel(shared.Actor(ctx))

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)

		s.publish(c, booking, constant.Empty)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	previous := booking.Status

	if !model.CanTransition(previous, req.Status) {
		msg := fmt.Sprintf("cannot change booking status from %s to %s", previous, req.Status)

		return res, failure.Conflict(msg) // nolint:wrapcheck
	}

	moved, err := s.repo.TransitionStatus(ctx, id, previous, req.Status, shared.Actor(ctx))
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	if !moved {
		return res, failure.Conflict("booking status changed concurrently, please retry") // nolint:wrapcheck
	}

	booking.Status = req.Status
	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)

		s.publish(c, booking, previous)
	}()

	return res, nil
}

func (s *serviceImpl) publish(ctx context.Context, booking model.BookingRequest, previousStatus string) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".booking.publish")
	defer scope.End()

	var event dto.Event
	event.FromModel(booking, previousStatus)

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic.Booking, kafka.Message{
		Key:   booking.ID,
		Value: event,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingID", booking.ID).Str("event", event.Type).Msg("failed to publish booking event")
	}
}
