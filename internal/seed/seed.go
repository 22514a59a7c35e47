// Package seed loads the demo listings and booking requests into an empty
// database. Rows that already exist are left untouched, so it can run twice.
package seed

import (
	"context"
	"fmt"
	"time"

	bookingModel "luna/internal/domains/booking/model"
	bookingRepository "luna/internal/domains/booking/repository"
	propertyModel "luna/internal/domains/property/model"
	propertyRepository "luna/internal/domains/property/repository"
	"luna/shared"
	"luna/shared/constant"
	"luna/shared/model"
	"luna/shared/timezone"

	"github.com/rs/zerolog/log"
)

const day = 24 * time.Hour

type Result struct {
	Properties int
	Bookings   int
}

type Seeder struct {
	properties propertyRepository.Property
	bookings   bookingRepository.Booking
}

func New(properties propertyRepository.Property, bookings bookingRepository.Booking) *Seeder {
	return &Seeder{
		properties: properties,
		bookings:   bookings,
	}
}

func (s *Seeder) Run(ctx context.Context) (res Result, err error) {
	ctx = context.WithValue(ctx, constant.ContextKeyActor, constant.ActorSeeder)
	now := timezone.Now()

	prices := map[string]propertyModel.Property{}
	missing := []propertyModel.Property{}

	for _, property := range properties() {
		prices[property.ID] = property

		exist, err := s.properties.Exist(ctx, shared.FilterByID(property.ID, propertyModel.FieldID, propertyModel.TableName))
		if err != nil {
			return res, fmt.Errorf("failed to check property %s: %w", property.ID, err)
		}

		if exist {
			continue
		}

		property.Metadata = metadata(now)
		missing = append(missing, property)
	}

	if len(missing) > 0 {
		if err = s.properties.InsertBulk(ctx, missing); err != nil {
			return res, fmt.Errorf("failed to insert properties: %w", err)
		}
	}

	res.Properties = len(missing)

	for _, seeded := range bookings() {
		exist, err := s.bookings.Exist(ctx, shared.FilterByID(seeded.ID, bookingModel.FieldID, bookingModel.TableName))
		if err != nil {
			return res, fmt.Errorf("failed to check booking %s: %w", seeded.ID, err)
		}

		if exist {
			continue
		}

		if err = s.bookings.Insert(ctx, toBooking(seeded, prices[seeded.PropertyID], now)); err != nil {
			return res, fmt.Errorf("failed to insert booking %s: %w", seeded.ID, err)
		}

		res.Bookings++
	}

	log.Info().Int("properties", res.Properties).Int("bookings", res.Bookings).Msg("seed completed")

	return res, nil
}

func metadata(now time.Time) model.Metadata {
	return model.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  constant.ActorSeeder,
		ModifiedBy: constant.ActorSeeder,
	}
}

func toBooking(seeded booking, property propertyModel.Property, now time.Time) bookingModel.BookingRequest {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	checkIn := today.Add(time.Duration(seeded.CheckInDays) * day)
	checkOut := today.Add(time.Duration(seeded.CheckOutDays) * day)

	stay, _ := bookingModel.CalculateStay(checkIn, checkOut, property.PricePerNight)

	return bookingModel.BookingRequest{
		ID:             seeded.ID,
		PropertyID:     property.ID,
		PropertyName:   property.Name,
		GuestName:      seeded.GuestName,
		GuestEmail:     seeded.GuestEmail,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		NumGuests:      seeded.NumGuests,
		NumberOfNights: stay.Nights,
		TotalPrice:     stay.Total,
		Status:         seeded.Status,
		RequestedAt:    now.Add(time.Duration(seeded.RequestedDays) * day),
		Metadata:       metadata(now),
	}
}
