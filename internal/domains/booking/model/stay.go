package model

import (
	"time"
)

const hoursPerDay = 24

type Stay struct {
	Nights int     `json:"number_of_nights"`
	Total  float64 `json:"total_price"`
}

func calendarDay(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CalculateStay prices a stay by calendar days. The second result is false when
// a date is missing or check-out is not after check-in.
func CalculateStay(checkIn, checkOut time.Time, pricePerNight float64) (Stay, bool) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return Stay{}, false
	}

	nights := int(calendarDay(checkOut).Sub(calendarDay(checkIn)).Hours() / hoursPerDay)
	if nights <= 0 {
		return Stay{}, false
	}

	return Stay{
		Nights: nights,
		Total:  float64(nights) * pricePerNight,
	}, true
}
