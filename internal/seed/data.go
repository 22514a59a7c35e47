package seed

import (
	bookingModel "luna/internal/domains/booking/model"
	propertyModel "luna/internal/domains/property/model"
)

const hostAvatarURL = "https://placehold.co/100x100.png"

func ptr[T any](v T) *T {
	return &v
}

func properties() []propertyModel.Property {
	return []propertyModel.Property{
		{
			ID:            "p1",
			Name:          "Guzape 4-Bedroom Luxury Retreat",
			Tagline:       ptr("Spacious luxury in Guzape with smart features."),
			Description:   "Enjoy an unforgettable stay in this stunning 4-bedroom luxury apartment located in the serene Guzape district. Perfect for families or groups, offering modern amenities and smart home technology for ultimate comfort and convenience.",
			Location:      "Abuja, NG",
			Address:       "Plot 10, Guzape Hills, Asokoro Extension, Abuja, Nigeria",
			PricePerNight: 330000,
			MaxGuests:     8,
			Bedrooms:      4,
			Bathrooms:     4,
			Amenities:     []string{"WiFi", "Kitchen", "Air Conditioning", "Smart Lock", "Generator", "Security", "Smart TV", "DSTV"},
			Images: []string{
				"https://i.ibb.co/kgv6sb2q/4-Bedroom-Luxury-Apartment-Location-Guzape-Price-330k-Features-Enjoy-the-perfect-stay-with-Smart-Loc.jpg",
				"https://i.ibb.co/PGdpbBz4/4-Bedroom-Luxury-Apartment-Location-Guzape-Price-330k-Features-Enjoy-the-perfect-stay-with-Smart-Loc.jpg",
				"https://i.ibb.co/Fkcmbt28/4-Bedroom-Luxury-Apartment-Location-Guzape-Price-330k-Features-Enjoy-the-perfect-stay-with-Smart-Loc.jpg",
			},
			Rating:        ptr(4.9),
			ReviewsCount:  ptr(60),
			HostName:      ptr("Luna Stays Guzape"),
			HostAvatarURL: ptr(hostAvatarURL),
			Type:          propertyModel.TypeApartment,
		},
		{
			ID:            "p2",
			Name:          "Elegant 3-Bedroom Apartment",
			Tagline:       ptr("Book your luxurious 3-bedroom or 2-bedroom stay today."),
			Description:   "Experience pure luxury in our 3-bedroom apartment units, also available as a 2-bedroom configuration. Modern, stylish, and fully equipped for a premium shortlet experience in a prime Abuja location.",
			Location:      "Abuja, NG",
			Address:       "15 Jabi Lake View, Jabi, Abuja, Nigeria",
			PricePerNight: 250000,
			MaxGuests:     6,
			Bedrooms:      3,
			Bathrooms:     3,
			Amenities:     []string{"WiFi", "Kitchen", "Air Conditioning", "Refundable Caution Deposit", "Security", "DSTV", "Parking"},
			Images: []string{
				"https://i.ibb.co/5xftsx1d/Luxury-3bedroom-Apartment-units-open-for-bookings-Rate-per-night-250k-As-2bed-200-K-Refundable-cauti.jpg",
				"https://i.ibb.co/XrzZnmRT/Luxury-3bedroom-Apartment-units-open-for-bookings-Rate-per-night-250k-As-2bed-200-K-Refundable-cauti.jpg",
				"https://i.ibb.co/cccMYqrG/Luxury-3bedroom-Apartment-units-open-for-bookings-Rate-per-night-250k-As-2bed-200-K-Refundable-cauti.jpg",
			},
			Rating:        ptr(4.7),
			ReviewsCount:  ptr(45),
			HostName:      ptr("Luna Premium Suites"),
			HostAvatarURL: ptr(hostAvatarURL),
			Type:          propertyModel.TypeApartment,
		},
		{
			ID:            "p3",
			Name:          "Gwarinpa 2-Bedroom Getaway with PS5",
			Tagline:       ptr("Whole apartment with Wi-Fi, Netflix, and PS5."),
			Description:   "Your perfect Gwarinpa escape! This 2-bedroom apartment offers the whole property to yourself, complete with fast Wi-Fi, Netflix, a PS5 for entertainment, and prime comfort in a sought-after residential area.",
			Location:      "Abuja, NG",
			Address:       "Plot 30, 5th Avenue, Gwarinpa Estate, Abuja, Nigeria",
			PricePerNight: 170000,
			MaxGuests:     4,
			Bedrooms:      2,
			Bathrooms:     2,
			Amenities:     []string{"WiFi", "Kitchen", "Air Conditioning", "Netflix", "PS5", "Prime Video", "Security", "Generator"},
			Images: []string{
				"https://i.ibb.co/xKbKFs4c/2bedroom-apartment-whole-property-Location-Gwarinpa-Price-170k-night-Features-Wi-Fi-Netflix-Ps5-Prim.jpg",
			},
			Rating:        ptr(4.6),
			ReviewsCount:  ptr(55),
			HostName:      ptr("Gwarinpa Fun Stays"),
			HostAvatarURL: ptr(hostAvatarURL),
			Type:          propertyModel.TypeApartment,
		},
	}
}

// booking describes a seeded request relative to the day the seed runs.
type booking struct {
	ID            string
	PropertyID    string
	GuestName     string
	GuestEmail    string
	CheckInDays   int
	CheckOutDays  int
	NumGuests     int
	Status        string
	RequestedDays int
}

func bookings() []booking {
	return []booking{
		{ID: "b1", PropertyID: "p1", GuestName: "Adekunle Gold", GuestEmail: "adegold@example.com", CheckInDays: 3, CheckOutDays: 7, NumGuests: 4, Status: bookingModel.StatusPending},
		{ID: "b2", PropertyID: "p2", GuestName: "Chioma Nwosu", GuestEmail: "cnwosu@example.com", CheckInDays: 12, CheckOutDays: 16, NumGuests: 2, Status: bookingModel.StatusConfirmed, RequestedDays: -2},
		{ID: "b3", PropertyID: "p3", GuestName: "Femi Adebayo", GuestEmail: "femi.ade@example.com", CheckInDays: 20, CheckOutDays: 23, NumGuests: 3, Status: bookingModel.StatusPending, RequestedDays: -1},
	}
}
