package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CulturalTours/pkg/ptr"
)

func TestCalculatePricing(t *testing.T) {
	hotel := &Hotel{PricePerNight: 100}
	transport := &Transport{Price: 50}

	p := CalculatePricing(hotel, transport, 3, 1, 2)
	assert.Equal(t, 300.0, p.HotelTotal)
	assert.Equal(t, 100.0, p.TransportTotal)
	assert.Equal(t, 400.0, p.TotalAmount)

	p = CalculatePricing(nil, transport, 3, 1, 2)
	assert.Equal(t, 0.0, p.HotelTotal)
	assert.Equal(t, p.HotelTotal+p.TransportTotal, p.TotalAmount)

	p = CalculatePricing(hotel, nil, 2, 2, 4)
	assert.Equal(t, 400.0, p.HotelTotal)
	assert.Equal(t, 0.0, p.TransportTotal)
	assert.Equal(t, 400.0, p.TotalAmount)
}

func TestStayDays(t *testing.T) {
	in := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	out := time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, StayDays(in, out))

	// переход через границу месяца и года
	assert.Equal(t, 2, StayDays(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)))
}

func TestParseStatuses(t *testing.T) {
	st, ok := ParseBookingStatus("Confirmed")
	assert.True(t, ok)
	assert.Equal(t, BookingConfirmed, st)

	_, ok = ParseBookingStatus("Cancelled")
	assert.False(t, ok)

	sst, ok := ParseServiceBookingStatus("Cancelled")
	assert.True(t, ok)
	assert.Equal(t, ServiceBookingCancelled, sst)

	_, ok = ParseServiceBookingStatus("Rejected")
	assert.False(t, ok)

	_, ok = ParseServiceBookingStatus("pending")
	assert.False(t, ok)
}

func TestYouTubeEmbedURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/embed/abc123", YouTubeEmbedURL("https://www.youtube.com/watch?v=abc123"))
	assert.Equal(t, "https://www.youtube.com/embed/xyz", YouTubeEmbedURL("https://youtu.be/xyz"))
	assert.Equal(t, "https://www.youtube.com/embed/abc", YouTubeEmbedURL("https://www.youtube.com/embed/abc"))
	assert.Equal(t, "https://vimeo.com/1", YouTubeEmbedURL("https://vimeo.com/1"))
	assert.Equal(t, "", YouTubeEmbedURL(""))

	p := Place{VideoURL: ptr.Ptr("https://youtu.be/q")}
	assert.Equal(t, "https://www.youtube.com/embed/q", p.EmbedVideoURL())
}

func TestPlace_HasRequiredFields(t *testing.T) {
	p := Place{Name: "Hampi", State: "Karnataka", ShortIntro: "ruins", Description: "d", CultureDescription: "c"}
	assert.True(t, p.HasRequiredFields())

	p.CultureDescription = ""
	assert.False(t, p.HasRequiredFields())
}

func TestHotel_AmenityList(t *testing.T) {
	h := Hotel{Amenities: ptr.Ptr("wifi, pool,, breakfast ")}
	assert.Equal(t, []string{"wifi", "pool", "breakfast"}, h.AmenityList())
	assert.Nil(t, (&Hotel{}).AmenityList())
}

func TestTransportType_IsValid(t *testing.T) {
	assert.True(t, TransportTrain.IsValid())
	assert.False(t, TransportType("plane").IsValid())
}
