package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
)

type MockCounter struct{ mock.Mock }

func (m *MockCounter) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Count(ctx context.Context, filter domain.BookingFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_GetStats(t *testing.T) {
	places, hotels, bookings := &MockCounter{}, &MockCounter{}, &MockBookingRepository{}
	places.On("Count", mock.Anything).Return(4, nil)
	hotels.On("Count", mock.Anything).Return(9, nil)
	bookings.On("Count", mock.Anything, domain.BookingFilter{}).Return(12, nil)
	bookings.On("Count", mock.Anything, domain.BookingFilter{
		Statuses: []domain.BookingStatus{domain.BookingPending},
	}).Return(3, nil)

	stats, err := NewService(places, bookings, hotels, nopLogger{}).GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &Stats{TotalPlaces: 4, TotalBookings: 12, PendingBookings: 3, TotalHotels: 9}, stats)
}

func TestService_GetStats_Error(t *testing.T) {
	places := &MockCounter{}
	places.On("Count", mock.Anything).Return(0, errors.New("db down"))

	_, err := NewService(places, &MockBookingRepository{}, &MockCounter{}, nopLogger{}).GetStats(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}
