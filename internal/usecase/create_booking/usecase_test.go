package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	placeRepo "github.com/m04kA/SMC-CulturalTours/internal/infra/storage/place"
	"github.com/m04kA/SMC-CulturalTours/pkg/txmanager"
)

type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Exists(ctx context.Context, filter domain.BookingFilter) (bool, error) {
	args := m.Called(ctx, filter)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

// inlineTx выполняет fn без БД; err, если задан, возвращается вместо результата fn
type inlineTx struct {
	err error
}

func (t *inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return t.err
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type noopMetrics struct {
	created  []string
	rejected []string
}

func (m *noopMetrics) BookingCreated(kind string) { m.created = append(m.created, kind) }
func (m *noopMetrics) BookingRejected(kind, reason string) {
	m.rejected = append(m.rejected, reason)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	hampi = &domain.Place{ID: 1, Name: "Hampi", State: "Karnataka"}
	today = time.Date(2025, 7, 1, 15, 30, 0, 0, time.UTC)
)

type fixture struct {
	places   *MockPlaceRepository
	bookings *MockBookingRepository
	tx       *inlineTx
	metrics  *noopMetrics
	uc       *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		places:   &MockPlaceRepository{},
		bookings: &MockBookingRepository{},
		tx:       &inlineTx{},
		metrics:  &noopMetrics{},
	}
	f.uc = NewUseCase(f.places, f.bookings, f.tx, f.metrics, nopLogger{})
	f.uc.timeProvider = fixedTime{now: today}
	return f
}

func validRequest() *Request {
	return &Request{
		PlaceID:    1,
		Name:       "Asha",
		Email:      "asha@example.com",
		Phone:      "9999999999",
		TravelDate: "2025-07-15",
		NumPeople:  "2",
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()
	travel := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	f.places.On("GetByID", mock.Anything, int64(1)).Return(hampi, nil)
	f.bookings.On("Exists", mock.Anything, domain.BookingFilter{
		Email:      ptrTo("asha@example.com"),
		TravelDate: &travel,
		Statuses:   domain.ActiveBookingStatuses,
	}).Return(false, nil)
	f.bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.BookingPending && b.NumPeople == 2 && b.TravelDate.Equal(travel) && b.SpecialRequests == nil
	})).Return(&domain.Booking{ID: 42, PlaceID: 1, Email: "asha@example.com", TravelDate: travel, NumPeople: 2, Status: domain.BookingPending}, nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "Hampi", resp.PlaceName)
	assert.Equal(t, "Pending", resp.Status)
	assert.Equal(t, []string{"trip"}, f.metrics.created)
	f.places.AssertExpectations(t)
	f.bookings.AssertExpectations(t)
}

func TestExecute_PlaceNotFound(t *testing.T) {
	f := newFixture()
	f.places.On("GetByID", mock.Anything, int64(1)).Return(nil, placeRepo.ErrPlaceNotFound)

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrPlaceNotFound)
	f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecute_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"missing name", func(r *Request) { r.Name = " " }, ErrMissingFields},
		{"missing date before bad count", func(r *Request) { r.TravelDate = ""; r.NumPeople = "x" }, ErrMissingFields},
		{"bad date", func(r *Request) { r.TravelDate = "15/07/2025" }, ErrInvalidDate},
		{"bad date before past check", func(r *Request) { r.TravelDate = "2025-02-30" }, ErrInvalidDate},
		{"past date", func(r *Request) { r.TravelDate = "2025-06-30" }, ErrDateInPast},
		{"past date before bad count", func(r *Request) { r.TravelDate = "2025-06-30"; r.NumPeople = "0" }, ErrDateInPast},
		{"zero people", func(r *Request) { r.NumPeople = "0" }, ErrInvalidNumPeople},
		{"negative people", func(r *Request) { r.NumPeople = "-3" }, ErrInvalidNumPeople},
		{"non numeric people", func(r *Request) { r.NumPeople = "two" }, ErrInvalidNumPeople},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.places.On("GetByID", mock.Anything, int64(1)).Return(hampi, nil)

			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			f.bookings.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
			f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			assert.Len(t, f.metrics.rejected, 1)
		})
	}
}

func TestExecute_TodayIsAllowed(t *testing.T) {
	f := newFixture()
	f.places.On("GetByID", mock.Anything, int64(1)).Return(hampi, nil)
	f.bookings.On("Exists", mock.Anything, mock.Anything).Return(false, nil)
	f.bookings.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{ID: 1, Status: domain.BookingPending}, nil)

	req := validRequest()
	req.TravelDate = "2025-07-01"

	_, err := f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_EmptyNumPeopleRejected(t *testing.T) {
	f := newFixture()
	f.places.On("GetByID", mock.Anything, int64(1)).Return(hampi, nil)

	req := validRequest()
	req.NumPeople = " "

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidNumPeople)
	f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecute_DuplicateBooking(t *testing.T) {
	f := newFixture()
	f.places.On("GetByID", mock.Anything, int64(1)).Return(hampi, nil)
	// уже есть Pending бронирование с тем же email на ту же дату
	f.bookings.On("Exists", mock.Anything, mock.Anything).Return(true, nil)

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrDuplicateBooking)
	f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Equal(t, []string{"duplicate"}, f.metrics.rejected)
}

func TestExecute_SerializationFailure(t *testing.T) {
	f := newFixture()
	f.places.On("GetByID", mock.Anything, int64(1)).Return(hampi, nil)
	f.bookings.On("Exists", mock.Anything, mock.Anything).Return(false, nil)
	f.bookings.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{ID: 1}, nil)
	f.tx.err = txmanager.ErrSerialization

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrConcurrentRequest)
	assert.Equal(t, []string{"concurrent"}, f.metrics.rejected)
}

func TestExecute_CreateFailureKeepsDriverError(t *testing.T) {
	f := newFixture()
	pqErr := &pq.Error{Code: "23503"}
	f.places.On("GetByID", mock.Anything, int64(1)).Return(hampi, nil)
	f.bookings.On("Exists", mock.Anything, mock.Anything).Return(false, nil)
	f.bookings.On("Create", mock.Anything, mock.Anything).Return(nil, pqErr)

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
	var target *pq.Error
	assert.True(t, errors.As(err, &target))
}

func ptrTo(s string) *string { return &s }
