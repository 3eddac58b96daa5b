package admin_hotels

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-CulturalTours/internal/api/handlers/handlerstest"
	"github.com/m04kA/SMC-CulturalTours/internal/domain"
	hotelsService "github.com/m04kA/SMC-CulturalTours/internal/service/hotels"
	hotelsModels "github.com/m04kA/SMC-CulturalTours/internal/service/hotels/models"
	"github.com/m04kA/SMC-CulturalTours/pkg/formparse"
)

type MockHotelsService struct{ mock.Mock }

func (m *MockHotelsService) List(ctx context.Context) ([]*hotelsModels.HotelItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*hotelsModels.HotelItem), args.Error(1)
}

func (m *MockHotelsService) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelsService) Create(ctx context.Context, form *hotelsModels.HotelForm) (*domain.Hotel, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelsService) Update(ctx context.Context, id int64, form *hotelsModels.HotelForm) (*domain.Hotel, error) {
	args := m.Called(ctx, id, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelsService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockPlacesService struct{ mock.Mock }

func (m *MockPlacesService) List(ctx context.Context, filter domain.PlaceFilter) ([]*domain.Place, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Place), args.Error(1)
}

type fixture struct {
	service *MockHotelsService
	places  *MockPlacesService
	view    *handlerstest.View
	flashes *handlerstest.Flashes
	router  *mux.Router
}

func newFixture() *fixture {
	f := &fixture{service: &MockHotelsService{}, places: &MockPlacesService{}}
	responder, view, flashes := handlerstest.NewResponder()
	f.view, f.flashes = view, flashes

	h := NewHandler(f.service, f.places, responder, handlerstest.NopLogger{})
	f.router = mux.NewRouter()
	f.router.HandleFunc("/admin/hotels", h.List).Methods(http.MethodGet)
	f.router.HandleFunc("/admin/hotels/add", h.AddForm).Methods(http.MethodGet)
	f.router.HandleFunc("/admin/hotels/add", h.Add).Methods(http.MethodPost)
	f.router.HandleFunc("/admin/hotels/{id}/edit", h.EditForm).Methods(http.MethodGet)
	f.router.HandleFunc("/admin/hotels/{id}/edit", h.Edit).Methods(http.MethodPost)
	f.router.HandleFunc("/admin/hotels/{id}/delete", h.Delete).Methods(http.MethodPost)
	return f
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestAddForm_ListsPlaces(t *testing.T) {
	f := newFixture()
	f.places.On("List", mock.Anything, domain.PlaceFilter{}).Return([]*domain.Place{{ID: 1}}, nil)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/hotels/add", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin_hotel_form", f.view.Name)
	page := f.view.Page.Data.(FormPage)
	assert.Nil(t, page.Hotel)
	assert.Len(t, page.Places, 1)
}

func TestAdd_Success(t *testing.T) {
	f := newFixture()
	f.service.On("Create", mock.Anything, mock.MatchedBy(func(form *hotelsModels.HotelForm) bool {
		return form.PlaceID == "1" && form.Name == "Heritage Inn" && form.Rating == "4.5"
	})).Return(&domain.Hotel{ID: 2}, nil)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, postForm("/admin/hotels/add", url.Values{
		"place_id": {"1"}, "name": {"Heritage Inn"}, "rating": {"4.5"},
	}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/hotels", rec.Header().Get("Location"))
	assert.Equal(t, []string{msgAdded}, f.flashes.Messages())
}

func TestAdd_InvalidRating(t *testing.T) {
	f := newFixture()
	errs := formparse.Errors{{Field: "rating", Message: hotelsModels.MsgInvalidRating}}
	f.service.On("Create", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: %w", hotelsService.ErrInvalidInput, errs))

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, postForm("/admin/hotels/add", url.Values{"rating": {"9"}}))

	assert.Equal(t, "/admin/hotels/add", rec.Header().Get("Location"))
	assert.Equal(t, []string{hotelsModels.MsgInvalidRating}, f.flashes.Messages())
}

func TestEdit_UnknownPlace(t *testing.T) {
	f := newFixture()
	f.service.On("Update", mock.Anything, int64(2), mock.Anything).Return(nil, hotelsService.ErrPlaceNotFound)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, postForm("/admin/hotels/2/edit", url.Values{"place_id": {"99"}}))

	assert.Equal(t, "/admin/hotels/2/edit", rec.Header().Get("Location"))
	assert.Equal(t, []string{hotelsModels.MsgInvalidPlace}, f.flashes.Messages())
}

func TestEditForm_NotFound(t *testing.T) {
	f := newFixture()
	f.service.On("GetByID", mock.Anything, int64(2)).Return(nil, hotelsService.ErrHotelNotFound)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/hotels/2/edit", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	f.places.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestDelete_HasBookings(t *testing.T) {
	f := newFixture()
	f.service.On("Delete", mock.Anything, int64(2)).Return(hotelsService.ErrHasBookings)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, postForm("/admin/hotels/2/delete", url.Values{}))

	assert.Equal(t, "/admin/hotels", rec.Header().Get("Location"))
	assert.Equal(t, []string{msgHasBookings}, f.flashes.Messages())
}
