package admin_places

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
	placesService "github.com/m04kA/SMC-CulturalTours/internal/service/places"
	placesModels "github.com/m04kA/SMC-CulturalTours/internal/service/places/models"
	"github.com/m04kA/SMC-CulturalTours/pkg/formparse"
)

type MockPlacesService struct{ mock.Mock }

func (m *MockPlacesService) List(ctx context.Context, filter domain.PlaceFilter) ([]*domain.Place, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Place), args.Error(1)
}

func (m *MockPlacesService) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *MockPlacesService) Create(ctx context.Context, form *placesModels.PlaceForm) (*domain.Place, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *MockPlacesService) Update(ctx context.Context, id int64, form *placesModels.PlaceForm) (*domain.Place, error) {
	args := m.Called(ctx, id, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *MockPlacesService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type fixture struct {
	service *MockPlacesService
	view    *handlerstest.View
	flashes *handlerstest.Flashes
	router  *mux.Router
}

func newFixture() *fixture {
	f := &fixture{service: &MockPlacesService{}}
	responder, view, flashes := handlerstest.NewResponder()
	f.view, f.flashes = view, flashes

	h := NewHandler(f.service, domain.DefaultStates, responder, handlerstest.NopLogger{})
	f.router = mux.NewRouter()
	f.router.HandleFunc("/admin/places", h.List).Methods(http.MethodGet)
	f.router.HandleFunc("/admin/places/add", h.AddForm).Methods(http.MethodGet)
	f.router.HandleFunc("/admin/places/add", h.Add).Methods(http.MethodPost)
	f.router.HandleFunc("/admin/places/{id}/edit", h.EditForm).Methods(http.MethodGet)
	f.router.HandleFunc("/admin/places/{id}/edit", h.Edit).Methods(http.MethodPost)
	f.router.HandleFunc("/admin/places/{id}/delete", h.Delete).Methods(http.MethodPost)
	return f
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func invalidInput(errs formparse.Errors) error {
	return fmt.Errorf("%w: %w", placesService.ErrInvalidInput, errs)
}

func TestList(t *testing.T) {
	f := newFixture()
	f.service.On("List", mock.Anything, domain.PlaceFilter{}).Return([]*domain.Place{{ID: 1}, {ID: 2}}, nil)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/places", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin_places", f.view.Name)
	assert.Len(t, f.view.Page.Data, 2)
}

func TestAddForm_HasStates(t *testing.T) {
	f := newFixture()

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/places/add", nil))

	page := f.view.Page.Data.(FormPage)
	assert.Nil(t, page.Place)
	assert.Equal(t, domain.DefaultStates, page.States)
}

func TestAdd_Success(t *testing.T) {
	f := newFixture()
	f.service.On("Create", mock.Anything, mock.MatchedBy(func(form *placesModels.PlaceForm) bool {
		return form.Name == "Hampi" && form.PricePerPerson == "1500"
	})).Return(&domain.Place{ID: 3}, nil)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, postForm("/admin/places/add", url.Values{
		"name": {"Hampi"}, "state": {"Karnataka"}, "price_per_person": {"1500"},
	}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/places", rec.Header().Get("Location"))
	assert.Equal(t, []string{msgAdded}, f.flashes.Messages())
}

func TestAdd_FieldErrorsAreItemized(t *testing.T) {
	f := newFixture()
	errs := formparse.Errors{
		{Field: "price_per_person", Message: placesModels.MsgInvalidPrice},
		{Field: "duration_days", Message: placesModels.MsgInvalidDurationDays},
	}
	f.service.On("Create", mock.Anything, mock.Anything).Return(nil, invalidInput(errs))

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, postForm("/admin/places/add", url.Values{"name": {"Hampi"}}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/places/add", rec.Header().Get("Location"))
	assert.Equal(t, []string{placesModels.MsgInvalidPrice, placesModels.MsgInvalidDurationDays}, f.flashes.Messages())
}

func TestEdit_ValidationRedirectsToEdit(t *testing.T) {
	f := newFixture()
	errs := formparse.Errors{{Field: "required", Message: placesModels.MsgRequiredFields}}
	f.service.On("Update", mock.Anything, int64(4), mock.Anything).Return(nil, invalidInput(errs))

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, postForm("/admin/places/4/edit", url.Values{}))

	assert.Equal(t, "/admin/places/4/edit", rec.Header().Get("Location"))
	assert.Equal(t, []string{placesModels.MsgRequiredFields}, f.flashes.Messages())
}

func TestEdit_NotFound(t *testing.T) {
	f := newFixture()
	f.service.On("Update", mock.Anything, int64(4), mock.Anything).Return(nil, placesService.ErrPlaceNotFound)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, postForm("/admin/places/4/edit", url.Values{}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEditForm(t *testing.T) {
	f := newFixture()
	f.service.On("GetByID", mock.Anything, int64(4)).Return(&domain.Place{ID: 4, Name: "Hampi"}, nil)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/places/4/edit", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hampi", f.view.Page.Data.(FormPage).Place.Name)
}

func TestDelete_HasBookings(t *testing.T) {
	f := newFixture()
	f.service.On("Delete", mock.Anything, int64(4)).Return(placesService.ErrHasBookings)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, postForm("/admin/places/4/delete", url.Values{}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/places", rec.Header().Get("Location"))
	assert.Equal(t, []string{msgHasBookings}, f.flashes.Messages())
}

func TestDelete_Success(t *testing.T) {
	f := newFixture()
	f.service.On("Delete", mock.Anything, int64(4)).Return(nil)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, postForm("/admin/places/4/delete", url.Values{}))

	assert.Equal(t, []string{msgDeleted}, f.flashes.Messages())
}
