package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"travelbuddy/internal/web"
	"travelbuddy/pkg/cache"
	"travelbuddy/pkg/flash"
	"travelbuddy/pkg/idgen"
	"travelbuddy/pkg/logger"
	"travelbuddy/pkg/travelapi"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLister struct {
	mock.Mock
}

func (m *MockLister) ListDestinations(ctx context.Context, filter travelapi.DestinationFilter) ([]travelapi.Destination, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]travelapi.Destination), args.Error(1)
}

func setupRouter(t *testing.T, api DestinationLister) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ids, err := idgen.NewSnowflakeGenerator(1)
	require.NoError(t, err)
	store := flash.NewStore(cache.NewMemoryCache(), ids, 5, logger.Nop{})

	r := web.NewEngine(store.Middleware())
	NewHandler(api, store, logger.Nop{}).RegisterRoutes(r)
	return r
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestList_RendersCards(t *testing.T) {
	api := new(MockLister)
	api.On("ListDestinations", mock.Anything, travelapi.DestinationFilter{}).Return([]travelapi.Destination{
		{ID: 1, Name: "Lisbon", Country: "Portugal", TypicalCost: 1200, ShortDescription: "Hills and trams", SuitableAgeGroups: []travelapi.AgeGroup{travelapi.AgeGroupAdult}},
		{ID: 2, Name: "Kyoto", Country: "Japan", TypicalCost: 1500},
	}, nil)

	w := get(setupRouter(t, api), "/destinations")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, 2, strings.Count(body, "destination-card"))
	assert.Contains(t, body, `href="/destinations/1"`)
	assert.Contains(t, body, `href="/destinations/2"`)
	assert.Contains(t, body, "$1,200")
	assert.Contains(t, body, "photo-1500835556837", "cards without an image use the placeholder")
	assert.Contains(t, body, `id="destinations" data-state="loaded"`)
	assert.NotContains(t, body, `id="empty-state"`)
	api.AssertExpectations(t)
}

func TestList_FilterFromURLWithNoResults(t *testing.T) {
	api := new(MockLister)
	api.On("ListDestinations", mock.Anything, travelapi.DestinationFilter{
		AgeGroup:  travelapi.AgeGroupSenior,
		MaxBudget: 200,
	}).Return([]travelapi.Destination{}, nil)

	w := get(setupRouter(t, api), "/destinations?ageGroup=SENIOR&budget=200")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `id="empty-state" data-state="empty"`)
	assert.Contains(t, body, "Show All Destinations")
	assert.Contains(t, body, `<option value="SENIOR" selected>`)
	assert.Contains(t, body, `value="200"`)
	api.AssertExpectations(t)
}

func TestList_DropsInvalidFilterValues(t *testing.T) {
	api := new(MockLister)
	api.On("ListDestinations", mock.Anything, travelapi.DestinationFilter{}).Return([]travelapi.Destination{}, nil)

	w := get(setupRouter(t, api), "/destinations?ageGroup=TODDLER&budget=-5")

	assert.Equal(t, http.StatusOK, w.Code)
	api.AssertExpectations(t)
}

func TestList_FailureShowsNoticeAndEmptyState(t *testing.T) {
	api := new(MockLister)
	api.On("ListDestinations", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	w := get(setupRouter(t, api), "/destinations")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, loadFailedMessage)
	assert.Contains(t, body, "notice-error")
	assert.Contains(t, body, `id="empty-state" data-state="failed"`)
}

func TestApply_RedirectsWithSetFiltersOnly(t *testing.T) {
	cases := []struct {
		name string
		form url.Values
		want string
	}{
		{name: "none", form: url.Values{"ageGroup": {""}, "budget": {""}}, want: "/destinations"},
		{name: "age group", form: url.Values{"ageGroup": {"STUDENT"}, "budget": {""}}, want: "/destinations?ageGroup=STUDENT"},
		{name: "budget", form: url.Values{"budget": {"750"}}, want: "/destinations?budget=750"},
		{name: "both", form: url.Values{"ageGroup": {"SENIOR"}, "budget": {"200"}}, want: "/destinations?ageGroup=SENIOR&budget=200"},
		{name: "garbage", form: url.Values{"ageGroup": {"ALIENS"}, "budget": {"lots"}}, want: "/destinations"},
	}

	api := new(MockLister)
	r := setupRouter(t, api)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/destinations/filter", strings.NewReader(tc.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, tc.want, w.Header().Get("Location"))
		})
	}
	api.AssertNotCalled(t, "ListDestinations", mock.Anything, mock.Anything)
}

func TestHome(t *testing.T) {
	w := get(setupRouter(t, new(MockLister)), "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `href="/destinations"`)
}
