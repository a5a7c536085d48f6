package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yasinhessnawi1/Sakila_Backend/internal/models"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/utils"
)

// MockCatalogService is a mock implementation of the CatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) TopRentedFilms(ctx context.Context) ([]models.Film, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Film), args.Error(1)
}

func (m *MockCatalogService) TopActors(ctx context.Context) ([]models.Actor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Actor), args.Error(1)
}

func (m *MockCatalogService) GetFilm(ctx context.Context, id int64) (*models.Film, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Film), args.Error(1)
}

func (m *MockCatalogService) GetActor(ctx context.Context, id int64) (*models.ActorDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ActorDetail), args.Error(1)
}

func (m *MockCatalogService) SearchFilms(ctx context.Context, by, q string) ([]models.FilmSearchResult, error) {
	args := m.Called(ctx, by, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FilmSearchResult), args.Error(1)
}

// MockRentalService is a mock implementation of the RentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) Rent(ctx context.Context, req *models.RentRequest) (*models.RentResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RentResult), args.Error(1)
}

// withURLParam attaches a chi route parameter to the request
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// decodeError decodes a failure body
func decodeError(t *testing.T, rr *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}
