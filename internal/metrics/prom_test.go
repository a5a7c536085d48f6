package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveDBQuery(t *testing.T) {
	okBefore := testutil.ToFloat64(DBQueries.WithLabelValues("film_by_id", statusOK))
	errBefore := testutil.ToFloat64(DBQueries.WithLabelValues("film_by_id", statusError))

	ObserveDBQuery("film_by_id", nil)
	ObserveDBQuery("film_by_id", nil)
	ObserveDBQuery("film_by_id", errors.New("boom"))

	assert.Equal(t, okBefore+2, testutil.ToFloat64(DBQueries.WithLabelValues("film_by_id", statusOK)))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(DBQueries.WithLabelValues("film_by_id", statusError)))
}

func TestObserveRental(t *testing.T) {
	before := testutil.ToFloat64(Rentals.WithLabelValues("created"))

	ObserveRental("created")

	assert.Equal(t, before+1, testutil.ToFloat64(Rentals.WithLabelValues("created")))
}

func TestObserveHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/api/films/{film_id:[0-9]+}", "200"))

	ObserveHTTPRequest("GET", "/api/films/{film_id:[0-9]+}", 200, 15*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/api/films/{film_id:[0-9]+}", "200")))
}

func TestHandlerExposesCollectors(t *testing.T) {
	ObserveRental("no_copies")

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "sakila_rentals_total")
	assert.Contains(t, rr.Body.String(), `outcome="no_copies"`)
}
