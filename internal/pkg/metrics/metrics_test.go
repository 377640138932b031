package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	router := gin.New()
	router.Use(Middleware())
	router.GET("/Seller/Details/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/Seller/Details/:id", "200"))

	for _, path := range []string{"/Seller/Details/1", "/Seller/Details/2"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	after := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/Seller/Details/:id", "200"))
	assert.Equal(t, 2.0, after-before)
}

func TestMiddleware_UnmatchedRoute(t *testing.T) {
	router := gin.New()
	router.Use(Middleware())

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, unmatchedRoute, "404"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere/123", nil))

	after := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, unmatchedRoute, "404"))
	assert.Equal(t, 1.0, after-before)
}

func TestRecordSeedRows(t *testing.T) {
	before := testutil.ToFloat64(seedRows.WithLabelValues("departments"))
	RecordSeedRows("departments", 4)
	RecordSeedRows("departments", 0)
	assert.Equal(t, 4.0, testutil.ToFloat64(seedRows.WithLabelValues("departments"))-before)
}

func TestHandler_ExposesRegistry(t *testing.T) {
	RecordSeedRows("sellers", 1)

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "salesweb_seed_rows_inserted_total")
}
