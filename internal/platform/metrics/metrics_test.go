package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Middleware(t *testing.T) {
	m := New()

	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/companies/:handle", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	app.Get("/metrics", m.Handler())

	for _, handle := range []string{"c1", "c2"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/companies/"+handle, nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	require.Equal(t, float64(2), testutil.ToFloat64(m.requests.WithLabelValues("/companies/:handle", http.MethodGet, "200")))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "jobly_http_requests_total")
	require.Contains(t, string(body), `route="/companies/:handle"`)
}
