package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Created("college", "researching")
		m.Transition("college", "researching", "submitted")
		m.Deleted("college")
	})

	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusTeapot) })
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
}

func TestCounters(t *testing.T) {
	m := New()
	m.Created("scholarship", "interested")
	m.Created("scholarship", "interested")
	m.Transition("scholarship", "interested", "submitted")
	m.Deleted("scholarship")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.created.WithLabelValues("scholarship", "interested")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("scholarship", "interested", "submitted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.deleted.WithLabelValues("scholarship")))
}

func TestMiddleware_LabelsByRouteTemplate(t *testing.T) {
	m := New()
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/items/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/fail", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusConflict, "dup") })

	for _, p := range []string{"/items/1", "/items/2", "/fail"} {
		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, p, nil))
		require.NoError(t, err)
	}
	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/items/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/fail", "409")))
}
