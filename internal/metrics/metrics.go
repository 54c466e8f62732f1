package metrics

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts HTTP requests per route and status. Exposed on /metrics
// via promhttp in main.
type Metrics struct {
	reqTotal *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{}
	m.reqTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "webcal",
		Name:      "requests_total",
		Help:      "Number of HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	prometheus.MustRegister(m.reqTotal)
	return m
}

// Middleware returns an echo middleware recording every request.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}
			m.reqTotal.WithLabelValues(c.Request().Method, c.Path(), strconv.Itoa(status)).Inc()
			return err
		}
	}
}
