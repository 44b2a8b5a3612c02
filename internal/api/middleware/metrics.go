package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const unknownRoute = "unknown"

// MetricsMiddleware пишет количество и длительность HTTP запросов.
// Маршрут берется из шаблона mux, чтобы не плодить метки по значениям параметров.
func MetricsMiddleware(m HTTPMetrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			m.ObserveHTTPRequest(routeTemplate(r), r.Method, rec.status, time.Since(start))
		})
	}
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return unknownRoute
	}
	tpl, err := route.GetPathTemplate()
	if err != nil {
		return unknownRoute
	}
	return tpl
}
