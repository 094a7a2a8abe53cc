// Package middleware provides HTTP middleware for the preview server.
//
// # OpenTelemetry Middleware
//
// OpenTelemetry starts a server span per request, named after the matched
// chi route pattern. Render spans started by the tree walker nest under it.
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithRequestFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// # Prometheus Metrics
//
// Prometheus counts and times requests by route pattern:
//   - sdui_http_requests_total: Requests by route, method and status
//   - sdui_http_request_duration_seconds: Request duration histogram
//   - sdui_http_requests_in_flight: Requests being served
//
//	r.Use(middleware.Prometheus(middleware.WithRegistry(m.Registry())))
//	r.Handle("/metrics", m.Handler())
package middleware
