package routing

import (
	"context"
	"net/http"
)

type routeKey struct{}

// WithRoute returns a context carrying the matched route.
func WithRoute(ctx context.Context, r Route) context.Context {
	return context.WithValue(ctx, routeKey{}, r)
}

// RouteFrom returns the route stored by WithRoute.
func RouteFrom(ctx context.Context) (Route, bool) {
	r, ok := ctx.Value(routeKey{}).(Route)
	return r, ok
}

// Handler dispatches requests to the view of the route matching the request path.
// The matched route is available to the view through RouteFrom.
// Unmatched paths are served by fallback, or answered with 404 when fallback is nil.
func (t *Table) Handler(fallback http.Handler) http.Handler {
	if fallback == nil {
		fallback = http.NotFoundHandler()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route, err := t.Resolve(r.URL.Path)
		if err != nil {
			fallback.ServeHTTP(w, r)
			return
		}
		route.View.ServeHTTP(w, r.WithContext(WithRoute(r.Context(), route)))
	})
}
