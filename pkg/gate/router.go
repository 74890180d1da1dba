package gate

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes builds a chi router with every handler wrapped by the guard.
//
// Example:
//
//	guard := gate.NewGuard(eng, gate.ContextSource{}, cfg,
//	    gate.WithPermission(rbac.ResourceEmployees, rbac.ActionRead))
//
//	r := chi.NewRouter()
//	r.Mount("/employees", gate.Routes(guard, map[string]http.Handler{
//	    "/":        listHandler,
//	    "/{id}":    detailHandler,
//	}))
func Routes(guard *Guard, routes map[string]http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(guard.Middleware)
	for pattern, h := range routes {
		r.Handle(pattern, h)
	}
	return r
}
