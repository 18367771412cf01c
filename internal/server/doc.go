// Package server provides HTTP routing, middleware, and the service handlers.
//
// # Router Infrastructure
//
// The [BasicRouter] uses [http.ServeMux] internally. [Middleware] wraps
// handlers in reverse order (first added executes outermost), following the
// standard Go pattern. Custom handlers implement the [Handler] interface,
// which wraps the stdlib handler interface and adds routes, allowing
// handlers to encapsulate their own route definitions.
//
// # Service surface
//
// Two routes are exposed to the mixtape UI collaborator:
//
//	GET  /health        → liveness probe, no auth
//	POST /search-track  → one track resolution per request
//
// The middleware stack (request logging with generated ids, panic
// recovery, permissive CORS for the browser UI) applies to both. The
// search handler is the only layer translating resolution outcomes into
// status codes and the fixed user-facing error strings; nothing upstream
// of it writes HTTP responses.
package server
