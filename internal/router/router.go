package router

import (
	"net/http"
	"slices"
)

// Router wraps http.ServeMux with middleware chaining
type Router struct {
	mux   *http.ServeMux
	chain []Middleware
}

// Middleware is a function that wraps an http.Handler
type Middleware func(http.Handler) http.Handler

// New creates a new Router with optional global middleware
func New(middleware ...Middleware) *Router {
	return &Router{
		mux:   http.NewServeMux(),
		chain: middleware,
	}
}

// ServeHTTP implements http.Handler
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Get, Post, Put and Delete register a route for one method. Route
// middleware runs after the router's own chain.
func (r *Router) Get(pattern string, h http.HandlerFunc, mw ...Middleware) {
	r.Handle(http.MethodGet, pattern, h, mw...)
}

func (r *Router) Post(pattern string, h http.HandlerFunc, mw ...Middleware) {
	r.Handle(http.MethodPost, pattern, h, mw...)
}

func (r *Router) Put(pattern string, h http.HandlerFunc, mw ...Middleware) {
	r.Handle(http.MethodPut, pattern, h, mw...)
}

func (r *Router) Delete(pattern string, h http.HandlerFunc, mw ...Middleware) {
	r.Handle(http.MethodDelete, pattern, h, mw...)
}

// Handle registers h for "METHOD pattern".
func (r *Router) Handle(method, pattern string, h http.Handler, mw ...Middleware) {
	r.mux.Handle(method+" "+pattern, Wrap(h, append(slices.Clone(r.chain), mw...)...))
}

// NotFound registers the handler for requests no route matches. It runs
// behind the router's middleware like any other route.
func (r *Router) NotFound(h http.HandlerFunc) {
	r.mux.Handle("/", Wrap(h, r.chain...))
}

// Group returns a router sharing the same mux whose routes also run mw.
func (r *Router) Group(mw ...Middleware) *Router {
	return &Router{
		mux:   r.mux,
		chain: append(slices.Clone(r.chain), mw...),
	}
}

// Wrap applies middleware around h so the first one listed runs first. The
// server uses it for layers that must see unrouted requests too, such as
// CORS preflights.
func Wrap(h http.Handler, middleware ...Middleware) http.Handler {
	for i := len(middleware) - 1; i >= 0; i-- {
		h = middleware[i](h)
	}
	return h
}
