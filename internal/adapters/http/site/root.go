// Package site serves the embedded landing page and its assets.
package site

import (
	"context"
	"net/http"
)

// Register attaches the landing page routes to mux.
//
//	GET /          -> index.html
//	GET /static/*  -> embedded assets
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.HandleFunc("GET /{$}", NewRootHandler().HandleRoot)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(FS()))))
}

// RootHandler handles root path requests.
type RootHandler struct{}

// NewRootHandler creates a new root handler.
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// HandleRoot serves index.html.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, FS(), "index.html")
}
