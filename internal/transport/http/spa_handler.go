package http

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// SPAHandler serves the built web client. Files that exist are served as they are. Any
// other client path gets index.html so routes like /onboarding and /dashboard resolve in
// the browser.
type SPAHandler struct {
	static fs.FS
	files  http.Handler
}

// NewSPAHandler serves the client found in static, which must hold index.html at its root.
func NewSPAHandler(static fs.FS) *SPAHandler {
	return &SPAHandler{static: static, files: http.FileServer(http.FS(static))}
}

func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")

	// unknown API routes are not client pages
	if name == "api" || strings.HasPrefix(name, "api/") {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	if name == "" || name == "index.html" {
		h.serveIndex(w)
		return
	}

	stat, err := fs.Stat(h.static, name)
	switch {
	case errors.Is(err, fs.ErrNotExist), err == nil && stat.IsDir():
		h.serveIndex(w)
		return
	case err != nil:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// bundler output under assets/ is content-hashed
	if strings.HasPrefix(name, "assets/") {
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	}
	h.files.ServeHTTP(w, r)
}

func (h *SPAHandler) serveIndex(w http.ResponseWriter) {
	content, err := fs.ReadFile(h.static, "index.html")
	if err != nil {
		http.Error(w, "index.html not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}
