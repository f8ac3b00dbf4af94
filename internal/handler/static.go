package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// StaticHandler serves files under a fixed content root. Directory paths
// resolve to their index.html; anything unresolved is a 404.
type StaticHandler struct {
	staticDir string
	indexFile string
}

func NewStaticHandler(staticDir string) *StaticHandler {
	return &StaticHandler{
		staticDir: staticDir,
		indexFile: "index.html",
	}
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "*")
	if path == "" {
		path = h.indexFile
	}

	if strings.HasPrefix(path, "api/") {
		http.NotFound(w, r)
		return
	}

	if !filepath.IsLocal(path) {
		http.NotFound(w, r)
		return
	}

	target := filepath.Join(h.staticDir, filepath.FromSlash(path))
	info, err := os.Stat(target)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if info.IsDir() {
		target = filepath.Join(target, h.indexFile)
		info, err = os.Stat(target)
		if err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}
	}

	if !info.Mode().IsRegular() {
		http.NotFound(w, r)
		return
	}

	h.serveFile(w, r, target, info)
}

// serveFile avoids http.ServeFile so requests naming index.html directly
// are not redirected.
func (h *StaticHandler) serveFile(w http.ResponseWriter, r *http.Request, target string, info os.FileInfo) {
	f, err := os.Open(target)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	http.ServeContent(w, r, filepath.Base(target), info.ModTime(), f)
}
