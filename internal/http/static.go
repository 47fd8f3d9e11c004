package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// noRoute answers unknown API paths with the JSON envelope and, when a static
// directory is configured, serves the frontend bundle for everything else.
func (h *Handler) noRoute(c *gin.Context) {
	p := c.Request.URL.Path
	if h.opts.StaticDir == "" || strings.HasPrefix(p, "/api/") || p == "/api" {
		endpointNotFound(c)
		return
	}
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		endpointNotFound(c)
		return
	}

	root := filepath.Clean(h.opts.StaticDir)
	if file, ok := regularFile(root, path.Clean("/"+p)); ok {
		c.File(file)
		return
	}
	if index, ok := regularFile(root, "/index.html"); ok {
		c.File(index)
		return
	}
	endpointNotFound(c)
}

func regularFile(root, urlPath string) (string, bool) {
	full := filepath.Join(root, filepath.FromSlash(urlPath))
	if rel, err := filepath.Rel(root, full); err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return "", false
	}
	return full, true
}
