package server

import (
	"net/http"
	"os"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/ryokushen/devserver/internal/logging"
)

// CORS header values sent on every response. Browsers loading ES modules
// from file-backed pages need these even for same-host requests.
const (
	corsAllowOrigin  = "*"
	corsAllowMethods = "GET, POST, OPTIONS"
	corsAllowHeaders = "Content-Type"
)

// jsContentType overrides whatever the platform MIME tables say for .js;
// some systems still map it to text/plain, which breaks module imports.
const jsContentType = "application/javascript"

// staticHandler serves files under root with CORS and MIME fixups.
type staticHandler struct {
	root string
	// fileServer provides directory listings and index.html semantics.
	fileServer http.Handler
}

// NewHandler returns the handler serving static files under root.
func NewHandler(root string) http.Handler {
	return &staticHandler{
		root:       root,
		fileServer: http.FileServer(http.Dir(root)),
	}
}

func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logging.Debug("request", "method", r.Method, "path", r.URL.Path)

	header := w.Header()
	header.Set("Access-Control-Allow-Origin", corsAllowOrigin)
	header.Set("Access-Control-Allow-Methods", corsAllowMethods)
	header.Set("Access-Control-Allow-Headers", corsAllowHeaders)

	// Preflight: bare success, no body.
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	// ServeContent honors a pre-set Content-Type, so the override only
	// needs to land before the file server writes.
	if strings.HasSuffix(r.URL.Path, ".js") {
		header.Set("Content-Type", jsContentType)
	}

	// Resolve the request path with symlinks confined to the root;
	// http.Dir alone would follow a symlink out of the served tree.
	full, err := securejoin.SecureJoin(h.root, r.URL.Path)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	info, err := os.Stat(full)
	if err != nil {
		// Missing, or a symlink whose confined resolution points at
		// nothing. Never hand these to http.Dir, which would follow
		// the raw symlink.
		http.NotFound(w, r)
		return
	}

	if !info.IsDir() {
		http.ServeFile(w, r, full)
		return
	}

	// Directories keep the standard file server semantics: index.html,
	// listings, and the trailing-slash redirect.
	h.fileServer.ServeHTTP(w, r)
}
