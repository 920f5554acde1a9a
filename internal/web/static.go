package web

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/JonMunkholm/nftmeta/internal/logging"
)

// staticPrefix is where the static dir is exposed.
const staticPrefix = "/nft"

// serveStatic serves regular files from the static dir for GET and HEAD
// requests under /nft/. Anything else (directories, dotfiles, missing
// files) falls through to the next handler.
func (s *Server) serveStatic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}

		full, ok := resolveStatic(s.staticDir, strings.TrimPrefix(r.URL.Path, staticPrefix))
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		f, err := os.Open(full)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil || !info.Mode().IsRegular() {
			next.ServeHTTP(w, r)
			return
		}

		logging.FromContext(r.Context()).Debug("serving static file", "file", full)
		http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	})
}

// resolveStatic maps a URL path below the prefix to a file inside dir.
// Cleaning against "/" keeps the result inside dir.
func resolveStatic(dir, urlPath string) (string, bool) {
	name := path.Clean("/" + urlPath)
	if name == "/" {
		return "", false
	}

	for _, seg := range strings.Split(name[1:], "/") {
		if strings.HasPrefix(seg, ".") {
			return "", false
		}
	}

	return filepath.Join(dir, filepath.FromSlash(name)), true
}
