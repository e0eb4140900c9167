package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
)

var compressJSON = middleware.Compress(gzip.DefaultCompression, "application/json")

// withGZip accepts gzip request bodies and gzips JSON responses for clients
// that send Accept-Encoding: gzip.
func withGZip(next http.Handler) http.Handler {
	return decompressRequest(compressJSON(next))
}

func decompressRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") || r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		zr, err := gzip.NewReader(r.Body)
		if err != nil {
			writeError(w, r, ErrInvalidJSON)
			return
		}
		defer zr.Close()

		r.Body = io.NopCloser(zr)
		r.ContentLength = -1
		r.Header.Del("Content-Encoding")
		r.Header.Del("Content-Length")

		next.ServeHTTP(w, r)
	})
}
