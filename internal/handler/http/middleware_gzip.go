package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// compressedTypes are the response content types chi's Compress middleware
// gzips for clients that accept it.
var compressedTypes = []string{"application/json", "text/plain"}

var gzipReaders = sync.Pool{
	New: func() any { return new(gzip.Reader) },
}

// withGzipRequest inflates request bodies sent with Content-Encoding: gzip.
// A body that is not valid gzip is answered with 400.
func withGzipRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zr := gzipReaders.Get().(*gzip.Reader)
		if err := zr.Reset(r.Body); err != nil {
			gzipReaders.Put(zr)
			http.Error(w, "invalid gzip body", http.StatusBadRequest)
			return
		}
		defer func() {
			zr.Close()
			gzipReaders.Put(zr)
		}()

		r.Body = gzipBody{Reader: zr, orig: r.Body}
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}

type gzipBody struct {
	*gzip.Reader
	orig io.Closer
}

func (b gzipBody) Close() error {
	return b.orig.Close()
}
