package server

import (
	_ "embed"
	"net/http"
	"strings"
)

//go:embed graphiql.html
var graphiqlPage []byte

// withGraphiQL serves the explorer to browsers and to GET requests that carry
// no query. Everything else goes to next.
func withGraphiQL(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("query") == "" || acceptsHTML(r) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			w.Write(graphiqlPage)
			return
		}
		next.ServeHTTP(w, r)
	}
}

func acceptsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
