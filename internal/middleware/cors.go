package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors allows credentialed cross-origin requests. The route table only
// serves HEAD, GET and POST, so nothing else is advertised in preflight.
func Cors() func(http.Handler) http.Handler {
	options := cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
	return cors.New(options).Handler
}
