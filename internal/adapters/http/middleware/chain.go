package middleware

import (
	"net/http"
	"slices"
)

// Chain folds middlewares into one; the first runs outermost.
// Chain() is the identity.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		for _, mw := range slices.Backward(middlewares) {
			h = mw(h)
		}
		return h
	}
}
