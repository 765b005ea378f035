package middleware

import (
	"net/http"

	"github.com/staffly/ems-backend-go/internal/handler/http/response"
)

// Readiness is implemented by stores that load their snapshot asynchronously
// at startup.
type Readiness interface {
	Ready() bool
}

// StoreReady answers 503 until every store has finished its initial read from
// durable storage. Until then, identity and data are unknown rather than
// empty.
func StoreReady(stores ...Readiness) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, store := range stores {
				if !store.Ready() {
					response.ServiceUnavailable(w, "Store is still loading, try again shortly")
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
