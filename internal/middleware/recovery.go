package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"vente-backend/pkg/utils"
)

// PanicRecovery turns a handler panic into a 500 so one bad request
// cannot take the server down. The stack goes to the log; the client
// gets a generic error body.
func PanicRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("[Recovery] %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
				utils.Error(w, http.StatusInternalServerError, "internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
