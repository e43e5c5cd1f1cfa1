package middleware

import (
	"fmt"
	"net/http"

	"github.com/mrokonuzzaman040/techpinik-sub000/api/responses"
	pkgerrors "github.com/mrokonuzzaman040/techpinik-sub000/pkg/errors"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/logger"
)

// Recoverer converts panics into 500 responses instead of dropping the
// connection.
func Recoverer(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					err := pkgerrors.Wrap(pkgerrors.CodeInternal,
						fmt.Errorf("panic: %v", rec), "request handler panicked")
					responses.WriteError(r.Context(), w, logg, err)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
