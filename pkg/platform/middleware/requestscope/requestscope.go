// Package requestscope installs the per-request values every service depends
// on: a fixed request time, a correlation id, an actor id, and the
// last-issued-identity holder. All operations within a single HTTP request
// therefore share one "now" and one identity view.
package requestscope

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/pkg/requestcontext"
)

// Middleware captures the request time, assigns a request id, installs the
// correlation holder, and picks up the acting user from X-Actor-ID when the
// calling layer supplies one.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		ctx = requestcontext.WithRequestID(ctx, uuid.NewString())
		ctx = requestcontext.WithCorrelation(ctx)

		if raw := r.Header.Get("X-Actor-ID"); raw != "" {
			if actorID, err := strconv.ParseInt(raw, 10, 64); err == nil {
				ctx = requestcontext.WithActorID(ctx, actorID)
			}
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
