package http

import (
	"net/http"
	"strconv"
	"time"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// userHeader carries the caller's identity, set by the (external) gateway.
const userHeader = "X-Sharer-User-Id"

// RequestLogging tags every request with an id and logs it with its timing.
func RequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)
		logger.WithRequest(requestID).Info("request handled",
			"method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

// callerID reads the identity header. A missing or malformed header is a
// validation error, not an authentication failure; there is no auth model
// behind it.
func callerID(r *http.Request) (int32, error) {
	raw := r.Header.Get(userHeader)
	if raw == "" {
		return 0, domain.Validationf("missing %s header", userHeader)
	}
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, domain.Validationf("invalid %s header: %s", userHeader, raw)
	}
	return int32(id), nil
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, domain.Validationf("invalid %s: %s", name, raw)
	}
	return int32(id), nil
}

// pageParams reads the from/size query parameters with their defaults.
func pageParams(r *http.Request) (int32, int32, error) {
	from, err := queryInt(r, "from", 0)
	if err != nil {
		return 0, 0, err
	}
	size, err := queryInt(r, "size", 20)
	if err != nil {
		return 0, 0, err
	}
	if from < 0 || size <= 0 {
		return 0, 0, domain.Validationf("invalid pagination: from=%d size=%d", from, size)
	}
	return from, size, nil
}

func queryInt(r *http.Request, name string, def int32) (int32, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, domain.Validationf("invalid %s: %s", name, raw)
	}
	return int32(v), nil
}
