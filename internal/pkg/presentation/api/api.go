package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

// writeJSON marshals v and writes it with the given status code. A
// marshalling failure downgrades the response to a plain 500.
func writeJSON(w http.ResponseWriter, log *slog.Logger, statusCode int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error("unable to marshal response body", "err", err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(b)
}

// writeInternalError suppresses the error body in production mode and
// echoes it verbatim otherwise.
func writeInternalError(w http.ResponseWriter, err error, production bool) {
	if production {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func parseLimitSkip(r *http.Request) (int, int) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	return limit, skip
}

func parseTags(r *http.Request) []string {
	tags := r.URL.Query().Get("tags")
	if tags == "" {
		return nil
	}

	parts := strings.Split(tags, ",")
	result := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}

	return result
}
