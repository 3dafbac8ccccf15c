package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// NewSiteServer spins up an in memory stand in for the site backend,
// good enough for client and gateway tests.
func NewSiteServer() *httptest.Server {
	var mu sync.Mutex
	store := map[string]types.Site{}

	r := chi.NewRouter()

	r.Post("/v1/sites", func(w http.ResponseWriter, req *http.Request) {
		var site types.Site
		if json.NewDecoder(req.Body).Decode(&site) != nil {
			w.WriteHeader(http.StatusUnsupportedMediaType)
			return
		}

		site.ID = uuid.NewString()
		if site.Tags == nil {
			site.Tags = []string{}
		}

		mu.Lock()
		store[site.ID] = site
		mu.Unlock()

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(site)
	})

	r.Get("/v1/sites", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()

		mu.Lock()
		result := make([]types.Site, 0, len(store))
		for _, site := range store {
			result = append(result, site)
		}
		mu.Unlock()

		sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })

		result = slices.DeleteFunc(result, func(site types.Site) bool {
			if name := q.Get("name"); name != "" && !strings.Contains(strings.ToLower(site.Name), strings.ToLower(name)) {
				return true
			}
			if loc := q.Get("location"); loc != "" && !strings.Contains(strings.ToLower(site.Location), strings.ToLower(loc)) {
				return true
			}
			if tags := q.Get("tags"); tags != "" {
				for _, tag := range strings.Split(tags, ",") {
					if !slices.Contains(site.Tags, tag) {
						return true
					}
				}
			}
			return false
		})

		if skip, _ := strconv.Atoi(q.Get("skip")); skip > 0 {
			if skip > len(result) {
				skip = len(result)
			}
			result = result[skip:]
		}
		if limit, _ := strconv.Atoi(q.Get("limit")); limit > 0 && limit < len(result) {
			result = result[:limit]
		}

		json.NewEncoder(w).Encode(result)
	})

	r.Get("/v1/sites/{siteID}", func(w http.ResponseWriter, req *http.Request) {
		mu.Lock()
		site, ok := store[chi.URLParam(req, "siteID")]
		mu.Unlock()

		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		json.NewEncoder(w).Encode(site)
	})

	r.Put("/v1/sites/{siteID}", func(w http.ResponseWriter, req *http.Request) {
		siteID := chi.URLParam(req, "siteID")

		var site types.Site
		if json.NewDecoder(req.Body).Decode(&site) != nil {
			w.WriteHeader(http.StatusUnsupportedMediaType)
			return
		}

		mu.Lock()
		defer mu.Unlock()

		if _, ok := store[siteID]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		site.ID = siteID
		store[siteID] = site
		w.WriteHeader(http.StatusNoContent)
	})

	r.Patch("/v1/sites/{siteID}", func(w http.ResponseWriter, req *http.Request) {
		siteID := chi.URLParam(req, "siteID")

		var fields map[string]any
		if json.NewDecoder(req.Body).Decode(&fields) != nil {
			w.WriteHeader(http.StatusUnsupportedMediaType)
			return
		}

		mu.Lock()
		defer mu.Unlock()

		site, ok := store[siteID]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		if v, ok := fields["name"].(string); ok {
			site.Name = v
		}
		if v, ok := fields["location"].(string); ok {
			site.Location = v
		}
		if v, ok := fields["priority"].(float64); ok {
			site.Priority = int(v)
		}
		if v, ok := fields["tags"].([]any); ok {
			tags := make([]string, 0, len(v))
			for _, t := range v {
				if s, ok := t.(string); ok {
					tags = append(tags, s)
				}
			}
			site.Tags = tags
		}

		store[siteID] = site
		json.NewEncoder(w).Encode(site)
	})

	r.Delete("/v1/sites/{siteID}", func(w http.ResponseWriter, req *http.Request) {
		siteID := chi.URLParam(req, "siteID")

		mu.Lock()
		defer mu.Unlock()

		if _, ok := store[siteID]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		delete(store, siteID)
		json.NewEncoder(w).Encode(map[string]bool{"deleted": true})
	})

	return httptest.NewServer(r)
}
