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

// NewSensorServer spins up an in memory stand in for the sensor backend.
func NewSensorServer() *httptest.Server {
	var mu sync.Mutex
	store := map[string]types.Sensor{}

	r := chi.NewRouter()

	r.Post("/v1/sensors", func(w http.ResponseWriter, req *http.Request) {
		var sensor types.Sensor
		if json.NewDecoder(req.Body).Decode(&sensor) != nil {
			w.WriteHeader(http.StatusUnsupportedMediaType)
			return
		}

		sensor.ID = uuid.NewString()

		mu.Lock()
		store[sensor.ID] = sensor
		mu.Unlock()

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(sensor)
	})

	r.Get("/v1/sensors", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()

		mu.Lock()
		result := make([]types.Sensor, 0, len(store))
		for _, sensor := range store {
			result = append(result, sensor)
		}
		mu.Unlock()

		sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })

		result = slices.DeleteFunc(result, func(sensor types.Sensor) bool {
			if siteID := q.Get("siteId"); siteID != "" && sensor.SiteID != siteID {
				return true
			}
			if name := q.Get("name"); name != "" && !strings.Contains(strings.ToLower(sensor.Name), strings.ToLower(name)) {
				return true
			}
			if v := q.Get("minSafe"); v != "" {
				if min, err := strconv.ParseFloat(v, 64); err == nil && sensor.MinSafe < min {
					return true
				}
			}
			if v := q.Get("maxSafe"); v != "" {
				if max, err := strconv.ParseFloat(v, 64); err == nil && sensor.MaxSafe > max {
					return true
				}
			}
			return false
		})

		json.NewEncoder(w).Encode(result)
	})

	r.Get("/v1/sensors/{sensorID}", func(w http.ResponseWriter, req *http.Request) {
		mu.Lock()
		sensor, ok := store[chi.URLParam(req, "sensorID")]
		mu.Unlock()

		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		json.NewEncoder(w).Encode(sensor)
	})

	r.Put("/v1/sensors/{sensorID}", func(w http.ResponseWriter, req *http.Request) {
		sensorID := chi.URLParam(req, "sensorID")

		var sensor types.Sensor
		if json.NewDecoder(req.Body).Decode(&sensor) != nil {
			w.WriteHeader(http.StatusUnsupportedMediaType)
			return
		}

		mu.Lock()
		defer mu.Unlock()

		if _, ok := store[sensorID]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		sensor.ID = sensorID
		store[sensorID] = sensor
		w.WriteHeader(http.StatusNoContent)
	})

	r.Delete("/v1/sensors/{sensorID}", func(w http.ResponseWriter, req *http.Request) {
		sensorID := chi.URLParam(req, "sensorID")

		mu.Lock()
		defer mu.Unlock()

		if _, ok := store[sensorID]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		delete(store, sensorID)
		json.NewEncoder(w).Encode(map[string]bool{"deleted": true})
	})

	return httptest.NewServer(r)
}
