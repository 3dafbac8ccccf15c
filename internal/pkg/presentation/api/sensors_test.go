package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diwise/iot-facility-mgmt/internal/pkg/application/sensors"
	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
)

func TestCreateSensorReturnsCreatedRecord(t *testing.T) {
	is := is.New(t)

	svc := &sensors.SensorServiceMock{
		CreateFunc: func(ctx context.Context, sensor types.Sensor) (types.Sensor, error) {
			sensor.ID = "sensor-01"
			return sensor, nil
		},
	}

	res := doSensorRequest(svc, http.MethodPost, "/v1/sensors", `{"siteId":"site-01","name":"temp","unit":"C"}`)

	is.Equal(http.StatusCreated, res.Code)

	var sensor types.Sensor
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &sensor))
	is.Equal("sensor-01", sensor.ID)
	is.Equal("site-01", sensor.SiteID)
}

func TestQuerySensorsParsesSafeRangeFilter(t *testing.T) {
	is := is.New(t)

	var filter types.SensorFilter
	svc := &sensors.SensorServiceMock{
		QueryFunc: func(ctx context.Context, f types.SensorFilter) ([]types.Sensor, error) {
			filter = f
			return []types.Sensor{}, nil
		},
	}

	res := doSensorRequest(svc, http.MethodGet, "/v1/sensors?siteId=site-01&minSafe=2.5&maxSafe=40", "")

	is.Equal(http.StatusOK, res.Code)
	is.Equal("site-01", filter.SiteID)
	is.True(filter.MinSafe != nil)
	is.Equal(2.5, *filter.MinSafe)
	is.True(filter.MaxSafe != nil)
	is.Equal(40.0, *filter.MaxSafe)
}

func TestGetSensorReturns404OnUnknownID(t *testing.T) {
	is := is.New(t)

	svc := &sensors.SensorServiceMock{
		GetByIDFunc: func(ctx context.Context, sensorID string) (types.Sensor, error) {
			return types.Sensor{}, sensors.ErrSensorNotFound
		},
	}

	res := doSensorRequest(svc, http.MethodGet, "/v1/sensors/nosuchsensor", "")

	is.Equal(http.StatusNotFound, res.Code)
}

func TestUpdateSensorWithMalformedBodyReturns415(t *testing.T) {
	is := is.New(t)

	svc := &sensors.SensorServiceMock{}

	res := doSensorRequest(svc, http.MethodPut, "/v1/sensors/sensor-01", `not json`)

	is.Equal(http.StatusUnsupportedMediaType, res.Code)
}

func doSensorRequest(svc sensors.SensorService, method, target, body string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	RegisterSensorHandlers(context.Background(), router, svc, false)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	return res
}
