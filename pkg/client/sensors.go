package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/diwise/iot-facility-mgmt/pkg/types"
)

type SensorClient interface {
	Create(ctx context.Context, sensor types.Sensor) (types.Sensor, error)
	All(ctx context.Context, filter types.SensorFilter) ([]types.Sensor, error)
	Get(ctx context.Context, sensorID string) (types.Sensor, error)
	Update(ctx context.Context, sensor types.Sensor) error
	Delete(ctx context.Context, sensorID string) error
}

type sensorClient struct {
	httpBackend
	metrics *Metrics
}

func NewSensorClient(sensorSvcURL string, m *Metrics) SensorClient {
	return &sensorClient{
		httpBackend: newHTTPBackend(sensorSvcURL),
		metrics:     m,
	}
}

func (c *sensorClient) Create(ctx context.Context, sensor types.Sensor) (types.Sensor, error) {
	return exec(ctx, c.metrics, "create-sensor", "sensor-svc", func(ctx context.Context) (types.Sensor, error) {
		body, code, err := c.do(ctx, http.MethodPost, c.url+"/v1/sensors", sensor)
		if err != nil {
			return types.Sensor{}, err
		}
		if code != http.StatusCreated {
			return types.Sensor{}, fmt.Errorf("create sensor failed with status code %d", code)
		}

		var created types.Sensor
		err = json.Unmarshal(body, &created)
		if err != nil {
			return types.Sensor{}, fmt.Errorf("failed to unmarshal response body: %w", err)
		}

		return created, nil
	})
}

func (c *sensorClient) All(ctx context.Context, filter types.SensorFilter) ([]types.Sensor, error) {
	return exec(ctx, c.metrics, "all-sensors", "sensor-svc", func(ctx context.Context) ([]types.Sensor, error) {
		q := url.Values{}
		if filter.SiteID != "" {
			q.Set("siteId", filter.SiteID)
		}
		if filter.Name != "" {
			q.Set("name", filter.Name)
		}
		if filter.MinSafe != nil {
			q.Set("minSafe", strconv.FormatFloat(*filter.MinSafe, 'f', -1, 64))
		}
		if filter.MaxSafe != nil {
			q.Set("maxSafe", strconv.FormatFloat(*filter.MaxSafe, 'f', -1, 64))
		}
		if filter.Limit > 0 {
			q.Set("limit", strconv.Itoa(filter.Limit))
		}
		if filter.Skip > 0 {
			q.Set("skip", strconv.Itoa(filter.Skip))
		}

		u := c.url + "/v1/sensors"
		if len(q) > 0 {
			u += "?" + q.Encode()
		}

		body, code, err := c.do(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		if code != http.StatusOK {
			return nil, fmt.Errorf("query sensors failed with status code %d", code)
		}

		result := []types.Sensor{}
		err = json.Unmarshal(body, &result)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal response body: %w", err)
		}

		return result, nil
	})
}

func (c *sensorClient) Get(ctx context.Context, sensorID string) (types.Sensor, error) {
	return exec(ctx, c.metrics, "get-sensor", "sensor-svc", func(ctx context.Context) (types.Sensor, error) {
		body, code, err := c.do(ctx, http.MethodGet, c.url+"/v1/sensors/"+sensorID, nil)
		if err != nil {
			return types.Sensor{}, err
		}
		if code == http.StatusNotFound {
			return types.Sensor{}, ErrNotFound
		}
		if code != http.StatusOK {
			return types.Sensor{}, fmt.Errorf("get sensor failed with status code %d", code)
		}

		var sensor types.Sensor
		err = json.Unmarshal(body, &sensor)
		if err != nil {
			return types.Sensor{}, fmt.Errorf("failed to unmarshal response body: %w", err)
		}

		return sensor, nil
	})
}

func (c *sensorClient) Update(ctx context.Context, sensor types.Sensor) error {
	_, err := exec(ctx, c.metrics, "update-sensor", "sensor-svc", func(ctx context.Context) (struct{}, error) {
		_, code, err := c.do(ctx, http.MethodPut, c.url+"/v1/sensors/"+sensor.ID, sensor)
		if err != nil {
			return struct{}{}, err
		}
		if code == http.StatusNotFound {
			return struct{}{}, ErrNotFound
		}
		if code != http.StatusNoContent {
			return struct{}{}, fmt.Errorf("update sensor failed with status code %d", code)
		}

		return struct{}{}, nil
	})
	return err
}

func (c *sensorClient) Delete(ctx context.Context, sensorID string) error {
	_, err := exec(ctx, c.metrics, "delete-sensor", "sensor-svc", func(ctx context.Context) (struct{}, error) {
		_, code, err := c.do(ctx, http.MethodDelete, c.url+"/v1/sensors/"+sensorID, nil)
		if err != nil {
			return struct{}{}, err
		}
		if code == http.StatusNotFound {
			return struct{}{}, ErrNotFound
		}
		if code != http.StatusOK {
			return struct{}{}, fmt.Errorf("delete sensor failed with status code %d", code)
		}

		return struct{}{}, nil
	})
	return err
}
