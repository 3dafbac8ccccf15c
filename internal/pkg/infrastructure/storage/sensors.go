package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddSensor(ctx context.Context, sensor types.Sensor) error {
	if sensor.ID == "" {
		return ErrNoID
	}

	data, _ := json.Marshal(sensor)

	var m map[string]any
	json.Unmarshal(data, &m)
	delete(m, "id")
	delete(m, "siteId")
	data, _ = json.Marshal(m)

	_, err := s.pool.Exec(ctx, `
		INSERT INTO sensors (id, site_id, data)
		VALUES (@id, @site_id, @data)
	`, pgx.NamedArgs{"id": sensor.ID, "site_id": sensor.SiteID, "data": string(data)})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

func (s *Storage) UpdateSensor(ctx context.Context, sensor types.Sensor) error {
	data, _ := json.Marshal(sensor)

	var m map[string]any
	json.Unmarshal(data, &m)
	delete(m, "id")
	delete(m, "siteId")
	data, _ = json.Marshal(m)

	cmd, err := s.pool.Exec(ctx, `
		UPDATE sensors
		SET site_id = @site_id, data = @data, modified_on = CURRENT_TIMESTAMP
		WHERE id = @id AND deleted = FALSE
	`, pgx.NamedArgs{"id": sensor.ID, "site_id": sensor.SiteID, "data": string(data)})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	if cmd.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) GetSensor(ctx context.Context, conditions ...ConditionFunc) (types.Sensor, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	var id, siteID string
	var data json.RawMessage

	query := fmt.Sprintf(`
		SELECT id, site_id, data
		FROM sensors
		WHERE %s
	`, condition.Where())

	err := s.pool.QueryRow(ctx, query, condition.NamedArgs()).Scan(&id, &siteID, &data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Sensor{}, ErrNoRows
		}
		return types.Sensor{}, err
	}

	var sensor types.Sensor
	err = json.Unmarshal(data, &sensor)
	if err != nil {
		return types.Sensor{}, err
	}

	sensor.ID = id
	sensor.SiteID = siteID

	return sensor, nil
}

func (s *Storage) QuerySensors(ctx context.Context, conditions ...ConditionFunc) ([]types.Sensor, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	query := fmt.Sprintf(`
		SELECT id, site_id, data
		FROM sensors
		WHERE %s
		ORDER BY data->>'name' ASC
		%s
	`, condition.Where(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return nil, err
	}

	var id, siteID string
	var data json.RawMessage

	sensors := make([]types.Sensor, 0)

	_, err = pgx.ForEachRow(rows, []any{&id, &siteID, &data}, func() error {
		var sensor types.Sensor
		err := json.Unmarshal(data, &sensor)
		if err != nil {
			return err
		}

		sensor.ID = id
		sensor.SiteID = siteID
		sensors = append(sensors, sensor)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return sensors, nil
}

func (s *Storage) DeleteSensor(ctx context.Context, sensorID string) error {
	cmd, err := s.pool.Exec(ctx, `
		UPDATE sensors
		SET deleted = TRUE, deleted_on = CURRENT_TIMESTAMP
		WHERE id = @id AND deleted = FALSE
	`, pgx.NamedArgs{"id": sensorID})
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}
