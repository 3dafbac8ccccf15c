package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddSwitch(ctx context.Context, sw types.Switch) error {
	if sw.ID == "" {
		return ErrNoID
	}

	data, _ := json.Marshal(sw)

	var m map[string]any
	json.Unmarshal(data, &m)
	delete(m, "id")
	delete(m, "siteId")
	data, _ = json.Marshal(m)

	_, err := s.pool.Exec(ctx, `
		INSERT INTO switches (id, site_id, data)
		VALUES (@id, @site_id, @data)
	`, pgx.NamedArgs{"id": sw.ID, "site_id": sw.SiteID, "data": string(data)})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

func (s *Storage) GetSwitch(ctx context.Context, conditions ...ConditionFunc) (types.Switch, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	var id, siteID string
	var data json.RawMessage

	query := fmt.Sprintf(`
		SELECT id, site_id, data
		FROM switches
		WHERE %s
	`, condition.Where())

	err := s.pool.QueryRow(ctx, query, condition.NamedArgs()).Scan(&id, &siteID, &data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Switch{}, ErrNoRows
		}
		return types.Switch{}, err
	}

	var sw types.Switch
	err = json.Unmarshal(data, &sw)
	if err != nil {
		return types.Switch{}, err
	}

	sw.ID = id
	sw.SiteID = siteID

	return sw, nil
}

func (s *Storage) QuerySwitches(ctx context.Context, conditions ...ConditionFunc) ([]types.Switch, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	query := fmt.Sprintf(`
		SELECT id, site_id, data
		FROM switches
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

	switches := make([]types.Switch, 0)

	_, err = pgx.ForEachRow(rows, []any{&id, &siteID, &data}, func() error {
		var sw types.Switch
		err := json.Unmarshal(data, &sw)
		if err != nil {
			return err
		}

		sw.ID = id
		sw.SiteID = siteID
		switches = append(switches, sw)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return switches, nil
}

// SetSwitchState replaces the current state only. The declared list of
// valid states is immutable after installation.
func (s *Storage) SetSwitchState(ctx context.Context, switchID, state string) error {
	cmd, err := s.pool.Exec(ctx, `
		UPDATE switches
		SET data = jsonb_set(data, '{state}', to_jsonb(@state::text)), modified_on = CURRENT_TIMESTAMP
		WHERE id = @id AND deleted = FALSE
	`, pgx.NamedArgs{"id": switchID, "state": state})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	if cmd.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) DeleteSwitch(ctx context.Context, switchID string) error {
	cmd, err := s.pool.Exec(ctx, `
		UPDATE switches
		SET deleted = TRUE, deleted_on = CURRENT_TIMESTAMP
		WHERE id = @id AND deleted = FALSE
	`, pgx.NamedArgs{"id": switchID})
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}
