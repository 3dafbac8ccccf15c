package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddSite(ctx context.Context, site types.Site) error {
	if site.ID == "" {
		return ErrNoID
	}

	data, _ := json.Marshal(site)

	var m map[string]any
	json.Unmarshal(data, &m)
	delete(m, "id")
	data, _ = json.Marshal(m)

	_, err := s.pool.Exec(ctx, `
		INSERT INTO sites (id, data)
		VALUES (@id, @data)
	`, pgx.NamedArgs{"id": site.ID, "data": string(data)})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

func (s *Storage) UpdateSite(ctx context.Context, site types.Site) error {
	data, _ := json.Marshal(site)

	var m map[string]any
	json.Unmarshal(data, &m)
	delete(m, "id")
	data, _ = json.Marshal(m)

	cmd, err := s.pool.Exec(ctx, `
		UPDATE sites
		SET data = @data, modified_on = CURRENT_TIMESTAMP
		WHERE id = @id AND deleted = FALSE
	`, pgx.NamedArgs{"id": site.ID, "data": string(data)})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	if cmd.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) GetSite(ctx context.Context, conditions ...ConditionFunc) (types.Site, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	var id string
	var data json.RawMessage

	query := fmt.Sprintf(`
		SELECT id, data
		FROM sites
		WHERE %s
	`, condition.Where())

	err := s.pool.QueryRow(ctx, query, condition.NamedArgs()).Scan(&id, &data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Site{}, ErrNoRows
		}
		return types.Site{}, err
	}

	var site types.Site
	err = json.Unmarshal(data, &site)
	if err != nil {
		return types.Site{}, err
	}

	site.ID = id

	return site, nil
}

func (s *Storage) QuerySites(ctx context.Context, conditions ...ConditionFunc) ([]types.Site, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	query := fmt.Sprintf(`
		SELECT id, data
		FROM sites
		WHERE %s
		ORDER BY data->>'name' ASC
		%s
	`, condition.Where(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return nil, err
	}

	var id string
	var data json.RawMessage

	sites := make([]types.Site, 0)

	_, err = pgx.ForEachRow(rows, []any{&id, &data}, func() error {
		var site types.Site
		err := json.Unmarshal(data, &site)
		if err != nil {
			return err
		}

		site.ID = id
		sites = append(sites, site)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return sites, nil
}

func (s *Storage) DeleteSite(ctx context.Context, siteID string) error {
	cmd, err := s.pool.Exec(ctx, `
		UPDATE sites
		SET deleted = TRUE, deleted_on = CURRENT_TIMESTAMP
		WHERE id = @id AND deleted = FALSE
	`, pgx.NamedArgs{"id": siteID})
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}
