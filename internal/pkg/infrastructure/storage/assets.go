package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddAsset(ctx context.Context, asset types.Asset) error {
	if asset.ID == "" {
		return ErrNoID
	}

	data, _ := json.Marshal(asset)

	var m map[string]any
	json.Unmarshal(data, &m)
	delete(m, "id")
	delete(m, "siteId")
	delete(m, "kind")
	data, _ = json.Marshal(m)

	_, err := s.pool.Exec(ctx, `
		INSERT INTO assets (id, site_id, kind, data)
		VALUES (@id, @site_id, @kind, @data)
	`, pgx.NamedArgs{"id": asset.ID, "site_id": asset.SiteID, "kind": asset.Kind, "data": string(data)})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

func (s *Storage) UpdateAsset(ctx context.Context, asset types.Asset) error {
	data, _ := json.Marshal(asset)

	var m map[string]any
	json.Unmarshal(data, &m)
	delete(m, "id")
	delete(m, "siteId")
	delete(m, "kind")
	data, _ = json.Marshal(m)

	cmd, err := s.pool.Exec(ctx, `
		UPDATE assets
		SET site_id = @site_id, data = @data, modified_on = CURRENT_TIMESTAMP
		WHERE id = @id AND kind = @kind AND deleted = FALSE
	`, pgx.NamedArgs{"id": asset.ID, "site_id": asset.SiteID, "kind": asset.Kind, "data": string(data)})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	if cmd.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) GetAsset(ctx context.Context, conditions ...ConditionFunc) (types.Asset, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	var id, siteID, kind string
	var data json.RawMessage

	query := fmt.Sprintf(`
		SELECT id, site_id, kind, data
		FROM assets
		WHERE %s
	`, condition.Where())

	err := s.pool.QueryRow(ctx, query, condition.NamedArgs()).Scan(&id, &siteID, &kind, &data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Asset{}, ErrNoRows
		}
		return types.Asset{}, err
	}

	var asset types.Asset
	err = json.Unmarshal(data, &asset)
	if err != nil {
		return types.Asset{}, err
	}

	asset.ID = id
	asset.SiteID = siteID
	asset.Kind = kind

	return asset, nil
}

func (s *Storage) QueryAssets(ctx context.Context, conditions ...ConditionFunc) ([]types.Asset, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	query := fmt.Sprintf(`
		SELECT id, site_id, kind, data
		FROM assets
		WHERE %s
		ORDER BY data->>'serialNo' ASC
		%s
	`, condition.Where(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return nil, err
	}

	var id, siteID, kind string
	var data json.RawMessage

	assets := make([]types.Asset, 0)

	_, err = pgx.ForEachRow(rows, []any{&id, &siteID, &kind, &data}, func() error {
		var asset types.Asset
		err := json.Unmarshal(data, &asset)
		if err != nil {
			return err
		}

		asset.ID = id
		asset.SiteID = siteID
		asset.Kind = kind
		assets = append(assets, asset)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return assets, nil
}

func (s *Storage) DeleteAsset(ctx context.Context, assetID, kind string) error {
	cmd, err := s.pool.Exec(ctx, `
		UPDATE assets
		SET deleted = TRUE, deleted_on = CURRENT_TIMESTAMP
		WHERE id = @id AND kind = @kind AND deleted = FALSE
	`, pgx.NamedArgs{"id": assetID, "kind": kind})
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}
