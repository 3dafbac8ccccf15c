package assets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/iot-facility-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

var (
	ErrAssetNotFound = fmt.Errorf("asset not found")
	ErrUnknownKind   = fmt.Errorf("unknown asset kind")
)

//go:generate moq -rm -out assetsvc_mock.go . AssetService
type AssetService interface {
	Create(ctx context.Context, asset types.Asset) (types.Asset, error)
	Query(ctx context.Context, siteID, kind string) ([]types.Asset, error)
	GetByID(ctx context.Context, assetID, kind string) (types.Asset, error)
	Update(ctx context.Context, asset types.Asset) error
	Delete(ctx context.Context, assetID, kind string) error
}

//go:generate moq -rm -out assetstorage_mock.go . AssetStorage
type AssetStorage interface {
	AddAsset(ctx context.Context, asset types.Asset) error
	UpdateAsset(ctx context.Context, asset types.Asset) error
	GetAsset(ctx context.Context, conditions ...storage.ConditionFunc) (types.Asset, error)
	QueryAssets(ctx context.Context, conditions ...storage.ConditionFunc) ([]types.Asset, error)
	DeleteAsset(ctx context.Context, assetID, kind string) error
}

type assetSvc struct {
	storage   AssetStorage
	messenger messaging.MsgContext
}

func New(s AssetStorage, m messaging.MsgContext) AssetService {
	return &assetSvc{
		storage:   s,
		messenger: m,
	}
}

func validKind(kind string) bool {
	return kind == types.AssetKindAlarm || kind == types.AssetKindCamera
}

func (svc *assetSvc) Create(ctx context.Context, asset types.Asset) (types.Asset, error) {
	if !validKind(asset.Kind) {
		return types.Asset{}, ErrUnknownKind
	}

	asset.ID = uuid.NewString()

	err := svc.storage.AddAsset(ctx, asset)
	if err != nil {
		return types.Asset{}, err
	}

	err = svc.messenger.PublishOnTopic(ctx, &types.AssetCreated{
		Asset:     asset,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		logging.GetFromContext(ctx).Error("could not publish asset.created", "asset_id", asset.ID, "err", err.Error())
	}

	return asset, nil
}

func (svc *assetSvc) Query(ctx context.Context, siteID, kind string) ([]types.Asset, error) {
	conditions := make([]storage.ConditionFunc, 0)

	if siteID != "" {
		conditions = append(conditions, storage.WithSiteID(siteID))
	}
	if kind != "" {
		if !validKind(kind) {
			return nil, ErrUnknownKind
		}
		conditions = append(conditions, storage.WithKind(kind))
	}

	return svc.storage.QueryAssets(ctx, conditions...)
}

func (svc *assetSvc) GetByID(ctx context.Context, assetID, kind string) (types.Asset, error) {
	conditions := []storage.ConditionFunc{storage.WithID(assetID)}

	if kind != "" {
		if !validKind(kind) {
			return types.Asset{}, ErrUnknownKind
		}
		conditions = append(conditions, storage.WithKind(kind))
	}

	asset, err := svc.storage.GetAsset(ctx, conditions...)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Asset{}, ErrAssetNotFound
		}
		return types.Asset{}, err
	}

	return asset, nil
}

func (svc *assetSvc) Update(ctx context.Context, asset types.Asset) error {
	if !validKind(asset.Kind) {
		return ErrUnknownKind
	}

	err := svc.storage.UpdateAsset(ctx, asset)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrAssetNotFound
		}
		return err
	}

	return nil
}

func (svc *assetSvc) Delete(ctx context.Context, assetID, kind string) error {
	if !validKind(kind) {
		return ErrUnknownKind
	}

	err := svc.storage.DeleteAsset(ctx, assetID, kind)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrAssetNotFound
		}
		return err
	}

	err = svc.messenger.PublishOnTopic(ctx, &types.AssetDeleted{
		AssetID:   assetID,
		Kind:      kind,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		logging.GetFromContext(ctx).Error("could not publish asset.deleted", "asset_id", assetID, "err", err.Error())
	}

	return nil
}
