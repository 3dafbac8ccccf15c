package assets

import (
	"context"
	"errors"
	"testing"

	"github.com/diwise/iot-facility-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func TestCreateRejectsUnknownKind(t *testing.T) {
	is := is.New(t)
	svc, store, _ := testSetup()

	_, err := svc.Create(context.Background(), types.Asset{SiteID: "site-01", Kind: "toaster"})

	is.True(errors.Is(err, ErrUnknownKind))
	is.Equal(0, len(store.AddAssetCalls()))
}

func TestCreateAssignsIDAndPublishesEvent(t *testing.T) {
	is := is.New(t)
	svc, store, msgCtx := testSetup()

	asset, err := svc.Create(context.Background(), types.Asset{
		SiteID:   "site-01",
		Kind:     types.AssetKindAlarm,
		SerialNo: "A-1234",
		Material: "steel",
	})

	is.NoErr(err)
	is.True(asset.ID != "")
	is.Equal(1, len(store.AddAssetCalls()))
	is.Equal(1, len(msgCtx.PublishOnTopicCalls()))
	is.Equal("asset.created", msgCtx.PublishOnTopicCalls()[0].Message.TopicName())
}

func TestGetByIDMapsNoRowsToNotFound(t *testing.T) {
	is := is.New(t)
	svc, store, _ := testSetup()

	store.GetAssetFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Asset, error) {
		return types.Asset{}, storage.ErrNoRows
	}

	_, err := svc.GetByID(context.Background(), "nosuchasset", types.AssetKindCamera)

	is.True(errors.Is(err, ErrAssetNotFound))
}

func TestQueryRejectsUnknownKind(t *testing.T) {
	is := is.New(t)
	svc, _, _ := testSetup()

	_, err := svc.Query(context.Background(), "site-01", "toaster")

	is.True(errors.Is(err, ErrUnknownKind))
}

func TestDeletePublishesDeletedEvent(t *testing.T) {
	is := is.New(t)
	svc, _, msgCtx := testSetup()

	err := svc.Delete(context.Background(), "asset-01", types.AssetKindCamera)

	is.NoErr(err)
	is.Equal(1, len(msgCtx.PublishOnTopicCalls()))
	is.Equal("asset.deleted", msgCtx.PublishOnTopicCalls()[0].Message.TopicName())
}

func testSetup() (AssetService, *AssetStorageMock, *messaging.MsgContextMock) {
	store := &AssetStorageMock{
		AddAssetFunc: func(ctx context.Context, asset types.Asset) error {
			return nil
		},
		DeleteAssetFunc: func(ctx context.Context, assetID, kind string) error {
			return nil
		},
	}
	msgCtx := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	return New(store, msgCtx), store, msgCtx
}
