package amqpapi

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/diwise/iot-facility-mgmt/internal/pkg/application/assets"
	"github.com/diwise/iot-facility-mgmt/pkg/assetrpc"
	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"github.com/matryer/is"
)

func testResponder(svc assets.AssetService) *Responder {
	return &Responder{
		svc: svc,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestDispatchEchoesTheRequestKind(t *testing.T) {
	is := is.New(t)

	r := testResponder(&assets.AssetServiceMock{
		GetByIDFunc: func(ctx context.Context, assetID, kind string) (types.Asset, error) {
			return types.Asset{ID: assetID, Kind: types.AssetKindAlarm}, nil
		},
	})

	reply := r.dispatch(context.Background(), assetrpc.Request{Kind: assetrpc.KindGetAlarm, ID: "asset-01"})

	is.Equal(assetrpc.KindGetAlarm, reply.Kind)
	is.Equal("", reply.Error)
	is.Equal("asset-01", reply.Asset.ID)
}

func TestDispatchCreateAlarmMapsKindAndReturnsTheRecord(t *testing.T) {
	is := is.New(t)

	mock := &assets.AssetServiceMock{
		CreateFunc: func(ctx context.Context, asset types.Asset) (types.Asset, error) {
			asset.ID = "asset-01"
			return asset, nil
		},
	}
	r := testResponder(mock)

	reply := r.dispatch(context.Background(), assetrpc.Request{
		Kind:     assetrpc.KindCreateAlarm,
		SiteID:   "site-01",
		SerialNo: "A-1234",
	})

	is.Equal("", reply.Error)
	is.Equal("asset-01", reply.Asset.ID)
	is.Equal(types.AssetKindAlarm, mock.CreateCalls()[0].Asset.Kind)
}

func TestDispatchAllNormalizesNilToEmptySlice(t *testing.T) {
	is := is.New(t)

	r := testResponder(&assets.AssetServiceMock{
		QueryFunc: func(ctx context.Context, siteID, kind string) ([]types.Asset, error) {
			return nil, nil
		},
	})

	reply := r.dispatch(context.Background(), assetrpc.Request{Kind: assetrpc.KindAllCameras, SiteID: "site-01"})

	is.Equal("", reply.Error)
	is.True(reply.Assets != nil)
	is.Equal(0, len(reply.Assets))
}

func TestDispatchNotFoundUsesTheSharedErrorString(t *testing.T) {
	is := is.New(t)

	r := testResponder(&assets.AssetServiceMock{
		GetByIDFunc: func(ctx context.Context, assetID, kind string) (types.Asset, error) {
			return types.Asset{}, assets.ErrAssetNotFound
		},
	})

	reply := r.dispatch(context.Background(), assetrpc.Request{Kind: assetrpc.KindGetCamera, ID: "nosuchasset"})

	is.Equal(assetrpc.NotFoundError, reply.Error)
}

func TestDispatchRejectsUnknownKinds(t *testing.T) {
	is := is.New(t)

	r := testResponder(&assets.AssetServiceMock{})

	reply := r.dispatch(context.Background(), assetrpc.Request{Kind: "make.coffee"})

	is.Equal("unknown request kind make.coffee", reply.Error)
}

func TestDispatchDelete(t *testing.T) {
	is := is.New(t)

	mock := &assets.AssetServiceMock{
		DeleteFunc: func(ctx context.Context, assetID, kind string) error {
			return nil
		},
	}
	r := testResponder(mock)

	reply := r.dispatch(context.Background(), assetrpc.Request{Kind: assetrpc.KindDeleteCamera, ID: "asset-01"})

	is.Equal("", reply.Error)
	is.True(reply.Deleted)
	is.Equal(types.AssetKindCamera, mock.DeleteCalls()[0].Kind)
}
