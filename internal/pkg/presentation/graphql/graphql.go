package graphql

import (
	"context"
	"errors"

	"github.com/diwise/iot-facility-mgmt/pkg/client"
	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"github.com/graphql-go/graphql"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Gateway exposes the four facility backends behind a single graphql
// schema. It holds no state of its own, all reads and writes go straight
// through the service clients.
type Gateway struct {
	sites    client.SiteClient
	sensors  client.SensorClient
	switches client.SwitchClient
	assets   client.AssetClient

	schema graphql.Schema
}

func New(sites client.SiteClient, sensors client.SensorClient, switches client.SwitchClient, assets client.AssetClient) (*Gateway, error) {
	gw := &Gateway{
		sites:    sites,
		sensors:  sensors,
		switches: switches,
		assets:   assets,
	}

	schema, err := gw.buildSchema()
	if err != nil {
		return nil, err
	}

	gw.schema = schema
	return gw, nil
}

func (gw *Gateway) Schema() *graphql.Schema {
	return &gw.schema
}

// assetsBySite fans out to the alarm and camera collections concurrently
// and joins the results. A failure in either branch fails the whole query.
func (gw *Gateway) assetsBySite(ctx context.Context, siteID string) ([]types.Asset, error) {
	var alarms, cameras []types.Asset

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		alarms, err = gw.assets.All(ctx, siteID, types.AssetKindAlarm)
		return err
	})
	g.Go(func() error {
		var err error
		cameras, err = gw.assets.All(ctx, siteID, types.AssetKindCamera)
		return err
	})

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	return append(alarms, cameras...), nil
}

// assetByID asks both the alarm and the camera getter for the id and
// returns whichever of them has a record.
func (gw *Gateway) assetByID(ctx context.Context, assetID string) (*types.Asset, error) {
	var alarm, camera *types.Asset

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := gw.assets.Get(gctx, assetID, types.AssetKindAlarm)
		if errors.Is(err, client.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		alarm = &a
		return nil
	})
	g.Go(func() error {
		a, err := gw.assets.Get(gctx, assetID, types.AssetKindCamera)
		if errors.Is(err, client.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		camera = &a
		return nil
	})

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	if alarm != nil {
		return alarm, nil
	}
	return camera, nil
}

func strArg(p graphql.ResolveParams, name string) string {
	if v, ok := p.Args[name].(string); ok {
		return v
	}
	return ""
}

func intArg(p graphql.ResolveParams, name string) int {
	if v, ok := p.Args[name].(int); ok {
		return v
	}
	return 0
}

func floatArg(p graphql.ResolveParams, name string) *float64 {
	if v, ok := p.Args[name].(float64); ok {
		return &v
	}
	return nil
}

func tagsArg(p graphql.ResolveParams, name string) []string {
	v, ok := p.Args[name].([]any)
	if !ok {
		return nil
	}

	return lo.FilterMap(v, func(item any, _ int) (string, bool) {
		s, ok := item.(string)
		return s, ok
	})
}
