package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/diwise/iot-facility-mgmt/pkg/client"
	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"github.com/google/uuid"
)

// SwitchFake is an in memory switch backend that satisfies the switch
// client interface, for tests that do not want to stand up a grpc server.
type SwitchFake struct {
	mu       sync.Mutex
	Switches map[string]types.Switch
}

var _ client.SwitchClient = &SwitchFake{}

func NewSwitchFake() *SwitchFake {
	return &SwitchFake{Switches: map[string]types.Switch{}}
}

func (f *SwitchFake) Install(ctx context.Context, sw types.Switch) (types.Switch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sw.ID = uuid.NewString()
	if sw.State == "" && len(sw.States) > 0 {
		sw.State = sw.States[0]
	}

	f.Switches[sw.ID] = sw
	return sw, nil
}

func (f *SwitchFake) All(ctx context.Context, siteID string) ([]types.Switch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := []types.Switch{}
	for _, sw := range f.Switches {
		if siteID == "" || sw.SiteID == siteID {
			result = append(result, sw)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (f *SwitchFake) Get(ctx context.Context, switchID string) (types.Switch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sw, ok := f.Switches[switchID]
	if !ok {
		return types.Switch{}, client.ErrNotFound
	}
	return sw, nil
}

func (f *SwitchFake) Set(ctx context.Context, switchID, state string) (types.Switch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sw, ok := f.Switches[switchID]
	if !ok {
		return types.Switch{}, client.ErrNotFound
	}

	sw.State = state
	f.Switches[switchID] = sw
	return sw, nil
}

func (f *SwitchFake) Remove(ctx context.Context, switchID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.Switches[switchID]; !ok {
		return client.ErrNotFound
	}

	delete(f.Switches, switchID)
	return nil
}

// AssetFake is an in memory asset backend that satisfies the asset
// client interface.
type AssetFake struct {
	mu     sync.Mutex
	Assets map[string]types.Asset
}

var _ client.AssetClient = &AssetFake{}

func NewAssetFake() *AssetFake {
	return &AssetFake{Assets: map[string]types.Asset{}}
}

func (f *AssetFake) Create(ctx context.Context, asset types.Asset) (types.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	asset.ID = uuid.NewString()
	f.Assets[asset.ID] = asset
	return asset, nil
}

func (f *AssetFake) All(ctx context.Context, siteID, kind string) ([]types.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := []types.Asset{}
	for _, asset := range f.Assets {
		if siteID != "" && asset.SiteID != siteID {
			continue
		}
		if kind != "" && asset.Kind != kind {
			continue
		}
		result = append(result, asset)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].SerialNo < result[j].SerialNo })
	return result, nil
}

func (f *AssetFake) Get(ctx context.Context, assetID, kind string) (types.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	asset, ok := f.Assets[assetID]
	if !ok || (kind != "" && asset.Kind != kind) {
		return types.Asset{}, client.ErrNotFound
	}
	return asset, nil
}

func (f *AssetFake) Update(ctx context.Context, asset types.Asset) (types.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.Assets[asset.ID]
	if !ok || existing.Kind != asset.Kind {
		return types.Asset{}, client.ErrNotFound
	}

	f.Assets[asset.ID] = asset
	return asset, nil
}

func (f *AssetFake) Delete(ctx context.Context, assetID, kind string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	asset, ok := f.Assets[assetID]
	if !ok || asset.Kind != kind {
		return client.ErrNotFound
	}

	delete(f.Assets, assetID)
	return nil
}
