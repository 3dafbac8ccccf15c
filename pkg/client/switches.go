package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/diwise/iot-facility-mgmt/pkg/proto/switchpb"
	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type SwitchClient interface {
	Install(ctx context.Context, sw types.Switch) (types.Switch, error)
	All(ctx context.Context, siteID string) ([]types.Switch, error)
	Get(ctx context.Context, switchID string) (types.Switch, error)
	Set(ctx context.Context, switchID, state string) (types.Switch, error)
	Remove(ctx context.Context, switchID string) error
}

type switchClient struct {
	pb      switchpb.SwitchServiceClient
	metrics *Metrics
}

func NewSwitchClient(conn grpc.ClientConnInterface, m *Metrics) SwitchClient {
	return &switchClient{
		pb:      switchpb.NewSwitchServiceClient(conn),
		metrics: m,
	}
}

func fromProto(sw *switchpb.Switch) types.Switch {
	return types.Switch{
		ID:     sw.GetId(),
		SiteID: sw.GetSiteId(),
		Name:   sw.GetName(),
		State:  sw.GetState(),
		States: sw.GetStates(),
	}
}

func mapGRPCError(err error) error {
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return err
}

func (c *switchClient) Install(ctx context.Context, sw types.Switch) (types.Switch, error) {
	return exec(ctx, c.metrics, "install-switch", "switch-svc", func(ctx context.Context) (types.Switch, error) {
		resp, err := c.pb.InstallSwitch(ctx, &switchpb.InstallSwitchRequest{
			SiteId: sw.SiteID,
			Name:   sw.Name,
			State:  sw.State,
			States: sw.States,
		})
		if err != nil {
			return types.Switch{}, err
		}

		return fromProto(resp), nil
	})
}

func (c *switchClient) All(ctx context.Context, siteID string) ([]types.Switch, error) {
	return exec(ctx, c.metrics, "all-switches", "switch-svc", func(ctx context.Context) ([]types.Switch, error) {
		stream, err := c.pb.GetSwitches(ctx, &switchpb.GetSwitchesRequest{SiteId: siteID})
		if err != nil {
			return nil, err
		}

		// collect the full stream, preserving server order
		result := []types.Switch{}
		for {
			sw, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, err
			}
			result = append(result, fromProto(sw))
		}

		return result, nil
	})
}

func (c *switchClient) Get(ctx context.Context, switchID string) (types.Switch, error) {
	return exec(ctx, c.metrics, "get-switch", "switch-svc", func(ctx context.Context) (types.Switch, error) {
		resp, err := c.pb.GetSwitch(ctx, &switchpb.GetSwitchRequest{Id: switchID})
		if err != nil {
			return types.Switch{}, mapGRPCError(err)
		}

		return fromProto(resp), nil
	})
}

// Set changes the state of a switch. The backend only acknowledges, so a
// follow up get is issued to return the updated record to the caller.
func (c *switchClient) Set(ctx context.Context, switchID, state string) (types.Switch, error) {
	return exec(ctx, c.metrics, "set-switch", "switch-svc", func(ctx context.Context) (types.Switch, error) {
		resp, err := c.pb.SetSwitch(ctx, &switchpb.SetSwitchRequest{Id: switchID, State: state})
		if err != nil {
			return types.Switch{}, mapGRPCError(err)
		}
		if !resp.GetOk() {
			return types.Switch{}, fmt.Errorf("switch backend did not acknowledge the state change")
		}

		sw, err := c.pb.GetSwitch(ctx, &switchpb.GetSwitchRequest{Id: switchID})
		if err != nil {
			return types.Switch{}, mapGRPCError(err)
		}

		return fromProto(sw), nil
	})
}

func (c *switchClient) Remove(ctx context.Context, switchID string) error {
	_, err := exec(ctx, c.metrics, "remove-switch", "switch-svc", func(ctx context.Context) (struct{}, error) {
		resp, err := c.pb.RemoveSwitch(ctx, &switchpb.RemoveSwitchRequest{Id: switchID})
		if err != nil {
			return struct{}{}, mapGRPCError(err)
		}
		if !resp.GetRemoved() {
			return struct{}{}, fmt.Errorf("switch backend did not acknowledge the removal")
		}

		return struct{}{}, nil
	})
	return err
}
