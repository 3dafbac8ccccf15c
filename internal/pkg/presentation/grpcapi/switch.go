package grpcapi

import (
	"context"
	"errors"

	"log/slog"

	"github.com/diwise/iot-facility-mgmt/internal/pkg/application/switches"
	"github.com/diwise/iot-facility-mgmt/pkg/proto/switchpb"
	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type switchServer struct {
	switchpb.UnimplementedSwitchServiceServer

	svc switches.SwitchService
	log *slog.Logger
}

// NewServer creates a grpc server with otel stats instrumentation and
// per rpc metrics, and registers the switch service on it.
func NewServer(svc switches.SwitchService, log *slog.Logger, metrics *RPCMetrics) *grpc.Server {
	server := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(metrics.UnaryInterceptor()),
		grpc.ChainStreamInterceptor(metrics.StreamInterceptor()),
	)

	switchpb.RegisterSwitchServiceServer(server, &switchServer{svc: svc, log: log})

	return server
}

func toProto(sw types.Switch) *switchpb.Switch {
	return &switchpb.Switch{
		Id:     sw.ID,
		SiteId: sw.SiteID,
		Name:   sw.Name,
		State:  sw.State,
		States: sw.States,
	}
}

func (s *switchServer) InstallSwitch(ctx context.Context, req *switchpb.InstallSwitchRequest) (*switchpb.Switch, error) {
	sw, err := s.svc.Install(ctx, types.Switch{
		SiteID: req.GetSiteId(),
		Name:   req.GetName(),
		State:  req.GetState(),
		States: req.GetStates(),
	})
	if err != nil {
		if errors.Is(err, switches.ErrInvalidState) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}

		s.log.Error("unable to install switch", "err", err.Error())
		return nil, status.Error(codes.Internal, "unable to install switch")
	}

	return toProto(sw), nil
}

func (s *switchServer) RemoveSwitch(ctx context.Context, req *switchpb.RemoveSwitchRequest) (*switchpb.RemoveSwitchResponse, error) {
	err := s.svc.Remove(ctx, req.GetId())
	if err != nil {
		if errors.Is(err, switches.ErrSwitchNotFound) {
			return nil, status.Error(codes.NotFound, "switch not found")
		}

		s.log.Error("unable to remove switch", "switch_id", req.GetId(), "err", err.Error())
		return nil, status.Error(codes.Internal, "unable to remove switch")
	}

	return &switchpb.RemoveSwitchResponse{Removed: true}, nil
}

func (s *switchServer) GetSwitch(ctx context.Context, req *switchpb.GetSwitchRequest) (*switchpb.Switch, error) {
	sw, err := s.svc.GetByID(ctx, req.GetId())
	if err != nil {
		if errors.Is(err, switches.ErrSwitchNotFound) {
			return nil, status.Error(codes.NotFound, "switch not found")
		}

		s.log.Error("unable to fetch switch", "switch_id", req.GetId(), "err", err.Error())
		return nil, status.Error(codes.Internal, "unable to fetch switch")
	}

	return toProto(sw), nil
}

func (s *switchServer) GetSwitches(req *switchpb.GetSwitchesRequest, stream switchpb.SwitchService_GetSwitchesServer) error {
	result, err := s.svc.Query(stream.Context(), req.GetSiteId())
	if err != nil {
		s.log.Error("unable to query switches", "err", err.Error())
		return status.Error(codes.Internal, "unable to query switches")
	}

	for _, sw := range result {
		err = stream.Send(toProto(sw))
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *switchServer) SetSwitch(ctx context.Context, req *switchpb.SetSwitchRequest) (*switchpb.SetSwitchResponse, error) {
	err := s.svc.SetState(ctx, req.GetId(), req.GetState())
	if err != nil {
		if errors.Is(err, switches.ErrSwitchNotFound) {
			return nil, status.Error(codes.NotFound, "switch not found")
		}
		if errors.Is(err, switches.ErrInvalidState) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}

		s.log.Error("unable to set switch state", "switch_id", req.GetId(), "err", err.Error())
		return nil, status.Error(codes.Internal, "unable to set switch state")
	}

	return &switchpb.SetSwitchResponse{Ok: true}, nil
}
