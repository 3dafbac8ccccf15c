package grpcapi

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"testing"

	"github.com/diwise/iot-facility-mgmt/internal/pkg/application/switches"
	"github.com/diwise/iot-facility-mgmt/pkg/proto/switchpb"
	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"github.com/matryer/is"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func testServer(t *testing.T, svc switches.SwitchService) switchpb.SwitchServiceClient {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	server := NewServer(svc, log, NewRPCMetrics(prometheus.NewRegistry()))
	go server.Serve(lis)
	t.Cleanup(server.Stop)

	conn, err := grpc.Dial("bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close() })

	return switchpb.NewSwitchServiceClient(conn)
}

func TestGetSwitchMapsNotFoundToGRPCCode(t *testing.T) {
	is := is.New(t)

	pb := testServer(t, &switches.SwitchServiceMock{
		GetByIDFunc: func(ctx context.Context, switchID string) (types.Switch, error) {
			return types.Switch{}, switches.ErrSwitchNotFound
		},
	})

	_, err := pb.GetSwitch(context.Background(), &switchpb.GetSwitchRequest{Id: "nosuchswitch"})

	is.Equal(codes.NotFound, status.Code(err))
}

func TestInstallSwitchMapsInvalidStateToInvalidArgument(t *testing.T) {
	is := is.New(t)

	pb := testServer(t, &switches.SwitchServiceMock{
		InstallFunc: func(ctx context.Context, sw types.Switch) (types.Switch, error) {
			return types.Switch{}, switches.ErrInvalidState
		},
	})

	_, err := pb.InstallSwitch(context.Background(), &switchpb.InstallSwitchRequest{
		SiteId: "site-01", Name: "inlet pump", State: "on",
	})

	is.Equal(codes.InvalidArgument, status.Code(err))
}

func TestGetSwitchesStreamsInServiceOrder(t *testing.T) {
	is := is.New(t)

	pb := testServer(t, &switches.SwitchServiceMock{
		QueryFunc: func(ctx context.Context, siteID string) ([]types.Switch, error) {
			return []types.Switch{
				{ID: "switch-01", SiteID: siteID, Name: "inlet pump"},
				{ID: "switch-02", SiteID: siteID, Name: "outlet pump"},
			}, nil
		},
	})

	stream, err := pb.GetSwitches(context.Background(), &switchpb.GetSwitchesRequest{SiteId: "site-01"})
	is.NoErr(err)

	received := []string{}
	for {
		sw, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		is.NoErr(err)
		received = append(received, sw.GetId())
	}

	is.Equal([]string{"switch-01", "switch-02"}, received)
}

func TestSetSwitchAcknowledges(t *testing.T) {
	is := is.New(t)

	mock := &switches.SwitchServiceMock{
		SetStateFunc: func(ctx context.Context, switchID, state string) error {
			return nil
		},
	}
	pb := testServer(t, mock)

	resp, err := pb.SetSwitch(context.Background(), &switchpb.SetSwitchRequest{Id: "switch-01", State: "off"})

	is.NoErr(err)
	is.True(resp.GetOk())
	is.Equal(1, len(mock.SetStateCalls()))
	is.Equal("off", mock.SetStateCalls()[0].State)
}

func TestInternalErrorsAreNotLeakedToClients(t *testing.T) {
	is := is.New(t)

	pb := testServer(t, &switches.SwitchServiceMock{
		GetByIDFunc: func(ctx context.Context, switchID string) (types.Switch, error) {
			return types.Switch{}, errors.New("pq: relation entities does not exist")
		},
	})

	_, err := pb.GetSwitch(context.Background(), &switchpb.GetSwitchRequest{Id: "switch-01"})

	is.Equal(codes.Internal, status.Code(err))
	is.Equal("unable to fetch switch", status.Convert(err).Message())
}
