package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/diwise/iot-facility-mgmt/pkg/assetrpc"
	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel/propagation"
)

// ErrRequestTimeout is returned when the asset backend does not reply
// within the reply timeout.
var ErrRequestTimeout = errors.New("timed out waiting for a reply from the asset backend")

const replyTimeout = 1 * time.Second

const directReplyToQueue = "amq.rabbitmq.reply-to"

var assetPropagator = propagation.TraceContext{}

type AssetClient interface {
	Create(ctx context.Context, asset types.Asset) (types.Asset, error)
	All(ctx context.Context, siteID, kind string) ([]types.Asset, error)
	Get(ctx context.Context, assetID, kind string) (types.Asset, error)
	Update(ctx context.Context, asset types.Asset) (types.Asset, error)
	Delete(ctx context.Context, assetID, kind string) error
}

type assetClient struct {
	channel *amqp.Channel
	metrics *Metrics

	mu      sync.Mutex
	pending map[string]chan assetrpc.Reply
}

// NewAssetClient sets up an rpc style client over amqp, using the direct
// reply-to pseudo queue for replies.
func NewAssetClient(channel *amqp.Channel, m *Metrics) (AssetClient, error) {
	c := &assetClient{
		channel: channel,
		metrics: m,
		pending: map[string]chan assetrpc.Reply{},
	}

	deliveries, err := channel.Consume(directReplyToQueue, "", true, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to consume reply queue: %w", err)
	}

	go func() {
		for d := range deliveries {
			var reply assetrpc.Reply
			if json.Unmarshal(d.Body, &reply) != nil {
				continue
			}

			c.mu.Lock()
			waiting, ok := c.pending[d.CorrelationId]
			delete(c.pending, d.CorrelationId)
			c.mu.Unlock()

			if ok {
				waiting <- reply
			}
		}
	}()

	return c, nil
}

func (c *assetClient) request(ctx context.Context, req assetrpc.Request) (assetrpc.Reply, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return assetrpc.Reply{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	correlationID := uuid.NewString()

	waiting := make(chan assetrpc.Reply, 1)
	c.mu.Lock()
	c.pending[correlationID] = waiting
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.pending, correlationID)
		c.mu.Unlock()
	}()

	headers := amqp.Table{}
	assetPropagator.Inject(ctx, assetrpc.HeaderCarrier(headers))

	err = c.channel.PublishWithContext(ctx, "", assetrpc.RequestQueue, false, false, amqp.Publishing{
		ContentType:   "application/json",
		CorrelationId: correlationID,
		ReplyTo:       directReplyToQueue,
		Headers:       headers,
		Body:          body,
	})
	if err != nil {
		return assetrpc.Reply{}, fmt.Errorf("failed to publish request: %w", err)
	}

	select {
	case reply := <-waiting:
		if reply.Error != "" {
			if reply.Error == assetrpc.NotFoundError {
				return assetrpc.Reply{}, ErrNotFound
			}
			return assetrpc.Reply{}, errors.New(reply.Error)
		}
		return reply, nil
	case <-time.After(replyTimeout):
		return assetrpc.Reply{}, ErrRequestTimeout
	case <-ctx.Done():
		return assetrpc.Reply{}, ctx.Err()
	}
}

func kindOp(kind, alarmOp, cameraOp, anyOp string) (string, error) {
	switch kind {
	case types.AssetKindAlarm:
		return alarmOp, nil
	case types.AssetKindCamera:
		return cameraOp, nil
	case "":
		if anyOp != "" {
			return anyOp, nil
		}
	}
	return "", fmt.Errorf("unknown asset kind %s", kind)
}

func (c *assetClient) Create(ctx context.Context, asset types.Asset) (types.Asset, error) {
	op, err := kindOp(asset.Kind, assetrpc.KindCreateAlarm, assetrpc.KindCreateCamera, "")
	if err != nil {
		return types.Asset{}, err
	}

	return exec(ctx, c.metrics, "create-asset", "asset-svc", func(ctx context.Context) (types.Asset, error) {
		reply, err := c.request(ctx, assetrpc.Request{
			Kind:       op,
			SiteID:     asset.SiteID,
			SerialNo:   asset.SerialNo,
			Material:   asset.Material,
			Resolution: asset.Resolution,
		})
		if err != nil {
			return types.Asset{}, err
		}
		if reply.Asset == nil {
			return types.Asset{}, fmt.Errorf("asset backend replied without a record")
		}

		return *reply.Asset, nil
	})
}

func (c *assetClient) All(ctx context.Context, siteID, kind string) ([]types.Asset, error) {
	op, err := kindOp(kind, assetrpc.KindAllAlarms, assetrpc.KindAllCameras, assetrpc.KindAllAssets)
	if err != nil {
		return nil, err
	}

	return exec(ctx, c.metrics, "all-assets", "asset-svc", func(ctx context.Context) ([]types.Asset, error) {
		reply, err := c.request(ctx, assetrpc.Request{Kind: op, SiteID: siteID})
		if err != nil {
			return nil, err
		}

		return reply.Assets, nil
	})
}

func (c *assetClient) Get(ctx context.Context, assetID, kind string) (types.Asset, error) {
	op, err := kindOp(kind, assetrpc.KindGetAlarm, assetrpc.KindGetCamera, assetrpc.KindGetAsset)
	if err != nil {
		return types.Asset{}, err
	}

	return exec(ctx, c.metrics, "get-asset", "asset-svc", func(ctx context.Context) (types.Asset, error) {
		reply, err := c.request(ctx, assetrpc.Request{Kind: op, ID: assetID})
		if err != nil {
			return types.Asset{}, err
		}
		if reply.Asset == nil {
			return types.Asset{}, ErrNotFound
		}

		return *reply.Asset, nil
	})
}

func (c *assetClient) Update(ctx context.Context, asset types.Asset) (types.Asset, error) {
	op, err := kindOp(asset.Kind, assetrpc.KindUpdateAlarm, assetrpc.KindUpdateCamera, "")
	if err != nil {
		return types.Asset{}, err
	}

	return exec(ctx, c.metrics, "update-asset", "asset-svc", func(ctx context.Context) (types.Asset, error) {
		reply, err := c.request(ctx, assetrpc.Request{
			Kind:       op,
			ID:         asset.ID,
			SiteID:     asset.SiteID,
			SerialNo:   asset.SerialNo,
			Material:   asset.Material,
			Resolution: asset.Resolution,
		})
		if err != nil {
			return types.Asset{}, err
		}
		if reply.Asset == nil {
			return types.Asset{}, fmt.Errorf("asset backend replied without a record")
		}

		return *reply.Asset, nil
	})
}

func (c *assetClient) Delete(ctx context.Context, assetID, kind string) error {
	op, err := kindOp(kind, assetrpc.KindDeleteAlarm, assetrpc.KindDeleteCamera, "")
	if err != nil {
		return err
	}

	_, err = exec(ctx, c.metrics, "delete-asset", "asset-svc", func(ctx context.Context) (struct{}, error) {
		reply, err := c.request(ctx, assetrpc.Request{Kind: op, ID: assetID})
		if err != nil {
			return struct{}{}, err
		}
		if !reply.Deleted {
			return struct{}{}, fmt.Errorf("asset backend did not acknowledge the delete")
		}

		return struct{}{}, nil
	})
	return err
}
