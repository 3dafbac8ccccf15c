package amqpapi

import (
	"context"
	"encoding/json"
	"errors"

	"log/slog"

	"github.com/diwise/iot-facility-mgmt/internal/pkg/application/assets"
	"github.com/diwise/iot-facility-mgmt/pkg/assetrpc"
	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

var tracer = otel.Tracer("iot-facility-mgmt/asset-amqp")
var propagator = propagation.TraceContext{}

// Responder serves asset requests from the request queue and replies on
// the queue named by each delivery's reply-to property.
type Responder struct {
	channel *amqp.Channel
	svc     assets.AssetService
	log     *slog.Logger
}

func NewResponder(channel *amqp.Channel, svc assets.AssetService, log *slog.Logger) *Responder {
	return &Responder{
		channel: channel,
		svc:     svc,
		log:     log,
	}
}

// Start declares the request queue and consumes it until ctx is done.
func (r *Responder) Start(ctx context.Context) error {
	_, err := r.channel.QueueDeclare(assetrpc.RequestQueue, false, false, false, false, nil)
	if err != nil {
		return err
	}

	deliveries, err := r.channel.Consume(assetrpc.RequestQueue, "", true, false, false, false, nil)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				r.handle(ctx, d)
			}
		}
	}()

	return nil
}

func (r *Responder) handle(ctx context.Context, d amqp.Delivery) {
	var err error

	ctx = propagator.Extract(ctx, assetrpc.HeaderCarrier(d.Headers))
	ctx, span := tracer.Start(ctx, "handle-asset-request")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
	_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, r.log, ctx)

	var req assetrpc.Request
	err = json.Unmarshal(d.Body, &req)
	if err != nil {
		log.Error("unable to unmarshal asset request", "err", err.Error())
		r.reply(ctx, d, assetrpc.Reply{Error: "malformed request"})
		return
	}

	log = log.With(slog.String("kind", req.Kind))

	reply := r.dispatch(ctx, req)
	if reply.Error != "" {
		err = errors.New(reply.Error)
		log.Error("asset request failed", "err", reply.Error)
	}

	r.reply(ctx, d, reply)
}

func (r *Responder) dispatch(ctx context.Context, req assetrpc.Request) assetrpc.Reply {
	reply := assetrpc.Reply{Kind: req.Kind}

	fail := func(err error) assetrpc.Reply {
		reply.Error = err.Error()
		return reply
	}

	switch req.Kind {
	case assetrpc.KindCreateAlarm, assetrpc.KindCreateCamera:
		asset, err := r.svc.Create(ctx, assetFromRequest(req))
		if err != nil {
			return fail(err)
		}
		reply.Asset = &asset
	case assetrpc.KindUpdateAlarm, assetrpc.KindUpdateCamera:
		asset := assetFromRequest(req)
		asset.ID = req.ID
		err := r.svc.Update(ctx, asset)
		if err != nil {
			return fail(err)
		}
		reply.Asset = &asset
	case assetrpc.KindGetAlarm:
		return r.get(ctx, reply, req.ID, types.AssetKindAlarm)
	case assetrpc.KindGetCamera:
		return r.get(ctx, reply, req.ID, types.AssetKindCamera)
	case assetrpc.KindGetAsset:
		return r.get(ctx, reply, req.ID, "")
	case assetrpc.KindAllAlarms:
		return r.all(ctx, reply, req.SiteID, types.AssetKindAlarm)
	case assetrpc.KindAllCameras:
		return r.all(ctx, reply, req.SiteID, types.AssetKindCamera)
	case assetrpc.KindAllAssets:
		return r.all(ctx, reply, req.SiteID, "")
	case assetrpc.KindDeleteAlarm:
		return r.delete(ctx, reply, req.ID, types.AssetKindAlarm)
	case assetrpc.KindDeleteCamera:
		return r.delete(ctx, reply, req.ID, types.AssetKindCamera)
	default:
		reply.Error = "unknown request kind " + req.Kind
	}

	return reply
}

func (r *Responder) get(ctx context.Context, reply assetrpc.Reply, id, kind string) assetrpc.Reply {
	asset, err := r.svc.GetByID(ctx, id, kind)
	if err != nil {
		reply.Error = err.Error()
		return reply
	}
	reply.Asset = &asset
	return reply
}

func (r *Responder) all(ctx context.Context, reply assetrpc.Reply, siteID, kind string) assetrpc.Reply {
	result, err := r.svc.Query(ctx, siteID, kind)
	if err != nil {
		reply.Error = err.Error()
		return reply
	}
	if result == nil {
		result = []types.Asset{}
	}
	reply.Assets = result
	return reply
}

func (r *Responder) delete(ctx context.Context, reply assetrpc.Reply, id, kind string) assetrpc.Reply {
	err := r.svc.Delete(ctx, id, kind)
	if err != nil {
		reply.Error = err.Error()
		return reply
	}
	reply.Deleted = true
	return reply
}

func (r *Responder) reply(ctx context.Context, d amqp.Delivery, reply assetrpc.Reply) {
	if d.ReplyTo == "" {
		return
	}

	body, err := json.Marshal(reply)
	if err != nil {
		r.log.Error("unable to marshal asset reply", "err", err.Error())
		return
	}

	headers := amqp.Table{}
	propagator.Inject(ctx, assetrpc.HeaderCarrier(headers))

	err = r.channel.PublishWithContext(ctx, "", d.ReplyTo, false, false, amqp.Publishing{
		ContentType:   "application/json",
		CorrelationId: d.CorrelationId,
		Headers:       headers,
		Body:          body,
	})
	if err != nil {
		r.log.Error("unable to publish asset reply", "err", err.Error())
	}
}

func assetFromRequest(req assetrpc.Request) types.Asset {
	kind := ""
	switch req.Kind {
	case assetrpc.KindCreateAlarm, assetrpc.KindUpdateAlarm:
		kind = types.AssetKindAlarm
	case assetrpc.KindCreateCamera, assetrpc.KindUpdateCamera:
		kind = types.AssetKindCamera
	}

	return types.Asset{
		SiteID:     req.SiteID,
		Kind:       kind,
		SerialNo:   req.SerialNo,
		Material:   req.Material,
		Resolution: req.Resolution,
	}
}
