// Package assetrpc defines the request/reply envelope spoken over AMQP
// between asset clients and the asset backend.
package assetrpc

import (
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel/propagation"

	"github.com/diwise/iot-facility-mgmt/pkg/types"
)

const (
	// RequestQueue is the well known queue the asset backend consumes from.
	RequestQueue = "facility.assets.requests"
)

const (
	KindCreateAlarm = "createAlarm"
	KindAllAlarms   = "allAlarms"
	KindGetAlarm    = "getAlarm"
	KindUpdateAlarm = "updateAlarm"
	KindDeleteAlarm = "deleteAlarm"

	KindCreateCamera = "createCamera"
	KindAllCameras   = "allCameras"
	KindGetCamera    = "getCamera"
	KindUpdateCamera = "updateCamera"
	KindDeleteCamera = "deleteCamera"

	KindAllAssets = "allAssets"
	KindGetAsset  = "getAsset"
)

// Request is the envelope sent to the asset backend. Kind selects the
// operation, the remaining fields carry the payload for that operation.
type Request struct {
	Kind       string `json:"kind"`
	ID         string `json:"id,omitempty"`
	SiteID     string `json:"siteId,omitempty"`
	SerialNo   string `json:"serialNo,omitempty"`
	Material   string `json:"material,omitempty"`
	Resolution string `json:"resolution,omitempty"`
}

// NotFoundError is the error string the backend replies with when no
// asset exists with the requested id.
const NotFoundError = "asset not found"

// Reply echoes the request kind so that callers can correlate and sanity
// check responses. Exactly one of Asset, Assets, Deleted or Error is set.
type Reply struct {
	Kind    string        `json:"kind"`
	Asset   *types.Asset  `json:"asset,omitempty"`
	Assets  []types.Asset `json:"assets,omitempty"`
	Deleted bool          `json:"deleted,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// HeaderCarrier adapts an amqp table to the otel propagation interfaces so
// that trace context survives the broker hop.
type HeaderCarrier amqp.Table

var _ propagation.TextMapCarrier = HeaderCarrier{}

func (c HeaderCarrier) Get(key string) string {
	if v, ok := c[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func (c HeaderCarrier) Set(key, value string) {
	c[key] = value
}

func (c HeaderCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}
