package admin

import (
	"strings"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/searchktools/http-lite/core/observability"
)

// Content types served by the stats endpoint
const (
	ContentTypeJSON     = "application/json"
	ContentTypeProtobuf = "application/x-protobuf"
)

// Codec encodes a stats message for the wire
type Codec interface {
	Encode(msg proto.Message) ([]byte, error)
	ContentType() string
}

// JSONCodec encodes messages with the canonical protobuf JSON mapping
type JSONCodec struct{}

func (JSONCodec) Encode(msg proto.Message) ([]byte, error) {
	return protojson.Marshal(msg)
}

func (JSONCodec) ContentType() string {
	return ContentTypeJSON
}

// ProtobufCodec encodes messages in the binary wire format
type ProtobufCodec struct{}

func (ProtobufCodec) Encode(msg proto.Message) ([]byte, error) {
	return proto.Marshal(msg)
}

func (ProtobufCodec) ContentType() string {
	return ContentTypeProtobuf
}

// CodecFor picks the codec for an Accept header value
func CodecFor(accept string) Codec {
	if strings.Contains(accept, ContentTypeProtobuf) {
		return ProtobufCodec{}
	}
	return JSONCodec{}
}

// SnapshotStruct converts a monitor snapshot into a protobuf Struct.
// Durations are expressed in microseconds.
func SnapshotStruct(snap observability.Snapshot) (*structpb.Struct, error) {
	routes := make([]any, 0, len(snap.Routes))
	for _, r := range snap.Routes {
		buckets := make([]any, len(r.LatencyBuckets))
		for i, n := range r.LatencyBuckets {
			buckets[i] = n
		}
		routes = append(routes, map[string]any{
			"route":           r.Route,
			"count":           r.Count,
			"errors":          r.Errors,
			"min_us":          micros(r.MinDuration),
			"max_us":          micros(r.MaxDuration),
			"avg_us":          micros(r.AvgDuration),
			"latency_buckets": buckets,
		})
	}

	bounds := make([]any, len(observability.LatencyBounds))
	for i, b := range observability.LatencyBounds {
		bounds[i] = micros(b)
	}

	return structpb.NewStruct(map[string]any{
		"uptime_seconds":    snap.Uptime.Seconds(),
		"total_requests":    snap.TotalRequests,
		"total_errors":      snap.TotalErrors,
		"avg_us":            micros(snap.AvgDuration),
		"latency_bounds_us": bounds,
		"routes":            routes,
	})
}

func micros(d time.Duration) int64 {
	return d.Microseconds()
}
