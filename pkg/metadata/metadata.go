// Package metadata shapes the request metadata the sidecar APIs accept:
// plain string maps on the HTTP surface, outgoing gRPC metadata on the gRPC
// surface, plus W3C trace-context propagation into either.
package metadata

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	grpcmetadata "google.golang.org/grpc/metadata"
)

// APITokenKey is the metadata key the sidecar reads authentication tokens
// from.
const APITokenKey = "mesh-api-token"

// Merge combines metadata maps without mutating any input. Later maps win
// on key conflicts; nil inputs are skipped. The result is never nil.
func Merge(maps ...map[string]string) map[string]string {
	merged := make(map[string]string)
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}

// AppendToOutgoingContext attaches md to ctx as outgoing gRPC metadata.
// An empty map returns ctx unchanged.
func AppendToOutgoingContext(ctx context.Context, md map[string]string) context.Context {
	if len(md) == 0 {
		return ctx
	}
	pairs := make([]string, 0, len(md)*2)
	for k, v := range md {
		pairs = append(pairs, k, v)
	}
	return grpcmetadata.AppendToOutgoingContext(ctx, pairs...)
}

// WithAPIToken attaches the sidecar authentication token to ctx as outgoing
// gRPC metadata. An empty token returns ctx unchanged.
func WithAPIToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return grpcmetadata.AppendToOutgoingContext(ctx, APITokenKey, token)
}

// InjectTraceContext returns a copy of md with the calling context's W3C
// trace-context headers added, using the globally registered propagator.
// When no span is active the result is just a copy of md.
func InjectTraceContext(ctx context.Context, md map[string]string) map[string]string {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	return Merge(md, carrier)
}
