package client

import (
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

// Keep-alive cadence for the sidecar channel. The sidecar sits on
// localhost or a pod-local network, so the aggressive defaults are safe.
const (
	keepAliveTime    = 10 * time.Second
	keepAliveTimeout = 5 * time.Second
)

const bytesPerMB = 1 << 20

// KeepAliveParams returns the gRPC keep-alive settings implied by the
// options. The second return is false when keep-alive is disabled.
func (o Options) KeepAliveParams() (keepalive.ClientParameters, bool) {
	if !o.KeepAlive {
		return keepalive.ClientParameters{}, false
	}
	return keepalive.ClientParameters{
		Time:                keepAliveTime,
		Timeout:             keepAliveTimeout,
		PermitWithoutStream: true,
	}, true
}

// CallOptions returns the per-call options implied by MaxBodySizeMB. Nil
// when the transport default applies.
func (o Options) CallOptions() []grpc.CallOption {
	if o.MaxBodySizeMB <= 0 {
		return nil
	}
	size := o.MaxBodySizeMB * bytesPerMB
	return []grpc.CallOption{
		grpc.MaxCallRecvMsgSize(size),
		grpc.MaxCallSendMsgSize(size),
	}
}

// DialOptions assembles the dial options the consuming transport passes to
// grpc.NewClient. It only builds option values; no connection is opened
// here.
func (o Options) DialOptions() []grpc.DialOption {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if params, ok := o.KeepAliveParams(); ok {
		opts = append(opts, grpc.WithKeepaliveParams(params))
	}
	if callOpts := o.CallOptions(); len(callOpts) > 0 {
		opts = append(opts, grpc.WithDefaultCallOptions(callOpts...))
	}
	return opts
}
