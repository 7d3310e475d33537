// Package client resolves partial user-supplied client options into the
// fully-populated record the runtime client is constructed from. Resolution
// is pure: all defaults come in as explicit arguments.
package client

import (
	"strconv"
	"time"

	"github.com/stackmesh/runtime-sdk-go/pkg/config"
	"github.com/stackmesh/runtime-sdk-go/pkg/endpoint"
	"github.com/stackmesh/runtime-sdk-go/pkg/logging"
)

// Protocol selects the transport mode used to reach the runtime sidecar.
type Protocol string

const (
	// ProtocolHTTP talks to the sidecar's HTTP API.
	ProtocolHTTP Protocol = "http"
	// ProtocolGRPC talks to the sidecar's gRPC API.
	ProtocolGRPC Protocol = "grpc"
)

// String returns the wire form of the protocol.
func (p Protocol) String() string {
	return string(p)
}

// ActorConfig tunes the actor subsystem of the consuming client. It passes
// through resolution untouched.
type ActorConfig struct {
	IdleTimeout             time.Duration
	ScanInterval            time.Duration
	DrainOngoingCallTimeout time.Duration
	DrainRebalancedActors   bool
}

// Options describes a client configuration. Callers hand a partially
// populated value to Resolve; the client is constructed from the fully
// resolved result and treats it as immutable afterwards.
type Options struct {
	// Host of the sidecar. After resolution this is either a bare host
	// ("localhost") or, when derived from a combined endpoint string, a
	// scheme-qualified host ("https://sidecar.example.com").
	Host string

	// Port of the sidecar, kept as a string for the transport layer.
	Port string

	// Protocol selects which default endpoint and port apply.
	Protocol Protocol

	// KeepAlive enables gRPC keep-alive pings on the transport.
	KeepAlive bool

	// Logger used by the client. Defaults to the logger handed to Resolve.
	Logger logging.Logger

	// Actor configuration, passed through unchanged.
	Actor *ActorConfig

	// APIToken authenticates requests to the sidecar, passed through
	// unchanged.
	APIToken string

	// MaxBodySizeMB caps request bodies, passed through unchanged. Zero
	// means the transport's own default.
	MaxBodySizeMB int
}

// Resolve merges user options with the injected defaults.
//
// Host/port precedence is two-tier: an explicitly supplied Host OR Port wins
// outright (each missing field filled from defaults, the combined endpoint
// string ignored). Only when neither is set does a non-empty per-protocol
// endpoint string take over, contributing "scheme://host" and the parsed
// port. A malformed endpoint string fails resolution; callers are expected
// to fail client construction on it.
func Resolve(user Options, defaults *config.Defaults, fallbackProtocol Protocol, defaultLogger logging.Logger) (Options, error) {
	resolved := user

	if resolved.Protocol == "" {
		resolved.Protocol = fallbackProtocol
	}
	if resolved.Protocol == "" {
		resolved.Protocol = ProtocolHTTP
	}

	var defaultEndpoint, defaultPort string
	switch resolved.Protocol {
	case ProtocolGRPC:
		defaultEndpoint = defaults.GRPCEndpoint
		defaultPort = defaults.GRPCPortOrDefault()
	default:
		defaultEndpoint = defaults.HTTPEndpoint
		defaultPort = defaults.HTTPPortOrDefault()
	}

	switch {
	case user.Host != "" || user.Port != "":
		if resolved.Host == "" {
			resolved.Host = defaults.HostOrDefault()
		}
		if resolved.Port == "" {
			resolved.Port = defaultPort
		}
	case defaultEndpoint != "":
		ep, err := endpoint.Parse(defaultEndpoint)
		if err != nil {
			return Options{}, err
		}
		resolved.Host = ep.Scheme + "://" + ep.Host
		resolved.Port = strconv.Itoa(ep.Port)
	default:
		resolved.Host = defaults.HostOrDefault()
		resolved.Port = defaultPort
	}

	if resolved.Logger == nil {
		resolved.Logger = defaultLogger
	}

	return resolved, nil
}
