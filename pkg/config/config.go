// Package config loads the process-wide sidecar defaults consumed by client
// option resolution. The defaults are carried as an explicit value rather
// than read from ambient globals, so resolution stays deterministic under
// test.
package config

import (
	"github.com/caarlos0/env/v11"

	sdkerrors "github.com/stackmesh/runtime-sdk-go/pkg/errors"
)

// Fallbacks applied when the environment supplies nothing.
const (
	DefaultHost     = "localhost"
	DefaultHTTPPort = "3500"
	DefaultGRPCPort = "50001"
)

// Defaults carries the sidecar connection defaults sourced from the
// process environment.
type Defaults struct {
	// Host of the sidecar, without scheme or port.
	Host string `env:"MESH_HOST"`

	// Per-protocol ports, kept as strings because they travel into
	// resolved options as strings.
	HTTPPort string `env:"MESH_HTTP_PORT"`
	GRPCPort string `env:"MESH_GRPC_PORT"`

	// Per-protocol combined endpoint strings. When set (and no explicit
	// host/port is given) they take over host/port resolution entirely.
	HTTPEndpoint string `env:"MESH_HTTP_ENDPOINT"`
	GRPCEndpoint string `env:"MESH_GRPC_ENDPOINT"`

	// APIToken is forwarded by consumers that authenticate to the sidecar.
	APIToken string `env:"MESH_API_TOKEN"`

	// MaxBodySizeMB caps request bodies on the consuming transport.
	MaxBodySizeMB int `env:"MESH_MAX_BODY_SIZE_MB"`
}

// FromEnv populates Defaults from MESH_* environment variables.
func FromEnv() (*Defaults, error) {
	d := &Defaults{}
	if err := env.Parse(d); err != nil {
		return nil, sdkerrors.ConfigLoadError(err)
	}
	return d, nil
}

// HostOrDefault returns the configured host, falling back to "localhost".
func (d *Defaults) HostOrDefault() string {
	if d.Host != "" {
		return d.Host
	}
	return DefaultHost
}

// HTTPPortOrDefault returns the configured HTTP port, falling back to the
// sidecar's conventional 3500.
func (d *Defaults) HTTPPortOrDefault() string {
	if d.HTTPPort != "" {
		return d.HTTPPort
	}
	return DefaultHTTPPort
}

// GRPCPortOrDefault returns the configured gRPC port, falling back to the
// sidecar's conventional 50001.
func (d *Defaults) GRPCPortOrDefault() string {
	if d.GRPCPort != "" {
		return d.GRPCPort
	}
	return DefaultGRPCPort
}
