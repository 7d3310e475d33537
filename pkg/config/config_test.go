package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvAllFields(t *testing.T) {
	t.Setenv("MESH_HOST", "sidecar.internal")
	t.Setenv("MESH_HTTP_PORT", "3600")
	t.Setenv("MESH_GRPC_PORT", "50002")
	t.Setenv("MESH_HTTP_ENDPOINT", "https://sidecar.example.com:8443")
	t.Setenv("MESH_GRPC_ENDPOINT", "grpc://sidecar.example.com:50005")
	t.Setenv("MESH_API_TOKEN", "secret-token")
	t.Setenv("MESH_MAX_BODY_SIZE_MB", "16")

	d, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "sidecar.internal", d.Host)
	assert.Equal(t, "3600", d.HTTPPort)
	assert.Equal(t, "50002", d.GRPCPort)
	assert.Equal(t, "https://sidecar.example.com:8443", d.HTTPEndpoint)
	assert.Equal(t, "grpc://sidecar.example.com:50005", d.GRPCEndpoint)
	assert.Equal(t, "secret-token", d.APIToken)
	assert.Equal(t, 16, d.MaxBodySizeMB)
}

func TestFromEnvEmptyEnvironment(t *testing.T) {
	for _, key := range []string{
		"MESH_HOST", "MESH_HTTP_PORT", "MESH_GRPC_PORT",
		"MESH_HTTP_ENDPOINT", "MESH_GRPC_ENDPOINT",
		"MESH_API_TOKEN", "MESH_MAX_BODY_SIZE_MB",
	} {
		t.Setenv(key, "")
	}

	d, err := FromEnv()
	require.NoError(t, err)

	assert.Empty(t, d.Host)
	assert.Empty(t, d.HTTPEndpoint)
	assert.Zero(t, d.MaxBodySizeMB)

	assert.Equal(t, DefaultHost, d.HostOrDefault())
	assert.Equal(t, DefaultHTTPPort, d.HTTPPortOrDefault())
	assert.Equal(t, DefaultGRPCPort, d.GRPCPortOrDefault())
}

func TestFromEnvInvalidInteger(t *testing.T) {
	t.Setenv("MESH_MAX_BODY_SIZE_MB", "not-a-number")

	_, err := FromEnv()
	require.Error(t, err)
}

func TestOrDefaultPreferConfigured(t *testing.T) {
	d := &Defaults{Host: "10.0.0.5", HTTPPort: "8080", GRPCPort: "9090"}

	assert.Equal(t, "10.0.0.5", d.HostOrDefault())
	assert.Equal(t, "8080", d.HTTPPortOrDefault())
	assert.Equal(t, "9090", d.GRPCPortOrDefault())
}
