// Package runtimesdk is the support layer of the Go client SDK for the mesh
// runtime sidecar (pub/sub messaging, state store, configuration retrieval).
//
// It holds the stateless pieces a runtime client is assembled from: endpoint
// parsing, client option resolution, request-metadata shaping, state-store
// option stringification, bulk-publish shaping and configuration-item
// decoding. The client and transports that perform the actual I/O live in a
// separate module and consume these packages.
//
// # Overview
//
// The SDK support layer consists of several sub-packages:
//
//   - pkg/endpoint: Parses free-form sidecar address strings
//   - pkg/client: Resolves partial client options into a full record
//   - pkg/config: Loads process-wide sidecar defaults from MESH_* variables
//   - pkg/metadata: Shapes request metadata for the HTTP and gRPC surfaces
//   - pkg/state: State-store consistency/concurrency options
//   - pkg/pubsub: Bulk-publish entry and response shaping
//   - pkg/configuration: Configuration-store payload decoding
//   - pkg/errors: Structured errors with stable codes
//   - pkg/logging: Structured logging
//   - pkg/observability: Metrics and tracing support for the client
//
// # Resolving Client Options
//
// Client construction starts from the environment defaults and a partial
// options record:
//
//	import (
//	    "github.com/stackmesh/runtime-sdk-go/pkg/client"
//	    "github.com/stackmesh/runtime-sdk-go/pkg/config"
//	    "github.com/stackmesh/runtime-sdk-go/pkg/logging"
//	)
//
//	func main() {
//	    defaults, err := config.FromEnv()
//	    if err != nil {
//	        // Handle error
//	    }
//
//	    opts, err := client.Resolve(
//	        client.Options{Port: "50001", KeepAlive: true},
//	        defaults,
//	        client.ProtocolGRPC,
//	        logging.NewDefault(),
//	    )
//	    if err != nil {
//	        // Fail client construction; parse errors are not retryable
//	    }
//
//	    // Hand opts to the client/transport constructor...
//	    _ = opts
//	}
//
// An explicitly supplied host or port always wins over the MESH_HTTP_ENDPOINT
// / MESH_GRPC_ENDPOINT combined endpoint strings; see client.Resolve for the
// exact precedence.
package runtimesdk
