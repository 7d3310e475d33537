// Package configuration decodes the configuration-store payloads returned
// by the sidecar.
package configuration

import (
	"encoding/json"

	sdkerrors "github.com/stackmesh/runtime-sdk-go/pkg/errors"
)

// Item is one configuration entry as returned by the sidecar.
type Item struct {
	// Key is the configuration key; populated from the payload's map key,
	// not from the item body.
	Key string `json:"-"`

	Value    string            `json:"value"`
	Version  string            `json:"version,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// ParseItems decodes the sidecar's keyed configuration payload. A malformed
// entry fails the whole decode and names the offending key.
func ParseItems(raw map[string]json.RawMessage) (map[string]*Item, error) {
	items := make(map[string]*Item, len(raw))
	for key, data := range raw {
		item := &Item{}
		if err := json.Unmarshal(data, item); err != nil {
			return nil, sdkerrors.DecodeError("configuration item", key, err)
		}
		item.Key = key
		items[key] = item
	}
	return items, nil
}

// ParsePayload decodes a raw JSON configuration response body into items.
func ParsePayload(payload []byte) (map[string]*Item, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, sdkerrors.DecodeError("configuration payload", "", err)
	}
	return ParseItems(raw)
}
