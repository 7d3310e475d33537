package configuration

import (
	"encoding/json"
	"testing"

	sdkerrors "github.com/stackmesh/runtime-sdk-go/pkg/errors"
)

func TestParseItems(t *testing.T) {
	raw := map[string]json.RawMessage{
		"max-retries":  json.RawMessage(`{"value":"5","version":"2"}`),
		"feature-flag": json.RawMessage(`{"value":"on","version":"1","metadata":{"region":"eu"}}`),
	}

	items, err := ParseItems(raw)
	if err != nil {
		t.Fatalf("ParseItems returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d", len(items))
	}

	flag := items["feature-flag"]
	if flag == nil {
		t.Fatal("feature-flag missing")
	}
	if flag.Key != "feature-flag" {
		t.Errorf("Key = %q, must come from the map key", flag.Key)
	}
	if flag.Value != "on" || flag.Version != "1" {
		t.Errorf("item = %+v", flag)
	}
	if flag.Metadata["region"] != "eu" {
		t.Errorf("Metadata = %v", flag.Metadata)
	}

	if items["max-retries"].Metadata != nil {
		t.Error("absent metadata should decode as nil")
	}
}

func TestParseItemsMalformedEntry(t *testing.T) {
	raw := map[string]json.RawMessage{
		"good": json.RawMessage(`{"value":"ok"}`),
		"bad":  json.RawMessage(`{"value":`),
	}

	_, err := ParseItems(raw)
	if err == nil {
		t.Fatal("malformed entry must fail the decode")
	}

	sdkErr, ok := sdkerrors.AsSDKError(err)
	if !ok {
		t.Fatalf("error %v is not an SDKError", err)
	}
	if sdkErr.Code() != sdkerrors.CodeDecodeError {
		t.Errorf("Code() = %d, want %d", sdkErr.Code(), sdkerrors.CodeDecodeError)
	}
	data, ok := sdkErr.Data().(*sdkerrors.DecodeErrorData)
	if !ok {
		t.Fatalf("Data() = %T, want *DecodeErrorData", sdkErr.Data())
	}
	if data.Key != "bad" {
		t.Errorf("error must name the offending key, got %q", data.Key)
	}
}

func TestParsePayload(t *testing.T) {
	payload := []byte(`{"timeout":{"value":"30s","version":"7"}}`)

	items, err := ParsePayload(payload)
	if err != nil {
		t.Fatalf("ParsePayload returned error: %v", err)
	}
	if items["timeout"].Value != "30s" || items["timeout"].Version != "7" {
		t.Errorf("items = %+v", items["timeout"])
	}
}

func TestParsePayloadInvalidJSON(t *testing.T) {
	_, err := ParsePayload([]byte(`not json`))
	if err == nil {
		t.Fatal("invalid payload must fail")
	}
	if sdkerrors.CodeOf(err) != sdkerrors.CodeDecodeError {
		t.Errorf("CodeOf = %d, want decode error", sdkerrors.CodeOf(err))
	}
}
